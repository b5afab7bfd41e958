// Package cmd implements the beats command line.
package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gilbeats/beats/internal/beat"
	"github.com/gilbeats/beats/internal/config"
	"github.com/gilbeats/beats/internal/log"
	"github.com/gilbeats/beats/internal/paths"
	"github.com/gilbeats/beats/internal/render"
	"github.com/gilbeats/beats/internal/tracing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/attribute"
)

// version is overridden at build time with -ldflags "-X".
var version = "dev"

// app carries the state shared by one command tree.
type app struct {
	clock beat.Clock
	v     *viper.Viper
	cfg   config.Config

	cfgFile  string
	beatsArg string
	atArg    string

	closeLog      func() error
	shutdownTrace tracing.ShutdownFunc
}

func newApp(clock beat.Clock) *app {
	if clock == nil {
		clock = beat.SystemClock()
	}
	return &app{clock: clock, v: viper.New()}
}

// Execute runs the beats command line against the system clock.
func Execute(ctx context.Context, args []string) error {
	a := newApp(beat.SystemClock())
	root := a.rootCmd()
	root.SetArgs(args)
	defer a.close(ctx)
	return root.ExecuteContext(ctx)
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "beats",
		Short: "Show Swatch Internet Time",
		Long: `Show the current time in Swatch Internet Time (.beats).

A day has 1000 beats of 86.4 seconds, anchored to Biel Mean Time (UTC+1),
so @000 is midnight in Biel for everyone.`,
		Version:           version,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runRoot,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default "+paths.ConfigFile()+")")
	pf.StringP("format", "f", string(render.FormatText), "output format: text, json or swiftbar")
	pf.Bool("color", false, "style the display on color terminals")
	pf.Bool("debug", false, "write debug logs to stderr")
	pf.String("log-file", "", "write debug logs to this file")
	pf.Bool("trace", false, "export trace spans to stderr")

	root.Flags().StringVarP(&a.beatsArg, "beats", "b", "", "render this beat (0-999) instead of now")
	root.Flags().StringVar(&a.atArg, "at", "", "render the beat at this RFC 3339 instant instead of now")
	root.MarkFlagsMutuallyExclusive("beats", "at")

	_ = a.v.BindPFlag("format", pf.Lookup("format"))
	_ = a.v.BindPFlag("color", pf.Lookup("color"))
	_ = a.v.BindPFlag("log.debug", pf.Lookup("debug"))
	_ = a.v.BindPFlag("log.file", pf.Lookup("log-file"))
	_ = a.v.BindPFlag("trace", pf.Lookup("trace"))

	root.AddCommand(
		a.convertCmd(),
		a.timeCmd(),
		a.configCmd(),
		a.versionCmd(),
	)
	return root
}

// setup loads configuration and starts logging and tracing.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		if _, err := render.ParseFormat(f.Value.String()); err != nil {
			return fmt.Errorf("--format: %w", err)
		}
	}

	path := paths.ResolveConfigPath(a.cfgFile)
	cfg, err := config.Load(a.v, path, a.cfgFile != "")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg

	closeLog, err := log.Init(cfg.LogOptions())
	if err != nil {
		return fmt.Errorf("starting logger: %w", err)
	}
	a.closeLog = closeLog

	shutdown, err := tracing.Init(cmd.ErrOrStderr(), cfg.Trace, version)
	if err != nil {
		return fmt.Errorf("starting tracing: %w", err)
	}
	a.shutdownTrace = shutdown

	log.Debug(log.CatCLI, "Command starting", "command", cmd.CommandPath(), "config", path, "format", cfg.Format)
	return nil
}

// close flushes tracing and closes the log file. Safe to call when setup
// never ran.
func (a *app) close(ctx context.Context) {
	if a.shutdownTrace != nil {
		if err := a.shutdownTrace(ctx); err != nil {
			log.ErrorErr(log.CatTrace, "Failed to flush traces", err)
		}
		a.shutdownTrace = nil
	}
	if a.closeLog != nil {
		_ = a.closeLog()
		a.closeLog = nil
	}
}

func (a *app) format() (render.Format, error) {
	return render.ParseFormat(a.cfg.Format)
}

func (a *app) runRoot(cmd *cobra.Command, _ []string) error {
	ctx, span := tracing.Start(cmd.Context(), "beats.show")
	defer span.End()

	b, err := a.selectBeat(cmd)
	if err != nil {
		tracing.RecordError(span, err)
		return err
	}
	span.SetAttributes(attribute.Int("beats", b.Beats()))

	return a.write(ctx, cmd, b)
}

// selectBeat returns the beat named by --beats or --at, or the current beat.
func (a *app) selectBeat(cmd *cobra.Command) (beat.Beat, error) {
	switch {
	case cmd.Flags().Changed("beats"):
		n, err := parseBeats(a.beatsArg)
		if err != nil {
			return beat.Beat{}, fmt.Errorf("--beats: %w", err)
		}
		b, err := beat.FromBeatCount(n)
		if err != nil {
			return beat.Beat{}, fmt.Errorf("--beats: %w", err)
		}
		return b.On(a.clock.Now()), nil
	case cmd.Flags().Changed("at"):
		ts, err := time.Parse(time.RFC3339, a.atArg)
		if err != nil {
			return beat.Beat{}, fmt.Errorf("--at: invalid RFC 3339 time %q: %w", a.atArg, err)
		}
		return beat.FromTimestamp(ts), nil
	default:
		return beat.NowBeat(a.clock), nil
	}
}

// write renders b to the command's stdout in the configured format.
func (a *app) write(ctx context.Context, cmd *cobra.Command, b beat.Beat) error {
	f, err := a.format()
	if err != nil {
		return err
	}

	_, span := tracing.Start(ctx, "beats.render", attribute.String("format", string(f)))
	defer span.End()

	if err := render.Render(cmd.OutOrStdout(), b, f, a.cfg.RenderOptions()); err != nil {
		tracing.RecordError(span, err)
		return err
	}
	return nil
}

func parseBeats(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &InvalidBeatsArgumentError{Value: s, Err: err}
	}
	return n, nil
}
