package cmd

import (
	"fmt"

	"github.com/gilbeats/beats/internal/beat"
	"github.com/gilbeats/beats/internal/render"

	"github.com/spf13/cobra"
)

func (a *app) timeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "time BEATS",
		Short: "Show the BMT time of day a beat starts at",
		Long: `Show the time of day in Biel Mean Time (UTC+1) at which a beat starts.

With --format json the beat is printed with its derived time instead.`,
		Example: "  beats time 500\n  beats time 42 --format json",
		Args:    cobra.ExactArgs(1),
		RunE:    a.runTime,
	}
}

func (a *app) runTime(cmd *cobra.Command, args []string) error {
	n, err := parseBeats(args[0])
	if err != nil {
		return err
	}

	b, err := beat.FromBeatCount(n)
	if err != nil {
		return err
	}

	f, err := a.format()
	if err != nil {
		return err
	}
	if f == render.FormatJSON {
		return a.write(cmd.Context(), cmd, b)
	}

	h, m, s := b.TimeOfDay()
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%02d:%02d:%02d\n", h, m, s)
	return err
}
