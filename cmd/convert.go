package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gilbeats/beats/internal/beat"
	"github.com/gilbeats/beats/internal/log"
	"github.com/gilbeats/beats/internal/tracing"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
)

func (a *app) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert HH:MM[:SS]",
		Short: "Convert a BMT time of day to beats",
		Long: `Convert a time of day in Biel Mean Time (UTC+1) to its beat.

The time is taken on today's BMT date, so json and swiftbar output carry a
full timestamp.`,
		Example: "  beats convert 12:00:01\n  beats convert 18:30 --format json",
		Args:    cobra.ExactArgs(1),
		RunE:    a.runConvert,
	}
}

func (a *app) runConvert(cmd *cobra.Command, args []string) error {
	ctx, span := tracing.Start(cmd.Context(), "beats.convert", attribute.String("input", args[0]))
	defer span.End()

	h, m, s, err := parseClock(args[0])
	if err != nil {
		tracing.RecordError(span, err)
		return err
	}

	n, err := beat.FromTimeOfDay(h, m, s)
	if err != nil {
		tracing.RecordError(span, err)
		return fmt.Errorf("converting %s: %w", args[0], err)
	}
	log.Debug(log.CatBeat, "Converted time of day", "input", args[0], "beats", n)

	today := a.clock.Now().In(beat.BMT)
	b := beat.FromTimestamp(time.Date(today.Year(), today.Month(), today.Day(), h, m, s, 0, beat.BMT))
	span.SetAttributes(attribute.Int("beats", b.Beats()))

	return a.write(ctx, cmd, b)
}

// parseClock splits "HH:MM" or "HH:MM:SS" into integers. Range checks are
// left to beat.FromTimeOfDay.
func parseClock(s string) (hours, minutes, seconds int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid time %q: want HH:MM or HH:MM:SS", s)
	}

	fields := make([]int, 3)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid time %q: want HH:MM or HH:MM:SS", s)
		}
		fields[i] = v
	}
	return fields[0], fields[1], fields[2], nil
}
