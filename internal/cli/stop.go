package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Suzii/attendance-tracker/internal/entry"
)

var stopCmd = LeafCommand{
	Use:   "stop",
	Short: "Stop the running work session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			return runStop(cmd, a)
		})
	},
}.Build()

func runStop(cmd *cobra.Command, a *app) error {
	ref, ok := a.tracker.Tracking()
	if !ok {
		return a.tracker.CanStop()
	}
	if _, err := a.tracker.Stop(cmd.Context()); err != nil {
		return err
	}

	now := a.now()
	day := a.tracker.Day(ref.Date)
	session := day.Entries[day.IndexOf(ref.Entry.ID)]
	stats, err := a.dayStats(ref.Date)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s, session %s, %s total %s\n",
		Primary("stopped"),
		formatSpan(session, a.loc),
		Info(entry.FormatMinutes(session.Minutes(now))),
		formatDate(ref.Date),
		Info(entry.FormatMinutes(stats.TotalMinutes)),
	)
	return nil
}
