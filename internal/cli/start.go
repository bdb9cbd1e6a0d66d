package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Suzii/attendance-tracker/internal/attendance"
	"github.com/Suzii/attendance-tracker/internal/validation"
)

var startCmd = LeafCommand{
	Use:   "start",
	Short: "Start tracking a work session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			return runStart(cmd, a)
		})
	},
}.Build()

func runStart(cmd *cobra.Command, a *app) error {
	if err := a.tracker.CanStart(); err != nil {
		if dates := openDates(a); errors.Is(err, attendance.ErrUnclosedEntries) && dates != "" {
			return fmt.Errorf("%w (open entries on: %s)", err, dates)
		}
		return err
	}
	changed, err := a.tracker.Start(cmd.Context())
	if err != nil {
		return err
	}
	if !changed {
		return fmt.Errorf("tracking did not start")
	}

	ref, _ := a.tracker.Tracking()
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s at %s (%s)\n",
		Primary("started tracking"),
		Info(formatClock(ref.Entry.Start.In(a.loc))),
		formatDate(ref.Date),
	)
	return nil
}

// openDates lists the past days still holding an open entry.
func openDates(a *app) string {
	dates := validation.UnclosedDates(a.tracker.Data(), a.today())
	for i, d := range dates {
		dates[i] = formatDate(d)
	}
	return strings.Join(dates, "; ")
}
