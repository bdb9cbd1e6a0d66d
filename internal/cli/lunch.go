package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Suzii/attendance-tracker/internal/entry"
)

var lunchCmd = LeafCommand{
	Use:   "lunch [date]",
	Short: "Cut a lunch break out of the middle of an entry",
	Args:  cobra.MaximumNArgs(1),
	StrFlags: []StringFlag{
		{Name: "entry", Usage: "entry ID to split (default: the most recently finished entry)"},
		{Name: "duration", Shorthand: "d", Usage: "break length, e.g. 30m or 1h", Default: "1h"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		entryID, _ := cmd.Flags().GetString("entry")
		duration, _ := cmd.Flags().GetString("duration")
		return withApp(cmd, func(a *app) error {
			date, err := resolveDateArg(a, args)
			if err != nil {
				return err
			}
			return runLunch(cmd, a, date, entryID, duration)
		})
	},
}.Build()

func runLunch(cmd *cobra.Command, a *app, date, entryID, duration string) error {
	minutes, err := entry.ParseDuration(duration)
	if err != nil {
		return err
	}
	target, err := a.tracker.LunchCandidate(date, entryID)
	if err != nil {
		return err
	}
	if err := a.tracker.CanAddLunchBreak(date, target.ID, minutes); err != nil {
		return err
	}
	changed, err := a.tracker.AddLunchBreak(cmd.Context(), date, target.ID, minutes)
	if err != nil {
		return err
	}
	if !changed {
		return fmt.Errorf("lunch break not added: entry %s changed meanwhile", target.ID)
	}

	first, second, ok := lunchHalves(a.tracker.Day(date), target.ID)
	if !ok {
		return fmt.Errorf("lunch break not added: entry %s changed meanwhile", target.ID)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s on %s: %s and %s\n",
		Primary("added lunch break"),
		Info(entry.FormatMinutes(minutes)),
		formatDate(date),
		formatSpan(first, a.loc),
		formatSpan(second, a.loc),
	)
	return nil
}

// lunchHalves returns the entry id and the one right after it.
func lunchHalves(rec entry.DayRecord, id string) (entry.TimeEntry, entry.TimeEntry, bool) {
	i := rec.IndexOf(id)
	if i < 0 || i+1 >= len(rec.Entries) {
		return entry.TimeEntry{}, entry.TimeEntry{}, false
	}
	return rec.Entries[i], rec.Entries[i+1], true
}
