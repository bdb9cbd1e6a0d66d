package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Suzii/attendance-tracker/internal/calendar"
	"github.com/Suzii/attendance-tracker/internal/entry"
)

var dayCmd = LeafCommand{
	Use:   "day [date]",
	Short: "Show the entries, absence and total of a day",
	Long:  "Show a day in detail. The date may be YYYY-MM-DD, today, yesterday, a weekday name or e.g. \"jun 2\".",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			date, err := resolveDateArg(a, args)
			if err != nil {
				return err
			}
			return runDay(cmd, a, date)
		})
	},
}.Build()

// resolveDateArg resolves the optional leading date argument, defaulting to today.
func resolveDateArg(a *app, args []string) (string, error) {
	if len(args) == 0 {
		return a.today(), nil
	}
	return calendar.ResolveDate(args[0], a.now())
}

func runDay(cmd *cobra.Command, a *app, date string) error {
	stats, err := a.dayStats(date)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	now := a.now()

	header := formatDate(date)
	if stats.IsWeekend {
		header += " " + Silent("(weekend)")
	}
	_, _ = fmt.Fprintf(w, "%s  %s\n", Primary(header), Silent(fmt.Sprintf("week %d", stats.Week)))

	switch {
	case stats.IsPublicHoliday:
		_, _ = fmt.Fprintf(w, "  %s\n", Info(stats.HolidayName))
	case !stats.SpecialDay.IsNone():
		_, _ = fmt.Fprintf(w, "  %s\n", Info(stats.SpecialDay.Label()))
	}

	if len(stats.Entries) == 0 {
		_, _ = fmt.Fprintf(w, "  %s\n", Silent("no entries"))
	}
	for _, e := range stats.Entries {
		_, _ = fmt.Fprintf(w, "  %s  %s  %s\n",
			Silent(e.ID),
			formatSpan(e, a.loc),
			Info(entry.FormatMinutes(e.Minutes(now))),
		)
	}

	_, _ = fmt.Fprintf(w, "  %s %s\n", Text("total"), Info(entry.FormatMinutes(stats.TotalMinutes)))
	_, _ = fmt.Fprintf(w, "  %s\n", Silent(timeline(stats.Entries, now, a.loc, 48)))
	return nil
}
