package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Suzii/attendance-tracker/internal/calendar"
	"github.com/Suzii/attendance-tracker/internal/settings"
)

var settingsGetCmd = LeafCommand{
	Use:   "get",
	Short: "Show the daily work hours",
	StrFlags: []StringFlag{
		{Name: "month", Shorthand: "m", Usage: "show the value in effect for a YYYY-MM month"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		month, _ := cmd.Flags().GetString("month")
		return withApp(cmd, func(a *app) error {
			return runSettingsGet(cmd, a, month)
		})
	},
}.Build()

var settingsSetCmd = LeafCommand{
	Use:   "set",
	Short: "Change the daily work hours, globally or for one month",
	Long: `Change the daily work hours (1-12 in half-hour steps).

Without --month the default changes. Months that already hold data keep the
value they were created with; use --month to change one of them.`,
	StrFlags: []StringFlag{
		{Name: "hours", Usage: "daily work hours, e.g. 7.5"},
		{Name: "month", Shorthand: "m", Usage: "apply to a single YYYY-MM month"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		hours, _ := cmd.Flags().GetString("hours")
		month, _ := cmd.Flags().GetString("month")
		return withApp(cmd, func(a *app) error {
			return runSettingsSet(cmd, a, hours, month)
		})
	},
}.Build()

var settingsCmd = GroupCommand{
	Use:   "settings",
	Short: "Show or change the daily work hours",
	Subcommands: []*cobra.Command{
		settingsGetCmd,
		settingsSetCmd,
	},
}.Build()

func runSettingsGet(cmd *cobra.Command, a *app, month string) error {
	w := cmd.OutOrStdout()
	if month != "" {
		if !calendar.IsValidYearMonth(month) {
			return fmt.Errorf("%w %q (expected YYYY-MM)", settings.ErrInvalidMonth, month)
		}
		source := "default"
		if a.settings.IsBaked(month) {
			source = "month"
		}
		_, _ = fmt.Fprintf(w, "%s: %s %s\n", calendar.FormatMonth(month),
			Info(formatHours(a.settings.WorkHoursForMonth(month))), Silent("("+source+")"))
		return nil
	}

	rec := a.settings.Record()
	_, _ = fmt.Fprintf(w, "default: %s\n", Info(formatHours(rec.Settings.DailyWorkHours)))
	for _, m := range rec.BakedMonths() {
		_, _ = fmt.Fprintf(w, "  %s  %s\n", Silent(m), formatHours(rec.MonthlySettings[m].DailyWorkHours))
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, a *app, hoursFlag, month string) error {
	if hoursFlag == "" {
		return fmt.Errorf("--hours is required")
	}
	hours, err := strconv.ParseFloat(hoursFlag, 64)
	if err != nil {
		return fmt.Errorf("invalid --hours value %q", hoursFlag)
	}

	if month != "" {
		if err := a.settings.SetMonth(cmd.Context(), month, hours); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s to %s\n",
			Primary("set"), calendar.FormatMonth(month), Info(formatHours(hours)))
		return nil
	}

	if err := a.settings.SetDefault(cmd.Context(), hours); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s default to %s\n", Primary("set"), Info(formatHours(hours)))
	return nil
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64) + "h/day"
}
