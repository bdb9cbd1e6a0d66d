package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Suzii/attendance-tracker/internal/calendar"
	"github.com/Suzii/attendance-tracker/internal/holiday"
)

var holidaysCmd = LeafCommand{
	Use:   "holidays",
	Short: "List public holidays",
	StrFlags: []StringFlag{
		{Name: "year", Shorthand: "y", Usage: "year (default: current year)"},
		{Name: "month", Shorthand: "m", Usage: "month as YYYY-MM, overrides --year"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		year, _ := cmd.Flags().GetString("year")
		month, _ := cmd.Flags().GetString("month")
		return withApp(cmd, func(a *app) error {
			return runHolidays(cmd, a, year, month)
		})
	},
}.Build()

func runHolidays(cmd *cobra.Command, a *app, yearFlag, monthFlag string) error {
	var list []holiday.Holiday
	var title string
	switch {
	case monthFlag != "":
		hs, err := a.holidays.InMonth(monthFlag)
		if err != nil {
			return err
		}
		list, title = hs, calendar.FormatMonth(monthFlag)
	default:
		year := a.now().Year()
		if yearFlag != "" {
			y, err := strconv.Atoi(yearFlag)
			if err != nil || y < 1583 || y > 9999 {
				return fmt.Errorf("invalid --year value %q", yearFlag)
			}
			year = y
		}
		list, title = a.holidays.InYear(year), strconv.Itoa(year)
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s %s\n", Primary("Public holidays"), Silent(fmt.Sprintf("(%s, %s)", a.holidays.Country(), title)))
	if len(list) == 0 {
		_, _ = fmt.Fprintf(w, "  %s\n", Silent("none"))
		return nil
	}
	for _, h := range list {
		_, _ = fmt.Fprintf(w, "  %s  %s  %s\n", Info(h.Date), Text(h.Name), Silent(h.LocalName))
	}
	return nil
}
