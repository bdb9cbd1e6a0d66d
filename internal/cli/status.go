package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Suzii/attendance-tracker/internal/calendar"
	"github.com/Suzii/attendance-tracker/internal/entry"
	"github.com/Suzii/attendance-tracker/internal/timetrack"
)

var statusCmd = LeafCommand{
	Use:   "status",
	Short: "Show the running session and today's, this week's and this month's totals",
	BoolFlags: []BoolFlag{
		{Name: "watch", Usage: "refresh every second until q is pressed"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		watch, _ := cmd.Flags().GetBool("watch")
		return withApp(cmd, func(a *app) error {
			if watch {
				return runStatusWatch(cmd, a)
			}
			return runStatus(cmd, a)
		})
	},
}.Build()

func runStatus(cmd *cobra.Command, a *app) error {
	out, err := renderStatus(a)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// renderStatus reads the tracker and renders the status block. It never
// changes state, so the watch loop can call it on every tick.
func renderStatus(a *app) (string, error) {
	now := a.now()
	today := calendar.DateKey(now)
	var b strings.Builder

	stats, err := a.dayStats(today)
	if err != nil {
		return "", err
	}

	label := formatDate(today)
	if stats.IsPublicHoliday {
		label += "  " + Info(stats.HolidayName)
	} else if !stats.SpecialDay.IsNone() {
		label += "  " + Info(stats.SpecialDay.Label())
	}
	fmt.Fprintf(&b, "%s  %s\n", Silent("Today:      "), label)

	if ref, ok := a.tracker.Tracking(); ok {
		elapsed, _ := a.tracker.Elapsed(now)
		since := formatClock(ref.Entry.Start.In(a.loc))
		if ref.Date != today {
			since = formatDate(ref.Date) + " " + since
		}
		fmt.Fprintf(&b, "%s  %s since %s, %s\n", Silent("Tracking:   "),
			Primary("running"), since, Info(formatElapsed(elapsed)))
	} else {
		fmt.Fprintf(&b, "%s  %s\n", Silent("Tracking:   "), Silent("not running"))
	}

	fmt.Fprintf(&b, "%s  %s  %s\n", Silent("Today total:"),
		Info(entry.FormatMinutes(stats.TotalMinutes)),
		Silent(timeline(stats.Entries, now, a.loc, 48)))

	report, err := a.monthReport(calendar.MonthOf(today))
	if err != nil {
		return "", err
	}
	if w, ok := weekOf(report, today); ok {
		fmt.Fprintf(&b, "%s  %s / %s  %s\n", Silent("This week:  "),
			Info(entry.FormatMinutes(w.TotalMinutes)),
			entry.FormatMinutes(w.TargetMinutes),
			StatusColor(w.Status, string(w.Status)))
	}
	fmt.Fprintf(&b, "%s  %s / %s  %s\n", Silent("This month: "),
		Info(entry.FormatMinutes(report.TotalMinutes)),
		entry.FormatMinutes(report.ExpectedMinutes),
		formatBalance(report.Balance()))

	for _, issue := range a.tracker.Issues() {
		style := Warning
		if issue.Blocking() {
			style = Error
		}
		fmt.Fprintf(&b, "%s\n", style("! "+issue.Format()))
	}
	return b.String(), nil
}

func weekOf(report timetrack.MonthReport, date string) (timetrack.WeekSummary, bool) {
	for _, w := range report.Weeks {
		for _, d := range w.Days {
			if d.Date == date {
				return w, true
			}
		}
	}
	return timetrack.WeekSummary{}, false
}

func formatElapsed(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

func formatBalance(m int) string {
	if m >= 0 {
		return StatusColor(timetrack.StatusMet, "+"+entry.FormatMinutes(m))
	}
	return StatusColor(timetrack.StatusWayUnder, entry.FormatMinutes(m))
}

// tickMsg drives the watch loop.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type statusModel struct {
	app  *app
	view string
	err  error
}

func (m statusModel) Init() tea.Cmd {
	return tick()
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tickMsg:
		m.view, m.err = renderStatus(m.app)
		if m.err != nil {
			return m, tea.Quit
		}
		return m, tick()
	}
	return m, nil
}

func (m statusModel) View() string {
	return m.view + "\n" + footerStyle.Render("q quit")
}

func runStatusWatch(cmd *cobra.Command, a *app) error {
	out := cmd.OutOrStdout()

	// Non-TTY fallback: print once
	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		return runStatus(cmd, a)
	}

	view, err := renderStatus(a)
	if err != nil {
		return err
	}
	final, err := tea.NewProgram(statusModel{app: a, view: view}, tea.WithOutput(out)).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(statusModel); ok && m.err != nil {
		return m.err
	}
	return nil
}
