package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Suzii/attendance-tracker/internal/calendar"
	"github.com/Suzii/attendance-tracker/internal/entry"
	"github.com/Suzii/attendance-tracker/internal/timetrack"
)

const (
	dayColWidth   = 10
	totalColWidth = 9
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	footerStyle  = lipgloss.NewStyle().Faint(true)
	weekendStyle = lipgloss.NewStyle().Faint(true)
	weekStyle    = lipgloss.NewStyle().Bold(true)
)

// renderMonthTable renders the report as a week-by-week listing.
func renderMonthTable(r timetrack.MonthReport) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(calendar.FormatMonth(r.Month)))
	b.WriteString("  ")
	b.WriteString(Silent(fmt.Sprintf("%s/day", entry.FormatDecimal(r.DailyMinutes))))
	b.WriteString("\n\n")

	for _, w := range r.Weeks {
		for _, d := range w.Days {
			b.WriteString(renderDayRow(d))
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s / %s  %s\n\n",
			weekStyle.Render(padRight(fmt.Sprintf("Week %d", w.WeekNumber), dayColWidth)),
			padLeft(entry.FormatMinutes(w.TotalMinutes), totalColWidth),
			entry.FormatMinutes(w.TargetMinutes),
			StatusColor(w.Status, string(w.Status)),
		)
	}

	fmt.Fprintf(&b, "%s %s / %s  %s  %s\n",
		headerStyle.Render(padRight("Total", dayColWidth)),
		padLeft(entry.FormatMinutes(r.TotalMinutes), totalColWidth),
		entry.FormatMinutes(r.ExpectedMinutes),
		StatusColor(r.Status, string(r.Status)),
		formatBalance(r.Balance()),
	)
	fmt.Fprintf(&b, "%s\n", Silent(fmt.Sprintf("%d workdays, %s sick, %s vacation, %d public holidays",
		r.Workdays, formatDays(r.SickDays), formatDays(r.VacationDays), r.PublicHolidays)))
	return b.String()
}

func renderDayRow(d timetrack.DayStats) string {
	t, _ := calendar.ParseDate(d.Date)
	label := fmt.Sprintf("%s %02d", calendar.DayAbbrev(t), t.Day())

	total := ""
	if d.TotalMinutes > 0 || d.HasOpenEntry {
		total = entry.FormatMinutes(d.TotalMinutes)
	}

	var notes []string
	if n := len(d.Entries); n > 0 {
		notes = append(notes, Silent(fmt.Sprintf("%d entries", n)))
	}
	if d.HasOpenEntry {
		notes = append(notes, Primary("running"))
	}
	switch {
	case d.IsPublicHoliday:
		notes = append(notes, Info(d.HolidayName))
	case !d.SpecialDay.IsNone():
		notes = append(notes, Info(d.SpecialDay.Label()))
	}

	row := fmt.Sprintf("  %s %s  %s", padRight(label, dayColWidth-2), padLeft(total, totalColWidth), strings.Join(notes, ", "))
	if d.IsWeekend {
		return weekendStyle.Render(strings.TrimRight(row, " "))
	}
	return strings.TrimRight(row, " ")
}

func formatDays(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// reportModel browses month reports; left and right switch months.
type reportModel struct {
	app    *app
	month  string
	report timetrack.MonthReport
	err    error
}

func (m reportModel) Init() tea.Cmd {
	return nil
}

func (m reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	var next string
	var err error
	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		next, err = calendar.PreviousMonth(m.month)
	case "right", "l":
		next, err = calendar.NextMonth(m.month)
	default:
		return m, nil
	}
	if err != nil || !calendar.IsValidYearMonth(next) {
		return m, nil
	}
	report, err := m.app.monthReport(next)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.month, m.report = next, report
	return m, nil
}

func (m reportModel) View() string {
	return renderMonthTable(m.report) + "\n" + footerStyle.Render("←/→ month  q quit")
}

func runReportTable(cmd *cobra.Command, a *app, month string) error {
	report, err := a.monthReport(month)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	// Non-TTY fallback: print static table
	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		return printStaticMonthTable(out, report)
	}

	final, err := tea.NewProgram(reportModel{app: a, month: month, report: report}, tea.WithAltScreen(), tea.WithOutput(out)).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(reportModel); ok && m.err != nil {
		return m.err
	}
	return nil
}

func printStaticMonthTable(w io.Writer, report timetrack.MonthReport) error {
	_, err := fmt.Fprint(w, renderMonthTable(report))
	return err
}
