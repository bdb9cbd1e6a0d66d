package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Suzii/attendance-tracker/internal/timetrack"
)

var (
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C00"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00CFCF"))
	silentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	textStyle    = lipgloss.NewStyle()
)

func Primary(text string) string { return primaryStyle.Render(text) }
func Error(text string) string   { return errorStyle.Render(text) }
func Warning(text string) string { return warningStyle.Render(text) }
func Info(text string) string    { return infoStyle.Render(text) }
func Silent(text string) string  { return silentStyle.Render(text) }
func Text(text string) string    { return textStyle.Render(text) }

var statusStyles = map[timetrack.Status]lipgloss.Style{
	timetrack.StatusOvertime: lipgloss.NewStyle().Foreground(lipgloss.Color("#B46CFF")),
	timetrack.StatusMet:      lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")),
	timetrack.StatusUnder:    lipgloss.NewStyle().Foreground(lipgloss.Color("#EAB308")),
	timetrack.StatusWayUnder: lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
}

// StatusColor renders text in the color of a week or month status.
func StatusColor(s timetrack.Status, text string) string {
	if style, ok := statusStyles[s]; ok {
		return style.Render(text)
	}
	return text
}
