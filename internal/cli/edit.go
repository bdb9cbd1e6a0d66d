package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Suzii/attendance-tracker/internal/calendar"
	"github.com/Suzii/attendance-tracker/internal/entry"
)

var editCmd = LeafCommand{
	Use:   "edit <date>",
	Short: "Replace the entries of a day",
	Long: `Replace the time entries of a day with a comma separated list of spans.
A span without an end ("13:00-") stays open. An empty list removes all entries.

  attendance edit yesterday --entries "09:00-12:00,12:30-17:15"`,
	Args: cobra.ExactArgs(1),
	StrFlags: []StringFlag{
		{Name: "entries", Shorthand: "e", Usage: "comma separated spans, e.g. 09:00-12:00,13:00-"},
		{Name: "special", Usage: "special day: none, sick, vacation, sick_first_half, ..."},
	},
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var entriesFlag *string
		if cmd.Flags().Changed("entries") {
			v, _ := cmd.Flags().GetString("entries")
			entriesFlag = &v
		}
		special, _ := cmd.Flags().GetString("special")
		yes, _ := cmd.Flags().GetBool("yes")
		return withApp(cmd, func(a *app) error {
			date, err := resolveDateArg(a, args)
			if err != nil {
				return err
			}
			return runEdit(cmd, a, NewPromptKit(), date, entriesFlag, special, yes)
		})
	},
}.Build()

// parseSpans turns "09:00-12:00,13:00-" into entries anchored on date. IDs of
// existing entries are reused by position; newID fills the rest.
func parseSpans(input, date string, loc *time.Location, existing []entry.TimeEntry, newID func() string) ([]entry.TimeEntry, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return []entry.TimeEntry{}, nil
	}

	parts := strings.Split(input, ",")
	entries := make([]entry.TimeEntry, 0, len(parts))
	for i, part := range parts {
		from, to, ok := strings.Cut(strings.TrimSpace(part), "-")
		if !ok {
			return nil, fmt.Errorf("invalid span %q (expected HH:MM-HH:MM or HH:MM-)", part)
		}
		startTOD, err := calendar.ParseTimeOfDay(from)
		if err != nil {
			return nil, err
		}
		start, err := startTOD.On(date, loc)
		if err != nil {
			return nil, err
		}

		e := entry.TimeEntry{Start: start}
		if strings.TrimSpace(to) != "" {
			endTOD, err := calendar.ParseTimeOfDay(to)
			if err != nil {
				return nil, err
			}
			end, err := endTOD.On(date, loc)
			if err != nil {
				return nil, err
			}
			e.End = &end
		}

		if i < len(existing) {
			e.ID = existing[i].ID
		} else {
			e.ID = newID()
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func parseSpecialFlag(s string, current entry.SpecialDay) (entry.SpecialDay, error) {
	switch s {
	case "":
		if current.UserSettable() {
			return current, nil
		}
		return entry.None, nil
	case "none":
		return entry.None, nil
	}
	return entry.ParseSpecialDay(s)
}

func runEdit(cmd *cobra.Command, a *app, pk PromptKit, date string, entriesFlag *string, special string, yes bool) error {
	current := a.tracker.Day(date)

	var input string
	if entriesFlag != nil {
		input = *entriesFlag
	} else {
		spans := make([]string, len(current.Entries))
		for i, e := range current.Entries {
			spans[i] = strings.TrimSuffix(formatSpan(e, a.loc), "...")
		}
		v, err := pk.Prompt(fmt.Sprintf("Entries for %s (now: %s)", formatDate(date), strings.Join(spans, ",")))
		if err != nil {
			return err
		}
		input = v
	}

	entries, err := parseSpans(input, date, a.loc, current.Entries, a.newID)
	if err != nil {
		return err
	}
	sd, err := parseSpecialFlag(special, current.SpecialDay)
	if err != nil {
		return err
	}

	next := entry.DayRecord{Date: date, Entries: entries, SpecialDay: sd}
	if err := a.tracker.CanUpdateDay(next); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s\n", Primary(formatDate(date)))
	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "  %s\n", formatSpan(e, a.loc))
	}
	if !sd.IsNone() {
		_, _ = fmt.Fprintf(w, "  %s\n", Info(sd.Label()))
	}

	confirm := confirmFor(pk, yes)
	ok, err := confirm(fmt.Sprintf("Replace %d entries with %d?", len(current.Entries), len(entries)))
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(w, "cancelled")
		return nil
	}

	if _, err := a.tracker.UpdateDay(cmd.Context(), next); err != nil {
		return err
	}
	stats, err := a.dayStats(date)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "%s %s, total %s\n", Primary("updated"), formatDate(date), Info(entry.FormatMinutes(stats.TotalMinutes)))
	return nil
}
