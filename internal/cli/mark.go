package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Suzii/attendance-tracker/internal/entry"
)

var markKinds = []string{"none", "sick", "vacation"}

var markCmd = LeafCommand{
	Use:   "mark <date> [none|sick|vacation]",
	Short: "Mark a day as sick day or vacation, or clear the mark",
	Args:  cobra.RangeArgs(1, 2),
	StrFlags: []StringFlag{
		{Name: "portion", Shorthand: "p", Usage: "full, first or second half", Default: "full"},
	},
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		portion, _ := cmd.Flags().GetString("portion")
		yes, _ := cmd.Flags().GetBool("yes")
		kind := ""
		if len(args) > 1 {
			kind = args[1]
		}
		return withApp(cmd, func(a *app) error {
			date, err := resolveDateArg(a, args[:1])
			if err != nil {
				return err
			}
			return runMark(cmd, a, NewPromptKit(), date, kind, portion, yes)
		})
	},
}.Build()

// parseMark builds the special day for a kind name and a portion.
func parseMark(kind, portion string) (entry.SpecialDay, error) {
	p, err := entry.ParsePortion(portion)
	if err != nil {
		return entry.None, err
	}
	switch kind {
	case "none":
		return entry.None, nil
	case "sick":
		return entry.Sick(p), nil
	case "vacation":
		return entry.Vacation(p), nil
	}
	return entry.None, fmt.Errorf("unknown mark %q (expected none, sick or vacation)", kind)
}

func runMark(cmd *cobra.Command, a *app, pk PromptKit, date, kind, portion string, yes bool) error {
	if kind == "" {
		i, err := pk.Select("Mark "+formatDate(date)+" as", markKinds)
		if err != nil {
			return err
		}
		kind = markKinds[i]
	}
	sd, err := parseMark(kind, portion)
	if err != nil {
		return err
	}
	if err := a.tracker.CanSetSpecialDay(date, sd); err != nil {
		return err
	}

	rec := a.tracker.Day(date)
	if sd.IsFullDay() && len(rec.Entries) > 0 {
		confirm := confirmFor(pk, yes)
		ok, err := confirm(fmt.Sprintf("%s removes %d time entries of %s. Continue?",
			sd.Label(), len(rec.Entries), formatDate(date)))
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
			return nil
		}
	}

	if _, err := a.tracker.SetSpecialDay(cmd.Context(), date, sd); err != nil {
		return err
	}

	label := sd.Label()
	if sd.IsNone() {
		label = "no absence"
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s as %s\n", Primary("marked"), formatDate(date), Info(label))
	return nil
}
