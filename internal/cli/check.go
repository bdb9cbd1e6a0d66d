package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Suzii/attendance-tracker/internal/attendance"
	"github.com/Suzii/attendance-tracker/internal/validation"
)

var checkCmd = LeafCommand{
	Use:   "check",
	Short: "Look for unclosed, overlapping or inverted time entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			return runCheck(cmd, a)
		})
	},
}.Build()

func runCheck(cmd *cobra.Command, a *app) error {
	issues := a.tracker.Issues()
	w := cmd.OutOrStdout()
	if len(issues) == 0 {
		_, _ = fmt.Fprintln(w, Primary("no issues found"))
		return nil
	}

	for _, issue := range issues {
		style := Warning
		if issue.Blocking() {
			style = Error
		}
		_, _ = fmt.Fprintf(w, "%s %s\n", style("!"), issue.Format())
	}
	if validation.HasBlocking(issues) {
		dates := validation.UnclosedDates(a.tracker.Data(), a.today())
		if len(dates) == 0 {
			_, _ = fmt.Fprintf(w, "%s\n", Silent("fix them with: attendance edit <date>"))
		}
		for _, d := range dates {
			_, _ = fmt.Fprintf(w, "%s\n", Silent("close it with: attendance edit "+d))
		}
		return attendance.ErrUnclosedEntries
	}
	return nil
}
