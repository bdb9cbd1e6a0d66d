package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Suzii/attendance-tracker/internal/attendance"
)

var importCmd = LeafCommand{
	Use:   "import <file>",
	Short: "Replace all attendance data with an exported JSON file",
	Args:  cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		return withApp(cmd, func(a *app) error {
			return runImport(cmd, a, NewPromptKit(), args[0], yes)
		})
	},
}.Build()

func runImport(cmd *cobra.Command, a *app, pk PromptKit, path string, yes bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if _, err := attendance.Decode(raw); err != nil {
		return err
	}

	current := len(a.tracker.Data())
	if current > 0 {
		confirm := confirmFor(pk, yes)
		ok, err := confirm(fmt.Sprintf("Replace %d stored days with the contents of %s?", current, path))
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
			return nil
		}
	}

	n, err := a.tracker.Import(cmd.Context(), raw)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %d days from %s\n", Primary("imported"), n, path)
	return nil
}
