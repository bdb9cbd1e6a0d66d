package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = LeafCommand{
	Use:   "export",
	Short: "Write all attendance data as JSON",
	StrFlags: []StringFlag{
		{Name: "output", Shorthand: "o", Usage: "file to write (default: stdout)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		return withApp(cmd, func(a *app) error {
			return runExport(cmd, a, output)
		})
	},
}.Build()

func runExport(cmd *cobra.Command, a *app, output string) error {
	raw, err := a.tracker.Export()
	if err != nil {
		return err
	}
	if output == "" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(raw))
		return nil
	}
	if err := os.WriteFile(output, append(raw, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d days to %s\n", len(a.tracker.Data()), output)
	return nil
}
