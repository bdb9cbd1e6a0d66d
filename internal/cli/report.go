package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Suzii/attendance-tracker/internal/calendar"
)

var reportCmd = LeafCommand{
	Use:   "report",
	Short: "Show the monthly attendance report",
	StrFlags: []StringFlag{
		{Name: "month", Shorthand: "m", Usage: "month as YYYY-MM (default: current month)"},
		{Name: "export", Usage: "export format (pdf)"},
		{Name: "output", Shorthand: "o", Usage: "output path for --export (default: attendance-YYYY-MM.pdf)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		month, _ := cmd.Flags().GetString("month")
		export, _ := cmd.Flags().GetString("export")
		output, _ := cmd.Flags().GetString("output")
		return withApp(cmd, func(a *app) error {
			return runReport(cmd, a, month, export, output)
		})
	},
}.Build()

// resolveMonth returns month when it is a valid "YYYY-MM" key and the current
// month otherwise. The bool is false when a fallback happened.
func resolveMonth(a *app, month string) (string, bool) {
	if month == "" {
		return calendar.CurrentMonth(a.now()), true
	}
	if !calendar.IsValidYearMonth(month) {
		return calendar.CurrentMonth(a.now()), false
	}
	return month, true
}

func runReport(cmd *cobra.Command, a *app, monthFlag, exportFlag, outputFlag string) error {
	month, ok := resolveMonth(a, monthFlag)
	if !ok {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s invalid month %q, showing %s\n",
			Warning("warning:"), monthFlag, calendar.FormatMonth(month))
	}

	if exportFlag != "" {
		if exportFlag != "pdf" {
			return fmt.Errorf("unsupported export format %q (supported: pdf)", exportFlag)
		}
		report, err := a.monthReport(month)
		if err != nil {
			return err
		}
		outputPath := outputFlag
		if outputPath == "" {
			outputPath = fmt.Sprintf("attendance-%s.pdf", month)
		}
		if err := renderReportPDF(report, outputPath); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported report to %s\n", outputPath)
		return nil
	}

	return runReportTable(cmd, a, month)
}
