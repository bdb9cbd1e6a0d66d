package cli

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/Suzii/attendance-tracker/internal/calendar"
	"github.com/Suzii/attendance-tracker/internal/entry"
	"github.com/Suzii/attendance-tracker/internal/timetrack"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
)

// renderReportPDF writes a one-month attendance sheet to outputPath.
func renderReportPDF(r timetrack.MonthReport, outputPath string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		text.NewCol(12, "Attendance", props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, fmt.Sprintf("%s, %s per day", calendar.FormatMonth(r.Month), entry.FormatDecimal(r.DailyMinutes)), props.Text{
			Size:  12,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4)

	for _, w := range r.Weeks {
		for _, d := range w.Days {
			addPDFDayRow(m, d)
		}
		m.AddRow(7,
			text.NewCol(6, fmt.Sprintf("Week %d", w.WeekNumber), props.Text{
				Style: fontstyle.Bold,
				Size:  9,
				Color: &pdfHeaderColor,
			}),
			text.NewCol(3, string(w.Status), props.Text{
				Size:  9,
				Color: &pdfMutedColor,
			}),
			text.NewCol(3, fmt.Sprintf("%s / %s", entry.FormatMinutes(w.TotalMinutes), entry.FormatMinutes(w.TargetMinutes)), props.Text{
				Style: fontstyle.Bold,
				Size:  9,
				Align: align.Right,
			}),
		)
		m.AddRow(4)
	}

	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(10,
		text.NewCol(6, "Total", props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Color: &pdfHeaderColor,
		}),
		text.NewCol(6, fmt.Sprintf("%s / %s", entry.FormatMinutes(r.TotalMinutes), entry.FormatMinutes(r.ExpectedMinutes)), props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Align: align.Right,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(6,
		text.NewCol(12, fmt.Sprintf("%d workdays, %s sick days, %s vacation days, %d public holidays",
			r.Workdays, formatDays(r.SickDays), formatDays(r.VacationDays), r.PublicHolidays), props.Text{
			Size:  8,
			Color: &pdfMutedColor,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	return doc.Save(outputPath)
}

func addPDFDayRow(m core.Maroto, d timetrack.DayStats) {
	t, _ := calendar.ParseDate(d.Date)
	note := ""
	switch {
	case d.IsPublicHoliday:
		note = d.HolidayName
	case !d.SpecialDay.IsNone():
		note = d.SpecialDay.Label()
	}

	style := props.Text{Size: 9}
	if d.IsWeekend {
		style.Color = &pdfMutedColor
	}
	total := ""
	if d.TotalMinutes > 0 {
		total = entry.FormatMinutes(d.TotalMinutes)
	}

	noteStyle := style
	noteStyle.Size = 8
	noteStyle.Color = &pdfMutedColor
	totalStyle := style
	totalStyle.Align = align.Right

	m.AddRow(5,
		text.NewCol(3, t.Format("Mon, Jan 2"), style),
		text.NewCol(6, note, noteStyle),
		text.NewCol(3, total, totalStyle),
	)
}
