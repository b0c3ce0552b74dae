package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"nicegauss/app"
)

const (
	sheetDistribution = "Distribution"
	sheetFit          = "Fit"
	sheetTails        = "Tail Events"
)

// ReportWriter exports an analysis report as a workbook: the observed and
// fitted curves side by side, the goodness-of-fit scores, and the tail-event
// comparison. Presentation only; nothing reads these files back.
type ReportWriter struct{}

// NewReportWriter creates a new report writer
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// Write saves the report to an xlsx file at path.
func (w *ReportWriter) Write(report *app.Report, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := w.writeDistribution(f, report); err != nil {
		return fmt.Errorf("failed to write distribution sheet: %w", err)
	}
	if err := w.writeFit(f, report); err != nil {
		return fmt.Errorf("failed to write fit sheet: %w", err)
	}
	if err := w.writeTails(f, report); err != nil {
		return fmt.Errorf("failed to write tail events sheet: %w", err)
	}

	// Drop the default sheet so the workbook opens on the distribution.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func (w *ReportWriter) writeDistribution(f *excelize.File, report *app.Report) error {
	if _, err := f.NewSheet(sheetDistribution); err != nil {
		return err
	}

	header := []interface{}{"Num Uniques", "Niceness", "Count", "Observed Density", "Fitted Density"}
	if err := f.SetSheetRow(sheetDistribution, "A1", &header); err != nil {
		return err
	}

	for i, b := range report.Summary.Buckets {
		row := []interface{}{b.NumUniques, b.Niceness, b.Count, b.Density}
		if i < len(report.Fitted) {
			row = append(row, report.Fitted[i])
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetDistribution, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (w *ReportWriter) writeFit(f *excelize.File, report *app.Report) error {
	if _, err := f.NewSheet(sheetFit); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Base", report.Base},
		{"Niceness Mean", report.NicenessMean},
		{"Niceness Stdev", report.NicenessStdev},
	}

	if report.RSquared != nil {
		rows = append(rows, []interface{}{"R Squared", *report.RSquared})
	} else {
		rows = append(rows, []interface{}{"R Squared", report.RSquaredNote})
	}

	if report.ChiSquare != nil {
		chi := report.ChiSquare
		rows = append(rows,
			[]interface{}{"Chi Square", chi.ChiSquare},
			[]interface{}{"Degrees of Freedom", chi.DegreesOfFreedom},
			[]interface{}{"P Value", chi.PValue},
			[]interface{}{"Bins Used", chi.BinsUsed},
			[]interface{}{"Bins Total", chi.BinsTotal},
		)
	} else {
		rows = append(rows, []interface{}{"Chi Square", report.ChiNote})
	}

	if report.DerivedMoments != nil {
		rows = append(rows,
			[]interface{}{"Derived Mean", report.DerivedMoments.Mean},
			[]interface{}{"Derived Stdev", report.DerivedMoments.Stdev},
		)
	}

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheetFit, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (w *ReportWriter) writeTails(f *excelize.File, report *app.Report) error {
	if _, err := f.NewSheet(sheetTails); err != nil {
		return err
	}

	header := []interface{}{"Event", "Niceness Threshold", "Z Score", "Exclusive Probability", "Searched", "Expected", "Actual"}
	if err := f.SetSheetRow(sheetTails, "A1", &header); err != nil {
		return err
	}

	for i, ev := range report.TailEvents {
		row := []interface{}{ev.Label, ev.NicenessThreshold, ev.ZScore, ev.ExclusiveProbability, ev.SearchedCount, ev.ExpectedCount, ev.ActualCount}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetTails, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
