package excel

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"nicegauss/app"
	"nicegauss/internal/testkit"
)

func TestWrite_RoundTrip(t *testing.T) {
	summary, err := testkit.GaussianSummary(10, 0.5, 0.1, 100_000_000)
	require.NoError(t, err)
	report := app.NewAnalysisService(nil).Analyze(summary)

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, NewReportWriter().Write(report, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, sheetDistribution)
	assert.Contains(t, sheets, sheetFit)
	assert.Contains(t, sheets, sheetTails)
	assert.NotContains(t, sheets, "Sheet1")

	// Header plus one row per bucket.
	rows, err := f.GetRows(sheetDistribution)
	require.NoError(t, err)
	assert.Len(t, rows, len(summary.Buckets)+1)

	// Three tail events behind the header.
	tailRows, err := f.GetRows(sheetTails)
	require.NoError(t, err)
	require.Len(t, tailRows, 4)
	assert.Equal(t, "perfectly nice", tailRows[1][0])
	assert.Equal(t, "off-by-one", tailRows[2][0])
	assert.Equal(t, "off-by-two", tailRows[3][0])

	cell, err := f.GetCellValue(sheetFit, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Base", cell)
}
