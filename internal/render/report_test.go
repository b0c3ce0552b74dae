package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"nicegauss/app"
	"nicegauss/internal/testkit"
)

func TestReport_RendersStatistics(t *testing.T) {
	summary, err := testkit.GaussianSummary(10, 0.5, 0.1, 100_000_000)
	require.NoError(t, err)
	report := app.NewAnalysisService(nil).Analyze(summary)

	out := Report(report, false)

	for _, want := range []string{
		"Base 10 niceness distribution",
		"Gaussian curve fitting",
		"R² (coefficient of determination)",
		"Chi-squared test",
		"Tail probabilities",
		"perfectly nice",
		"off-by-one",
		"off-by-two",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered report missing %q:\n%s", want, out)
		}
	}
}

func TestReport_MarksNotComputableStatistics(t *testing.T) {
	summary, err := testkit.ConstantSummary(8, 0.5, 0.1, 1_000_000)
	require.NoError(t, err)
	report := app.NewAnalysisService(nil).Analyze(summary)

	out := Report(report, false)
	if !strings.Contains(out, "not computable") {
		t.Fatalf("expected a not-computable marker for R² on a constant distribution:\n%s", out)
	}
}

func TestReport_WithPlots(t *testing.T) {
	summary, err := testkit.GaussianSummary(10, 0.5, 0.1, 100_000_000)
	require.NoError(t, err)
	report := app.NewAnalysisService(nil).Analyze(summary)

	out := Report(report, true)
	if !strings.Contains(out, "uniques distribution") {
		t.Fatalf("expected distribution plot caption:\n%s", out)
	}
	if !strings.Contains(out, "actual vs Gaussian") {
		t.Fatalf("expected fit plot caption:\n%s", out)
	}
}
