package stats

import (
	"math"
	"testing"

	"nicegauss/domain/core"
	"nicegauss/domain/dist"
	"nicegauss/internal/testkit"
)

func TestFit_NormalizationInvariant(t *testing.T) {
	summary, err := testkit.GaussianSummary(10, 0.5, 0.1, 1_000_000)
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}

	fitted, err := NewGaussianFitter().Fit(summary)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}

	if len(fitted) != len(summary.Buckets) {
		t.Fatalf("expected %d fitted values, got %d", len(summary.Buckets), len(fitted))
	}

	got := fitted.Sum()
	want := summary.TotalDensity()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("fitted mass %v does not match observed mass %v", got, want)
	}
}

func TestFit_TracksGaussianShape(t *testing.T) {
	summary, err := testkit.GaussianSummary(10, 0.5, 0.1, 1_000_000)
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}

	fitted, err := NewGaussianFitter().Fit(summary)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}

	// The fixture's densities are themselves the normalized Gaussian, so the
	// fitted curve should reproduce them bucket for bucket.
	for i, b := range summary.Buckets {
		if math.Abs(fitted[i]-b.Density) > 1e-9 {
			t.Fatalf("bucket %d: fitted %v, observed %v", i, fitted[i], b.Density)
		}
	}
}

func TestFit_EmptyDistributionIsDegenerate(t *testing.T) {
	empty := &dist.BaseSummary{Base: 10, NicenessMean: 0.5, NicenessStdev: 0.1}

	_, err := NewGaussianFitter().Fit(empty)
	if !core.IsDegenerateInput(err) {
		t.Fatalf("expected degenerate input error, got %v", err)
	}
}

func TestFit_ZeroPDFMassIsDegenerate(t *testing.T) {
	// Mean so far from every bucket that the PDF underflows to zero everywhere.
	buckets := []dist.Bucket{
		{NumUniques: 9, Count: 10, Density: 0.5, Niceness: 0.9},
		{NumUniques: 10, Count: 10, Density: 0.5, Niceness: 1.0},
	}
	summary, err := dist.NewBaseSummary(10, 20, 20, 2, -1000, 0.01, buckets)
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}

	_, err = NewGaussianFitter().Fit(summary)
	if !core.IsDegenerateInput(err) {
		t.Fatalf("expected degenerate input error for zero PDF mass, got %v", err)
	}
}
