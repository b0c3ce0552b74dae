package dist

import (
	"testing"

	"nicegauss/domain/core"
)

func validBuckets() []Bucket {
	return []Bucket{
		{NumUniques: 9, Count: 30, Density: 0.3, Niceness: 0.9},
		{NumUniques: 8, Count: 70, Density: 0.7, Niceness: 0.8},
	}
}

func TestNewBaseSummary_SortsAndIndexes(t *testing.T) {
	summary, err := NewBaseSummary(10, 100, 200, 2, 0.85, 0.05, validBuckets())
	if err != nil {
		t.Fatalf("construct: %v", err)
	}

	if summary.Buckets[0].Niceness != 0.8 || summary.Buckets[1].Niceness != 0.9 {
		t.Fatalf("buckets must be sorted by niceness ascending, got %v", summary.Buckets)
	}

	count, ok := summary.CountForUniques(9)
	if !ok || count != 30 {
		t.Fatalf("expected bucket lookup (30, true), got (%d, %v)", count, ok)
	}
	count, ok = summary.CountForUniques(5)
	if ok || count != 0 {
		t.Fatalf("absent bucket must resolve to (0, false), got (%d, %v)", count, ok)
	}
}

func TestNewBaseSummary_RejectsZeroStdev(t *testing.T) {
	_, err := NewBaseSummary(10, 100, 200, 2, 0.85, 0, validBuckets())
	if !core.IsDegenerateInput(err) {
		t.Fatalf("expected degenerate input error for zero stdev, got %v", err)
	}
}

func TestNewBaseSummary_RejectsEmptyDistribution(t *testing.T) {
	_, err := NewBaseSummary(10, 100, 200, 2, 0.85, 0.05, nil)
	if !core.IsDegenerateInput(err) {
		t.Fatalf("expected degenerate input error for empty distribution, got %v", err)
	}
}

func TestNewBaseSummary_RejectsDuplicateBuckets(t *testing.T) {
	buckets := append(validBuckets(), Bucket{NumUniques: 9, Count: 5, Density: 0.0, Niceness: 0.9})
	_, err := NewBaseSummary(10, 100, 200, 2, 0.85, 0.05, buckets)
	if !core.IsValidationError(err) {
		t.Fatalf("expected validation error for duplicate bucket, got %v", err)
	}
}

func TestNewBaseSummary_RejectsSmallBase(t *testing.T) {
	_, err := NewBaseSummary(1, 100, 200, 2, 0.85, 0.05, validBuckets())
	if !core.IsValidationError(err) {
		t.Fatalf("expected validation error for base < 2, got %v", err)
	}
}

func TestTotals(t *testing.T) {
	summary, err := NewBaseSummary(10, 100, 200, 2, 0.85, 0.05, validBuckets())
	if err != nil {
		t.Fatalf("construct: %v", err)
	}

	if got := summary.TotalCount(); got != 100 {
		t.Fatalf("expected total count 100, got %d", got)
	}
	if got := summary.TotalDensity(); got != 1.0 {
		t.Fatalf("expected total density 1.0, got %v", got)
	}
}
