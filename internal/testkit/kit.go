// Package testkit builds synthetic base summaries for tests: distributions
// with a known Gaussian shape, fixed counts, and deliberately broken inputs.
package testkit

import (
	"fmt"
	"math"

	"nicegauss/domain/dist"
)

// GaussianSummary builds a summary whose bucket densities follow the normal
// curve at the given mean and stdev exactly, with counts scaled to
// totalCount. The fit against its own parameters is as close to perfect as
// rounding allows.
func GaussianSummary(base int, mean, stdev float64, totalCount int64) (*dist.BaseSummary, error) {
	if base < 2 {
		return nil, fmt.Errorf("base must be at least 2, got %d", base)
	}

	pdfs := make([]float64, base)
	var pdfSum float64
	for n := 1; n <= base; n++ {
		x := float64(n) / float64(base)
		pdfs[n-1] = gaussianPDF(x, mean, stdev)
		pdfSum += pdfs[n-1]
	}

	buckets := make([]dist.Bucket, 0, base)
	for n := 1; n <= base; n++ {
		density := pdfs[n-1] / pdfSum
		buckets = append(buckets, dist.Bucket{
			NumUniques: n,
			Count:      int64(math.Round(density * float64(totalCount))),
			Density:    density,
			Niceness:   float64(n) / float64(base),
		})
	}

	return dist.NewBaseSummary(base, totalCount, totalCount*1000, 2, mean, stdev, buckets)
}

// Summary wraps dist.NewBaseSummary for fixtures that need full control over
// the buckets.
func Summary(base int, checkedDetailed, checkedNiceOnly int64, mean, stdev float64, buckets []dist.Bucket) (*dist.BaseSummary, error) {
	return dist.NewBaseSummary(base, checkedDetailed, checkedNiceOnly, 2, mean, stdev, buckets)
}

// ConstantSummary builds a distribution where every bucket carries identical
// density, the degenerate input for the R-squared computation.
func ConstantSummary(base int, mean, stdev float64, countPerBucket int64) (*dist.BaseSummary, error) {
	buckets := make([]dist.Bucket, 0, base)
	for n := 1; n <= base; n++ {
		buckets = append(buckets, dist.Bucket{
			NumUniques: n,
			Count:      countPerBucket,
			Density:    1.0 / float64(base),
			Niceness:   float64(n) / float64(base),
		})
	}
	return dist.NewBaseSummary(base, countPerBucket*int64(base), countPerBucket*int64(base), 2, mean, stdev, buckets)
}

func gaussianPDF(x, mean, stdev float64) float64 {
	z := (x - mean) / stdev
	return math.Exp(-0.5*z*z) / (stdev * math.Sqrt(2*math.Pi))
}
