package stats

import (
	"math"

	"nicegauss/domain/core"
	"nicegauss/domain/dist"
)

// DerivedMoments recomputes a count-weighted mean and standard deviation from
// the buckets themselves. The dataset ships its own mean and stdev; this is
// the cross-check that they still describe the distribution they ride with.
func DerivedMoments(summary *dist.BaseSummary) (dist.Moments, error) {
	total := summary.TotalCount()
	if total == 0 {
		return dist.Moments{}, core.NewDegenerateInputError("distribution has no observed items")
	}

	var mean, sqSum float64
	for _, b := range summary.Buckets {
		mean += b.Niceness * float64(b.Count)
		sqSum += float64(b.Count) * b.Niceness * b.Niceness
	}

	mean /= float64(total)
	variance := sqSum/float64(total) - mean*mean
	if variance < 0 {
		// Roundoff on near-constant distributions.
		variance = 0
	}

	return dist.Moments{Mean: mean, Stdev: math.Sqrt(variance)}, nil
}
