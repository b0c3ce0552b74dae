package stats

import (
	"gonum.org/v1/gonum/stat/distuv"

	"nicegauss/domain/core"
	"nicegauss/domain/dist"
)

// TailEstimator turns the summary's mean and stdev into rare-event estimates
// for three nested niceness thresholds: a perfectly nice number, an
// off-by-one, and an off-by-two. Each event's probability is the exclusive
// band below the previous threshold, and each is checked against the count
// the dataset actually recorded.
type TailEstimator struct{}

// NewTailEstimator creates a new tail probability estimator
func NewTailEstimator() *TailEstimator {
	return &TailEstimator{}
}

// Estimate computes the three tail events in order. The perfectly-nice event
// draws its trial count from the nice-only search; the off-by-one and
// off-by-two events draw theirs from the detailed search. The two searches
// are different sampling universes and must not be conflated.
func (e *TailEstimator) Estimate(summary *dist.BaseSummary) ([]dist.TailEvent, error) {
	if summary.NicenessStdev <= 0 {
		return nil, core.NewDegenerateInputError("niceness stdev must be positive")
	}

	base := summary.Base
	mean := summary.NicenessMean
	stdev := summary.NicenessStdev

	zScore := func(threshold float64) float64 {
		return (threshold - mean) / stdev
	}

	// Perfectly nice: all base digits used exactly once.
	z1 := zScore(1.0)
	p1 := distuv.UnitNormal.Survival(z1)
	perfect := dist.TailEvent{
		Label:                "perfectly nice",
		NicenessThreshold:    1.0,
		ZScore:               z1,
		ExclusiveProbability: p1,
		SearchedCount:        summary.CheckedNiceOnly,
		ExpectedCount:        float64(summary.CheckedNiceOnly) * p1,
		ActualCount:          actualCount(summary, base),
	}

	// Off-by-one: exclusive band between (base-1)/base and perfect.
	t2 := float64(base-1) / float64(base)
	z2 := zScore(t2)
	p2 := distuv.UnitNormal.Survival(z2) - p1
	offByOne := dist.TailEvent{
		Label:                "off-by-one",
		NicenessThreshold:    t2,
		ZScore:               z2,
		ExclusiveProbability: p2,
		SearchedCount:        summary.CheckedDetailed,
		ExpectedCount:        float64(summary.CheckedDetailed) * p2,
		ActualCount:          actualCount(summary, base-1),
	}

	// Off-by-two: exclusive band between (base-2)/base and off-by-one.
	t3 := float64(base-2) / float64(base)
	z3 := zScore(t3)
	p3 := distuv.UnitNormal.Survival(z3) - p1 - p2
	offByTwo := dist.TailEvent{
		Label:                "off-by-two",
		NicenessThreshold:    t3,
		ZScore:               z3,
		ExclusiveProbability: p3,
		SearchedCount:        summary.CheckedDetailed,
		ExpectedCount:        float64(summary.CheckedDetailed) * p3,
		ActualCount:          actualCount(summary, base-2),
	}

	return []dist.TailEvent{perfect, offByOne, offByTwo}, nil
}

// actualCount resolves a bucket lookup to its observed count. No bucket at
// that distance means nothing was found there, which is a zero, not an error.
func actualCount(summary *dist.BaseSummary, numUniques int) int64 {
	count, ok := summary.CountForUniques(numUniques)
	if !ok {
		return 0
	}
	return count
}
