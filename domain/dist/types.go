package dist

import (
	"sort"

	"nicegauss/domain/core"
)

// Bucket is one aggregated row of a niceness distribution, keyed by the
// number of unique digits a candidate used in the base's representation.
type Bucket struct {
	NumUniques int     `json:"num_uniques"`
	Count      int64   `json:"count"`
	Density    float64 `json:"density"`
	Niceness   float64 `json:"niceness"`
}

// BaseSummary holds one base's niceness distribution and the summary
// statistics published alongside it. Construct through NewBaseSummary so the
// invariants (stdev > 0, non-empty, unique buckets) are checked once at the
// boundary instead of inside the fitting logic.
type BaseSummary struct {
	Base            int     `json:"base"`
	CheckedDetailed int64   `json:"checked_detailed"`
	CheckedNiceOnly int64   `json:"checked_niceonly"`
	MinimumCL       int     `json:"minimum_cl"`
	NicenessMean    float64 `json:"niceness_mean"`
	NicenessStdev   float64 `json:"niceness_stdev"`
	Buckets         []Bucket `json:"distribution"`

	countByUniques map[int]int64
}

// NewBaseSummary validates and builds a BaseSummary. Buckets are copied and
// kept sorted by niceness ascending; a lookup table keyed by NumUniques backs
// CountForUniques.
func NewBaseSummary(base int, checkedDetailed, checkedNiceOnly int64, minimumCL int, mean, stdev float64, buckets []Bucket) (*BaseSummary, error) {
	if base < 2 {
		return nil, core.NewValidationError("base", "must be at least 2")
	}
	if checkedDetailed < 0 || checkedNiceOnly < 0 {
		return nil, core.NewValidationError("checked counts", "must be non-negative")
	}
	if stdev <= 0 {
		return nil, core.NewDegenerateInputError("niceness stdev must be positive")
	}
	if len(buckets) == 0 {
		return nil, core.NewDegenerateInputError("distribution has no buckets")
	}

	sorted := make([]Bucket, len(buckets))
	copy(sorted, buckets)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Niceness < sorted[j].Niceness })

	index := make(map[int]int64, len(sorted))
	for _, b := range sorted {
		if b.Count < 0 {
			return nil, core.NewValidationError("bucket count", "must be non-negative")
		}
		if b.Density < 0 || b.Density > 1 {
			return nil, core.NewValidationError("bucket density", "must be in [0,1]")
		}
		if _, dup := index[b.NumUniques]; dup {
			return nil, core.NewValidationError("bucket num_uniques", "duplicate bucket")
		}
		index[b.NumUniques] = b.Count
	}

	return &BaseSummary{
		Base:            base,
		CheckedDetailed: checkedDetailed,
		CheckedNiceOnly: checkedNiceOnly,
		MinimumCL:       minimumCL,
		NicenessMean:    mean,
		NicenessStdev:   stdev,
		Buckets:         sorted,
		countByUniques:  index,
	}, nil
}

// CountForUniques returns the observed count for the bucket with the given
// unique-digit count. An absent bucket means nothing was observed at that
// exact distance: the count is zero, never an error.
func (s *BaseSummary) CountForUniques(numUniques int) (int64, bool) {
	count, ok := s.countByUniques[numUniques]
	return count, ok
}

// TotalDensity sums the observed density mass across all buckets.
func (s *BaseSummary) TotalDensity() float64 {
	var total float64
	for _, b := range s.Buckets {
		total += b.Density
	}
	return total
}

// TotalCount sums the observed item counts across all buckets.
func (s *BaseSummary) TotalCount() int64 {
	var total int64
	for _, b := range s.Buckets {
		total += b.Count
	}
	return total
}

// Densities returns the observed per-bucket densities in bucket order.
func (s *BaseSummary) Densities() []float64 {
	out := make([]float64, len(s.Buckets))
	for i, b := range s.Buckets {
		out[i] = b.Density
	}
	return out
}

// FittedCurve is a per-bucket theoretical density sequence, parallel to the
// summary's buckets and scaled to the same total mass as the observed
// densities.
type FittedCurve []float64

// Sum returns the curve's total density mass.
func (c FittedCurve) Sum() float64 {
	var total float64
	for _, v := range c {
		total += v
	}
	return total
}

// GoodnessOfFit reports how closely the observed distribution tracks the
// fitted Gaussian.
type GoodnessOfFit struct {
	RSquared         float64 `json:"r_squared"`
	ChiSquare        float64 `json:"chi_square"`
	DegreesOfFreedom int     `json:"degrees_of_freedom"`
	PValue           float64 `json:"p_value"`
	BinsUsed         int     `json:"bins_used"`
	BinsTotal        int     `json:"bins_total"`
}

// TailEvent is one rare-event estimate: the Gaussian-implied expected count
// for a niceness band against the count actually recorded in the dataset.
type TailEvent struct {
	Label                string  `json:"label"`
	NicenessThreshold    float64 `json:"niceness_threshold"`
	ZScore               float64 `json:"z_score"`
	ExclusiveProbability float64 `json:"exclusive_probability"`
	SearchedCount        int64   `json:"searched_count"`
	ExpectedCount        float64 `json:"expected_count"`
	ActualCount          int64   `json:"actual_count"`
}

// Moments holds a count-weighted mean and standard deviation recomputed from
// the buckets themselves, used to cross-check the summary statistics the
// dataset ships with.
type Moments struct {
	Mean  float64 `json:"mean"`
	Stdev float64 `json:"stdev"`
}
