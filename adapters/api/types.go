package api

import (
	"nicegauss/domain/core"
	"nicegauss/domain/dist"
)

// baseRecord mirrors one entry of the data service's /bases response. The
// loosely-typed wire shape is re-expressed as a validated domain summary
// before it enters the analysis.
type baseRecord struct {
	ID              int                  `json:"id"`
	CheckedDetailed int64                `json:"checked_detailed"`
	CheckedNiceOnly int64                `json:"checked_niceonly"`
	MinimumCL       int                  `json:"minimum_cl"`
	NicenessMean    float64              `json:"niceness_mean"`
	NicenessStdev   float64              `json:"niceness_stdev"`
	Distribution    []distributionRecord `json:"distribution"`
}

// distributionRecord mirrors one aggregated distribution row.
type distributionRecord struct {
	NumUniques int     `json:"num_uniques"`
	Count      int64   `json:"count"`
	Density    float64 `json:"density"`
	Niceness   float64 `json:"niceness"`
}

// toDomain converts and validates a wire record.
func (r baseRecord) toDomain() (*dist.BaseSummary, error) {
	if len(r.Distribution) == 0 {
		return nil, core.NewDegenerateInputError("distribution has no buckets")
	}

	buckets := make([]dist.Bucket, len(r.Distribution))
	for i, d := range r.Distribution {
		buckets[i] = dist.Bucket{
			NumUniques: d.NumUniques,
			Count:      d.Count,
			Density:    d.Density,
			Niceness:   d.Niceness,
		}
	}

	return dist.NewBaseSummary(
		r.ID,
		r.CheckedDetailed,
		r.CheckedNiceOnly,
		r.MinimumCL,
		r.NicenessMean,
		r.NicenessStdev,
		buckets,
	)
}
