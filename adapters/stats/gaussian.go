package stats

import (
	"gonum.org/v1/gonum/stat/distuv"

	"nicegauss/domain/core"
	"nicegauss/domain/dist"
)

// GaussianFitter evaluates the theoretical normal density over a summary's
// buckets and rescales it to the observed distribution's total mass, so the
// two curves are comparable shape-for-shape.
type GaussianFitter struct{}

// NewGaussianFitter creates a new Gaussian fitter
func NewGaussianFitter() *GaussianFitter {
	return &GaussianFitter{}
}

// Fit produces the normalized per-bucket theoretical densities. The curve is
// parallel to summary.Buckets and satisfies sum(fitted) == sum(observed
// density) up to floating-point precision.
func (f *GaussianFitter) Fit(summary *dist.BaseSummary) (dist.FittedCurve, error) {
	if len(summary.Buckets) == 0 {
		return nil, core.NewDegenerateInputError("distribution has no buckets")
	}
	if summary.NicenessStdev <= 0 {
		return nil, core.NewDegenerateInputError("niceness stdev must be positive")
	}

	normal := distuv.Normal{Mu: summary.NicenessMean, Sigma: summary.NicenessStdev}

	curve := make(dist.FittedCurve, len(summary.Buckets))
	var pdfSum float64
	for i, b := range summary.Buckets {
		curve[i] = normal.Prob(b.Niceness)
		pdfSum += curve[i]
	}

	if pdfSum == 0 {
		return nil, core.NewDegenerateInputError("gaussian PDF mass is zero over all buckets")
	}

	scale := summary.TotalDensity() / pdfSum
	for i := range curve {
		curve[i] *= scale
	}

	return curve, nil
}
