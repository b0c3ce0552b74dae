package stats

import (
	"math"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"nicegauss/domain/core"
	"nicegauss/domain/dist"
)

// Bins whose count-scale expected value falls below this are excluded from
// the chi-squared statistic, the standard validity threshold for the test.
const minExpectedCount = 5.0

// ChiSquareResult carries the filtered chi-squared test outcome.
type ChiSquareResult struct {
	ChiSquare        float64
	DegreesOfFreedom int
	PValue           float64
	BinsUsed         int
	BinsTotal        int
}

// GoodnessTester scores how well a fitted curve matches the observed
// distribution: R-squared over densities and a filtered chi-squared test over
// count-scale values.
type GoodnessTester struct{}

// NewGoodnessTester creates a new goodness-of-fit tester
func NewGoodnessTester() *GoodnessTester {
	return &GoodnessTester{}
}

// RSquared computes the coefficient of determination of the fitted curve
// against the observed densities. A constant observed distribution has zero
// total sum of squares and is reported as degenerate rather than divided by.
func (t *GoodnessTester) RSquared(summary *dist.BaseSummary, fitted dist.FittedCurve) (float64, error) {
	observed := summary.Densities()
	if len(observed) == 0 || len(observed) != len(fitted) {
		return 0, core.NewDegenerateInputError("observed and fitted curves must align")
	}

	mean, err := mstats.Mean(observed)
	if err != nil {
		return 0, core.NewDegenerateInputError("observed densities have no mean")
	}

	var ssRes, ssTot float64
	for i, obs := range observed {
		ssRes += (obs - fitted[i]) * (obs - fitted[i])
		ssTot += (obs - mean) * (obs - mean)
	}

	if ssTot == 0 {
		return 0, core.NewDegenerateInputError("observed distribution is constant, R-squared undefined")
	}

	return 1 - ssRes/ssTot, nil
}

// ChiSquare runs the filtered chi-squared goodness-of-fit test. Densities are
// rescaled to counts by the distribution's total item count so observed and
// expected share a normalization, bins with expected < 5 are dropped, and the
// p-value is the upper tail of the chi-squared distribution at bins-1 degrees
// of freedom. Mean and stdev arrive with the data rather than being
// re-estimated from it, so no extra parameters are subtracted.
func (t *GoodnessTester) ChiSquare(summary *dist.BaseSummary, fitted dist.FittedCurve) (ChiSquareResult, error) {
	observed := summary.Densities()
	if len(observed) == 0 || len(observed) != len(fitted) {
		return ChiSquareResult{}, core.NewDegenerateInputError("observed and fitted curves must align")
	}

	totalCount := float64(summary.TotalCount())

	var chiSq float64
	used := 0
	for i, obsDensity := range observed {
		obs := obsDensity * totalCount
		exp := fitted[i] * totalCount
		if exp < minExpectedCount {
			continue
		}
		chiSq += (obs - exp) * (obs - exp) / exp
		used++
	}

	result := ChiSquareResult{
		ChiSquare: chiSq,
		BinsUsed:  used,
		BinsTotal: len(observed),
	}

	if used == 0 {
		return result, core.NewInsufficientDataError("no bins with sufficient expected counts")
	}

	dof := used - 1
	result.DegreesOfFreedom = dof
	if dof < 1 {
		return result, core.NewInsufficientDataError("one retained bin leaves zero degrees of freedom")
	}

	chiDist := distuv.ChiSquared{K: float64(dof)}
	pValue := 1 - chiDist.CDF(chiSq)
	// CDF roundoff can push the upper tail a hair outside [0,1]
	result.PValue = math.Min(1, math.Max(0, pValue))

	return result, nil
}

// Evaluate combines both scores into a single goodness-of-fit report. The
// first failing statistic aborts; callers that want per-statistic skip
// behavior use RSquared and ChiSquare directly.
func (t *GoodnessTester) Evaluate(summary *dist.BaseSummary, fitted dist.FittedCurve) (dist.GoodnessOfFit, error) {
	rSquared, err := t.RSquared(summary, fitted)
	if err != nil {
		return dist.GoodnessOfFit{}, err
	}

	chi, err := t.ChiSquare(summary, fitted)
	if err != nil {
		return dist.GoodnessOfFit{}, err
	}

	return dist.GoodnessOfFit{
		RSquared:         rSquared,
		ChiSquare:        chi.ChiSquare,
		DegreesOfFreedom: chi.DegreesOfFreedom,
		PValue:           chi.PValue,
		BinsUsed:         chi.BinsUsed,
		BinsTotal:        chi.BinsTotal,
	}, nil
}
