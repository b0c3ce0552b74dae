package app

import (
	"context"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"nicegauss/adapters/stats"
	"nicegauss/domain/core"
	"nicegauss/domain/dist"
	"nicegauss/internal"
	"nicegauss/ports"
)

// Report is the complete outcome of one base's analysis. Statistics that
// could not be computed carry a note instead of a value; a failed statistic
// never blocks the others.
type Report struct {
	RunID         string    `json:"run_id"`
	GeneratedAt   time.Time `json:"generated_at"`
	Base          int       `json:"base"`
	NicenessMean  float64   `json:"niceness_mean"`
	NicenessStdev float64   `json:"niceness_stdev"`

	Niceness []float64        `json:"niceness"`
	Observed []float64        `json:"observed_density"`
	Fitted   dist.FittedCurve `json:"fitted_density,omitempty"`
	FitNote  string           `json:"fit_note,omitempty"`

	RSquared     *float64               `json:"r_squared,omitempty"`
	RSquaredNote string                 `json:"r_squared_note,omitempty"`
	ChiSquare    *stats.ChiSquareResult `json:"chi_square,omitempty"`
	ChiNote      string                 `json:"chi_square_note,omitempty"`

	TailEvents []dist.TailEvent `json:"tail_events,omitempty"`
	TailNote   string           `json:"tail_note,omitempty"`

	DerivedMoments *dist.Moments `json:"derived_moments,omitempty"`

	Summary *dist.BaseSummary `json:"-"`
}

// AnalysisService runs the full Gaussian analysis: fetch, fit, score, tails.
type AnalysisService struct {
	bases  ports.BasesPort
	fitter *stats.GaussianFitter
	tester *stats.GoodnessTester
	tails  *stats.TailEstimator
	log    *internal.Logger
}

// NewAnalysisService creates an analysis service over a bases source.
func NewAnalysisService(bases ports.BasesPort) *AnalysisService {
	return &AnalysisService{
		bases:  bases,
		fitter: stats.NewGaussianFitter(),
		tester: stats.NewGoodnessTester(),
		tails:  stats.NewTailEstimator(),
		log:    internal.DefaultLogger,
	}
}

// Analyze runs every statistic over an already-materialized summary. Each
// statistic that signals a degenerate or insufficient input is reported as
// not computable while the rest proceed.
func (s *AnalysisService) Analyze(summary *dist.BaseSummary) *Report {
	report := &Report{
		RunID:         core.NewRunID().String(),
		GeneratedAt:   time.Now().UTC(),
		Base:          summary.Base,
		NicenessMean:  summary.NicenessMean,
		NicenessStdev: summary.NicenessStdev,
		Observed:      summary.Densities(),
		Summary:       summary,
	}

	report.Niceness = make([]float64, len(summary.Buckets))
	for i, b := range summary.Buckets {
		report.Niceness[i] = b.Niceness
	}

	fitted, err := s.fitter.Fit(summary)
	if err != nil {
		s.log.Warn("base %d: gaussian fit not computable: %v", summary.Base, err)
		report.FitNote = err.Error()
	} else {
		report.Fitted = fitted

		if rSquared, err := s.tester.RSquared(summary, fitted); err != nil {
			s.log.Warn("base %d: r-squared not computable: %v", summary.Base, err)
			report.RSquaredNote = err.Error()
		} else {
			report.RSquared = &rSquared
		}

		if chi, err := s.tester.ChiSquare(summary, fitted); err != nil {
			s.log.Warn("base %d: chi-squared not computable: %v", summary.Base, err)
			report.ChiNote = err.Error()
		} else {
			report.ChiSquare = &chi
		}
	}

	// Tail estimation depends only on the summary statistics, not the fit.
	if events, err := s.tails.Estimate(summary); err != nil {
		s.log.Warn("base %d: tail estimation not computable: %v", summary.Base, err)
		report.TailNote = err.Error()
	} else {
		report.TailEvents = events
	}

	if moments, err := stats.DerivedMoments(summary); err == nil {
		report.DerivedMoments = &moments
	}

	return report
}

// AnalyzeBest fetches all bases and analyzes the one with the most detailed
// search behind it.
func (s *AnalysisService) AnalyzeBest(ctx context.Context) (*Report, error) {
	summaries, err := s.bases.FetchBases(ctx)
	if err != nil {
		return nil, err
	}
	return s.Analyze(mostSearched(summaries)), nil
}

// AnalyzeBase fetches all bases and analyzes the requested one.
func (s *AnalysisService) AnalyzeBase(ctx context.Context, base int) (*Report, error) {
	summaries, err := s.bases.FetchBases(ctx)
	if err != nil {
		return nil, err
	}
	for _, summary := range summaries {
		if summary.Base == base {
			return s.Analyze(summary), nil
		}
	}
	return nil, core.NewBaseNotFoundError(base)
}

// AnalyzeAll fetches all bases and analyzes each of them concurrently,
// returning reports ordered by base ascending.
func (s *AnalysisService) AnalyzeAll(ctx context.Context) ([]*Report, error) {
	summaries, err := s.bases.FetchBases(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]*Report, len(summaries))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, summary := range summaries {
		i, summary := i, summary
		g.Go(func() error {
			reports[i] = s.Analyze(summary)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].Base < reports[j].Base })
	return reports, nil
}

// mostSearched picks the base with the highest detailed-search count, the
// distribution with the most data behind it.
func mostSearched(summaries []*dist.BaseSummary) *dist.BaseSummary {
	best := summaries[0]
	for _, s := range summaries[1:] {
		if s.CheckedDetailed > best.CheckedDetailed {
			best = s
		}
	}
	return best
}
