// Package render draws analysis reports on the terminal: styled statistics
// plus ASCII plots of the observed distribution and its Gaussian fit. It is a
// pure consumer of already-computed arrays and never feeds back into the
// analysis.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"nicegauss/app"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

const (
	plotHeight = 16
	plotWidth  = 100
)

// Report renders one analysis report to a string.
func Report(r *app.Report, withPlots bool) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Base %d niceness distribution", r.Base)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("run %s · mean %.6f · stdev %.6f · %d buckets",
		r.RunID, r.NicenessMean, r.NicenessStdev, len(r.Observed))))
	b.WriteString("\n\n")

	if withPlots && len(r.Observed) > 1 {
		b.WriteString(distributionPlot(r))
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Gaussian curve fitting"))
	b.WriteString("\n")
	if r.FitNote != "" {
		b.WriteString(warnStyle.Render("  not computable: " + r.FitNote))
		b.WriteString("\n")
	} else {
		if r.RSquared != nil {
			fmt.Fprintf(&b, "  R² (coefficient of determination): %.6f\n", *r.RSquared)
		} else {
			b.WriteString(warnStyle.Render("  R²: not computable: " + r.RSquaredNote))
			b.WriteString("\n")
		}
		if r.ChiSquare != nil {
			chi := r.ChiSquare
			fmt.Fprintf(&b, "  Chi-squared test: χ²=%.4f, dof=%d, p-value=%.4f\n",
				chi.ChiSquare, chi.DegreesOfFreedom, chi.PValue)
			fmt.Fprintf(&b, "    (bins used: %d/%d, %d filtered for low expected counts)\n",
				chi.BinsUsed, chi.BinsTotal, chi.BinsTotal-chi.BinsUsed)
		} else {
			b.WriteString(warnStyle.Render("  Chi-squared test: not computable: " + r.ChiNote))
			b.WriteString("\n")
		}
		if withPlots && len(r.Fitted) > 1 {
			b.WriteString("\n")
			b.WriteString(fitPlot(r))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Tail probabilities"))
	b.WriteString("\n")
	if r.TailNote != "" {
		b.WriteString(warnStyle.Render("  not computable: " + r.TailNote))
		b.WriteString("\n")
	}
	for _, ev := range r.TailEvents {
		fmt.Fprintf(&b, "  %s (%.1f%% nice, Z=%.4f): P=%.4e\n",
			ev.Label, 100*ev.NicenessThreshold, ev.ZScore, ev.ExclusiveProbability)
		fmt.Fprintf(&b, "    searched: %.2e, expected: %.2f, actual: %d\n",
			float64(ev.SearchedCount), ev.ExpectedCount, ev.ActualCount)
	}

	if r.DerivedMoments != nil {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(fmt.Sprintf(
			"bucket-derived moments: mean %.6f (Δ%+.2e), stdev %.6f (Δ%+.2e)",
			r.DerivedMoments.Mean, r.DerivedMoments.Mean-r.NicenessMean,
			r.DerivedMoments.Stdev, r.DerivedMoments.Stdev-r.NicenessStdev)))
		b.WriteString("\n")
	}

	return b.String()
}

// distributionPlot draws the observed density curve with the mean and the
// ±3σ/±6σ positions annotated underneath, mirroring the markers the upstream
// tooling draws.
func distributionPlot(r *app.Report) string {
	plot := asciigraph.Plot(r.Observed,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(fmt.Sprintf("Base %d uniques distribution (niceness %.3f to %.3f)",
			r.Base, r.Niceness[0], r.Niceness[len(r.Niceness)-1])),
	)

	markers := labelStyle.Render(fmt.Sprintf(
		"μ=%.4f · μ±3σ=[%.4f, %.4f] · μ±6σ=[%.4f, %.4f]",
		r.NicenessMean,
		r.NicenessMean-3*r.NicenessStdev, r.NicenessMean+3*r.NicenessStdev,
		r.NicenessMean-6*r.NicenessStdev, r.NicenessMean+6*r.NicenessStdev,
	))

	return plot + "\n" + markers + "\n"
}

// fitPlot overlays the observed curve and the fitted Gaussian.
func fitPlot(r *app.Report) string {
	series := [][]float64{r.Observed, r.Fitted}
	caption := fmt.Sprintf("Base %d: actual vs Gaussian", r.Base)
	if r.RSquared != nil {
		caption = fmt.Sprintf("%s (R²=%.6f)", caption, *r.RSquared)
	}
	return asciigraph.PlotMany(series,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
		asciigraph.Caption(caption),
	)
}
