package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nicegauss/adapters/api"
	"nicegauss/adapters/excel"
	"nicegauss/app"
	"nicegauss/internal/config"
	"nicegauss/internal/render"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nicegauss",
		Short: "Gaussian analysis of nice-number niceness distributions",
		Long: `Fetches per-base niceness distributions from the nice-numbers data
service, fits a Gaussian to the observed densities, scores the fit (R²,
chi-squared) and compares predicted rare-event counts against the counts
actually observed.`,
	}

	rootCmd.AddCommand(newAnalyzeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newAnalyzeCmd() *cobra.Command {
	var base int
	var all bool
	var asJSON bool
	var noPlots bool
	var exportPath string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Fetch the dataset and run the Gaussian goodness-of-fit analysis",
		Long: `Analyze one base's niceness distribution against a Gaussian model.

Without flags the base with the largest detailed search is analyzed, the
same selection the upstream tooling makes. --base picks a specific base,
--all analyzes every base in the dataset.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			client := api.NewClient(cfg.APIURL, cfg.APITimeout)
			svc := app.NewAnalysisService(client)
			ctx := cmd.Context()

			var reports []*app.Report
			switch {
			case all:
				reports, err = svc.AnalyzeAll(ctx)
			case base > 0:
				var report *app.Report
				report, err = svc.AnalyzeBase(ctx, base)
				reports = []*app.Report{report}
			default:
				var report *app.Report
				report, err = svc.AnalyzeBest(ctx)
				reports = []*app.Report{report}
			}
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(reports)
			}

			for _, report := range reports {
				fmt.Fprintln(cmd.OutOrStdout(), render.Report(report, !noPlots))
			}

			if exportPath != "" {
				if len(reports) != 1 {
					return fmt.Errorf("--export works on a single-base analysis")
				}
				if err := excel.NewReportWriter().Write(reports[0], exportPath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "report exported to %s\n", exportPath)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&base, "base", 0, "Analyze a specific base (default: the most-searched base)")
	cmd.Flags().BoolVar(&all, "all", false, "Analyze every base in the dataset")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit reports as JSON instead of text")
	cmd.Flags().BoolVar(&noPlots, "no-plots", false, "Skip the terminal curve plots")
	cmd.Flags().StringVar(&exportPath, "export", "", "Write the report to an xlsx workbook at this path")
	cmd.MarkFlagsMutuallyExclusive("base", "all")

	return cmd
}
