package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Chamz87/IBM-Capstone-SCE/internal/dashboard"
	"github.com/Chamz87/IBM-Capstone-SCE/internal/figure"
	"github.com/Chamz87/IBM-Capstone-SCE/internal/launch"
)

func newRenderCmd(root *rootOptions) *cobra.Command {
	var (
		site       string
		low        float64
		high       float64
		which      string
		outputJSON bool
		dataset    datasetOptions
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Compute the dashboard charts without starting a server",
		Long: `Loads the dataset and computes the charts for one site and payload range,
exactly as the dashboard would. The payload range is exclusive on both ends
and defaults to the dataset's payload bounds.

Figures: pie (success-pie-chart), scatter (success-payload-scatter-chart), all`,
		Example: `  launchdash render
  launchdash render --site "KSC LC-39A" --low 2000 --high 8000
  launchdash render --figure scatter --json > scatter.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load(cmd)
			if err != nil {
				return err
			}
			sc, err := dataset.resolve(cmd, cfg.Dataset)
			if err != nil {
				return err
			}
			ids, err := figureIDs(which)
			if err != nil {
				return err
			}

			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ds, err := loadDataset(cmd.Context(), sc, logger)
			if err != nil {
				return fmt.Errorf("loading dataset: %w", err)
			}

			ctrl := dashboard.New(ds)
			rng := ctrl.InitialRange()
			if cmd.Flags().Changed("low") {
				rng.Low = low
			}
			if cmd.Flags().Changed("high") {
				rng.High = high
			}

			out := render(ctrl, site, rng, ids)
			if outputJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			printFigures(cmd.OutOrStdout(), site, rng, ids, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&site, "site", launch.AllSites, "launch site to render")
	cmd.Flags().Float64Var(&low, "low", 0, "exclusive lower payload bound in kg (default: dataset minimum)")
	cmd.Flags().Float64Var(&high, "high", 0, "exclusive upper payload bound in kg (default: dataset maximum)")
	cmd.Flags().StringVar(&which, "figure", "all", "figure to render (pie, scatter, all)")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "print Plotly figure JSON")
	dataset.addFlags(cmd)

	return cmd
}

func figureIDs(which string) ([]string, error) {
	switch which {
	case "pie":
		return []string{dashboard.PieChartID}, nil
	case "scatter":
		return []string{dashboard.ScatterChartID}, nil
	case "all", "":
		return []string{dashboard.PieChartID, dashboard.ScatterChartID}, nil
	default:
		return nil, fmt.Errorf("unknown figure %q, must be one of: pie, scatter, all", which)
	}
}

func render(ctrl *dashboard.Controller, site string, rng launch.PayloadRange, ids []string) map[string]figure.Figure {
	out := make(map[string]figure.Figure, len(ids))
	for _, id := range ids {
		switch id {
		case dashboard.PieChartID:
			out[id] = ctrl.Distribution(site)
		case dashboard.ScatterChartID:
			out[id] = ctrl.Correlation(site, rng)
		}
	}
	return out
}

func printFigures(w io.Writer, site string, rng launch.PayloadRange, ids []string, figs map[string]figure.Figure) {
	fmt.Fprintf(w, "Site: %s\n", site)
	fmt.Fprintf(w, "Payload range: (%g, %g) kg\n", rng.Low, rng.High)

	for _, id := range ids {
		f := figs[id]
		fmt.Fprintln(w)
		fmt.Fprintf(w, "[%s]\n", id)
		if f.IsEmpty() {
			fmt.Fprintln(w, "  (empty)")
			continue
		}
		fmt.Fprintf(w, "  %s\n", f.TitleText())
		for _, tr := range f.Data {
			switch tr.Type {
			case "pie":
				for i, label := range tr.Labels {
					fmt.Fprintf(w, "  %-24s %g\n", label, tr.Values[i])
				}
			default:
				fmt.Fprintf(w, "  %-24s %d points\n", tr.Name, len(tr.X))
			}
		}
	}
}
