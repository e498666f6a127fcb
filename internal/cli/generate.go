package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Chamz87/IBM-Capstone-SCE/internal/config"
	"github.com/Chamz87/IBM-Capstone-SCE/internal/launch"
	"github.com/Chamz87/IBM-Capstone-SCE/internal/source"
	"github.com/Chamz87/IBM-Capstone-SCE/pkg/generate"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate sample datasets, recordings and config",
		Long: `Generates sample data for testing and experimentation.

Use "generate dataset" to create a synthetic launch CSV.
Use "generate interactions" to create a sample recording for replay.
Use "generate config" to create an example config file (JSON or YAML).`,
	}

	cmd.AddCommand(newGenerateDatasetCmd(), newGenerateInteractionsCmd(), newGenerateConfigCmd())
	return cmd
}

func newGenerateDatasetCmd() *cobra.Command {
	var output string
	opts := generate.DefaultLaunchOptions()

	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Generate a synthetic launch CSV",
		Long: `Creates a launch CSV in the dashboard's input format. Flights move through
booster generations (v1.0, v1.1, FT, B4, B5) in order; later generations
carry heavier payloads and succeed more often.`,
		Example: `  launchdash generate dataset --output spacex_launch_dash.csv
  launchdash generate dataset --count 200 --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := generate.GenerateLaunches(opts)
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating file: %w", err)
			}
			defer f.Close()

			if err := launch.WriteCSV(f, records); err != nil {
				return fmt.Errorf("writing records: %w", err)
			}

			ds := launch.NewDataset(records)
			lo, hi := ds.PayloadBounds()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Generated %d launches to %s\n", len(records), output)
			fmt.Fprintf(out, "  Sites:    %d\n", len(ds.Sites())-1)
			fmt.Fprintf(out, "  Payload:  %g - %g kg\n", lo, hi)
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", source.DefaultPath, "output file path")
	cmd.Flags().IntVar(&opts.Count, "count", opts.Count, "number of launches to generate")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed (0 = time based)")
	return cmd
}

func newGenerateInteractionsCmd() *cobra.Command {
	var output string
	opts := generate.DefaultInteractionOptions()

	cmd := &cobra.Command{
		Use:   "interactions",
		Short: "Generate a sample interaction recording",
		Long: `Creates a recording of dashboard sessions in the format "serve --record"
exports, ready for "launchdash replay".

Patterns:
  steady    Evenly spaced interactions
  burst     Concentrated bursts with quiet periods
  ramp      Gradually increasing interaction rate`,
		Example: `  launchdash generate interactions --output interactions.json --count 100 --sessions 5
  launchdash generate interactions --pattern burst --duration 10m`,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := generate.GenerateInteractions(opts)
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating file: %w", err)
			}
			defer f.Close()

			enc := json.NewEncoder(f)
			enc.SetIndent("", "  ")
			if err := enc.Encode(records); err != nil {
				return fmt.Errorf("writing records: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Generated %d interactions to %s\n", len(records), output)
			fmt.Fprintf(out, "  Sessions: %d\n", opts.Sessions)
			fmt.Fprintf(out, "  Duration: %s\n", opts.Duration)
			fmt.Fprintf(out, "  Pattern:  %s\n", opts.Pattern)
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "interactions.json", "output file path")
	cmd.Flags().IntVar(&opts.Count, "count", opts.Count, "number of interactions to generate")
	cmd.Flags().IntVar(&opts.Sessions, "sessions", opts.Sessions, "number of distinct sessions")
	cmd.Flags().DurationVar(&opts.Duration, "duration", opts.Duration, "time span of the recording")
	cmd.Flags().StringVar(&opts.Pattern, "pattern", opts.Pattern, "timing pattern (steady, burst, ramp)")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed (0 = time based)")
	cmd.Flags().StringSliceVar(&opts.Sites, "sites", nil, "sites to choose from (default: All Sites and the four Falcon 9 pads)")
	return cmd
}

func newGenerateConfigCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Generate an example config file",
		Example: `  launchdash generate config --output launchdash.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteExample(output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated example config at %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "launchdash.yaml", "output file path (.json, .yaml or .yml)")
	return cmd
}
