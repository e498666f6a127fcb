package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Chamz87/IBM-Capstone-SCE/internal/clock"
	"github.com/Chamz87/IBM-Capstone-SCE/internal/dashboard"
	"github.com/Chamz87/IBM-Capstone-SCE/internal/replay"
)

func newReplayCmd(root *rootOptions) *cobra.Command {
	var (
		file       string
		speed      float64
		sessions   []string
		sites      []string
		after      string
		before     string
		outputJSON bool
		dataset    datasetOptions
	)

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay recorded dashboard interactions",
		Long: `Re-dispatches previously recorded interactions against the dataset with
speed control.

Interactions are replayed in timestamp order. The virtual clock advances
to match the time gaps between them, and every affected chart is
recomputed just as the live dashboard did.

Speed: 0 = instant, 1 = real-time, 10 = 10x, 100 = 100x`,
		Example: `  launchdash replay --file interactions.json
  launchdash replay --file interactions.json --speed 10 --sites "KSC LC-39A"
  launchdash replay --file interactions.json --after 2024-01-01T10:00:00Z --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return fmt.Errorf("--file is required")
			}

			filter := replay.Filter{Sessions: sessions, Sites: sites}
			var err error
			if filter.After, err = parseTimeFlag("after", after); err != nil {
				return err
			}
			if filter.Before, err = parseTimeFlag("before", before); err != nil {
				return err
			}

			cfg, err := root.load(cmd)
			if err != nil {
				return err
			}
			sc, err := dataset.resolve(cmd, cfg.Dataset)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer logger.Sync()

			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("opening file: %w", err)
			}
			defer f.Close()

			ds, err := loadDataset(cmd.Context(), sc, logger)
			if err != nil {
				return fmt.Errorf("loading dataset: %w", err)
			}

			vc := clock.NewVirtualClock(time.Now().Truncate(time.Second))
			r := replay.New(dashboard.New(ds), vc, speed, filter)
			if err := r.Load(f); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !outputJSON {
				fmt.Fprintf(out, "Replaying %s at %.0fx speed...\n\n", file, speed)
			}

			var results []replay.Result
			summary, err := r.Run(cmd.Context(), func(res replay.Result) {
				if outputJSON {
					results = append(results, res)
					return
				}
				in := res.Interaction
				changed := strings.Join(in.Changed, ",")
				if changed == "" {
					changed = "initial"
				}
				fmt.Fprintf(out, "  %s %-4s site=%q payload=[%g, %g] changed=%s\n",
					in.Timestamp.Format("15:04:05"), in.Transport, in.Site, in.Payload[0], in.Payload[1], changed)
				for _, id := range sortedKeys(res.Outputs) {
					o := res.Outputs[id]
					fmt.Fprintf(out, "      %-30s traces=%d points=%d\n", id, o.Traces, o.Points)
				}
			})
			if err != nil {
				return err
			}

			if outputJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{
					"results": results,
					"summary": summary,
				})
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "--- Replay Summary ---")
			fmt.Fprintf(out, "  Total records:  %d\n", summary.TotalRecords)
			fmt.Fprintf(out, "  Filtered:       %d\n", summary.Filtered)
			fmt.Fprintf(out, "  Replayed:       %d\n", summary.Replayed)
			fmt.Fprintf(out, "  Empty outputs:  %d\n", summary.EmptyOutputs)
			fmt.Fprintf(out, "  Virtual time:   %s\n", summary.Duration)
			fmt.Fprintf(out, "  Wall time:      %s\n", summary.WallDuration.Round(time.Millisecond))

			if len(summary.PerSite) > 1 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "  Per site:")
				for _, site := range sortedKeys(summary.PerSite) {
					fmt.Fprintf(out, "    %s: %d\n", site, summary.PerSite[site])
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to recorded interactions JSON file (required)")
	cmd.Flags().Float64Var(&speed, "speed", 0, "replay speed (0=instant, 1=real-time, 10=10x)")
	cmd.Flags().StringSliceVar(&sessions, "sessions", nil, "filter by session ids (comma-separated)")
	cmd.Flags().StringSliceVar(&sites, "sites", nil, "filter by selected site (comma-separated)")
	cmd.Flags().StringVar(&after, "after", "", "only interactions after this RFC 3339 time")
	cmd.Flags().StringVar(&before, "before", "", "only interactions before this RFC 3339 time")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "output results as JSON")
	dataset.addFlags(cmd)

	return cmd
}

func parseTimeFlag(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s value %q: %w", name, value, err)
	}
	return t, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
