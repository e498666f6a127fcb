package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Chamz87/IBM-Capstone-SCE/internal/launch"
	"github.com/Chamz87/IBM-Capstone-SCE/internal/source"
)

func newSeedCmd(root *rootOptions) *cobra.Command {
	var (
		file    string
		dataset datasetOptions
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Publish a launch CSV to Redis",
		Long: `Validates a launch CSV and stores it under the Redis dataset key, so that
"launchdash serve --source redis" can load it. Any previous dataset under
the key is replaced.`,
		Example: `  launchdash seed --file spacex_launch_dash.csv
  launchdash seed --file launches.csv --redis-host cache:6379 --redis-key launches`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load(cmd)
			if err != nil {
				return err
			}
			dataset.applyConfigIfUnset(cmd, cfg.Dataset)
			if err := dataset.normalize(); err != nil {
				return err
			}
			if !cmd.Flags().Changed("file") && cfg.Dataset.Path != "" {
				file = cfg.Dataset.Path
			}

			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer logger.Sync()

			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading %s: %w", file, err)
			}
			skipped := 0
			ds, err := launch.ReadCSV(bytes.NewReader(data), func(line int, err error) {
				skipped++
				logger.Warn("row will be skipped on load", zap.Int("line", line), zap.Error(err))
			})
			if err != nil {
				return fmt.Errorf("parsing %s: %w", file, err)
			}

			rc := dataset.redisConfig()
			if err := source.Publish(cmd.Context(), &rc, data); err != nil {
				return err
			}

			logger.Info("dataset published",
				zap.String("file", file),
				zap.String("key", rc.Key),
				zap.Int("records", ds.Len()),
				zap.Int("skipped", skipped),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Published %d records from %s to redis key %s\n", ds.Len(), file, rc.Key)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", source.DefaultPath, "launch CSV to publish")
	dataset.addRedisFlags(cmd)

	return cmd
}
