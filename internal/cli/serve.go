package cli

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Chamz87/IBM-Capstone-SCE/internal/clock"
	"github.com/Chamz87/IBM-Capstone-SCE/internal/config"
	"github.com/Chamz87/IBM-Capstone-SCE/internal/dashboard"
	"github.com/Chamz87/IBM-Capstone-SCE/internal/recorder"
	"github.com/Chamz87/IBM-Capstone-SCE/internal/server"
)

type serveOptions struct {
	addr            string
	title           string
	recordFile      string
	shutdownTimeout time.Duration
	dataset         datasetOptions
}

func (o *serveOptions) addFlags(cmd *cobra.Command) {
	d := config.Default()
	cmd.Flags().StringVar(&o.addr, "addr", d.Server.Addr, "address to listen on")
	cmd.Flags().StringVar(&o.title, "title", d.Dashboard.Title, "dashboard heading")
	cmd.Flags().StringVar(&o.recordFile, "record", "", "record interactions to JSON file (exported on shutdown)")
	cmd.Flags().DurationVar(&o.shutdownTimeout, "shutdown-timeout", d.Server.ShutdownTimeout, "graceful shutdown timeout")
	o.dataset.addFlags(cmd)
}

// resolve merges explicitly set flags over cfg and validates the result.
func (o *serveOptions) resolve(cmd *cobra.Command, cfg config.Config) (config.Config, error) {
	if cmd.Flags().Changed("addr") {
		cfg.Server.Addr = o.addr
	}
	if cmd.Flags().Changed("title") {
		cfg.Dashboard.Title = o.title
	}
	if cmd.Flags().Changed("record") {
		cfg.Record.File = o.recordFile
	}
	if cmd.Flags().Changed("shutdown-timeout") {
		cfg.Server.ShutdownTimeout = o.shutdownTimeout
	}

	sc, err := o.dataset.resolve(cmd, cfg.Dataset)
	if err != nil {
		return cfg, err
	}
	cfg.Dataset = sc

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newServeCmd(root *rootOptions) *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard web server",
		Long: `Loads the launch dataset and serves the interactive dashboard.

Endpoints:
  GET  /                      Dashboard page (also /dashboard/)
  GET  /health                Health check
  GET  /api/info              Dataset and server info
  GET  /api/layout            Control and graph layout
  GET  /api/figures/{id}      One chart (?site=&low=&high=)
  POST /api/update            Recompute charts for changed inputs
  WS   /ws                    Callback session for the page`,
		Example: `  launchdash serve
  launchdash serve --data spacex_launch_dash.csv --addr :9090
  launchdash serve --source http --data-url https://example.com/spacex_launch_dash.csv
  launchdash serve --source redis --redis-host localhost:6379
  launchdash serve --config launchdash.yaml --record interactions.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := root.load(cmd)
			if err != nil {
				return err
			}
			cfg, err := opts.resolve(cmd, base)
			if err != nil {
				return err
			}

			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer logger.Sync()

			// Graceful shutdown on SIGINT/SIGTERM.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ds, err := loadDataset(ctx, cfg.Dataset, logger)
			if err != nil {
				return fmt.Errorf("loading dataset: %w", err)
			}

			clk := clock.NewRealClock()
			ctrl := dashboard.New(ds, dashboard.WithTitle(cfg.Dashboard.Title))

			srvOpts := server.Options{
				Hub:      server.NewHub(logger),
				LoadedAt: clk.Now(),
			}
			if cfg.Record.File != "" {
				srvOpts.Recorder = recorder.New(nil)
			}

			srv := server.New(cfg.Server.Addr, ctrl, clk, logger, srvOpts)
			logger.Info("dashboard ready", zap.String("url", dashboardURL(cfg.Server.Addr)))

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				logger.Info("shutting down")
				if rec := srvOpts.Recorder; rec != nil {
					logger.Info("exporting interactions", zap.Int("count", rec.Len()), zap.String("file", cfg.Record.File))
					if err := rec.ExportFile(cfg.Record.File); err != nil {
						logger.Error("export interactions", zap.Error(err))
					}
				}
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}

	opts.addFlags(cmd)
	return cmd
}

// dashboardURL is the browsable URL for a listen address. Wildcard and
// empty hosts map to localhost.
func dashboardURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr + "/"
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port) + "/"
}
