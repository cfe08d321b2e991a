package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"weatherpanel/internal/client"
	"weatherpanel/internal/config"
	httphandler "weatherpanel/internal/http"
	"weatherpanel/internal/lifecycle"
	"weatherpanel/internal/observability"
	"weatherpanel/internal/service"
	"weatherpanel/internal/units"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "weatherpanel",
		Short:        "Look up current weather for a location",
		Long:         "weatherpanel fetches current conditions from OpenWeatherMap,\neither one-shot on the command line or through a local web form.",
		SilenceUsage: true,
	}
	root.AddCommand(newGetCmd(), newServeCmd())
	return root
}

// buildLookup constructs the shared lookup pipeline from config.
func buildLookup(cfg *config.Config) (*service.LookupService, error) {
	weatherClient, err := client.NewOpenWeatherClient(cfg.WeatherAPIKey, cfg.WeatherAPIURL, cfg.WeatherAPITimeout)
	if err != nil {
		return nil, fmt.Errorf("weather client: %w", err)
	}
	return service.NewLookupService(weatherClient, cfg.LocationMaxLen), nil
}

func newGetCmd() *cobra.Command {
	var unitFlag string

	cmd := &cobra.Command{
		Use:   "get <location>",
		Short: "Fetch and print current weather for a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			lookup, err := buildLookup(cfg)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout)
			defer cancel()

			q := service.Query{
				Location: args[0],
				Unit:     units.Parse(unitFlag),
			}
			fmt.Fprintln(cmd.OutOrStdout(), lookup.LookupText(ctx, q))
			return nil
		},
	}

	cmd.Flags().StringVarP(&unitFlag, "unit", "u", "", "temperature unit (C, F, or K; default Kelvin)")
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the weather form UI and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	logger, err := observability.NewLogger()
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config", zap.Error(err))
		return err
	}

	lookup, err := buildLookup(cfg)
	if err != nil {
		logger.Error("lookup service", zap.Error(err))
		return err
	}

	healthConfig := &httphandler.HealthConfig{
		DegradedWindow:   cfg.DegradedWindow,
		DegradedErrorPct: cfg.DegradedErrorPct,
		StartTime:        time.Now(),
	}

	var limiter *rate.Limiter
	if cfg.RateLimitRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	}
	handler := httphandler.NewHandler(lookup, healthConfig, logger, limiter, cfg.LocationMaxLen)

	observability.RegisterOverloadGauge(cfg.OverloadWindow)

	router := httphandler.NewRouter(handler, logger, limiter, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", ":"+cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		logger.Error("server", zap.Error(err))
		return err
	case <-ctx.Done():
	}

	logger.Info("graceful shutdown triggered")
	lifecycle.SetShuttingDown(true)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}

	if err := observability.FlushTelemetry(context.Background(), logger); err != nil {
		logger.Error("telemetry flush", zap.Error(err))
	}

	logger.Info("shutdown complete")
	return nil
}
