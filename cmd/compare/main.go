package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/econlens/country-compare/internal/adapter/httpapi"
	"github.com/econlens/country-compare/internal/adapter/tradingecon"
	"github.com/econlens/country-compare/internal/config"
	"github.com/econlens/country-compare/internal/domain"
	"github.com/econlens/country-compare/internal/observability"
	"github.com/econlens/country-compare/internal/service"
)

func main() {
	// Local development convenience; absent .env files are not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	client := tradingecon.NewClient(cfg.SourceBaseURL, cfg.SourceAPIKey, cfg.SourceTimeout, metrics, logger)
	source := tradingecon.NewCachedSource(client, cfg.CacheSize, cfg.CacheTTL, nil, metrics)
	logger.Info("indicator source configured",
		"base_url", cfg.SourceBaseURL,
		"cache_size", cfg.CacheSize,
		"cache_ttl", cfg.CacheTTL,
	)

	opts := domain.Options{FractionalRates: cfg.RateInput == config.RateInputFraction}
	comparer := service.New(source, logger, metrics, opts, cfg.Countries[0], nil)

	srv := httpapi.NewServer(cfg.HTTPAddr, comparer, comparer, cfg.Countries, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
