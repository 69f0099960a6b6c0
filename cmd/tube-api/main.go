// Command tube-api serves the London Underground status as JSON and XML
// over HTTP, refreshing its snapshot from the configured source in the
// background.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/matsadler/tube"
	"github.com/matsadler/tube/internal/config"
	"github.com/matsadler/tube/internal/logging"
	"github.com/matsadler/tube/scrape"
	"github.com/matsadler/tube/tflapi"
)

// application holds the dependencies for the HTTP handlers.
type application struct {
	config  config.Config
	logger  *slog.Logger
	service *tube.Service
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yml", "Path to YAML config file")

	cfg := config.Default()
	flag.IntVar(&cfg.Server.Port, "port", cfg.Server.Port, "API server port")
	flag.StringVar(&cfg.Source.URL, "url", cfg.Source.URL, "Status source URL override")
	flag.Parse()

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	loaded, err := config.Load(configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	// flags override the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			loaded.Server.Port = cfg.Server.Port
		case "url":
			loaded.Source.URL = cfg.Source.URL
		}
	})
	cfg = loaded

	source, err := newSource(cfg.Source)
	if err != nil {
		logger.Error("failed to build status source", "error", err)
		os.Exit(1)
	}

	service := tube.NewService(source, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := service.Reload(logging.WithLogger(ctx, logger)); err != nil {
		logger.Error("initial status load failed", "error", err)
	}
	cancel()

	if cfg.Source.RefreshSeconds > 0 {
		go refreshPeriodically(service, logger, time.Duration(cfg.Source.RefreshSeconds)*time.Second)
	}

	app := &application{
		config:  cfg,
		logger:  logger,
		service: service,
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Server.Env)
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}

func newSource(cfg config.Source) (tube.Source, error) {
	switch cfg.Kind {
	case "scrape":
		return scrape.NewSource(cfg.URL), nil
	case "api":
		return tflapi.NewSource(tflapi.NewClient(cfg.URL, cfg.AppID, cfg.AppKey)), nil
	}
	return nil, fmt.Errorf("unknown source kind %q", cfg.Kind)
}

func refreshPeriodically(service *tube.Service, logger *slog.Logger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := service.Reload(logging.WithLogger(ctx, logger)); err != nil {
			logger.Warn("status refresh failed, keeping previous snapshot", "error", err)
		}
		cancel()
	}
}
