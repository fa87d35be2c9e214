package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/shoresign/shoresign/internal/clock"
	"github.com/shoresign/shoresign/internal/config"
	"github.com/shoresign/shoresign/internal/display"
	"github.com/shoresign/shoresign/internal/display/providers"
	"github.com/shoresign/shoresign/internal/logger"
	"github.com/shoresign/shoresign/internal/render"
	"github.com/shoresign/shoresign/internal/scheduler"
	"github.com/shoresign/shoresign/internal/store"
)

func main() {
	log := logger.WithComponent("main")

	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	ck, err := clock.New(cfg.TimeZone)
	if err != nil {
		log.WithError(err).Fatal("failed to resolve time zone")
	}

	fileStore, err := store.NewFileStore(cfg.CachePath)
	if err != nil {
		log.WithError(err).Fatal("failed to open cache store")
	}

	renderer, err := render.New(cfg.OutputDir, cfg.PageSeconds)
	if err != nil {
		log.WithError(err).Fatal("failed to set up renderer")
	}

	// Shared HTTP client for outbound calls; the timeout bounds every
	// request so a hung upstream cannot stall the run.
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	service := display.NewService(
		ck,
		fileStore,
		providers.NewOpenMeteoFetcher(httpClient, cfg.Lat, cfg.Lon),
		providers.NewIPGeolocationFetcher(httpClient, cfg.AstroAPIKey, cfg.Lat, cfg.Lon, ck),
		providers.NewWorldTidesFetcher(httpClient, cfg.TideAPIKey, cfg.Lat, cfg.Lon, ck),
		renderer,
		display.Options{
			ForceAstronomy: cfg.ForceAstronomy,
			ForceTides:     cfg.ForceTides,
		},
	)

	// One-shot is the normal mode; an external cron trigger invokes the
	// binary. RUN_INTERVAL opts into the built-in loop instead.
	if cfg.RunInterval <= 0 {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		if err := service.Run(ctx); err != nil {
			log.WithError(err).Fatal("refresh run failed")
		}
		return
	}

	sched := scheduler.New(service, cfg.RunInterval, 2*time.Minute)
	if err := sched.Start(); err != nil {
		log.WithError(err).Fatal("failed to start scheduler")
	}
	defer sched.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("shutting down")
	os.Exit(0)
}
