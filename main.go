package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/SpeedyGonzale5/game-captcha/internal/config"
	"github.com/SpeedyGonzale5/game-captcha/internal/events"
	"github.com/SpeedyGonzale5/game-captcha/internal/game"
	logger "github.com/SpeedyGonzale5/game-captcha/internal/logging"
	"github.com/SpeedyGonzale5/game-captcha/internal/models"
	"github.com/SpeedyGonzale5/game-captcha/internal/router"
)

func main() {
	// Initialize Logger
	log, err := logger.Init("logs", logger.DefaultRotation())
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	// Initialize Configuration
	if err := config.Init(".", log); err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Rebuild the logger with the configured directory and rotation policy.
	log, err = logger.Init(config.Conf.Logging.Directory, logger.Rotation{
		MaxSize:    config.Conf.Logging.MaxSize,
		MaxBackups: config.Conf.Logging.MaxBackups,
		MaxAge:     config.Conf.Logging.MaxAge,
		Compress:   config.Conf.Logging.Compress,
	})
	if err != nil {
		panic("failed to reinitialize logger: " + err.Error())
	}

	// Load the drawing prompt catalog at startup
	catalog, err := models.LoadPrompts(config.Conf.Server.PromptsFile)
	if err != nil {
		log.Fatal("Failed to load prompt catalog", zap.Error(err))
	}

	// Session registry with TTL sweeping
	store := game.NewStore(config.Conf.Session.TTL, log)
	stopSweeper := make(chan struct{})
	store.StartSweeper(config.Conf.Session.SweepInterval, stopSweeper)
	defer close(stopSweeper)

	// Bounded analytics event log
	ring := events.NewRing(config.Conf.Events.Capacity)

	r := router.Setup(log, catalog, store, ring)

	srv := &http.Server{
		Addr:    ":" + config.Conf.Server.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Server listening on http://localhost" + srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("Server exited with error", zap.Error(err))
	}
}
