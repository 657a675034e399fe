package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Moustaash/lcc-availability-2/internal/app/commands"
	availabilityapp "github.com/Moustaash/lcc-availability-2/internal/app/handlers/availability"
	"github.com/Moustaash/lcc-availability-2/internal/app/handlers/syncrun"
	"github.com/Moustaash/lcc-availability-2/internal/app/queries"
	"github.com/Moustaash/lcc-availability-2/internal/app/syncstate"
	"github.com/Moustaash/lcc-availability-2/internal/infra/broker/kafka"
	"github.com/Moustaash/lcc-availability-2/internal/infra/config"
	"github.com/Moustaash/lcc-availability-2/internal/infra/feedsource"
	ginserver "github.com/Moustaash/lcc-availability-2/internal/infra/http/gin"
	"github.com/Moustaash/lcc-availability-2/internal/infra/obs"
	"github.com/Moustaash/lcc-availability-2/internal/infra/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := getenv("APP_ENV", "dev")
	logger := obs.NewLogger(env)

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("using fallback configuration", "error", err)
		cfg.Env = env
		cfg.HTTPAddr = getenv("HTTP_ADDR", ":8080")
		cfg.FeedPath = "data/availability.json"
		cfg.FeedTimeout = 10 * time.Second
		cfg.SyncOnStart = true
	}

	store := memory.NewSnapshotStore()
	pipeline := syncstate.NewPipeline(selectSource(cfg, logger), store, selectPublisher(cfg, logger), logger)

	queryBus := queries.NewInMemoryBus()
	queries.Register(queryBus, availabilityapp.ListPropertiesKey, availabilityapp.ListPropertiesHandler{Snapshots: store})
	queries.Register(queryBus, availabilityapp.GetBarsKey, availabilityapp.GetBarsHandler{Snapshots: store})
	queries.Register(queryBus, availabilityapp.ResolveDayKey, availabilityapp.ResolveDayHandler{Snapshots: store})
	queries.Register(queryBus, syncrun.GetStatusKey, syncrun.GetStatusHandler{Pipeline: pipeline})

	commandBus := commands.NewInMemoryBus()
	commands.Register(commandBus, syncrun.TriggerKey, syncrun.TriggerHandler{Pipeline: pipeline})

	server := ginserver.NewServer(cfg,
		obs.Middleware{Logger: logger},
		obs.HealthHandlers{Ready: pipeline.Ready},
		ginserver.Handlers{
			Availability: ginserver.AvailabilityHandler{Queries: queryBus},
			Sync:         ginserver.SyncHandler{Commands: commandBus, Queries: queryBus},
		})

	if cfg.SyncOnStart {
		if err := pipeline.Sync(ctx); err != nil {
			logger.Warn("initial feed sync failed, serving empty data until resync", "error", err)
		}
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

func selectSource(cfg config.Config, logger *slog.Logger) syncstate.Source {
	if cfg.FeedURL != "" {
		logger.Info("feed source", "kind", "http", "url", cfg.FeedURL)
		return feedsource.NewHTTPSource(cfg.FeedURL, cfg.FeedTimeout)
	}
	logger.Info("feed source", "kind", "file", "path", cfg.FeedPath)
	return feedsource.NewFileSource(cfg.FeedPath)
}

func selectPublisher(cfg config.Config, logger *slog.Logger) syncstate.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		return syncstate.NopPublisher{}
	}
	publisher, err := kafka.NewSyncEventPublisher(cfg.KafkaBrokers, cfg.KafkaTopicPrefix)
	if err != nil {
		logger.Warn("kafka publisher unavailable, sync events disabled", "error", err)
		return syncstate.NopPublisher{}
	}
	logger.Info("kafka sync events enabled", "brokers", cfg.KafkaBrokers)
	return publisher
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
