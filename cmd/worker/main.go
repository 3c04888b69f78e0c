package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/shoply/pkg/app"
	"github.com/ghuser/shoply/pkg/cache"
	"github.com/ghuser/shoply/pkg/config"
	"github.com/ghuser/shoply/pkg/database"
	"github.com/ghuser/shoply/pkg/events"
	"github.com/ghuser/shoply/pkg/logger"
	"github.com/ghuser/shoply/pkg/telemetry"
	catalogEvents "github.com/ghuser/shoply/services/catalog/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := []string{catalogEvents.TopicProductCreated, catalogEvents.TopicLikeToggled}

	errCh, err := a.EventBus.Subscribe(ctx, catalogEvents.TopicProductCreated, handleProductCreated(a))
	if err != nil {
		return err
	}
	go drainErrors(ctx, a, catalogEvents.TopicProductCreated, errCh)

	errCh, err = a.EventBus.Subscribe(ctx, catalogEvents.TopicLikeToggled, handleLikeToggled(a))
	if err != nil {
		return err
	}
	go drainErrors(ctx, a, catalogEvents.TopicLikeToggled, errCh)

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// drainErrors consumes subscriber errors so the channel never blocks.
func drainErrors(ctx context.Context, a *app.Application, topic string, errCh <-chan error) {
	for err := range errCh {
		a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
	}
}

// handleProductCreated returns a handler for catalog.product.created events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Drops cached listing pages so the new product shows up on the next read
// even when the write happened in another process.
func handleProductCreated(a *app.Application) func(context.Context, *message.Message) error {
	catalogCache := cache.NewCatalogCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt catalogEvents.ProductCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := catalogCache.InvalidateListings(ctx); err != nil {
			// Invalidation retries via the event bus; surfacing the error is enough.
			return err
		}

		a.Logger.InfoContext(ctx, "listing cache invalidated",
			"reason", "product.created", "product_id", evt.ProductID)
		return nil
	}
}

// handleLikeToggled returns a handler for catalog.like.toggled events.
// Same invalidation as product creation: any cached page may carry a stale
// like count after a toggle.
func handleLikeToggled(a *app.Application) func(context.Context, *message.Message) error {
	catalogCache := cache.NewCatalogCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt catalogEvents.LikeToggledEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := catalogCache.InvalidateListings(ctx); err != nil {
			return err
		}

		a.Logger.InfoContext(ctx, "listing cache invalidated",
			"reason", "like.toggled", "product_id", evt.ProductID, "liked", evt.Liked)
		return nil
	}
}
