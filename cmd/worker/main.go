package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/dosadiner/pkg/app"
	"github.com/ghuser/dosadiner/pkg/cache"
	"github.com/ghuser/dosadiner/pkg/config"
	"github.com/ghuser/dosadiner/pkg/database"
	"github.com/ghuser/dosadiner/pkg/events"
	"github.com/ghuser/dosadiner/pkg/logger"
	"github.com/ghuser/dosadiner/pkg/telemetry"
	orderingEvents "github.com/ghuser/dosadiner/services/ordering/domain/events"
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

	//temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
	//if err != nil {
	//	log.Error("failed to initialize temporal client", "error", err)
	//	os.Exit(1) //nolint:gocritic
	//}
	//defer temporalClient.Close()

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
		//TemporalClient: temporalClient,
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
	topics := []string{
		orderingEvents.TopicMenuItemCreated,
		orderingEvents.TopicOrderCreated,
	}

	menuErrCh, err := a.EventBus.Subscribe(ctx, orderingEvents.TopicMenuItemCreated, handleMenuItemCreated(a))
	if err != nil {
		return err
	}
	orderErrCh, err := a.EventBus.Subscribe(ctx, orderingEvents.TopicOrderCreated, handleOrderCreated(a))
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channels never block.
	drain := func(topic string, errCh <-chan error) {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
		}
	}
	go drain(orderingEvents.TopicMenuItemCreated, menuErrCh)
	go drain(orderingEvents.TopicOrderCreated, orderErrCh)

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// handleMenuItemCreated returns a handler for menu_item.created events.
// Handlers must be idempotent; EventBus retries up to 3x on failure.
// Warms the Redis menu cache so subsequent item reads are served from cache.
func handleMenuItemCreated(a *app.Application) func(context.Context, *message.Message) error {
	menuCache := cache.NewMenuCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt orderingEvents.MenuItemCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := menuCache.Set(ctx, &cache.CachedMenuItem{
			ID:          evt.ItemID,
			Name:        evt.Name,
			Price:       evt.Price,
			Description: evt.Description,
			Category:    evt.Category,
			CreatedAt:   evt.CreatedAt,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for menu_item.created",
				"item_id", evt.ItemID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed",
				"item_id", evt.ItemID, "category", evt.Category)
		}

		return nil
	}
}

// handleOrderCreated returns a handler for order.created events. It writes a
// structured audit line per placed order, the hook point for kitchen
// notifications later.
func handleOrderCreated(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt orderingEvents.OrderCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		a.Logger.InfoContext(ctx, "order placed",
			"order_id", evt.OrderID,
			"customer_id", evt.CustomerID,
			"status", evt.Status,
			"line_count", evt.LineCount,
			"occurred_at", evt.OccurredAt,
		)
		return nil
	}
}
