package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/itsprakash91/flood-relief-connect/internal/api"
	"github.com/itsprakash91/flood-relief-connect/internal/config"
	"github.com/itsprakash91/flood-relief-connect/internal/events"
	"github.com/itsprakash91/flood-relief-connect/internal/redis"
	"github.com/itsprakash91/flood-relief-connect/internal/service"
	"github.com/itsprakash91/flood-relief-connect/internal/storage/postgres"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Hub        *events.Hub
	Bus        *events.Bus
	WebhookQ   *redis.WebhookQueue
	Sender     *service.WebhookSender
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	hub := events.NewHub(logger, 32)
	bus := events.NewBus(hub, redisClient.Client, logger)

	webhookQueue := redis.NewWebhookQueue(redisClient.Client, "webhooks:queue")
	statsCache := redis.NewStatsCache(redisClient)

	var queue service.WebhookQueue
	var sender *service.WebhookSender
	if !cfg.Webhook.Disabled && cfg.Webhook.URL != "" {
		queue = webhookQueue
		sender = service.NewWebhookSender(logger, cfg.Webhook, webhookQueue)
	}

	requestSvc := service.NewRequestService(storage.HelpRequests(), bus, queue, logger)
	querySvc := service.NewQueryService(storage.HelpRequests(), storage.Nearby(), cfg.Nearby, logger)
	donationSvc := service.NewDonationService(storage.Donations(), bus, queue, logger)
	dashboardSvc := service.NewDashboardService(storage.Stats(), storage.AuditLog(), statsCache, logger)

	srv := service.NewService(requestSvc, querySvc, donationSvc, dashboardSvc)

	httpServer := api.NewServer(cfg, logger, srv, hub)
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Hub:        hub,
		Bus:        bus,
		WebhookQ:   webhookQueue,
		Sender:     sender,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
