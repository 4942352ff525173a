package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"portfolio-admin/adapters/event"
	"portfolio-admin/adapters/persistence"
	"portfolio-admin/internal/config"
	"portfolio-admin/pkg/logger"
)

// The worker invalidates cached brochure text whenever an owner's
// content changes, so the next generation request sees fresh records.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting Portfolio Admin Worker...")

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	brochureCache := persistence.NewRedisBrochureCache(redisClient)

	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicContentEvents,
		GroupID:  "portfolio-admin",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicContentEvents))

	ctx := context.Background()
	for {
		msg, err := consumer.ReadMessage(ctx)
		if err != nil {
			appLogger.Error("failed to read message from Kafka", err)
			continue
		}

		var payload event.ContentEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			appLogger.Error("failed to unmarshal event, skipping", err)
			commitMessage(consumer, msg, appLogger)
			continue
		}

		ownerID, err := uuid.Parse(payload.OwnerID)
		if err != nil {
			appLogger.Error("event carries invalid owner id, skipping", err, zap.String("owner_id", payload.OwnerID))
			commitMessage(consumer, msg, appLogger)
			continue
		}

		if err := brochureCache.Invalidate(ctx, ownerID); err != nil {
			appLogger.Error("failed to invalidate brochure cache", err, zap.String("owner_id", payload.OwnerID))
			continue
		}

		appLogger.Info("brochure cache invalidated",
			zap.String("owner_id", payload.OwnerID),
			zap.String("kind", payload.Kind),
			zap.String("action", payload.Action),
		)
		commitMessage(consumer, msg, appLogger)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message, log logger.Logger) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Error("failed to commit message", err)
	}
}
