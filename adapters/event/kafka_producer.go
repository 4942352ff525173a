package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"portfolio-admin/internal/application/service"
	"portfolio-admin/internal/config"
	"portfolio-admin/pkg/logger"
)

const TopicContentEvents = "portfolio.content"

// ContentEventPayload is the wire shape of a content-change event.
type ContentEventPayload struct {
	OwnerID    string    `json:"owner_id"`
	Kind       string    `json:"kind"`
	Action     string    `json:"action"`
	RecordID   string    `json:"record_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type kafkaContentPublisher struct {
	writer *kafka.Writer
	log    logger.Logger
}

func NewKafkaContentPublisher(cfg config.Config, log logger.Logger) (service.ContentEventPublisher, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicContentEvents,
		Balancer: &kafka.LeastBytes{},
	}

	log.Info("Initialize Kafka content publisher successfully.")
	return &kafkaContentPublisher{writer: writer, log: log}, nil
}

func (p *kafkaContentPublisher) PublishContentChanged(ctx context.Context, ownerID uuid.UUID, kind, action, recordID string) error {
	payload := ContentEventPayload{
		OwnerID:    ownerID.String(),
		Kind:       kind,
		Action:     action,
		RecordID:   recordID,
		OccurredAt: time.Now().UTC(),
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal content event: %w", err)
	}

	// keyed by owner so one owner's events stay ordered
	msg := kafka.Message{
		Key:   []byte(ownerID.String()),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write content event: %w", err)
	}
	return nil
}

func (p *kafkaContentPublisher) Close() error {
	return p.writer.Close()
}
