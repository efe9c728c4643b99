package event

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type PortfolioEventType string

const (
	PortfolioEventTypeImported PortfolioEventType = "portfolio.imported"
	PortfolioEventTypeUpdated  PortfolioEventType = "portfolio.updated"
)

// PortfolioEventPayload is emitted after a content write so downstream
// consumers can refresh derived artifacts (snapshots, caches).
type PortfolioEventPayload struct {
	EventType  PortfolioEventType `json:"event_type"`
	Entity     string             `json:"entity"`
	OccurredAt time.Time          `json:"occurred_at"`
}

type ContactEventPayload struct {
	MessageID uuid.UUID `json:"message_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
}

func (c *KafkaProducerClient) PublishPortfolioEvent(ctx context.Context, payload PortfolioEventPayload) error {
	if payload.OccurredAt.IsZero() {
		payload.OccurredAt = time.Now().UTC()
	}
	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.PortfolioEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.Entity),
		Value: value,
	})
}

func (c *KafkaProducerClient) PublishContactEvent(ctx context.Context, payload ContactEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.ContactEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.MessageID.String()),
		Value: value,
	})
}
