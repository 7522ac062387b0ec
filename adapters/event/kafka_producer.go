package event

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/minhvu/blogspace/internal/config"
)

const TopicPostEvents = "post.events"

type PostEventType string

const (
	PostEventTypeCreated     PostEventType = "post.created"
	PostEventTypeUpdated     PostEventType = "post.updated"
	PostEventTypePublished   PostEventType = "post.published"
	PostEventTypeUnpublished PostEventType = "post.unpublished"
	PostEventTypeDeleted     PostEventType = "post.deleted"
)

type PostEventPayload struct {
	EventID    uuid.UUID     `json:"event_id"`
	EventType  PostEventType `json:"event_type"`
	PostID     int64         `json:"post_id"`
	AuthorID   int64         `json:"author_id"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// Publisher lets the usecases publish lifecycle events without knowing the
// broker; tests substitute NopPublisher.
type Publisher interface {
	PublishPostEvent(ctx context.Context, payload PostEventPayload) error
}

type KafkaProducerClient struct {
	PostEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	postWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicPostEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{PostEventsWriter: postWriter}, nil
}

func (c *KafkaProducerClient) PublishPostEvent(ctx context.Context, payload PostEventPayload) error {
	if payload.EventID == uuid.Nil {
		payload.EventID = uuid.New()
	}
	if payload.OccurredAt.IsZero() {
		payload.OccurredAt = time.Now().UTC()
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal post event failed: %w", err)
	}

	// Keyed by post id so events for one post stay ordered per partition.
	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(payload.PostID, 10)),
		Value: value,
	}

	if err := c.PostEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write post event failed: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.PostEventsWriter != nil {
		c.PostEventsWriter.Close()
	}
}

// NopPublisher drops every event. Used in tests and when no broker is
// configured.
type NopPublisher struct{}

func (NopPublisher) PublishPostEvent(context.Context, PostEventPayload) error { return nil }
