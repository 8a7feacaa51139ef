package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	EventStockAdjusted = "inventory.stock_adjusted"
	eventVersion       = 1
)

// Envelope wraps every event this service emits.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	w        messageWriter
	producer string
	timeout  time.Duration
}

func NewProducer(brokers []string, topic, producer string) *Producer {
	return newProducer(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}, producer)
}

func newProducer(w messageWriter, producer string) *Producer {
	return &Producer{w: w, producer: producer, timeout: 5 * time.Second}
}

// PublishStockAdjusted keys the message by bike id so every change to one bike
// lands on the same partition in order.
func (p *Producer) PublishStockAdjusted(ctx context.Context, adj domain.StockAdjustment) error {
	payload, err := json.Marshal(adj)
	if err != nil {
		return fmt.Errorf("encode stock adjustment: %w", err)
	}
	env := Envelope{
		EventID:       uuid.NewString(),
		EventType:     EventStockAdjusted,
		EventVersion:  eventVersion,
		OccurredAt:    adj.At.UTC(),
		Producer:      p.producer,
		CorrelationID: adj.SourceID.String(),
		Payload:       payload,
	}
	value, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(adj.BikeID),
		Value: value,
		Time:  adj.At,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventStockAdjusted)},
		},
	})
}

func (p *Producer) Close() error {
	return p.w.Close()
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishStockAdjusted(context.Context, domain.StockAdjustment) error { return nil }

func (NoopPublisher) Close() error { return nil }
