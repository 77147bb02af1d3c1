package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Publisher is the interface the engine emits notifications through.
type Publisher interface {
	Publish(ctx context.Context, event *Event) error
	Close() error
}

// Topic is the channel all engine notifications are published on.
const Topic = "cdl_prep_events"

// Bus is the in-process publisher/subscriber pair backing the default
// presentation adapter. Publish and Subscribe share one go-channel pubsub.
type Bus struct {
	pubsub *gochannel.GoChannel
	logger *slog.Logger
}

// NewBus creates the in-process event bus.
func NewBus(logger *slog.Logger) *Bus {
	pubsub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 16},
		watermill.NewSlogLogger(logger),
	)
	return &Bus{pubsub: pubsub, logger: logger}
}

func (b *Bus) Publish(ctx context.Context, event *Event) error {
	msg, err := marshalEvent(event)
	if err != nil {
		return err
	}
	return b.pubsub.Publish(Topic, msg)
}

// Subscribe returns the notification stream for a presentation adapter.
func (b *Bus) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	return b.pubsub.Subscribe(ctx, Topic)
}

func (b *Bus) Close() error {
	return b.pubsub.Close()
}

// KafkaPublisher mirrors the bus onto a Kafka topic for installs that feed
// an external progress tracker.
type KafkaPublisher struct {
	publisher message.Publisher
	logger    *slog.Logger
	topicName string
}

// KafkaConfig holds configuration for the Kafka publisher.
type KafkaConfig struct {
	Brokers   []string
	TopicName string
	Logger    *slog.Logger
}

func NewKafkaPublisher(config KafkaConfig) (*KafkaPublisher, error) {
	logger := watermill.NewSlogLogger(config.Logger)

	publisher, err := kafka.NewPublisher(kafka.PublisherConfig{
		Brokers:   config.Brokers,
		Marshaler: kafka.DefaultMarshaler{},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka publisher: %w", err)
	}

	return &KafkaPublisher{
		publisher: publisher,
		logger:    config.Logger,
		topicName: config.TopicName,
	}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, event *Event) error {
	msg, err := marshalEvent(event)
	if err != nil {
		return err
	}

	if err := p.publisher.Publish(p.topicName, msg); err != nil {
		p.logger.Error("Failed to publish event",
			"event_id", event.ID,
			"event_type", event.Type,
			"error", err)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Debug("Published event",
		"event_id", event.ID,
		"event_type", event.Type,
		"topic", p.topicName)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.publisher.Close()
}

func marshalEvent(event *Event) (*message.Message, error) {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(event.ID, eventBytes)
	msg.Metadata.Set("event_type", string(event.Type))
	msg.Metadata.Set("source", event.Source)
	msg.Metadata.Set("version", event.Version)
	msg.Metadata.Set("timestamp", event.Timestamp.Format("2006-01-02T15:04:05Z07:00"))
	return msg, nil
}

// MockPublisher is an in-memory publisher for tests.
type MockPublisher struct {
	Events []Event
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{Events: make([]Event, 0)}
}

func (m *MockPublisher) Publish(ctx context.Context, event *Event) error {
	m.Events = append(m.Events, *event)
	return nil
}

func (m *MockPublisher) Close() error {
	return nil
}

// ByType returns the captured events of one type, in publish order.
func (m *MockPublisher) ByType(eventType EventType) []Event {
	var out []Event
	for _, e := range m.Events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

// Clear drops all captured events.
func (m *MockPublisher) Clear() {
	m.Events = m.Events[:0]
}
