package config

import (
	"log/slog"
	"strings"

	"github.com/overtone-ring/Kentucky-cdl-prep/internal/events"
)

// EventConfig holds configuration for notification publishing.
type EventConfig struct {
	Publisher    string // channel, kafka or mock
	KafkaBrokers string
	Topic        string
}

// GetKafkaBrokers returns Kafka brokers as a slice.
func (c *EventConfig) GetKafkaBrokers() []string {
	return strings.Split(c.KafkaBrokers, ",")
}

// CreatePublisher creates an event publisher based on configuration. The
// in-process channel bus is the default; Kafka is for installs that mirror
// session events to an external tracker.
func (c *EventConfig) CreatePublisher(logger *slog.Logger) (events.Publisher, error) {
	switch c.Publisher {
	case "kafka":
		logger.Info("Creating Kafka event publisher",
			"brokers", c.KafkaBrokers,
			"topic", c.Topic)

		return events.NewKafkaPublisher(events.KafkaConfig{
			Brokers:   c.GetKafkaBrokers(),
			TopicName: c.Topic,
			Logger:    logger,
		})
	case "mock":
		logger.Info("Using mock event publisher")
		return events.NewMockPublisher(), nil
	case "channel":
		return events.NewBus(logger), nil
	default:
		logger.Warn("Unknown event publisher type, falling back to channel bus", "publisher", c.Publisher)
		return events.NewBus(logger), nil
	}
}
