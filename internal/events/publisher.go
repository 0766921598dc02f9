package events

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// wirePublisher is the transport surface Publisher needs from Client.
type wirePublisher interface {
	Publish(topic string, payload []byte) error
}

// Publisher marshals events to JSON and sends them over the event channel.
// Implements the service.EventPublisher port.
type Publisher struct {
	wire   wirePublisher
	logger *zap.Logger
}

func NewPublisher(wire wirePublisher, logger *zap.Logger) *Publisher {
	return &Publisher{wire: wire, logger: logger}
}

// Publish serializes event as JSON and publishes it on topic.
func (p *Publisher) Publish(topic string, event interface{}) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event for topic %s: %w", topic, err)
	}

	if err := p.wire.Publish(topic, payload); err != nil {
		return err
	}

	p.logger.Info("event published",
		zap.String("topic", topic),
		zap.Int("bytes", len(payload)))
	return nil
}
