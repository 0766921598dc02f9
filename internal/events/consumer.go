package events

import (
	"encoding/json"
	"fmt"

	"hospital-bed-management/internal/apperrors"
	"hospital-bed-management/internal/models"

	"go.uber.org/zap"
)

// BedReleaser is the slice of the bed store the consumer needs.
type BedReleaser interface {
	FindByID(id string) (*models.Bed, error)
	Release(bedID, releasedAt string) error
}

// Consumer reconciles bed state from BedReleaseEvents delivered on the
// hospital event channel. Releases are applied unconditionally, so replaying
// an event or receiving one for an already-released bed converges to the
// same terminal state.
type Consumer struct {
	beds   BedReleaser
	logger *zap.Logger
}

func NewConsumer(beds BedReleaser, logger *zap.Logger) *Consumer {
	return &Consumer{beds: beds, logger: logger}
}

// Start subscribes the consumer to the hospital event family.
func (c *Consumer) Start(client *Client) error {
	if err := client.Subscribe(TopicHospitalEvents, c.HandleMessage); err != nil {
		return err
	}
	c.logger.Info("bed release consumer subscribed",
		zap.String("filter", TopicHospitalEvents))
	return nil
}

// HandleMessage dispatches a delivered message by topic. Unknown topics under
// the subscribed family are ignored.
func (c *Consumer) HandleMessage(topic string, payload []byte) error {
	if topic != TopicBedReleased {
		c.logger.Debug("ignoring event on unhandled topic", zap.String("topic", topic))
		return nil
	}

	var event models.BedReleaseEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		c.logger.Warn("dropping malformed bed release event", zap.Error(err))
		return nil
	}
	return c.handleBedReleased(event)
}

// handleBedReleased applies a single release event. Errors are logged and the
// event is dropped; nothing surfaces back to the transport.
func (c *Consumer) handleBedReleased(event models.BedReleaseEvent) error {
	c.logger.Info("bed release event received",
		zap.String("bed_id", event.BedID),
		zap.String("patient_id", event.PatientID),
		zap.String("origin", event.Origin))

	if event.BedID == "" {
		c.logger.Warn("dropping bed release event without bed id")
		return nil
	}

	if _, err := c.beds.FindByID(event.BedID); err != nil {
		if apperrors.IsNotFound(err) {
			c.logger.Warn("bed from release event not found, dropping",
				zap.String("bed_id", event.BedID))
			return nil
		}
		c.logger.Error("failed to look up bed for release event, dropping",
			zap.String("bed_id", event.BedID), zap.Error(err))
		return nil
	}

	releasedAt := event.ReleasedAt
	if err := c.beds.Release(event.BedID, releasedAt); err != nil {
		c.logger.Error("failed to persist bed release from event, dropping",
			zap.String("bed_id", event.BedID), zap.Error(err))
		return nil
	}

	c.logger.Info(fmt.Sprintf("bed %s released by %s", event.BedID, event.Origin),
		zap.String("released_at", releasedAt))
	return nil
}
