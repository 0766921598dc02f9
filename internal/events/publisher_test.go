package events

import (
	"encoding/json"
	"errors"
	"testing"

	"hospital-bed-management/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeWire struct {
	topic   string
	payload []byte
	err     error
}

func (w *fakeWire) Publish(topic string, payload []byte) error {
	if w.err != nil {
		return w.err
	}
	w.topic = topic
	w.payload = payload
	return nil
}

func TestPublisher_SerializesEventAsJSON(t *testing.T) {
	wire := &fakeWire{}
	pub := NewPublisher(wire, zap.NewNop())

	event := models.BedReleaseEvent{
		BedID:      "bed-1",
		PatientID:  "pat-1",
		ReleasedAt: "2026-08-20T12:00:00Z",
		Origin:     models.ReleaseOriginSystemAuto,
	}
	require.NoError(t, pub.Publish(TopicBedReleased, event))

	assert.Equal(t, TopicBedReleased, wire.topic)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(wire.payload, &decoded))
	assert.Equal(t, "bed-1", decoded["bedId"])
	assert.Equal(t, "pat-1", decoded["patientId"])
	assert.Equal(t, "2026-08-20T12:00:00Z", decoded["releasedAt"])
	assert.Equal(t, "system_auto", decoded["origin"])
}

func TestPublisher_WireErrorSurfaces(t *testing.T) {
	wire := &fakeWire{err: errors.New("broker unreachable")}
	pub := NewPublisher(wire, zap.NewNop())

	err := pub.Publish(TopicBedReleased, models.BedReleaseEvent{BedID: "bed-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker unreachable")
}
