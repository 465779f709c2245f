package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrofund/internal/core/domain"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func TestNewKafkaPublisher_RequiresBrokers(t *testing.T) {
	_, err := NewKafkaPublisher(nil, "agrofund.events")
	require.Error(t, err)

	_, err = NewKafkaPublisher([]string{"localhost:9092"}, "")
	require.Error(t, err)
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &recordingWriter{}
	p := &KafkaPublisher{writer: w, topic: "agrofund.events"}
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	err := p.Publish(context.Background(), domain.Event{
		ID:          "ev-1",
		Type:        domain.EventCampaignApproved,
		AggregateID: "7",
		OccurredAt:  at,
		Payload:     domain.ResetPayload{Campaigns: 1},
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "agrofund.events", msg.Topic)
	assert.Equal(t, []byte("7"), msg.Key)
	assert.Equal(t, at, msg.Time)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "campaign.approved", decoded["type"])
	assert.Equal(t, "ev-1", decoded["id"])
}

func TestKafkaPublisher_PropagatesWriteError(t *testing.T) {
	cause := errors.New("broker down")
	p := &KafkaPublisher{writer: &recordingWriter{err: cause}, topic: "t"}

	err := p.Publish(context.Background(), domain.Event{Type: domain.EventRecordsReset})
	require.ErrorIs(t, err, cause)
}
