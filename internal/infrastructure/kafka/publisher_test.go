package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localmarket/internal/domain/entity"
)

type captureWriter struct {
	msgs   []kafka.Message
	closed bool
}

func (w *captureWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *captureWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublishRequestStatus(t *testing.T) {
	w := &captureWriter{}
	p := &Publisher{writer: w}
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	err := p.PublishRequestStatus(context.Background(), entity.RequestStatusChanged{
		RequestID:  "r1",
		BuyerID:    "b1",
		Quantity:   3,
		Status:     entity.RequestApproved,
		OccurredAt: at,
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "r1", string(msg.Key))
	assert.Equal(t, at, msg.Time)

	var decoded entity.RequestStatusChanged
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, entity.RequestApproved, decoded.Status)
	assert.Equal(t, 3, decoded.Quantity)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}
