package rabbitmq

import (
	"context"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"send-test-order/internal/config"
	"send-test-order/internal/logger"
)

func TestNewPublishing(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	body := []byte(`{"codigoPedido":1001}`)

	msg := newPublishing(body, "msg-1", ts)

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp091.Persistent, msg.DeliveryMode)
	assert.Equal(t, uint8(2), msg.DeliveryMode)
	assert.Equal(t, "msg-1", msg.MessageId)
	assert.Equal(t, ts, msg.Timestamp)
	assert.Equal(t, body, msg.Body)
}

func TestNewClient_UnreachableBroker(t *testing.T) {
	cfg := config.Default()
	cfg.RabbitMQ.Host = "127.0.0.1"
	cfg.RabbitMQ.Port = 1

	client, err := NewClient(context.Background(), cfg, logger.Nop())
	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "dial")
}

func TestNewClient_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client, err := NewClient(ctx, config.Default(), logger.Nop())
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, client)
}

func TestClose_NilResources(t *testing.T) {
	c := &Client{log: logger.Nop()}
	assert.NoError(t, c.Close())
}
