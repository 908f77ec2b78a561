package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"

	"send-test-order/internal/config"
	"send-test-order/internal/logger"
)

const contentTypeJSON = "application/json"

// Client owns one connection and one channel to the broker.
type Client struct {
	conn *amqp091.Connection
	ch   *amqp091.Channel
	log  *logger.Logger
	now  func() time.Time
}

func Connect(rabbitUrl string) (*amqp091.Connection, error) {
	conn, err := amqp091.Dial(rabbitUrl)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}
	return conn, nil
}

func CreateChannel(conn *amqp091.Connection) (*amqp091.Channel, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	return ch, nil
}

func New(conn *amqp091.Connection, ch *amqp091.Channel, log *logger.Logger) *Client {
	return &Client{conn: conn, ch: ch, log: log, now: time.Now}
}

// NewClient dials the broker described by cfg and opens a channel on it.
func NewClient(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Debug("rabbitmq_connecting", fmt.Sprintf("Connecting to %s:%d", cfg.RabbitMQ.Host, cfg.RabbitMQ.Port))
	conn, err := Connect(cfg.URL())
	if err != nil {
		return nil, err
	}

	ch, err := CreateChannel(conn)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	log.Debug("rabbitmq_connected", "Connection and channel open")
	return New(conn, ch, log), nil
}

// DeclareQueue declares a durable, non-exclusive queue that is never auto-deleted.
// Redeclaring an existing queue with the same properties is a no-op on the broker.
func (c *Client) DeclareQueue(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	q, err := c.ch.QueueDeclare(
		name,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("declare queue %q: %w", name, err)
	}
	c.log.Debug("queue_declared", fmt.Sprintf("Queue %s ready with %d messages", q.Name, q.Messages))
	return nil
}

// PublishJSON sends body to queue through the default exchange as a persistent
// message and returns the generated message ID.
func (c *Client) PublishJSON(ctx context.Context, queue string, body []byte) (string, error) {
	msg := newPublishing(body, uuid.NewString(), c.now())
	if err := c.ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return "", fmt.Errorf("publish to %q: %w", queue, err)
	}
	c.log.Debug("message_published", fmt.Sprintf("Published %d bytes to %s", len(body), queue), msg.MessageId)
	return msg.MessageId, nil
}

// Close closes the channel and then the connection.
func (c *Client) Close() error {
	var errs []error
	if c.ch != nil {
		if err := c.ch.Close(); err != nil && !errors.Is(err, amqp091.ErrClosed) {
			errs = append(errs, fmt.Errorf("close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil && !errors.Is(err, amqp091.ErrClosed) {
			errs = append(errs, fmt.Errorf("close connection: %w", err))
		}
	}
	return errors.Join(errs...)
}

func newPublishing(body []byte, messageID string, ts time.Time) amqp091.Publishing {
	return amqp091.Publishing{
		ContentType:  contentTypeJSON,
		DeliveryMode: amqp091.Persistent, // survives a broker restart
		MessageId:    messageID,
		Timestamp:    ts,
		Body:         body,
	}
}
