package orderpublisher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"send-test-order/internal/domain"
	"send-test-order/internal/logger"
)

// Broker is an open connection able to declare a queue and publish to it.
type Broker interface {
	DeclareQueue(ctx context.Context, name string) error
	PublishJSON(ctx context.Context, queue string, body []byte) (string, error)
	Close() error
}

// Dialer opens a new Broker connection.
type Dialer func(ctx context.Context) (Broker, error)

type Service struct {
	dial  Dialer
	queue string
	out   io.Writer
	log   *logger.Logger
}

// NewService returns a Service that publishes to queue and reports progress to out.
func NewService(dial Dialer, queue string, out io.Writer, log *logger.Logger) *Service {
	return &Service{dial: dial, queue: queue, out: out, log: log}
}

// Run dispatches to SendSingle or SendBatch.
func (s *Service) Run(ctx context.Context, mode Mode) error {
	if mode == ModeBatch {
		return s.SendBatch(ctx)
	}
	return s.SendSingle(ctx)
}

// SendSingle publishes SingleOrder and prints its summary.
func (s *Service) SendSingle(ctx context.Context) error {
	order := SingleOrder()

	err := s.publish(ctx, []domain.Order{order}, func(domain.Order) {
		fmt.Fprintln(s.out, "✅ Order sent successfully!")
		fmt.Fprintf(s.out, "📝 Order code: %d\n", order.CodigoPedido)
		fmt.Fprintf(s.out, "👤 Customer: %d\n", order.CodigoCliente)
		fmt.Fprintf(s.out, "📦 Items: %d\n", len(order.Itens))
		fmt.Fprintf(s.out, "💰 Expected total: R$ %s\n", order.Total().StringFixed(2))
	})
	if err != nil {
		fmt.Fprintf(s.out, "❌ Error sending order: %v\n", err)
		return err
	}
	return nil
}

// SendBatch publishes BatchOrders over a single connection, stopping at the
// first failure.
func (s *Service) SendBatch(ctx context.Context) error {
	orders := BatchOrders()

	err := s.publish(ctx, orders, func(o domain.Order) {
		fmt.Fprintf(s.out, "✅ Order %d sent for customer %d\n", o.CodigoPedido, o.CodigoCliente)
	})
	if err != nil {
		fmt.Fprintf(s.out, "❌ Error sending orders: %v\n", err)
		return err
	}

	fmt.Fprintf(s.out, "🎉 All %d orders were sent successfully!\n", len(orders))
	return nil
}

// publish runs connect, declare, publish each order, close. sent is called
// after each successful publish.
func (s *Service) publish(ctx context.Context, orders []domain.Order, sent func(domain.Order)) error {
	b, err := s.dial(ctx)
	if err != nil {
		s.log.Error(err, "rabbitmq_connection_failed", "Could not connect to RabbitMQ")
		return fmt.Errorf("%w: connect: %w", ErrBrokerOperation, err)
	}
	closed := false
	defer func() {
		if !closed {
			_ = b.Close()
		}
	}()

	if err := b.DeclareQueue(ctx, s.queue); err != nil {
		s.log.Error(err, "queue_declare_failed", "Could not declare queue "+s.queue)
		return fmt.Errorf("%w: %w", ErrBrokerOperation, err)
	}

	for _, o := range orders {
		body, err := json.Marshal(o)
		if err != nil {
			return fmt.Errorf("encode order %d: %w", o.CodigoPedido, err)
		}

		id, err := b.PublishJSON(ctx, s.queue, body)
		if err != nil {
			s.log.Error(err, "rabbitmq_publish_failed", fmt.Sprintf("Failed to publish order %d", o.CodigoPedido))
			return fmt.Errorf("%w: %w", ErrBrokerOperation, err)
		}
		s.log.Info("order_published", fmt.Sprintf("Order %d published", o.CodigoPedido), id)
		sent(o)
	}

	closed = true
	if err := b.Close(); err != nil {
		s.log.Error(err, "rabbitmq_close_failed", "Could not close RabbitMQ connection")
		return fmt.Errorf("%w: %w", ErrBrokerOperation, err)
	}
	return nil
}
