package config

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

// OrderQueue is the durable queue the order-processing service consumes from.
const OrderQueue = "order.queue"

// Config holds all configuration for the application.
type Config struct {
	RabbitMQ struct {
		Host     string
		Port     int
		User     string
		Password string
		VHost    string
	}
	Queue string
}

// Default returns the fixed broker parameters used for local testing.
// There is no file or environment override.
func Default() *Config {
	var cfg Config
	cfg.RabbitMQ.Host = "localhost"
	cfg.RabbitMQ.Port = 5672
	cfg.RabbitMQ.User = "guest"
	cfg.RabbitMQ.Password = "guest"
	cfg.RabbitMQ.VHost = "/"
	cfg.Queue = OrderQueue
	return &cfg
}

// URL renders the connection parameters as an AMQP URI.
func (c *Config) URL() string {
	return amqp.URI{
		Scheme:   "amqp",
		Host:     c.RabbitMQ.Host,
		Port:     c.RabbitMQ.Port,
		Username: c.RabbitMQ.User,
		Password: c.RabbitMQ.Password,
		Vhost:    c.RabbitMQ.VHost,
	}.String()
}
