package service

import (
	"github.com/streadway/amqp"
)

// Names on the wire for the order events contract.
const (
	OrdersExchange      = "orders_exchange"
	OrderCreatedRouting = "order.created"
)

// Publisher abstracts the message broker so tests can assert on published
// events and a process without a broker configured stays silent.
type Publisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

type amqpPublisher struct {
	ch *amqp.Channel
}

// NewAMQPPublisher wraps an AMQP channel. The exchange must already be
// declared by the caller.
func NewAMQPPublisher(ch *amqp.Channel) Publisher {
	return &amqpPublisher{ch: ch}
}

func (p *amqpPublisher) Publish(exchange, routingKey string, body []byte) error {
	return p.ch.Publish(
		exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

// NopPublisher drops every event. Used when RABBITMQ_URL is not configured.
type NopPublisher struct{}

func (NopPublisher) Publish(exchange, routingKey string, body []byte) error {
	return nil
}
