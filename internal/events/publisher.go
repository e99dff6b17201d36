package events

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Publisher interface {
	PublishCartCheckedOut(ctx context.Context, ev Envelope) error
}

// NoopPublisher logs the event instead of publishing. Used when no broker
// is configured.
type NoopPublisher struct {
	logger *log.Logger
}

func NewNoopPublisher(logger *log.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}

func (p *NoopPublisher) PublishCartCheckedOut(ctx context.Context, ev Envelope) error {
	p.logger.Printf("cart checked out for user %s (%d lines, total %d); no broker configured",
		ev.Payload.UserID, len(ev.Payload.Items), ev.Payload.TotalAmount)
	return nil
}

// RabbitPublisher publishes enveloped events to the shared topic exchange.
type RabbitPublisher struct {
	ch *amqp.Channel
}

func NewRabbitPublisher(conn *amqp.Connection) (*RabbitPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	if err := declareEventsExchange(ch); err != nil {
		_ = ch.Close()
		return nil, err
	}
	return &RabbitPublisher{ch: ch}, nil
}

func (p *RabbitPublisher) PublishCartCheckedOut(ctx context.Context, ev Envelope) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	return p.ch.PublishWithContext(
		ctx,
		EventsExchange,
		CartCheckedOutRoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    ev.EventID,
			Timestamp:    ev.OccurredAt,
			Body:         body,
		},
	)
}

func (p *RabbitPublisher) Close() error {
	return p.ch.Close()
}
