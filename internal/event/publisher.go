package event

import (
	"encoding/json"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// EventPublisher emits training domain events on a topic exchange. Routing
// keys follow the "training.<entity>.<verb>" convention so downstream
// consumers (reporting, department dashboards) can bind selectively.
type EventPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	log      *zap.Logger
}

func NewEventPublisher(amqpURL, exchange string, log *zap.Logger) (*EventPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}
	return &EventPublisher{conn: conn, channel: ch, exchange: exchange, log: log}, nil
}

func (p *EventPublisher) Publish(eventType string, payload interface{}) error {
	event := map[string]interface{}{
		"type":    eventType,
		"payload": payload,
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	p.log.Debug("publishing event", zap.String("type", eventType))

	return p.channel.Publish(
		p.exchange,
		eventType, // routing key
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func (p *EventPublisher) Close() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
