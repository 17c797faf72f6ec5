// internal/events/amqp.go
package events

import (
	"encoding/json"
	"log"

	"github.com/streadway/amqp"
)

// AMQPNotifier publishes events to a topic exchange with the event topic as
// the routing key.
type AMQPNotifier struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewAMQPNotifier(url, exchange string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &AMQPNotifier{conn: conn, channel: ch, exchange: exchange}, nil
}

func (n *AMQPNotifier) Publish(topic string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Println("⚠️ failed to encode event payload:", err)
		return
	}

	err = n.channel.Publish(
		n.exchange,
		topic,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		log.Println("⚠️ failed to publish event to amqp:", err)
	}
}

func (n *AMQPNotifier) Close() {
	n.channel.Close()
	n.conn.Close()
}
