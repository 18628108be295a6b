// Package rabbitmq publishes customer notifications to a RabbitMQ topic
// exchange. Downstream consumers (email, push) bind their own queues with
// routing keys matching the notification event names.
package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	"storefront/internal/core/domain/model/notification"

	"github.com/rabbitmq/amqp091-go"
)

// notificationEnvelope is the wire shape of a published notification.
type notificationEnvelope struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	UserID    string    `json:"user_id"`
	Event     string    `json:"event"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationPublisher implements NotificationPublisher over a RabbitMQ
// topic exchange. The notification event name doubles as the routing key.
type NotificationPublisher struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
}

// NewNotificationPublisher connects to RabbitMQ and declares the durable
// topic exchange notifications are published to.
func NewNotificationPublisher(amqpURL string, exchange string) (*NotificationPublisher, error) {
	conn, err := amqp091.Dial(amqpURL)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &NotificationPublisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
	}, nil
}

// Publish sends a notification to the exchange as a persistent JSON message.
func (p *NotificationPublisher) Publish(ctx context.Context, message *notification.Notification) error {
	if err := message.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(notificationEnvelope{
		ID:        message.ID().String(),
		OrderID:   message.Order().String(),
		UserID:    message.User().String(),
		Event:     message.Event().String(),
		CreatedAt: message.CreatedAt(),
	})
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(ctx,
		p.exchange,               // exchange
		message.Event().String(), // routing key
		false,                    // mandatory
		false,                    // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    message.ID().String(),
			Timestamp:    message.CreatedAt(),
			Body:         body,
		})
}

// Close gracefully closes the channel and connection.
func (p *NotificationPublisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
