package notify

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/rabbitmq/amqp091-go"
)

const queueName = "notifications"

// Dispatcher publishes user notifications to a durable RabbitMQ queue for
// out-of-band delivery. The connection is established lazily on first use
// and reused until it is observed closed.
type Dispatcher struct {
	url string

	mu      sync.Mutex
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewDispatcher(url string) *Dispatcher {
	return &Dispatcher{url: url}
}

// connect dials the broker and declares the notifications queue. Callers
// must hold d.mu.
func (d *Dispatcher) connect() error {
	if d.conn != nil && !d.conn.IsClosed() {
		return nil
	}

	conn, err := amqp091.Dial(d.url)
	if err != nil {
		return fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		conn.Close()
		return fmt.Errorf("declare queue %s: %w", queueName, err)
	}

	d.conn = conn
	d.channel = ch
	return nil
}

// Notify publishes a "<user_id>:<message>" payload as a persistent
// delivery on the notifications queue.
func (d *Dispatcher) Notify(ctx context.Context, userID uint, message string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.connect(); err != nil {
		return err
	}

	body := fmt.Sprintf("%d:%s", userID, message)
	err := d.channel.PublishWithContext(
		ctx,
		"",        // default exchange
		queueName, // routing key
		false,     // mandatory
		false,     // immediate
		amqp091.Publishing{
			ContentType:  "text/plain",
			Body:         []byte(body),
			DeliveryMode: amqp091.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}

// SendEmail is a stub; real delivery would go through an email provider.
func (d *Dispatcher) SendEmail(email, subject, message string) {
	log.Printf("Sending email to %s: %s - %s", email, subject, message)
}

// Close tears down the channel and connection if they were ever opened.
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.channel != nil {
		d.channel.Close()
	}
	if d.conn != nil {
		return d.conn.Close()
	}
	return nil
}
