package broker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cinemaplus/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitPublisher publishes JSON messages to durable queues named after their topic
// through the default exchange. The connection is opened lazily and reopened after a failure.
type RabbitPublisher struct {
	url string

	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	declared map[string]struct{}
}

func NewRabbitPublisher(url string) *RabbitPublisher {
	return &RabbitPublisher{
		url:      url,
		declared: make(map[string]struct{}),
	}
}

func (p *RabbitPublisher) Publish(ctx context.Context, topic string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	if _, ok := p.declared[topic]; !ok {
		if _, err := ch.QueueDeclare(topic, true, false, false, false, nil); err != nil {
			p.reset()
			return errs.Wrapf(err, "rabbitmq: declare queue %s", topic)
		}
		p.declared[topic] = struct{}{}
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", topic, false, false, msg); err != nil {
		p.reset()
		return errs.Wrapf(err, "rabbitmq: publish to %s", topic)
	}
	return nil
}

func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil {
		return nil
	}
	err := p.conn.Close()
	p.conn, p.ch = nil, nil
	return err
}

func (p *RabbitPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, errs.Wrap(err, "rabbitmq: dial")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "rabbitmq: open channel")
	}

	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *RabbitPublisher) reset() {
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && !errs.Is(err, amqp.ErrClosed) {
			slog.Warn("rabbitmq: close connection", "error", err.Error())
		}
	}
	p.conn, p.ch = nil, nil
	p.declared = make(map[string]struct{})
}
