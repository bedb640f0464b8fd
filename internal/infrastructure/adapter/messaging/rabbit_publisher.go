package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/messaging"
	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrPublisherClosed is returned by Publish after Close
var ErrPublisherClosed = errors.New("event publisher is closed")

// publishChannel is the part of *amqp.Channel the publisher needs
type publishChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitPublisher publishes registration lifecycle events to a durable topic
// exchange, routed by event type
type RabbitPublisher struct {
	mu           sync.Mutex
	conn         *amqp.Connection
	channel      publishChannel
	exchange     string
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	closed       bool
}

var _ messaging.EventPublisher = (*RabbitPublisher)(nil)

// NewRabbitPublisher dials the broker and declares the events exchange
func NewRabbitPublisher(url, exchange string, timeProvider coreport.TimeProvider, logger coreport.Logger) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dialing rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("opening rabbitmq channel: %w", err)
	}

	publisher, err := newRabbitPublisherWithChannel(ch, exchange, timeProvider, logger)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	publisher.conn = conn
	return publisher, nil
}

func newRabbitPublisherWithChannel(ch publishChannel, exchange string, timeProvider coreport.TimeProvider, logger coreport.Logger) (*RabbitPublisher, error) {
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declaring exchange %s: %w", exchange, err)
	}

	logger.Info("RabbitMQ publisher ready", map[string]any{
		"exchange": exchange,
	})
	return &RabbitPublisher{
		channel:      ch,
		exchange:     exchange,
		timeProvider: timeProvider,
		logger:       logger,
	}, nil
}

// Publish sends event as a persistent JSON message, routing key = event type
func (p *RabbitPublisher) Publish(ctx context.Context, event entity.RegistrationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", event.Type, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    fmt.Sprintf("%s:%s", event.RegistrationID, event.Type),
		Type:         string(event.Type),
		Timestamp:    p.timeProvider.Now(),
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPublisherClosed
	}

	if err := p.channel.PublishWithContext(ctx, p.exchange, string(event.Type), false, false, msg); err != nil {
		p.logger.Error("Failed to publish registration event", map[string]any{
			"exchange":        p.exchange,
			"routing_key":     string(event.Type),
			"registration_id": event.RegistrationID,
			"error":           err.Error(),
		})
		return fmt.Errorf("publishing %s event: %w", event.Type, err)
	}

	p.logger.Debug("Registration event published", map[string]any{
		"exchange":        p.exchange,
		"routing_key":     string(event.Type),
		"registration_id": event.RegistrationID,
	})
	return nil
}

// Close closes the channel and the connection
func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	var errs []error
	if err := p.channel.Close(); err != nil {
		errs = append(errs, err)
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
