package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/game-booking/internal/domain/error"
	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/usecase"
	amqp "github.com/rabbitmq/amqp091-go"
)

// ConsumerConfig holds the settings of the payment signal consumer
type ConsumerConfig struct {
	URL         string
	Queue       string
	ConsumerTag string
	Prefetch    int
	MaxBackoff  time.Duration
}

// GatewayConsumer reads payment gateway signals from a durable queue and hands
// them to the payment use case. Delivery is at least once, so every signal
// handler tolerates duplicates.
type GatewayConsumer struct {
	config   ConsumerConfig
	payments usecase.PaymentUseCase
	logger   coreport.Logger
}

// NewGatewayConsumer creates a new GatewayConsumer
func NewGatewayConsumer(config ConsumerConfig, payments usecase.PaymentUseCase, logger coreport.Logger) *GatewayConsumer {
	if config.Prefetch <= 0 {
		config.Prefetch = 16
	}
	if config.MaxBackoff <= 0 {
		config.MaxBackoff = 30 * time.Second
	}
	return &GatewayConsumer{
		config:   config,
		payments: payments,
		logger:   logger,
	}
}

// Run consumes until ctx is cancelled, reconnecting with backoff when the
// broker goes away
func (c *GatewayConsumer) Run(ctx context.Context) error {
	backoff := time.Duration(0)
	for {
		started, err := c.consume(ctx)
		if ctx.Err() != nil {
			c.logger.Info("Payment signal consumer stopped", map[string]any{
				"queue": c.config.Queue,
			})
			return nil
		}

		backoff = c.nextBackoff(backoff, started)
		c.logger.Warn("Payment signal consumer disconnected, reconnecting", map[string]any{
			"queue":   c.config.Queue,
			"backoff": backoff.String(),
			"error":   err.Error(),
		})

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(backoff):
		}
	}
}

// nextBackoff doubles the wait after each failed reconnect up to MaxBackoff.
// A session that got as far as consuming starts over from one second.
func (c *GatewayConsumer) nextBackoff(previous time.Duration, started bool) time.Duration {
	if started || previous <= 0 {
		return time.Second
	}
	return min(previous*2, c.config.MaxBackoff)
}

// consume runs one broker session. started reports whether the session got
// as far as receiving deliveries.
func (c *GatewayConsumer) consume(ctx context.Context) (started bool, err error) {
	conn, err := amqp.Dial(c.config.URL)
	if err != nil {
		return false, fmt.Errorf("dialing rabbitmq: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return false, fmt.Errorf("opening channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(c.config.Prefetch, 0, false); err != nil {
		return false, fmt.Errorf("setting qos: %w", err)
	}
	if _, err := ch.QueueDeclare(c.config.Queue, true, false, false, false, nil); err != nil {
		return false, fmt.Errorf("declaring queue %s: %w", c.config.Queue, err)
	}

	deliveries, err := ch.Consume(c.config.Queue, c.config.ConsumerTag, false, false, false, false, nil)
	if err != nil {
		return false, fmt.Errorf("consuming queue %s: %w", c.config.Queue, err)
	}

	c.logger.Info("Payment signal consumer started", map[string]any{
		"queue":        c.config.Queue,
		"consumer_tag": c.config.ConsumerTag,
	})

	for {
		select {
		case <-ctx.Done():
			_ = ch.Cancel(c.config.ConsumerTag, false)
			return true, ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return true, errors.New("deliveries channel closed")
			}
			c.handleDelivery(ctx, d)
		}
	}
}

// handleDelivery acks handled and permanently rejected signals. A signal that
// failed for a reason a retry can fix is requeued once, then dead-lettered.
func (c *GatewayConsumer) handleDelivery(ctx context.Context, d amqp.Delivery) {
	var signal entity.PaymentSignal
	if err := json.Unmarshal(d.Body, &signal); err != nil {
		c.logger.Error("Discarding malformed payment signal", map[string]any{
			"message_id": d.MessageId,
			"error":      err.Error(),
		})
		_ = d.Nack(false, false)
		return
	}

	fields := map[string]any{
		"message_id":     d.MessageId,
		"kind":           string(signal.Kind),
		"game_id":        signal.GameID,
		"player_id":      signal.PlayerID,
		"reservation_id": signal.ReservationID,
		"transaction_id": signal.TransactionID,
	}

	result, err := c.payments.HandleSignal(ctx, signal)
	switch {
	case err == nil:
		fields["ignored"] = result != nil && result.Ignored
		c.logger.Info("Payment signal handled", fields)
		_ = d.Ack(false)
	case errs.IsRetryable(err) && !d.Redelivered:
		fields["error"] = err.Error()
		c.logger.Warn("Payment signal failed, requeueing", fields)
		_ = d.Nack(false, true)
	case errs.IsRetryable(err):
		fields["error"] = err.Error()
		c.logger.Error("Payment signal failed after redelivery, dropping", fields)
		_ = d.Nack(false, false)
	default:
		fields["error"] = err.Error()
		fields["error_code"] = string(errs.CodeOf(err))
		c.logger.Warn("Payment signal rejected", fields)
		_ = d.Ack(false)
	}
}
