package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/constants"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/contextkeys"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/port"
)

const publishTimeout = 10 * time.Second

// EventPublisherAdapter publishes marketplace events to a topic exchange.
type EventPublisherAdapter struct {
	connection *amqp.Connection
	channel    *amqp.Channel
}

// NewEventPublisherAdapter dials the broker and declares the events exchange.
func NewEventPublisherAdapter(url string) (*EventPublisherAdapter, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq adapter: failed to dial RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq adapter: failed to open a channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		constants.EventsExchange,
		constants.EventsExchangeType,
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq adapter: failed to declare exchange '%s': %w", constants.EventsExchange, err)
	}

	return &EventPublisherAdapter{connection: conn, channel: ch}, nil
}

func (a *EventPublisherAdapter) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "EventPublisherAdapter",
		"routing_key": routingKey,
	})

	if a.channel == nil || a.connection == nil || a.connection.IsClosed() {
		return fmt.Errorf("rabbitmq adapter: not connected or channel/connection is closed")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		adapterLogger.Error("Failed to marshal event payload to JSON", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to marshal event payload: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Headers:      make(amqp.Table),
	}

	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = a.channel.PublishWithContext(
		publishCtx,
		constants.EventsExchange,
		routingKey,
		false, // mandatory
		false, // immediate
		msg,
	)
	if err != nil {
		adapterLogger.Error("Failed to publish event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish event: %w", err)
	}

	adapterLogger.Debug("Event published", nil)
	return nil
}

func (a *EventPublisherAdapter) Close() error {
	var firstErr error
	if a.channel != nil {
		if err := a.channel.Close(); err != nil {
			firstErr = err
		}
		a.channel = nil
	}
	if a.connection != nil {
		if err := a.connection.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		a.connection = nil
	}
	return firstErr
}
