package rabbitmq

import (
	"context"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/contextkeys"
	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/port"
)

// NoopEventPublisher is used when the broker is disabled in configuration.
// Events are dropped with a debug log line.
type NoopEventPublisher struct{}

func NewNoopEventPublisher() *NoopEventPublisher {
	return &NoopEventPublisher{}
}

func (p *NoopEventPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	logger := contextkeys.LoggerFromContext(ctx)
	logger.Debug("Event publishing is disabled, dropping event", port.Fields{
		"routing_key": routingKey,
	})
	return nil
}

func (p *NoopEventPublisher) Close() error {
	return nil
}
