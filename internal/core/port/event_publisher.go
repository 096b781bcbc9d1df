package port

import "context"

// EventPublisherPort publishes domain events for external consumers
// (mailers, feeds). Publishing failures are logged by callers but never
// fail the originating operation.
type EventPublisherPort interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}
