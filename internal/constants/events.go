package constants

// RabbitMQ topology for outgoing domain events.
const (
	EventsExchange     = "marketplace_events"
	EventsExchangeType = "topic"

	RoutingKeyInquiryCreated        = "inquiry.created"
	RoutingKeyPropertyStatusChanged = "property.status_changed"
)
