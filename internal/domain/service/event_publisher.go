package service

import (
	"context"
)

// Event types published to the message queue for downstream consumers
// (analytics, admin dashboard feed).
const (
	EventTypeUserActivity = "user_activity"
	EventTypeOrderCreated = "order_created"
	EventTypeOrderStatus  = "order_status_changed"
)

// Event represents a domain event to be delivered asynchronously.
type Event struct {
	RequestID string            `json:"request_id,omitempty"` // For distributed tracing
	EventID   string            `json:"event_id"`
	Type      string            `json:"type"`
	SubjectID string            `json:"subject_id"` // The principal or order the event is about
	Data      map[string]string `json:"data,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishEvent publishes a domain event for async processing
	PublishEvent(ctx context.Context, event *Event) error

	// Close releases any resources held by the publisher
	Close() error
}
