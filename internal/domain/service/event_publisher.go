package service

import (
	"context"
	"time"
)

// OrderEvent is published after an order change has been committed.
type OrderEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	EventID        string    `json:"event_id"`
	Type           string    `json:"type"`
	OrderID        string    `json:"order_id"`
	MemberID       string    `json:"member_id"`
	Status         string    `json:"status"`
	DeliveryStatus string    `json:"delivery_status,omitempty"`
	TotalPrice     int       `json:"total_price"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
