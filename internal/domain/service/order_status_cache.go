package service

import (
	"context"

	"github.com/google/uuid"
)

// OrderStatusCache keeps the latest known order status for fast reads.
type OrderStatusCache interface {
	// SetStatus stores the status of an order.
	SetStatus(ctx context.Context, orderID uuid.UUID, status string) error

	// GetStatus returns the cached status, reporting false on a miss.
	GetStatus(ctx context.Context, orderID uuid.UUID) (string, bool, error)
}
