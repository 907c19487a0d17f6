package usecase

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/domain/repository"

	"github.com/google/uuid"
)

// PlaceOrderInput carries a single-line order
type PlaceOrderInput struct {
	MemberID uuid.UUID
	ItemID   uuid.UUID
	Count    int

	// IdempotencyKey makes retries of the same request return the first order
	IdempotencyKey string
}

// OrderUsecase defines the order write use cases
type OrderUsecase interface {
	// Order places an order, taking stock from the item
	Order(ctx context.Context, input *PlaceOrderInput) (uuid.UUID, error)

	// CancelOrder cancels an order and restores the stock of its lines
	CancelOrder(ctx context.Context, orderID uuid.UUID) error

	// FindOrders searches orders by member name and status
	FindOrders(ctx context.Context, search repository.OrderSearch) ([]*entity.Order, error)
}
