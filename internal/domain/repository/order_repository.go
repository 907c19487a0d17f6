package repository

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/domain/readmodel"
	"shop/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderStatusChanged is returned when a compare-and-set status update matched no row.
	ErrOrderStatusChanged = errors.New("order status changed concurrently")
	// ErrPagingNotSupported is returned when a collection join fetch is asked to page.
	ErrPagingNotSupported = errors.New("paging is not supported for collection join fetch")
)

// OrderSearch filters orders. Empty fields do not filter.
type OrderSearch struct {
	MemberName  string             // Substring match on the member name.
	OrderStatus entity.OrderStatus // Exact status match.
}

// OrderRepository persists the Order aggregate together with its lines and delivery.
type OrderRepository interface {
	// Save persists a new order, its delivery and its lines, assigning their IDs.
	Save(ctx context.Context, order *entity.Order) error

	// FindByID loads the full aggregate: member, delivery, lines and their items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDForUpdate loads the full aggregate and locks the order row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// UpdateStatusIf switches the status only when it still equals from.
	// Returns ErrOrderStatusChanged when no row matched.
	UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error

	// UpdateDeliveryStatus writes the status of the order's delivery.
	UpdateDeliveryStatus(ctx context.Context, delivery *entity.Delivery) error

	// FindAll searches orders with member and delivery loaded.
	FindAll(ctx context.Context, search OrderSearch) ([]*entity.Order, error)

	// FindAllWithMemberDelivery loads a page of orders with their to-one relations only.
	FindAllWithMemberDelivery(ctx context.Context, page readmodel.Page) ([]*entity.Order, error)

	// LoadOrderItems fills the lines (and their items) of the given orders with batched IN queries.
	LoadOrderItems(ctx context.Context, orders []*entity.Order) error

	// FindAllWithItems loads every order with member, delivery, lines and items in one joined query.
	// Returns ErrPagingNotSupported for a non-zero page.
	FindAllWithItems(ctx context.Context, page readmodel.Page) ([]*entity.Order, error)
}
