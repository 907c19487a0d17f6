package repository

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/domain/readmodel"

	"github.com/google/uuid"
)

// OrderQueryRepository reads order projections straight into view types, without entities.
type OrderQueryRepository interface {
	// FindAllFlat returns one row per order line in a single query.
	FindAllFlat(ctx context.Context) ([]readmodel.FlatRow, error)

	// FindOrderViews loads a page of roots, then the lines of each root with its own query.
	FindOrderViews(ctx context.Context, page readmodel.Page) ([]readmodel.OrderView, error)

	// FindOrderViewsBatched loads a page of roots, then all their lines with one IN query.
	FindOrderViewsBatched(ctx context.Context, page readmodel.Page) ([]readmodel.OrderView, error)

	// FindSimpleOrderViews selects the to-one projection columns directly.
	FindSimpleOrderViews(ctx context.Context, page readmodel.Page) ([]readmodel.SimpleOrderView, error)

	// FindStatus returns only the status column of an order.
	FindStatus(ctx context.Context, id uuid.UUID) (entity.OrderStatus, error)
}
