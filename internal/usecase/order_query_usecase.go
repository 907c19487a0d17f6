package usecase

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/domain/readmodel"

	"github.com/google/uuid"
)

// OrderQueryUsecase materializes order read models
type OrderQueryUsecase interface {
	// FindOrderViews loads order trees with the requested strategy
	FindOrderViews(ctx context.Context, strategy readmodel.Strategy, page readmodel.Page) ([]readmodel.OrderView, error)

	// FindSimpleOrders loads the to-one projection with the requested strategy
	FindSimpleOrders(ctx context.Context, strategy readmodel.SimpleStrategy, page readmodel.Page) ([]readmodel.SimpleOrderView, error)

	// Status returns the order status, from the cache when possible
	Status(ctx context.Context, orderID uuid.UUID) (entity.OrderStatus, error)
}
