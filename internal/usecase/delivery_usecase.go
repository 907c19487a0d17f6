package usecase

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/domain/service"

	"github.com/google/uuid"
)

// DeliveryUsecase defines the delivery progress use cases
type DeliveryUsecase interface {
	// Advance moves the order's delivery one step forward
	Advance(ctx context.Context, orderID uuid.UUID) (*entity.Delivery, error)

	// Label renders the delivery QR label of an order
	Label(ctx context.Context, orderID uuid.UUID) ([]byte, error)

	// Scan parses a delivery label and advances the matching delivery
	Scan(ctx context.Context, qrData string) (*entity.Delivery, error)
}

// OrderEventUsecase consumes order events delivered by the push worker
type OrderEventUsecase interface {
	HandleOrderEvent(ctx context.Context, event *service.OrderEvent) error
}
