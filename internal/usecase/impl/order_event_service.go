package impl

import (
	"context"
	"log/slog"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/service"
	"shop/internal/errors"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type orderEventService struct {
	statusCache service.OrderStatusCache
	logger      *slog.Logger
}

// OrderEventServiceParams holds dependencies for OrderEventService, injected by Fx.
type OrderEventServiceParams struct {
	fx.In

	StatusCache service.OrderStatusCache
	Logger      *slog.Logger
}

// NewOrderEventService creates the consumer of pushed order events
func NewOrderEventService(params OrderEventServiceParams) usecase.OrderEventUsecase {
	return &orderEventService{
		statusCache: params.StatusCache,
		logger:      params.Logger,
	}
}

// HandleOrderEvent records the status carried by the event. A cached CANCELLED
// status is never replaced, since events may arrive out of order.
func (srv *orderEventService) HandleOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	orderID, err := uuid.Parse(event.OrderID)
	if err != nil {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "invalid order id %q", event.OrderID)
	}

	status := entity.OrderStatus(event.Status)
	if !status.IsValid() {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "invalid order status %q", event.Status)
	}

	if status != entity.OrderStatusCancelled {
		current, ok, err := srv.statusCache.GetStatus(ctx, orderID)
		if err != nil {
			return errors.Wrap(err, "failed to read cached order status")
		}
		if ok && entity.OrderStatus(current) == entity.OrderStatusCancelled {
			logger.Debug("Skipping stale order event",
				slog.String("event_id", event.EventID),
				slog.String("order_id", event.OrderID),
			)

			return nil
		}
	}

	if err := srv.statusCache.SetStatus(ctx, orderID, status.String()); err != nil {
		return errors.Wrap(err, "failed to cache order status")
	}

	logger.Info("Order event processed",
		slog.String("event_id", event.EventID),
		slog.String("type", event.Type),
		slog.String("order_id", event.OrderID),
		slog.String("status", event.Status),
	)

	return nil
}
