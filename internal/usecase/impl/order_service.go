package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/constants"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/errors"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	publisher   service.EventPublisher
	idempotency service.IdempotencyStore
	statusCache service.OrderStatusCache
	tracer      trace.Tracer
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	Publisher   service.EventPublisher
	Idempotency service.IdempotencyStore
	StatusCache service.OrderStatusCache
	Tracer      trace.Tracer
	Logger      *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		publisher:   params.Publisher,
		idempotency: params.Idempotency,
		statusCache: params.StatusCache,
		tracer:      tracerOrNoop(params.Tracer),
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Order places a single-line order. With an idempotency key, a repeated request
// returns the order created by the first one.
func (srv *orderService) Order(ctx context.Context, input *usecase.PlaceOrderInput) (uuid.UUID, error) {
	ctx, span := srv.tracer.Start(ctx, "order.Place", trace.WithAttributes(
		attribute.String("member_id", input.MemberID.String()),
		attribute.String("item_id", input.ItemID.String()),
		attribute.Int("count", input.Count),
	))
	defer span.End()

	if input.IdempotencyKey == "" {
		order, err := srv.placeOrder(ctx, input)
		if err != nil {
			recordSpanError(span, err)

			return uuid.Nil, err
		}

		return order.ID, nil
	}

	orderID, err := srv.placeOrderOnce(ctx, input)
	if err != nil {
		recordSpanError(span, err)

		return uuid.Nil, err
	}

	return orderID, nil
}

func (srv *orderService) placeOrderOnce(ctx context.Context, input *usecase.PlaceOrderInput) (uuid.UUID, error) {
	key := input.IdempotencyKey

	if recalled, ok, err := srv.recall(ctx, key); err != nil || ok {
		return recalled, err
	}

	locked, err := srv.idempotency.TryLock(ctx, constants.IdempotencyScopeOrder, key)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to lock idempotency key")
	}
	if !locked {
		// A request holding the key may have finished between Recall and TryLock.
		if recalled, ok, err := srv.recall(ctx, key); err != nil || ok {
			return recalled, err
		}

		return uuid.Nil, domainerrors.ErrIdempotencyConflict.WrapMessage("idempotency key in progress: " + key)
	}

	order, err := srv.placeOrder(ctx, input)
	if err != nil {
		if releaseErr := srv.idempotency.Release(ctx, constants.IdempotencyScopeOrder, key); releaseErr != nil {
			srv.log(ctx).Warn("Failed to release idempotency key", slog.String("key", key), slog.Any("error", releaseErr))
		}

		return uuid.Nil, err
	}

	if err := srv.idempotency.Remember(ctx, constants.IdempotencyScopeOrder, key, order.ID.String()); err != nil {
		srv.log(ctx).Warn("Failed to remember idempotency key", slog.String("key", key), slog.Any("error", err))
	}

	return order.ID, nil
}

func (srv *orderService) recall(ctx context.Context, key string) (uuid.UUID, bool, error) {
	value, ok, err := srv.idempotency.Recall(ctx, constants.IdempotencyScopeOrder, key)
	if err != nil {
		return uuid.Nil, false, errors.Wrap(err, "failed to recall idempotency key")
	}
	if !ok {
		return uuid.Nil, false, nil
	}

	orderID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, false, errors.Wrapf(err, "corrupt idempotency value for key %s", key)
	}

	srv.log(ctx).Info("Order replayed from idempotency key", slog.String("order_id", value))

	return orderID, true, nil
}

func (srv *orderService) placeOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	var placed *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		memberRepo := repoFactory.NewMemberRepository()
		itemRepo := repoFactory.NewItemRepository()
		orderRepo := repoFactory.NewOrderRepository()

		member, err := memberRepo.FindByID(ctx, input.MemberID)
		if err != nil {
			return mapMemberError(err)
		}

		item, err := itemRepo.FindByIDForUpdate(ctx, input.ItemID)
		if err != nil {
			return mapItemError(err)
		}

		orderItem, err := entity.NewOrderItem(item, item.Price, input.Count)
		if err != nil {
			return err
		}

		order, err := entity.CreateOrder(member, entity.NewDelivery(member.Address), orderItem)
		if err != nil {
			return err
		}

		if err := orderRepo.Save(ctx, order); err != nil {
			return errors.Wrap(err, "failed to save order")
		}

		if err := itemRepo.Update(ctx, item); err != nil {
			return mapItemError(err)
		}
		placed = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order placement failed",
			slog.String("member_id", input.MemberID.String()),
			slog.String("item_id", input.ItemID.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to place order")
	}

	srv.log(ctx).Info("Order placed", slog.String("order_id", placed.ID.String()), slog.Int("total_price", placed.TotalPrice()))
	srv.publish(ctx, constants.EventOrderPlaced, placed)

	return placed, nil
}

// CancelOrder cancels an order. The order row is locked and the status write is
// a compare-and-set, so concurrent cancels restore stock once.
func (srv *orderService) CancelOrder(ctx context.Context, orderID uuid.UUID) error {
	ctx, span := srv.tracer.Start(ctx, "order.Cancel", trace.WithAttributes(
		attribute.String("order_id", orderID.String()),
	))
	defer span.End()

	var cancelled *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()
		itemRepo := repoFactory.NewItemRepository()

		order, err := orderRepo.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return mapOrderError(err)
		}

		if err := order.Cancel(); err != nil {
			return err
		}

		if err := orderRepo.UpdateStatusIf(ctx, order.ID, entity.OrderStatusOrdered, entity.OrderStatusCancelled); err != nil {
			return mapOrderError(err)
		}

		for _, item := range distinctItems(order) {
			if err := itemRepo.Update(ctx, item); err != nil {
				return mapItemError(err)
			}
		}
		cancelled = order

		return nil
	})
	if err != nil {
		recordSpanError(span, err)
		srv.log(ctx).Warn("Order cancellation failed", slog.String("order_id", orderID.String()), slog.Any("error", err))

		return errors.Wrap(err, "failed to cancel order")
	}

	// CANCELLED is terminal, so writing it through cannot leave a stale entry.
	if err := srv.statusCache.SetStatus(ctx, orderID, entity.OrderStatusCancelled.String()); err != nil {
		srv.log(ctx).Warn("Failed to cache order status", slog.String("order_id", orderID.String()), slog.Any("error", err))
	}

	srv.log(ctx).Info("Order cancelled", slog.String("order_id", orderID.String()))
	srv.publish(ctx, constants.EventOrderCancelled, cancelled)

	return nil
}

// FindOrders searches orders by member name and status
func (srv *orderService) FindOrders(ctx context.Context, search repository.OrderSearch) ([]*entity.Order, error) {
	if search.OrderStatus != "" && !search.OrderStatus.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown order status %q", search.OrderStatus)
	}

	orders, err := srv.orderRepo.FindAll(ctx, search)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	return orders, nil
}

// publish sends an order event after commit. Failures are logged only.
func (srv *orderService) publish(ctx context.Context, eventType string, order *entity.Order) {
	publishOrderEvent(ctx, srv.publisher, srv.log(ctx), eventType, order)
}

func publishOrderEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, eventType string, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		OrderID:    order.ID.String(),
		Status:     order.Status.String(),
		TotalPrice: order.TotalPrice(),
		OccurredAt: time.Now().UTC(),
	}
	if order.Member != nil {
		event.MemberID = order.Member.ID.String()
	}
	if order.Delivery != nil {
		event.DeliveryStatus = order.Delivery.Status.String()
	}

	if err := publisher.PublishOrderEvent(ctx, event); err != nil {
		logger.Error("Failed to publish order event",
			slog.String("type", eventType),
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}

// distinctItems returns each item referenced by the order's lines once.
func distinctItems(order *entity.Order) []*entity.Item {
	seen := make(map[uuid.UUID]struct{}, len(order.OrderItems))
	items := make([]*entity.Item, 0, len(order.OrderItems))
	for _, orderItem := range order.OrderItems {
		if orderItem.Item == nil {
			continue
		}
		if _, ok := seen[orderItem.Item.ID]; ok {
			continue
		}
		seen[orderItem.Item.ID] = struct{}{}
		items = append(items, orderItem.Item)
	}

	return items
}

func mapOrderError(err error) error {
	switch {
	case errors.Is(err, repository.ErrOrderNotFound):
		return domainerrors.ErrOrderNotFound.WrapMessage(err.Error())
	case errors.Is(err, repository.ErrOrderStatusChanged):
		return domainerrors.ErrInvalidOrderState.WrapMessage(err.Error())
	case errors.Is(err, repository.ErrPagingNotSupported):
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	default:
		return err
	}
}
