package impl

import (
	"context"
	"log/slog"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/readmodel"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/errors"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type orderQueryService struct {
	orderRepo   repository.OrderRepository
	queryRepo   repository.OrderQueryRepository
	statusCache service.OrderStatusCache
	logger      *slog.Logger
}

// OrderQueryServiceParams holds dependencies for OrderQueryService, injected by Fx.
type OrderQueryServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	QueryRepo   repository.OrderQueryRepository
	StatusCache service.OrderStatusCache
	Logger      *slog.Logger
}

// NewOrderQueryService creates the read-model service
func NewOrderQueryService(params OrderQueryServiceParams) usecase.OrderQueryUsecase {
	return &orderQueryService{
		orderRepo:   params.OrderRepo,
		queryRepo:   params.QueryRepo,
		statusCache: params.StatusCache,
		logger:      params.Logger,
	}
}

// FindOrderViews loads order trees with the requested strategy. Every strategy
// yields the same set of trees.
func (srv *orderQueryService) FindOrderViews(ctx context.Context, strategy readmodel.Strategy, page readmodel.Page) ([]readmodel.OrderView, error) {
	if err := validatePage(page); err != nil {
		return nil, err
	}
	if !strategy.Pageable() && !page.IsZero() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "strategy %s cannot be paged", strategy)
	}

	var (
		views []readmodel.OrderView
		err   error
	)
	switch strategy {
	case readmodel.StrategyJoin:
		views, err = srv.joinFetch(ctx, page)
	case readmodel.StrategyBatch:
		views, err = srv.batchFetch(ctx, page)
	case readmodel.StrategyFlat:
		views, err = srv.flatFetch(ctx, page)
	case readmodel.StrategyDTO:
		views, err = srv.queryRepo.FindOrderViews(ctx, page)
	case readmodel.StrategyDTOBatch:
		views, err = srv.queryRepo.FindOrderViewsBatched(ctx, page)
	default:
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown strategy %q", strategy)
	}
	if err != nil {
		return nil, errors.Wrapf(mapOrderError(err), "failed to load order views with strategy %s", strategy)
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Order views loaded",
		slog.String("strategy", string(strategy)),
		slog.Int("count", len(views)),
	)

	return views, nil
}

func (srv *orderQueryService) joinFetch(ctx context.Context, page readmodel.Page) ([]readmodel.OrderView, error) {
	orders, err := srv.orderRepo.FindAllWithItems(ctx, page)
	if err != nil {
		return nil, err
	}

	return readmodel.FromOrders(orders), nil
}

func (srv *orderQueryService) batchFetch(ctx context.Context, page readmodel.Page) ([]readmodel.OrderView, error) {
	orders, err := srv.orderRepo.FindAllWithMemberDelivery(ctx, page)
	if err != nil {
		return nil, err
	}

	if err := srv.orderRepo.LoadOrderItems(ctx, orders); err != nil {
		return nil, err
	}

	return readmodel.FromOrders(orders), nil
}

// flatFetch pages after grouping, so limits count orders rather than rows.
func (srv *orderQueryService) flatFetch(ctx context.Context, page readmodel.Page) ([]readmodel.OrderView, error) {
	rows, err := srv.queryRepo.FindAllFlat(ctx)
	if err != nil {
		return nil, err
	}

	return pageViews(readmodel.GroupFlatRows(rows), page), nil
}

func pageViews(views []readmodel.OrderView, page readmodel.Page) []readmodel.OrderView {
	if page.IsZero() {
		return views
	}

	start := min(page.Offset, len(views))
	end := len(views)
	if page.Limit > 0 {
		end = min(start+page.Limit, len(views))
	}

	return views[start:end]
}

// FindSimpleOrders loads the to-one projection
func (srv *orderQueryService) FindSimpleOrders(ctx context.Context, strategy readmodel.SimpleStrategy, page readmodel.Page) ([]readmodel.SimpleOrderView, error) {
	if err := validatePage(page); err != nil {
		return nil, err
	}

	switch strategy {
	case readmodel.SimpleStrategyFetch:
		orders, err := srv.orderRepo.FindAllWithMemberDelivery(ctx, page)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch simple orders")
		}

		views := make([]readmodel.SimpleOrderView, 0, len(orders))
		for _, order := range orders {
			views = append(views, readmodel.SimpleFromOrder(order))
		}

		return views, nil
	case readmodel.SimpleStrategyDTO:
		views, err := srv.queryRepo.FindSimpleOrderViews(ctx, page)
		if err != nil {
			return nil, errors.Wrap(err, "failed to query simple orders")
		}

		return views, nil
	default:
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown simple strategy %q", strategy)
	}
}

// Status reads the cache first and falls back to the database.
func (srv *orderQueryService) Status(ctx context.Context, orderID uuid.UUID) (entity.OrderStatus, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	cached, ok, err := srv.statusCache.GetStatus(ctx, orderID)
	if err != nil {
		logger.Warn("Order status cache read failed", slog.String("order_id", orderID.String()), slog.Any("error", err))
	}
	if ok {
		if status := entity.OrderStatus(cached); status.IsValid() {
			return status, nil
		}
	}

	status, err := srv.queryRepo.FindStatus(ctx, orderID)
	if err != nil {
		return "", mapOrderError(err)
	}

	// Only terminal statuses are cached on read; ORDERED may change underneath.
	if status == entity.OrderStatusCancelled {
		if err := srv.statusCache.SetStatus(ctx, orderID, status.String()); err != nil {
			logger.Warn("Order status cache write failed", slog.String("order_id", orderID.String()), slog.Any("error", err))
		}
	}

	return status, nil
}

func validatePage(page readmodel.Page) error {
	if page.Offset < 0 || page.Limit < 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "offset and limit must not be negative")
	}

	return nil
}
