package impl

import (
	"context"
	"log/slog"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/constants"
	"shop/internal/domain/entity"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/errors"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

type deliveryService struct {
	txManager    repository.TransactionManager
	queryRepo    repository.OrderQueryRepository
	labelService service.DeliveryLabelService
	publisher    service.EventPublisher
	tracer       trace.Tracer
	logger       *slog.Logger
}

// DeliveryServiceParams holds dependencies for DeliveryService, injected by Fx.
type DeliveryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	QueryRepo    repository.OrderQueryRepository
	LabelService service.DeliveryLabelService
	Publisher    service.EventPublisher
	Tracer       trace.Tracer
	Logger       *slog.Logger
}

// NewDeliveryService creates a new delivery service instance
func NewDeliveryService(params DeliveryServiceParams) usecase.DeliveryUsecase {
	return &deliveryService{
		txManager:    params.TxManager,
		queryRepo:    params.QueryRepo,
		labelService: params.LabelService,
		publisher:    params.Publisher,
		tracer:       tracerOrNoop(params.Tracer),
		logger:       params.Logger,
	}
}

// Advance moves the delivery of an order one step forward
func (srv *deliveryService) Advance(ctx context.Context, orderID uuid.UUID) (*entity.Delivery, error) {
	ctx, span := srv.tracer.Start(ctx, "delivery.Advance", trace.WithAttributes(
		attribute.String("order_id", orderID.String()),
	))
	defer span.End()

	var advanced *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := orderRepo.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return mapOrderError(err)
		}

		if err := order.Delivery.Advance(); err != nil {
			return err
		}

		if err := orderRepo.UpdateDeliveryStatus(ctx, order.Delivery); err != nil {
			return errors.Wrap(err, "failed to update delivery status")
		}
		advanced = order

		return nil
	})
	if err != nil {
		recordSpanError(span, err)

		return nil, errors.Wrap(err, "failed to advance delivery")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Info("Delivery advanced",
		slog.String("order_id", orderID.String()),
		slog.String("status", advanced.Delivery.Status.String()),
	)
	publishOrderEvent(ctx, srv.publisher, logger, constants.EventOrderDeliveryAdvanced, advanced)

	return advanced.Delivery, nil
}

// Label renders the QR label of an existing order's delivery
func (srv *deliveryService) Label(ctx context.Context, orderID uuid.UUID) ([]byte, error) {
	if _, err := srv.queryRepo.FindStatus(ctx, orderID); err != nil {
		return nil, mapOrderError(err)
	}

	label, err := srv.labelService.GenerateDeliveryLabel(orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate delivery label")
	}

	return label, nil
}

// Scan parses a delivery label and advances the matching delivery
func (srv *deliveryService) Scan(ctx context.Context, qrData string) (*entity.Delivery, error) {
	orderID, err := srv.labelService.ParseDeliveryLabel(qrData)
	if err != nil {
		return nil, err
	}

	return srv.Advance(ctx, orderID)
}
