package main

import (
	"context"
	"log/slog"
	"os"

	"shop/config"
	"shop/internal/delivery"
	"shop/internal/delivery/api"
	"shop/internal/delivery/api/router/handler"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/infra/cache"
	logs "shop/internal/infra/log"
	"shop/internal/infra/persistence/postgres"
	"shop/internal/infra/pubsub"
	"shop/internal/infra/qrcode"
	"shop/internal/infra/tracing"
	"shop/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		tracing.Module,
		cache.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewMemberRepository,
			postgres.NewItemRepository,
			newOrderRepository,
			postgres.NewOrderQueryRepository,
		),
	)
}

// newOrderRepository applies the configured IN-list chunk size
func newOrderRepository(db *gorm.DB, cfg *config.Config) repository.OrderRepository {
	return postgres.NewOrderRepository(db, cfg.Persistence.BatchFetchSize)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newDeliveryLabelService,
		),
	)
}

// newDeliveryLabelService creates the QR label service with dependency injection
func newDeliveryLabelService(cfg *config.Config) service.DeliveryLabelService {
	if cfg.DeliveryLabel == nil {
		// Use default values if not configured
		return qrcode.NewDeliveryLabelService(256, "M")
	}

	return qrcode.NewDeliveryLabelService(cfg.DeliveryLabel.Size, cfg.DeliveryLabel.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMemberService,
			impl.NewItemService,
			impl.NewOrderService,
			impl.NewOrderQueryService,
			impl.NewDeliveryService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewMemberHandler,
			handler.NewItemHandler,
			handler.NewOrderHandler,
			handler.NewOrderViewHandler,
			handler.NewDeliveryHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
