package impl

import (
	"context"
	"log/slog"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/errors"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

type itemService struct {
	txManager repository.TransactionManager
	itemRepo  repository.ItemRepository
	tracer    trace.Tracer
	logger    *slog.Logger
}

// ItemServiceParams holds dependencies for ItemService, injected by Fx.
type ItemServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	ItemRepo  repository.ItemRepository
	Tracer    trace.Tracer
	Logger    *slog.Logger
}

// NewItemService creates a new catalog service instance
func NewItemService(params ItemServiceParams) usecase.ItemUsecase {
	return &itemService{
		txManager: params.TxManager,
		itemRepo:  params.ItemRepo,
		tracer:    tracerOrNoop(params.Tracer),
		logger:    params.Logger,
	}
}

// SaveItem creates a catalog item of the requested kind
func (srv *itemService) SaveItem(ctx context.Context, input *usecase.SaveItemInput) (uuid.UUID, error) {
	ctx, span := srv.tracer.Start(ctx, "item.Save")
	defer span.End()

	item, err := buildItem(input)
	if err != nil {
		return uuid.Nil, err
	}

	if err := srv.itemRepo.Save(ctx, item); err != nil {
		recordSpanError(span, err)

		return uuid.Nil, errors.Wrap(err, "failed to save item")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Item saved",
		slog.String("item_id", item.ID.String()),
		slog.String("kind", item.Kind.String()),
	)

	return item.ID, nil
}

func buildItem(input *usecase.SaveItemInput) (*entity.Item, error) {
	switch input.Kind {
	case entity.ItemKindBook:
		return entity.NewBook(input.Name, input.Price, input.StockQuantity,
			entity.BookDetails{Author: input.Author, ISBN: input.ISBN})
	case entity.ItemKindAlbum:
		return entity.NewAlbum(input.Name, input.Price, input.StockQuantity,
			entity.AlbumDetails{Artist: input.Artist, Etc: input.Etc})
	case entity.ItemKindMovie:
		return entity.NewMovie(input.Name, input.Price, input.StockQuantity,
			entity.MovieDetails{Director: input.Director, Actor: input.Actor})
	default:
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown item kind %q", input.Kind)
	}
}

// UpdateItem loads the item inside a transaction, changes it and writes it back
func (srv *itemService) UpdateItem(ctx context.Context, id uuid.UUID, input *usecase.UpdateItemInput) (*entity.Item, error) {
	ctx, span := srv.tracer.Start(ctx, "item.Update")
	defer span.End()

	var updated *entity.Item
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.NewItemRepository()

		item, err := itemRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapItemError(err)
		}

		if err := item.Change(input.Name, input.Price, input.StockQuantity); err != nil {
			return err
		}

		if err := itemRepo.Update(ctx, item); err != nil {
			return mapItemError(err)
		}
		updated = item

		return nil
	})
	if err != nil {
		recordSpanError(span, err)

		return nil, errors.Wrap(err, "failed to update item")
	}

	return updated, nil
}

// FindItems lists the catalog
func (srv *itemService) FindItems(ctx context.Context) ([]*entity.Item, error) {
	items, err := srv.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find items")
	}

	return items, nil
}

// FindOne retrieves an item by ID
func (srv *itemService) FindOne(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := srv.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapItemError(err)
	}

	return item, nil
}

func mapItemError(err error) error {
	if errors.Is(err, repository.ErrItemNotFound) {
		return domainerrors.ErrItemNotFound.WrapMessage(err.Error())
	}

	return err
}
