package usecase

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// SaveItemInput carries a new catalog item. Only the fields of Kind's variant are used.
type SaveItemInput struct {
	Kind          entity.ItemKind
	Name          string
	Price         int
	StockQuantity int

	Author string
	ISBN   string

	Artist string
	Etc    string

	Director string
	Actor    string
}

// UpdateItemInput carries the shared catalog fields of an item
type UpdateItemInput struct {
	Name          string
	Price         int
	StockQuantity int
}

// ItemUsecase defines the catalog use cases
type ItemUsecase interface {
	SaveItem(ctx context.Context, input *SaveItemInput) (uuid.UUID, error)
	UpdateItem(ctx context.Context, id uuid.UUID, input *UpdateItemInput) (*entity.Item, error)
	FindItems(ctx context.Context) ([]*entity.Item, error)
	FindOne(ctx context.Context, id uuid.UUID) (*entity.Item, error)
}
