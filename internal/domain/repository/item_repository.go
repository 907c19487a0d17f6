package repository

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/errors"

	"github.com/google/uuid"
)

// ErrItemNotFound is returned when an item is not found.
var ErrItemNotFound = errors.New("item not found")

// ItemRepository defines the interface for catalog persistence.
type ItemRepository interface {
	// Save persists a new item and assigns its ID.
	Save(ctx context.Context, item *entity.Item) error

	// Update writes name, price, stock and variant attributes of an existing item.
	Update(ctx context.Context, item *entity.Item) error

	// FindByID retrieves an item by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)

	// FindByIDForUpdate retrieves an item and locks its row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Item, error)

	// FindAll retrieves every item.
	FindAll(ctx context.Context) ([]*entity.Item, error)
}
