package postgres

import (
	"context"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/errors"
	"shop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// itemRepository implements the repository.ItemRepository interface.
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository is the constructor for itemRepository.
func NewItemRepository(db *gorm.DB) repository.ItemRepository {
	return &itemRepository{
		db: db,
	}
}

// Save persists a new item and assigns its ID.
func (repo *itemRepository) Save(ctx context.Context, item *entity.Item) error {
	itemM := fromItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Update writes name, price, stock and attributes of an existing item.
func (repo *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"name":           item.Name,
			"price":          item.Price,
			"stock_quantity": item.StockQuantity,
			"attributes":     datatypes.NewJSONType(itemAttributes(item)),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

// FindByID retrieves an item by its unique ID.
func (repo *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	return repo.findByID(ctx, repo.db, id)
}

// FindByIDForUpdate retrieves an item and locks its row until the transaction ends.
func (repo *itemRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	return repo.findByID(ctx, repo.db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (repo *itemRepository) findByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Item, error) {
	var itemM model.ItemModel

	if err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item by ID")
	}

	return toItemDomain(&itemM), nil
}

// FindAll retrieves every item.
func (repo *itemRepository) FindAll(ctx context.Context) ([]*entity.Item, error) {
	var itemModels []*model.ItemModel

	if err := repo.db.WithContext(ctx).
		Order("created_at, id").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find items")
	}

	items := make([]*entity.Item, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toItemDomain(itemM))
	}

	return items, nil
}
