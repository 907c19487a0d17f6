package impl

import (
	"context"
	"testing"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/errors"
	mockRepo "shop/internal/mocks/repository"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestItemService_SaveItem(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.SaveItemInput
		check   func(t *testing.T, item *entity.Item)
		wantErr error
	}{
		{
			name:  "book",
			input: usecase.SaveItemInput{Kind: entity.ItemKindBook, Name: "JPA", Price: 10000, StockQuantity: 10, Author: "kim", ISBN: "1234"},
			check: func(t *testing.T, item *entity.Item) {
				require.NotNil(t, item.Book)
				assert.Equal(t, "kim", item.Book.Author)
			},
		},
		{
			name:  "album",
			input: usecase.SaveItemInput{Kind: entity.ItemKindAlbum, Name: "Album", Price: 15000, StockQuantity: 3, Artist: "IU"},
			check: func(t *testing.T, item *entity.Item) {
				require.NotNil(t, item.Album)
				assert.Equal(t, "IU", item.Album.Artist)
			},
		},
		{
			name:  "movie",
			input: usecase.SaveItemInput{Kind: entity.ItemKindMovie, Name: "Movie", Price: 9000, StockQuantity: 1, Director: "Bong"},
			check: func(t *testing.T, item *entity.Item) {
				require.NotNil(t, item.Movie)
				assert.Equal(t, "Bong", item.Movie.Director)
			},
		},
		{
			name:    "unknown kind",
			input:   usecase.SaveItemInput{Kind: "FOOD", Name: "Rice"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "negative price",
			input:   usecase.SaveItemInput{Kind: entity.ItemKindBook, Name: "JPA", Price: -1},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockItemRepo := mockRepo.NewMockItemRepository(t)
			svc := NewItemService(ItemServiceParams{
				TxManager: mockRepo.NewMockTransactionManager(t),
				ItemRepo:  mockItemRepo,
				Logger:    newDiscardLogger(),
			})

			var saved *entity.Item
			if tt.wantErr == nil {
				mockItemRepo.EXPECT().
					Save(mock.Anything, mock.AnythingOfType("*entity.Item")).
					Run(func(_ context.Context, item *entity.Item) {
						item.ID = uuid.New()
						saved = item
					}).
					Return(nil)
			}

			id, err := svc.SaveItem(context.Background(), &tt.input)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, saved.ID, id)
			assert.Equal(t, tt.input.Kind, saved.Kind)
			tt.check(t, saved)
		})
	}
}

func TestItemService_UpdateItem(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockItemRepo := mockRepo.NewMockItemRepository(t)
	svc := NewItemService(ItemServiceParams{
		TxManager: mockTx,
		ItemRepo:  mockItemRepo,
		Logger:    newDiscardLogger(),
	})
	book := newTestBook(t, "JPA", 10000, 10)

	expectTx(mockTx, mockFactory)
	mockFactory.EXPECT().NewItemRepository().Return(mockItemRepo)
	mockItemRepo.EXPECT().FindByIDForUpdate(mock.Anything, book.ID).Return(book, nil)
	mockItemRepo.EXPECT().Update(mock.Anything, book).Return(nil)

	updated, err := svc.UpdateItem(context.Background(), book.ID, &usecase.UpdateItemInput{
		Name:          "JPA 2nd",
		Price:         12000,
		StockQuantity: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, "JPA 2nd", updated.Name)
	assert.Equal(t, 12000, updated.Price)
	assert.Equal(t, 5, updated.StockQuantity)
	require.NotNil(t, updated.Book)
}

func TestItemService_UpdateItem_NotFound(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockItemRepo := mockRepo.NewMockItemRepository(t)
	svc := NewItemService(ItemServiceParams{
		TxManager: mockTx,
		ItemRepo:  mockItemRepo,
		Logger:    newDiscardLogger(),
	})
	id := uuid.New()

	expectTx(mockTx, mockFactory)
	mockFactory.EXPECT().NewItemRepository().Return(mockItemRepo)
	mockItemRepo.EXPECT().FindByIDForUpdate(mock.Anything, id).Return(nil, repository.ErrItemNotFound)

	_, err := svc.UpdateItem(context.Background(), id, &usecase.UpdateItemInput{Name: "x"})

	assert.True(t, errors.Is(err, domainerrors.ErrItemNotFound))
}

func TestItemService_FindOne(t *testing.T) {
	mockItemRepo := mockRepo.NewMockItemRepository(t)
	svc := NewItemService(ItemServiceParams{
		TxManager: mockRepo.NewMockTransactionManager(t),
		ItemRepo:  mockItemRepo,
		Logger:    newDiscardLogger(),
	})
	ctx := context.Background()
	book := newTestBook(t, "JPA", 10000, 10)
	missing := uuid.New()

	mockItemRepo.EXPECT().FindByID(ctx, book.ID).Return(book, nil)
	mockItemRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrItemNotFound)

	found, err := svc.FindOne(ctx, book.ID)
	require.NoError(t, err)
	assert.Same(t, book, found)

	_, err = svc.FindOne(ctx, missing)
	assert.True(t, errors.Is(err, domainerrors.ErrItemNotFound))
}
