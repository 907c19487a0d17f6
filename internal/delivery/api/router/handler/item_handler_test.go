package handler

import (
	"net/http"
	"testing"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	mockUsecase "shop/internal/mocks/usecase"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newItemEcho(uc usecase.ItemUsecase) *echo.Echo {
	h := NewItemHandler(ItemHandlerParams{ItemUC: uc, Logger: newDiscardLogger()})
	e := newTestEcho()
	e.POST("/items", h.CreateItem)
	e.GET("/items", h.ListItems)
	e.GET("/items/:id", h.GetItem)
	e.PUT("/items/:id", h.UpdateItem)

	return e
}

func TestItemHandler_CreateItem(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(uc *mockUsecase.MockItemUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name: "book",
			body: `{"kind":"BOOK","name":"JPA1","price":10000,"stockQuantity":100,"author":"kim","isbn":"111"}`,
			setupMock: func(uc *mockUsecase.MockItemUsecase) {
				uc.EXPECT().
					SaveItem(mock.Anything, mock.MatchedBy(func(in *usecase.SaveItemInput) bool {
						return in.Kind == entity.ItemKindBook && in.Author == "kim" && in.ISBN == "111" && in.StockQuantity == 100
					})).
					Return(uuid.New(), nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "unknown kind",
			body:       `{"kind":"GAME","name":"x","price":1}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "negative price",
			body:       `{"kind":"ALBUM","name":"x","price":-1}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockItemUsecase(t)
			if tt.setupMock != nil {
				tt.setupMock(uc)
			}

			rec := serve(newItemEcho(uc), http.MethodPost, "/items", tt.body, nil)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestItemHandler_ListItems_OnlyKindDetails(t *testing.T) {
	book, err := entity.NewBook("JPA1", 10000, 100, entity.BookDetails{Author: "kim"})
	require.NoError(t, err)
	movie, err := entity.NewMovie("Heat", 5000, 3, entity.MovieDetails{Director: "mann"})
	require.NoError(t, err)

	uc := mockUsecase.NewMockItemUsecase(t)
	uc.EXPECT().FindItems(mock.Anything).Return([]*entity.Item{book, movie}, nil).Once()

	rec := serve(newItemEcho(uc), http.MethodGet, "/items", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeData[ItemListResponse](t, rec)
	require.Equal(t, 2, list.Count)
	require.NotNil(t, list.Items[0].Book)
	assert.Equal(t, "kim", list.Items[0].Book.Author)
	assert.Nil(t, list.Items[0].Movie)
	require.NotNil(t, list.Items[1].Movie)
	assert.Nil(t, list.Items[1].Book)
}

func TestItemHandler_GetItem_NotFound(t *testing.T) {
	id := uuid.New()
	uc := mockUsecase.NewMockItemUsecase(t)
	uc.EXPECT().FindOne(mock.Anything, id).Return(nil, domainerrors.ErrItemNotFound).Once()

	rec := serve(newItemEcho(uc), http.MethodGet, "/items/"+id.String(), "", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ITEM_NOT_FOUND", decodeError(t, rec).Code)
}

func TestItemHandler_UpdateItem(t *testing.T) {
	id := uuid.New()
	updated, err := entity.NewAlbum("Kind of Blue", 9000, 5, entity.AlbumDetails{Artist: "davis"})
	require.NoError(t, err)
	updated.ID = id

	uc := mockUsecase.NewMockItemUsecase(t)
	uc.EXPECT().
		UpdateItem(mock.Anything, id, &usecase.UpdateItemInput{Name: "Kind of Blue", Price: 9000, StockQuantity: 5}).
		Return(updated, nil).Once()

	rec := serve(newItemEcho(uc), http.MethodPut, "/items/"+id.String(), `{"name":"Kind of Blue","price":9000,"stockQuantity":5}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[ItemResponse](t, rec)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, entity.ItemKindAlbum, got.Kind)
	require.NotNil(t, got.Album)
	assert.Equal(t, "davis", got.Album.Artist)
}
