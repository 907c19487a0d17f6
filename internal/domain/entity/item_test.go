package entity

import (
	"testing"

	domainerrors "shop/internal/domain/errors"
	"shop/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_RemoveStock(t *testing.T) {
	tests := []struct {
		name      string
		stock     int
		quantity  int
		wantStock int
		wantErr   error
	}{
		{name: "partial", stock: 10, quantity: 3, wantStock: 7},
		{name: "exact", stock: 3, quantity: 3, wantStock: 0},
		{name: "not enough", stock: 2, quantity: 5, wantStock: 2, wantErr: domainerrors.ErrInsufficientStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := NewAlbum("Album", 1000, tt.stock, AlbumDetails{Artist: "artist"})
			require.NoError(t, err)

			err = item.RemoveStock(tt.quantity)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantStock, item.StockQuantity)
		})
	}
}

func TestItem_AddStock(t *testing.T) {
	item, err := NewMovie("Movie", 1000, 1, MovieDetails{Director: "director", Actor: "actor"})
	require.NoError(t, err)

	item.AddStock(4)

	assert.Equal(t, 5, item.StockQuantity)
}

func TestItem_Validate(t *testing.T) {
	tests := []struct {
		name string
		item Item
		ok   bool
	}{
		{name: "book", item: Item{Kind: ItemKindBook, Name: "b", Book: &BookDetails{}}, ok: true},
		{name: "empty name", item: Item{Kind: ItemKindBook, Book: &BookDetails{}}},
		{name: "negative price", item: Item{Kind: ItemKindBook, Name: "b", Price: -1, Book: &BookDetails{}}},
		{name: "kind mismatch", item: Item{Kind: ItemKindMovie, Name: "m", Book: &BookDetails{}}},
		{name: "two variants", item: Item{Kind: ItemKindBook, Name: "b", Book: &BookDetails{}, Album: &AlbumDetails{}}},
		{name: "unknown kind", item: Item{Kind: "TOY", Name: "t", Book: &BookDetails{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			}
		})
	}
}

func TestItem_Change(t *testing.T) {
	item, err := NewBook("Old", 1000, 1, BookDetails{})
	require.NoError(t, err)

	require.NoError(t, item.Change(" New ", 2000, 7))
	assert.Equal(t, "New", item.Name)
	assert.Equal(t, 2000, item.Price)
	assert.Equal(t, 7, item.StockQuantity)

	err = item.Change("", 3000, 1)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Equal(t, "New", item.Name)
}
