// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	domainerrors "shop/internal/domain/errors"
	"shop/internal/errors"

	"github.com/google/uuid"
)

// ItemKind discriminates the catalog item variants.
type ItemKind string

const (
	// ItemKindBook is a printed book.
	ItemKindBook ItemKind = "BOOK"
	// ItemKindAlbum is a music album.
	ItemKindAlbum ItemKind = "ALBUM"
	// ItemKindMovie is a movie.
	ItemKindMovie ItemKind = "MOVIE"
)

// String returns the string representation of the ItemKind.
func (k ItemKind) String() string {
	return string(k)
}

// IsValid checks if the ItemKind is a known variant.
func (k ItemKind) IsValid() bool {
	switch k {
	case ItemKindBook, ItemKindAlbum, ItemKindMovie:
		return true
	default:
		return false
	}
}

// BookDetails holds the fields only books carry.
type BookDetails struct {
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
}

// AlbumDetails holds the fields only albums carry.
type AlbumDetails struct {
	Artist string `json:"artist"`
	Etc    string `json:"etc"`
}

// MovieDetails holds the fields only movies carry.
type MovieDetails struct {
	Director string `json:"director"`
	Actor    string `json:"actor"`
}

// Item is a sellable catalog entry. Exactly one of Book, Album or Movie is set,
// matching Kind.
type Item struct {
	ID            uuid.UUID
	Kind          ItemKind
	Name          string
	Price         int
	StockQuantity int
	Book          *BookDetails
	Album         *AlbumDetails
	Movie         *MovieDetails
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewBook builds a book item.
func NewBook(name string, price, stock int, details BookDetails) (*Item, error) {
	return newItem(&Item{Kind: ItemKindBook, Name: name, Price: price, StockQuantity: stock, Book: &details})
}

// NewAlbum builds an album item.
func NewAlbum(name string, price, stock int, details AlbumDetails) (*Item, error) {
	return newItem(&Item{Kind: ItemKindAlbum, Name: name, Price: price, StockQuantity: stock, Album: &details})
}

// NewMovie builds a movie item.
func NewMovie(name string, price, stock int, details MovieDetails) (*Item, error) {
	return newItem(&Item{Kind: ItemKindMovie, Name: name, Price: price, StockQuantity: stock, Movie: &details})
}

func newItem(item *Item) (*Item, error) {
	item.Name = strings.TrimSpace(item.Name)
	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks the shared fields and that the variant payload matches Kind.
func (i *Item) Validate() error {
	if i.Name == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "item name is required")
	}
	if i.Price < 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "item price must not be negative")
	}
	if i.StockQuantity < 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "item stock must not be negative")
	}

	variants := 0
	for _, set := range []bool{i.Book != nil, i.Album != nil, i.Movie != nil} {
		if set {
			variants++
		}
	}
	if variants != 1 {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "item must carry exactly one variant, got %d", variants)
	}

	switch i.Kind {
	case ItemKindBook:
		if i.Book == nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, "book item without book details")
		}
	case ItemKindAlbum:
		if i.Album == nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, "album item without album details")
		}
	case ItemKindMovie:
		if i.Movie == nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, "movie item without movie details")
		}
	default:
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown item kind %q", i.Kind)
	}

	return nil
}

// AddStock increases the stock by quantity.
func (i *Item) AddStock(quantity int) {
	i.StockQuantity += quantity
}

// RemoveStock decreases the stock by quantity. The stock is left untouched
// when it cannot cover the request.
func (i *Item) RemoveStock(quantity int) error {
	rest := i.StockQuantity - quantity
	if rest < 0 {
		return errors.Wrapf(domainerrors.ErrInsufficientStock,
			"item %s: requested %d, available %d", i.Name, quantity, i.StockQuantity)
	}

	i.StockQuantity = rest

	return nil
}

// Change replaces the shared catalog fields.
func (i *Item) Change(name string, price, stock int) error {
	candidate := *i
	candidate.Name = strings.TrimSpace(name)
	candidate.Price = price
	candidate.StockQuantity = stock

	if err := candidate.Validate(); err != nil {
		return err
	}

	i.Name = candidate.Name
	i.Price = candidate.Price
	i.StockQuantity = candidate.StockQuantity

	return nil
}
