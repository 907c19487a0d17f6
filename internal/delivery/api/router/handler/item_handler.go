package handler

import (
	"log/slog"
	"net/http"

	"shop/internal/delivery/api/response"
	"shop/internal/domain/entity"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ItemHandlerParams holds dependencies for ItemHandler, injected by Fx.
type ItemHandlerParams struct {
	fx.In

	ItemUC usecase.ItemUsecase
	Logger *slog.Logger
}

// ItemHandler serves the item catalog
type ItemHandler struct {
	itemUC usecase.ItemUsecase
	logger *slog.Logger
}

// NewItemHandler is the constructor for ItemHandler
func NewItemHandler(params ItemHandlerParams) *ItemHandler {
	return &ItemHandler{
		itemUC: params.ItemUC,
		logger: params.Logger,
	}
}

// CreateItemRequest is the body of POST /items. Only the fields of the kind are read.
type CreateItemRequest struct {
	Kind          string `json:"kind" validate:"required,oneof=BOOK ALBUM MOVIE"`
	Name          string `json:"name" validate:"required"`
	Price         int    `json:"price" validate:"gte=0"`
	StockQuantity int    `json:"stockQuantity" validate:"gte=0"`

	Author string `json:"author"`
	ISBN   string `json:"isbn"`

	Artist string `json:"artist"`
	Etc    string `json:"etc"`

	Director string `json:"director"`
	Actor    string `json:"actor"`
}

// UpdateItemRequest is the body of PUT /items/:id
type UpdateItemRequest struct {
	Name          string `json:"name" validate:"required"`
	Price         int    `json:"price" validate:"gte=0"`
	StockQuantity int    `json:"stockQuantity" validate:"gte=0"`
}

// CreateItemResponse carries the ID of the new item
type CreateItemResponse struct {
	ID uuid.UUID `json:"id"`
}

// ItemResponse is the public view of an item
type ItemResponse struct {
	ID            uuid.UUID            `json:"id"`
	Kind          entity.ItemKind      `json:"kind"`
	Name          string               `json:"name"`
	Price         int                  `json:"price"`
	StockQuantity int                  `json:"stockQuantity"`
	Book          *entity.BookDetails  `json:"book,omitempty"`
	Album         *entity.AlbumDetails `json:"album,omitempty"`
	Movie         *entity.MovieDetails `json:"movie,omitempty"`
}

// ItemListResponse wraps the item list with its size
type ItemListResponse struct {
	Count int            `json:"count"`
	Items []ItemResponse `json:"items"`
}

func toItemResponse(item *entity.Item) ItemResponse {
	return ItemResponse{
		ID:            item.ID,
		Kind:          item.Kind,
		Name:          item.Name,
		Price:         item.Price,
		StockQuantity: item.StockQuantity,
		Book:          item.Book,
		Album:         item.Album,
		Movie:         item.Movie,
	}
}

// CreateItem adds an item to the catalog
func (h *ItemHandler) CreateItem(c echo.Context) error {
	var req CreateItemRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	id, err := h.itemUC.SaveItem(c.Request().Context(), &usecase.SaveItemInput{
		Kind:          entity.ItemKind(req.Kind),
		Name:          req.Name,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		Author:        req.Author,
		ISBN:          req.ISBN,
		Artist:        req.Artist,
		Etc:           req.Etc,
		Director:      req.Director,
		Actor:         req.Actor,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, CreateItemResponse{ID: id})
}

// ListItems returns the whole catalog
func (h *ItemHandler) ListItems(c echo.Context) error {
	items, err := h.itemUC.FindItems(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}

	return response.Success(c, http.StatusOK, ItemListResponse{Count: len(out), Items: out})
}

// GetItem returns one item
func (h *ItemHandler) GetItem(c echo.Context) error {
	id, ok, err := pathID(c, "item")
	if !ok {
		return err
	}

	item, err := h.itemUC.FindOne(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toItemResponse(item))
}

// UpdateItem changes the name, price and stock of an item
func (h *ItemHandler) UpdateItem(c echo.Context) error {
	id, ok, err := pathID(c, "item")
	if !ok {
		return err
	}

	var req UpdateItemRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	item, err := h.itemUC.UpdateItem(c.Request().Context(), id, &usecase.UpdateItemInput{
		Name:          req.Name,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toItemResponse(item))
}
