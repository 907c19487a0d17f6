package handler

import (
	"log/slog"
	"net/http"

	"shop/internal/delivery/api/response"
	"shop/internal/domain/readmodel"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderViewHandlerParams holds dependencies for OrderViewHandler, injected by Fx.
type OrderViewHandlerParams struct {
	fx.In

	OrderQueryUC usecase.OrderQueryUsecase
	Logger       *slog.Logger
}

// OrderViewHandler exposes the order read models
type OrderViewHandler struct {
	orderQueryUC usecase.OrderQueryUsecase
	logger       *slog.Logger
}

// NewOrderViewHandler is the constructor for OrderViewHandler
func NewOrderViewHandler(params OrderViewHandlerParams) *OrderViewHandler {
	return &OrderViewHandler{
		orderQueryUC: params.OrderQueryUC,
		logger:       params.Logger,
	}
}

// ListOrderViews returns full order trees loaded with ?strategy=, paged by ?offset=&limit=
func (h *OrderViewHandler) ListOrderViews(c echo.Context) error {
	strategy, err := readmodel.ParseStrategy(c.QueryParam("strategy"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, ok, err := bindPage(c)
	if !ok {
		return err
	}

	views, err := h.orderQueryUC.FindOrderViews(c.Request().Context(), strategy, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, views)
}

// ListSimpleOrders returns the to-one order projection loaded with ?strategy=
func (h *OrderViewHandler) ListSimpleOrders(c echo.Context) error {
	strategy, err := readmodel.ParseSimpleStrategy(c.QueryParam("strategy"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, ok, err := bindPage(c)
	if !ok {
		return err
	}

	views, err := h.orderQueryUC.FindSimpleOrders(c.Request().Context(), strategy, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, views)
}

func bindPage(c echo.Context) (readmodel.Page, bool, error) {
	var page readmodel.Page
	err := echo.QueryParamsBinder(c).
		Int("offset", &page.Offset).
		Int("limit", &page.Limit).
		BindError()
	if err != nil {
		return readmodel.Page{}, false, response.BadRequest(c, "INVALID_PAGE", "offset and limit must be integers")
	}

	return page, true, nil
}
