package handler

import (
	"log/slog"
	"net/http"

	"shop/internal/delivery/api/response"
	"shop/internal/domain/constants"
	"shop/internal/domain/entity"
	"shop/internal/domain/readmodel"
	"shop/internal/domain/repository"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC      usecase.OrderUsecase
	OrderQueryUC usecase.OrderQueryUsecase
	Logger       *slog.Logger
}

// OrderHandler serves order placement, cancellation and lookup
type OrderHandler struct {
	orderUC      usecase.OrderUsecase
	orderQueryUC usecase.OrderQueryUsecase
	logger       *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC:      params.OrderUC,
		orderQueryUC: params.OrderQueryUC,
		logger:       params.Logger,
	}
}

// PlaceOrderRequest is the body of POST /orders
type PlaceOrderRequest struct {
	MemberID string `json:"memberId" validate:"required,uuid"`
	ItemID   string `json:"itemId" validate:"required,uuid"`
	Count    int    `json:"count" validate:"gte=1"`
}

// PlaceOrderResponse carries the ID of the placed order
type PlaceOrderResponse struct {
	OrderID uuid.UUID `json:"orderId"`
}

// OrderStatusResponse reports the status of one order
type OrderStatusResponse struct {
	OrderID uuid.UUID          `json:"orderId"`
	Status  entity.OrderStatus `json:"status"`
}

// OrderListResponse wraps the searched orders with their count
type OrderListResponse struct {
	Count  int                         `json:"count"`
	Orders []readmodel.SimpleOrderView `json:"orders"`
}

// PlaceOrder places a single-line order
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var req PlaceOrderRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	// Both IDs passed the uuid rule above
	memberID := uuid.MustParse(req.MemberID)
	itemID := uuid.MustParse(req.ItemID)

	orderID, err := h.orderUC.Order(c.Request().Context(), &usecase.PlaceOrderInput{
		MemberID:       memberID,
		ItemID:         itemID,
		Count:          req.Count,
		IdempotencyKey: c.Request().Header.Get(constants.HeaderIdempotencyKey),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, PlaceOrderResponse{OrderID: orderID})
}

// SearchOrders filters orders by member name and status
func (h *OrderHandler) SearchOrders(c echo.Context) error {
	search := repository.OrderSearch{
		MemberName:  c.QueryParam("memberName"),
		OrderStatus: entity.OrderStatus(c.QueryParam("orderStatus")),
	}

	orders, err := h.orderUC.FindOrders(c.Request().Context(), search)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]readmodel.SimpleOrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, readmodel.SimpleFromOrder(order))
	}

	return response.Success(c, http.StatusOK, OrderListResponse{Count: len(views), Orders: views})
}

// CancelOrder cancels an order and restores its stock
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	id, ok, err := pathID(c, "order")
	if !ok {
		return err
	}

	if err := h.orderUC.CancelOrder(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, OrderStatusResponse{OrderID: id, Status: entity.OrderStatusCancelled})
}

// GetOrderStatus returns the current status of an order
func (h *OrderHandler) GetOrderStatus(c echo.Context) error {
	id, ok, err := pathID(c, "order")
	if !ok {
		return err
	}

	status, err := h.orderQueryUC.Status(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, OrderStatusResponse{OrderID: id, Status: status})
}
