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

// DeliveryHandlerParams holds dependencies for DeliveryHandler, injected by Fx.
type DeliveryHandlerParams struct {
	fx.In

	DeliveryUC usecase.DeliveryUsecase
	Logger     *slog.Logger
}

// DeliveryHandler serves delivery progress and labels
type DeliveryHandler struct {
	deliveryUC usecase.DeliveryUsecase
	logger     *slog.Logger
}

// NewDeliveryHandler is the constructor for DeliveryHandler
func NewDeliveryHandler(params DeliveryHandlerParams) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryUC: params.DeliveryUC,
		logger:     params.Logger,
	}
}

// ScanLabelRequest carries the text read from a delivery label
type ScanLabelRequest struct {
	QRData string `json:"qrData" validate:"required"`
}

// DeliveryResponse is the public view of a delivery
type DeliveryResponse struct {
	OrderID uuid.UUID             `json:"orderId"`
	Status  entity.DeliveryStatus `json:"status"`
	Address entity.Address        `json:"address"`
}

func toDeliveryResponse(orderID uuid.UUID, delivery *entity.Delivery) DeliveryResponse {
	if delivery.Order != nil {
		orderID = delivery.Order.ID
	}

	return DeliveryResponse{
		OrderID: orderID,
		Status:  delivery.Status,
		Address: delivery.Address,
	}
}

// AdvanceDelivery moves the order's delivery one step forward
func (h *DeliveryHandler) AdvanceDelivery(c echo.Context) error {
	id, ok, err := pathID(c, "order")
	if !ok {
		return err
	}

	delivery, err := h.deliveryUC.Advance(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDeliveryResponse(id, delivery))
}

// GetDeliveryLabel renders the order's delivery label as a PNG QR code
func (h *DeliveryHandler) GetDeliveryLabel(c echo.Context) error {
	id, ok, err := pathID(c, "order")
	if !ok {
		return err
	}

	label, err := h.deliveryUC.Label(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, label)
}

// ScanDeliveryLabel advances the delivery identified by a scanned label
func (h *DeliveryHandler) ScanDeliveryLabel(c echo.Context) error {
	var req ScanLabelRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	delivery, err := h.deliveryUC.Scan(c.Request().Context(), req.QRData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDeliveryResponse(uuid.Nil, delivery))
}
