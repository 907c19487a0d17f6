package qrcode

import (
	"encoding/json"

	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/service"
	"shop/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize      = 256
	deliveryLabelTyp = "delivery"
)

type deliveryLabelService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// LabelData is the JSON payload encoded in a delivery label
type LabelData struct {
	OrderID string `json:"order_id"`
	Type    string `json:"type"`
}

// NewDeliveryLabelService creates a new delivery label service instance
func NewDeliveryLabelService(size int, errorCorrectionLevel string) service.DeliveryLabelService {
	if size <= 0 {
		size = defaultSize
	}

	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &deliveryLabelService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateDeliveryLabel renders a PNG QR code identifying the order's delivery
func (s *deliveryLabelService) GenerateDeliveryLabel(orderID uuid.UUID) ([]byte, error) {
	jsonData, err := json.Marshal(LabelData{
		OrderID: orderID.String(),
		Type:    deliveryLabelTyp,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal delivery label data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseDeliveryLabel parses the text encoded in a label and returns the order ID
func (s *deliveryLabelService) ParseDeliveryLabel(qrData string) (uuid.UUID, error) {
	var data LabelData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, domainerrors.ErrInvalidDeliveryLabel.WrapMessage("label is not valid JSON")
	}

	if data.Type != deliveryLabelTyp {
		return uuid.Nil, errors.Wrapf(domainerrors.ErrInvalidDeliveryLabel, "invalid label type: %s", data.Type)
	}

	orderID, err := uuid.Parse(data.OrderID)
	if err != nil {
		return uuid.Nil, errors.Wrapf(domainerrors.ErrInvalidDeliveryLabel, "invalid order ID %q", data.OrderID)
	}

	return orderID, nil
}
