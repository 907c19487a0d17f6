package service

import (
	"github.com/google/uuid"
)

// DeliveryLabelService defines the interface for delivery label generation and parsing
type DeliveryLabelService interface {
	// GenerateDeliveryLabel renders a PNG QR code identifying the order's delivery
	GenerateDeliveryLabel(orderID uuid.UUID) ([]byte, error)

	// ParseDeliveryLabel parses the text encoded in a label and returns the order ID
	ParseDeliveryLabel(qrData string) (uuid.UUID, error)
}
