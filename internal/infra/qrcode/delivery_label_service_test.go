package qrcode

import (
	"encoding/json"
	"testing"

	domainerrors "shop/internal/domain/errors"
	"shop/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeliveryLabelService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewDeliveryLabelService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestDeliveryLabelService_GenerateDeliveryLabel(t *testing.T) {
	service := NewDeliveryLabelService(256, "M")

	pngBytes, err := service.GenerateDeliveryLabel(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(pngBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, pngBytes[:4])
}

func TestDeliveryLabelService_ParseDeliveryLabel(t *testing.T) {
	service := NewDeliveryLabelService(256, "M")
	orderID := uuid.New()

	valid, err := json.Marshal(LabelData{OrderID: orderID.String(), Type: "delivery"})
	require.NoError(t, err)

	got, err := service.ParseDeliveryLabel(string(valid))
	require.NoError(t, err)
	assert.Equal(t, orderID, got)

	tests := []struct {
		name   string
		qrData string
	}{
		{"Invalid JSON", "not json"},
		{"Wrong type", `{"order_id":"` + orderID.String() + `","type":"subscription"}`},
		{"Invalid UUID", `{"order_id":"not-a-uuid","type":"delivery"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseDeliveryLabel(tt.qrData)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidDeliveryLabel))
		})
	}
}
