package impl

import (
	"context"
	"testing"

	"shop/internal/domain/constants"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/service"
	"shop/internal/errors"
	mockSvc "shop/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderEventService_HandleOrderEvent(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()

	tests := []struct {
		name    string
		event   service.OrderEvent
		setup   func(cache *mockSvc.MockOrderStatusCache)
		wantErr error
	}{
		{
			name:  "placed event caches ORDERED",
			event: service.OrderEvent{Type: constants.EventOrderPlaced, OrderID: orderID.String(), Status: "ORDERED"},
			setup: func(cache *mockSvc.MockOrderStatusCache) {
				cache.EXPECT().GetStatus(ctx, orderID).Return("", false, nil)
				cache.EXPECT().SetStatus(ctx, orderID, "ORDERED").Return(nil)
			},
		},
		{
			name:  "late placed event does not undo a cancel",
			event: service.OrderEvent{Type: constants.EventOrderPlaced, OrderID: orderID.String(), Status: "ORDERED"},
			setup: func(cache *mockSvc.MockOrderStatusCache) {
				cache.EXPECT().GetStatus(ctx, orderID).Return("CANCELLED", true, nil)
			},
		},
		{
			name:  "cancelled event always wins",
			event: service.OrderEvent{Type: constants.EventOrderCancelled, OrderID: orderID.String(), Status: "CANCELLED"},
			setup: func(cache *mockSvc.MockOrderStatusCache) {
				cache.EXPECT().SetStatus(ctx, orderID, "CANCELLED").Return(nil)
			},
		},
		{
			name:    "invalid order id",
			event:   service.OrderEvent{OrderID: "nope", Status: "ORDERED"},
			setup:   func(*mockSvc.MockOrderStatusCache) {},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "invalid status",
			event:   service.OrderEvent{OrderID: orderID.String(), Status: "SHIPPED"},
			setup:   func(*mockSvc.MockOrderStatusCache) {},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := mockSvc.NewMockOrderStatusCache(t)
			tt.setup(cache)
			svc := NewOrderEventService(OrderEventServiceParams{StatusCache: cache, Logger: newDiscardLogger()})

			err := svc.HandleOrderEvent(ctx, &tt.event)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)
		})
	}
}
