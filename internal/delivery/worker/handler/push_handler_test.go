package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shop/config"
	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/constants"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/service"
	"shop/internal/errors"
	"shop/internal/infra/pubsub"
	mockUsecase "shop/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newOrderEvent() *service.OrderEvent {
	return &service.OrderEvent{
		RequestID:  "req-from-api",
		EventID:    uuid.NewString(),
		Type:       constants.EventOrderCancelled,
		OrderID:    uuid.NewString(),
		MemberID:   uuid.NewString(),
		Status:     "CANCELLED",
		TotalPrice: 20000,
		OccurredAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func pushBody(t *testing.T, event *service.OrderEvent) []byte {
	t.Helper()

	msg, err := pubsub.NewPushMessage(event)
	require.NoError(t, err)

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func doPush(h *PushHandler, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := newOrderEvent()

	tests := []struct {
		name       string
		body       []byte
		setupMock  func(uc *mockUsecase.MockOrderEventUsecase)
		wantStatus int
	}{
		{
			name: "processed",
			body: pushBody(t, event),
			setupMock: func(uc *mockUsecase.MockOrderEventUsecase) {
				uc.EXPECT().HandleOrderEvent(mock.Anything, mock.MatchedBy(func(got *service.OrderEvent) bool {
					return got.EventID == event.EventID && got.OrderID == event.OrderID && got.Status == "CANCELLED"
				})).RunAndReturn(func(ctx context.Context, _ *service.OrderEvent) error {
					assert.Equal(t, "req-from-api", deliverycontext.GetRequestIDFromContext(ctx))

					return nil
				}).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "cache unavailable is retried",
			body: pushBody(t, event),
			setupMock: func(uc *mockUsecase.MockOrderEventUsecase) {
				uc.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).
					Return(errors.New("redis: connection refused")).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "malformed event is acked",
			body: pushBody(t, event),
			setupMock: func(uc *mockUsecase.MockOrderEventUsecase) {
				uc.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).
					Return(errors.Wrap(domainerrors.ErrValidationFailed, "invalid order status")).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "data is not base64",
			body:       []byte(`{"message":{"data":"%%%","messageId":"1"}}`),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "envelope is not JSON",
			body:       []byte(`not json`),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockOrderEventUsecase(t)
			if tt.setupMock != nil {
				tt.setupMock(uc)
			}

			h := NewPushHandler(PushHandlerParams{
				Config:       &config.Config{},
				Logger:       newDiscardLogger(),
				OrderEventUC: uc,
			})

			rec := doPush(h, tt.body, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle},
		Worker: &config.WorkerConfig{PushAudience: "https://worker.example.com/push"},
	}
	cfg.Env.Env = constants.EnvProduction

	validator := func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		if token != "good-token" {
			return nil, errors.New("signature mismatch")
		}
		assert.Equal(t, "https://worker.example.com/push", audience)

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}

	event := newOrderEvent()
	uc := mockUsecase.NewMockOrderEventUsecase(t)
	uc.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).Return(nil).Once()

	h := NewPushHandler(PushHandlerParams{
		Config:         cfg,
		Logger:         newDiscardLogger(),
		OrderEventUC:   uc,
		TokenValidator: validator,
	})

	rec := doPush(h, pushBody(t, event), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doPush(h, pushBody(t, event), map[string]string{"Authorization": "Bearer bad-token"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doPush(h, pushBody(t, event), map[string]string{"Authorization": "Bearer good-token"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RejectsForeignIssuer(t *testing.T) {
	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle},
	}
	cfg.Env.Env = constants.EnvStaging

	h := NewPushHandler(PushHandlerParams{
		Config:       cfg,
		Logger:       newDiscardLogger(),
		OrderEventUC: mockUsecase.NewMockOrderEventUsecase(t),
		TokenValidator: func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "http://example.com/push", audience)

			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		},
	})

	rec := doPush(h, pushBody(t, newOrderEvent()), map[string]string{"Authorization": "Bearer token"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h := &PushHandler{}
	event := newOrderEvent()
	msg, err := pubsub.NewPushMessage(event)
	require.NoError(t, err)

	assert.Equal(t, "req-from-api", h.extractRequestID(context.Background(), msg, event))

	msg.Message.Attributes = nil
	event.RequestID = ""
	ctx := deliverycontext.WithRequestID(context.Background(), "req-header")
	assert.Equal(t, "req-header", h.extractRequestID(ctx, msg, event))

	generated := h.extractRequestID(context.Background(), msg, event)
	_, err = uuid.Parse(generated)
	assert.NoError(t, err)
}
