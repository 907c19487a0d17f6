package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRequest(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := WithRequest(context.Background(), base, "req-1", slog.String("message_id", "m-1"))

	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))
	logger := GetLogger(ctx)
	require.NotNil(t, logger)

	logger.Info("hello")
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
	assert.Contains(t, buf.String(), `"message_id":"m-1"`)
}

func TestGetRequestID_FallsBackToRequestContext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithRequestID(req.Context(), "from-ctx"))
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Equal(t, "from-ctx", GetRequestID(c))

	SetRequestID(c, "from-echo")
	assert.Equal(t, "from-echo", GetRequestID(c))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}
