package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"shop/config"
	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/constants"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/errors"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware logs requests. With debug off only server errors are logged.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			// The error handler has not run yet, so derive the status it will write
			if appErr, ok := errors.AsTarget[domainerrors.AppError](err); ok {
				status = appErr.HTTPCode()
			} else if httpErr, ok := errors.AsTarget[*echo.HTTPError](err); ok {
				status = httpErr.Code
			} else if status < http.StatusBadRequest {
				status = http.StatusInternalServerError
			}
		}

		if m.debug || status >= http.StatusInternalServerError {
			m.logRequest(c, start, status, err)
		}

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}

	if req.URL.RawQuery != "" {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if idemKey := req.Header.Get(constants.HeaderIdempotencyKey); idemKey != "" {
		fields = append(fields, slog.String("idempotency_key", idemKey))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case status >= http.StatusBadRequest:
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(context.Background(), level, "HTTP Request", fields...)
}
