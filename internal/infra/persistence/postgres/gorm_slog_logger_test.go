package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"shop/config"
	deliverycontext "shop/internal/delivery/context"
	"shop/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(cfg *config.Config) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg), &buf
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true
	l, buf := newBufferedGormLogger(cfg)

	var reqBuf bytes.Buffer
	reqLogger := slog.New(slog.NewJSONHandler(&reqBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := deliverycontext.WithRequest(context.Background(), reqLogger, "req-42")

	l.Trace(ctx, time.Now(), sqlFn("SELECT * FROM orders"), nil)

	assert.Empty(t, buf.String())
	assert.Contains(t, reqBuf.String(), `"request_id":"req-42"`)
	assert.Contains(t, reqBuf.String(), "SELECT * FROM orders")
}

func TestGormSlogLogger_Levels(t *testing.T) {
	l, buf := newBufferedGormLogger(&config.Config{})

	// Warn level drops plain statements and not-found errors
	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), nil)
	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 2"), gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 3"), errors.New("boom"))
	assert.Contains(t, buf.String(), "GORM query failed")

	buf.Reset()
	l.LogMode(logger.Silent).Error(context.Background(), "ignored %d", 1)
	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_SlowThresholdFromConfig(t *testing.T) {
	cfg := &config.Config{Persistence: &config.PersistenceConfig{SlowQueryThreshold: time.Millisecond}}
	l, buf := newBufferedGormLogger(cfg)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn("SELECT * FROM order_item"), nil)

	assert.Contains(t, buf.String(), "GORM slow query")
}
