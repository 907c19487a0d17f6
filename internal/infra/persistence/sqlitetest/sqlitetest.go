// Package sqlitetest opens throwaway SQLite databases carrying the shop schema.
package sqlitetest

import (
	"context"
	"path/filepath"
	"testing"

	"shop/internal/infra/persistence/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open creates a file backed database in the test's temp dir and migrates it.
// Transactions begin IMMEDIATE, so concurrent writers serialize the way row
// locks serialize them on PostgreSQL.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "shop.db") + "?_txlock=immediate&_busy_timeout=5000&_foreign_keys=1"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	require.NoError(t, model.AutoMigrate(context.Background(), db))

	return db
}
