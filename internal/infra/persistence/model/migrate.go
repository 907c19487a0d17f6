package model

import (
	"context"

	"shop/internal/errors"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table of the shop schema.
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
