// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"shop/config"
	"shop/internal/domain/repository"
	"shop/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db             *gorm.DB
	batchFetchSize int
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object (*gorm.Tx) and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx             *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
	batchFetchSize int
}

// NewMemberRepository creates a new member repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewMemberRepository() repository.MemberRepository {
	return NewMemberRepository(f.tx)
}

// NewItemRepository creates a new item repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewItemRepository() repository.ItemRepository {
	return NewItemRepository(f.tx)
}

// NewOrderRepository creates a new order repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return NewOrderRepository(f.tx, f.batchFetchSize)
}

// NewOrderQueryRepository creates a new order query repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewOrderQueryRepository() repository.OrderQueryRepository {
	return NewOrderQueryRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB, cfg *config.Config) repository.TransactionManager {
	return &gormTransactionManager{db: db, batchFetchSize: batchFetchSize(cfg)}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	// Begin a new transaction
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back on panic, then re-panic so Fx or the HTTP recover middleware can handle it.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	// Create a repository factory that is bound to this specific transaction.
	factory := &gormRepositoryFactory{tx: tx, batchFetchSize: tm.batchFetchSize}

	// Execute the application logic (the use case's core work)
	err := fn(factory)
	if err != nil {
		// If the business logic returns an error, roll back the transaction.
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Return the original business error, annotated with the rollback failure.
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err // Return the original business error.
	}

	// If the business logic completes without error, commit the transaction.
	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}

func batchFetchSize(cfg *config.Config) int {
	if cfg == nil || cfg.Persistence == nil || cfg.Persistence.BatchFetchSize <= 0 {
		return defaultBatchFetchSize
	}

	return cfg.Persistence.BatchFetchSize
}
