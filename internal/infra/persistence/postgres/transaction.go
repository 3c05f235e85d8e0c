package postgres

import (
	"context"
	"fmt"

	"vintagecomics/internal/domain/repository"
	"vintagecomics/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements repository.TransactionManager with GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a new transaction manager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside a single database transaction. The factory handed to
// fn builds repositories bound to that transaction, so every repository call
// made through it commits or rolls back as one unit.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r) // re-throw panic after rollback
		}
	}()

	factory := newGormRepositoryFactory(tx)

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrap(err, fmt.Sprintf("transaction failed and rollback also failed: %v", rbErr))
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}

// gormRepositoryFactory builds repositories bound to a single *gorm.DB,
// which may be the root connection or an open transaction.
type gormRepositoryFactory struct {
	db *gorm.DB
}

func newGormRepositoryFactory(db *gorm.DB) repository.RepositoryFactory {
	return &gormRepositoryFactory{db: db}
}

// NewRepositoryFactory creates a factory bound to the root connection for
// non-transactional use.
func NewRepositoryFactory(db *gorm.DB) repository.RepositoryFactory {
	return newGormRepositoryFactory(db)
}

func (f *gormRepositoryFactory) CustomerRepo() repository.CustomerRepository {
	return NewCustomerRepository(f.db)
}

func (f *gormRepositoryFactory) ProductRepo() repository.ProductRepository {
	return NewProductRepository(f.db)
}

func (f *gormRepositoryFactory) PurchaseRepo() repository.PurchaseRepository {
	return NewPurchaseRepository(f.db)
}

func (f *gormRepositoryFactory) SessionRepo() repository.SessionRepository {
	return NewSessionRepository(f.db)
}
