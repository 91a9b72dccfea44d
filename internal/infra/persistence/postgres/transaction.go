// Package postgres implements the domain repositories on GORM and PostgreSQL.
package postgres

import (
	"context"

	"foodbridge/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// txRepositories builds every repository on the same *gorm.DB transaction handle.
type txRepositories struct {
	tx *gorm.DB
}

func (f txRepositories) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f txRepositories) NewDonationRepository() repository.DonationRepository {
	return NewDonationRepository(f.tx)
}

func (f txRepositories) NewPickupRepository() repository.PickupRepository {
	return NewPickupRepository(f.tx)
}

func (f txRepositories) NewImpactRepository() repository.ImpactRepository {
	return NewImpactRepository(f.tx)
}

func (f txRepositories) NewNotificationRepository() repository.NotificationRepository {
	return NewNotificationRepository(f.tx)
}

func (f txRepositories) NewActivityLogRepository() repository.ActivityLogRepository {
	return NewActivityLogRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn in one transaction. gorm rolls back when fn errors or panics, and the
// error fn returned reaches the caller unwrapped so domain sentinels still match.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})
	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		return fnErr
	default:
		return errors.Wrap(err, "transaction failed")
	}
}
