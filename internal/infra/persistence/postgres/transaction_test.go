package postgres

import (
	"context"
	"testing"

	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
			assert.NotNil(t, f.NewDonationRepository())

			return nil
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back and keeps the domain error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		err := NewTransactionManager(db).Execute(ctx, func(repository.RepositoryFactory) error {
			return domainerrors.ErrDonationNotFound
		})

		assert.ErrorIs(t, err, domainerrors.ErrDonationNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure is wrapped", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

		err := NewTransactionManager(db).Execute(ctx, func(repository.RepositoryFactory) error {
			t.Fatal("fn must not run")

			return nil
		})

		assert.ErrorContains(t, err, "too many connections")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
