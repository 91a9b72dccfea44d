package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/domain/repository"
	mockRepo "foodbridge/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// repoFixtures wires one mock per repository. The transaction factory hands out the same
// mocks, so expectations read the same inside and outside a transaction.
type repoFixtures struct {
	txManager     *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
	users         *mockRepo.MockUserRepository
	donations     *mockRepo.MockDonationRepository
	pickups       *mockRepo.MockPickupRepository
	impact        *mockRepo.MockImpactRepository
	notifications *mockRepo.MockNotificationRepository
	activity      *mockRepo.MockActivityLogRepository
}

func newRepoFixtures(t *testing.T) *repoFixtures {
	f := &repoFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		factory:       mockRepo.NewMockRepositoryFactory(t),
		users:         mockRepo.NewMockUserRepository(t),
		donations:     mockRepo.NewMockDonationRepository(t),
		pickups:       mockRepo.NewMockPickupRepository(t),
		impact:        mockRepo.NewMockImpactRepository(t),
		notifications: mockRepo.NewMockNotificationRepository(t),
		activity:      mockRepo.NewMockActivityLogRepository(t),
	}

	f.factory.EXPECT().NewUserRepository().Return(f.users).Maybe()
	f.factory.EXPECT().NewDonationRepository().Return(f.donations).Maybe()
	f.factory.EXPECT().NewPickupRepository().Return(f.pickups).Maybe()
	f.factory.EXPECT().NewImpactRepository().Return(f.impact).Maybe()
	f.factory.EXPECT().NewNotificationRepository().Return(f.notifications).Maybe()
	f.factory.EXPECT().NewActivityLogRepository().Return(f.activity).Maybe()

	return f
}

// onExecute runs the transaction body against the mock factory and returns its error.
func (f *repoFixtures) onExecute(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		}).
		Once()
}

func restaurantCaller() entity.Caller {
	return entity.Caller{UserID: uuid.New(), Role: entity.RoleRestaurant, Verified: true}
}

func ngoCaller() entity.Caller {
	return entity.Caller{UserID: uuid.New(), Role: entity.RoleNGO, Verified: true}
}

func adminCaller() entity.Caller {
	return entity.Caller{UserID: uuid.New(), Role: entity.RoleAdmin, Verified: true}
}

func ptr[T any](v T) *T {
	return &v
}
