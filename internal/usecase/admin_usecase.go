package usecase

import (
	"context"

	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// ListUsersInput filters the admin user listing.
type ListUsersInput struct {
	PageInput
	Role     *entity.Role
	Verified *bool
}

// ListDonationsInput filters the admin donation listing.
type ListDonationsInput struct {
	PageInput
	Status *entity.DonationStatus
}

// AdminUsecase is the platform oversight surface. Every method requires an admin caller.
type AdminUsecase interface {
	Dashboard(ctx context.Context, caller entity.Caller) (*entity.Dashboard, error)
	ListUsers(ctx context.Context, caller entity.Caller, input ListUsersInput) (*Page[*entity.User], error)
	VerifyUser(ctx context.Context, caller entity.Caller, userID uuid.UUID) error
	SetUserActive(ctx context.Context, caller entity.Caller, userID uuid.UUID, active bool) error
	DeleteUser(ctx context.Context, caller entity.Caller, userID uuid.UUID) error
	ListDonations(ctx context.Context, caller entity.Caller, input ListDonationsInput) (*Page[*entity.Donation], error)
	ListActivityLogs(ctx context.Context, caller entity.Caller, input PageInput) (*Page[*entity.ActivityLog], error)
}
