// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUpdate carries the optional profile fields; nil leaves a column unchanged.
type ProfileUpdate struct {
	Name      *string
	Phone     *string
	Location  *string
	Address   *string
	Latitude  *float64
	Longitude *float64
}

// IsEmpty reports whether the update would change nothing.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Name == nil && u.Phone == nil && u.Location == nil &&
		u.Address == nil && u.Latitude == nil && u.Longitude == nil
}

// UserFilter narrows admin user listings. Admin accounts are never listed.
type UserFilter struct {
	Role     *entity.Role
	Verified *bool
	Limit    int
	Offset   int
}

// UserRepository defines the standard operations for user persistence.
// Lookups return domainerrors.ErrUserNotFound when no row matches.
type UserRepository interface {
	// FindByID retrieves a single user with its role details.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by email, reading from the primary.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user together with the details row of its role.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile applies a partial profile update.
	UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) error

	// List returns one page of users matching the filter and the total match count.
	List(ctx context.Context, filter UserFilter) ([]*entity.User, int64, error)

	// SetVerified marks a non-admin user as verified.
	SetVerified(ctx context.Context, id uuid.UUID) error

	// SetActive flips the is_active flag of a non-admin user.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	// DeleteUnlessActiveDonations removes the user in one statement unless it still owns an active
	// donation or holds an open claim. It returns ErrUserHasActiveDonations or ErrUserNotFound
	// when nothing was deleted.
	DeleteUnlessActiveDonations(ctx context.Context, id uuid.UUID) error
}
