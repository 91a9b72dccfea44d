package repository

import (
	"context"
	"time"

	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DistanceFilter restricts listings to a radius around a point.
type DistanceFilter struct {
	Latitude      float64
	Longitude     float64
	MaxDistanceKm float64
}

// DonationFilter narrows browse and admin listings.
type DonationFilter struct {
	Status   *entity.DonationStatus
	FoodType string
	Distance *DistanceFilter
	Limit    int
	Offset   int
}

// StatusChange is an atomic conditional status write. The update only applies while the row
// is still in From and the guards hold; otherwise ErrDonationStateConflict is returned and
// nothing changes.
type StatusChange struct {
	From       entity.DonationStatus
	To         entity.DonationStatus
	OwnerID    *uuid.UUID // when set, restaurant_id must match
	ClaimantID *uuid.UUID // when set, claimed_by must match
	SetClaimer *uuid.UUID // claimed_by to record on entering a claimed state
	At         time.Time
}

// DonationRepository defines persistence for donations.
// Lookups return domainerrors.ErrDonationNotFound when no row matches.
type DonationRepository interface {
	// Create persists a new donation.
	Create(ctx context.Context, donation *entity.Donation) error

	// FindByID retrieves a donation by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error)

	// Browse lists donations with restaurant contact fields, newest first.
	Browse(ctx context.Context, filter DonationFilter) ([]*entity.Donation, error)

	// ListByRestaurant lists a restaurant's own donations with the claimant's name.
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Donation, error)

	// ListClaimedBy lists donations an NGO claimed, most recently claimed first.
	ListClaimedBy(ctx context.Context, ngoID uuid.UUID) ([]*entity.Donation, error)

	// ListAll returns one page of donations with restaurant and NGO names for the admin panel.
	ListAll(ctx context.Context, filter DonationFilter) ([]*entity.Donation, int64, error)

	// ApplyStatusChange performs the conditional status write.
	ApplyStatusChange(ctx context.Context, id uuid.UUID, change StatusChange) error
}

// ErrDonationStateConflict is returned by ApplyStatusChange when no row satisfied the preconditions.
var ErrDonationStateConflict = errors.New("donation state precondition not met")
