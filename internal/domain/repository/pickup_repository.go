package repository

import (
	"context"
	"time"

	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// PickupCompletion carries the values recorded when an NGO collects a donation.
type PickupCompletion struct {
	PickedUpAt time.Time
	Rating     int
	Feedback   string
}

// PickupRepository defines persistence for donation pickups.
type PickupRepository interface {
	// Create persists the pickup opened by a claim.
	Create(ctx context.Context, pickup *entity.DonationPickup) error

	// FindByDonationID retrieves the pickup of a donation, or domainerrors.ErrPickupNotFound.
	FindByDonationID(ctx context.Context, donationID uuid.UUID) (*entity.DonationPickup, error)

	// MarkPickedUp closes the pickup of a donation.
	MarkPickedUp(ctx context.Context, donationID uuid.UUID, completion PickupCompletion) error
}
