package usecase

import (
	"context"
	"io"
	"time"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/domain/service"

	"github.com/google/uuid"
)

// ImageUpload is an optional photo attached to a new donation.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// CreateDonationInput defines a new surplus-food listing.
type CreateDonationInput struct {
	FoodType     string
	FoodCategory string
	Quantity     string
	QuantityKg   *float64
	ExpiryHours  int
	Location     string
	Latitude     *float64
	Longitude    *float64
	Notes        string
	Image        *ImageUpload
}

// BrowseInput filters the donation listing. The distance filter applies only when
// Latitude, Longitude and MaxDistanceKm are all set.
type BrowseInput struct {
	Status        string
	FoodType      string
	Latitude      *float64
	Longitude     *float64
	MaxDistanceKm *float64
	Limit         int
	Offset        int
}

// ClaimInput carries the optional pickup slot proposed by the NGO.
type ClaimInput struct {
	ScheduledPickupTime *time.Time
}

// CompleteInput rates the handover; a nil rating counts as the maximum.
type CompleteInput struct {
	Rating   *int
	Feedback string
}

// ClaimOutput is the claimed donation and the pickup opened for it.
type ClaimOutput struct {
	Donation *entity.Donation       `json:"donation"`
	Pickup   *entity.DonationPickup `json:"pickup"`
}

// DonationStats holds the caller's dashboard numbers; only the block for the caller's role is set.
type DonationStats struct {
	Restaurant *entity.RestaurantStats `json:"restaurant,omitempty"`
	NGO        *entity.NGOStats        `json:"ngo,omitempty"`
}

// DonationUsecase is the donation lifecycle and its read side.
type DonationUsecase interface {
	Create(ctx context.Context, caller entity.Caller, input CreateDonationInput) (*entity.Donation, error)
	Browse(ctx context.Context, caller entity.Caller, input BrowseInput) ([]*entity.Donation, error)
	MyDonations(ctx context.Context, caller entity.Caller) ([]*entity.Donation, error)
	ClaimedDonations(ctx context.Context, caller entity.Caller) ([]*entity.Donation, error)
	Stats(ctx context.Context, caller entity.Caller) (*DonationStats, error)

	Claim(ctx context.Context, caller entity.Caller, donationID uuid.UUID, input ClaimInput) (*ClaimOutput, error)
	Complete(ctx context.Context, caller entity.Caller, donationID uuid.UUID, input CompleteInput) (*entity.Donation, error)
	Cancel(ctx context.Context, caller entity.Caller, donationID uuid.UUID) (*entity.Donation, error)

	// PickupQRCode renders the pickup ticket for the claiming NGO or the owning restaurant.
	PickupQRCode(ctx context.Context, caller entity.Caller, donationID uuid.UUID) ([]byte, error)

	// OpenImage streams an uploaded donation image by storage key.
	OpenImage(ctx context.Context, key string) (*service.StoredObject, error)
}
