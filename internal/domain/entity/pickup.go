package entity

import (
	"time"

	"github.com/google/uuid"
)

// PickupStatus tracks the handover of a claimed donation.
type PickupStatus string

const (
	PickupStatusScheduled PickupStatus = "scheduled"
	PickupStatusPickedUp  PickupStatus = "picked_up"
)

const (
	MinPickupRating     = 1
	MaxPickupRating     = 5
	DefaultPickupRating = 5
)

// DonationPickup is created when an NGO claims a donation and closed when it is collected.
type DonationPickup struct {
	ID                  uuid.UUID    `json:"id"`
	DonationID          uuid.UUID    `json:"donation_id"`
	NGOID               uuid.UUID    `json:"ngo_id"`
	ScheduledPickupTime *time.Time   `json:"scheduled_pickup_time,omitempty"`
	ActualPickupTime    *time.Time   `json:"actual_pickup_time,omitempty"`
	Status              PickupStatus `json:"status"`
	Rating              *int         `json:"rating,omitempty"`
	Feedback            string       `json:"feedback,omitempty"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
}

// String returns the string representation of the pickup status.
func (s PickupStatus) String() string {
	return string(s)
}
