package entity

import (
	"time"

	"github.com/google/uuid"
)

// DonationStatus is the lifecycle state of a donation.
type DonationStatus string

const (
	DonationStatusActive    DonationStatus = "active"
	DonationStatusClaimed   DonationStatus = "claimed"
	DonationStatusCompleted DonationStatus = "completed"
	DonationStatusCancelled DonationStatus = "cancelled"
)

const (
	// MinExpiryHours and MaxExpiryHours bound how long a listing stays fresh.
	MinExpiryHours = 1
	MaxExpiryHours = 48
)

// String returns the string representation of the status.
func (s DonationStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known value.
func (s DonationStatus) IsValid() bool {
	switch s {
	case DonationStatusActive, DonationStatusClaimed, DonationStatusCompleted, DonationStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition can leave this status.
func (s DonationStatus) IsTerminal() bool {
	return s == DonationStatusCompleted || s == DonationStatusCancelled
}

// HasClaimant reports whether a donation in this status must reference the claiming NGO.
func (s DonationStatus) HasClaimant() bool {
	return s == DonationStatusClaimed || s == DonationStatusCompleted
}

// Donation is a surplus-food listing posted by a restaurant.
type Donation struct {
	ID           uuid.UUID      `json:"id"`
	RestaurantID uuid.UUID      `json:"restaurant_id"`
	FoodType     string         `json:"food_type"`
	FoodCategory string         `json:"food_category,omitempty"`
	Quantity     string         `json:"quantity"`
	QuantityKg   *float64       `json:"quantity_kg,omitempty"`
	ExpiryHours  int            `json:"expiry_hours"`
	ExpiryTime   time.Time      `json:"expiry_time"`
	Location     string         `json:"location"`
	Latitude     *float64       `json:"latitude,omitempty"`
	Longitude    *float64       `json:"longitude,omitempty"`
	Notes        string         `json:"notes,omitempty"`
	ImageURL     string         `json:"image_url,omitempty"`
	Status       DonationStatus `json:"status"`
	ClaimedBy    *uuid.UUID     `json:"claimed_by,omitempty"`
	ClaimedAt    *time.Time     `json:"claimed_at,omitempty"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`

	// Read-side projections filled by listing queries.
	RestaurantName     string   `json:"restaurant_name,omitempty"`
	RestaurantEmail    string   `json:"restaurant_email,omitempty"`
	RestaurantPhone    string   `json:"restaurant_phone,omitempty"`
	RestaurantLocation string   `json:"restaurant_location,omitempty"`
	ClaimedByName      string   `json:"claimed_by_name,omitempty"`
	ClaimedByEmail     string   `json:"claimed_by_email,omitempty"`
	DistanceKm         *float64 `json:"distance_km,omitempty"`
}

// HasCoordinates reports whether the listing can take part in distance filtering.
func (d *Donation) HasCoordinates() bool {
	return d.Latitude != nil && d.Longitude != nil
}

// ClaimantConsistent checks that a claimant is recorded exactly when the status requires one.
func (d *Donation) ClaimantConsistent() bool {
	return (d.ClaimedBy != nil) == d.Status.HasClaimant()
}

// FoodSavedKg returns the declared weight, counting an omitted weight as zero.
func (d *Donation) FoodSavedKg() float64 {
	if d.QuantityKg == nil {
		return 0
	}

	return *d.QuantityKg
}
