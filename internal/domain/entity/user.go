// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account on the platform. Restaurants and NGOs carry a role-specific details row.
type User struct {
	ID                uuid.UUID          `json:"id"`
	Email             string             `json:"email"`
	PasswordHash      string             `json:"-"`
	Role              Role               `json:"user_type"`
	Name              string             `json:"name"`
	Phone             string             `json:"phone,omitempty"`
	Location          string             `json:"location,omitempty"`
	Address           string             `json:"address,omitempty"`
	Latitude          *float64           `json:"latitude,omitempty"`
	Longitude         *float64           `json:"longitude,omitempty"`
	IsVerified        bool               `json:"is_verified"`
	IsActive          bool               `json:"is_active"`
	RestaurantDetails *RestaurantDetails `json:"restaurant_details,omitempty"` // nil unless Role is restaurant.
	NGODetails        *NGODetails        `json:"ngo_details,omitempty"`        // nil unless Role is ngo.
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// RestaurantDetails holds the running impact counters of a restaurant.
// Counters only ever grow.
type RestaurantDetails struct {
	UserID           uuid.UUID `json:"-"`
	TotalDonations   int       `json:"total_donations"`
	TotalFoodSavedKg float64   `json:"total_food_saved_kg"`
	ImpactScore      int       `json:"impact_score"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NGODetails holds the running counters of an NGO.
type NGODetails struct {
	UserID       uuid.UUID `json:"-"`
	TotalClaims  int       `json:"total_claims"`
	PeopleServed int       `json:"people_served"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Caller is the authenticated identity performing an operation.
type Caller struct {
	UserID   uuid.UUID
	Role     Role
	Verified bool
}

// Is reports whether the caller holds the given role.
func (c Caller) Is(role Role) bool {
	return c.Role == role
}
