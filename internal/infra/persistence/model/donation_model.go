package model

import (
	"time"

	"github.com/google/uuid"
)

// DonationModel mirrors the 'donations' table.
// A CHECK constraint keeps claimed_by set exactly while status is claimed or completed.
type DonationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	FoodType     string    `gorm:"type:varchar(100);not null"`
	FoodCategory string    `gorm:"type:varchar(100)"`
	Quantity     string    `gorm:"type:varchar(100);not null"`
	QuantityKg   *float64
	ExpiryHours  int       `gorm:"not null"`
	ExpiryTime   time.Time `gorm:"not null"`
	Location     string    `gorm:"type:varchar(255);not null"`
	Latitude     *float64
	Longitude    *float64
	Notes        string     `gorm:"type:text"`
	ImageURL     string     `gorm:"column:image_url;type:varchar(500)"`
	Status       string     `gorm:"type:varchar(20);not null;index"`
	ClaimedBy    *uuid.UUID `gorm:"type:uuid;index"`
	ClaimedAt    *time.Time
	CompletedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DonationModel) TableName() string {
	return "donations"
}

// DonationPickupModel mirrors the 'donation_pickups' table. One row per claimed donation.
type DonationPickupModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	DonationID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	NGOID               uuid.UUID `gorm:"column:ngo_id;type:uuid;not null;index"`
	ScheduledPickupTime *time.Time
	ActualPickupTime    *time.Time
	Status              string `gorm:"type:varchar(20);not null"`
	Rating              *int
	Feedback            string `gorm:"type:text"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (DonationPickupModel) TableName() string {
	return "donation_pickups"
}
