// Package model holds the GORM persistence structs. Schema is owned by the SQL migrations.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	UserType     string    `gorm:"type:varchar(20);not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(50)"`
	Location     string    `gorm:"type:varchar(255)"`
	Address      string    `gorm:"type:text"`
	Latitude     *float64
	Longitude    *float64
	IsVerified   bool `gorm:"not null"`
	IsActive     bool `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	RestaurantDetails *RestaurantDetailsModel `gorm:"foreignKey:UserID"`
	NGODetails        *NGODetailsModel        `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// RestaurantDetailsModel mirrors the 'restaurant_details' table. UserID references users.id.
type RestaurantDetailsModel struct {
	UserID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	TotalDonations   int       `gorm:"not null"`
	TotalFoodSavedKg float64   `gorm:"column:total_food_saved_kg;not null"`
	ImpactScore      int       `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (RestaurantDetailsModel) TableName() string {
	return "restaurant_details"
}

// NGODetailsModel mirrors the 'ngo_details' table. UserID references users.id.
type NGODetailsModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	TotalClaims  int       `gorm:"not null"`
	PeopleServed int       `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (NGODetailsModel) TableName() string {
	return "ngo_details"
}
