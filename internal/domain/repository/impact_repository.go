package repository

import (
	"context"
	"time"

	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// MonthlyDonationRow is one month of raw donation totals; months without donations are absent.
type MonthlyDonationRow struct {
	Month       time.Time
	Donations   int64
	FoodSavedKg float64
}

// ImpactRepository owns the per-role counters and the aggregate read models built on them.
// Counter writes are increments only.
type ImpactRepository interface {
	// RecordDonation adds one donation and its weight to a restaurant's counters.
	RecordDonation(ctx context.Context, restaurantID uuid.UUID, foodSavedKg float64) error

	// AddImpactScore adds the pickup rating to a restaurant's impact score.
	AddImpactScore(ctx context.Context, restaurantID uuid.UUID, points int) error

	// RecordClaim adds one claim to an NGO's counters.
	RecordClaim(ctx context.Context, ngoID uuid.UUID) error

	// RestaurantStats summarises a restaurant's listings.
	RestaurantStats(ctx context.Context, restaurantID uuid.UUID) (*entity.RestaurantStats, error)

	// NGOStats summarises an NGO's claims.
	NGOStats(ctx context.Context, ngoID uuid.UUID) (*entity.NGOStats, error)

	// PlatformTotals computes the admin dashboard counts.
	PlatformTotals(ctx context.Context) (*entity.PlatformTotals, error)

	// RecentDonations returns the latest donations with restaurant names.
	RecentDonations(ctx context.Context, limit int) ([]*entity.Donation, error)

	// MonthlyDonations groups donations created at or after since by calendar month.
	MonthlyDonations(ctx context.Context, since time.Time) ([]MonthlyDonationRow, error)
}
