package postgres

import (
	"context"
	"time"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Counter upserts. The detail row normally exists from registration; the upsert covers accounts
// created before it did.
const (
	recordDonationSQL = `
INSERT INTO restaurant_details (user_id, total_donations, total_food_saved_kg, impact_score, created_at, updated_at)
VALUES (?, 1, ?, 0, NOW(), NOW())
ON CONFLICT (user_id) DO UPDATE SET
  total_donations = restaurant_details.total_donations + 1,
  total_food_saved_kg = restaurant_details.total_food_saved_kg + EXCLUDED.total_food_saved_kg,
  updated_at = NOW()`

	addImpactScoreSQL = `
INSERT INTO restaurant_details (user_id, total_donations, total_food_saved_kg, impact_score, created_at, updated_at)
VALUES (?, 0, 0, ?, NOW(), NOW())
ON CONFLICT (user_id) DO UPDATE SET
  impact_score = restaurant_details.impact_score + EXCLUDED.impact_score,
  updated_at = NOW()`

	recordClaimSQL = `
INSERT INTO ngo_details (user_id, total_claims, people_served, created_at, updated_at)
VALUES (?, 1, 0, NOW(), NOW())
ON CONFLICT (user_id) DO UPDATE SET
  total_claims = ngo_details.total_claims + 1,
  updated_at = NOW()`
)

const restaurantStatsSQL = `
SELECT
  (SELECT COUNT(*) FROM donations WHERE restaurant_id = ? AND status = ?) AS active_donations,
  COALESCE(rd.total_donations, 0) AS total_donations,
  COALESCE(rd.total_food_saved_kg, 0) AS total_food_saved_kg,
  COALESCE(rd.impact_score, 0) AS impact_score
FROM (SELECT 1) AS one
LEFT JOIN restaurant_details rd ON rd.user_id = ?`

const ngoStatsSQL = `
SELECT
  (SELECT COUNT(*) FROM donations WHERE claimed_by = ? AND status = ?) AS active_claims,
  COALESCE(nd.total_claims, 0) AS total_claims,
  COALESCE(nd.people_served, 0) AS people_served
FROM (SELECT 1) AS one
LEFT JOIN ngo_details nd ON nd.user_id = ?`

const platformTotalsSQL = `
SELECT
  (SELECT COUNT(*) FROM users WHERE user_type = ? AND is_active = TRUE) AS total_restaurants,
  (SELECT COUNT(*) FROM users WHERE user_type = ? AND is_active = TRUE) AS total_ngos,
  (SELECT COUNT(*) FROM donations) AS total_donations,
  (SELECT COUNT(*) FROM donations WHERE status = ?) AS active_donations,
  (SELECT COUNT(*) FROM donations WHERE status = ?) AS completed_donations,
  (SELECT COALESCE(SUM(quantity_kg), 0) FROM donations WHERE status = ?) AS total_food_saved_kg,
  (SELECT COUNT(*) FROM users WHERE is_verified = FALSE AND user_type <> ?) AS pending_verifications`

const monthlyDonationsSQL = `
SELECT
  date_trunc('month', created_at AT TIME ZONE 'UTC') AS month,
  COUNT(*) AS donations,
  COALESCE(SUM(quantity_kg), 0) AS food_saved_kg
FROM donations
WHERE created_at >= ?
GROUP BY 1
ORDER BY 1`

// Raw result rows carry explicit column tags; GORM's naming would split acronyms like NGOs.
type restaurantStatsRow struct {
	ActiveDonations  int64   `gorm:"column:active_donations"`
	TotalDonations   int     `gorm:"column:total_donations"`
	TotalFoodSavedKg float64 `gorm:"column:total_food_saved_kg"`
	ImpactScore      int     `gorm:"column:impact_score"`
}

type ngoStatsRow struct {
	ActiveClaims int64 `gorm:"column:active_claims"`
	TotalClaims  int   `gorm:"column:total_claims"`
	PeopleServed int   `gorm:"column:people_served"`
}

type platformTotalsRow struct {
	TotalRestaurants     int64   `gorm:"column:total_restaurants"`
	TotalNGOs            int64   `gorm:"column:total_ngos"`
	TotalDonations       int64   `gorm:"column:total_donations"`
	ActiveDonations      int64   `gorm:"column:active_donations"`
	CompletedDonations   int64   `gorm:"column:completed_donations"`
	TotalFoodSavedKg     float64 `gorm:"column:total_food_saved_kg"`
	PendingVerifications int64   `gorm:"column:pending_verifications"`
}

type monthlyDonationRow struct {
	Month       time.Time `gorm:"column:month"`
	Donations   int64     `gorm:"column:donations"`
	FoodSavedKg float64   `gorm:"column:food_saved_kg"`
}

// impactRepository implements the repository.ImpactRepository interface.
type impactRepository struct {
	db *gorm.DB
}

// NewImpactRepository is the constructor for impactRepository.
func NewImpactRepository(db *gorm.DB) repository.ImpactRepository {
	return &impactRepository{db: db}
}

// RecordDonation adds one donation and its weight to the restaurant's counters.
func (repo *impactRepository) RecordDonation(ctx context.Context, restaurantID uuid.UUID, foodSavedKg float64) error {
	return repo.exec(ctx, "failed to record donation", recordDonationSQL, restaurantID, foodSavedKg)
}

// AddImpactScore adds points to the restaurant's impact score.
func (repo *impactRepository) AddImpactScore(ctx context.Context, restaurantID uuid.UUID, points int) error {
	return repo.exec(ctx, "failed to add impact score", addImpactScoreSQL, restaurantID, points)
}

// RecordClaim adds one claim to the NGO's counters.
func (repo *impactRepository) RecordClaim(ctx context.Context, ngoID uuid.UUID) error {
	return repo.exec(ctx, "failed to record claim", recordClaimSQL, ngoID)
}

func (repo *impactRepository) exec(ctx context.Context, msg, sql string, args ...any) error {
	if err := repo.db.WithContext(ctx).Exec(sql, args...).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage(msg)
		}

		return domainerrors.NewDatabaseExecuteError(err, msg)
	}

	return nil
}

// RestaurantStats summarises a restaurant's listings.
func (repo *impactRepository) RestaurantStats(ctx context.Context, restaurantID uuid.UUID) (*entity.RestaurantStats, error) {
	var row restaurantStatsRow
	err := repo.db.WithContext(ctx).
		Raw(restaurantStatsSQL, restaurantID, entity.DonationStatusActive.String(), restaurantID).
		Scan(&row).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load restaurant stats")
	}

	return &entity.RestaurantStats{
		ActiveDonations:  row.ActiveDonations,
		TotalDonations:   row.TotalDonations,
		TotalFoodSavedKg: row.TotalFoodSavedKg,
		ImpactScore:      row.ImpactScore,
	}, nil
}

// NGOStats summarises an NGO's claims.
func (repo *impactRepository) NGOStats(ctx context.Context, ngoID uuid.UUID) (*entity.NGOStats, error) {
	var row ngoStatsRow
	err := repo.db.WithContext(ctx).
		Raw(ngoStatsSQL, ngoID, entity.DonationStatusClaimed.String(), ngoID).
		Scan(&row).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ngo stats")
	}

	return &entity.NGOStats{
		ActiveClaims: row.ActiveClaims,
		TotalClaims:  row.TotalClaims,
		PeopleServed: row.PeopleServed,
	}, nil
}

// PlatformTotals computes the admin dashboard counts in one round trip.
func (repo *impactRepository) PlatformTotals(ctx context.Context) (*entity.PlatformTotals, error) {
	var row platformTotalsRow
	err := repo.db.WithContext(ctx).
		Raw(platformTotalsSQL,
			entity.RoleRestaurant.String(),
			entity.RoleNGO.String(),
			entity.DonationStatusActive.String(),
			entity.DonationStatusCompleted.String(),
			entity.DonationStatusCompleted.String(),
			entity.RoleAdmin.String(),
		).
		Scan(&row).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load platform totals")
	}

	return &entity.PlatformTotals{
		TotalRestaurants:     row.TotalRestaurants,
		TotalNGOs:            row.TotalNGOs,
		TotalDonations:       row.TotalDonations,
		ActiveDonations:      row.ActiveDonations,
		CompletedDonations:   row.CompletedDonations,
		TotalFoodSavedKg:     row.TotalFoodSavedKg,
		PendingVerifications: row.PendingVerifications,
	}, nil
}

// RecentDonations returns the latest donations with restaurant names.
func (repo *impactRepository) RecentDonations(ctx context.Context, limit int) ([]*entity.Donation, error) {
	var rows []*donationRow
	err := repo.db.WithContext(ctx).
		Table("donations AS d").
		Select("d.*, " + restaurantColumns).
		Joins("JOIN users r ON r.id = d.restaurant_id").
		Order("d.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recent donations")
	}

	return toDonationRowsDomain(rows), nil
}

// MonthlyDonations groups donations created at or after since by UTC calendar month.
func (repo *impactRepository) MonthlyDonations(ctx context.Context, since time.Time) ([]repository.MonthlyDonationRow, error) {
	var rows []monthlyDonationRow
	if err := repo.db.WithContext(ctx).Raw(monthlyDonationsSQL, since).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load monthly donations")
	}

	result := make([]repository.MonthlyDonationRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, repository.MonthlyDonationRow{
			Month:       row.Month.UTC(),
			Donations:   row.Donations,
			FoodSavedKg: row.FoodSavedKg,
		})
	}

	return result, nil
}
