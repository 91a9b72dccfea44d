package postgres

import (
	"context"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/geo"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// distanceSQL is the haversine distance in kilometres. Identical coordinates evaluate to exactly 0.
// Placeholders: earth radius, lat, lat, lng.
const distanceSQL = `(2 * ? * asin(LEAST(1.0, sqrt(
	power(sin(radians(d.latitude - ?) / 2), 2) +
	cos(radians(?)) * cos(radians(d.latitude)) * power(sin(radians(d.longitude - ?) / 2), 2)))))`

const (
	restaurantColumns = "r.name AS restaurant_name, r.email AS restaurant_email, " +
		"r.phone AS restaurant_phone, r.location AS restaurant_location"
	claimantColumns = "COALESCE(n.name, '') AS claimed_by_name, COALESCE(n.email, '') AS claimed_by_email"
)

// donationRow is a donation joined with the names shown in listings.
type donationRow struct {
	model.DonationModel

	RestaurantName     string
	RestaurantEmail    string
	RestaurantPhone    string
	RestaurantLocation string
	ClaimedByName      string
	ClaimedByEmail     string
}

// donationRepository implements the repository.DonationRepository interface.
type donationRepository struct {
	db *gorm.DB
}

// NewDonationRepository is the constructor for donationRepository.
func NewDonationRepository(db *gorm.DB) repository.DonationRepository {
	return &donationRepository{db: db}
}

// Create persists a new donation.
func (repo *donationRepository) Create(ctx context.Context, donation *entity.Donation) error {
	if donation.ID == uuid.Nil {
		donation.ID = uuid.New()
	}
	donationM := fromDonationDomain(donation)

	if err := repo.db.WithContext(ctx).Create(donationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("restaurant does not exist")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("donation violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create donation")
	}

	donation.CreatedAt = donationM.CreatedAt
	donation.UpdatedAt = donationM.UpdatedAt

	return nil
}

// FindByID retrieves a donation by its ID from the primary, so a read right after a
// conditional write observes that write.
func (repo *donationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error) {
	var donationM model.DonationModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&donationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrDonationNotFound
		}

		return nil, errors.Wrap(err, "failed to find donation by id")
	}

	return toDonationDomain(&donationM), nil
}

// Browse lists donations for NGOs.
func (repo *donationRepository) Browse(ctx context.Context, filter repository.DonationFilter) ([]*entity.Donation, error) {
	query := repo.db.WithContext(ctx).
		Table("donations AS d").
		Select("d.*, " + restaurantColumns).
		Joins("JOIN users r ON r.id = d.restaurant_id")

	if filter.Status != nil {
		query = query.Where("d.status = ?", filter.Status.String())
	}
	if filter.FoodType != "" {
		query = query.Where("d.food_type = ?", filter.FoodType)
	}
	if f := filter.Distance; f != nil {
		query = query.Where("d.latitude IS NOT NULL AND d.longitude IS NOT NULL")
		if bound, ok := geo.SearchBound(geo.Point(f.Latitude, f.Longitude), f.MaxDistanceKm); ok {
			query = query.Where("d.latitude BETWEEN ? AND ? AND d.longitude BETWEEN ? AND ?",
				bound.Min.Lat(), bound.Max.Lat(), bound.Min.Lon(), bound.Max.Lon())
		}
		distanceVars := []any{geo.EarthRadiusKm, f.Latitude, f.Latitude, f.Longitude}
		query = query.Where(distanceSQL+" <= ?", append(distanceVars, f.MaxDistanceKm)...)
		// Nearest first, so a limited page holds the closest donations.
		query = query.Order(clause.OrderBy{Expression: clause.Expr{
			SQL:                distanceSQL + " ASC, d.created_at DESC",
			Vars:               distanceVars,
			WithoutParentheses: true,
		}})
	} else {
		query = query.Order("d.created_at DESC")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var rows []*donationRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to browse donations")
	}

	return toDonationRowsDomain(rows), nil
}

// ListByRestaurant lists a restaurant's donations with the claiming NGO's name.
func (repo *donationRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Donation, error) {
	var rows []*donationRow
	err := repo.db.WithContext(ctx).
		Table("donations AS d").
		Select("d.*, " + claimantColumns).
		Joins("LEFT JOIN users n ON n.id = d.claimed_by").
		Where("d.restaurant_id = ?", restaurantID).
		Order("d.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurant donations")
	}

	return toDonationRowsDomain(rows), nil
}

// ListClaimedBy lists the donations an NGO claimed with restaurant contact details.
func (repo *donationRepository) ListClaimedBy(ctx context.Context, ngoID uuid.UUID) ([]*entity.Donation, error) {
	var rows []*donationRow
	err := repo.db.WithContext(ctx).
		Table("donations AS d").
		Select("d.*, " + restaurantColumns).
		Joins("JOIN users r ON r.id = d.restaurant_id").
		Where("d.claimed_by = ?", ngoID).
		Order("d.claimed_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list claimed donations")
	}

	return toDonationRowsDomain(rows), nil
}

// ListAll returns one page of donations for the admin panel.
func (repo *donationRepository) ListAll(ctx context.Context, filter repository.DonationFilter) ([]*entity.Donation, int64, error) {
	var total int64
	countQuery := repo.db.WithContext(ctx).Model(&model.DonationModel{})
	if filter.Status != nil {
		countQuery = countQuery.Where("status = ?", filter.Status.String())
	}
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count donations")
	}

	query := repo.db.WithContext(ctx).
		Table("donations AS d").
		Select("d.*, " + restaurantColumns + ", " + claimantColumns).
		Joins("JOIN users r ON r.id = d.restaurant_id").
		Joins("LEFT JOIN users n ON n.id = d.claimed_by")
	if filter.Status != nil {
		query = query.Where("d.status = ?", filter.Status.String())
	}
	query = query.Order("d.created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var rows []*donationRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list donations")
	}

	return toDonationRowsDomain(rows), total, nil
}

// ApplyStatusChange performs the transition as one conditional UPDATE.
// Zero affected rows means another request moved the donation first or a guard failed.
func (repo *donationRepository) ApplyStatusChange(ctx context.Context, id uuid.UUID, change repository.StatusChange) error {
	updates := map[string]any{
		"status":     change.To.String(),
		"updated_at": change.At,
	}
	switch change.To {
	case entity.DonationStatusClaimed:
		updates["claimed_at"] = change.At
	case entity.DonationStatusCompleted:
		updates["completed_at"] = change.At
	}
	if change.SetClaimer != nil {
		updates["claimed_by"] = *change.SetClaimer
	}

	query := repo.db.WithContext(ctx).
		Model(&model.DonationModel{}).
		Where("id = ? AND status = ?", id, change.From.String())
	if change.OwnerID != nil {
		query = query.Where("restaurant_id = ?", *change.OwnerID)
	}
	if change.ClaimantID != nil {
		query = query.Where("claimed_by = ?", *change.ClaimantID)
	}

	result := query.Updates(updates)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("donation claimant does not match status")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to change donation status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDonationStateConflict
	}

	return nil
}

func toDonationRowsDomain(rows []*donationRow) []*entity.Donation {
	donations := make([]*entity.Donation, 0, len(rows))
	for _, row := range rows {
		donation := toDonationDomain(&row.DonationModel)
		donation.RestaurantName = row.RestaurantName
		donation.RestaurantEmail = row.RestaurantEmail
		donation.RestaurantPhone = row.RestaurantPhone
		donation.RestaurantLocation = row.RestaurantLocation
		donation.ClaimedByName = row.ClaimedByName
		donation.ClaimedByEmail = row.ClaimedByEmail
		donations = append(donations, donation)
	}

	return donations
}

func toDonationDomain(data *model.DonationModel) *entity.Donation {
	if data == nil {
		return nil
	}

	return &entity.Donation{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		FoodType:     data.FoodType,
		FoodCategory: data.FoodCategory,
		Quantity:     data.Quantity,
		QuantityKg:   data.QuantityKg,
		ExpiryHours:  data.ExpiryHours,
		ExpiryTime:   data.ExpiryTime,
		Location:     data.Location,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		Notes:        data.Notes,
		ImageURL:     data.ImageURL,
		Status:       entity.DonationStatus(data.Status),
		ClaimedBy:    data.ClaimedBy,
		ClaimedAt:    data.ClaimedAt,
		CompletedAt:  data.CompletedAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromDonationDomain(data *entity.Donation) *model.DonationModel {
	if data == nil {
		return nil
	}

	return &model.DonationModel{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		FoodType:     data.FoodType,
		FoodCategory: data.FoodCategory,
		Quantity:     data.Quantity,
		QuantityKg:   data.QuantityKg,
		ExpiryHours:  data.ExpiryHours,
		ExpiryTime:   data.ExpiryTime,
		Location:     data.Location,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		Notes:        data.Notes,
		ImageURL:     data.ImageURL,
		Status:       data.Status.String(),
		ClaimedBy:    data.ClaimedBy,
		ClaimedAt:    data.ClaimedAt,
		CompletedAt:  data.CompletedAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
