package postgres

import (
	"context"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pickupRepository implements the repository.PickupRepository interface.
type pickupRepository struct {
	db *gorm.DB
}

// NewPickupRepository is the constructor for pickupRepository.
func NewPickupRepository(db *gorm.DB) repository.PickupRepository {
	return &pickupRepository{db: db}
}

// Create persists the pickup opened by a claim. donation_id is unique, so a second pickup
// for the same donation is rejected by the database.
func (repo *pickupRepository) Create(ctx context.Context, pickup *entity.DonationPickup) error {
	if pickup.ID == uuid.Nil {
		pickup.ID = uuid.New()
	}
	pickupM := fromPickupDomain(pickup)

	if err := repo.db.WithContext(ctx).Create(pickupM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDonationUnavailable.WrapMessage("pickup already exists for donation")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrDonationNotFound.WrapMessage("invalid donation or NGO reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pickup")
	}

	pickup.CreatedAt = pickupM.CreatedAt
	pickup.UpdatedAt = pickupM.UpdatedAt

	return nil
}

// FindByDonationID retrieves the pickup of a donation.
func (repo *pickupRepository) FindByDonationID(ctx context.Context, donationID uuid.UUID) (*entity.DonationPickup, error) {
	var pickupM model.DonationPickupModel
	err := repo.db.WithContext(ctx).
		Where("donation_id = ?", donationID).
		First(&pickupM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrPickupNotFound
		}

		return nil, errors.Wrap(err, "failed to find pickup by donation id")
	}

	return toPickupDomain(&pickupM), nil
}

// MarkPickedUp closes the pickup of a donation with the NGO's rating and feedback.
func (repo *pickupRepository) MarkPickedUp(ctx context.Context, donationID uuid.UUID, completion repository.PickupCompletion) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DonationPickupModel{}).
		Where("donation_id = ? AND status = ?", donationID, entity.PickupStatusScheduled.String()).
		Updates(map[string]any{
			"status":             entity.PickupStatusPickedUp.String(),
			"actual_pickup_time": completion.PickedUpAt,
			"rating":             completion.Rating,
			"feedback":           completion.Feedback,
			"updated_at":         completion.PickedUpAt,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating out of range")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark pickup as picked up")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPickupNotFound
	}

	return nil
}

func toPickupDomain(data *model.DonationPickupModel) *entity.DonationPickup {
	if data == nil {
		return nil
	}

	return &entity.DonationPickup{
		ID:                  data.ID,
		DonationID:          data.DonationID,
		NGOID:               data.NGOID,
		ScheduledPickupTime: data.ScheduledPickupTime,
		ActualPickupTime:    data.ActualPickupTime,
		Status:              entity.PickupStatus(data.Status),
		Rating:              data.Rating,
		Feedback:            data.Feedback,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func fromPickupDomain(data *entity.DonationPickup) *model.DonationPickupModel {
	if data == nil {
		return nil
	}

	return &model.DonationPickupModel{
		ID:                  data.ID,
		DonationID:          data.DonationID,
		NGOID:               data.NGOID,
		ScheduledPickupTime: data.ScheduledPickupTime,
		ActualPickupTime:    data.ActualPickupTime,
		Status:              data.Status.String(),
		Rating:              data.Rating,
		Feedback:            data.Feedback,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
