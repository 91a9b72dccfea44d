// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// deleteUserSQL removes a user only while nothing in flight depends on it: no active donation
// it owns and no open claim it holds. The check and the delete are one statement.
const deleteUserSQL = `
DELETE FROM users
WHERE id = ?
  AND user_type <> ?
  AND NOT EXISTS (
    SELECT 1 FROM donations d
    WHERE (d.restaurant_id = users.id AND d.status = ?)
       OR (d.claimed_by = users.id AND d.status = ?)
  )`

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading the role details.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("RestaurantDetails").
		Preload("NGODetails").
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by email address.
// Login must see accounts created or deactivated moments ago, so it reads from the primary.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("RestaurantDetails").
		Preload("NGODetails").
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity together with its role details row.
// GORM's Create with associations inserts into users and restaurant_details or ngo_details
// within the surrounding transaction.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing or invalid user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.RestaurantDetails != nil && userM.RestaurantDetails != nil {
		user.RestaurantDetails.UserID = userM.ID
		user.RestaurantDetails.UpdatedAt = userM.RestaurantDetails.UpdatedAt
	}
	if user.NGODetails != nil && userM.NGODetails != nil {
		user.NGODetails.UserID = userM.ID
		user.NGODetails.UpdatedAt = userM.NGODetails.UpdatedAt
	}

	return nil
}

// UpdateProfile applies only the provided fields.
func (repo *userRepository) UpdateProfile(ctx context.Context, id uuid.UUID, update repository.ProfileUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	updates := map[string]any{"updated_at": time.Now()}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Phone != nil {
		updates["phone"] = *update.Phone
	}
	if update.Location != nil {
		updates["location"] = *update.Location
	}
	if update.Address != nil {
		updates["address"] = *update.Address
	}
	if update.Latitude != nil {
		updates["latitude"] = *update.Latitude
	}
	if update.Longitude != nil {
		updates["longitude"] = *update.Longitude
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("required profile field cleared")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}

	return nil
}

// List returns one page of non-admin users and the total number of matches.
func (repo *userRepository) List(ctx context.Context, filter repository.UserFilter) ([]*entity.User, int64, error) {
	base := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("user_type <> ?", entity.RoleAdmin.String())
	if filter.Role != nil {
		base = base.Where("user_type = ?", filter.Role.String())
	}
	if filter.Verified != nil {
		base = base.Where("is_verified = ?", *filter.Verified)
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count users")
	}

	query := base.
		Preload("RestaurantDetails").
		Preload("NGODetails").
		Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var userModels []*model.UserModel
	if err := query.Find(&userModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, total, nil
}

// SetVerified marks a non-admin user as verified.
func (repo *userRepository) SetVerified(ctx context.Context, id uuid.UUID) error {
	return repo.updateFlag(ctx, id, "is_verified", true)
}

// SetActive flips the is_active flag of a non-admin user.
func (repo *userRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return repo.updateFlag(ctx, id, "is_active", active)
}

func (repo *userRepository) updateFlag(ctx context.Context, id uuid.UUID, column string, value bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND user_type <> ?", id, entity.RoleAdmin.String()).
		Update(column, value)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update "+column)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}

	return nil
}

// DeleteUnlessActiveDonations deletes the user when nothing in flight references it.
func (repo *userRepository) DeleteUnlessActiveDonations(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Exec(deleteUserSQL,
		id,
		entity.RoleAdmin.String(),
		entity.DonationStatusActive.String(),
		entity.DonationStatusClaimed.String(),
	)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// Nothing deleted: tell a missing user apart from one that is still referenced.
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check user existence")
	}
	if count == 0 {
		return domainerrors.ErrUserNotFound
	}

	return domainerrors.ErrUserHasActiveDonations
}

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.UserType),
		Name:         data.Name,
		Phone:        data.Phone,
		Location:     data.Location,
		Address:      data.Address,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		IsVerified:   data.IsVerified,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.RestaurantDetails != nil {
		user.RestaurantDetails = &entity.RestaurantDetails{
			UserID:           data.RestaurantDetails.UserID,
			TotalDonations:   data.RestaurantDetails.TotalDonations,
			TotalFoodSavedKg: data.RestaurantDetails.TotalFoodSavedKg,
			ImpactScore:      data.RestaurantDetails.ImpactScore,
			UpdatedAt:        data.RestaurantDetails.UpdatedAt,
		}
	}
	if data.NGODetails != nil {
		user.NGODetails = &entity.NGODetails{
			UserID:       data.NGODetails.UserID,
			TotalClaims:  data.NGODetails.TotalClaims,
			PeopleServed: data.NGODetails.PeopleServed,
			UpdatedAt:    data.NGODetails.UpdatedAt,
		}
	}

	return user
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		UserType:     data.Role.String(),
		Name:         data.Name,
		Phone:        data.Phone,
		Location:     data.Location,
		Address:      data.Address,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		IsVerified:   data.IsVerified,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.RestaurantDetails != nil {
		userM.RestaurantDetails = &model.RestaurantDetailsModel{
			UserID:           data.ID,
			TotalDonations:   data.RestaurantDetails.TotalDonations,
			TotalFoodSavedKg: data.RestaurantDetails.TotalFoodSavedKg,
			ImpactScore:      data.RestaurantDetails.ImpactScore,
		}
	}
	if data.NGODetails != nil {
		userM.NGODetails = &model.NGODetailsModel{
			UserID:       data.ID,
			TotalClaims:  data.NGODetails.TotalClaims,
			PeopleServed: data.NGODetails.PeopleServed,
		}
	}

	return userM
}
