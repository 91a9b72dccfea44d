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

type activityLogRow struct {
	model.ActivityLogModel

	UserName  string
	UserEmail string
}

type activityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository is the constructor for activityLogRepository.
func NewActivityLogRepository(db *gorm.DB) repository.ActivityLogRepository {
	return &activityLogRepository{db: db}
}

// Create appends an entry to the audit trail.
func (repo *activityLogRepository) Create(ctx context.Context, log *entity.ActivityLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	logM := fromActivityLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity log")
	}

	log.CreatedAt = logM.CreatedAt

	return nil
}

// List returns one page of the audit trail with the actor's name and e-mail.
// Entries of deleted users keep an empty name.
func (repo *activityLogRepository) List(ctx context.Context, limit, offset int) ([]*entity.ActivityLog, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.ActivityLogModel{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count activity logs")
	}

	query := repo.db.WithContext(ctx).
		Table("activity_logs AS al").
		Select("al.*, COALESCE(u.name, '') AS user_name, COALESCE(u.email, '') AS user_email").
		Joins("LEFT JOIN users u ON u.id = al.user_id").
		Order("al.created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*activityLogRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list activity logs")
	}

	logs := make([]*entity.ActivityLog, 0, len(rows))
	for _, row := range rows {
		log := toActivityLogDomain(&row.ActivityLogModel)
		log.UserName = row.UserName
		log.UserEmail = row.UserEmail
		logs = append(logs, log)
	}

	return logs, total, nil
}

func toActivityLogDomain(data *model.ActivityLogModel) *entity.ActivityLog {
	return &entity.ActivityLog{
		ID:         data.ID,
		UserID:     data.UserID,
		Action:     data.Action,
		EntityType: data.EntityType,
		EntityID:   data.EntityID,
		Details:    data.Details,
		CreatedAt:  data.CreatedAt,
	}
}

func fromActivityLogDomain(data *entity.ActivityLog) *model.ActivityLogModel {
	return &model.ActivityLogModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Action:     data.Action,
		EntityType: data.EntityType,
		EntityID:   data.EntityID,
		Details:    data.Details,
		CreatedAt:  data.CreatedAt,
	}
}
