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
)

// broadcastSQL fans one notification out to every active user of a role in a single statement.
const broadcastSQL = `
INSERT INTO notifications (id, user_id, title, message, type, reference_id, is_read, created_at)
SELECT gen_random_uuid(), u.id, ?, ?, ?, ?, FALSE, ?
FROM users u
WHERE u.user_type = ? AND u.is_active = TRUE`

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create persists a notification for a single user.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("notification recipient does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// BroadcastToRole stores a copy of the template for every active user of the role.
func (repo *notificationRepository) BroadcastToRole(ctx context.Context, role entity.Role, template *entity.Notification) (int64, error) {
	createdAt := template.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	result := repo.db.WithContext(ctx).Exec(broadcastSQL,
		template.Title,
		template.Message,
		template.Type.String(),
		template.ReferenceID,
		createdAt,
		role.String(),
	)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to broadcast notification")
	}

	return result.RowsAffected, nil
}

// ListByUser retrieves a user's notifications with pagination.
func (repo *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, int64, error) {
	base := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ?", userID).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count notifications")
	}

	query := base.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var notificationModels []*model.NotificationModel
	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to find notifications by user")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, total, nil
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Message:     data.Message,
		Type:        entity.NotificationType(data.Type),
		ReferenceID: data.ReferenceID,
		IsRead:      data.IsRead,
		CreatedAt:   data.CreatedAt,
	}
}

func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Message:     data.Message,
		Type:        data.Type.String(),
		ReferenceID: data.ReferenceID,
		IsRead:      data.IsRead,
		CreatedAt:   data.CreatedAt,
	}
}
