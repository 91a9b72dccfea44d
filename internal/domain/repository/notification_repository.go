package repository

import (
	"context"

	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationRepository defines the interface for in-app notification storage.
type NotificationRepository interface {
	// Create persists a notification for a single user.
	Create(ctx context.Context, notification *entity.Notification) error

	// BroadcastToRole stores a copy of the template for every active user of the role in one
	// statement and returns how many rows were written. UserID of the template is ignored.
	BroadcastToRole(ctx context.Context, role entity.Role, template *entity.Notification) (int64, error)

	// ListByUser returns a user's notifications, newest first, and the total count.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, int64, error)
}
