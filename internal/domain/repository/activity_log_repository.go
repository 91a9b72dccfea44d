package repository

import (
	"context"

	"foodbridge/internal/domain/entity"
)

// ActivityLogRepository stores the admin audit trail.
type ActivityLogRepository interface {
	// Create appends an activity log entry.
	Create(ctx context.Context, log *entity.ActivityLog) error

	// List returns one page of entries with actor names, newest first, and the total count.
	List(ctx context.Context, limit, offset int) ([]*entity.ActivityLog, int64, error)
}
