package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel mirrors the 'notifications' table.
type NotificationModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Message     string     `gorm:"type:text;not null"`
	Type        string     `gorm:"type:varchar(50);not null"`
	ReferenceID *uuid.UUID `gorm:"type:uuid"`
	IsRead      bool       `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// ActivityLogModel mirrors the 'activity_logs' table. UserID is nulled when the actor is deleted.
type ActivityLogModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID     *uuid.UUID `gorm:"type:uuid;index"`
	Action     string     `gorm:"type:varchar(100);not null"`
	EntityType string     `gorm:"type:varchar(50)"`
	EntityID   *uuid.UUID `gorm:"type:uuid"`
	Details    string     `gorm:"type:text"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActivityLogModel) TableName() string {
	return "activity_logs"
}
