// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies in-app notifications.
type NotificationType string

const (
	NotificationTypeNewDonation       NotificationType = "new_donation"
	NotificationTypeDonationClaimed   NotificationType = "donation_claimed"
	NotificationTypeDonationCompleted NotificationType = "donation_completed"
	NotificationTypeVerification      NotificationType = "verification"
)

// String returns the string representation of the notification type.
func (t NotificationType) String() string {
	return string(t)
}

// Notification is an in-app message stored for a single user.
type Notification struct {
	ID          uuid.UUID        `json:"id"`           // The Global Unique Identifier (GUID) for the notification.
	UserID      uuid.UUID        `json:"user_id"`      // The recipient.
	Title       string           `json:"title"`        // Short headline.
	Message     string           `json:"message"`      // Body text.
	Type        NotificationType `json:"type"`         // The kind of event that produced it.
	ReferenceID *uuid.UUID       `json:"reference_id"` // The donation or user the notification is about.
	IsRead      bool             `json:"is_read"`      // Read flag, stored but not changed by the API.
	CreatedAt   time.Time        `json:"created_at"`   // Timestamp of when the notification was stored.
}

// ActivityLog records an auditable action for the admin panel.
type ActivityLog struct {
	ID         uuid.UUID  `json:"id"`
	UserID     *uuid.UUID `json:"user_id"` // nil once the acting user is deleted.
	Action     string     `json:"action"`
	EntityType string     `json:"entity_type"`
	EntityID   *uuid.UUID `json:"entity_id"`
	Details    string     `json:"details,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`

	UserName  string `json:"user_name,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
}

// Activity actions recorded by the service.
const (
	ActionDonationCreated   = "donation_created"
	ActionDonationClaimed   = "donation_claimed"
	ActionDonationCompleted = "donation_completed"
	ActionDonationCancelled = "donation_cancelled"
	ActionUserVerified      = "user_verified"
	ActionUserActivated     = "user_activated"
	ActionUserDeactivated   = "user_deactivated"
	ActionUserDeleted       = "user_deleted"
)

// Entity types referenced by activity logs.
const (
	EntityTypeDonation = "donation"
	EntityTypeUser     = "user"
)
