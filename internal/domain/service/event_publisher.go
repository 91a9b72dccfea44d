package service

import (
	"context"
)

// DonationEvent announces a committed donation lifecycle change to the notifier worker.
type DonationEvent struct {
	RequestID    string `json:"request_id,omitempty"` // For distributed tracing
	EventType    string `json:"event_type"`
	DonationID   string `json:"donation_id"`
	RestaurantID string `json:"restaurant_id"`
	NGOID        string `json:"ngo_id,omitempty"`
	FoodType     string `json:"food_type"`
	Quantity     string `json:"quantity"`
	Location     string `json:"location"`
	Status       string `json:"status"`
	OccurredAt   int64  `json:"occurred_at"` // Unix seconds
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDonationEvent publishes a donation event for async processing
	PublishDonationEvent(ctx context.Context, event *DonationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
