package service

import (
	"context"
)

// PushService sends push notifications to topic subscribers.
type PushService interface {
	// SendToTopic publishes one message to every device subscribed to the topic.
	SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error
}
