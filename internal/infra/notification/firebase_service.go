package notification

import (
	"context"
	"fmt"
	"log/slog"

	"foodbridge/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// messageSender is the part of *messaging.Client the service uses.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messageSender
	logger *slog.Logger
}

// NewFirebaseService creates a push service backed by Firebase Cloud Messaging.
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string, logger *slog.Logger) (service.PushService, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{client: client, logger: logger}, nil
}

// SendToTopic sends one notification to every device subscribed to topic.
func (s *firebaseService) SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send notification to topic %s: %w", topic, err)
	}

	s.logger.DebugContext(ctx, "Push sent",
		slog.String("topic", topic),
		slog.String("message_id", messageID),
	)

	return nil
}

// logPushService stands in when Firebase is not configured.
type logPushService struct {
	logger *slog.Logger
}

// NewLogPushService returns a push service that only logs what it would send.
func NewLogPushService(logger *slog.Logger) service.PushService {
	return &logPushService{logger: logger}
}

func (s *logPushService) SendToTopic(ctx context.Context, topic, title, _ string, _ map[string]string) error {
	s.logger.InfoContext(ctx, "Push disabled, skipping",
		slog.String("topic", topic),
		slog.String("title", title),
	)

	return nil
}
