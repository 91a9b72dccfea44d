package impl

import (
	"context"
	"fmt"
	"log/slog"

	"foodbridge/config"
	"foodbridge/internal/domain/constants"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/domain/service"
	logs "foodbridge/internal/infra/log"
	"foodbridge/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	pushService      service.PushService
	metrics          service.MetricsRecorder
	ngoTopic         string
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	PushService      service.PushService     `optional:"true"`
	Metrics          service.MetricsRecorder `optional:"true"`
	Config           *config.Config
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	ngoTopic := constants.DefaultNGOTopic
	if params.Config != nil && params.Config.Firebase != nil && params.Config.Firebase.NGOTopic != "" {
		ngoTopic = params.Config.Firebase.NGOTopic
	}

	return &notificationService{
		notificationRepo: params.NotificationRepo,
		pushService:      params.PushService,
		metrics:          params.Metrics,
		ngoTopic:         ngoTopic,
		logger:           params.Logger,
	}
}

// ListNotifications returns the caller's notifications, newest first.
func (s *notificationService) ListNotifications(ctx context.Context, caller entity.Caller, input usecase.PageInput) (*usecase.Page[*entity.Notification], error) {
	page := input.Normalize(constants.DefaultPageSize)

	notifications, total, err := s.notificationRepo.ListByUser(ctx, caller.UserID, page.Limit, page.Offset())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return usecase.NewPage(notifications, total, page), nil
}

type pushMessage struct {
	topic string
	title string
	body  string
}

// DispatchDonationEvent sends the push that matches the event. A failed send is returned so
// the delivering subscription retries it.
func (s *notificationService) DispatchDonationEvent(ctx context.Context, event *service.DonationEvent) error {
	logger := logs.FromContext(ctx, s.logger).With(
		slog.String("event_type", event.EventType),
		slog.String("donation_id", event.DonationID),
	)

	msg, ok, err := s.messageFor(event)
	if err != nil {
		s.recordPush(event.EventType, service.OutcomeError)

		return err
	}
	if !ok {
		logger.Debug("No push for donation event")

		return nil
	}
	if s.pushService == nil {
		logger.Warn("Push service not configured, dropping donation event")

		return nil
	}

	data := map[string]string{
		"type":        event.EventType,
		"donation_id": event.DonationID,
		"status":      event.Status,
	}
	if err := s.pushService.SendToTopic(ctx, msg.topic, msg.title, msg.body, data); err != nil {
		s.recordPush(event.EventType, service.OutcomeError)

		return errors.Wrapf(err, "failed to push %s", event.EventType)
	}

	s.recordPush(event.EventType, service.OutcomeSuccess)
	logger.Info("Donation push sent", slog.String("topic", msg.topic))

	return nil
}

func (s *notificationService) messageFor(event *service.DonationEvent) (pushMessage, bool, error) {
	restaurantTopic := constants.UserTopicPrefix + event.RestaurantID

	switch event.EventType {
	case constants.EventDonationCreated:
		return pushMessage{
			topic: s.ngoTopic,
			title: "New Donation Available",
			body:  fmt.Sprintf("A new %s donation is available!", event.FoodType),
		}, true, nil
	case constants.EventDonationClaimed:
		return pushMessage{
			topic: restaurantTopic,
			title: "Donation Claimed",
			body:  "Your donation has been claimed by an NGO!",
		}, true, nil
	case constants.EventDonationCompleted:
		return pushMessage{
			topic: restaurantTopic,
			title: "Donation Picked Up",
			body:  fmt.Sprintf("Your %s donation has been picked up. Thank you for reducing food waste!", event.FoodType),
		}, true, nil
	case constants.EventDonationCancelled:
		return pushMessage{}, false, nil
	default:
		return pushMessage{}, false, domainerrors.ErrValidationFailed.WithDetails("unknown event type " + event.EventType)
	}
}

func (s *notificationService) recordPush(eventType, outcome string) {
	if s.metrics != nil {
		s.metrics.RecordPush(eventType, outcome)
	}
}
