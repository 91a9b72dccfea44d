package impl

import (
	"context"
	"testing"

	"foodbridge/config"
	"foodbridge/internal/domain/constants"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/service"
	mockRepo "foodbridge/internal/mocks/repository"
	mockSvc "foodbridge/internal/mocks/service"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockNotificationRepository,
	*mockSvc.MockPushService,
	*mockSvc.MockMetricsRecorder,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	pushService := mockSvc.NewMockPushService(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)

	srv := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		PushService:      pushService,
		Metrics:          metrics,
		Config:           &config.Config{Firebase: &config.FirebaseConfig{NGOTopic: "ngos-test"}},
		Logger:           newDiscardLogger(),
	})

	return srv, notificationRepo, pushService, metrics
}

func TestNotificationService_ListNotifications(t *testing.T) {
	srv, notificationRepo, _, _ := createTestNotificationService(t)
	ctx := context.Background()
	caller := ngoCaller()
	items := []*entity.Notification{{ID: uuid.New(), UserID: caller.UserID}}

	notificationRepo.EXPECT().ListByUser(ctx, caller.UserID, 10, 10).Return(items, int64(11), nil)

	page, err := srv.ListNotifications(ctx, caller, usecase.PageInput{Page: 2, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, items, page.Items)
	assert.Equal(t, 2, page.TotalPages)
}

func TestNotificationService_DispatchDonationEvent(t *testing.T) {
	restaurantID := uuid.New().String()

	tests := []struct {
		name      string
		eventType string
		topic     string
		title     string
	}{
		{"created goes to every ngo", constants.EventDonationCreated, "ngos-test", "New Donation Available"},
		{"claimed goes to the restaurant", constants.EventDonationClaimed, constants.UserTopicPrefix + restaurantID, "Donation Claimed"},
		{"completed goes to the restaurant", constants.EventDonationCompleted, constants.UserTopicPrefix + restaurantID, "Donation Picked Up"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _, pushService, metrics := createTestNotificationService(t)
			ctx := context.Background()
			event := &service.DonationEvent{
				EventType:    tt.eventType,
				DonationID:   uuid.New().String(),
				RestaurantID: restaurantID,
				FoodType:     "bread",
			}

			pushService.EXPECT().
				SendToTopic(ctx, tt.topic, tt.title, mock.AnythingOfType("string"), mock.MatchedBy(func(data map[string]string) bool {
					return data["donation_id"] == event.DonationID && data["type"] == tt.eventType
				})).
				Return(nil)
			metrics.EXPECT().RecordPush(tt.eventType, service.OutcomeSuccess).Return()

			require.NoError(t, srv.DispatchDonationEvent(ctx, event))
		})
	}
}

func TestNotificationService_DispatchDonationEvent_CancelledIsSilent(t *testing.T) {
	srv, _, _, _ := createTestNotificationService(t)

	err := srv.DispatchDonationEvent(context.Background(), &service.DonationEvent{EventType: constants.EventDonationCancelled})

	require.NoError(t, err)
}

func TestNotificationService_DispatchDonationEvent_PushFailure(t *testing.T) {
	srv, _, pushService, metrics := createTestNotificationService(t)
	ctx := context.Background()
	event := &service.DonationEvent{EventType: constants.EventDonationCreated, FoodType: "soup"}

	pushService.EXPECT().SendToTopic(ctx, "ngos-test", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("quota"))
	metrics.EXPECT().RecordPush(constants.EventDonationCreated, service.OutcomeError).Return()

	err := srv.DispatchDonationEvent(ctx, event)

	assert.ErrorContains(t, err, "quota")
}

func TestNotificationService_DispatchDonationEvent_UnknownType(t *testing.T) {
	srv, _, _, metrics := createTestNotificationService(t)
	metrics.EXPECT().RecordPush("donation.exploded", service.OutcomeError).Return()

	err := srv.DispatchDonationEvent(context.Background(), &service.DonationEvent{EventType: "donation.exploded"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNotificationService_DefaultTopic(t *testing.T) {
	pushService := mockSvc.NewMockPushService(t)
	srv := NewNotificationService(NotificationServiceParams{
		NotificationRepo: mockRepo.NewMockNotificationRepository(t),
		PushService:      pushService,
		Logger:           newDiscardLogger(),
	})
	ctx := context.Background()

	pushService.EXPECT().SendToTopic(ctx, constants.DefaultNGOTopic, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, srv.DispatchDonationEvent(ctx, &service.DonationEvent{EventType: constants.EventDonationCreated}))
}
