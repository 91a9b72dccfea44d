package handler

import (
	"net/http"
	"testing"

	"foodbridge/internal/domain/entity"
	mockUsecase "foodbridge/internal/mocks/usecase"
	"foodbridge/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationHandler_List(t *testing.T) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: notificationUC, Logger: discardLogger()})

	notificationUC.EXPECT().
		ListNotifications(mock.Anything, restaurant, usecase.PageInput{Page: 1, Limit: 5}).
		Return(&usecase.Page[*entity.Notification]{
			Items: []*entity.Notification{{Title: "Donation Claimed", Type: entity.NotificationTypeDonationClaimed}},
			Total: 1, Page: 1, Limit: 5, TotalPages: 1,
		}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/notifications?page=1&limit=5", "", nil, &restaurant)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var page usecase.Page[*entity.Notification]
	decodeSuccess(t, rec, &page)
	require.Len(t, page.Items, 1)
	assert.Equal(t, entity.NotificationTypeDonationClaimed, page.Items[0].Type)
}

func TestNotificationHandler_List_BadPage(t *testing.T) {
	h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: mockUsecase.NewMockNotificationUsecase(t), Logger: discardLogger()})

	c, rec := newTestContext(http.MethodGet, "/api/notifications?page=first", "", nil, &restaurant)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
