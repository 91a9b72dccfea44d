package usecase

import (
	"context"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/domain/service"
)

// NotificationUsecase lists in-app notifications and fans donation events out as pushes.
type NotificationUsecase interface {
	// ListNotifications returns the caller's notifications, newest first.
	ListNotifications(ctx context.Context, caller entity.Caller, input PageInput) (*Page[*entity.Notification], error)

	// DispatchDonationEvent turns a committed donation event into push messages.
	DispatchDonationEvent(ctx context.Context, event *service.DonationEvent) error
}
