package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/domain/statemachine"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type transitionInput struct {
	scheduledPickup *time.Time
	rating          int
	feedback        string
}

type transitionResult struct {
	donation *entity.Donation
	pickup   *entity.DonationPickup
	publish  bool
}

// transition moves one donation through the lifecycle table. The status write is a single
// conditional UPDATE; when it matches no row the current state is read back only to pick the error.
func (srv *donationService) transition(
	ctx context.Context,
	caller entity.Caller,
	donationID uuid.UUID,
	event statemachine.Event,
	input transitionInput,
) (*transitionResult, error) {
	t, err := statemachine.Lookup(event, caller.Role)
	if err != nil {
		srv.recordTransition(event, err)

		return nil, err
	}

	now := srv.now().UTC()
	result := &transitionResult{}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		donationRepo := repoFactory.NewDonationRepository()

		change := repository.StatusChange{From: t.From, To: t.To, At: now}
		switch t.Guard {
		case statemachine.GuardOwner:
			change.OwnerID = &caller.UserID
		case statemachine.GuardClaimant:
			change.ClaimantID = &caller.UserID
		}
		if t.To.HasClaimant() && !t.From.HasClaimant() {
			change.SetClaimer = &caller.UserID
		}

		if err := donationRepo.ApplyStatusChange(ctx, donationID, change); err != nil {
			if errors.Is(err, repository.ErrDonationStateConflict) {
				return explainConflict(ctx, donationRepo, t, caller, donationID)
			}

			return err
		}

		donation, err := donationRepo.FindByID(ctx, donationID)
		if err != nil {
			return err
		}
		result.donation = donation

		return srv.applyEffects(ctx, repoFactory, t, caller, input, now, result)
	})
	srv.recordTransition(event, err)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to %s donation", event)
	}

	srv.log(ctx).Info("Donation status changed",
		slog.String("donation_id", donationID.String()),
		slog.String("from", t.From.String()),
		slog.String("to", t.To.String()),
		slog.String("actor_id", caller.UserID.String()),
	)
	if result.publish {
		srv.publish(ctx, transitionEventTypes[event], result.donation)
	}

	return result, nil
}

// explainConflict turns a rejected conditional write into the error the caller should see.
// Donations the caller is not party to read as missing.
func explainConflict(
	ctx context.Context,
	donationRepo repository.DonationRepository,
	t statemachine.Transition,
	caller entity.Caller,
	donationID uuid.UUID,
) error {
	if t.Event == statemachine.EventClaim {
		return domainerrors.ErrDonationUnavailable
	}

	current, err := donationRepo.FindByID(ctx, donationID)
	if err != nil {
		return err
	}

	switch t.Guard {
	case statemachine.GuardOwner:
		if current.RestaurantID != caller.UserID {
			return domainerrors.ErrDonationNotFound
		}
	case statemachine.GuardClaimant:
		if current.ClaimedBy == nil || *current.ClaimedBy != caller.UserID {
			return domainerrors.ErrDonationNotFound
		}
	}

	if _, err := statemachine.Next(current.Status, t.Event, caller.Role); err != nil {
		return err
	}

	// The row matched on re-read, so another request moved it in between.
	return domainerrors.ErrConflict
}

func (srv *donationService) applyEffects(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	t statemachine.Transition,
	caller entity.Caller,
	input transitionInput,
	now time.Time,
	result *transitionResult,
) error {
	donation := result.donation

	for _, effect := range t.Effects {
		var err error
		switch effect {
		case statemachine.EffectCreatePickup:
			pickup := &entity.DonationPickup{
				ID:                  uuid.New(),
				DonationID:          donation.ID,
				NGOID:               caller.UserID,
				ScheduledPickupTime: input.scheduledPickup,
				Status:              entity.PickupStatusScheduled,
				CreatedAt:           now,
				UpdatedAt:           now,
			}
			err = repoFactory.NewPickupRepository().Create(ctx, pickup)
			result.pickup = pickup
		case statemachine.EffectIncrementNGOClaims:
			err = repoFactory.NewImpactRepository().RecordClaim(ctx, caller.UserID)
		case statemachine.EffectNotifyRestaurant:
			err = repoFactory.NewNotificationRepository().Create(ctx, restaurantNotification(t.Event, donation, now))
		case statemachine.EffectClosePickup:
			err = repoFactory.NewPickupRepository().MarkPickedUp(ctx, donation.ID, repository.PickupCompletion{
				PickedUpAt: now,
				Rating:     input.rating,
				Feedback:   input.feedback,
			})
		case statemachine.EffectAddImpactScore:
			err = repoFactory.NewImpactRepository().AddImpactScore(ctx, donation.RestaurantID, input.rating)
		case statemachine.EffectRecordActivity:
			err = repoFactory.NewActivityLogRepository().Create(ctx, newActivityLog(
				caller.UserID, activityAction(t.Event), entity.EntityTypeDonation, donation.ID,
				fmt.Sprintf("%s -> %s", t.From, t.To), now,
			))
		case statemachine.EffectPublishStatusChange:
			result.publish = true
		}
		if err != nil {
			return errors.Wrapf(err, "effect %s", effect)
		}
	}

	return nil
}

func restaurantNotification(event statemachine.Event, donation *entity.Donation, at time.Time) *entity.Notification {
	notification := &entity.Notification{
		ID:          uuid.New(),
		UserID:      donation.RestaurantID,
		ReferenceID: &donation.ID,
		CreatedAt:   at,
	}

	switch event {
	case statemachine.EventComplete:
		notification.Title = "Donation Picked Up"
		notification.Message = fmt.Sprintf("Your %s donation has been picked up. Thank you for reducing food waste!", donation.FoodType)
		notification.Type = entity.NotificationTypeDonationCompleted
	default:
		notification.Title = "Donation Claimed"
		notification.Message = "Your donation has been claimed by an NGO!"
		notification.Type = entity.NotificationTypeDonationClaimed
	}

	return notification
}

func activityAction(event statemachine.Event) string {
	switch event {
	case statemachine.EventClaim:
		return entity.ActionDonationClaimed
	case statemachine.EventComplete:
		return entity.ActionDonationCompleted
	default:
		return entity.ActionDonationCancelled
	}
}

func (srv *donationService) recordTransition(event statemachine.Event, err error) {
	if srv.metrics == nil {
		return
	}

	srv.metrics.RecordTransition(string(event), outcomeOf(err))
}

// outcomeOf classifies an error as a client-side rejection or a failure.
func outcomeOf(err error) string {
	if err == nil {
		return service.OutcomeSuccess
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < 500 {
		return service.OutcomeConflict
	}

	return service.OutcomeError
}
