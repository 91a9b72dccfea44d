// Package statemachine defines the donation lifecycle as an explicit transition table.
package statemachine

import (
	"slices"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"

	"github.com/pkg/errors"
)

// Event is an action that drives a donation between states.
type Event string

const (
	EventClaim    Event = "claim"
	EventComplete Event = "complete"
	EventCancel   Event = "cancel"
)

// Effect is a side effect that must be applied in the same transaction as the transition.
type Effect string

const (
	EffectCreatePickup        Effect = "create_pickup"
	EffectIncrementNGOClaims  Effect = "increment_ngo_claims"
	EffectNotifyRestaurant    Effect = "notify_restaurant"
	EffectClosePickup         Effect = "close_pickup"
	EffectAddImpactScore      Effect = "add_impact_score"
	EffectRecordActivity      Effect = "record_activity"
	EffectPublishStatusChange Effect = "publish_status_change"
)

// Guard names the ownership condition the conditional write must enforce.
type Guard string

const (
	GuardNone     Guard = ""
	GuardOwner    Guard = "owner"    // restaurant_id = caller
	GuardClaimant Guard = "claimant" // claimed_by = caller
)

// Transition is one row of the lifecycle table.
type Transition struct {
	From    entity.DonationStatus
	Event   Event
	Actor   entity.Role
	To      entity.DonationStatus
	Guard   Guard
	Effects []Effect
}

// HasEffect reports whether the transition carries the given side effect.
func (t Transition) HasEffect(effect Effect) bool {
	return slices.Contains(t.Effects, effect)
}

var transitions = []Transition{
	{
		From:  entity.DonationStatusActive,
		Event: EventClaim,
		Actor: entity.RoleNGO,
		To:    entity.DonationStatusClaimed,
		Guard: GuardNone,
		Effects: []Effect{
			EffectCreatePickup,
			EffectIncrementNGOClaims,
			EffectNotifyRestaurant,
			EffectRecordActivity,
			EffectPublishStatusChange,
		},
	},
	{
		From:  entity.DonationStatusClaimed,
		Event: EventComplete,
		Actor: entity.RoleNGO,
		To:    entity.DonationStatusCompleted,
		Guard: GuardClaimant,
		Effects: []Effect{
			EffectClosePickup,
			EffectAddImpactScore,
			EffectNotifyRestaurant,
			EffectRecordActivity,
			EffectPublishStatusChange,
		},
	},
	{
		From:  entity.DonationStatusActive,
		Event: EventCancel,
		Actor: entity.RoleRestaurant,
		To:    entity.DonationStatusCancelled,
		Guard: GuardOwner,
		Effects: []Effect{
			EffectRecordActivity,
			EffectPublishStatusChange,
		},
	},
}

// Lookup returns the transition an actor triggers with the event, before the current state is known.
// Callers use its From as the precondition of an atomic conditional write.
func Lookup(event Event, actor entity.Role) (Transition, error) {
	for _, t := range transitions {
		if t.Event == event && t.Actor == actor {
			return t, nil
		}
	}

	return Transition{}, errors.Wrapf(domainerrors.ErrForbidden, "%s may not %s donations", actor, event)
}

// Next resolves the transition for a donation in the current state.
// When no row matches, the returned error explains why the donation cannot move.
func Next(current entity.DonationStatus, event Event, actor entity.Role) (Transition, error) {
	t, err := Lookup(event, actor)
	if err != nil {
		return Transition{}, err
	}

	if t.From == current {
		return t, nil
	}

	return Transition{}, rejection(current, event)
}

func rejection(current entity.DonationStatus, event Event) error {
	switch event {
	case EventClaim:
		return domainerrors.ErrDonationUnavailable
	case EventComplete:
		if current.IsTerminal() {
			return domainerrors.ErrDonationClosed
		}

		return domainerrors.ErrDonationNotClaimed
	case EventCancel:
		if current == entity.DonationStatusClaimed {
			return domainerrors.ErrDonationAlreadyClaimed
		}

		return domainerrors.ErrDonationClosed
	default:
		return domainerrors.ErrConflict
	}
}

// ValidTransitionsFrom lists the states reachable from status by any actor.
func ValidTransitionsFrom(status entity.DonationStatus) []entity.DonationStatus {
	var nexts []entity.DonationStatus
	seen := map[entity.DonationStatus]bool{}
	for _, t := range transitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}

	return nexts
}

// Transitions returns a copy of the lifecycle table.
func Transitions() []Transition {
	out := make([]Transition, len(transitions))
	copy(out, transitions)

	return out
}
