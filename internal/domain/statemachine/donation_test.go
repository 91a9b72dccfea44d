package statemachine

import (
	"testing"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext_ValidTransitions(t *testing.T) {
	tests := []struct {
		name    string
		current entity.DonationStatus
		event   Event
		actor   entity.Role
		want    entity.DonationStatus
		guard   Guard
	}{
		{"ngo claims active", entity.DonationStatusActive, EventClaim, entity.RoleNGO, entity.DonationStatusClaimed, GuardNone},
		{"ngo completes claimed", entity.DonationStatusClaimed, EventComplete, entity.RoleNGO, entity.DonationStatusCompleted, GuardClaimant},
		{"restaurant cancels active", entity.DonationStatusActive, EventCancel, entity.RoleRestaurant, entity.DonationStatusCancelled, GuardOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Next(tt.current, tt.event, tt.actor)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.To)
			assert.Equal(t, tt.guard, got.Guard)
		})
	}
}

func TestNext_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		current entity.DonationStatus
		event   Event
		actor   entity.Role
		wantErr error
	}{
		{"claim claimed", entity.DonationStatusClaimed, EventClaim, entity.RoleNGO, domainerrors.ErrDonationUnavailable},
		{"claim completed", entity.DonationStatusCompleted, EventClaim, entity.RoleNGO, domainerrors.ErrDonationUnavailable},
		{"claim cancelled", entity.DonationStatusCancelled, EventClaim, entity.RoleNGO, domainerrors.ErrDonationUnavailable},
		{"complete active", entity.DonationStatusActive, EventComplete, entity.RoleNGO, domainerrors.ErrDonationNotClaimed},
		{"complete completed", entity.DonationStatusCompleted, EventComplete, entity.RoleNGO, domainerrors.ErrDonationClosed},
		{"cancel claimed", entity.DonationStatusClaimed, EventCancel, entity.RoleRestaurant, domainerrors.ErrDonationAlreadyClaimed},
		{"cancel completed", entity.DonationStatusCompleted, EventCancel, entity.RoleRestaurant, domainerrors.ErrDonationClosed},
		{"cancel cancelled", entity.DonationStatusCancelled, EventCancel, entity.RoleRestaurant, domainerrors.ErrDonationClosed},
		{"restaurant claims", entity.DonationStatusActive, EventClaim, entity.RoleRestaurant, domainerrors.ErrForbidden},
		{"ngo cancels", entity.DonationStatusActive, EventCancel, entity.RoleNGO, domainerrors.ErrForbidden},
		{"admin completes", entity.DonationStatusClaimed, EventComplete, entity.RoleAdmin, domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Next(tt.current, tt.event, tt.actor)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestTransitions_ClaimantSetOnlyWhenClaimedOrCompleted(t *testing.T) {
	for _, tr := range Transitions() {
		if tr.To.HasClaimant() && !tr.From.HasClaimant() {
			// Entering a claimed state must record the claimant.
			assert.Equal(t, EventClaim, tr.Event, "%s -> %s", tr.From, tr.To)
			assert.True(t, tr.HasEffect(EffectCreatePickup))
		}
		if tr.From.HasClaimant() {
			// Once claimed, the claimant never changes and never goes away.
			assert.True(t, tr.To.HasClaimant(), "%s -> %s drops the claimant", tr.From, tr.To)
		}
	}
}

func TestValidTransitionsFrom(t *testing.T) {
	assert.ElementsMatch(t,
		[]entity.DonationStatus{entity.DonationStatusClaimed, entity.DonationStatusCancelled},
		ValidTransitionsFrom(entity.DonationStatusActive))
	assert.Equal(t, []entity.DonationStatus{entity.DonationStatusCompleted}, ValidTransitionsFrom(entity.DonationStatusClaimed))
	assert.Empty(t, ValidTransitionsFrom(entity.DonationStatusCompleted))
	assert.Empty(t, ValidTransitionsFrom(entity.DonationStatusCancelled))
}

func TestTransition_HasEffect(t *testing.T) {
	claim, err := Lookup(EventClaim, entity.RoleNGO)
	require.NoError(t, err)
	assert.True(t, claim.HasEffect(EffectCreatePickup))
	assert.False(t, claim.HasEffect(EffectAddImpactScore))

	complete, err := Lookup(EventComplete, entity.RoleNGO)
	require.NoError(t, err)
	assert.True(t, complete.HasEffect(EffectAddImpactScore))
}
