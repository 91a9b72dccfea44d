package impl

import (
	"context"
	"time"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func requireRole(caller entity.Caller, roles ...entity.Role) error {
	if entity.Roles(roles).Contains(caller.Role) {
		return nil
	}

	return domainerrors.ErrForbidden
}

// requireVerified trusts a verified token and otherwise re-reads the account, so a
// verification granted after login takes effect without a new token.
func requireVerified(ctx context.Context, users repository.UserRepository, caller entity.Caller) error {
	if caller.Verified {
		return nil
	}

	user, err := users.FindByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return domainerrors.ErrTokenInvalid
		}

		return errors.Wrap(err, "failed to load caller")
	}
	if !user.IsActive {
		return domainerrors.ErrAccountDeactivated
	}
	if !user.IsVerified {
		return domainerrors.ErrAccountNotVerified
	}

	return nil
}

func newActivityLog(actor uuid.UUID, action, entityType string, entityID uuid.UUID, details string, at time.Time) *entity.ActivityLog {
	return &entity.ActivityLog{
		ID:         uuid.New(),
		UserID:     &actor,
		Action:     action,
		EntityType: entityType,
		EntityID:   &entityID,
		Details:    details,
		CreatedAt:  at,
	}
}
