package validator

import (
	"testing"

	domainerrors "foodbridge/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=6"`
	UserType string   `json:"userType" validate:"required,oneof=restaurant ngo"`
	Latitude *float64 `json:"latitude" validate:"omitempty,latitude"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(&signup{Email: "a@b.co", Password: "secret", UserType: "ngo"}))
	})

	t.Run("reports every failing field by json name", func(t *testing.T) {
		lat := 91.0
		err := v.Validate(&signup{Email: "nope", Password: "abc", UserType: "admin", Latitude: &lat})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t,
			"email: must be a valid email address; password: must be at least 6 characters; "+
				"userType: must be one of: restaurant, ngo; latitude: must be a valid latitude",
			appErr.Details())
	})
}
