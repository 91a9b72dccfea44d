package handler

import (
	"context"
	"net/http"
	"testing"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	mockUsecase "foodbridge/internal/mocks/usecase"
	"foodbridge/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase) {
	authUC := mockUsecase.NewMockAuthUsecase(t)

	return NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: discardLogger()}), authUC
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *mockUsecase.MockAuthUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name: "creates a restaurant account",
			body: `{"email":"chef@bistro.test","password":"secret1","name":"Bistro","userType":"restaurant","latitude":12.97,"longitude":77.59}`,
			setupMock: func(m *mockUsecase.MockAuthUsecase) {
				m.EXPECT().
					Register(mock.Anything, mock.MatchedBy(func(in usecase.RegisterInput) bool {
						return in.Role == entity.RoleRestaurant && in.Email == "chef@bistro.test" &&
							in.Latitude != nil && *in.Latitude == 12.97
					})).
					Return(&usecase.AuthOutput{Token: "tok", User: &entity.User{Email: "chef@bistro.test"}}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "rejects admin sign up before reaching the use case",
			body:       `{"email":"root@x.test","password":"secret1","name":"Root","userType":"admin"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "malformed json",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name: "duplicate e-mail",
			body: `{"email":"chef@bistro.test","password":"secret1","name":"Bistro","userType":"ngo"}`,
			setupMock: func(m *mockUsecase.MockAuthUsecase) {
				m.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)
			},
			wantStatus: http.StatusConflict,
			wantCode:   "USER_ALREADY_EXISTS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, authUC := newAuthHandler(t)
			if tt.setupMock != nil {
				tt.setupMock(authUC)
			}

			c, rec := newTestContext(http.MethodPost, "/api/auth/register", "application/json", jsonBody(tt.body), nil)
			require.NoError(t, h.Register(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)

				return
			}

			var out usecase.AuthOutput
			body := decodeSuccess(t, rec, &out)
			assert.Equal(t, "tok", out.Token)
			assert.Equal(t, "Registration successful", body.Message)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	h, authUC := newAuthHandler(t)
	authUC.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Email: "ngo@help.test", Password: "wrong"}).
		Return(nil, domainerrors.ErrInvalidCredentials)

	c, rec := newTestContext(http.MethodPost, "/api/auth/login", "application/json",
		jsonBody(`{"email":"ngo@help.test","password":"wrong"}`), nil)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decodeError(t, rec).Error)
}

func TestAuthHandler_Profile(t *testing.T) {
	t.Run("get requires a caller", func(t *testing.T) {
		h, _ := newAuthHandler(t)
		c, rec := newTestContext(http.MethodGet, "/api/auth/profile", "", nil, nil)

		require.NoError(t, h.GetProfile(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("update passes only the sent fields", func(t *testing.T) {
		h, authUC := newAuthHandler(t)
		authUC.EXPECT().
			UpdateProfile(mock.Anything, ngo, mock.Anything).
			RunAndReturn(func(_ context.Context, _ entity.Caller, in usecase.UpdateProfileInput) (*entity.User, error) {
				require.NotNil(t, in.Phone)
				assert.Equal(t, "+91 80 1234", *in.Phone)
				assert.Nil(t, in.Name)
				assert.Nil(t, in.Latitude)

				return &entity.User{ID: ngo.UserID, Phone: *in.Phone}, nil
			})

		c, rec := newTestContext(http.MethodPut, "/api/auth/profile", "application/json",
			jsonBody(`{"phone":"+91 80 1234"}`), &ngo)

		require.NoError(t, h.UpdateProfile(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var user entity.User
		decodeSuccess(t, rec, &user)
		assert.Equal(t, "+91 80 1234", user.Phone)
	})
}
