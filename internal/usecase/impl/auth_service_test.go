package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"foodbridge/config"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	mockSvc "foodbridge/internal/mocks/service"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service *authService
	repos   *repoFixtures
	hasher  *mockSvc.MockPasswordHasher
	tokens  *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	repos := newRepoFixtures(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)

	srv := NewAuthService(AuthServiceParams{
		TxManager:    repos.txManager,
		UserRepo:     repos.users,
		Hasher:       hasher,
		TokenService: tokens,
		Config:       &config.Config{Auth: &config.AuthConfig{MinPasswordLength: 6}},
		Logger:       newDiscardLogger(),
	}).(*authService)
	srv.now = func() time.Time { return fixedNow }

	return authServiceFixtures{service: srv, repos: repos, hasher: hasher, tokens: tokens}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	fx.repos.onExecute(ctx)
	fx.repos.users.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "chef@example.com" &&
				u.PasswordHash == "hashed" &&
				u.Role == entity.RoleRestaurant &&
				u.IsActive && !u.IsVerified &&
				u.RestaurantDetails != nil && u.NGODetails == nil
		})).
		Return(nil)
	fx.tokens.EXPECT().GenerateToken(mock.AnythingOfType("uuid.UUID"), "restaurant", false).Return("token", nil)

	out, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email:    "  Chef@Example.com ",
		Password: "secret123",
		Name:     "Chez Nous",
		Role:     entity.RoleRestaurant,
	})

	require.NoError(t, err)
	assert.Equal(t, "token", out.Token)
	assert.Equal(t, "chef@example.com", out.User.Email)
	assert.Equal(t, fixedNow, out.User.CreatedAt)
}

func TestAuthService_Register_NGOGetsNGODetails(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	fx.repos.onExecute(ctx)
	fx.repos.users.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.NGODetails != nil && u.RestaurantDetails == nil
		})).
		Return(nil)
	fx.tokens.EXPECT().GenerateToken(mock.Anything, "ngo", false).Return("token", nil)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email: "food@bank.org", Password: "secret123", Name: "Food Bank", Role: entity.RoleNGO,
	})

	require.NoError(t, err)
}

func TestAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.RegisterInput
	}{
		{"admin role", usecase.RegisterInput{Email: "a@b.co", Password: "secret123", Name: "A", Role: entity.RoleAdmin}},
		{"short password", usecase.RegisterInput{Email: "a@b.co", Password: "abc", Name: "A", Role: entity.RoleNGO}},
		{"long password", usecase.RegisterInput{Email: "a@b.co", Password: strings.Repeat("p", 73), Name: "A", Role: entity.RoleNGO}},
		{"bad email", usecase.RegisterInput{Email: "not-an-email", Password: "secret123", Name: "A", Role: entity.RoleNGO}},
		{"email with display name", usecase.RegisterInput{Email: "Chef <chef@example.com>", Password: "secret123", Name: "A", Role: entity.RoleNGO}},
		{"empty email", usecase.RegisterInput{Password: "secret123", Name: "A", Role: entity.RoleNGO}},
		{"missing name", usecase.RegisterInput{Email: "a@b.co", Password: "secret123", Name: " ", Role: entity.RoleNGO}},
		{"lone latitude", usecase.RegisterInput{Email: "a@b.co", Password: "secret123", Name: "A", Role: entity.RoleNGO, Latitude: ptr(1.0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			_, err := fx.service.Register(context.Background(), tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	fx.repos.onExecute(ctx)
	fx.repos.users.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrUserAlreadyExists)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email: "dup@example.com", Password: "secret123", Name: "Dup", Role: entity.RoleRestaurant,
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	active := &entity.User{ID: uuid.New(), Email: "ngo@example.com", PasswordHash: "hash", Role: entity.RoleNGO, IsActive: true, IsVerified: true}
	inactive := &entity.User{ID: uuid.New(), Email: "old@example.com", PasswordHash: "hash", Role: entity.RoleNGO}

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		fx.repos.users.EXPECT().FindByEmail(ctx, "ngo@example.com").Return(active, nil)
		fx.hasher.EXPECT().Check("pw", "hash").Return(true)
		fx.tokens.EXPECT().GenerateToken(active.ID, "ngo", true).Return("token", nil)

		out, err := fx.service.Login(ctx, usecase.LoginInput{Email: "NGO@example.com", Password: "pw"})

		require.NoError(t, err)
		assert.Equal(t, active, out.User)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		fx.repos.users.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, domainerrors.ErrUserNotFound)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "pw"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		fx.repos.users.EXPECT().FindByEmail(ctx, "ngo@example.com").Return(active, nil)
		fx.hasher.EXPECT().Check("bad", "hash").Return(false)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ngo@example.com", Password: "bad"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("deactivated", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		fx.repos.users.EXPECT().FindByEmail(ctx, "old@example.com").Return(inactive, nil)
		fx.hasher.EXPECT().Check("pw", "hash").Return(true)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "old@example.com", Password: "pw"})

		assert.ErrorIs(t, err, domainerrors.ErrAccountDeactivated)
	})
}

func TestAuthService_UpdateProfile(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	caller := ngoCaller()
	updated := &entity.User{ID: caller.UserID, Name: "New Name"}

	fx.repos.users.EXPECT().
		UpdateProfile(ctx, caller.UserID, mock.MatchedBy(func(u repository.ProfileUpdate) bool {
			return u.Name != nil && *u.Name == "New Name" && u.Phone == nil
		})).
		Return(nil)
	fx.repos.users.EXPECT().FindByID(ctx, caller.UserID).Return(updated, nil)

	user, err := fx.service.UpdateProfile(ctx, caller, usecase.UpdateProfileInput{Name: ptr("  New Name ")})

	require.NoError(t, err)
	assert.Equal(t, updated, user)
}

func TestAuthService_UpdateProfile_RejectsBadInput(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.UpdateProfile(context.Background(), ngoCaller(), usecase.UpdateProfileInput{Name: ptr("")})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.UpdateProfile(context.Background(), ngoCaller(), usecase.UpdateProfileInput{Latitude: ptr(91.0)})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	input := usecase.BootstrapAdminInput{Email: "admin@foodbridge.org", Password: "change-me"}

	t.Run("creates missing admin", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		fx.repos.users.EXPECT().FindByEmail(ctx, "admin@foodbridge.org").Return(nil, domainerrors.ErrUserNotFound)
		fx.hasher.EXPECT().Hash("change-me").Return("hashed", nil)
		fx.repos.users.EXPECT().
			Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
				return u.Role == entity.RoleAdmin && u.IsVerified && u.IsActive && u.Name == "Administrator"
			})).
			Return(nil)

		created, err := fx.service.EnsureAdmin(ctx, input)

		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("keeps existing admin", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		fx.repos.users.EXPECT().FindByEmail(ctx, "admin@foodbridge.org").Return(&entity.User{Role: entity.RoleAdmin}, nil)

		created, err := fx.service.EnsureAdmin(ctx, input)

		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("malformed bootstrap email", func(t *testing.T) {
		fx := createTestAuthService(t)

		_, err := fx.service.EnsureAdmin(context.Background(), usecase.BootstrapAdminInput{
			Email:    "admin@",
			Password: "change-me",
		})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("email taken by a restaurant", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		fx.repos.users.EXPECT().FindByEmail(ctx, "admin@foodbridge.org").Return(&entity.User{Role: entity.RoleRestaurant}, nil)

		_, err := fx.service.EnsureAdmin(ctx, input)

		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})

	t.Run("lookup failure", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		fx.repos.users.EXPECT().FindByEmail(ctx, "admin@foodbridge.org").Return(nil, errors.New("db down"))

		_, err := fx.service.EnsureAdmin(ctx, input)

		assert.Error(t, err)
	})
}
