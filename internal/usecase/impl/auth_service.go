// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"foodbridge/config"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/geo"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/domain/service"
	logs "foodbridge/internal/infra/log"
	"foodbridge/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMinPasswordLength = 6
	// bcrypt only hashes the first 72 bytes and refuses anything longer.
	maxPasswordBytes = 72
)

// emailValidator checks single values; Validate is safe for concurrent use.
var emailValidator = validator.New()

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	minPasswordLength int
	logger            *slog.Logger
	now               func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	minPasswordLength := defaultMinPasswordLength
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.MinPasswordLength > 0 {
		minPasswordLength = params.Config.Auth.MinPasswordLength
	}

	return &authService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		minPasswordLength: minPasswordLength,
		logger:            params.Logger,
		now:               time.Now,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return logs.FromContext(ctx, srv.logger)
}

// Register opens a restaurant or NGO account together with its details row.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	input.Email = normalizeEmail(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	if err := srv.validateRegistration(input); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	now := srv.now()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		Name:         input.Name,
		Phone:        strings.TrimSpace(input.Phone),
		Location:     strings.TrimSpace(input.Location),
		Address:      strings.TrimSpace(input.Address),
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	attachRoleDetails(user)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewUserRepository().Create(ctx, user)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register user")
	}

	srv.log(ctx).Info("User registered",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()),
	)

	return srv.issue(user)
}

func (srv *authService) validateRegistration(input usecase.RegisterInput) error {
	if !validEmail(input.Email) {
		return domainerrors.ErrValidationFailed.WithDetails("a valid email is required")
	}
	if len(input.Password) < srv.minPasswordLength {
		return domainerrors.ErrValidationFailed.WithDetails("password is too short")
	}
	if len(input.Password) > maxPasswordBytes {
		return domainerrors.ErrValidationFailed.WithDetails("password is too long")
	}
	if input.Name == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if !input.Role.IsRegistrable() {
		return domainerrors.ErrValidationFailed.WithDetails("user type must be restaurant or ngo")
	}

	return validateCoordinates(input.Latitude, input.Longitude)
}

// Login checks the password before the active flag so a deactivated account is not
// revealed to someone without its password.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domainerrors.ErrAccountDeactivated
	}

	srv.log(ctx).Info("User logged in", slog.String("user_id", user.ID.String()))

	return srv.issue(user)
}

// GetProfile returns the caller's account with role details.
func (srv *authService) GetProfile(ctx context.Context, caller entity.Caller) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, caller.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

// UpdateProfile changes the provided fields and returns the stored profile.
func (srv *authService) UpdateProfile(ctx context.Context, caller entity.Caller, input usecase.UpdateProfileInput) (*entity.User, error) {
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		if trimmed == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("name cannot be empty")
		}
		input.Name = &trimmed
	}
	if err := validatePartialCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	update := repository.ProfileUpdate{
		Name:      input.Name,
		Phone:     input.Phone,
		Location:  input.Location,
		Address:   input.Address,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	}
	if err := srv.userRepo.UpdateProfile(ctx, caller.UserID, update); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return srv.GetProfile(ctx, caller)
}

// EnsureAdmin creates the bootstrap admin. An existing account with the e-mail is left untouched.
func (srv *authService) EnsureAdmin(ctx context.Context, input usecase.BootstrapAdminInput) (bool, error) {
	email := normalizeEmail(input.Email)
	if !validEmail(email) || input.Password == "" {
		return false, domainerrors.ErrValidationFailed.WithDetails("admin email and password are required")
	}

	existing, err := srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role != entity.RoleAdmin {
			return false, domainerrors.ErrUserAlreadyExists.WrapMessage("bootstrap e-mail belongs to a non-admin account")
		}

		return false, nil
	case !errors.Is(err, domainerrors.ErrUserNotFound):
		return false, errors.Wrap(err, "failed to look up admin")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return false, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = "Administrator"
	}

	now := srv.now()
	admin := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		Name:         name,
		IsVerified:   true,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := srv.userRepo.Create(ctx, admin); err != nil {
		return false, errors.Wrap(err, "failed to create admin")
	}

	srv.log(ctx).Info("Admin account created", slog.String("user_id", admin.ID.String()))

	return true, nil
}

func (srv *authService) issue(user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.GenerateToken(user.ID, user.Role.String(), user.IsVerified)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

func attachRoleDetails(user *entity.User) {
	switch user.Role {
	case entity.RoleRestaurant:
		user.RestaurantDetails = &entity.RestaurantDetails{UserID: user.ID}
	case entity.RoleNGO:
		user.NGODetails = &entity.NGODetails{UserID: user.ID}
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	return emailValidator.Var(email, "required,email") == nil
}

// validateCoordinates requires latitude and longitude together.
func validateCoordinates(lat, lng *float64) error {
	if (lat == nil) != (lng == nil) {
		return domainerrors.ErrValidationFailed.WithDetails("latitude and longitude must be provided together")
	}
	if lat != nil && !geo.IsValidCoordinate(*lat, *lng) {
		return domainerrors.ErrValidationFailed.WithDetails("coordinates out of range")
	}

	return nil
}

// validatePartialCoordinates checks each coordinate that is present.
func validatePartialCoordinates(lat, lng *float64) error {
	if lat != nil && (*lat < -90 || *lat > 90) {
		return domainerrors.ErrValidationFailed.WithDetails("latitude out of range")
	}
	if lng != nil && (*lng < -180 || *lng > 180) {
		return domainerrors.ErrValidationFailed.WithDetails("longitude out of range")
	}

	return nil
}
