// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"foodbridge/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open a restaurant or NGO account.
type RegisterInput struct {
	Email     string
	Password  string
	Name      string
	Role      entity.Role
	Phone     string
	Location  string
	Address   string
	Latitude  *float64
	Longitude *float64
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput carries the profile fields to change; nil fields are left alone.
type UpdateProfileInput struct {
	Name      *string
	Phone     *string
	Location  *string
	Address   *string
	Latitude  *float64
	Longitude *float64
}

// BootstrapAdminInput describes the admin account created on first deploy.
type BootstrapAdminInput struct {
	Email    string
	Password string
	Name     string
}

// --- Output DTOs ---

// AuthOutput returns the signed token with the account it was issued for.
type AuthOutput struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// AuthUsecase covers registration, login and the caller's own profile.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	GetProfile(ctx context.Context, caller entity.Caller) (*entity.User, error)
	UpdateProfile(ctx context.Context, caller entity.Caller, input UpdateProfileInput) (*entity.User, error)

	// EnsureAdmin creates the admin account unless the e-mail is already registered.
	EnsureAdmin(ctx context.Context, input BootstrapAdminInput) (created bool, err error)
}
