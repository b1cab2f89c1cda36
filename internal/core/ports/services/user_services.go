package services

import (
	"context"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
	"github.com/shantodev/temple_donation_app/internal/dto"
)

// UserSvcFacade defines staff account operations exposed to handlers.
// Mutations are restricted to SUPER_ADMIN actors; a SUPER_ADMIN target record
// can never be deleted through DeleteStaff.
type UserSvcFacade interface {
	// Authenticate verifies email+password and returns the account, or
	// apperrors.ErrUnauthorized on unknown email or wrong password.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	CreateStaff(ctx context.Context, req dto.CreateAdminRequest) (*domain.User, error)
	ListStaff(ctx context.Context, search string) ([]domain.User, error)
	UpdateStaff(ctx context.Context, userID string, req dto.UpdateAdminRequest) (*domain.User, error)
	DeleteStaff(ctx context.Context, userID string) error
	// EnsureSuperAdmin creates the bootstrap SUPER_ADMIN account when none exists.
	EnsureSuperAdmin(ctx context.Context, name, email, password string) error
}
