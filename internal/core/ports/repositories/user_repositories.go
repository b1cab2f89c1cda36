package repositories

import (
	"context"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
)

// UserRepository defines persistence operations for staff accounts.
type UserRepository interface {
	// SaveUser inserts a new staff account. Returns apperrors.ErrDuplicate when
	// the email is already registered.
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindStaff lists accounts excluding SUPER_ADMIN records, newest first,
	// optionally filtered by a case-insensitive search over name/email.
	FindStaff(ctx context.Context, search string) ([]domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
	DeleteUser(ctx context.Context, userID string) error
	CountUsersByRole(ctx context.Context, role domain.UserRole) (int64, error)
}
