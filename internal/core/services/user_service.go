package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shantodev/temple_donation_app/internal/apperrors"
	"github.com/shantodev/temple_donation_app/internal/core/domain"
	portsrepo "github.com/shantodev/temple_donation_app/internal/core/ports/repositories"
	portssvc "github.com/shantodev/temple_donation_app/internal/core/ports/services"
	"github.com/shantodev/temple_donation_app/internal/dto"
	"github.com/shantodev/temple_donation_app/internal/middleware"
	"github.com/shantodev/temple_donation_app/internal/utils"
)

// userService implements staff account management and credential checks.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
	activity portssvc.ActivitySvcFacade
}

// NewUserService creates a new staff account service.
func NewUserService(userRepo portsrepo.UserRepository, activity portssvc.ActivitySvcFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, activity: activity}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// Authenticate verifies credentials. Unknown email and wrong password both
// return ErrUnauthorized so the response cannot be used to probe accounts.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return user, nil
}

// CreateStaff creates a staff account. Only a SUPER_ADMIN actor may do this.
func (s *userService) CreateStaff(ctx context.Context, req dto.CreateAdminRequest) (*domain.User, error) {
	if err := s.requireSuperAdmin(ctx); err != nil {
		return nil, err
	}
	if !req.Role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create staff account: %w", err)
	}

	s.LogInfo(ctx, "Staff account created", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	s.activity.Record(ctx, domain.ActionCreate, "Admin",
		fmt.Sprintf("Created staff account for %s with role %s", user.Name, user.Role))
	return &user, nil
}

// ListStaff lists staff accounts, excluding SUPER_ADMIN records.
func (s *userService) ListStaff(ctx context.Context, search string) ([]domain.User, error) {
	return s.userRepo.FindStaff(ctx, search)
}

// UpdateStaff edits a staff account. Only a SUPER_ADMIN actor may do this;
// the password is re-hashed only when a new one is supplied.
func (s *userService) UpdateStaff(ctx context.Context, userID string, req dto.UpdateAdminRequest) (*domain.User, error) {
	if err := s.requireSuperAdmin(ctx); err != nil {
		return nil, err
	}
	if !req.Role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s for update: %w", userID, err)
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Role = req.Role
	if req.Password != nil && *req.Password != "" {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", userID, err)
	}

	s.activity.Record(ctx, domain.ActionUpdate, "Admin", fmt.Sprintf("Updated staff account %s", user.Name))
	return user, nil
}

// DeleteStaff removes a staff account. Only a SUPER_ADMIN actor may delete,
// and a SUPER_ADMIN target record can never be deleted through this path.
func (s *userService) DeleteStaff(ctx context.Context, userID string) error {
	if err := s.requireSuperAdmin(ctx); err != nil {
		return err
	}

	target, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to find user %s for deletion: %w", userID, err)
	}
	if target.Role == domain.RoleSuperAdmin {
		return fmt.Errorf("%w: the Super Admin account cannot be deleted", apperrors.ErrForbidden)
	}

	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}

	s.LogInfo(ctx, "Staff account deleted", slog.String("user_id", userID))
	s.activity.Record(ctx, domain.ActionDelete, "Admin", fmt.Sprintf("Deleted staff account %s", target.Name))
	return nil
}

// EnsureSuperAdmin bootstraps the initial SUPER_ADMIN account when none exists.
func (s *userService) EnsureSuperAdmin(ctx context.Context, name, email, password string) error {
	count, err := s.userRepo.CountUsersByRole(ctx, domain.RoleSuperAdmin)
	if err != nil {
		return fmt.Errorf("failed to count super admin accounts: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleSuperAdmin,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("failed to create bootstrap super admin: %w", err)
	}

	s.LogInfo(ctx, "Bootstrap super admin created", slog.String("email", email))
	return nil
}

func (s *userService) requireSuperAdmin(ctx context.Context) error {
	actor, ok := middleware.GetAuthUserFromCtx(ctx)
	if !ok {
		return apperrors.ErrUnauthorized
	}
	if actor.Role != domain.RoleSuperAdmin {
		return apperrors.ErrForbidden
	}
	return nil
}
