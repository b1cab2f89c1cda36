package dto

import (
	"time"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
)

// CreateAdminRequest defines the fields accepted when creating a staff account.
type CreateAdminRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     domain.UserRole `json:"role" binding:"required"`
}

// UpdateAdminRequest defines the fields accepted when editing a staff account.
// Password is optional; when supplied it is re-hashed.
type UpdateAdminRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password *string         `json:"password" binding:"omitempty,min=6"`
	Role     domain.UserRole `json:"role" binding:"required"`
}

// ListAdminsParams defines query parameters for the staff listing.
type ListAdminsParams struct {
	Search string `form:"search"`
}

// AdminResponse is the staff account representation. The password hash is
// never serialized.
type AdminResponse struct {
	UserID    string          `json:"userID"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      domain.UserRole `json:"role"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ToAdminResponse converts a domain.User to its response DTO.
func ToAdminResponse(u *domain.User) AdminResponse {
	return AdminResponse{
		UserID:    u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
