package dto

import (
	"time"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDonorRequest defines the fields accepted when registering a donor.
type CreateDonorRequest struct {
	Name       string  `json:"name" binding:"required"`
	Phone      string  `json:"phone" binding:"required"`
	Email      *string `json:"email"`
	Address    *string `json:"address"`
	Occupation *string `json:"occupation"`
}

// UpdateDonorRequest defines the partial-merge update of a donor.
// Pointers distinguish omitted fields from zero values.
type UpdateDonorRequest struct {
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	Address    *string `json:"address"`
	Occupation *string `json:"occupation"`
}

// ListDonorsParams defines query parameters for the paginated donor listing.
type ListDonorsParams struct {
	Search string `form:"search"`
	PaginationParams
}

// DonorResponse is the full donor representation returned to admins.
type DonorResponse struct {
	DonorID          string          `json:"donorID"`
	Name             string          `json:"name"`
	Phone            string          `json:"phone"`
	Email            *string         `json:"email,omitempty"`
	Address          *string         `json:"address,omitempty"`
	Occupation       *string         `json:"occupation,omitempty"`
	TotalDonation    decimal.Decimal `json:"totalDonation"`
	LastDonationDate *time.Time      `json:"lastDonationDate,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// DonorSummaryResponse is the lightweight shape used for dropdown listings and
// expanded references.
type DonorSummaryResponse struct {
	DonorID string  `json:"donorID"`
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Email   *string `json:"email,omitempty"`
}

// ListDonorsResponse wraps a donor page with its pagination metadata.
type ListDonorsResponse struct {
	Donors     []DonorResponse `json:"donors"`
	Pagination Pagination      `json:"pagination"`
}

// ToDonorResponse converts a domain.Donor to its response DTO.
func ToDonorResponse(d *domain.Donor) DonorResponse {
	return DonorResponse{
		DonorID:          d.DonorID,
		Name:             d.Name,
		Phone:            d.Phone,
		Email:            d.Email,
		Address:          d.Address,
		Occupation:       d.Occupation,
		TotalDonation:    d.TotalDonation,
		LastDonationDate: d.LastDonationDate,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

// ToDonorSummaryResponse converts a domain.Donor to its summary DTO.
func ToDonorSummaryResponse(d *domain.Donor) DonorSummaryResponse {
	return DonorSummaryResponse{
		DonorID: d.DonorID,
		Name:    d.Name,
		Phone:   d.Phone,
		Email:   d.Email,
	}
}
