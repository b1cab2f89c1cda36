package dto

import (
	"time"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDonationRequest defines the fields accepted when recording a donation.
type CreateDonationRequest struct {
	DonorID         string          `json:"donorID" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethodID string          `json:"paymentMethodID" binding:"required"`
	Date            *time.Time      `json:"date"`
	TransactionID   *string         `json:"transactionID"`
	Note            *string         `json:"note"`
}

// UpdateDonationRequest defines the fields accepted when editing a donation.
// The full attribution is resubmitted, matching the admin form.
type UpdateDonationRequest struct {
	DonorID         string          `json:"donorID" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethodID string          `json:"paymentMethodID" binding:"required"`
	Date            *time.Time      `json:"date"`
	TransactionID   *string         `json:"transactionID"`
	Note            *string         `json:"note"`
}

// ListDonationsParams defines query parameters for the paginated donation listing.
type ListDonationsParams struct {
	PaginationParams
}

// PaymentMethodSummaryResponse is the shape of an expanded payment method reference.
type PaymentMethodSummaryResponse struct {
	PaymentMethodID string `json:"paymentMethodID"`
	Name            string `json:"name"`
}

// DonationResponse is the donation representation returned to admins, with
// donor and payment method references expanded when resolvable.
type DonationResponse struct {
	DonationID      string                        `json:"donationID"`
	DonorID         string                        `json:"donorID"`
	Amount          decimal.Decimal               `json:"amount"`
	PaymentMethodID string                        `json:"paymentMethodID"`
	TransactionID   *string                       `json:"transactionID,omitempty"`
	Date            time.Time                     `json:"date"`
	Note            *string                       `json:"note,omitempty"`
	AddedBy         string                        `json:"addedBy"`
	Donor           *DonorSummaryResponse         `json:"donor,omitempty"`
	PaymentMethod   *PaymentMethodSummaryResponse `json:"paymentMethod,omitempty"`
	CreatedAt       time.Time                     `json:"createdAt"`
	UpdatedAt       time.Time                     `json:"updatedAt"`
}

// PublicDonationResponse is the anonymized shape shown on the landing page.
type PublicDonationResponse struct {
	DonationID string          `json:"donationID"`
	DonorName  string          `json:"donorName"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
}

// ListDonationsResponse wraps a donation page with its pagination metadata.
type ListDonationsResponse struct {
	Donations  []DonationResponse `json:"donations"`
	Pagination Pagination         `json:"pagination"`
}

// ToDonationResponse converts a domain.Donation to its response DTO.
func ToDonationResponse(d *domain.Donation) DonationResponse {
	resp := DonationResponse{
		DonationID:      d.DonationID,
		DonorID:         d.DonorID,
		Amount:          d.Amount,
		PaymentMethodID: d.PaymentMethodID,
		TransactionID:   d.TransactionID,
		Date:            d.Date,
		Note:            d.Note,
		AddedBy:         d.AddedBy,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
	if d.Donor != nil {
		summary := ToDonorSummaryResponse(d.Donor)
		resp.Donor = &summary
	}
	if d.PaymentMethod != nil {
		resp.PaymentMethod = &PaymentMethodSummaryResponse{
			PaymentMethodID: d.PaymentMethod.PaymentMethodID,
			Name:            d.PaymentMethod.Name,
		}
	}
	return resp
}

// ToPublicDonationResponse converts a donation to the masked public shape.
func ToPublicDonationResponse(d *domain.Donation) PublicDonationResponse {
	donorName := ""
	if d.Donor != nil {
		donorName = d.Donor.Name
	}
	return PublicDonationResponse{
		DonationID: d.DonationID,
		DonorName:  domain.MaskDonorName(donorName),
		Amount:     d.Amount,
		Date:       d.Date,
	}
}
