package dto

import (
	"time"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
)

// CreatePaymentMethodRequest defines the fields accepted when adding a payment
// method. Type defaults to Mobile Banking when omitted; the paymenttype rule is
// registered with the binding validator at startup.
type CreatePaymentMethodRequest struct {
	Name          string                   `json:"name" binding:"required"`
	AccountNumber string                   `json:"accountNumber" binding:"required"`
	Type          domain.PaymentMethodType `json:"type" binding:"omitempty,paymenttype"`
	IsActive      *bool                    `json:"isActive"`
}

// UpdatePaymentMethodRequest defines the partial-merge update of a payment method.
type UpdatePaymentMethodRequest struct {
	Name          *string                   `json:"name"`
	AccountNumber *string                   `json:"accountNumber"`
	Type          *domain.PaymentMethodType `json:"type" binding:"omitempty,paymenttype"`
	IsActive      *bool                     `json:"isActive"`
}

// PaymentMethodResponse is the full payment method representation for admins.
type PaymentMethodResponse struct {
	PaymentMethodID string                   `json:"paymentMethodID"`
	Name            string                   `json:"name"`
	AccountNumber   string                   `json:"accountNumber"`
	Type            domain.PaymentMethodType `json:"type"`
	IsActive        bool                     `json:"isActive"`
	CreatedAt       time.Time                `json:"createdAt"`
	UpdatedAt       time.Time                `json:"updatedAt"`
}

// PublicPaymentMethodResponse is the shape shown on the landing page.
type PublicPaymentMethodResponse struct {
	Name          string                   `json:"name"`
	AccountNumber string                   `json:"accountNumber"`
	Type          domain.PaymentMethodType `json:"type"`
}

// ToPaymentMethodResponse converts a domain.PaymentMethod to its response DTO.
func ToPaymentMethodResponse(m *domain.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		PaymentMethodID: m.PaymentMethodID,
		Name:            m.Name,
		AccountNumber:   m.AccountNumber,
		Type:            m.Type,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ToPublicPaymentMethodResponse converts a domain.PaymentMethod to the public shape.
func ToPublicPaymentMethodResponse(m *domain.PaymentMethod) PublicPaymentMethodResponse {
	return PublicPaymentMethodResponse{
		Name:          m.Name,
		AccountNumber: m.AccountNumber,
		Type:          m.Type,
	}
}
