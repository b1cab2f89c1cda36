package services

import (
	"context"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
	"github.com/shantodev/temple_donation_app/internal/dto"
)

// PaymentMethodSvcFacade defines payment method operations exposed to handlers.
type PaymentMethodSvcFacade interface {
	CreatePaymentMethod(ctx context.Context, req dto.CreatePaymentMethodRequest) (*domain.PaymentMethod, error)
	GetPaymentMethodByID(ctx context.Context, methodID string) (*domain.PaymentMethod, error)
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
	ListActivePaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, methodID string, req dto.UpdatePaymentMethodRequest) (*domain.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, methodID string) error
}
