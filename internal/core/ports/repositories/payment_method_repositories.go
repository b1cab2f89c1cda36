package repositories

import (
	"context"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
)

// PaymentMethodRepository defines persistence operations for payment methods.
type PaymentMethodRepository interface {
	SavePaymentMethod(ctx context.Context, method domain.PaymentMethod) error
	FindPaymentMethodByID(ctx context.Context, methodID string) (*domain.PaymentMethod, error)
	// FindPaymentMethods returns all methods ordered by creation time descending.
	FindPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
	// FindActivePaymentMethods returns the methods shown on the public page.
	FindActivePaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, method domain.PaymentMethod) error
	DeletePaymentMethod(ctx context.Context, methodID string) error
}
