package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
	portsrepo "github.com/shantodev/temple_donation_app/internal/core/ports/repositories"
	portssvc "github.com/shantodev/temple_donation_app/internal/core/ports/services"
	"github.com/shantodev/temple_donation_app/internal/dto"
)

// paymentMethodService implements the payment method operations.
type paymentMethodService struct {
	BaseService
	methodRepo portsrepo.PaymentMethodRepository
	activity   portssvc.ActivitySvcFacade
}

// NewPaymentMethodService creates a new payment method service.
func NewPaymentMethodService(methodRepo portsrepo.PaymentMethodRepository, activity portssvc.ActivitySvcFacade) portssvc.PaymentMethodSvcFacade {
	return &paymentMethodService{methodRepo: methodRepo, activity: activity}
}

var _ portssvc.PaymentMethodSvcFacade = (*paymentMethodService)(nil)

func (s *paymentMethodService) CreatePaymentMethod(ctx context.Context, req dto.CreatePaymentMethodRequest) (*domain.PaymentMethod, error) {
	methodType := req.Type
	if methodType == "" {
		methodType = domain.PaymentTypeMobileBanking
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now().UTC()
	method := domain.PaymentMethod{
		PaymentMethodID: uuid.NewString(),
		Name:            req.Name,
		AccountNumber:   req.AccountNumber,
		Type:            methodType,
		IsActive:        isActive,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.methodRepo.SavePaymentMethod(ctx, method); err != nil {
		return nil, fmt.Errorf("failed to create payment method: %w", err)
	}

	s.activity.Record(ctx, domain.ActionCreate, "PaymentMethod", fmt.Sprintf("Added payment method %s", method.Name))
	return &method, nil
}

func (s *paymentMethodService) GetPaymentMethodByID(ctx context.Context, methodID string) (*domain.PaymentMethod, error) {
	method, err := s.methodRepo.FindPaymentMethodByID(ctx, methodID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment method %s: %w", methodID, err)
	}
	return method, nil
}

func (s *paymentMethodService) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	return s.methodRepo.FindPaymentMethods(ctx)
}

func (s *paymentMethodService) ListActivePaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	return s.methodRepo.FindActivePaymentMethods(ctx)
}

func (s *paymentMethodService) UpdatePaymentMethod(ctx context.Context, methodID string, req dto.UpdatePaymentMethodRequest) (*domain.PaymentMethod, error) {
	method, err := s.methodRepo.FindPaymentMethodByID(ctx, methodID)
	if err != nil {
		return nil, fmt.Errorf("failed to find payment method %s for update: %w", methodID, err)
	}

	if req.Name != nil {
		method.Name = *req.Name
	}
	if req.AccountNumber != nil {
		method.AccountNumber = *req.AccountNumber
	}
	if req.Type != nil {
		method.Type = *req.Type
	}
	if req.IsActive != nil {
		method.IsActive = *req.IsActive
	}
	method.UpdatedAt = time.Now().UTC()

	if err := s.methodRepo.UpdatePaymentMethod(ctx, *method); err != nil {
		return nil, fmt.Errorf("failed to update payment method %s: %w", methodID, err)
	}

	s.activity.Record(ctx, domain.ActionUpdate, "PaymentMethod", fmt.Sprintf("Updated payment method %s", method.Name))
	return method, nil
}

// DeletePaymentMethod removes a method without checking donations that
// reference it; those keep a dangling reference.
func (s *paymentMethodService) DeletePaymentMethod(ctx context.Context, methodID string) error {
	method, err := s.methodRepo.FindPaymentMethodByID(ctx, methodID)
	if err != nil {
		return fmt.Errorf("failed to find payment method %s for deletion: %w", methodID, err)
	}

	if err := s.methodRepo.DeletePaymentMethod(ctx, methodID); err != nil {
		return fmt.Errorf("failed to delete payment method %s: %w", methodID, err)
	}

	s.activity.Record(ctx, domain.ActionDelete, "PaymentMethod", fmt.Sprintf("Deleted payment method %s", method.Name))
	return nil
}
