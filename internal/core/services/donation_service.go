package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shantodev/temple_donation_app/internal/apperrors"
	"github.com/shantodev/temple_donation_app/internal/core/domain"
	portsrepo "github.com/shantodev/temple_donation_app/internal/core/ports/repositories"
	portssvc "github.com/shantodev/temple_donation_app/internal/core/ports/services"
	"github.com/shantodev/temple_donation_app/internal/dto"
	"github.com/shantodev/temple_donation_app/internal/middleware"
	"github.com/shantodev/temple_donation_app/internal/utils/pagination"
)

// donationService implements the donation record operations and drives the
// donor-aggregate reconciliation on every write.
type donationService struct {
	BaseService
	donationRepo portsrepo.DonationRepository
	donorRepo    portsrepo.DonorRepository
	activity     portssvc.ActivitySvcFacade
}

// NewDonationService creates a new donation record service.
func NewDonationService(donationRepo portsrepo.DonationRepository, donorRepo portsrepo.DonorRepository, activity portssvc.ActivitySvcFacade) portssvc.DonationSvcFacade {
	return &donationService{
		donationRepo: donationRepo,
		donorRepo:    donorRepo,
		activity:     activity,
	}
}

var _ portssvc.DonationSvcFacade = (*donationService)(nil)

// CreateDonation records a contribution for a donor and applies the aggregate
// increment in the same transaction. The acting admin is resolved from the
// context; the call fails with ErrUnauthorized when absent.
func (s *donationService) CreateDonation(ctx context.Context, req dto.CreateDonationRequest) (*domain.Donation, error) {
	actor, ok := middleware.GetAuthUserFromCtx(ctx)
	if !ok {
		return nil, apperrors.ErrUnauthorized
	}

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	if _, err := s.donorRepo.FindDonorByID(ctx, req.DonorID); err != nil {
		return nil, fmt.Errorf("failed to resolve donor %s: %w", req.DonorID, err)
	}

	now := time.Now().UTC()
	date := now
	if req.Date != nil {
		date = *req.Date
	}

	donation := domain.Donation{
		DonationID:      uuid.NewString(),
		DonorID:         req.DonorID,
		Amount:          req.Amount,
		PaymentMethodID: req.PaymentMethodID,
		TransactionID:   req.TransactionID,
		Date:            date,
		Note:            req.Note,
		AddedBy:         actor.UserID,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	adjustments := domain.ReconcileCreate(donation.DonorID, donation.Amount, donation.Date)
	if err := s.donationRepo.SaveDonation(ctx, donation, adjustments); err != nil {
		return nil, fmt.Errorf("failed to save donation: %w", err)
	}

	s.LogInfo(ctx, "Donation recorded",
		slog.String("donation_id", donation.DonationID),
		slog.String("donor_id", donation.DonorID),
		slog.String("amount", donation.Amount.String()))
	s.activity.Record(ctx, domain.ActionCreate, "Donation",
		fmt.Sprintf("Added donation of %s for donor %s", donation.Amount.String(), donation.DonorID))
	return &donation, nil
}

func (s *donationService) GetDonationByID(ctx context.Context, donationID string) (*domain.Donation, error) {
	donation, err := s.donationRepo.FindDonationByID(ctx, donationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get donation %s: %w", donationID, err)
	}
	return donation, nil
}

func (s *donationService) ListDonations(ctx context.Context, page, limit int) ([]domain.Donation, int64, error) {
	page, limit = pagination.Normalize(page, limit)
	return s.donationRepo.FindDonations(ctx, limit, pagination.Offset(page, limit))
}

func (s *donationService) ListRecentDonations(ctx context.Context, limit int) ([]domain.Donation, error) {
	return s.donationRepo.FindRecentDonations(ctx, limit)
}

// UpdateDonation edits a donation and reconciles both donors' aggregates.
// The old donor and amount are captured from the stored record before the
// update is persisted, never recomputed from the request.
func (s *donationService) UpdateDonation(ctx context.Context, donationID string, req dto.UpdateDonationRequest) (*domain.Donation, error) {
	if _, ok := middleware.GetAuthUserFromCtx(ctx); !ok {
		return nil, apperrors.ErrUnauthorized
	}

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	oldDonation, err := s.donationRepo.FindDonationByID(ctx, donationID)
	if err != nil {
		return nil, fmt.Errorf("failed to find donation %s for update: %w", donationID, err)
	}

	if oldDonation.DonorID != req.DonorID {
		if _, err := s.donorRepo.FindDonorByID(ctx, req.DonorID); err != nil {
			return nil, fmt.Errorf("failed to resolve donor %s: %w", req.DonorID, err)
		}
	}

	date := oldDonation.Date
	if req.Date != nil {
		date = *req.Date
	}

	updated := domain.Donation{
		DonationID:      oldDonation.DonationID,
		DonorID:         req.DonorID,
		Amount:          req.Amount,
		PaymentMethodID: req.PaymentMethodID,
		TransactionID:   req.TransactionID,
		Date:            date,
		Note:            req.Note,
		AddedBy:         oldDonation.AddedBy,
		AuditFields: domain.AuditFields{
			CreatedAt: oldDonation.CreatedAt,
			UpdatedAt: time.Now().UTC(),
		},
	}

	adjustments := domain.ReconcileUpdate(oldDonation.DonorID, oldDonation.Amount, updated.DonorID, updated.Amount, updated.Date)
	if err := s.donationRepo.UpdateDonation(ctx, updated, adjustments); err != nil {
		return nil, fmt.Errorf("failed to update donation %s: %w", donationID, err)
	}

	s.activity.Record(ctx, domain.ActionUpdate, "Donation", fmt.Sprintf("Updated donation %s", donationID))
	return &updated, nil
}

// DeleteDonation removes a donation and reverts its donor's aggregate in the
// same transaction. Only privileged roles may delete.
func (s *donationService) DeleteDonation(ctx context.Context, donationID string) error {
	actor, ok := middleware.GetAuthUserFromCtx(ctx)
	if !ok {
		return apperrors.ErrUnauthorized
	}
	if !actor.Role.IsPrivileged() {
		return apperrors.ErrForbidden
	}

	donation, err := s.donationRepo.FindDonationByID(ctx, donationID)
	if err != nil {
		return fmt.Errorf("failed to find donation %s for deletion: %w", donationID, err)
	}

	adjustments := domain.ReconcileDelete(donation.DonorID, donation.Amount)
	if err := s.donationRepo.DeleteDonation(ctx, donationID, adjustments); err != nil {
		return fmt.Errorf("failed to delete donation %s: %w", donationID, err)
	}

	s.LogInfo(ctx, "Donation deleted",
		slog.String("donation_id", donationID),
		slog.String("donor_id", donation.DonorID))
	s.activity.Record(ctx, domain.ActionDelete, "Donation", fmt.Sprintf("Deleted donation %s", donationID))
	return nil
}
