package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
	portsrepo "github.com/shantodev/temple_donation_app/internal/core/ports/repositories"
	portssvc "github.com/shantodev/temple_donation_app/internal/core/ports/services"
	"github.com/shantodev/temple_donation_app/internal/dto"
	"github.com/shantodev/temple_donation_app/internal/utils/pagination"
)

// donorService implements the donor ledger operations.
type donorService struct {
	BaseService
	donorRepo portsrepo.DonorRepository
	activity  portssvc.ActivitySvcFacade
}

// NewDonorService creates a new donor ledger service.
func NewDonorService(donorRepo portsrepo.DonorRepository, activity portssvc.ActivitySvcFacade) portssvc.DonorSvcFacade {
	return &donorService{donorRepo: donorRepo, activity: activity}
}

var _ portssvc.DonorSvcFacade = (*donorService)(nil)

// CreateDonor registers a new donor. Returns apperrors.ErrDuplicate when the
// phone number is already registered.
func (s *donorService) CreateDonor(ctx context.Context, req dto.CreateDonorRequest) (*domain.Donor, error) {
	now := time.Now().UTC()
	donor := domain.Donor{
		DonorID:       uuid.NewString(),
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		Occupation:    req.Occupation,
		TotalDonation: decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.donorRepo.SaveDonor(ctx, donor); err != nil {
		return nil, fmt.Errorf("failed to create donor: %w", err)
	}

	s.LogInfo(ctx, "Donor created", slog.String("donor_id", donor.DonorID))
	s.activity.Record(ctx, domain.ActionCreate, "Donor", fmt.Sprintf("Added donor %s", donor.Name))
	return &donor, nil
}

func (s *donorService) GetDonorByID(ctx context.Context, donorID string) (*domain.Donor, error) {
	donor, err := s.donorRepo.FindDonorByID(ctx, donorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get donor %s: %w", donorID, err)
	}
	return donor, nil
}

func (s *donorService) ListDonors(ctx context.Context, search string, page, limit int) ([]domain.Donor, int64, error) {
	page, limit = pagination.Normalize(page, limit)
	return s.donorRepo.FindDonors(ctx, search, limit, pagination.Offset(page, limit))
}

func (s *donorService) ListAllDonors(ctx context.Context) ([]domain.Donor, error) {
	return s.donorRepo.FindAllDonors(ctx)
}

// UpdateDonor performs a partial merge of the supplied fields onto the stored
// donor. The aggregate fields are never touched here; they belong to the
// donation reconciliation.
func (s *donorService) UpdateDonor(ctx context.Context, donorID string, req dto.UpdateDonorRequest) (*domain.Donor, error) {
	donor, err := s.donorRepo.FindDonorByID(ctx, donorID)
	if err != nil {
		return nil, fmt.Errorf("failed to find donor %s for update: %w", donorID, err)
	}

	if req.Name != nil {
		donor.Name = *req.Name
	}
	if req.Phone != nil {
		donor.Phone = *req.Phone
	}
	if req.Email != nil {
		donor.Email = req.Email
	}
	if req.Address != nil {
		donor.Address = req.Address
	}
	if req.Occupation != nil {
		donor.Occupation = req.Occupation
	}
	donor.UpdatedAt = time.Now().UTC()

	if err := s.donorRepo.UpdateDonor(ctx, *donor); err != nil {
		return nil, fmt.Errorf("failed to update donor %s: %w", donorID, err)
	}

	s.activity.Record(ctx, domain.ActionUpdate, "Donor", fmt.Sprintf("Updated donor %s", donor.Name))
	return donor, nil
}

// DeleteDonor removes a donor unconditionally. Donations referencing the donor
// become orphaned; there is no cascade.
func (s *donorService) DeleteDonor(ctx context.Context, donorID string) error {
	donor, err := s.donorRepo.FindDonorByID(ctx, donorID)
	if err != nil {
		return fmt.Errorf("failed to find donor %s for deletion: %w", donorID, err)
	}

	if err := s.donorRepo.DeleteDonor(ctx, donorID); err != nil {
		return fmt.Errorf("failed to delete donor %s: %w", donorID, err)
	}

	s.LogInfo(ctx, "Donor deleted", slog.String("donor_id", donorID))
	s.activity.Record(ctx, domain.ActionDelete, "Donor", fmt.Sprintf("Deleted donor %s", donor.Name))
	return nil
}
