package services

import (
	"context"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
	"github.com/shantodev/temple_donation_app/internal/dto"
)

// DonorSvcFacade defines the donor ledger operations exposed to handlers.
type DonorSvcFacade interface {
	CreateDonor(ctx context.Context, req dto.CreateDonorRequest) (*domain.Donor, error)
	GetDonorByID(ctx context.Context, donorID string) (*domain.Donor, error)
	ListDonors(ctx context.Context, search string, page, limit int) ([]domain.Donor, int64, error)
	ListAllDonors(ctx context.Context) ([]domain.Donor, error)
	UpdateDonor(ctx context.Context, donorID string, req dto.UpdateDonorRequest) (*domain.Donor, error)
	DeleteDonor(ctx context.Context, donorID string) error
}
