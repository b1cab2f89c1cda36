package services

import (
	"context"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
	"github.com/shantodev/temple_donation_app/internal/dto"
)

// DonationSvcFacade defines the donation record operations exposed to handlers.
// Create requires an authenticated actor in the context; Delete additionally
// requires a privileged role.
type DonationSvcFacade interface {
	CreateDonation(ctx context.Context, req dto.CreateDonationRequest) (*domain.Donation, error)
	GetDonationByID(ctx context.Context, donationID string) (*domain.Donation, error)
	ListDonations(ctx context.Context, page, limit int) ([]domain.Donation, int64, error)
	ListRecentDonations(ctx context.Context, limit int) ([]domain.Donation, error)
	UpdateDonation(ctx context.Context, donationID string, req dto.UpdateDonationRequest) (*domain.Donation, error)
	DeleteDonation(ctx context.Context, donationID string) error
}
