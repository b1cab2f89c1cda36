package repositories

import (
	"context"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
)

// DonationRepository defines persistence operations for donation records.
//
// The write methods take the donor adjustments computed by the reconciliation
// protocol and apply them in the same database transaction as the donation
// mutation, so the donation record and the donor aggregates cannot diverge on
// a partial failure.
type DonationRepository interface {
	SaveDonation(ctx context.Context, donation domain.Donation, adjustments []domain.DonorAdjustment) error
	UpdateDonation(ctx context.Context, donation domain.Donation, adjustments []domain.DonorAdjustment) error
	DeleteDonation(ctx context.Context, donationID string, adjustments []domain.DonorAdjustment) error
	// FindDonationByID returns the donation with its donor and payment method
	// expanded. Dangling references are returned with nil expansions.
	FindDonationByID(ctx context.Context, donationID string) (*domain.Donation, error)
	// FindDonations returns a page of donations ordered by date descending with
	// donor and payment method expanded, along with the total count.
	FindDonations(ctx context.Context, limit, offset int) ([]domain.Donation, int64, error)
	// FindRecentDonations returns the latest donations by date with the donor
	// expanded, for the public feed and the dashboard.
	FindRecentDonations(ctx context.Context, limit int) ([]domain.Donation, error)
}
