package repositories

import (
	"context"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
)

// DonorRepository defines persistence operations for donor records.
type DonorRepository interface {
	// SaveDonor inserts a new donor. Returns apperrors.ErrDuplicate when the
	// phone number is already registered.
	SaveDonor(ctx context.Context, donor domain.Donor) error
	FindDonorByID(ctx context.Context, donorID string) (*domain.Donor, error)
	// FindDonors returns a page of donors ordered by creation time descending,
	// optionally filtered by a case-insensitive search over name/phone/email,
	// along with the total number of matches.
	FindDonors(ctx context.Context, search string, limit, offset int) ([]domain.Donor, int64, error)
	// FindAllDonors returns every donor with identity fields only, ordered by
	// name, for dropdown listings.
	FindAllDonors(ctx context.Context) ([]domain.Donor, error)
	UpdateDonor(ctx context.Context, donor domain.Donor) error
	// DeleteDonor removes the donor unconditionally. Donations referencing it
	// are left orphaned; there is no cascade.
	DeleteDonor(ctx context.Context, donorID string) error
}
