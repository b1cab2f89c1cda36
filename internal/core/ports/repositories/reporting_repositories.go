package repositories

import (
	"context"
	"time"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines the read-side aggregation queries backing the
// admin dashboard. All sums are computed from donation records, not from the
// denormalized donor totals.
type ReportingRepository interface {
	GetTotalFunds(ctx context.Context) (decimal.Decimal, error)
	CountDonors(ctx context.Context) (int64, error)
	FindBestDonor(ctx context.Context) (*domain.Donor, error)
	GetCollectionSince(ctx context.Context, since time.Time) (decimal.Decimal, error)
	GetMonthlyTotals(ctx context.Context, from time.Time) ([]domain.MonthlyTotal, error)
}
