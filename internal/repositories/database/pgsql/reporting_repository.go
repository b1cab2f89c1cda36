package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
	portsrepo "github.com/shantodev/temple_donation_app/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

func (r *PgxReportingRepository) GetTotalFunds(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM donations;`
	if err := r.Pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum total funds: %w", err)
	}
	return total, nil
}

func (r *PgxReportingRepository) CountDonors(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM donors;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count donors: %w", err)
	}
	return count, nil
}

func (r *PgxReportingRepository) FindBestDonor(ctx context.Context) (*domain.Donor, error) {
	query := `SELECT ` + donorColumns + ` FROM donors ORDER BY total_donation DESC LIMIT 1;`
	donor, err := scanDonor(r.Pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find best donor: %w", err)
	}
	return donor, nil
}

func (r *PgxReportingRepository) GetCollectionSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM donations WHERE date >= $1;`
	if err := r.Pool.QueryRow(ctx, query, since).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum collection since %s: %w", since.Format(time.RFC3339), err)
	}
	return total, nil
}

func (r *PgxReportingRepository) GetMonthlyTotals(ctx context.Context, from time.Time) ([]domain.MonthlyTotal, error) {
	query := `
        SELECT
            EXTRACT(YEAR FROM date_trunc('month', date))::int,
            EXTRACT(MONTH FROM date_trunc('month', date))::int,
            COALESCE(SUM(amount), 0)
        FROM donations
        WHERE date >= $1
        GROUP BY date_trunc('month', date)
        ORDER BY date_trunc('month', date) ASC;
    `
	rows, err := r.Pool.Query(ctx, query, from)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly totals: %w", err)
	}
	defer rows.Close()

	totals := []domain.MonthlyTotal{}
	for rows.Next() {
		var t domain.MonthlyTotal
		var month int
		if err := rows.Scan(&t.Year, &month, &t.Total); err != nil {
			return nil, fmt.Errorf("failed to scan monthly total row: %w", err)
		}
		t.Month = time.Month(month)
		totals = append(totals, t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating monthly total rows: %w", rows.Err())
	}

	return totals, nil
}
