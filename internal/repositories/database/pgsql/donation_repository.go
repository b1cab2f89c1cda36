package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shantodev/temple_donation_app/internal/apperrors"
	"github.com/shantodev/temple_donation_app/internal/core/domain"
	portsrepo "github.com/shantodev/temple_donation_app/internal/core/ports/repositories"
)

type PgxDonationRepository struct {
	BaseRepository
}

func newPgxDonationRepository(db *pgxpool.Pool) portsrepo.DonationRepository {
	return &PgxDonationRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.DonationRepository = (*PgxDonationRepository)(nil)

// expandedDonationQuery joins the donor and payment method so reads return
// donations with their references resolved. LEFT JOINs keep donations with
// dangling references visible.
const expandedDonationQuery = `
    SELECT
        dn.donation_id, dn.donor_id, dn.amount, dn.payment_method_id,
        dn.transaction_id, dn.date, dn.note, dn.added_by, dn.created_at, dn.updated_at,
        d.donor_id, d.name, d.phone, d.email,
        pm.payment_method_id, pm.name
    FROM donations dn
    LEFT JOIN donors d ON d.donor_id = dn.donor_id
    LEFT JOIN payment_methods pm ON pm.payment_method_id = dn.payment_method_id
`

func scanExpandedDonation(row pgx.Row) (*domain.Donation, error) {
	var dn domain.Donation
	var donorID, donorName, donorPhone *string
	var donorEmail *string
	var methodID, methodName *string

	err := row.Scan(
		&dn.DonationID,
		&dn.DonorID,
		&dn.Amount,
		&dn.PaymentMethodID,
		&dn.TransactionID,
		&dn.Date,
		&dn.Note,
		&dn.AddedBy,
		&dn.CreatedAt,
		&dn.UpdatedAt,
		&donorID,
		&donorName,
		&donorPhone,
		&donorEmail,
		&methodID,
		&methodName,
	)
	if err != nil {
		return nil, err
	}

	if donorID != nil {
		dn.Donor = &domain.Donor{
			DonorID: *donorID,
			Name:    *donorName,
			Phone:   *donorPhone,
			Email:   donorEmail,
		}
	}
	if methodID != nil {
		dn.PaymentMethod = &domain.PaymentMethod{
			PaymentMethodID: *methodID,
			Name:            *methodName,
		}
	}
	return &dn, nil
}

// applyAdjustments applies the reconciliation deltas to the donors table
// within the given transaction. The numeric increment is a single atomic
// UPDATE; the last donation date is only touched when the adjustment sets it.
func applyAdjustments(ctx context.Context, tx pgx.Tx, adjustments []domain.DonorAdjustment) error {
	for _, adj := range adjustments {
		var err error
		if adj.LastDonationDate != nil {
			_, err = tx.Exec(ctx, `
                UPDATE donors
                SET total_donation = total_donation + $1, last_donation_date = $2, updated_at = now()
                WHERE donor_id = $3;
            `, adj.Delta, adj.LastDonationDate, adj.DonorID)
		} else {
			_, err = tx.Exec(ctx, `
                UPDATE donors
                SET total_donation = total_donation + $1, updated_at = now()
                WHERE donor_id = $2;
            `, adj.Delta, adj.DonorID)
		}
		if err != nil {
			return fmt.Errorf("failed to adjust donor %s aggregate: %w", adj.DonorID, err)
		}
	}
	return nil
}

func (r *PgxDonationRepository) SaveDonation(ctx context.Context, donation domain.Donation, adjustments []domain.DonorAdjustment) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		query := `
            INSERT INTO donations (donation_id, donor_id, amount, payment_method_id, transaction_id, date, note, added_by, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
        `
		_, err := tx.Exec(ctx, query,
			donation.DonationID,
			donation.DonorID,
			donation.Amount,
			donation.PaymentMethodID,
			donation.TransactionID,
			donation.Date,
			donation.Note,
			donation.AddedBy,
			donation.CreatedAt,
			donation.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert donation: %w", err)
		}
		return applyAdjustments(ctx, tx, adjustments)
	})
}

func (r *PgxDonationRepository) UpdateDonation(ctx context.Context, donation domain.Donation, adjustments []domain.DonorAdjustment) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		query := `
            UPDATE donations
            SET donor_id = $1, amount = $2, payment_method_id = $3, transaction_id = $4, date = $5, note = $6, updated_at = $7
            WHERE donation_id = $8;
        `
		cmdTag, err := tx.Exec(ctx, query,
			donation.DonorID,
			donation.Amount,
			donation.PaymentMethodID,
			donation.TransactionID,
			donation.Date,
			donation.Note,
			donation.UpdatedAt,
			donation.DonationID,
		)
		if err != nil {
			return fmt.Errorf("failed to update donation: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
		return applyAdjustments(ctx, tx, adjustments)
	})
}

func (r *PgxDonationRepository) DeleteDonation(ctx context.Context, donationID string, adjustments []domain.DonorAdjustment) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `DELETE FROM donations WHERE donation_id = $1;`, donationID)
		if err != nil {
			return fmt.Errorf("failed to delete donation: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
		return applyAdjustments(ctx, tx, adjustments)
	})
}

func (r *PgxDonationRepository) FindDonationByID(ctx context.Context, donationID string) (*domain.Donation, error) {
	query := expandedDonationQuery + ` WHERE dn.donation_id = $1;`
	donation, err := scanExpandedDonation(r.Pool.QueryRow(ctx, query, donationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find donation by ID %s: %w", donationID, err)
	}
	return donation, nil
}

func (r *PgxDonationRepository) FindDonations(ctx context.Context, limit, offset int) ([]domain.Donation, int64, error) {
	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM donations;`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count donations: %w", err)
	}

	query := expandedDonationQuery + ` ORDER BY dn.date DESC LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query donations: %w", err)
	}
	defer rows.Close()

	donations := []domain.Donation{}
	for rows.Next() {
		donation, err := scanExpandedDonation(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan donation row: %w", err)
		}
		donations = append(donations, *donation)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating donation rows: %w", rows.Err())
	}

	return donations, total, nil
}

func (r *PgxDonationRepository) FindRecentDonations(ctx context.Context, limit int) ([]domain.Donation, error) {
	query := expandedDonationQuery + ` ORDER BY dn.date DESC LIMIT $1;`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent donations: %w", err)
	}
	defer rows.Close()

	donations := []domain.Donation{}
	for rows.Next() {
		donation, err := scanExpandedDonation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan donation row: %w", err)
		}
		donations = append(donations, *donation)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating donation rows: %w", rows.Err())
	}

	return donations, nil
}
