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

type PgxDonorRepository struct {
	BaseRepository
}

func newPgxDonorRepository(db *pgxpool.Pool) portsrepo.DonorRepository {
	return &PgxDonorRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.DonorRepository = (*PgxDonorRepository)(nil)

const donorColumns = `donor_id, name, phone, email, address, occupation, total_donation, last_donation_date, created_at, updated_at`

func scanDonor(row pgx.Row) (*domain.Donor, error) {
	var d domain.Donor
	err := row.Scan(
		&d.DonorID,
		&d.Name,
		&d.Phone,
		&d.Email,
		&d.Address,
		&d.Occupation,
		&d.TotalDonation,
		&d.LastDonationDate,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PgxDonorRepository) SaveDonor(ctx context.Context, donor domain.Donor) error {
	query := `
        INSERT INTO donors (donor_id, name, phone, email, address, occupation, total_donation, last_donation_date, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.Pool.Exec(ctx, query,
		donor.DonorID,
		donor.Name,
		donor.Phone,
		donor.Email,
		donor.Address,
		donor.Occupation,
		donor.TotalDonation,
		donor.LastDonationDate,
		donor.CreatedAt,
		donor.UpdatedAt,
	)
	if err != nil {
		err = mapUniqueViolation(err)
		if errors.Is(err, apperrors.ErrDuplicate) {
			return err
		}
		return fmt.Errorf("failed to save donor: %w", err)
	}
	return nil
}

func (r *PgxDonorRepository) FindDonorByID(ctx context.Context, donorID string) (*domain.Donor, error) {
	query := `SELECT ` + donorColumns + ` FROM donors WHERE donor_id = $1;`
	donor, err := scanDonor(r.Pool.QueryRow(ctx, query, donorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find donor by ID %s: %w", donorID, err)
	}
	return donor, nil
}

func (r *PgxDonorRepository) FindDonors(ctx context.Context, search string, limit, offset int) ([]domain.Donor, int64, error) {
	where := ``
	args := []any{}
	if search != "" {
		where = `WHERE name ILIKE $1 OR phone ILIKE $1 OR email ILIKE $1`
		args = append(args, "%"+search+"%")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM donors ` + where + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count donors: %w", err)
	}

	query := fmt.Sprintf(`
        SELECT `+donorColumns+`
        FROM donors %s
        ORDER BY created_at DESC
        LIMIT $%d OFFSET $%d;
    `, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query donors: %w", err)
	}
	defer rows.Close()

	donors := []domain.Donor{}
	for rows.Next() {
		donor, err := scanDonor(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan donor row: %w", err)
		}
		donors = append(donors, *donor)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating donor rows: %w", rows.Err())
	}

	return donors, total, nil
}

func (r *PgxDonorRepository) FindAllDonors(ctx context.Context) ([]domain.Donor, error) {
	// Identity fields only, for dropdown listings.
	query := `SELECT donor_id, name, phone, email FROM donors ORDER BY name ASC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query all donors: %w", err)
	}
	defer rows.Close()

	donors := []domain.Donor{}
	for rows.Next() {
		var d domain.Donor
		if err := rows.Scan(&d.DonorID, &d.Name, &d.Phone, &d.Email); err != nil {
			return nil, fmt.Errorf("failed to scan donor row: %w", err)
		}
		donors = append(donors, d)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating donor rows: %w", rows.Err())
	}

	return donors, nil
}

func (r *PgxDonorRepository) UpdateDonor(ctx context.Context, donor domain.Donor) error {
	query := `
        UPDATE donors
        SET name = $1, phone = $2, email = $3, address = $4, occupation = $5, updated_at = $6
        WHERE donor_id = $7;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		donor.Name,
		donor.Phone,
		donor.Email,
		donor.Address,
		donor.Occupation,
		donor.UpdatedAt,
		donor.DonorID,
	)
	if err != nil {
		err = mapUniqueViolation(err)
		if errors.Is(err, apperrors.ErrDuplicate) {
			return err
		}
		return fmt.Errorf("failed to update donor: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDonorRepository) DeleteDonor(ctx context.Context, donorID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM donors WHERE donor_id = $1;`, donorID)
	if err != nil {
		return fmt.Errorf("failed to delete donor: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
