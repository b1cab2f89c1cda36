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

type PgxPaymentMethodRepository struct {
	BaseRepository
}

func newPgxPaymentMethodRepository(db *pgxpool.Pool) portsrepo.PaymentMethodRepository {
	return &PgxPaymentMethodRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.PaymentMethodRepository = (*PgxPaymentMethodRepository)(nil)

const paymentMethodColumns = `payment_method_id, name, account_number, type, is_active, created_at, updated_at`

func scanPaymentMethod(row pgx.Row) (*domain.PaymentMethod, error) {
	var m domain.PaymentMethod
	err := row.Scan(
		&m.PaymentMethodID,
		&m.Name,
		&m.AccountNumber,
		&m.Type,
		&m.IsActive,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxPaymentMethodRepository) SavePaymentMethod(ctx context.Context, method domain.PaymentMethod) error {
	query := `
        INSERT INTO payment_methods (payment_method_id, name, account_number, type, is_active, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.Pool.Exec(ctx, query,
		method.PaymentMethodID,
		method.Name,
		method.AccountNumber,
		method.Type,
		method.IsActive,
		method.CreatedAt,
		method.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment method: %w", err)
	}
	return nil
}

func (r *PgxPaymentMethodRepository) FindPaymentMethodByID(ctx context.Context, methodID string) (*domain.PaymentMethod, error) {
	query := `SELECT ` + paymentMethodColumns + ` FROM payment_methods WHERE payment_method_id = $1;`
	method, err := scanPaymentMethod(r.Pool.QueryRow(ctx, query, methodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment method by ID %s: %w", methodID, err)
	}
	return method, nil
}

func (r *PgxPaymentMethodRepository) FindPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	return r.queryPaymentMethods(ctx, `SELECT `+paymentMethodColumns+` FROM payment_methods ORDER BY created_at DESC;`)
}

func (r *PgxPaymentMethodRepository) FindActivePaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	return r.queryPaymentMethods(ctx, `SELECT `+paymentMethodColumns+` FROM payment_methods WHERE is_active ORDER BY created_at DESC;`)
}

func (r *PgxPaymentMethodRepository) queryPaymentMethods(ctx context.Context, query string) ([]domain.PaymentMethod, error) {
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment methods: %w", err)
	}
	defer rows.Close()

	methods := []domain.PaymentMethod{}
	for rows.Next() {
		method, err := scanPaymentMethod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment method row: %w", err)
		}
		methods = append(methods, *method)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payment method rows: %w", rows.Err())
	}

	return methods, nil
}

func (r *PgxPaymentMethodRepository) UpdatePaymentMethod(ctx context.Context, method domain.PaymentMethod) error {
	query := `
        UPDATE payment_methods
        SET name = $1, account_number = $2, type = $3, is_active = $4, updated_at = $5
        WHERE payment_method_id = $6;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		method.Name,
		method.AccountNumber,
		method.Type,
		method.IsActive,
		method.UpdatedAt,
		method.PaymentMethodID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment method: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPaymentMethodRepository) DeletePaymentMethod(ctx context.Context, methodID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM payment_methods WHERE payment_method_id = $1;`, methodID)
	if err != nil {
		return fmt.Errorf("failed to delete payment method: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
