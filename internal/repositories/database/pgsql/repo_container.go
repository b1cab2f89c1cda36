package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/shantodev/temple_donation_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all PostgreSQL repositories onto a shared pool.
func NewRepositoryProvider(db *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		DonorRepo:         newPgxDonorRepository(db),
		DonationRepo:      newPgxDonationRepository(db),
		PaymentMethodRepo: newPgxPaymentMethodRepository(db),
		UserRepo:          newPgxUserRepository(db),
		ActivityLogRepo:   newPgxActivityLogRepository(db),
		ReportingRepo:     newPgxReportingRepository(db),
	}
}
