package services

import (
	"context"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
)

// ActivitySvcFacade defines the best-effort audit trail.
//
// Record resolves the acting admin from the context; when no admin is
// authenticated the call is an explicit no-op, and write failures are logged
// but never propagated, so auditing can never block the primary action.
type ActivitySvcFacade interface {
	Record(ctx context.Context, action domain.ActivityAction, target, details string)
	ListLogs(ctx context.Context, search string, page, limit int) ([]domain.ActivityLog, int64, error)
}
