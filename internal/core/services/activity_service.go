package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
	portsrepo "github.com/shantodev/temple_donation_app/internal/core/ports/repositories"
	portssvc "github.com/shantodev/temple_donation_app/internal/core/ports/services"
	"github.com/shantodev/temple_donation_app/internal/middleware"
	"github.com/shantodev/temple_donation_app/internal/utils/pagination"
)

// activityService records and lists the administrative audit trail.
type activityService struct {
	BaseService
	logRepo portsrepo.ActivityLogRepository
}

// NewActivityService creates a new activity audit service.
func NewActivityService(logRepo portsrepo.ActivityLogRepository) portssvc.ActivitySvcFacade {
	return &activityService{logRepo: logRepo}
}

var _ portssvc.ActivitySvcFacade = (*activityService)(nil)

// Record appends one audit entry attributed to the admin resolved from the
// context. Auditing is best-effort: when no admin is authenticated this is an
// explicit no-op, and a failed write is logged without propagating, so the
// primary action is never blocked.
func (s *activityService) Record(ctx context.Context, action domain.ActivityAction, target, details string) {
	actor, ok := middleware.GetAuthUserFromCtx(ctx)
	if !ok {
		s.LogDebug(ctx, "Skipping audit entry, no authenticated admin in context",
			slog.String("action", string(action)),
			slog.String("target", target))
		return
	}

	entry := domain.ActivityLog{
		LogID:     uuid.NewString(),
		AdminID:   actor.UserID,
		AdminName: actor.Name,
		Action:    action,
		Target:    target,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}

	if err := s.logRepo.AppendLog(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to append audit entry",
			slog.String("action", string(action)),
			slog.String("target", target))
	}
}

// ListLogs returns a page of audit entries newest first, optionally filtered
// by a search over action/target/details.
func (s *activityService) ListLogs(ctx context.Context, search string, page, limit int) ([]domain.ActivityLog, int64, error) {
	page, limit = pagination.Normalize(page, limit)
	return s.logRepo.FindLogs(ctx, search, limit, pagination.Offset(page, limit))
}
