package repositories

import (
	"context"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
)

// ActivityLogRepository defines persistence operations for the append-only
// audit trail. There are deliberately no update or delete operations.
type ActivityLogRepository interface {
	AppendLog(ctx context.Context, entry domain.ActivityLog) error
	// FindLogs returns a page of entries newest first, optionally filtered by a
	// case-insensitive search over action/target/details, along with the total
	// number of matches.
	FindLogs(ctx context.Context, search string, limit, offset int) ([]domain.ActivityLog, int64, error)
}
