package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
	portsrepo "github.com/shantodev/temple_donation_app/internal/core/ports/repositories"
)

type PgxActivityLogRepository struct {
	BaseRepository
}

func newPgxActivityLogRepository(db *pgxpool.Pool) portsrepo.ActivityLogRepository {
	return &PgxActivityLogRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ActivityLogRepository = (*PgxActivityLogRepository)(nil)

func (r *PgxActivityLogRepository) AppendLog(ctx context.Context, entry domain.ActivityLog) error {
	query := `
        INSERT INTO activity_logs (log_id, admin_id, admin_name, action, target, details, timestamp)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.Pool.Exec(ctx, query,
		entry.LogID,
		entry.AdminID,
		entry.AdminName,
		entry.Action,
		entry.Target,
		entry.Details,
		entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to append activity log: %w", err)
	}
	return nil
}

func (r *PgxActivityLogRepository) FindLogs(ctx context.Context, search string, limit, offset int) ([]domain.ActivityLog, int64, error) {
	where := ``
	args := []any{}
	if search != "" {
		where = `WHERE action ILIKE $1 OR target ILIKE $1 OR details ILIKE $1 OR admin_name ILIKE $1`
		args = append(args, "%"+search+"%")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM activity_logs ` + where + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count activity logs: %w", err)
	}

	query := fmt.Sprintf(`
        SELECT log_id, admin_id, admin_name, action, target, details, timestamp
        FROM activity_logs %s
        ORDER BY timestamp DESC
        LIMIT $%d OFFSET $%d;
    `, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query activity logs: %w", err)
	}
	defer rows.Close()

	logs := []domain.ActivityLog{}
	for rows.Next() {
		var l domain.ActivityLog
		err := rows.Scan(&l.LogID, &l.AdminID, &l.AdminName, &l.Action, &l.Target, &l.Details, &l.Timestamp)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan activity log row: %w", err)
		}
		logs = append(logs, l)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating activity log rows: %w", rows.Err())
	}

	return logs, total, nil
}
