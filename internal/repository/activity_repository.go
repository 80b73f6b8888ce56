package repository

import (
	"context"
	"event-ticketing/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ActivityRepository interface {
	Create(ctx context.Context, entry *model.ActivityLog) (*model.ActivityLog, error)
	ListByUserID(ctx context.Context, userID int) ([]*model.ActivityLog, error)
}

type ActivityRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewActivityRepository(pool *pgxpool.Pool) ActivityRepository {
	return &ActivityRepositoryImpl{
		pool: pool,
	}
}

func (r *ActivityRepositoryImpl) Create(ctx context.Context, entry *model.ActivityLog) (*model.ActivityLog, error) {
	query := `
		INSERT INTO activity_logs (user_id, action, description, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		entry.UserID, entry.Action, entry.Description, entry.IPAddress, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *ActivityRepositoryImpl) ListByUserID(ctx context.Context, userID int) ([]*model.ActivityLog, error) {
	query := `
		SELECT id, user_id, action, description, COALESCE(ip_address, ''), created_at
		FROM activity_logs
		WHERE user_id = $1
		ORDER BY id ASC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*model.ActivityLog, 0)
	for rows.Next() {
		var entry model.ActivityLog
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Action,
			&entry.Description,
			&entry.IPAddress,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
