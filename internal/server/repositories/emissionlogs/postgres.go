// Package emissionlogs provides PostgreSQL-backed storage for per-user
// emission logs.
package emissionlogs

import (
	"context"
	"fmt"

	"github.com/ecopulse/ecopulse/internal/dbx"
	"github.com/ecopulse/ecopulse/internal/server/models"
)

// PostgresRepository implements log storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a single log row. The caller assigns ID and CreatedAt.
func (r *PostgresRepository) Create(ctx context.Context, log *models.EmissionLog) (*models.EmissionLog, error) {
	query := `
		INSERT INTO emission_logs (id, user_id, category, type, amount, co2, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		log.ID, log.UserID, log.Category, log.Type, log.Amount, log.CO2, log.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return log, nil
}

// ListByUser returns every log owned by userID, newest first. The result is
// never nil.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.EmissionLog, error) {
	query := `
		SELECT id, user_id, category, type, amount, co2, created_at FROM emission_logs
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select emission logs: %w", err)
	}
	defer rows.Close()

	result := make([]*models.EmissionLog, 0)
	for rows.Next() {
		var item models.EmissionLog
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Category, &item.Type,
			&item.Amount, &item.CO2, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
