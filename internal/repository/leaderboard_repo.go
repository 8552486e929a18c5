package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"critiquelab/internal/domain"
)

// LeaderboardRepository agrega puntuaciones publicadas por dispositivos.
type LeaderboardRepository interface {
	// SubmitScore registra el total de un argumento puntuado.
	SubmitScore(ctx context.Context, deviceID, displayName string, totalScore int, createdAt time.Time) error
	// Top devuelve las mejores entradas agregadas por dispositivo.
	Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

type PgLeaderboardRepository struct {
	pool *pgxpool.Pool
}

func NewPgLeaderboardRepository(pool *pgxpool.Pool) *PgLeaderboardRepository {
	return &PgLeaderboardRepository{pool: pool}
}

func (r *PgLeaderboardRepository) SubmitScore(ctx context.Context, deviceID, displayName string, totalScore int, createdAt time.Time) error {
	const query = `
		INSERT INTO argument_scores (id, device_id, display_name, total_score, created_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4)
	`

	var name interface{}
	if displayName != "" {
		name = displayName
	}

	_, err := r.pool.Exec(ctx, query, deviceID, name, totalScore, createdAt)
	return err
}

func (r *PgLeaderboardRepository) Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 20
	}

	const query = `
		SELECT device_id,
		       COALESCE(MAX(display_name), ''),
		       MAX(total_score),
		       AVG(total_score),
		       COUNT(*),
		       MAX(created_at)
		FROM argument_scores
		GROUP BY device_id
		ORDER BY MAX(total_score) DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(
			&e.UserID,
			&e.DisplayName,
			&e.HighestScore,
			&e.AvgScore,
			&e.TotalArguments,
			&e.LastActive,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
