package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"homework_tracker/internal/domain"
	"homework_tracker/internal/errdefs"
)

const creditQuery = `
	INSERT INTO user_points (user_id, total_points, updated_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (user_id) DO UPDATE
	SET total_points = user_points.total_points + EXCLUDED.total_points,
		updated_at = EXCLUDED.updated_at
`

// PointsRepository is the durable point ledger. It also answers leaderboard
// queries when no cache is configured.
type PointsRepository struct {
	db *sql.DB
}

func NewPointsRepository(db *sql.DB) *PointsRepository {
	return &PointsRepository{db: db}
}

func (r *PointsRepository) CreditPoints(ctx context.Context, userID uuid.UUID, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: cannot credit negative points", errdefs.ErrValidation)
	}

	if _, err := r.db.ExecContext(ctx, creditQuery, userID, amount, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to credit points: %w", err)
	}
	return nil
}

// CreditReward records the (user, challenge) reward and adds it to the
// balance in one transaction. A reward already recorded is not paid again.
func (r *PointsRepository) CreditReward(ctx context.Context, userID, challengeID uuid.UUID, amount int64) (credited bool, err error) {
	if amount < 0 {
		return false, fmt.Errorf("%w: cannot credit negative points", errdefs.ErrValidation)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil || !credited {
			_ = tx.Rollback()
		}
	}()

	now := time.Now().UTC()
	result, err := tx.ExecContext(ctx, `
		INSERT INTO challenge_rewards (user_id, challenge_id, points, credited_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT DO NOTHING
	`, userID, challengeID, amount, now)
	if err != nil {
		return false, fmt.Errorf("failed to record reward: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	if _, err = tx.ExecContext(ctx, creditQuery, userID, amount, now); err != nil {
		return false, fmt.Errorf("failed to credit points: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit reward: %w", err)
	}
	return true, nil
}

func (r *PointsRepository) GetTotalPoints(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT total_points FROM user_points WHERE user_id = $1`

	var total int64
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&total)
	if err != nil {
		if isNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get points: %w", err)
	}
	return total, nil
}

func (r *PointsRepository) Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	query := `
		SELECT user_id, total_points, RANK() OVER (ORDER BY total_points DESC) AS rank
		FROM user_points
		ORDER BY total_points DESC, user_id
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Points, &e.Rank); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return entries, nil
}

// AllPoints streams every balance to fn, used to warm the leaderboard cache.
func (r *PointsRepository) AllPoints(ctx context.Context, fn func(userID uuid.UUID, points int64) error) error {
	rows, err := r.db.QueryContext(ctx, `SELECT user_id, total_points FROM user_points`)
	if err != nil {
		return fmt.Errorf("failed to query points: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			userID uuid.UUID
			points int64
		)
		if err := rows.Scan(&userID, &points); err != nil {
			return fmt.Errorf("failed to scan points: %w", err)
		}
		if err := fn(userID, points); err != nil {
			return err
		}
	}

	return rows.Err()
}
