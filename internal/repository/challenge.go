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

type ChallengeRepository struct {
	db *sql.DB
}

func NewChallengeRepository(db *sql.DB) *ChallengeRepository {
	return &ChallengeRepository{db: db}
}

func (r *ChallengeRepository) Create(ctx context.Context, c *domain.Challenge) error {
	query := `
		INSERT INTO challenges (id, type, title, target, points_reward, start_date, end_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Type, c.Title, c.Target, c.PointsReward, c.StartDate.UTC(), c.EndDate.UTC(), c.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create challenge: %w", handleError(err))
	}
	return nil
}

// Upsert writes the challenge definition, replacing an existing one with the
// same id. Progress rows are left alone.
func (r *ChallengeRepository) Upsert(ctx context.Context, c *domain.Challenge) error {
	query := `
		INSERT INTO challenges (id, type, title, target, points_reward, start_date, end_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			type = EXCLUDED.type,
			title = EXCLUDED.title,
			target = EXCLUDED.target,
			points_reward = EXCLUDED.points_reward,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			is_active = EXCLUDED.is_active
	`

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Type, c.Title, c.Target, c.PointsReward, c.StartDate.UTC(), c.EndDate.UTC(), c.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert challenge: %w", err)
	}
	return nil
}

func (r *ChallengeRepository) ListActiveChallenges(ctx context.Context, challengeType domain.ChallengeType, now time.Time) ([]*domain.Challenge, error) {
	query := `
		SELECT id, type, title, target, points_reward, start_date, end_date, is_active
		FROM challenges
		WHERE type = $1 AND is_active AND start_date <= $2 AND end_date > $2
	`

	rows, err := r.db.QueryContext(ctx, query, challengeType, now.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to query challenges: %w", err)
	}
	defer rows.Close()

	var challenges []*domain.Challenge
	for rows.Next() {
		var c domain.Challenge
		if err := rows.Scan(&c.ID, &c.Type, &c.Title, &c.Target, &c.PointsReward, &c.StartDate, &c.EndDate, &c.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan challenge: %w", err)
		}
		challenges = append(challenges, &c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return challenges, nil
}

func (r *ChallengeRepository) GetProgress(ctx context.Context, userID, challengeID uuid.UUID) (*domain.ChallengeProgress, error) {
	query := `
		SELECT progress, completed, completed_at, last_activity_at, version
		FROM challenge_progress
		WHERE user_id = $1 AND challenge_id = $2
	`

	p := domain.ChallengeProgress{UserID: userID, ChallengeID: challengeID}
	err := r.db.QueryRowContext(ctx, query, userID, challengeID).Scan(
		&p.Progress,
		&p.Completed,
		&p.CompletedAt,
		&p.LastActivityAt,
		&p.Version,
	)
	if err != nil {
		if isNotFound(err) {
			return &p, nil
		}
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	return &p, nil
}

// UpdateProgress records eventID and writes progress in one transaction.
// A duplicate event id yields ErrAlreadyApplied, a stale version
// ErrConcurrencyConflict.
func (r *ChallengeRepository) UpdateProgress(ctx context.Context, p *domain.ChallengeProgress, eventID uuid.UUID) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO challenge_events (user_id, challenge_id, event_id)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING
	`, p.UserID, p.ChallengeID, eventID)
	if err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	} else if n == 0 {
		return errdefs.ErrAlreadyApplied
	}

	if p.Version == 0 {
		result, err = tx.ExecContext(ctx, `
			INSERT INTO challenge_progress (user_id, challenge_id, progress, completed, completed_at, last_activity_at, version)
			VALUES ($1, $2, $3, $4, $5, $6, 1)
			ON CONFLICT (user_id, challenge_id) DO NOTHING
		`, p.UserID, p.ChallengeID, p.Progress, p.Completed, p.CompletedAt, p.LastActivityAt)
	} else {
		result, err = tx.ExecContext(ctx, `
			UPDATE challenge_progress
			SET progress = $1, completed = $2, completed_at = $3, last_activity_at = $4, version = version + 1
			WHERE user_id = $5 AND challenge_id = $6 AND version = $7
		`, p.Progress, p.Completed, p.CompletedAt, p.LastActivityAt, p.UserID, p.ChallengeID, p.Version)
	}
	if err != nil {
		return fmt.Errorf("failed to write progress: %w", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	} else if n == 0 {
		return errdefs.ErrConcurrencyConflict
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit progress: %w", err)
	}

	p.Version++
	return nil
}
