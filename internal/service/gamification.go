package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"homework_tracker/internal/domain"
	"homework_tracker/internal/errdefs"
	"homework_tracker/pkg/keylock"
	"homework_tracker/pkg/logger"
	"homework_tracker/pkg/retry"
)

const (
	applyAttempts = 3
	applyBackoff  = 10 * time.Millisecond
)

type progressKey struct {
	userID      uuid.UUID
	challengeID uuid.UUID
}

type GamificationEngine struct {
	challenges  ChallengeStore
	ledger      PointLedger
	leaderboard Leaderboard
	levels      domain.LevelTable
	locks       *keylock.Map[progressKey]
	logger      *logger.Logger
}

func NewGamificationEngine(
	challenges ChallengeStore,
	ledger PointLedger,
	leaderboard Leaderboard,
	levels domain.LevelTable,
	log *logger.Logger,
) *GamificationEngine {
	return &GamificationEngine{
		challenges:  challenges,
		ledger:      ledger,
		leaderboard: leaderboard,
		levels:      levels,
		locks:       keylock.New[progressKey](),
		logger:      log,
	}
}

// OnSubmissionEvent advances every active challenge the event qualifies
// for. Replaying an event is a no-op. Failures on one challenge do not stop
// the others; they are returned together.
func (e *GamificationEngine) OnSubmissionEvent(ctx context.Context, userID uuid.UUID, event domain.SubmissionEvent) error {
	if !event.Kind.IsValid() {
		return fmt.Errorf("%w: unknown event kind %q", errdefs.ErrValidation, event.Kind)
	}
	if event.ID == uuid.Nil {
		return fmt.Errorf("%w: event id is required", errdefs.ErrValidation)
	}

	var errs error
	for _, challengeType := range event.Kind.ChallengeTypes() {
		challenges, err := e.challenges.ListActiveChallenges(ctx, challengeType, event.OccurredAt)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("list %s challenges: %w", challengeType, err))
			continue
		}

		for _, challenge := range challenges {
			if !challenge.ActiveAt(event.OccurredAt) {
				continue
			}
			// a version conflict means another instance moved the progress; re-read and retry
			err := retry.Do(ctx, applyAttempts, applyBackoff, errdefs.IsRetryable, func() error {
				return e.apply(ctx, userID, challenge, event)
			})
			switch {
			case err == nil:
			case errors.Is(err, errdefs.ErrAlreadyApplied), errors.Is(err, errdefs.ErrInvalidState):
				e.logger.DebugContext(ctx, "challenge event ignored",
					zap.String("challenge_id", challenge.ID.String()),
					zap.String("event_id", event.ID.String()),
					zap.String("reason", err.Error()),
				)
			default:
				errs = multierr.Append(errs, fmt.Errorf("challenge %s: %w", challenge.ID, err))
			}
		}
	}

	return errs
}

func (e *GamificationEngine) apply(
	ctx context.Context,
	userID uuid.UUID,
	challenge *domain.Challenge,
	event domain.SubmissionEvent,
) error {
	unlock, err := e.locks.LockContext(ctx, progressKey{userID: userID, challengeID: challenge.ID})
	if err != nil {
		return fmt.Errorf("wait for progress lock: %w", err)
	}
	defer unlock()

	progress, err := e.challenges.GetProgress(ctx, userID, challenge.ID)
	if err != nil {
		return fmt.Errorf("get progress: %w", err)
	}
	if progress.Completed {
		// completed earlier; a failed credit is retried here, a paid one is the latch
		credited, err := e.reward(ctx, userID, challenge)
		if err != nil {
			return err
		}
		if !credited {
			return fmt.Errorf("%w: challenge already completed", errdefs.ErrInvalidState)
		}
		return nil
	}

	delta := challenge.Increment(progress, event)
	if delta == 0 {
		return nil
	}

	completedNow := progress.Advance(delta, challenge.Target, event.OccurredAt)

	if err := e.challenges.UpdateProgress(ctx, progress, event.ID); err != nil {
		return fmt.Errorf("update progress: %w", err)
	}

	if !completedNow {
		return nil
	}
	_, err = e.reward(ctx, userID, challenge)
	return err
}

// reward pays the challenge's points. The ledger keys the credit by
// (user, challenge), so it runs at most once however often it is attempted.
func (e *GamificationEngine) reward(ctx context.Context, userID uuid.UUID, challenge *domain.Challenge) (bool, error) {
	if challenge.PointsReward <= 0 {
		return false, nil
	}

	credited, err := e.ledger.CreditReward(ctx, userID, challenge.ID, challenge.PointsReward)
	if err != nil {
		return false, fmt.Errorf("credit %d points: %w", challenge.PointsReward, err)
	}
	if credited {
		e.logger.InfoContext(ctx, "challenge reward credited",
			zap.String("user_id", userID.String()),
			zap.String("challenge_id", challenge.ID.String()),
			zap.Int64("points", challenge.PointsReward),
		)
	}
	return credited, nil
}

func (e *GamificationEngine) ResolveLevel(totalPoints int64) int {
	return e.levels.Resolve(totalPoints)
}

func (e *GamificationEngine) CompletionPercentage(progress, target int) float64 {
	return domain.CompletionPercentage(progress, target)
}

func (e *GamificationEngine) UserLevel(ctx context.Context, userID uuid.UUID) (*domain.LevelStatus, error) {
	points, err := e.ledger.GetTotalPoints(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get points: %w", err)
	}

	status := &domain.LevelStatus{
		UserID:     userID,
		Points:     points,
		Level:      e.levels.Resolve(points),
		Percentage: 100.0,
	}
	if next, ok := e.levels.Next(points); ok {
		status.NextLevel = &next
		status.ToNext = next.PointsRequired - points
		floor := e.levels.Floor(points)
		status.Percentage = domain.CompletionPercentage(int(points-floor), int(next.PointsRequired-floor))
	}
	return status, nil
}

func (e *GamificationEngine) ChallengeProgress(ctx context.Context, userID uuid.UUID, challenge *domain.Challenge) (*domain.ChallengeProgress, float64, error) {
	progress, err := e.challenges.GetProgress(ctx, userID, challenge.ID)
	if err != nil {
		return nil, 0, fmt.Errorf("get progress: %w", err)
	}
	return progress, domain.CompletionPercentage(progress.Progress, challenge.Target), nil
}

func (e *GamificationEngine) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if e.leaderboard == nil {
		return nil, nil
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", errdefs.ErrValidation)
	}
	return e.leaderboard.Top(ctx, limit)
}
