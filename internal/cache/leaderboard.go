package cache

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"homework_tracker/internal/domain"
	"homework_tracker/pkg/logger"
)

const defaultKey = "homework:leaderboard:points"

// Ledger is the durable point store the cache sits in front of.
type Ledger interface {
	CreditPoints(ctx context.Context, userID uuid.UUID, amount int64) error
	CreditReward(ctx context.Context, userID, challengeID uuid.UUID, amount int64) (bool, error)
	GetTotalPoints(ctx context.Context, userID uuid.UUID) (int64, error)
	Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

// Leaderboard mirrors point balances into a Redis sorted set. The ledger
// stays the source of truth; cache errors are logged and reads fall back
// to the ledger.
type Leaderboard struct {
	rdb    *redis.Client
	ledger Ledger
	key    string
	logger *logger.Logger
}

func NewLeaderboard(rdb *redis.Client, ledger Ledger, key string, log *logger.Logger) *Leaderboard {
	if key == "" {
		key = defaultKey
	}
	return &Leaderboard{rdb: rdb, ledger: ledger, key: key, logger: log}
}

func (l *Leaderboard) CreditPoints(ctx context.Context, userID uuid.UUID, amount int64) error {
	if err := l.ledger.CreditPoints(ctx, userID, amount); err != nil {
		return err
	}

	l.mirror(ctx, userID, amount)
	return nil
}

// CreditReward mirrors the amount into the cache only when the ledger
// actually paid it.
func (l *Leaderboard) CreditReward(ctx context.Context, userID, challengeID uuid.UUID, amount int64) (bool, error) {
	credited, err := l.ledger.CreditReward(ctx, userID, challengeID, amount)
	if err != nil || !credited {
		return credited, err
	}

	l.mirror(ctx, userID, amount)
	return true, nil
}

func (l *Leaderboard) mirror(ctx context.Context, userID uuid.UUID, amount int64) {
	if err := l.rdb.ZIncrBy(ctx, l.key, float64(amount), userID.String()).Err(); err != nil {
		l.logger.WarnContext(ctx, "leaderboard cache update failed",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
	}
}

func (l *Leaderboard) GetTotalPoints(ctx context.Context, userID uuid.UUID) (int64, error) {
	return l.ledger.GetTotalPoints(ctx, userID)
}

func (l *Leaderboard) Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	members, err := l.rdb.ZRevRangeWithScores(ctx, l.key, 0, int64(limit-1)).Result()
	if err != nil || len(members) == 0 {
		if err != nil {
			l.logger.WarnContext(ctx, "leaderboard cache read failed, using ledger", zap.Error(err))
		}
		return l.ledger.Top(ctx, limit)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(members))
	for _, m := range members {
		raw, ok := m.Member.(string)
		if !ok {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		entries = append(entries, domain.LeaderboardEntry{UserID: id, Points: int64(m.Score)})
	}
	return rank(entries), nil
}

// Warm replaces the sorted set with the balances yielded by each.
func (l *Leaderboard) Warm(ctx context.Context, each func(ctx context.Context, fn func(uuid.UUID, int64) error) error) error {
	var members []redis.Z
	err := each(ctx, func(userID uuid.UUID, points int64) error {
		members = append(members, redis.Z{Score: float64(points), Member: userID.String()})
		return nil
	})
	if err != nil {
		return fmt.Errorf("load balances: %w", err)
	}

	pipe := l.rdb.TxPipeline()
	pipe.Del(ctx, l.key)
	if len(members) > 0 {
		pipe.ZAdd(ctx, l.key, members...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("warm leaderboard: %w", err)
	}
	return nil
}

// rank assigns competition ranks to entries sorted by points descending:
// equal points share a rank and the next rank skips accordingly.
func rank(entries []domain.LeaderboardEntry) []domain.LeaderboardEntry {
	for i := range entries {
		if i > 0 && entries[i].Points == entries[i-1].Points {
			entries[i].Rank = entries[i-1].Rank
			continue
		}
		entries[i].Rank = int64(i + 1)
	}
	return entries
}
