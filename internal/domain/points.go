package domain

import "github.com/google/uuid"

type LeaderboardEntry struct {
	UserID uuid.UUID
	Points int64
	Rank   int64
}

// LevelStatus.Percentage is progress through the current level band,
// 100 at the top level.
type LevelStatus struct {
	UserID     uuid.UUID
	Points     int64
	Level      int
	NextLevel  *Level
	ToNext     int64
	Percentage float64
}
