package domain

import (
	"errors"
	"fmt"
	"sort"
)

const BaseLevel = 1

var ErrInvalidLevelTable = errors.New("invalid level table")

type Level struct {
	Number         int   `yaml:"number"`
	PointsRequired int64 `yaml:"points_required"`
}

// LevelTable is sorted by PointsRequired, strictly increasing.
type LevelTable struct {
	levels []Level
}

func NewLevelTable(levels []Level) (LevelTable, error) {
	if len(levels) == 0 {
		return LevelTable{}, fmt.Errorf("%w: empty", ErrInvalidLevelTable)
	}

	sorted := make([]Level, len(levels))
	copy(sorted, levels)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].PointsRequired < sorted[j].PointsRequired
	})

	for i := range sorted {
		if sorted[i].PointsRequired < 0 {
			return LevelTable{}, fmt.Errorf("%w: negative threshold for level %d", ErrInvalidLevelTable, sorted[i].Number)
		}
		if i == 0 {
			continue
		}
		if sorted[i].PointsRequired == sorted[i-1].PointsRequired {
			return LevelTable{}, fmt.Errorf("%w: duplicate threshold %d", ErrInvalidLevelTable, sorted[i].PointsRequired)
		}
		if sorted[i].Number <= sorted[i-1].Number {
			return LevelTable{}, fmt.Errorf("%w: level %d out of order", ErrInvalidLevelTable, sorted[i].Number)
		}
	}

	return LevelTable{levels: sorted}, nil
}

func DefaultLevelTable() LevelTable {
	return LevelTable{levels: []Level{
		{Number: 1, PointsRequired: 0},
		{Number: 2, PointsRequired: 100},
		{Number: 3, PointsRequired: 500},
		{Number: 4, PointsRequired: 1500},
		{Number: 5, PointsRequired: 5000},
	}}
}

// Resolve returns the greatest level whose threshold is <= points, or
// BaseLevel when points is below every threshold.
func (t LevelTable) Resolve(points int64) int {
	i := sort.Search(len(t.levels), func(i int) bool {
		return t.levels[i].PointsRequired > points
	})
	if i == 0 {
		return BaseLevel
	}
	return t.levels[i-1].Number
}

// Floor is the threshold of the level points resolves to, 0 below every
// threshold.
func (t LevelTable) Floor(points int64) int64 {
	i := sort.Search(len(t.levels), func(i int) bool {
		return t.levels[i].PointsRequired > points
	})
	if i == 0 {
		return 0
	}
	return t.levels[i-1].PointsRequired
}

// Next returns the first level above points, if any.
func (t LevelTable) Next(points int64) (Level, bool) {
	i := sort.Search(len(t.levels), func(i int) bool {
		return t.levels[i].PointsRequired > points
	})
	if i == len(t.levels) {
		return Level{}, false
	}
	return t.levels[i], true
}

func (t LevelTable) Levels() []Level {
	out := make([]Level, len(t.levels))
	copy(out, t.levels)
	return out
}
