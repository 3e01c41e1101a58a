package domain

import (
	"time"

	"github.com/google/uuid"
)

type Challenge struct {
	ID           uuid.UUID
	Type         ChallengeType
	Title        string
	Target       int
	PointsReward int64
	StartDate    time.Time
	EndDate      time.Time
	IsActive     bool
}

// ActiveAt reports whether t is inside the challenge's [StartDate, EndDate) window.
func (c *Challenge) ActiveAt(t time.Time) bool {
	t = t.UTC()
	return c.IsActive && !t.Before(c.StartDate.UTC()) && t.Before(c.EndDate.UTC())
}

// Increment returns how much e advances p for this challenge.
func (c *Challenge) Increment(p *ChallengeProgress, e SubmissionEvent) int {
	switch c.Type {
	case ChallengeTypeSubmissionCount, ChallengeTypeOnTimeCount, ChallengeTypeGradedCount:
		return 1
	case ChallengeTypePerfectScore:
		if e.Grade != nil && *e.Grade == GradeMax {
			return 1
		}
		return 0
	case ChallengeTypeStreak:
		// one step per distinct UTC day with a submission
		if p.LastActivityAt == nil || !sameDay(*p.LastActivityAt, e.OccurredAt) {
			return 1
		}
		return 0
	default:
		return 0
	}
}

type ChallengeProgress struct {
	UserID         uuid.UUID
	ChallengeID    uuid.UUID
	Progress       int
	Completed      bool
	CompletedAt    *time.Time
	LastActivityAt *time.Time
	Version        int64
}

// Advance applies delta, capped at target, and latches completion. It
// returns true only for the call that flips Completed.
func (p *ChallengeProgress) Advance(delta, target int, at time.Time) bool {
	if p.Completed {
		return false
	}
	p.Progress = min(p.Progress+delta, target)
	at = at.UTC()
	p.LastActivityAt = &at
	if p.Progress >= target {
		p.Completed = true
		p.CompletedAt = &at
		return true
	}
	return false
}

// CompletionPercentage is min(100, 100*progress/target). A zero target
// yields 100 only when some progress exists.
func CompletionPercentage(progress, target int) float64 {
	if target <= 0 {
		if progress > 0 {
			return 100.0
		}
		return 0.0
	}
	return min(100.0, 100.0*float64(progress)/float64(target))
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
