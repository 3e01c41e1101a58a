package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportWindow is the half-open interval [From, To) over homework due dates.
type ReportWindow struct {
	From time.Time
	To   time.Time
}

func (w ReportWindow) IsValid() bool {
	return !w.From.IsZero() && !w.To.IsZero() && w.From.Before(w.To)
}

func (w ReportWindow) Contains(t time.Time) bool {
	t = t.UTC()
	return !t.Before(w.From.UTC()) && t.Before(w.To.UTC())
}

// Report is an immutable snapshot. Re-aggregation creates a new Report.
type Report struct {
	ID                uuid.UUID
	StudentID         uuid.UUID
	ClassID           uuid.UUID
	Window            ReportWindow
	TotalAssigned     int
	TotalCompleted    int
	CompletionRate    float64
	OnTimeSubmissions int
	LateSubmissions   int
	// AverageScore is nil until at least one submission is graded.
	AverageScore *float64
	GeneratedAt  time.Time
}

// BuildReport computes the statistics for one student. Deactivated homework,
// homework outside the window or of another class, and submissions by other
// students or for homework not counted, are ignored.
func BuildReport(
	studentID, classID uuid.UUID,
	window ReportWindow,
	homework []*Homework,
	submissions []*Submission,
) Report {
	report := Report{
		StudentID: studentID,
		ClassID:   classID,
		Window:    window,
	}

	assigned := make(map[uuid.UUID]struct{}, len(homework))
	for _, h := range homework {
		if !h.IsActive || h.ClassID != classID || !window.Contains(h.DueDate) {
			continue
		}
		assigned[h.ID] = struct{}{}
	}
	report.TotalAssigned = len(assigned)

	var (
		gradeSum   int
		gradeCount int
		seen       = make(map[uuid.UUID]struct{}, len(submissions))
	)
	for _, s := range submissions {
		if s.StudentID != studentID {
			continue
		}
		if _, ok := assigned[s.HomeworkID]; !ok {
			continue
		}
		if _, dup := seen[s.HomeworkID]; dup {
			continue
		}
		if !s.Status.IsCompleted() {
			continue
		}
		seen[s.HomeworkID] = struct{}{}

		report.TotalCompleted++
		if s.IsLate {
			report.LateSubmissions++
		} else {
			report.OnTimeSubmissions++
		}
		if s.Status == SubmissionStatusGraded && s.Grade != nil {
			gradeSum += *s.Grade
			gradeCount++
		}
	}

	if report.TotalAssigned > 0 {
		report.CompletionRate = float64(report.TotalCompleted) / float64(report.TotalAssigned)
	}
	if gradeCount > 0 {
		avg := float64(gradeSum) / float64(gradeCount)
		report.AverageScore = &avg
	}

	return report
}
