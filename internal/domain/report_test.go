package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homework_tracker/internal/domain"
)

func TestBuildReport(t *testing.T) {
	studentID := uuid.New()
	classID := uuid.New()
	window := domain.ReportWindow{
		From: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}

	hw := func(day int) *domain.Homework {
		return &domain.Homework{ID: uuid.New(), ClassID: classID, DueDate: time.Date(2024, 3, day, 23, 59, 0, 0, time.UTC), IsActive: true}
	}
	sub := func(h *domain.Homework, status domain.SubmissionStatus, late bool, grade *int) *domain.Submission {
		return &domain.Submission{ID: uuid.New(), HomeworkID: h.ID, StudentID: studentID, Status: status, IsLate: late, Grade: grade}
	}

	t.Run("NothingAssigned", func(t *testing.T) {
		r := domain.BuildReport(studentID, classID, window, nil, nil)
		assert.Equal(t, 0, r.TotalAssigned)
		assert.Equal(t, 0.0, r.CompletionRate)
		assert.Nil(t, r.AverageScore)
	})

	t.Run("FourAssignedThreeCompleted", func(t *testing.T) {
		h1, h2, h3, h4 := hw(2), hw(9), hw(16), hw(23)
		subs := []*domain.Submission{
			sub(h1, domain.SubmissionStatusSubmitted, false, nil),
			sub(h2, domain.SubmissionStatusSubmitted, false, nil),
			sub(h3, domain.SubmissionStatusLate, true, nil),
		}

		r := domain.BuildReport(studentID, classID, window, []*domain.Homework{h1, h2, h3, h4}, subs)
		assert.Equal(t, 4, r.TotalAssigned)
		assert.Equal(t, 3, r.TotalCompleted)
		assert.Equal(t, 0.75, r.CompletionRate)
		assert.Equal(t, 2, r.OnTimeSubmissions)
		assert.Equal(t, 1, r.LateSubmissions)
		assert.Nil(t, r.AverageScore, "no grades yet is not the same as zero")
	})

	t.Run("AverageOverGradedOnly", func(t *testing.T) {
		h1, h2, h3 := hw(2), hw(9), hw(16)
		zero, ninety := 0, 90
		subs := []*domain.Submission{
			sub(h1, domain.SubmissionStatusGraded, false, &zero),
			sub(h2, domain.SubmissionStatusGraded, true, &ninety),
			sub(h3, domain.SubmissionStatusSubmitted, false, nil),
		}

		r := domain.BuildReport(studentID, classID, window, []*domain.Homework{h1, h2, h3}, subs)
		require.NotNil(t, r.AverageScore)
		assert.Equal(t, 45.0, *r.AverageScore)
		assert.Equal(t, 1.0, r.CompletionRate)
	})

	t.Run("IgnoresDeactivatedHomework", func(t *testing.T) {
		done, withdrawn := hw(3), hw(10)
		withdrawn.IsActive = false

		r := domain.BuildReport(studentID, classID, window,
			[]*domain.Homework{done, withdrawn},
			[]*domain.Submission{sub(done, domain.SubmissionStatusSubmitted, false, nil)})
		assert.Equal(t, 1, r.TotalAssigned)
		assert.Equal(t, 1, r.TotalCompleted)
		assert.Equal(t, 1.0, r.CompletionRate)
	})

	t.Run("IgnoresForeignRecords", func(t *testing.T) {
		inWindow := hw(5)
		outside := &domain.Homework{ID: uuid.New(), ClassID: classID, DueDate: window.To, IsActive: true}
		otherClass := &domain.Homework{ID: uuid.New(), ClassID: uuid.New(), DueDate: inWindow.DueDate, IsActive: true}
		otherStudent := sub(inWindow, domain.SubmissionStatusSubmitted, false, nil)
		otherStudent.StudentID = uuid.New()

		r := domain.BuildReport(studentID, classID, window,
			[]*domain.Homework{inWindow, outside, otherClass},
			[]*domain.Submission{otherStudent, sub(outside, domain.SubmissionStatusSubmitted, false, nil)})
		assert.Equal(t, 1, r.TotalAssigned)
		assert.Equal(t, 0, r.TotalCompleted)
	})
}

func TestReportWindow(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, domain.ReportWindow{From: from, To: from.Add(time.Hour)}.IsValid())
	assert.False(t, domain.ReportWindow{From: from, To: from}.IsValid())
	assert.False(t, domain.ReportWindow{To: from}.IsValid())
}
