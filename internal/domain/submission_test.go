package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"homework_tracker/internal/domain"
)

func TestIsLate(t *testing.T) {
	due := time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name        string
		submittedAt time.Time
		expected    bool
	}{
		{"BeforeDue", time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC), false},
		{"ExactlyAtDue", due, false},
		{"OneSecondAfter", time.Date(2024, 3, 11, 0, 0, 1, 0, time.UTC), true},
		{"OtherZoneSameInstant", due.In(time.FixedZone("UTC+5", 5*3600)), false},
		{"OtherZoneAfter", due.Add(time.Second).In(time.FixedZone("UTC-8", -8*3600)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.IsLate(tt.submittedAt, due))
		})
	}
}

func TestSubmissionPayload_IsEmpty(t *testing.T) {
	text := "my essay"
	blank := "   "
	fileID := uuid.New()

	assert.True(t, domain.SubmissionPayload{}.IsEmpty())
	assert.True(t, domain.SubmissionPayload{Text: &blank}.IsEmpty())
	assert.False(t, domain.SubmissionPayload{Text: &text}.IsEmpty())
	assert.False(t, domain.SubmissionPayload{AttachmentFileID: &fileID}.IsEmpty())
	assert.False(t, domain.SubmissionPayload{AudioFileID: &fileID}.IsEmpty())
	assert.False(t, domain.SubmissionPayload{ImageFileID: &fileID}.IsEmpty())
	assert.False(t, domain.SubmissionPayload{PDFFileID: &fileID}.IsEmpty())
}

func TestSubmissionStatus(t *testing.T) {
	assert.True(t, domain.SubmissionStatusLate.IsValid())
	assert.False(t, domain.SubmissionStatus("DONE").IsValid())

	assert.False(t, domain.SubmissionStatusNotSubmitted.IsCompleted())
	assert.True(t, domain.SubmissionStatusSubmitted.IsCompleted())
	assert.True(t, domain.SubmissionStatusLate.IsCompleted())
	assert.True(t, domain.SubmissionStatusGraded.IsCompleted())

	assert.Equal(t, domain.SubmissionStatusGraded, domain.ToSubmissionStatus("GRADED"))
	assert.Equal(t, domain.SubmissionStatusNotSubmitted, domain.ToSubmissionStatus("whatever"))
}

func TestValidateGrade(t *testing.T) {
	assert.True(t, domain.ValidateGrade(0))
	assert.True(t, domain.ValidateGrade(100))
	assert.False(t, domain.ValidateGrade(-1))
	assert.False(t, domain.ValidateGrade(101))
}

func TestInReminderWindow(t *testing.T) {
	due := time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)
	interval := 15 * time.Minute

	assert.True(t, domain.InReminderWindow(due.Add(-24*time.Hour), due, 24*time.Hour, interval))
	assert.True(t, domain.InReminderWindow(due.Add(-24*time.Hour+14*time.Minute), due, 24*time.Hour, interval))
	assert.False(t, domain.InReminderWindow(due.Add(-24*time.Hour+15*time.Minute), due, 24*time.Hour, interval))
	assert.False(t, domain.InReminderWindow(due.Add(-24*time.Hour-time.Second), due, 24*time.Hour, interval))
}
