package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"homework_tracker/internal/domain"
	"homework_tracker/internal/errdefs"
	"homework_tracker/pkg/logger"
)

type ReminderConfig struct {
	Offsets  []time.Duration
	Interval time.Duration
}

func (c ReminderConfig) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("%w: sweep interval must be positive", errdefs.ErrValidation)
	}
	if len(c.Offsets) == 0 {
		return fmt.Errorf("%w: at least one reminder offset is required", errdefs.ErrValidation)
	}
	seen := make(map[time.Duration]struct{}, len(c.Offsets))
	for _, offset := range c.Offsets {
		if offset <= 0 {
			return fmt.Errorf("%w: reminder offset %s must be positive", errdefs.ErrValidation, offset)
		}
		if _, dup := seen[offset]; dup {
			return fmt.Errorf("%w: duplicate reminder offset %s", errdefs.ErrValidation, offset)
		}
		seen[offset] = struct{}{}
	}
	return nil
}

type SweepResult struct {
	Homework int
	Created  int
	Skipped  int
	Failed   int
}

// ReminderScheduler produces reminders at configured offsets before due
// dates. Sweep is safe to re-run: the reminder store's insert-if-absent is
// the only dedup.
type ReminderScheduler struct {
	homework    HomeworkSource
	roster      ClassRoster
	submissions SubmissionStore
	reminders   ReminderStore
	sink        NotificationSink
	clock       Clock
	offsets     []time.Duration
	interval    time.Duration
	logger      *logger.Logger

	running sync.Mutex
}

func NewReminderScheduler(
	cfg ReminderConfig,
	homework HomeworkSource,
	roster ClassRoster,
	submissions SubmissionStore,
	reminders ReminderStore,
	sink NotificationSink,
	clock Clock,
	log *logger.Logger,
) (*ReminderScheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = SystemClock{}
	}

	offsets := slices.Clone(cfg.Offsets)
	slices.Sort(offsets)

	return &ReminderScheduler{
		homework:    homework,
		roster:      roster,
		submissions: submissions,
		reminders:   reminders,
		sink:        sink,
		clock:       clock,
		offsets:     offsets,
		interval:    cfg.Interval,
		logger:      log,
	}, nil
}

func (s *ReminderScheduler) Interval() time.Duration {
	return s.interval
}

// Sweep runs one scan. A sweep that starts while another is still running
// returns ErrSweepInProgress without doing any work.
func (s *ReminderScheduler) Sweep(ctx context.Context) (SweepResult, error) {
	if !s.running.TryLock() {
		return SweepResult{}, errdefs.ErrSweepInProgress
	}
	defer s.running.Unlock()

	var result SweepResult
	now := s.clock.Now().UTC()
	maxOffset := s.offsets[len(s.offsets)-1]

	homework, err := s.homework.ListActiveHomework(ctx, now, now.Add(maxOffset))
	if err != nil {
		return result, fmt.Errorf("list active homework: %w", err)
	}

	for _, hw := range homework {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		if !hw.IsOpen(now) {
			continue
		}
		result.Homework++

		offsets := s.dueOffsets(now, hw.DueDate)
		if len(offsets) == 0 {
			continue
		}

		students, err := s.pendingStudents(ctx, hw)
		if err != nil {
			result.Failed++
			s.logger.ErrorContext(ctx, "reminder sweep: skipping homework",
				zap.String("homework_id", hw.ID.String()),
				zap.Error(err),
			)
			continue
		}

		for _, offset := range offsets {
			for _, studentID := range students {
				created, err := s.remind(ctx, hw, studentID, offset, now)
				switch {
				case err != nil:
					result.Failed++
					s.logger.ErrorContext(ctx, "reminder sweep: skipping student",
						zap.String("homework_id", hw.ID.String()),
						zap.String("student_id", studentID.String()),
						zap.Duration("offset", offset),
						zap.Error(err),
					)
				case created:
					result.Created++
				default:
					result.Skipped++
				}
			}
		}
	}

	s.logger.InfoContext(ctx, "reminder sweep finished",
		zap.Int("homework", result.Homework),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed),
	)

	return result, nil
}

func (s *ReminderScheduler) dueOffsets(now, due time.Time) []time.Duration {
	var out []time.Duration
	for _, offset := range s.offsets {
		if domain.InReminderWindow(now, due, offset, s.interval) {
			out = append(out, offset)
		}
	}
	return out
}

// pendingStudents is the class roster minus students holding any
// submission record for hw.
func (s *ReminderScheduler) pendingStudents(ctx context.Context, hw *domain.Homework) ([]uuid.UUID, error) {
	students, err := s.roster.ListStudents(ctx, hw.ClassID)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	submissions, err := s.submissions.ListByHomework(ctx, hw.ID)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	submitted := make(map[uuid.UUID]struct{}, len(submissions))
	for _, sub := range submissions {
		if sub.Status.IsCompleted() {
			submitted[sub.StudentID] = struct{}{}
		}
	}

	pending := make([]uuid.UUID, 0, len(students))
	for _, id := range students {
		if _, ok := submitted[id]; !ok {
			pending = append(pending, id)
		}
	}
	return pending, nil
}

func (s *ReminderScheduler) remind(
	ctx context.Context,
	hw *domain.Homework,
	studentID uuid.UUID,
	offset time.Duration,
	now time.Time,
) (bool, error) {
	key := domain.ReminderKey{HomeworkID: hw.ID, StudentID: studentID, Offset: offset}

	exists, err := s.reminders.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("check reminder: %w", err)
	}
	if exists {
		return false, nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return false, fmt.Errorf("failed to generate UUID: %w", err)
	}

	inserted, err := s.reminders.InsertIfAbsent(ctx, &domain.Reminder{
		ID:         id,
		HomeworkID: hw.ID,
		StudentID:  studentID,
		Offset:     offset,
		FiredAt:    now,
	})
	if err != nil {
		return false, fmt.Errorf("insert reminder: %w", err)
	}
	if !inserted {
		return false, nil
	}

	s.sink.Enqueue(ctx, domain.Notification{
		UserID:  studentID,
		Title:   "Homework due soon",
		Message: reminderMessage(hw, offset),
		DueDate: hw.DueDate.UTC(),
	})
	return true, nil
}

func (s *ReminderScheduler) ListUnread(ctx context.Context, studentID uuid.UUID) ([]*domain.Reminder, error) {
	return s.reminders.ListUnread(ctx, studentID)
}

func (s *ReminderScheduler) MarkRead(ctx context.Context, reminderID, studentID uuid.UUID) error {
	return s.reminders.MarkRead(ctx, reminderID, studentID)
}

func reminderMessage(hw *domain.Homework, offset time.Duration) string {
	name := hw.Subject
	if hw.Title != nil && *hw.Title != "" {
		name = fmt.Sprintf("%s: %s", hw.Subject, *hw.Title)
	}
	return fmt.Sprintf("%s is due in %s (%s UTC)", name, formatOffset(offset), hw.DueDate.UTC().Format("2006-01-02 15:04"))
}

// formatOffset renders 24h0m0s as "24h" and 1h30m0s as "1h30m".
func formatOffset(d time.Duration) string {
	s := d.String()
	if strings.HasSuffix(s, "m0s") {
		s = strings.TrimSuffix(s, "0s")
	}
	if strings.HasSuffix(s, "h0m") {
		s = strings.TrimSuffix(s, "0m")
	}
	return s
}
