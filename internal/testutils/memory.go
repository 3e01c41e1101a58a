package testutils

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"homework_tracker/internal/domain"
	"homework_tracker/internal/errdefs"
)

type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now.UTC()}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FakeClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now.UTC()
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type HomeworkStore struct {
	mu       sync.Mutex
	homework map[uuid.UUID]domain.Homework
	students map[uuid.UUID][]uuid.UUID
}

func NewHomeworkStore() *HomeworkStore {
	return &HomeworkStore{
		homework: make(map[uuid.UUID]domain.Homework),
		students: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (s *HomeworkStore) Put(h domain.Homework) *domain.Homework {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.homework[h.ID] = h
	return &h
}

func (s *HomeworkStore) Enroll(classID uuid.UUID, studentIDs ...uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.students[classID] = append(s.students[classID], studentIDs...)
}

func (s *HomeworkStore) Create(_ context.Context, h *domain.Homework) error {
	s.Put(*h)
	return nil
}

func (s *HomeworkStore) Update(_ context.Context, h *domain.Homework) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.homework[h.ID]; !ok {
		return errdefs.ErrNotFound
	}
	s.homework[h.ID] = *h
	return nil
}

func (s *HomeworkStore) Deactivate(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.homework[id]
	if !ok {
		return errdefs.ErrNotFound
	}
	h.IsActive = false
	s.homework[id] = h
	return nil
}

func (s *HomeworkStore) GetHomework(_ context.Context, id uuid.UUID) (*domain.Homework, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.homework[id]
	if !ok {
		return nil, errdefs.ErrNotFound
	}
	return &h, nil
}

func (s *HomeworkStore) ListActiveHomework(_ context.Context, after, before time.Time) ([]*domain.Homework, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Homework
	for _, h := range s.homework {
		if h.IsActive && h.DueDate.After(after) && !h.DueDate.After(before) {
			out = append(out, &h)
		}
	}
	sortHomework(out)
	return out, nil
}

func (s *HomeworkStore) ListByFilter(_ context.Context, f domain.HomeworkFilter) ([]*domain.Homework, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Homework
	for _, h := range s.homework {
		if f.ClassID != uuid.Nil && h.ClassID != f.ClassID {
			continue
		}
		if !f.DueFrom.IsZero() && h.DueDate.Before(f.DueFrom) {
			continue
		}
		if !f.DueUntil.IsZero() && !h.DueDate.Before(f.DueUntil) {
			continue
		}
		if f.ActiveOnly && !h.IsActive {
			continue
		}
		out = append(out, &h)
	}
	sortHomework(out)
	return out, nil
}

func (s *HomeworkStore) ListStudents(_ context.Context, classID uuid.UUID) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.students[classID]), nil
}

func sortHomework(hw []*domain.Homework) {
	sort.Slice(hw, func(i, j int) bool { return hw[i].DueDate.Before(hw[j].DueDate) })
}

type pairKey struct {
	a, b uuid.UUID
}

// SubmissionStore returns copies so callers cannot mutate stored state
// without going through Upsert.
type SubmissionStore struct {
	mu     sync.Mutex
	byPair map[pairKey]domain.Submission
}

func NewSubmissionStore() *SubmissionStore {
	return &SubmissionStore{byPair: make(map[pairKey]domain.Submission)}
}

func (s *SubmissionStore) Get(_ context.Context, homeworkID, studentID uuid.UUID) (*domain.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.byPair[pairKey{homeworkID, studentID}]
	if !ok {
		return nil, errdefs.ErrNotFound
	}
	return &sub, nil
}

func (s *SubmissionStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sub := range s.byPair {
		if sub.ID == id {
			return &sub, nil
		}
	}
	return nil, errdefs.ErrNotFound
}

func (s *SubmissionStore) Upsert(_ context.Context, sub *domain.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := pairKey{sub.HomeworkID, sub.StudentID}
	stored, ok := s.byPair[key]
	switch {
	case !ok && sub.Version != 0, ok && stored.Version != sub.Version:
		return errdefs.ErrConcurrencyConflict
	}
	sub.Version++
	s.byPair[key] = *sub
	return nil
}

func (s *SubmissionStore) ListByHomework(_ context.Context, homeworkID uuid.UUID) ([]*domain.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Submission
	for _, sub := range s.byPair {
		if sub.HomeworkID == homeworkID {
			out = append(out, &sub)
		}
	}
	return out, nil
}

func (s *SubmissionStore) ListByStudent(_ context.Context, studentID uuid.UUID, homeworkIDs []uuid.UUID) ([]*domain.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Submission
	for _, sub := range s.byPair {
		if sub.StudentID == studentID && slices.Contains(homeworkIDs, sub.HomeworkID) {
			out = append(out, &sub)
		}
	}
	return out, nil
}

func (s *SubmissionStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byPair)
}

type ReminderStore struct {
	mu        sync.Mutex
	reminders map[domain.ReminderKey]domain.Reminder
}

func NewReminderStore() *ReminderStore {
	return &ReminderStore{reminders: make(map[domain.ReminderKey]domain.Reminder)}
}

func (s *ReminderStore) Exists(_ context.Context, key domain.ReminderKey) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.reminders[key]
	return ok, nil
}

func (s *ReminderStore) InsertIfAbsent(_ context.Context, r *domain.Reminder) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reminders[r.Key()]; ok {
		return false, nil
	}
	s.reminders[r.Key()] = *r
	return true, nil
}

func (s *ReminderStore) ListUnread(_ context.Context, studentID uuid.UUID) ([]*domain.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Reminder
	for _, r := range s.reminders {
		if r.StudentID == studentID && !r.IsRead {
			out = append(out, &r)
		}
	}
	return out, nil
}

func (s *ReminderStore) MarkRead(_ context.Context, id, studentID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, r := range s.reminders {
		if r.ID == id && r.StudentID == studentID {
			r.IsRead = true
			s.reminders[key] = r
			return nil
		}
	}
	return errdefs.ErrNotFound
}

func (s *ReminderStore) All() []domain.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Reminder, 0, len(s.reminders))
	for _, r := range s.reminders {
		out = append(out, r)
	}
	return out
}

type ChallengeStore struct {
	mu         sync.Mutex
	challenges []domain.Challenge
	progress   map[pairKey]domain.ChallengeProgress
	applied    map[pairKey]map[uuid.UUID]struct{}
}

func NewChallengeStore(challenges ...domain.Challenge) *ChallengeStore {
	return &ChallengeStore{
		challenges: challenges,
		progress:   make(map[pairKey]domain.ChallengeProgress),
		applied:    make(map[pairKey]map[uuid.UUID]struct{}),
	}
}

func (s *ChallengeStore) ListActiveChallenges(_ context.Context, t domain.ChallengeType, now time.Time) ([]*domain.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Challenge
	for _, c := range s.challenges {
		if c.Type == t && c.ActiveAt(now) {
			out = append(out, &c)
		}
	}
	return out, nil
}

func (s *ChallengeStore) GetProgress(_ context.Context, userID, challengeID uuid.UUID) (*domain.ChallengeProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.progress[pairKey{userID, challengeID}]
	if !ok {
		return &domain.ChallengeProgress{UserID: userID, ChallengeID: challengeID}, nil
	}
	return &p, nil
}

func (s *ChallengeStore) UpdateProgress(_ context.Context, p *domain.ChallengeProgress, eventID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := pairKey{p.UserID, p.ChallengeID}
	if _, dup := s.applied[key][eventID]; dup {
		return errdefs.ErrAlreadyApplied
	}
	if s.progress[key].Version != p.Version {
		return errdefs.ErrConcurrencyConflict
	}
	p.Version++
	s.progress[key] = *p
	if s.applied[key] == nil {
		s.applied[key] = make(map[uuid.UUID]struct{})
	}
	s.applied[key][eventID] = struct{}{}
	return nil
}

type PointLedger struct {
	mu       sync.Mutex
	points   map[uuid.UUID]int64
	rewards  map[pairKey]struct{}
	failures []error
}

func NewPointLedger() *PointLedger {
	return &PointLedger{
		points:  make(map[uuid.UUID]int64),
		rewards: make(map[pairKey]struct{}),
	}
}

// FailNext makes the next len(errs) reward credits return errs in order.
func (l *PointLedger) FailNext(errs ...error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failures = append(l.failures, errs...)
}

func (l *PointLedger) CreditPoints(_ context.Context, userID uuid.UUID, amount int64) error {
	if amount < 0 {
		return errdefs.ErrValidation
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.points[userID] += amount
	return nil
}

func (l *PointLedger) CreditReward(_ context.Context, userID, challengeID uuid.UUID, amount int64) (bool, error) {
	if amount < 0 {
		return false, errdefs.ErrValidation
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.failures) > 0 {
		err := l.failures[0]
		l.failures = l.failures[1:]
		return false, err
	}
	key := pairKey{userID, challengeID}
	if _, paid := l.rewards[key]; paid {
		return false, nil
	}
	l.rewards[key] = struct{}{}
	l.points[userID] += amount
	return true, nil
}

func (l *PointLedger) GetTotalPoints(_ context.Context, userID uuid.UUID) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.points[userID], nil
}

type ReportStore struct {
	mu      sync.Mutex
	reports []domain.Report
}

func NewReportStore() *ReportStore {
	return &ReportStore{}
}

func (s *ReportStore) Save(_ context.Context, r *domain.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, *r)
	return nil
}

func (s *ReportStore) ListByStudent(_ context.Context, studentID uuid.UUID) ([]*domain.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Report
	for _, r := range s.reports {
		if r.StudentID == studentID {
			out = append(out, &r)
		}
	}
	return out, nil
}
