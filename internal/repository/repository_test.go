package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"homework_tracker/internal/domain"
	"homework_tracker/internal/errdefs"
	"homework_tracker/internal/repository"
	"homework_tracker/pkg/db"
	"homework_tracker/pkg/logger"
)

type RepositorySuite struct {
	suite.Suite
	pg *db.Postgres

	homework    *repository.HomeworkRepository
	submissions *repository.SubmissionRepository
	reminders   *repository.ReminderRepository
	challenges  *repository.ChallengeRepository
	points      *repository.PointsRepository
	reports     *repository.ReportRepository
}

func TestRepositorySuite(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	pg, err := db.NewPostgres(context.Background(), db.Config{
		URL:            url,
		MigrationsPath: "../../migrations",
	}, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Close() })

	suite.Run(t, &RepositorySuite{pg: pg})
}

func (s *RepositorySuite) SetupTest() {
	conn := s.pg.DB()
	_, err := conn.Exec(`TRUNCATE reports, challenge_rewards, user_points, challenge_events, challenge_progress,
		challenges, reminders, submissions, class_students, homework`)
	s.Require().NoError(err)

	s.homework = repository.NewHomeworkRepository(conn)
	s.submissions = repository.NewSubmissionRepository(conn)
	s.reminders = repository.NewReminderRepository(conn)
	s.challenges = repository.NewChallengeRepository(conn)
	s.points = repository.NewPointsRepository(conn)
	s.reports = repository.NewReportRepository(conn)
}

func (s *RepositorySuite) newHomework(due time.Time) *domain.Homework {
	now := time.Now().UTC().Truncate(time.Microsecond)
	hw := &domain.Homework{
		ID:        uuid.New(),
		TeacherID: uuid.New(),
		ClassID:   uuid.New(),
		Subject:   "Chemistry",
		DueDate:   due.UTC().Truncate(time.Microsecond),
		IsActive:  true,
		CreatedAt: now,
		EditedAt:  now,
	}
	s.Require().NoError(s.homework.Create(context.Background(), hw))
	return hw
}

func (s *RepositorySuite) TestHomework() {
	ctx := context.Background()
	due := time.Now().Add(12 * time.Hour)
	hw := s.newHomework(due)

	got, err := s.homework.GetHomework(ctx, hw.ID)
	s.Require().NoError(err)
	s.Equal(hw.DueDate, got.DueDate)
	s.Nil(got.Title)

	active, err := s.homework.ListActiveHomework(ctx, time.Now(), time.Now().Add(24*time.Hour))
	s.Require().NoError(err)
	s.Len(active, 1)

	s.Require().NoError(s.homework.Deactivate(ctx, hw.ID))
	active, err = s.homework.ListActiveHomework(ctx, time.Now(), time.Now().Add(24*time.Hour))
	s.Require().NoError(err)
	s.Empty(active)

	all, err := s.homework.ListByFilter(ctx, domain.HomeworkFilter{ClassID: hw.ClassID})
	s.Require().NoError(err)
	s.Len(all, 1)
	onlyActive, err := s.homework.ListByFilter(ctx, domain.HomeworkFilter{ClassID: hw.ClassID, ActiveOnly: true})
	s.Require().NoError(err)
	s.Empty(onlyActive)

	_, err = s.homework.GetHomework(ctx, uuid.New())
	s.ErrorIs(err, errdefs.ErrNotFound)

	studentID := uuid.New()
	s.Require().NoError(s.homework.Enroll(ctx, hw.ClassID, studentID))
	s.Require().NoError(s.homework.Enroll(ctx, hw.ClassID, studentID))
	students, err := s.homework.ListStudents(ctx, hw.ClassID)
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{studentID}, students)
}

func (s *RepositorySuite) TestSubmissionVersioning() {
	ctx := context.Background()
	hw := s.newHomework(time.Now().Add(time.Hour))
	text := "answer"
	now := time.Now().UTC()

	sub := &domain.Submission{
		ID:          uuid.New(),
		HomeworkID:  hw.ID,
		StudentID:   uuid.New(),
		Payload:     domain.SubmissionPayload{Text: &text},
		SubmittedAt: now,
		Status:      domain.SubmissionStatusSubmitted,
		CreatedAt:   now,
		EditedAt:    now,
	}
	s.Require().NoError(s.submissions.Upsert(ctx, sub))
	s.Equal(int64(1), sub.Version)

	duplicate := *sub
	duplicate.ID = uuid.New()
	duplicate.Version = 0
	s.ErrorIs(s.submissions.Upsert(ctx, &duplicate), errdefs.ErrConcurrencyConflict)

	stale := *sub
	grade := 77
	sub.Status = domain.SubmissionStatusGraded
	sub.Grade = &grade
	s.Require().NoError(s.submissions.Upsert(ctx, sub))
	s.ErrorIs(s.submissions.Upsert(ctx, &stale), errdefs.ErrConcurrencyConflict)

	got, err := s.submissions.GetByID(ctx, sub.ID)
	s.Require().NoError(err)
	s.Equal(domain.SubmissionStatusGraded, got.Status)
	s.Equal(77, *got.Grade)
	s.Equal(int64(2), got.Version)

	list, err := s.submissions.ListByStudent(ctx, sub.StudentID, []uuid.UUID{hw.ID, uuid.New()})
	s.Require().NoError(err)
	s.Len(list, 1)

	_, err = s.submissions.Get(ctx, hw.ID, uuid.New())
	s.ErrorIs(err, errdefs.ErrNotFound)
}

func (s *RepositorySuite) TestReminderInsertIfAbsent() {
	ctx := context.Background()
	hw := s.newHomework(time.Now().Add(time.Hour))
	reminder := &domain.Reminder{
		ID:         uuid.New(),
		HomeworkID: hw.ID,
		StudentID:  uuid.New(),
		Offset:     time.Hour,
		FiredAt:    time.Now(),
	}

	inserted, err := s.reminders.InsertIfAbsent(ctx, reminder)
	s.Require().NoError(err)
	s.True(inserted)

	again := *reminder
	again.ID = uuid.New()
	inserted, err = s.reminders.InsertIfAbsent(ctx, &again)
	s.Require().NoError(err)
	s.False(inserted)

	exists, err := s.reminders.Exists(ctx, reminder.Key())
	s.Require().NoError(err)
	s.True(exists)

	unread, err := s.reminders.ListUnread(ctx, reminder.StudentID)
	s.Require().NoError(err)
	s.Require().Len(unread, 1)
	s.Equal(time.Hour, unread[0].Offset)

	s.Require().NoError(s.reminders.MarkRead(ctx, reminder.ID, reminder.StudentID))
	s.ErrorIs(s.reminders.MarkRead(ctx, reminder.ID, uuid.New()), errdefs.ErrNotFound)
}

func (s *RepositorySuite) TestChallengeProgress() {
	ctx := context.Background()
	now := time.Now().UTC()
	challenge := &domain.Challenge{
		ID:           uuid.New(),
		Type:         domain.ChallengeTypeSubmissionCount,
		Title:        "Five in a row",
		Target:       5,
		PointsReward: 50,
		StartDate:    now.Add(-time.Hour),
		EndDate:      now.Add(time.Hour),
		IsActive:     true,
	}
	s.Require().NoError(s.challenges.Create(ctx, challenge))

	active, err := s.challenges.ListActiveChallenges(ctx, domain.ChallengeTypeSubmissionCount, now)
	s.Require().NoError(err)
	s.Len(active, 1)

	s.ErrorIs(s.challenges.Create(ctx, challenge), errdefs.ErrConcurrencyConflict)

	disabled := *challenge
	disabled.IsActive = false
	s.Require().NoError(s.challenges.Upsert(ctx, &disabled))
	active, err = s.challenges.ListActiveChallenges(ctx, domain.ChallengeTypeSubmissionCount, now)
	s.Require().NoError(err)
	s.Empty(active)
	s.Require().NoError(s.challenges.Upsert(ctx, challenge))

	userID := uuid.New()
	progress, err := s.challenges.GetProgress(ctx, userID, challenge.ID)
	s.Require().NoError(err)
	s.Zero(progress.Version)

	eventID := uuid.New()
	progress.Progress = 1
	s.Require().NoError(s.challenges.UpdateProgress(ctx, progress, eventID))
	s.Equal(int64(1), progress.Version)

	replay := *progress
	s.ErrorIs(s.challenges.UpdateProgress(ctx, &replay, eventID), errdefs.ErrAlreadyApplied)

	stale := *progress
	stale.Version = 0
	s.ErrorIs(s.challenges.UpdateProgress(ctx, &stale, uuid.New()), errdefs.ErrConcurrencyConflict)

	got, err := s.challenges.GetProgress(ctx, userID, challenge.ID)
	s.Require().NoError(err)
	s.Equal(1, got.Progress)
}

func (s *RepositorySuite) TestPoints() {
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	s.Require().NoError(s.points.CreditPoints(ctx, alice, 100))
	s.Require().NoError(s.points.CreditPoints(ctx, alice, 50))
	s.Require().NoError(s.points.CreditPoints(ctx, bob, 300))
	s.ErrorIs(s.points.CreditPoints(ctx, bob, -1), errdefs.ErrValidation)

	total, err := s.points.GetTotalPoints(ctx, alice)
	s.Require().NoError(err)
	s.Equal(int64(150), total)

	total, err = s.points.GetTotalPoints(ctx, uuid.New())
	s.Require().NoError(err)
	s.Zero(total)

	top, err := s.points.Top(ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(top, 2)
	s.Equal(bob, top[0].UserID)
	s.Equal(int64(1), top[0].Rank)
	s.Equal(int64(2), top[1].Rank)
}

func (s *RepositorySuite) TestChallengeRewardPaidOnce() {
	ctx := context.Background()
	now := time.Now().UTC()
	challenge := &domain.Challenge{
		ID:           uuid.New(),
		Type:         domain.ChallengeTypeGradedCount,
		Title:        "Three graded",
		Target:       3,
		PointsReward: 40,
		StartDate:    now.Add(-time.Hour),
		EndDate:      now.Add(time.Hour),
		IsActive:     true,
	}
	s.Require().NoError(s.challenges.Create(ctx, challenge))
	userID := uuid.New()

	credited, err := s.points.CreditReward(ctx, userID, challenge.ID, challenge.PointsReward)
	s.Require().NoError(err)
	s.True(credited)

	credited, err = s.points.CreditReward(ctx, userID, challenge.ID, challenge.PointsReward)
	s.Require().NoError(err)
	s.False(credited)

	total, err := s.points.GetTotalPoints(ctx, userID)
	s.Require().NoError(err)
	s.Equal(int64(40), total)

	_, err = s.points.CreditReward(ctx, userID, challenge.ID, -5)
	s.ErrorIs(err, errdefs.ErrValidation)
}

func (s *RepositorySuite) TestReports() {
	ctx := context.Background()
	studentID := uuid.New()
	avg := 88.5
	report := &domain.Report{
		ID:        uuid.New(),
		StudentID: studentID,
		ClassID:   uuid.New(),
		Window: domain.ReportWindow{
			From: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		TotalAssigned:  4,
		TotalCompleted: 3,
		CompletionRate: 0.75,
		AverageScore:   &avg,
		GeneratedAt:    time.Now().UTC(),
	}
	s.Require().NoError(s.reports.Save(ctx, report))

	history, err := s.reports.ListByStudent(ctx, studentID)
	s.Require().NoError(err)
	s.Require().Len(history, 1)
	s.Equal(0.75, history[0].CompletionRate)
	s.Require().NotNil(history[0].AverageScore)
	s.Equal(avg, *history[0].AverageScore)
}
