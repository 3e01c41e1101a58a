package kafka_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"homework_tracker/internal/domain"
	"homework_tracker/internal/testutils"
	"homework_tracker/pkg/kafka"
	"homework_tracker/pkg/logger"
)

func TestNotificationSink(t *testing.T) {
	ctx := context.Background()
	due := time.Date(2024, 5, 10, 23, 59, 0, 0, time.UTC)
	userID := uuid.New()
	n := domain.Notification{UserID: userID, Title: "Homework due soon", Message: "Math is due in 1h", DueDate: due}

	t.Run("Success", func(t *testing.T) {
		producer := new(testutils.MockKafkaProducer)
		producer.On("Send", mock.Anything, "homework-reminders", userID.String(), kafka.NotificationMessage{
			UserID:  userID.String(),
			Title:   "Homework due soon",
			Message: "Math is due in 1h",
			DueDate: due,
		}).Return(nil)

		kafka.NewNotificationSink(producer, "homework-reminders", logger.NewNop()).Enqueue(ctx, n)
		producer.AssertExpectations(t)
	})

	t.Run("Failure is logged not returned", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		producer := new(testutils.MockKafkaProducer)
		producer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("leader not available"))

		kafka.NewNotificationSink(producer, "homework-reminders", logger.NewFromZap(zap.New(core))).Enqueue(ctx, n)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "failed to enqueue notification", logs.All()[0].Message)
	})
}

func TestEventPublisher(t *testing.T) {
	grade := 100
	event := domain.SubmissionEvent{
		ID:           uuid.New(),
		Kind:         domain.EventKindGraded,
		UserID:       uuid.New(),
		HomeworkID:   uuid.New(),
		SubmissionID: uuid.New(),
		Grade:        &grade,
		OccurredAt:   time.Date(2024, 5, 11, 8, 0, 0, 0, time.UTC),
	}

	producer := new(testutils.MockKafkaProducer)
	producer.On("Send", mock.Anything, "submission-events", event.SubmissionID.String(),
		mock.MatchedBy(func(m kafka.SubmissionEventMessage) bool {
			return m.EventID == event.ID.String() && m.Kind == "graded" && *m.Grade == 100
		})).Return(errors.New("broker down"))

	err := kafka.NewEventPublisher(producer, "submission-events").Publish(context.Background(), event)
	assert.EqualError(t, err, "broker down")
	producer.AssertExpectations(t)
}

func TestNewProducer_NoBrokers(t *testing.T) {
	_, err := kafka.NewProducer(kafka.Config{}, logger.NewNop())
	assert.Error(t, err)
}
