package ctxdata_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homework_tracker/pkg/ctxdata"
)

func TestUser(t *testing.T) {
	_, ok := ctxdata.GetUser(context.Background())
	assert.False(t, ok)

	id := uuid.New()
	ctx := ctxdata.WithRawUser(context.Background(), id.String(), "teacher")
	user, ok := ctxdata.GetUser(ctx)
	require.True(t, ok)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "teacher", user.Role)

	ctx = ctxdata.WithRawUser(context.Background(), "not-a-uuid", "teacher")
	_, ok = ctxdata.GetUser(ctx)
	assert.False(t, ok)
}

func TestTraceID(t *testing.T) {
	_, ok := ctxdata.GetTraceID(context.Background())
	assert.False(t, ok)

	traceID, ok := ctxdata.GetTraceID(ctxdata.WithTraceID(context.Background(), "abc"))
	require.True(t, ok)
	assert.Equal(t, "abc", traceID)
}
