package ctxdata

import (
	"context"

	"github.com/google/uuid"
)

type traceIDKey struct{}
type userKey struct{}

type User struct {
	ID   uuid.UUID
	Role string
}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

func GetTraceID(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(traceIDKey{}).(string)
	return traceID, ok && traceID != ""
}

func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

func GetUser(ctx context.Context) (User, bool) {
	user, ok := ctx.Value(userKey{}).(User)
	return user, ok && user.ID != uuid.Nil
}

// WithRawUser stores the caller identity taken from transport metadata.
// An unparsable id leaves ctx unchanged.
func WithRawUser(ctx context.Context, rawID, role string) context.Context {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return ctx
	}
	return WithUser(ctx, User{ID: id, Role: role})
}
