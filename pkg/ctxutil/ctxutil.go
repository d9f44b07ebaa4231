package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const runIDKey ctxKey = "run_id"

// WithRunID stores a reduction run ID in the context.
func WithRunID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// WithNewRunID stores a freshly generated run ID in the context.
func WithNewRunID(ctx context.Context) context.Context {
	return WithRunID(ctx, uuid.New())
}

// RunIDFromCtx extracts the run ID from the context as a string for
// logging. Returns an empty string if the value is missing, a nil UUID,
// or the wrong type.
func RunIDFromCtx(ctx context.Context) string {
	id, ok := ctx.Value(runIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return ""
	}
	return id.String()
}
