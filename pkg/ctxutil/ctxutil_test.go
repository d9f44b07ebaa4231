package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestWithRunID_And_RunIDFromCtx(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	ctx := WithRunID(context.Background(), id)

	if got := RunIDFromCtx(ctx); got != id.String() {
		t.Fatalf("expected %s, got %s", id, got)
	}
}

func TestWithNewRunID_GeneratesID(t *testing.T) {
	t.Parallel()

	ctx := WithNewRunID(context.Background())
	if RunIDFromCtx(ctx) == "" {
		t.Fatal("expected a generated run id")
	}
}

func TestRunIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	if got := RunIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}

func TestRunIDFromCtx_NilUUID(t *testing.T) {
	t.Parallel()

	ctx := WithRunID(context.Background(), uuid.Nil)
	if got := RunIDFromCtx(ctx); got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}

func TestRunIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("run_id"), 12345)
	if got := RunIDFromCtx(ctx); got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}
