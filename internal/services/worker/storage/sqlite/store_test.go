package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/calderasoft/agentworker/internal/services/worker/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "worker.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestSessionRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	createdAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	err := store.PutSession(ctx, storage.SessionRecord{ID: "sess-1", CreatedAt: createdAt})
	if err != nil {
		t.Fatalf("put session: %v", err)
	}

	record, err := store.GetSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if !record.CreatedAt.Equal(createdAt) {
		t.Fatalf("expected created at %v, got %v", createdAt, record.CreatedAt)
	}
	if record.ClosedAt != nil {
		t.Fatal("expected open session")
	}

	closedAt := createdAt.Add(time.Minute)
	if err := store.CloseSession(ctx, "sess-1", closedAt); err != nil {
		t.Fatalf("close session: %v", err)
	}
	record, err = store.GetSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get closed session: %v", err)
	}
	if record.ClosedAt == nil || !record.ClosedAt.Equal(closedAt) {
		t.Fatalf("expected closed at %v, got %#v", closedAt, record.ClosedAt)
	}
}

func TestCloseSessionUnknownIDIsNoop(t *testing.T) {
	store := openTestStore(t)
	if err := store.CloseSession(context.Background(), "missing", time.Now()); err != nil {
		t.Fatalf("close unknown session: %v", err)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	store := openTestStore(t)
	_, err := store.GetSession(context.Background(), "missing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTurnRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	createdAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	if err := store.PutSession(ctx, storage.SessionRecord{ID: "sess-1", CreatedAt: createdAt}); err != nil {
		t.Fatalf("put session: %v", err)
	}
	first := storage.TurnRecord{
		ID:           "turn-1",
		SessionID:    "sess-1",
		InputTokens:  120,
		OutputTokens: 40,
		CostUSD:      0.05,
		NumTurns:     1,
		DurationMs:   900,
		CreatedAt:    createdAt,
	}
	second := storage.TurnRecord{
		ID:        "turn-2",
		SessionID: "sess-1",
		IsError:   true,
		CreatedAt: createdAt.Add(time.Second),
	}
	if err := store.PutTurn(ctx, first); err != nil {
		t.Fatalf("put first turn: %v", err)
	}
	if err := store.PutTurn(ctx, second); err != nil {
		t.Fatalf("put second turn: %v", err)
	}

	turns, err := store.ListTurns(ctx, "sess-1")
	if err != nil {
		t.Fatalf("list turns: %v", err)
	}
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if turns[0].ID != "turn-1" || turns[1].ID != "turn-2" {
		t.Fatalf("unexpected order %q, %q", turns[0].ID, turns[1].ID)
	}
	if turns[0].InputTokens != 120 || turns[0].OutputTokens != 40 || turns[0].CostUSD != 0.05 {
		t.Fatalf("unexpected metrics %#v", turns[0])
	}
	if !turns[1].IsError {
		t.Fatal("expected error flag on second turn")
	}
}

func TestPutTurnRequiresIDs(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	if err := store.PutTurn(ctx, storage.TurnRecord{SessionID: "sess-1"}); err == nil {
		t.Fatal("expected error for missing turn id")
	}
	if err := store.PutTurn(ctx, storage.TurnRecord{ID: "turn-1"}); err == nil {
		t.Fatal("expected error for missing session id")
	}
}
