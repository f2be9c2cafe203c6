// Package storage defines persistence interfaces for the worker's turn ledger.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// SessionRecord is one engine session lifecycle row.
type SessionRecord struct {
	ID        string
	CreatedAt time.Time
	ClosedAt  *time.Time
}

// TurnRecord captures metrics for one completed turn.
type TurnRecord struct {
	ID           string
	SessionID    string
	InputTokens  int64
	OutputTokens int64
	CostUSD      float64
	NumTurns     int
	DurationMs   int64
	IsError      bool
	CreatedAt    time.Time
}

// TurnLedger persists session lifecycle and per-turn metrics. Conversation
// content is never stored.
type TurnLedger interface {
	PutSession(ctx context.Context, record SessionRecord) error
	CloseSession(ctx context.Context, id string, closedAt time.Time) error
	GetSession(ctx context.Context, id string) (SessionRecord, error)
	PutTurn(ctx context.Context, record TurnRecord) error
	ListTurns(ctx context.Context, sessionID string) ([]TurnRecord, error)
}
