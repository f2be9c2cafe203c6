// Package sqlite provides the SQLite-backed worker turn ledger.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/calderasoft/agentworker/internal/platform/storage/sqlitemigrate"
	"github.com/calderasoft/agentworker/internal/services/worker/storage"
	"github.com/calderasoft/agentworker/internal/services/worker/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists worker session and turn metrics in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite worker store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutSession upserts one session lifecycle row.
func (s *Store) PutSession(ctx context.Context, record storage.SessionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.ID) == "" {
		return fmt.Errorf("session id is required")
	}
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	var closedAt sql.NullInt64
	if record.ClosedAt != nil {
		closedAt = sql.NullInt64{Int64: toMillis(*record.ClosedAt), Valid: true}
	}
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO sessions (id, created_at, closed_at)
VALUES (?, ?, ?)
ON CONFLICT(id) DO UPDATE SET closed_at = excluded.closed_at
`, record.ID, toMillis(createdAt), closedAt)
	if err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

// CloseSession stamps the session closed. Closing an unknown session is a
// no-op so registry teardown stays idempotent.
func (s *Store) CloseSession(ctx context.Context, id string, closedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("session id is required")
	}
	if closedAt.IsZero() {
		closedAt = time.Now().UTC()
	}
	_, err := s.sqlDB.ExecContext(ctx,
		"UPDATE sessions SET closed_at = ? WHERE id = ? AND closed_at IS NULL",
		toMillis(closedAt), id)
	if err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	return nil
}

// GetSession loads one session lifecycle row.
func (s *Store) GetSession(ctx context.Context, id string) (storage.SessionRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.SessionRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.SessionRecord{}, fmt.Errorf("storage is not configured")
	}
	row := s.sqlDB.QueryRowContext(ctx,
		"SELECT id, created_at, closed_at FROM sessions WHERE id = ?", id)

	var (
		record    storage.SessionRecord
		createdAt int64
		closedAt  sql.NullInt64
	)
	if err := row.Scan(&record.ID, &createdAt, &closedAt); err != nil {
		if err == sql.ErrNoRows {
			return storage.SessionRecord{}, storage.ErrNotFound
		}
		return storage.SessionRecord{}, fmt.Errorf("get session: %w", err)
	}
	record.CreatedAt = fromMillis(createdAt)
	if closedAt.Valid {
		value := fromMillis(closedAt.Int64)
		record.ClosedAt = &value
	}
	return record, nil
}

// PutTurn records metrics for one completed turn.
func (s *Store) PutTurn(ctx context.Context, record storage.TurnRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.ID) == "" {
		return fmt.Errorf("turn id is required")
	}
	if strings.TrimSpace(record.SessionID) == "" {
		return fmt.Errorf("session id is required")
	}
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	isError := 0
	if record.IsError {
		isError = 1
	}
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO turns (id, session_id, input_tokens, output_tokens, cost_usd, num_turns, duration_ms, is_error, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`, record.ID, record.SessionID, record.InputTokens, record.OutputTokens,
		record.CostUSD, record.NumTurns, record.DurationMs, isError, toMillis(createdAt))
	if err != nil {
		return fmt.Errorf("put turn: %w", err)
	}
	return nil
}

// ListTurns returns all turns for a session in creation order.
func (s *Store) ListTurns(ctx context.Context, sessionID string) ([]storage.TurnRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, session_id, input_tokens, output_tokens, cost_usd, num_turns, duration_ms, is_error, created_at
FROM turns WHERE session_id = ? ORDER BY created_at, id
`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list turns: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []storage.TurnRecord
	for rows.Next() {
		var (
			record    storage.TurnRecord
			isError   int
			createdAt int64
		)
		if err := rows.Scan(&record.ID, &record.SessionID, &record.InputTokens,
			&record.OutputTokens, &record.CostUSD, &record.NumTurns,
			&record.DurationMs, &isError, &createdAt); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		record.IsError = isError != 0
		record.CreatedAt = fromMillis(createdAt)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate turns: %w", err)
	}
	return records, nil
}
