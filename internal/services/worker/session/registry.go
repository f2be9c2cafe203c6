// Package session tracks live engine sessions by identifier.
package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/calderasoft/agentworker/internal/services/worker/engine"
	"github.com/calderasoft/agentworker/internal/services/worker/storage"
)

// Registry owns the id-to-session map shared across connections. Engine calls
// are made outside the lock so a slow engine cannot stall lookups.
type Registry struct {
	engine engine.Engine
	ledger storage.TurnLedger
	clock  func() time.Time

	mu       sync.Mutex
	sessions map[string]engine.Session
}

// NewRegistry builds a registry that creates sessions via eng.
func NewRegistry(eng engine.Engine) *Registry {
	return &Registry{
		engine:   eng,
		clock:    time.Now,
		sessions: make(map[string]engine.Session),
	}
}

// WithLedger enables best-effort session lifecycle recording.
func (r *Registry) WithLedger(ledger storage.TurnLedger) *Registry {
	r.ledger = ledger
	return r
}

// Create starts a new engine session. The session identifier is not known
// yet; the caller registers it once the engine announces it.
func (r *Registry) Create(ctx context.Context, prompt string, opts engine.Options) (engine.Session, error) {
	return r.engine.CreateSession(ctx, prompt, opts)
}

// Register makes a session reachable by id. A duplicate id silently replaces
// the previous entry; the replaced session is left running for its own
// connection to tear down.
func (r *Registry) Register(id string, sess engine.Session) {
	if id == "" || sess == nil {
		return
	}
	r.mu.Lock()
	r.sessions[id] = sess
	r.mu.Unlock()

	if r.ledger != nil {
		err := r.ledger.PutSession(context.Background(), storage.SessionRecord{
			ID:        id,
			CreatedAt: r.clock().UTC(),
		})
		if err != nil {
			log.Printf("record session %s: %v", id, err)
		}
	}
}

// Get returns the session registered under id.
func (r *Registry) Get(id string) (engine.Session, bool) {
	r.mu.Lock()
	sess, ok := r.sessions[id]
	r.mu.Unlock()
	return sess, ok
}

// Remove unregisters and disconnects a session. Unknown ids and repeated
// removals are no-ops; disconnect failures are logged and swallowed.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	sess, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return
	}

	if err := sess.Disconnect(); err != nil {
		log.Printf("disconnect session %s: %v", id, err)
	}
	if r.ledger != nil {
		if err := r.ledger.CloseSession(context.Background(), id, r.clock().UTC()); err != nil {
			log.Printf("close session record %s: %v", id, err)
		}
	}
}

// Interrupt stops the in-flight turn of the session registered under id.
// It reports false for unknown ids and failed interrupts.
func (r *Registry) Interrupt(ctx context.Context, id string) bool {
	sess, ok := r.Get(id)
	if !ok {
		return false
	}
	if err := sess.Interrupt(ctx); err != nil {
		log.Printf("interrupt session %s: %v", id, err)
		return false
	}
	return true
}

// Shutdown removes every registered session. Used at process teardown.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	r.mu.Unlock()

	for _, id := range ids {
		r.Remove(id)
	}
}

// Len reports how many sessions are registered.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
