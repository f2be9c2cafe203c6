// Package enginefakes provides in-memory engine fakes for worker tests.
package enginefakes

import (
	"context"
	"sync"

	"github.com/calderasoft/agentworker/internal/services/worker/engine"
)

// Session is a scriptable engine session. Tests queue messages with Emit and
// close the stream with CloseStream.
type Session struct {
	QueryErr      error
	InterruptErr  error
	DisconnectErr error

	mu          sync.Mutex
	messages    chan engine.Message
	closed      bool
	Queries     []string
	Interrupts  int
	Disconnects int
}

// NewSession builds a fake session with a buffered message stream.
func NewSession() *Session {
	return &Session{messages: make(chan engine.Message, 64)}
}

// Emit queues one engine message for the drain loop.
func (s *Session) Emit(msg engine.Message) {
	s.messages <- msg
}

// CloseStream closes the message channel, simulating engine disconnect.
func (s *Session) CloseStream() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.messages)
	}
}

// Query records the prompt.
func (s *Session) Query(_ context.Context, prompt string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.QueryErr != nil {
		return s.QueryErr
	}
	s.Queries = append(s.Queries, prompt)
	return nil
}

// Messages returns the scripted message stream.
func (s *Session) Messages() <-chan engine.Message {
	return s.messages
}

// Interrupt records the interrupt attempt.
func (s *Session) Interrupt(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Interrupts++
	return s.InterruptErr
}

// Disconnect records the teardown and closes the stream.
func (s *Session) Disconnect() error {
	s.mu.Lock()
	s.Disconnects++
	err := s.DisconnectErr
	s.mu.Unlock()
	s.CloseStream()
	return err
}

// CreateCall captures one CreateSession invocation.
type CreateCall struct {
	Prompt string
	Opts   engine.Options
}

// Engine is a scriptable engine. Queue sessions with Enqueue; without a
// queued session CreateSession hands out a fresh fake.
type Engine struct {
	CreateErr error

	mu      sync.Mutex
	queue   []*Session
	Created []CreateCall
}

// NewEngine builds an empty fake engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Enqueue schedules the session returned by the next CreateSession call.
func (e *Engine) Enqueue(sess *Session) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.queue = append(e.queue, sess)
}

// CreateSession records the call and returns the next queued session.
func (e *Engine) CreateSession(_ context.Context, prompt string, opts engine.Options) (engine.Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.CreateErr != nil {
		return nil, e.CreateErr
	}
	e.Created = append(e.Created, CreateCall{Prompt: prompt, Opts: opts})
	if len(e.queue) > 0 {
		next := e.queue[0]
		e.queue = e.queue[1:]
		return next, nil
	}
	return NewSession(), nil
}
