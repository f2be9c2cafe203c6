// Package engine defines the boundary to the conversational agent engine.
//
// An Engine creates stateful sessions. A Session accepts one prompt at a
// time and emits a stream of engine messages; the caller drains the stream
// until a terminal result before sending the next prompt.
package engine

import "context"

// Options configure a new engine session.
type Options struct {
	// PermissionMode controls how the engine gates tool execution.
	PermissionMode string
	// Env is merged into the engine process environment.
	Env map[string]string
	// SystemPromptAppend is appended to the engine's base system prompt.
	SystemPromptAppend string
	// MaxTurns caps agentic turns within one query; zero means unlimited.
	MaxTurns int
	// MaxThinkingTokens caps extended-thinking output; zero keeps the
	// engine default.
	MaxThinkingTokens int
}

// Engine creates sessions against a backing agent runtime.
type Engine interface {
	CreateSession(ctx context.Context, prompt string, opts Options) (Session, error)
}

// Session is one live conversation with the engine.
type Session interface {
	// Query sends a follow-up prompt. The previous turn must have reached
	// its terminal result.
	Query(ctx context.Context, prompt string) error
	// Messages returns the engine message stream. The channel closes when
	// the engine disconnects.
	Messages() <-chan Message
	// Interrupt stops the in-flight turn.
	Interrupt(ctx context.Context) error
	// Disconnect tears the session down and releases its resources.
	Disconnect() error
}
