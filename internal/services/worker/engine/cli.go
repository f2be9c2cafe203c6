package engine

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strconv"
	"sync"
	"time"

	"github.com/calderasoft/agentworker/internal/platform/id"
)

// scanBufferSize bounds one stream-json line; tool results can carry large
// payloads.
const scanBufferSize = 10 * 1024 * 1024

// disconnectGrace is how long Disconnect waits for the engine process to exit
// after stdin closes before killing it.
const disconnectGrace = 5 * time.Second

// defaultPermissionMode is used when session options carry no explicit mode.
const defaultPermissionMode = "bypassPermissions"

// CLI runs the agent engine as a subprocess speaking stream-json over
// stdin/stdout, one JSON object per line.
type CLI struct {
	path      string
	extraArgs []string
}

// NewCLI builds a CLI engine for the given binary path. An empty path falls
// back to "claude" on PATH.
func NewCLI(path string) *CLI {
	if path == "" {
		path = "claude"
	}
	return &CLI{path: path}
}

// WithExtraArgs appends fixed arguments to every engine invocation.
func (c *CLI) WithExtraArgs(args ...string) *CLI {
	c.extraArgs = append(c.extraArgs, args...)
	return c
}

func buildArgs(opts Options, extra []string) []string {
	args := []string{
		"--input-format", "stream-json",
		"--output-format", "stream-json",
		"--include-partial-messages",
		"--verbose",
		"--print",
	}
	mode := opts.PermissionMode
	if mode == "" {
		// A headless worker session must stay tool-capable even when
		// the client sends no mode.
		mode = defaultPermissionMode
	}
	args = append(args, "--permission-mode", mode)
	if opts.SystemPromptAppend != "" {
		args = append(args, "--append-system-prompt", opts.SystemPromptAppend)
	}
	if opts.MaxTurns > 0 {
		args = append(args, "--max-turns", strconv.Itoa(opts.MaxTurns))
	}
	return append(args, extra...)
}

// CreateSession starts an engine process and sends the initial prompt.
func (c *CLI) CreateSession(ctx context.Context, prompt string, opts Options) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cmd := exec.Command(c.path, buildArgs(opts, c.extraArgs)...)
	cmd.Env = os.Environ()
	for key, value := range opts.Env {
		cmd.Env = append(cmd.Env, key+"="+value)
	}
	if opts.MaxThinkingTokens > 0 {
		cmd.Env = append(cmd.Env, "MAX_THINKING_TOKENS="+strconv.Itoa(opts.MaxThinkingTokens))
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("engine stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("engine stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("engine stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start engine %s: %w", c.path, err)
	}

	sess := &cliSession{
		cmd:      cmd,
		stdin:    stdin,
		messages: make(chan Message, 64),
		done:     make(chan struct{}),
	}
	go sess.readLoop(stdout)
	go sess.stderrLoop(stderr)

	if err := sess.Query(ctx, prompt); err != nil {
		_ = sess.Disconnect()
		return nil, fmt.Errorf("send initial prompt: %w", err)
	}
	return sess, nil
}

type cliSession struct {
	cmd       *exec.Cmd
	stdin     io.WriteCloser
	messages  chan Message
	writeMu   sync.Mutex
	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// userMessage is the wire form of an outbound prompt.
type userMessage struct {
	Type    string          `json:"type"`
	Message userMessageBody `json:"message"`
}

type userMessageBody struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// controlRequest is the wire form of an out-of-band engine command.
type controlRequest struct {
	Type      string             `json:"type"`
	RequestID string             `json:"request_id"`
	Request   controlRequestBody `json:"request"`
}

type controlRequestBody struct {
	Subtype string `json:"subtype"`
}

// Query writes a user prompt line to the engine.
func (s *cliSession) Query(ctx context.Context, prompt string) error {
	return s.writeLine(ctx, userMessage{
		Type: "user",
		Message: userMessageBody{
			Role:    "user",
			Content: prompt,
		},
	})
}

// Messages returns the engine message stream.
func (s *cliSession) Messages() <-chan Message {
	return s.messages
}

// Interrupt writes an interrupt control request to the engine.
func (s *cliSession) Interrupt(ctx context.Context) error {
	requestID, err := id.NewID()
	if err != nil {
		return fmt.Errorf("interrupt request id: %w", err)
	}
	return s.writeLine(ctx, controlRequest{
		Type:      "control_request",
		RequestID: requestID,
		Request:   controlRequestBody{Subtype: "interrupt"},
	})
}

// Disconnect closes stdin and reaps the engine process. Safe to call more
// than once.
func (s *cliSession) Disconnect() error {
	s.closeOnce.Do(func() {
		close(s.done)
		if err := s.stdin.Close(); err != nil {
			log.Printf("close engine stdin: %v", err)
		}

		waited := make(chan error, 1)
		go func() { waited <- s.cmd.Wait() }()
		select {
		case err := <-waited:
			s.closeErr = err
		case <-time.After(disconnectGrace):
			if s.cmd.Process != nil {
				_ = s.cmd.Process.Kill()
			}
			s.closeErr = <-waited
		}
	})
	return s.closeErr
}

func (s *cliSession) writeLine(ctx context.Context, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-s.done:
		return fmt.Errorf("engine session is disconnected")
	default:
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode engine message: %w", err)
	}
	encoded = append(encoded, '\n')

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if _, err := s.stdin.Write(encoded); err != nil {
		return fmt.Errorf("write to engine: %w", err)
	}
	return nil
}

// readLoop feeds decoded stdout lines into the message channel until the
// engine closes its end.
func (s *cliSession) readLoop(stdout io.Reader) {
	defer close(s.messages)

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 64*1024), scanBufferSize)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		msg := ParseMessage(line)
		select {
		case s.messages <- msg:
		case <-s.done:
			return
		}
	}
	if err := scanner.Err(); err != nil {
		select {
		case <-s.done:
		default:
			log.Printf("read engine stdout: %v", err)
		}
	}
}

func (s *cliSession) stderrLoop(stderr io.Reader) {
	scanner := bufio.NewScanner(stderr)
	scanner.Buffer(make([]byte, 64*1024), scanBufferSize)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			log.Printf("engine stderr: %s", line)
		}
	}
}
