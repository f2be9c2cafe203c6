// Package main is a manual test client for the agent worker.
//
// It opens a Session stream, sends a prompt, prints every event, and
// optionally sends one follow-up after the first turn completes. SIGINT
// interrupts the in-flight turn.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	agentv1 "github.com/calderasoft/agentworker/api/gen/go/agent/v1"
	"github.com/calderasoft/agentworker/internal/platform/config"
	platformgrpc "github.com/calderasoft/agentworker/internal/platform/grpc"
)

func main() {
	addr := flag.String("addr", "localhost:50051", "The worker gRPC server address")
	prompt := flag.String("prompt", "", "The initial prompt (required)")
	followUp := flag.String("follow-up", "", "Optional follow-up prompt sent after the first turn")
	permissionMode := flag.String("permission-mode", "bypassPermissions", "Engine permission mode")
	dialTimeout := flag.Duration("dial-timeout", 5*time.Second, "Worker dial timeout")
	flag.Parse()

	if *prompt == "" {
		config.Exitf("-prompt is required")
	}
	log.SetPrefix("[WORKERCTL] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *addr, *prompt, *followUp, *permissionMode, *dialTimeout); err != nil {
		config.Exitf("Error: %v", err)
	}
}

func run(ctx context.Context, addr, prompt, followUp, permissionMode string, dialTimeout time.Duration) error {
	conn, err := platformgrpc.DialWithHealth(
		ctx,
		nil,
		addr,
		dialTimeout,
		log.Printf,
		platformgrpc.DefaultClientDialOptions()...,
	)
	if err != nil {
		return fmt.Errorf("dial worker: %w", err)
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			log.Printf("close connection: %v", closeErr)
		}
	}()

	client := agentv1.NewAgentWorkerClient(conn)

	health, err := client.Health(ctx, &agentv1.HealthRequest{})
	if err != nil {
		return fmt.Errorf("health: %w", err)
	}
	fmt.Printf("worker ready=%v version=%s\n", health.GetReady(), health.GetWorkerVersion())

	stream, err := client.Session(ctx)
	if err != nil {
		return fmt.Errorf("open session stream: %w", err)
	}

	err = stream.Send(&agentv1.SessionInput{Input: &agentv1.SessionInput_Create{
		Create: &agentv1.CreateSession{
			Prompt:         prompt,
			PermissionMode: permissionMode,
		},
	}})
	if err != nil {
		return fmt.Errorf("send create: %w", err)
	}

	var sessionID atomic.Value
	sessionID.Store("")
	// Interrupt the in-flight turn when the user hits Ctrl-C. The stream
	// context is already cancelled by then, so use a fresh one.
	go func() {
		<-ctx.Done()
		id, _ := sessionID.Load().(string)
		if id == "" {
			return
		}
		interruptCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := client.Interrupt(interruptCtx, &agentv1.InterruptRequest{SessionId: id}); err != nil {
			log.Printf("interrupt session %s: %v", id, err)
		}
	}()

	turns := 0
	for {
		event, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("receive event: %w", err)
		}

		terminal := printEvent(event, &sessionID)
		if !terminal {
			continue
		}

		turns++
		if turns == 1 && followUp != "" {
			fmt.Printf("\nsending follow-up: %s\n", followUp)
			err := stream.Send(&agentv1.SessionInput{Input: &agentv1.SessionInput_FollowUp{
				FollowUp: &agentv1.FollowUp{Prompt: followUp},
			}})
			if err != nil {
				return fmt.Errorf("send follow-up: %w", err)
			}
			continue
		}
		return stream.CloseSend()
	}
}

// printEvent renders one event and reports whether it terminated a turn.
func printEvent(event *agentv1.AgentEvent, sessionID *atomic.Value) bool {
	switch payload := event.GetEvent().(type) {
	case *agentv1.AgentEvent_SessionInit:
		sessionID.Store(payload.SessionInit.GetSessionId())
		fmt.Printf("[init] session_id=%s\n", payload.SessionInit.GetSessionId())
	case *agentv1.AgentEvent_Text:
		label := "text"
		if payload.Text.GetIsPartial() {
			label = "text partial"
		}
		fmt.Printf("[%s] %s\n", label, payload.Text.GetText())
	case *agentv1.AgentEvent_ToolUse:
		fmt.Printf("[tool_use] %s id=%s input=%s\n",
			payload.ToolUse.GetToolName(), payload.ToolUse.GetToolUseId(), payload.ToolUse.GetInputJson())
	case *agentv1.AgentEvent_ToolResult:
		suffix := ""
		if payload.ToolResult.GetIsError() {
			suffix = " error"
		}
		fmt.Printf("[tool_result%s] id=%s\n", suffix, payload.ToolResult.GetToolUseId())
	case *agentv1.AgentEvent_Subagent:
		action := "end"
		if payload.Subagent.GetIsStart() {
			action = "start"
		}
		fmt.Printf("[subagent %s] %s parent=%s\n",
			action, payload.Subagent.GetAgentName(), payload.Subagent.GetParentToolUseId())
	case *agentv1.AgentEvent_Result:
		result := payload.Result
		fmt.Printf("[result] session=%s tokens_in=%d tokens_out=%d cost=$%.4f turns=%d duration=%dms error=%v\n",
			result.GetSessionId(), result.GetInputTokens(), result.GetOutputTokens(),
			result.GetCostUsd(), result.GetNumTurns(), result.GetDurationMs(), result.GetIsError())
		return true
	case *agentv1.AgentEvent_Error:
		fmt.Printf("[error] %s: %s\n", payload.Error.GetErrorType(), payload.Error.GetMessage())
	default:
		// Handshake events carry no payload.
	}
	return false
}
