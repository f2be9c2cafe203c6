// Package agent implements the agent.v1.AgentWorker gRPC service.
//
// It bridges each client connection to one engine session, translating the
// engine's stream-json messages into the closed AgentEvent schema. Turn-level
// failures surface as AgentError events on the stream, never as transport
// faults.
package agent

import (
	"context"
	"log"
	"strings"
	"time"

	agentv1 "github.com/calderasoft/agentworker/api/gen/go/agent/v1"
	"github.com/calderasoft/agentworker/internal/platform/id"
	"github.com/calderasoft/agentworker/internal/services/worker/session"
	"github.com/calderasoft/agentworker/internal/services/worker/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Version is reported by the Health RPC.
const Version = "0.3.0"

// Service implements agent.v1.AgentWorker.
type Service struct {
	agentv1.UnimplementedAgentWorkerServer

	registry *session.Registry
	ledger   storage.TurnLedger
	version  string

	clock       func() time.Time
	idGenerator func() (string, error)
}

// NewService builds the worker service around a session registry.
func NewService(registry *session.Registry) *Service {
	return &Service{
		registry:    registry,
		version:     Version,
		clock:       time.Now,
		idGenerator: id.NewID,
	}
}

// WithLedger enables best-effort per-turn metric recording.
func (s *Service) WithLedger(ledger storage.TurnLedger) *Service {
	s.ledger = ledger
	return s
}

// Interrupt stops the in-flight turn of an active session.
func (s *Service) Interrupt(ctx context.Context, req *agentv1.InterruptRequest) (*agentv1.InterruptResponse, error) {
	if strings.TrimSpace(req.GetSessionId()) == "" {
		return nil, status.Error(codes.InvalidArgument, "session_id is required")
	}
	success := s.registry.Interrupt(ctx, req.GetSessionId())
	return &agentv1.InterruptResponse{Success: success}, nil
}

// Health reports worker readiness and version.
func (s *Service) Health(context.Context, *agentv1.HealthRequest) (*agentv1.HealthResponse, error) {
	return &agentv1.HealthResponse{
		Ready:         true,
		WorkerVersion: s.version,
	}, nil
}

// recordTurn writes one terminal result to the turn ledger. Failures are
// logged and never interrupt the stream.
func (s *Service) recordTurn(sessionID string, result *agentv1.SessionResult) {
	if s.ledger == nil || result == nil {
		return
	}
	if result.GetSessionId() != "" {
		sessionID = result.GetSessionId()
	}
	if sessionID == "" {
		return
	}
	turnID, err := s.idGenerator()
	if err != nil {
		log.Printf("turn id for session %s: %v", sessionID, err)
		return
	}
	err = s.ledger.PutTurn(context.Background(), storage.TurnRecord{
		ID:           turnID,
		SessionID:    sessionID,
		InputTokens:  result.GetInputTokens(),
		OutputTokens: result.GetOutputTokens(),
		CostUSD:      result.GetCostUsd(),
		NumTurns:     int(result.GetNumTurns()),
		DurationMs:   result.GetDurationMs(),
		IsError:      result.GetIsError(),
		CreatedAt:    s.clock().UTC(),
	})
	if err != nil {
		log.Printf("record turn for session %s: %v", sessionID, err)
	}
}
