package agent

import (
	"context"
	"fmt"
	"log"
	"time"

	agentv1 "github.com/calderasoft/agentworker/api/gen/go/agent/v1"
	"github.com/calderasoft/agentworker/internal/services/worker/engine"
	"google.golang.org/grpc"
)

// eventSender is the sending half shared by all streaming handlers.
type eventSender interface {
	Context() context.Context
	Send(*agentv1.AgentEvent) error
}

// sessionStream is the narrow view of the bidi stream the controller needs.
type sessionStream interface {
	eventSender
	Recv() (*agentv1.SessionInput, error)
}

// connState tracks what one bidi connection has learned about its session.
type connState struct {
	started   bool
	sess      engine.Session
	sessionID string
}

// Session is the bidirectional streaming entry point.
func (s *Service) Session(stream grpc.BidiStreamingServer[agentv1.SessionInput, agentv1.AgentEvent]) error {
	return s.runSession(stream)
}

func (s *Service) runSession(stream sessionStream) error {
	// Empty handshake event: forces headers onto the wire so the client
	// observes an open stream before the first request.
	if err := stream.Send(&agentv1.AgentEvent{}); err != nil {
		return err
	}

	conn := &connState{}
	defer func() {
		if conn.sessionID != "" {
			s.registry.Remove(conn.sessionID)
		} else if conn.sess != nil {
			// The engine never announced an id; disconnect directly.
			if err := conn.sess.Disconnect(); err != nil {
				log.Printf("disconnect unregistered session: %v", err)
			}
		}
	}()

	for {
		input, err := stream.Recv()
		if err != nil {
			// io.EOF is the clean close; cancellation and transport
			// resets also mean the client is gone. Teardown either way.
			return nil
		}

		switch request := input.GetInput().(type) {
		case *agentv1.SessionInput_Create:
			if conn.started {
				if !s.send(stream, errorEvent("session already created on this stream", errKindSession)) {
					return nil
				}
				continue
			}
			if !s.handleCreate(stream, conn, request.Create) {
				return nil
			}
		case *agentv1.SessionInput_FollowUp:
			if !s.handleFollowUp(stream, conn, request.FollowUp) {
				return nil
			}
		default:
			// An input with no variant carries nothing; skip it.
		}
	}
}

func (s *Service) handleCreate(stream sessionStream, conn *connState, create *agentv1.CreateSession) bool {
	sess, err := s.registry.Create(stream.Context(), create.GetPrompt(), engine.Options{
		PermissionMode:     create.GetPermissionMode(),
		Env:                create.GetEnv(),
		SystemPromptAppend: create.GetSystemPromptAppend(),
		MaxTurns:           int(create.GetMaxTurns()),
		MaxThinkingTokens:  int(create.GetMaxThinkingTokens()),
	})
	if err != nil {
		return s.send(stream, errorEvent(fmt.Sprintf("create session: %v", err), errKindSession))
	}
	conn.started = true
	conn.sess = sess
	return s.drain(stream, conn, sess)
}

func (s *Service) handleFollowUp(stream sessionStream, conn *connState, followUp *agentv1.FollowUp) bool {
	if !conn.started {
		return s.send(stream, errorEvent("no session; send create first", errKindNoSession))
	}
	if err := conn.sess.Query(stream.Context(), followUp.GetPrompt()); err != nil {
		return s.send(stream, errorEvent(fmt.Sprintf("follow-up: %v", err), errKindSession))
	}
	return s.drain(stream, conn, conn.sess)
}

// Execute runs a single prompt in a fresh session and streams its events.
// The session stays registered for later SendMessage calls; it is removed at
// worker shutdown.
func (s *Service) Execute(req *agentv1.ExecuteRequest, stream grpc.ServerStreamingServer[agentv1.AgentEvent]) error {
	return s.runExecute(req, stream)
}

func (s *Service) runExecute(req *agentv1.ExecuteRequest, stream eventSender) error {
	sess, err := s.registry.Create(stream.Context(), req.GetPrompt(), engine.Options{
		PermissionMode:     req.GetPermissionMode(),
		Env:                req.GetEnv(),
		SystemPromptAppend: req.GetSystemPromptAppend(),
		MaxTurns:           int(req.GetMaxTurns()),
	})
	if err != nil {
		_ = stream.Send(errorEvent(fmt.Sprintf("execute: %v", err), errKindExecute))
		return nil
	}
	s.drain(stream, &connState{}, sess)
	return nil
}

// SendMessage continues a previously created session by identifier.
func (s *Service) SendMessage(req *agentv1.SendMessageRequest, stream grpc.ServerStreamingServer[agentv1.AgentEvent]) error {
	return s.runSendMessage(req, stream)
}

func (s *Service) runSendMessage(req *agentv1.SendMessageRequest, stream eventSender) error {
	sess, ok := s.registry.Get(req.GetSessionId())
	if !ok {
		_ = stream.Send(errorEvent("Session not found: "+req.GetSessionId(), errKindSessionNotFound))
		return nil
	}
	if err := sess.Query(stream.Context(), req.GetPrompt()); err != nil {
		_ = stream.Send(errorEvent(fmt.Sprintf("send message: %v", err), errKindSendMessage))
		return nil
	}
	s.drain(stream, &connState{sessionID: req.GetSessionId()}, sess)
	return nil
}

// drain forwards translated engine messages until the turn's terminal result
// or stream exhaustion. It reports false when the client is gone, either
// through a failed send or a cancelled stream context, meaning the caller
// should tear down without waiting on the engine.
func (s *Service) drain(stream eventSender, conn *connState, sess engine.Session) bool {
	start := s.clock()
	for {
		var msg engine.Message
		var ok bool
		select {
		case <-stream.Context().Done():
			// A silent engine must not keep a dead connection's
			// session alive.
			return false
		case msg, ok = <-sess.Messages():
			if !ok {
				// Channel closed without a terminal result: the
				// engine went away and the turn simply ends.
				return true
			}
		}

		events, terminal := s.translate(msg, start)
		for _, event := range events {
			if init := event.GetSessionInit(); init != nil && init.GetSessionId() != "" {
				// Register immediately so Interrupt from another
				// connection works mid-turn.
				s.registry.Register(init.GetSessionId(), sess)
				conn.sessionID = init.GetSessionId()
			}
			if !s.send(stream, event) {
				return false
			}
			if terminal {
				s.recordTurn(conn.sessionID, event.GetResult())
			}
		}
		if terminal {
			return true
		}
	}
}

// translate maps one engine message to wire events and reports whether it
// terminates the turn.
func (s *Service) translate(msg engine.Message, start time.Time) ([]*agentv1.AgentEvent, bool) {
	switch msg := msg.(type) {
	case engine.SystemMessage:
		if event := mapSystemMessage(msg); event != nil {
			return []*agentv1.AgentEvent{event}, false
		}
		return nil, false
	case engine.AssistantMessage:
		return mapAssistantMessage(msg), false
	case engine.ResultMessage:
		return []*agentv1.AgentEvent{mapResultMessage(msg, s.clock().Sub(start))}, true
	case engine.StreamEvent:
		if event := mapStreamEvent(msg); event != nil {
			return []*agentv1.AgentEvent{event}, false
		}
		return nil, false
	case engine.UnknownMessage:
		if rawString(msg.Raw["type"]) == "result" {
			return []*agentv1.AgentEvent{fallbackResultEvent(msg.Raw, s.clock().Sub(start))}, true
		}
		log.Printf("skip unknown engine message type %q", rawString(msg.Raw["type"]))
		return nil, false
	default:
		return nil, false
	}
}

func (s *Service) send(stream eventSender, event *agentv1.AgentEvent) bool {
	if err := stream.Send(event); err != nil {
		log.Printf("send event: %v", err)
		return false
	}
	return true
}
