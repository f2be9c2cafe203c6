package agent

import (
	"encoding/json"
	"time"

	agentv1 "github.com/calderasoft/agentworker/api/gen/go/agent/v1"
	"github.com/calderasoft/agentworker/internal/services/worker/engine"
)

// Error kinds carried in AgentError.error_type.
const (
	errKindInternal        = "internal"
	errKindNoSession       = "no_session"
	errKindSessionNotFound = "session_not_found"
	errKindExecute         = "execute_error"
	errKindSendMessage     = "send_message_error"
	errKindSession         = "session_error"
)

// defaultSubagentName is used when a sub-agent start carries no block name.
const defaultSubagentName = "subagent"

// mapSystemMessage translates engine lifecycle signals. Only the init
// subtype produces an event; the session id may still be empty.
func mapSystemMessage(msg engine.SystemMessage) *agentv1.AgentEvent {
	if msg.Subtype != engine.SystemSubtypeInit {
		return nil
	}
	return &agentv1.AgentEvent{Event: &agentv1.AgentEvent_SessionInit{
		SessionInit: &agentv1.SessionInit{SessionId: msg.SessionID},
	}}
}

// mapAssistantMessage translates each modeled content block, preserving
// block order.
func mapAssistantMessage(msg engine.AssistantMessage) []*agentv1.AgentEvent {
	events := make([]*agentv1.AgentEvent, 0, len(msg.Message.Content))
	for _, block := range msg.Message.Content {
		switch block := block.(type) {
		case engine.TextBlock:
			events = append(events, &agentv1.AgentEvent{Event: &agentv1.AgentEvent_Text{
				Text: &agentv1.TextContent{Text: block.Text},
			}})
		case engine.ToolUseBlock:
			events = append(events, &agentv1.AgentEvent{Event: &agentv1.AgentEvent_ToolUse{
				ToolUse: &agentv1.ToolUse{
					ToolName:  block.Name,
					ToolUseId: block.ID,
					InputJson: encodeToolInput(block.Input),
				},
			}})
		case engine.ToolResultBlock:
			isError := block.IsError != nil && *block.IsError
			events = append(events, &agentv1.AgentEvent{Event: &agentv1.AgentEvent_ToolResult{
				ToolResult: &agentv1.ToolResult{
					ToolUseId: block.ToolUseID,
					IsError:   isError,
				},
			}})
		}
	}
	return events
}

func encodeToolInput(input map[string]any) string {
	if len(input) == 0 {
		return "{}"
	}
	encoded, err := json.Marshal(input)
	if err != nil {
		return "{}"
	}
	return string(encoded)
}

// mapResultMessage translates a terminal result. Duration is the worker's
// wall-clock measurement of the turn, not the engine's own accounting.
func mapResultMessage(msg engine.ResultMessage, elapsed time.Duration) *agentv1.AgentEvent {
	return &agentv1.AgentEvent{Event: &agentv1.AgentEvent_Result{
		Result: &agentv1.SessionResult{
			SessionId:    msg.SessionID,
			InputTokens:  msg.Usage.InputTokens,
			OutputTokens: msg.Usage.OutputTokens,
			CostUsd:      msg.TotalCostUSD,
			NumTurns:     int32(msg.NumTurns),
			DurationMs:   elapsed.Milliseconds(),
			IsError:      msg.IsError,
			ResultText:   msg.Result,
		},
	}}
}

// mapStreamEvent translates incremental updates. Updates carrying a parent
// tool use id belong to a nested sub-agent and become bracket events; top
// level updates surface partial text and early tool-use announcements.
func mapStreamEvent(msg engine.StreamEvent) *agentv1.AgentEvent {
	body, ok := msg.Body()
	if !ok {
		return nil
	}

	if msg.ParentToolUseID != nil {
		switch body.Type {
		case engine.StreamEventContentBlockStart:
			name := defaultSubagentName
			var block engine.StreamContentBlock
			if len(body.ContentBlock) > 0 &&
				json.Unmarshal(body.ContentBlock, &block) == nil && block.Name != "" {
				name = block.Name
			}
			return &agentv1.AgentEvent{Event: &agentv1.AgentEvent_Subagent{
				Subagent: &agentv1.SubagentEvent{
					AgentName:       name,
					ParentToolUseId: *msg.ParentToolUseID,
					IsStart:         true,
				},
			}}
		case engine.StreamEventMessageStop:
			return &agentv1.AgentEvent{Event: &agentv1.AgentEvent_Subagent{
				Subagent: &agentv1.SubagentEvent{
					ParentToolUseId: *msg.ParentToolUseID,
					IsStart:         false,
				},
			}}
		}
		return nil
	}

	switch body.Type {
	case engine.StreamEventContentBlockStart:
		var block engine.StreamContentBlock
		if len(body.ContentBlock) == 0 || json.Unmarshal(body.ContentBlock, &block) != nil {
			return nil
		}
		if block.Type != "tool_use" {
			return nil
		}
		// The full input is still streaming; it arrives later through the
		// assistant message with the same tool use id.
		return &agentv1.AgentEvent{Event: &agentv1.AgentEvent_ToolUse{
			ToolUse: &agentv1.ToolUse{
				ToolName:  block.Name,
				ToolUseId: block.ID,
				InputJson: "{}",
			},
		}}
	case engine.StreamEventContentBlockDelta:
		var delta engine.StreamDelta
		if len(body.Delta) == 0 || json.Unmarshal(body.Delta, &delta) != nil {
			return nil
		}
		if delta.Type != "text_delta" {
			return nil
		}
		return &agentv1.AgentEvent{Event: &agentv1.AgentEvent_Text{
			Text: &agentv1.TextContent{Text: delta.Text, IsPartial: true},
		}}
	}
	return nil
}

// fallbackResultEvent synthesizes a terminal result from a raw payload whose
// typed decoding failed. Callers invoke it only after checking the raw type
// is "result".
func fallbackResultEvent(raw map[string]any, elapsed time.Duration) *agentv1.AgentEvent {
	result := &agentv1.SessionResult{
		SessionId:  rawString(raw["session_id"]),
		CostUsd:    rawFloat(raw["total_cost_usd"]),
		NumTurns:   int32(rawInt(raw["num_turns"])),
		DurationMs: elapsed.Milliseconds(),
		IsError:    rawBool(raw["is_error"]),
		ResultText: rawString(raw["result"]),
	}
	if usage, ok := raw["usage"].(map[string]any); ok {
		result.InputTokens = rawInt(usage["input_tokens"])
		result.OutputTokens = rawInt(usage["output_tokens"])
	}
	return &agentv1.AgentEvent{Event: &agentv1.AgentEvent_Result{Result: result}}
}

// errorEvent wraps a turn-level failure. Empty kinds default to internal.
func errorEvent(message, kind string) *agentv1.AgentEvent {
	if kind == "" {
		kind = errKindInternal
	}
	return &agentv1.AgentEvent{Event: &agentv1.AgentEvent_Error{
		Error: &agentv1.AgentError{Message: message, ErrorType: kind},
	}}
}

func rawString(value any) string {
	s, _ := value.(string)
	return s
}

func rawBool(value any) bool {
	b, _ := value.(bool)
	return b
}

func rawFloat(value any) float64 {
	f, _ := value.(float64)
	return f
}

func rawInt(value any) int64 {
	switch v := value.(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	default:
		return 0
	}
}
