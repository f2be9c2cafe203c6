package agent

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/calderasoft/agentworker/internal/services/worker/engine"
)

func TestMapSystemMessageInit(t *testing.T) {
	event := mapSystemMessage(engine.SystemMessage{
		Type:      engine.MessageTypeSystem,
		Subtype:   engine.SystemSubtypeInit,
		SessionID: "sess-1",
	})
	if event == nil {
		t.Fatal("expected event")
	}
	init := event.GetSessionInit()
	if init == nil {
		t.Fatal("expected session init variant")
	}
	if init.GetSessionId() != "sess-1" {
		t.Errorf("session id = %q, want sess-1", init.GetSessionId())
	}
}

func TestMapSystemMessageNonInitDropped(t *testing.T) {
	event := mapSystemMessage(engine.SystemMessage{
		Type:    engine.MessageTypeSystem,
		Subtype: "compact_boundary",
	})
	if event != nil {
		t.Fatalf("expected nil event, got %v", event)
	}
}

func TestMapAssistantMessagePreservesBlockOrder(t *testing.T) {
	isError := true
	events := mapAssistantMessage(engine.AssistantMessage{
		Message: engine.MessageContent{
			Role: "assistant",
			Content: engine.ContentBlocks{
				engine.TextBlock{Type: "text", Text: "thinking it over"},
				engine.ToolUseBlock{
					Type:  "tool_use",
					ID:    "tool-1",
					Name:  "Read",
					Input: map[string]any{"path": "/tmp/a"},
				},
				engine.ToolResultBlock{Type: "tool_result", ToolUseID: "tool-1", IsError: &isError},
			},
		},
	})
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	text := events[0].GetText()
	if text == nil || text.GetText() != "thinking it over" || text.GetIsPartial() {
		t.Errorf("unexpected text event: %v", events[0])
	}

	toolUse := events[1].GetToolUse()
	if toolUse == nil {
		t.Fatal("expected tool use event")
	}
	if toolUse.GetToolName() != "Read" || toolUse.GetToolUseId() != "tool-1" {
		t.Errorf("unexpected tool use: %v", toolUse)
	}
	var input map[string]any
	if err := json.Unmarshal([]byte(toolUse.GetInputJson()), &input); err != nil {
		t.Fatalf("input json: %v", err)
	}
	if input["path"] != "/tmp/a" {
		t.Errorf("input = %v", input)
	}

	toolResult := events[2].GetToolResult()
	if toolResult == nil {
		t.Fatal("expected tool result event")
	}
	if toolResult.GetToolUseId() != "tool-1" || !toolResult.GetIsError() {
		t.Errorf("unexpected tool result: %v", toolResult)
	}
}

func TestMapAssistantMessageNilIsErrorMeansFalse(t *testing.T) {
	events := mapAssistantMessage(engine.AssistantMessage{
		Message: engine.MessageContent{
			Content: engine.ContentBlocks{
				engine.ToolResultBlock{Type: "tool_result", ToolUseID: "tool-2"},
			},
		},
	})
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].GetToolResult().GetIsError() {
		t.Error("nil is_error should map to false")
	}
}

func TestEncodeToolInputEmpty(t *testing.T) {
	if got := encodeToolInput(nil); got != "{}" {
		t.Errorf("nil input = %q, want {}", got)
	}
	if got := encodeToolInput(map[string]any{}); got != "{}" {
		t.Errorf("empty input = %q, want {}", got)
	}
}

func TestMapResultMessageUsesWorkerDuration(t *testing.T) {
	event := mapResultMessage(engine.ResultMessage{
		SessionID:    "sess-1",
		Result:       "done",
		IsError:      false,
		NumTurns:     3,
		DurationMs:   99999,
		TotalCostUSD: 0.42,
		Usage:        engine.Usage{InputTokens: 120, OutputTokens: 80},
	}, 2500*time.Millisecond)

	result := event.GetResult()
	if result == nil {
		t.Fatal("expected result variant")
	}
	if result.GetDurationMs() != 2500 {
		t.Errorf("duration = %d, want worker-measured 2500", result.GetDurationMs())
	}
	if result.GetSessionId() != "sess-1" || result.GetResultText() != "done" {
		t.Errorf("unexpected result: %v", result)
	}
	if result.GetInputTokens() != 120 || result.GetOutputTokens() != 80 {
		t.Errorf("unexpected usage: %v", result)
	}
	if result.GetCostUsd() != 0.42 || result.GetNumTurns() != 3 {
		t.Errorf("unexpected metrics: %v", result)
	}
}

func streamEvent(t *testing.T, parent string, body string) engine.StreamEvent {
	t.Helper()
	msg := engine.StreamEvent{
		Type:  engine.MessageTypeStreamEvent,
		Event: json.RawMessage(body),
	}
	if parent != "" {
		msg.ParentToolUseID = &parent
	}
	return msg
}

func TestMapStreamEventSubagentBrackets(t *testing.T) {
	start := mapStreamEvent(streamEvent(t, "parent-1",
		`{"type":"content_block_start","index":0,"content_block":{"type":"text","name":"researcher"}}`))
	if start == nil {
		t.Fatal("expected start event")
	}
	sub := start.GetSubagent()
	if sub == nil {
		t.Fatal("expected subagent variant")
	}
	if !sub.GetIsStart() || sub.GetAgentName() != "researcher" || sub.GetParentToolUseId() != "parent-1" {
		t.Errorf("unexpected start: %v", sub)
	}

	stop := mapStreamEvent(streamEvent(t, "parent-1", `{"type":"message_stop"}`))
	if stop == nil {
		t.Fatal("expected stop event")
	}
	if stop.GetSubagent() == nil || stop.GetSubagent().GetIsStart() {
		t.Errorf("unexpected stop: %v", stop)
	}
}

func TestMapStreamEventSubagentNameDefaults(t *testing.T) {
	event := mapStreamEvent(streamEvent(t, "parent-2",
		`{"type":"content_block_start","index":0,"content_block":{"type":"text"}}`))
	if event == nil {
		t.Fatal("expected event")
	}
	if got := event.GetSubagent().GetAgentName(); got != defaultSubagentName {
		t.Errorf("agent name = %q, want %q", got, defaultSubagentName)
	}
}

func TestMapStreamEventSubagentDeltaDropped(t *testing.T) {
	event := mapStreamEvent(streamEvent(t, "parent-3",
		`{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"inner"}}`))
	if event != nil {
		t.Fatalf("subagent delta should be dropped, got %v", event)
	}
}

func TestMapStreamEventToolUseStart(t *testing.T) {
	event := mapStreamEvent(streamEvent(t, "",
		`{"type":"content_block_start","index":1,"content_block":{"type":"tool_use","id":"tool-9","name":"Bash"}}`))
	if event == nil {
		t.Fatal("expected event")
	}
	toolUse := event.GetToolUse()
	if toolUse == nil {
		t.Fatal("expected tool use variant")
	}
	if toolUse.GetToolName() != "Bash" || toolUse.GetToolUseId() != "tool-9" {
		t.Errorf("unexpected tool use: %v", toolUse)
	}
	if toolUse.GetInputJson() != "{}" {
		t.Errorf("input json = %q, want placeholder {}", toolUse.GetInputJson())
	}
}

func TestMapStreamEventTextDelta(t *testing.T) {
	event := mapStreamEvent(streamEvent(t, "",
		`{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"par"}}`))
	if event == nil {
		t.Fatal("expected event")
	}
	text := event.GetText()
	if text == nil {
		t.Fatal("expected text variant")
	}
	if text.GetText() != "par" || !text.GetIsPartial() {
		t.Errorf("unexpected partial text: %v", text)
	}
}

func TestMapStreamEventEmptyTextDeltaEmitted(t *testing.T) {
	event := mapStreamEvent(streamEvent(t, "",
		`{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":""}}`))
	if event == nil {
		t.Fatal("expected event for empty text delta")
	}
	text := event.GetText()
	if text == nil {
		t.Fatal("expected text variant")
	}
	if text.GetText() != "" || !text.GetIsPartial() {
		t.Errorf("unexpected partial text: %v", text)
	}
}

func TestMapStreamEventEmptyParentStillSubagent(t *testing.T) {
	parent := ""
	msg := engine.StreamEvent{
		Type:            engine.MessageTypeStreamEvent,
		ParentToolUseID: &parent,
		Event:           json.RawMessage(`{"type":"content_block_start","index":0,"content_block":{"type":"text","name":"researcher"}}`),
	}
	event := mapStreamEvent(msg)
	if event == nil {
		t.Fatal("expected event")
	}
	sub := event.GetSubagent()
	if sub == nil {
		t.Fatal("expected subagent variant")
	}
	if !sub.GetIsStart() || sub.GetParentToolUseId() != "" {
		t.Errorf("unexpected start: %v", sub)
	}
}

func TestMapStreamEventNonTextDeltaDropped(t *testing.T) {
	event := mapStreamEvent(streamEvent(t, "",
		`{"type":"content_block_delta","index":0,"delta":{"type":"input_json_delta","partial_json":"{\"pa"}}`))
	if event != nil {
		t.Fatalf("non-text delta should be dropped, got %v", event)
	}
}

func TestMapStreamEventMalformedBodyDropped(t *testing.T) {
	event := mapStreamEvent(streamEvent(t, "", `not json`))
	if event != nil {
		t.Fatalf("malformed body should be dropped, got %v", event)
	}
}

func TestFallbackResultEvent(t *testing.T) {
	event := fallbackResultEvent(map[string]any{
		"type":           "result",
		"session_id":     "sess-7",
		"total_cost_usd": 1.25,
		"num_turns":      float64(4),
		"is_error":       true,
		"result":         "partial failure",
		"usage": map[string]any{
			"input_tokens":  float64(10),
			"output_tokens": float64(20),
		},
	}, 1200*time.Millisecond)

	result := event.GetResult()
	if result == nil {
		t.Fatal("expected result variant")
	}
	if result.GetSessionId() != "sess-7" || !result.GetIsError() {
		t.Errorf("unexpected result: %v", result)
	}
	if result.GetCostUsd() != 1.25 || result.GetNumTurns() != 4 {
		t.Errorf("unexpected metrics: %v", result)
	}
	if result.GetInputTokens() != 10 || result.GetOutputTokens() != 20 {
		t.Errorf("unexpected usage: %v", result)
	}
	if result.GetDurationMs() != 1200 {
		t.Errorf("duration = %d, want 1200", result.GetDurationMs())
	}
	if result.GetResultText() != "partial failure" {
		t.Errorf("result text = %q", result.GetResultText())
	}
}

func TestErrorEventDefaultsKind(t *testing.T) {
	event := errorEvent("boom", "")
	if got := event.GetError().GetErrorType(); got != errKindInternal {
		t.Errorf("error type = %q, want %q", got, errKindInternal)
	}
	if got := event.GetError().GetMessage(); got != "boom" {
		t.Errorf("message = %q", got)
	}

	event = errorEvent("gone", errKindSessionNotFound)
	if got := event.GetError().GetErrorType(); got != errKindSessionNotFound {
		t.Errorf("error type = %q, want %q", got, errKindSessionNotFound)
	}
}
