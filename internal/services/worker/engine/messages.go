package engine

import "encoding/json"

// MessageType discriminates engine stream messages.
type MessageType string

const (
	MessageTypeSystem      MessageType = "system"
	MessageTypeAssistant   MessageType = "assistant"
	MessageTypeUser        MessageType = "user"
	MessageTypeResult      MessageType = "result"
	MessageTypeStreamEvent MessageType = "stream_event"
	MessageTypeUnknown     MessageType = "unknown"
)

// Message is implemented by every message the engine emits.
type Message interface {
	MsgType() MessageType
}

// SystemMessage carries engine lifecycle signals. Subtype "init" announces a
// ready session and its identifier.
type SystemMessage struct {
	Type           MessageType `json:"type"`
	Subtype        string      `json:"subtype"`
	SessionID      string      `json:"session_id"`
	Model          string      `json:"model,omitempty"`
	PermissionMode string      `json:"permissionMode,omitempty"`
	Tools          []string    `json:"tools,omitempty"`
}

// MsgType returns the message type.
func (m SystemMessage) MsgType() MessageType { return MessageTypeSystem }

// SystemSubtypeInit marks the session initialization signal.
const SystemSubtypeInit = "init"

// ContentBlock is one element of an assistant message body.
type ContentBlock interface {
	BlockType() string
}

// TextBlock is completed assistant text.
type TextBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// BlockType returns the content block type.
func (b TextBlock) BlockType() string { return "text" }

// ThinkingBlock carries extended-thinking output.
type ThinkingBlock struct {
	Type     string `json:"type"`
	Thinking string `json:"thinking"`
}

// BlockType returns the content block type.
func (b ThinkingBlock) BlockType() string { return "thinking" }

// ToolUseBlock is a tool invocation with its full input.
type ToolUseBlock struct {
	Type  string         `json:"type"`
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Input map[string]any `json:"input"`
}

// BlockType returns the content block type.
func (b ToolUseBlock) BlockType() string { return "tool_use" }

// ToolResultBlock reports completion of a tool invocation. IsError is nil
// when the engine omits the flag.
type ToolResultBlock struct {
	Type      string `json:"type"`
	ToolUseID string `json:"tool_use_id"`
	IsError   *bool  `json:"is_error"`
}

// BlockType returns the content block type.
func (b ToolResultBlock) BlockType() string { return "tool_result" }

// ContentBlocks decodes a heterogeneous content array, dropping block kinds
// this worker does not model.
type ContentBlocks []ContentBlock

// UnmarshalJSON implements json.Unmarshaler.
func (blocks *ContentBlocks) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}
	decoded := make(ContentBlocks, 0, len(raws))
	for _, raw := range raws {
		var probe struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(raw, &probe); err != nil {
			continue
		}
		switch probe.Type {
		case "text":
			var block TextBlock
			if err := json.Unmarshal(raw, &block); err == nil {
				decoded = append(decoded, block)
			}
		case "thinking":
			var block ThinkingBlock
			if err := json.Unmarshal(raw, &block); err == nil {
				decoded = append(decoded, block)
			}
		case "tool_use":
			var block ToolUseBlock
			if err := json.Unmarshal(raw, &block); err == nil {
				decoded = append(decoded, block)
			}
		case "tool_result":
			var block ToolResultBlock
			if err := json.Unmarshal(raw, &block); err == nil {
				decoded = append(decoded, block)
			}
		}
	}
	*blocks = decoded
	return nil
}

// MessageContent is the inner body of an assistant message.
type MessageContent struct {
	Role    string        `json:"role"`
	Content ContentBlocks `json:"content"`
}

// AssistantMessage is a completed message from the agent.
type AssistantMessage struct {
	Type            MessageType    `json:"type"`
	SessionID       string         `json:"session_id"`
	ParentToolUseID *string        `json:"parent_tool_use_id"`
	Message         MessageContent `json:"message"`
}

// MsgType returns the message type.
func (m AssistantMessage) MsgType() MessageType { return MessageTypeAssistant }

// Usage tracks token consumption for one turn.
type Usage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
}

// ResultMessage terminates a turn with its metrics.
type ResultMessage struct {
	Type         MessageType `json:"type"`
	Subtype      string      `json:"subtype"`
	SessionID    string      `json:"session_id"`
	Result       string      `json:"result,omitempty"`
	IsError      bool        `json:"is_error"`
	NumTurns     int         `json:"num_turns"`
	DurationMs   int64       `json:"duration_ms"`
	TotalCostUSD float64     `json:"total_cost_usd"`
	Usage        Usage       `json:"usage"`
}

// MsgType returns the message type.
func (m ResultMessage) MsgType() MessageType { return MessageTypeResult }

// StreamEvent wraps an incremental streaming update. ParentToolUseID is set
// when the update belongs to a nested sub-agent.
type StreamEvent struct {
	Type            MessageType     `json:"type"`
	SessionID       string          `json:"session_id"`
	ParentToolUseID *string         `json:"parent_tool_use_id"`
	Event           json.RawMessage `json:"event"`
}

// MsgType returns the message type.
func (m StreamEvent) MsgType() MessageType { return MessageTypeStreamEvent }

// Inner stream event types.
const (
	StreamEventContentBlockStart = "content_block_start"
	StreamEventContentBlockDelta = "content_block_delta"
	StreamEventMessageStop       = "message_stop"
)

// StreamEventBody is the decoded inner payload of a StreamEvent.
type StreamEventBody struct {
	Type         string          `json:"type"`
	Index        int             `json:"index"`
	ContentBlock json.RawMessage `json:"content_block"`
	Delta        json.RawMessage `json:"delta"`
}

// StreamContentBlock is the partial block announced by content_block_start.
type StreamContentBlock struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

// StreamDelta is the incremental payload of content_block_delta.
type StreamDelta struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Body decodes the inner event payload. It returns false when the payload is
// absent or malformed.
func (m StreamEvent) Body() (StreamEventBody, bool) {
	if len(m.Event) == 0 {
		return StreamEventBody{}, false
	}
	var body StreamEventBody
	if err := json.Unmarshal(m.Event, &body); err != nil {
		return StreamEventBody{}, false
	}
	return body, true
}

// UnknownMessage carries a payload the worker could not decode into a typed
// message. Raw preserves whatever top-level keys survived parsing.
type UnknownMessage struct {
	Raw map[string]any
}

// MsgType returns the message type.
func (m UnknownMessage) MsgType() MessageType { return MessageTypeUnknown }
