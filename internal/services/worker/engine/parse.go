package engine

import "encoding/json"

// ParseMessage decodes one stream-json line into a typed message. Lines that
// fail to decode come back as UnknownMessage; parsing never errors so one bad
// line cannot kill a session stream.
func ParseMessage(line []byte) Message {
	var probe struct {
		Type MessageType `json:"type"`
	}
	if err := json.Unmarshal(line, &probe); err != nil {
		return UnknownMessage{Raw: rawMap(line)}
	}

	switch probe.Type {
	case MessageTypeSystem:
		var msg SystemMessage
		if err := json.Unmarshal(line, &msg); err != nil {
			return UnknownMessage{Raw: rawMap(line)}
		}
		return msg
	case MessageTypeAssistant:
		var msg AssistantMessage
		if err := json.Unmarshal(line, &msg); err != nil {
			return UnknownMessage{Raw: rawMap(line)}
		}
		return msg
	case MessageTypeResult:
		var msg ResultMessage
		if err := json.Unmarshal(line, &msg); err != nil {
			return UnknownMessage{Raw: rawMap(line)}
		}
		return msg
	case MessageTypeStreamEvent:
		var msg StreamEvent
		if err := json.Unmarshal(line, &msg); err != nil {
			return UnknownMessage{Raw: rawMap(line)}
		}
		return msg
	default:
		return UnknownMessage{Raw: rawMap(line)}
	}
}

// rawMap salvages top-level keys for unknown-message handling. A disguised
// terminal result is detected downstream via Raw["type"].
func rawMap(line []byte) map[string]any {
	raw := map[string]any{}
	_ = json.Unmarshal(line, &raw)
	return raw
}
