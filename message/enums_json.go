package message

import (
	"encoding/json"
	"fmt"
)

// enumJSON is the {"type": "NAME"} wire shape shared by every dialect
// enum, mirroring the original Rust source's #[serde(tag = "type")] enums
// — Go has no derive macro for this, so each enum gets a small
// MarshalJSON/UnmarshalJSON pair instead of one generic implementation
// (a generic can't range over a type's own name table without reflection
// heavier than three short methods).
type enumJSON struct {
	Type string `json:"type"`
}

// MarshalJSON renders t as {"type": "MAV_TYPE_..."}.
func (t MavType) MarshalJSON() ([]byte, error) {
	return json.Marshal(enumJSON{Type: t.String()})
}

// UnmarshalJSON parses {"type": "MAV_TYPE_..."}.
func (t *MavType) UnmarshalJSON(data []byte) error {
	var wire enumJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	for v, name := range mavTypeNames {
		if name == wire.Type {
			*t = v
			return nil
		}
	}
	return fmt.Errorf("message: unknown MavType %q", wire.Type)
}

// MarshalJSON renders a as {"type": "MAV_AUTOPILOT_..."}.
func (a MavAutopilot) MarshalJSON() ([]byte, error) {
	return json.Marshal(enumJSON{Type: a.String()})
}

// UnmarshalJSON parses {"type": "MAV_AUTOPILOT_..."}.
func (a *MavAutopilot) UnmarshalJSON(data []byte) error {
	var wire enumJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	for v, name := range mavAutopilotNames {
		if name == wire.Type {
			*a = v
			return nil
		}
	}
	return fmt.Errorf("message: unknown MavAutopilot %q", wire.Type)
}

// MarshalJSON renders s as {"type": "MAV_STATE_..."}.
func (s MavState) MarshalJSON() ([]byte, error) {
	return json.Marshal(enumJSON{Type: s.String()})
}

// UnmarshalJSON parses {"type": "MAV_STATE_..."}.
func (s *MavState) UnmarshalJSON(data []byte) error {
	var wire enumJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	for v, name := range mavStateNames {
		if name == wire.Type {
			*s = v
			return nil
		}
	}
	return fmt.Errorf("message: unknown MavState %q", wire.Type)
}
