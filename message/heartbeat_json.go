package message

import "encoding/json"

type heartbeatJSON struct {
	CustomMode     uint32           `json:"custom_mode"`
	MavType        MavType          `json:"mav_type"`
	Autopilot      MavAutopilot     `json:"autopilot"`
	BaseMode       BitsField[uint8] `json:"base_mode"`
	SystemStatus   MavState         `json:"system_status"`
	MavlinkVersion uint8            `json:"mavlink_version"`
}

// MarshalJSON renders h's named fields, with MavType/Autopilot/SystemStatus
// as {"type": NAME} and BaseMode as {"bits": N} (§ serde_utils parity).
func (h Heartbeat) MarshalJSON() ([]byte, error) {
	return json.Marshal(heartbeatJSON{
		CustomMode:     h.CustomMode(),
		MavType:        h.MavType(),
		Autopilot:      h.Autopilot(),
		BaseMode:       BitsField[uint8]{Bits: h.BaseMode()},
		SystemStatus:   h.SystemStatus(),
		MavlinkVersion: h.MavlinkVersion(),
	})
}

// UnmarshalJSON parses the shape MarshalJSON produces, rebuilding the
// packed payload BuildHeartbeat would have produced from the same fields.
func (h *Heartbeat) UnmarshalJSON(data []byte) error {
	var wire heartbeatJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*h = BuildHeartbeat(wire.CustomMode, wire.MavType, wire.Autopilot, wire.BaseMode.Bits, wire.SystemStatus, wire.MavlinkVersion)
	return nil
}
