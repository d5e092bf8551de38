package message

import (
	"bytes"

	"github.com/kstaniek/mavlink-codec/catalog"
)

const (
	// HeartbeatID is the MAVLink common dialect message id for HEARTBEAT.
	HeartbeatID = 0
	// HeartbeatLen is HEARTBEAT's canonical encoded payload length.
	HeartbeatLen = 9
	// HeartbeatExtraCRC is HEARTBEAT's extra-CRC seed byte.
	HeartbeatExtraCRC = 50
)

// Heartbeat is the HEARTBEAT message (id 0): the periodic liveness and
// mode-announcement message every MAVLink node sends. Field accessors read
// straight out of the stored payload rather than eagerly unpacking into
// named fields, mirroring the source's zero-copy accessor style.
type Heartbeat struct {
	payload []byte
}

// ParseHeartbeat wraps a HEARTBEAT payload. The payload is not copied; it
// may be shorter than HeartbeatLen if the sender elided trailing zeros
// (§4.D) — accessors past the elided tail read as zero.
func ParseHeartbeat(payload []byte) Heartbeat {
	return Heartbeat{payload: payload}
}

// MessageID implements catalog.Body.
func (h Heartbeat) MessageID() uint32 { return HeartbeatID }

// CustomMode returns the autopilot-specific mode bitmask.
func (h Heartbeat) CustomMode() uint32 { return le32(h.payload[0:min(4, len(h.payload))]) }

// MavType returns the vehicle/system type.
func (h Heartbeat) MavType() MavType { return MavType(byteAt(h.payload, 4)) }

// Autopilot returns the autopilot type.
func (h Heartbeat) Autopilot() MavAutopilot { return MavAutopilot(byteAt(h.payload, 5)) }

// BaseMode returns the base mode bitmask (MAV_MODE_FLAG values).
func (h Heartbeat) BaseMode() uint8 { return byteAt(h.payload, 6) }

// SystemStatus returns the system status.
func (h Heartbeat) SystemStatus() MavState { return MavState(byteAt(h.payload, 7)) }

// MavlinkVersion returns the sender's MAVLink protocol version field.
func (h Heartbeat) MavlinkVersion() uint8 { return byteAt(h.payload, 8) }

func serializeHeartbeat(body catalog.Body, buf *bytes.Buffer) error {
	h := body.(Heartbeat)
	field := make([]byte, HeartbeatLen)
	putLE32(field[0:4], h.CustomMode())
	field[4] = uint8(h.MavType())
	field[5] = uint8(h.Autopilot())
	field[6] = h.BaseMode()
	field[7] = uint8(h.SystemStatus())
	field[8] = h.MavlinkVersion()
	buf.Write(field)
	return nil
}

// BuildHeartbeat constructs a Heartbeat from field values, suitable for
// Encoder.Build.
func BuildHeartbeat(customMode uint32, mavType MavType, autopilot MavAutopilot, baseMode uint8, systemStatus MavState, mavlinkVersion uint8) Heartbeat {
	payload := make([]byte, HeartbeatLen)
	putLE32(payload[0:4], customMode)
	payload[4] = uint8(mavType)
	payload[5] = uint8(autopilot)
	payload[6] = baseMode
	payload[7] = uint8(systemStatus)
	payload[8] = mavlinkVersion
	return Heartbeat{payload: payload}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
