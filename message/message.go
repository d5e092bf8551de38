// Package message implements the minimal message layer (component D):
// typed accessors over a message payload for the two dialect messages in
// scope, HEARTBEAT and RC_CHANNELS, plus the v2 trailing-zero payload
// elision rules shared by every message. Grounded on the original Rust
// source's heartbeat/mod.rs and rc_channels/mod.rs field layouts, replacing
// their packed-struct transmute with bounds-checked offset reads the way
// the teacher's internal/can frame decoders do.
package message

import "github.com/kstaniek/mavlink-codec/catalog"

func init() {
	catalog.Register(catalog.Entry{
		ID:         HeartbeatID,
		EncodedLen: HeartbeatLen,
		ExtraCRC:   HeartbeatExtraCRC,
		Parse:      func(payload []byte) (catalog.Body, error) { return ParseHeartbeat(payload), nil },
		Serialize:  serializeHeartbeat,
	})
	catalog.Register(catalog.Entry{
		ID:         RCChannelsID,
		EncodedLen: RCChannelsLen,
		ExtraCRC:   RCChannelsExtraCRC,
		Parse:      func(payload []byte) (catalog.Body, error) { return ParseRCChannels(payload), nil },
		Serialize:  serializeRCChannels,
	})
}

// Truncate drops trailing zero bytes from a v2 payload before it is placed
// on the wire, per the MAVLink v2 "trailing-zero elision" rule (§4.D). A
// payload of all zeros truncates to empty.
func Truncate(payload []byte) []byte {
	end := len(payload)
	for end > 0 && payload[end-1] == 0 {
		end--
	}
	return payload[:end]
}

// ZeroExtend pads payload back out to schemaLen with zero bytes, undoing
// Truncate on decode. If payload is already at least schemaLen long it is
// returned unchanged (a sender that didn't elide, or one that appended
// dialect extension fields).
func ZeroExtend(payload []byte, schemaLen int) []byte {
	if len(payload) >= schemaLen {
		return payload
	}
	out := make([]byte, schemaLen)
	copy(out, payload)
	return out
}

// le16 and le32 read a little-endian integer from b; bytes missing from a
// short b (an elided v2 tail) read as zero, as if b had been zero-extended.
func le16(b []byte) uint16 {
	var v uint16
	for i := 0; i < len(b) && i < 2; i++ {
		v |= uint16(b[i]) << (8 * i)
	}
	return v
}

func le32(b []byte) uint32 {
	var v uint32
	for i := 0; i < len(b) && i < 4; i++ {
		v |= uint32(b[i]) << (8 * i)
	}
	return v
}

func putLE16(buf []byte, v uint16) {
	buf[0] = byte(v)
	buf[1] = byte(v >> 8)
}

func putLE32(buf []byte, v uint32) {
	buf[0] = byte(v)
	buf[1] = byte(v >> 8)
	buf[2] = byte(v >> 16)
	buf[3] = byte(v >> 24)
}

// byteAt returns b[i], or 0 if the (possibly elided) payload is too short
// to contain it — the bounds-safe-on-short-payload behavior the original
// source's serde layer gets from padding and this port gets explicitly.
func byteAt(b []byte, i int) uint8 {
	if i >= len(b) {
		return 0
	}
	return b[i]
}
