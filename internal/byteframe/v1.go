// Package byteframe holds the pure offset-arithmetic accessors for both
// MAVLink wire formats (component A of the codec). Every function here
// takes a borrowed byte span and returns a value or sub-slice of it; none
// of them copy, and none of them are safe to call before the caller has
// already proven (via a length check) that the span is long enough — the
// same contract the teacher's internal/can.Frame accessors and the
// original Rust source's v1.rs/v2.rs free functions rely on.
package byteframe

const (
	// V1STX is the start-of-transmission byte for MAVLink v1 frames.
	V1STX = 0xFE
	// V1StxSize is the width of the STX field.
	V1StxSize = 1
	// V1HeaderSize is the width of the v1 header, i.e. everything between
	// STX and the payload: LEN, SEQ, SYSID, COMPID, MSGID.
	V1HeaderSize = 5
	// ChecksumSize is the width of the trailing CRC field, shared by v1 and v2.
	ChecksumSize = 2
	// MaxPayloadSize is the largest payload LEN can address.
	MaxPayloadSize = 255
	// V1MaxPacketSize bounds a fully-buffered v1 frame.
	V1MaxPacketSize = V1StxSize + V1HeaderSize + MaxPayloadSize + ChecksumSize
)

// V1Stx reads the start byte of buf.
func V1Stx(buf []byte) byte { return buf[0] }

// V1PayloadLength reads LEN.
func V1PayloadLength(buf []byte) uint8 { return buf[1] }

// V1Sequence reads SEQ.
func V1Sequence(buf []byte) uint8 { return buf[2] }

// V1SystemID reads SYSID.
func V1SystemID(buf []byte) uint8 { return buf[3] }

// V1ComponentID reads COMPID.
func V1ComponentID(buf []byte) uint8 { return buf[4] }

// V1MessageID reads MSGID, widened to uint32 to share a type with v2.
func V1MessageID(buf []byte) uint32 { return uint32(buf[5]) }

// V1HeaderSpan returns the header bytes: LEN, SEQ, SYSID, COMPID, MSGID,
// i.e. everything between STX and the payload (the same V1HeaderSize bytes
// that open V1ChecksumInput).
func V1HeaderSpan(buf []byte) []byte {
	return buf[V1StxSize : V1StxSize+V1HeaderSize]
}

// V1PayloadSpan returns the payload bytes, sized by LEN.
func V1PayloadSpan(buf []byte) []byte {
	start := V1StxSize + V1HeaderSize
	end := start + int(V1PayloadLength(buf))
	return buf[start:end]
}

// V1PacketSize computes the total frame length from LEN.
func V1PacketSize(buf []byte) int {
	return V1StxSize + V1HeaderSize + int(V1PayloadLength(buf)) + ChecksumSize
}

// V1ChecksumInput returns the span fed to the CRC: everything from LEN
// through the last payload byte (i.e. header plus payload, STX excluded).
func V1ChecksumInput(buf []byte) []byte {
	end := V1StxSize + V1HeaderSize + int(V1PayloadLength(buf))
	return buf[V1StxSize:end]
}

// V1Checksum reads the little-endian CRC that follows the payload.
func V1Checksum(buf []byte) uint16 {
	end := V1PacketSize(buf)
	start := end - ChecksumSize
	return uint16(buf[start]) | uint16(buf[start+1])<<8
}
