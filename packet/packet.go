// Package packet implements the zero-copy packet view (component B):
// an immutable byte slice wearing one of two typed lenses, v1 or v2. Go's
// slice header already gives a borrowed, reference-counted-by-the-runtime
// view into a shared backing array, so Packet needs no hand-rolled Arc the
// way the original Rust source's bytes::Bytes does — a slice copy is the
// O(1) clone the spec asks for.
package packet

import (
	"bytes"

	"github.com/kstaniek/mavlink-codec/internal/byteframe"
)

// Version tags which frame format a Packet's buffer was parsed as.
type Version uint8

const (
	// V1 tags a MAVLink v1 (0xFE) packet.
	V1 Version = byteframe.V1STX
	// V2 tags a MAVLink v2 (0xFD) packet.
	V2 Version = byteframe.V2STX
)

// String renders the version the way log lines and error messages want it.
func (v Version) String() string {
	switch v {
	case V1:
		return "v1"
	case V2:
		return "v2"
	default:
		return "unknown"
	}
}

// Packet is an immutable view over a complete, validated MAVLink frame. The
// zero value is not valid; construct one via New, which is only called by
// the decoder after full validation, the encoder when composing a frame
// from a header and message body (which is also how semantic.ToPacket
// rebuilds one from its record), or a direct conversion from an
// already-valid foreign representation.
type Packet struct {
	version Version
	buf     []byte
}

// New wraps buf as a Packet of the given version. The caller must ensure
// buf is already a complete, self-consistent frame — New performs no
// validation, mirroring the source's V1Packet::new/V2Packet::new which are
// thin constructors, not parsers.
func New(version Version, buf []byte) Packet {
	return Packet{version: version, buf: buf}
}

// Version reports which frame format this packet was parsed as.
func (p Packet) Version() Version { return p.version }

// Bytes returns the complete raw frame, STX through the last trailer byte.
func (p Packet) Bytes() []byte { return p.buf }

// IsZero reports whether p is the zero value (no backing buffer).
func (p Packet) IsZero() bool { return p.buf == nil }

// Equal compares two packets byte-wise, per §4.B.
func (p Packet) Equal(other Packet) bool {
	return p.version == other.version && bytes.Equal(p.buf, other.buf)
}

// Stx returns the frame's start-of-transmission byte.
func (p Packet) Stx() byte {
	if p.version == V2 {
		return byteframe.V2Stx(p.buf)
	}
	return byteframe.V1Stx(p.buf)
}

// PayloadLength returns LEN, the on-wire payload byte count.
func (p Packet) PayloadLength() uint8 {
	if p.version == V2 {
		return byteframe.V2PayloadLength(p.buf)
	}
	return byteframe.V1PayloadLength(p.buf)
}

// Sequence returns SEQ.
func (p Packet) Sequence() uint8 {
	if p.version == V2 {
		return byteframe.V2Sequence(p.buf)
	}
	return byteframe.V1Sequence(p.buf)
}

// SystemID returns SYSID.
func (p Packet) SystemID() uint8 {
	if p.version == V2 {
		return byteframe.V2SystemID(p.buf)
	}
	return byteframe.V1SystemID(p.buf)
}

// ComponentID returns COMPID.
func (p Packet) ComponentID() uint8 {
	if p.version == V2 {
		return byteframe.V2ComponentID(p.buf)
	}
	return byteframe.V1ComponentID(p.buf)
}

// MessageID returns MSGID, widened to uint32 regardless of version.
func (p Packet) MessageID() uint32 {
	if p.version == V2 {
		return byteframe.V2MessageID(p.buf)
	}
	return byteframe.V1MessageID(p.buf)
}

// IncompatFlags returns the v2 INCOMPAT_FLAGS byte, or 0 for v1 frames
// (which have no such field).
func (p Packet) IncompatFlags() uint8 {
	if p.version == V2 {
		return byteframe.V2IncompatFlags(p.buf)
	}
	return 0
}

// CompatFlags returns the v2 COMPAT_FLAGS byte, or 0 for v1 frames.
func (p Packet) CompatFlags() uint8 {
	if p.version == V2 {
		return byteframe.V2CompatFlags(p.buf)
	}
	return 0
}

// HasSignature reports whether a v2 frame carries a signing trailer;
// always false for v1.
func (p Packet) HasSignature() bool {
	return p.version == V2 && byteframe.V2HasSignature(p.buf)
}

// Payload returns the payload span, sized by LEN.
func (p Packet) Payload() []byte {
	if p.version == V2 {
		return byteframe.V2PayloadSpan(p.buf)
	}
	return byteframe.V1PayloadSpan(p.buf)
}

// Checksum returns the little-endian CRC trailing the payload.
func (p Packet) Checksum() uint16 {
	if p.version == V2 {
		return byteframe.V2Checksum(p.buf)
	}
	return byteframe.V1Checksum(p.buf)
}

// ChecksumInput returns the span fed to the CRC: LEN through the last
// payload byte.
func (p Packet) ChecksumInput() []byte {
	if p.version == V2 {
		return byteframe.V2ChecksumInput(p.buf)
	}
	return byteframe.V1ChecksumInput(p.buf)
}

// Signature returns the 13-byte v2 signing trailer and true if present.
// Interpreting {link_id, timestamp, signature} is left to the caller;
// this codec never authenticates it (§1 Non-goals).
func (p Packet) Signature() ([]byte, bool) {
	if p.version != V2 {
		return nil, false
	}
	sig := byteframe.V2SignatureSpan(p.buf)
	return sig, sig != nil
}

// PacketSize returns the total frame length in bytes.
func (p Packet) PacketSize() int {
	if p.version == V2 {
		return byteframe.V2PacketSize(p.buf)
	}
	return byteframe.V1PacketSize(p.buf)
}
