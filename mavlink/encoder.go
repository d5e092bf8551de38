package mavlink

import (
	"bytes"
	"fmt"

	"github.com/kstaniek/mavlink-codec/catalog"
	"github.com/kstaniek/mavlink-codec/internal/byteframe"
	"github.com/kstaniek/mavlink-codec/internal/crc16"
	"github.com/kstaniek/mavlink-codec/internal/metrics"
	"github.com/kstaniek/mavlink-codec/message"
	"github.com/kstaniek/mavlink-codec/packet"
)

// ErrVersionNotPermitted is returned by Encoder.Encode when the packet's
// version isn't allowed by Config (mirrors the Decoder's AcceptV1/AcceptV2
// toggles on the re-emit side).
type ErrVersionNotPermitted struct {
	Version packet.Version
}

func (e *ErrVersionNotPermitted) Error() string {
	return fmt.Sprintf("mavlink: encode: version %s not permitted by config", e.Version)
}

// Header carries the per-frame fields that aren't part of the message
// body: routing (SystemID, ComponentID), ordering (Sequence), and, for v2,
// the two flag bytes. Building a Packet from a Header and a catalog.Body
// is the encoder-side mirror of Packet's accessors.
type Header struct {
	Sequence      uint8
	SystemID      uint8
	ComponentID   uint8
	IncompatFlags uint8
	CompatFlags   uint8
}

// Encoder builds wire-ready Packets from a Header and a message body, and
// re-emits already-built Packets via Encode. Stateless except for the
// Config governing which versions Encode is willing to re-emit, like the
// teacher's serial.Codec and cnl.Codec.
type Encoder struct {
	Config Config
}

// Build serializes body via its catalog registration and assembles a
// complete, checksummed Packet of the requested version. For v2, the
// payload is truncated of trailing zero bytes per §4.D before the
// checksum is computed over it, matching what a v2 sender is allowed to
// omit on the wire.
func (Encoder) Build(header Header, body catalog.Body, version packet.Version) (packet.Packet, error) {
	entry, ok := catalog.Lookup(body.MessageID())
	if !ok {
		return packet.Packet{}, fmt.Errorf("mavlink: encode: unknown message id %d", body.MessageID())
	}

	var payloadBuf bytes.Buffer
	if err := entry.Serialize(body, &payloadBuf); err != nil {
		return packet.Packet{}, fmt.Errorf("mavlink: encode: %w", err)
	}
	payload := payloadBuf.Bytes()
	if version == packet.V2 {
		payload = message.Truncate(payload)
	}

	var buf bytes.Buffer
	if version == packet.V2 {
		buf.Grow(byteframe.V2StxSize + byteframe.V2HeaderSize + len(payload) + byteframe.ChecksumSize)
		buf.WriteByte(byteframe.V2STX)
		buf.WriteByte(uint8(len(payload)))
		buf.WriteByte(header.IncompatFlags)
		buf.WriteByte(header.CompatFlags)
		buf.WriteByte(header.Sequence)
		buf.WriteByte(header.SystemID)
		buf.WriteByte(header.ComponentID)
		buf.WriteByte(byte(body.MessageID()))
		buf.WriteByte(byte(body.MessageID() >> 8))
		buf.WriteByte(byte(body.MessageID() >> 16))
	} else {
		buf.Grow(byteframe.V1StxSize + byteframe.V1HeaderSize + len(payload) + byteframe.ChecksumSize)
		buf.WriteByte(byteframe.V1STX)
		buf.WriteByte(uint8(len(payload)))
		buf.WriteByte(header.Sequence)
		buf.WriteByte(header.SystemID)
		buf.WriteByte(header.ComponentID)
		buf.WriteByte(byte(body.MessageID()))
	}
	buf.Write(payload)

	// CRC input is everything after STX (LEN through the last payload byte),
	// identical layout in both versions.
	crc := crc16.Checksum(buf.Bytes()[1:], entry.ExtraCRC)
	buf.WriteByte(byte(crc))
	buf.WriteByte(byte(crc >> 8))

	metrics.IncFramesEncoded()
	return packet.New(version, buf.Bytes()), nil
}

// Encode appends p's wire bytes verbatim to out if p's version is
// permitted by e.Config, else returns *ErrVersionNotPermitted without
// writing anything. This is the re-emit path for a Packet that already
// exists (e.g. relaying an unmodified Packet just produced by Decode) —
// mirrors the teacher's cnl.Codec.EncodeTo writer-based append.
func (e Encoder) Encode(p packet.Packet, out *bytes.Buffer) error {
	permitted := p.Version() == packet.V1 && e.Config.AcceptV1 ||
		p.Version() == packet.V2 && e.Config.AcceptV2
	if !permitted {
		return &ErrVersionNotPermitted{Version: p.Version()}
	}
	if _, err := out.Write(p.Bytes()); err != nil {
		return fmt.Errorf("mavlink: encode: %w", err)
	}
	metrics.IncFramesEncoded()
	return nil
}

// BuildAndEncode is a convenience wrapper that calls Build and returns the
// new Packet's wire bytes, for call sites constructing a fresh Packet from
// a Header and body rather than re-emitting an existing one. It does not go
// through Encode, so e.Config's version check is not applied.
func (e Encoder) BuildAndEncode(header Header, body catalog.Body, version packet.Version) ([]byte, error) {
	pkt, err := e.Build(header, body, version)
	if err != nil {
		return nil, err
	}
	return pkt.Bytes(), nil
}
