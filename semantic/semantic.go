// Package semantic implements the serializable record (component G): a
// {header, message} view a caller can marshal to JSON or CBOR, as opposed
// to packet.Packet's raw wire bytes. Enum fields render as {"type": NAME}
// and bit-flag fields as {"bits": N} (message.BitsField, message's enum
// types), mirroring the original Rust source's serde_utils::BitsField<T>
// and its #[serde(tag = "type")] enum convention — ported here as
// hand-written MarshalJSON/UnmarshalJSON pairs since Go has no derive
// macros to generate them.
package semantic

import (
	"encoding/json"
	"fmt"

	"github.com/kstaniek/mavlink-codec/catalog"
	"github.com/kstaniek/mavlink-codec/internal/decodeerr"
	"github.com/kstaniek/mavlink-codec/mavlink"
	"github.com/kstaniek/mavlink-codec/message"
	"github.com/kstaniek/mavlink-codec/packet"
)

// Header is the semantic (non-wire-format) view of a packet's routing
// fields, common to both versions. IncompatFlags/CompatFlags are only
// ever non-zero for a v2 Packet.
type Header struct {
	Version       packet.Version           `json:"version"`
	MessageID     uint32                   `json:"message_id"`
	Sequence      uint8                    `json:"sequence"`
	SystemID      uint8                    `json:"system_id"`
	ComponentID   uint8                    `json:"component_id"`
	IncompatFlags message.BitsField[uint8] `json:"incompat_flags,omitempty"`
	CompatFlags   message.BitsField[uint8] `json:"compat_flags,omitempty"`
}

// Frame is the {header, message} serializable record: a Packet with its
// payload already parsed into a typed message.Body, suitable for handing
// to encoding/json or fxamacker/cbor.
type Frame struct {
	Header  Header
	Message catalog.Body
}

type frameJSON struct {
	Header  Header          `json:"header"`
	Message json.RawMessage `json:"message"`
}

// MarshalJSON renders Frame as {"header": ..., "message": ...}, with
// Message serialized through its own MarshalJSON (Heartbeat/RCChannels).
func (f Frame) MarshalJSON() ([]byte, error) {
	msg, err := json.Marshal(f.Message)
	if err != nil {
		return nil, fmt.Errorf("semantic: marshal message: %w", err)
	}
	return json.Marshal(frameJSON{Header: f.Header, Message: msg})
}

// UnmarshalJSON parses the shape MarshalJSON produces, dispatching the
// message body on Header.MessageID via UnmarshalMessage — catalog.Body is
// an interface, so json can't allocate a concrete type for it unaided.
func (f *Frame) UnmarshalJSON(data []byte) error {
	var wire frameJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	body, err := UnmarshalMessage(wire.Header.MessageID, wire.Message)
	if err != nil {
		return err
	}
	f.Header = wire.Header
	f.Message = body
	return nil
}

// FromPacket parses pkt's payload via the catalog and assembles a Frame.
// err is a *decodeerr.UnknownMessageID-shaped error if pkt's message id
// isn't registered.
func FromPacket(pkt packet.Packet) (Frame, error) {
	entry, ok := catalog.Lookup(pkt.MessageID())
	if !ok {
		return Frame{}, &decodeerr.UnknownMessageID{MessageID: pkt.MessageID()}
	}
	body, err := entry.Parse(pkt.Payload())
	if err != nil {
		return Frame{}, err
	}
	return Frame{
		Header: Header{
			Version:       pkt.Version(),
			MessageID:     pkt.MessageID(),
			Sequence:      pkt.Sequence(),
			SystemID:      pkt.SystemID(),
			ComponentID:   pkt.ComponentID(),
			IncompatFlags: message.BitsField[uint8]{Bits: pkt.IncompatFlags()},
			CompatFlags:   message.BitsField[uint8]{Bits: pkt.CompatFlags()},
		},
		Message: body,
	}, nil
}

// ToPacket re-serializes f's message body through the catalog and
// reassembles a Packet with f.Header's routing fields. It is the inverse
// of FromPacket modulo trailing-zero elision on v2 (§4.D): the encoder
// strips trailing zero bytes from every v2 payload it builds, so a v2
// Frame always rebuilds to the elided form, whatever payload length the
// original Packet carried on the wire.
func ToPacket(f Frame) (packet.Packet, error) {
	var enc mavlink.Encoder
	return enc.Build(mavlink.Header{
		Sequence:      f.Header.Sequence,
		SystemID:      f.Header.SystemID,
		ComponentID:   f.Header.ComponentID,
		IncompatFlags: f.Header.IncompatFlags.Bits,
		CompatFlags:   f.Header.CompatFlags.Bits,
	}, f.Message, f.Header.Version)
}

// UnmarshalMessage decodes a catalog id plus a raw JSON message body (as
// produced by Frame.MarshalJSON through the concrete type's own
// MarshalJSON) back into the right message.Body implementation.
// Frame.UnmarshalJSON relies on it because catalog.Body is an interface
// with no element type to dispatch on without this.
func UnmarshalMessage(id uint32, raw json.RawMessage) (catalog.Body, error) {
	switch id {
	case message.HeartbeatID:
		var h message.Heartbeat
		if err := json.Unmarshal(raw, &h); err != nil {
			return nil, fmt.Errorf("semantic: unmarshal heartbeat: %w", err)
		}
		return h, nil
	case message.RCChannelsID:
		var r message.RCChannels
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, fmt.Errorf("semantic: unmarshal rc_channels: %w", err)
		}
		return r, nil
	default:
		return nil, &decodeerr.UnknownMessageID{MessageID: id}
	}
}
