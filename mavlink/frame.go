package mavlink

import (
	"github.com/kstaniek/mavlink-codec/catalog"
	"github.com/kstaniek/mavlink-codec/internal/decodeerr"
	"github.com/kstaniek/mavlink-codec/packet"
)

// Frame pairs a decoded Packet with its parsed message body, the unit the
// original source's MavFrame works with.
// Unlike semantic.Frame (the JSON/CBOR-serializable record), Frame keeps
// the raw Packet around so a caller can still reach the wire bytes,
// signature trailer, or re-encode unchanged.
type Frame struct {
	Packet packet.Packet
	Body   catalog.Body
}

// ParseFrame looks up pkt's message id in the catalog and parses its
// payload, returning a Frame. If the id isn't registered, err is a
// *decodeerr.UnknownMessageID-shaped error and Frame is the zero value.
func ParseFrame(pkt packet.Packet) (Frame, error) {
	entry, ok := catalog.Lookup(pkt.MessageID())
	if !ok {
		return Frame{}, &decodeerr.UnknownMessageID{MessageID: pkt.MessageID()}
	}
	body, err := entry.Parse(pkt.Payload())
	if err != nil {
		return Frame{}, err
	}
	return Frame{Packet: pkt, Body: body}, nil
}
