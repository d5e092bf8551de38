// Package mavlink is the public facade over the streaming codec: the
// resumable framing decoder (component E), the encoder (component F), and
// the Config that drives both. Grounded on the teacher's
// internal/serial.Codec.DecodeStream — same shape (align on a start byte,
// bail out for more bytes when the candidate frame isn't fully buffered
// yet, resync by discarding one byte on any validation failure) scaled up
// from one wire format to two concurrently-decodable ones.
package mavlink

import (
	"bytes"

	"github.com/kstaniek/mavlink-codec/catalog"
	"github.com/kstaniek/mavlink-codec/internal/byteframe"
	"github.com/kstaniek/mavlink-codec/internal/crc16"
	"github.com/kstaniek/mavlink-codec/internal/decodeerr"
	"github.com/kstaniek/mavlink-codec/internal/logging"
	"github.com/kstaniek/mavlink-codec/internal/metrics"
	"github.com/kstaniek/mavlink-codec/packet"
)

// Outcome classifies what a single Decode call did.
type Outcome int

const (
	// OutcomeNeedsMore means buf did not contain a complete candidate
	// frame; the caller must append more bytes and call Decode again. No
	// bytes beyond unrecoverable leading garbage were consumed.
	OutcomeNeedsMore Outcome = iota
	// OutcomeReady means Decode produced a result: either a valid Packet
	// (err is nil) or a validation failure (err is non-nil, Packet is the
	// zero value). Either way, the stream advanced and the caller should
	// call Decode again immediately — more frames may already be buffered.
	OutcomeReady
	// OutcomeEndOfStream means buf was empty when Decode was called.
	OutcomeEndOfStream
)

// Decoder turns a byte stream into a sequence of framed, validated
// Packets. The zero value is usable with a zero Config (which accepts
// neither v1 nor v2 and so emits nothing); use NewDecoder for a usable
// instance.
//
// Decoder holds no buffering of its own — *bytes.Buffer passed to Decode
// is both the input queue and the suspension point. A Packet returned
// from Decode aliases that buffer's internal array and is only guaranteed
// valid until the buffer is next modified — by the next Decode call or by
// the caller writing more bytes into it; callers that need to retain one
// longer must clone its bytes (packet.New(v, append([]byte(nil),
// pkt.Bytes()...))).
type Decoder struct {
	Config Config
}

// NewDecoder constructs a Decoder with the given configuration.
func NewDecoder(cfg Config) *Decoder {
	return &Decoder{Config: cfg}
}

func acceptedStx(b byte, cfg Config) bool {
	switch b {
	case byteframe.V1STX:
		return cfg.AcceptV1
	case byteframe.V2STX:
		return cfg.AcceptV2
	default:
		return false
	}
}

// Decode advances through buf, returning as soon as it can report a
// definite outcome. It never blocks and never reads beyond what buf
// already holds.
func (d *Decoder) Decode(buf *bytes.Buffer) (Outcome, packet.Packet, error) {
	for {
		data := buf.Bytes()
		if len(data) == 0 {
			return OutcomeEndOfStream, packet.Packet{}, nil
		}

		if !acceptedStx(data[0], d.Config) {
			i := 1
			for i < len(data) && !acceptedStx(data[i], d.Config) {
				i++
			}
			buf.Next(i)
			metrics.IncResync(i)
			if i >= len(data) {
				return OutcomeNeedsMore, packet.Packet{}, nil
			}
			continue
		}

		version := packet.Version(data[0])
		headerNeed := byteframe.V1StxSize + byteframe.V1HeaderSize
		if version == packet.V2 {
			headerNeed = byteframe.V2StxSize + byteframe.V2HeaderSize
		}
		if len(data) < headerNeed {
			return OutcomeNeedsMore, packet.Packet{}, nil
		}

		var packetSize int
		if version == packet.V2 {
			packetSize = byteframe.V2PacketSize(data)
		} else {
			packetSize = byteframe.V1PacketSize(data)
		}
		if len(data) < packetSize {
			return OutcomeNeedsMore, packet.Packet{}, nil
		}

		pkt := packet.New(version, data[:packetSize])

		if err := d.validate(pkt); err != nil {
			buf.Next(1)
			metrics.IncResync(1)
			metrics.IncDecodeError(errorLabel(err))
			logging.L().Warn("mavlink_decode_error", "error", err, "version", version.String())
			return OutcomeReady, packet.Packet{}, err
		}

		buf.Next(packetSize)
		metrics.IncFramesDecoded()
		return OutcomeReady, pkt, nil
	}
}

// validate runs every check Config enables against an already-framed,
// fully-buffered candidate packet.
func (d *Decoder) validate(pkt packet.Packet) error {
	cfg := d.Config

	// Order matches the numbered validation sequence: incompatible flags,
	// then sysid, then compid, then CRC — tie-broken so a malformed frame
	// is rejected on its cheapest-to-check defect before paying for the
	// CRC pass.
	if pkt.Version() == packet.V2 && cfg.DropIncompatible {
		if flags := pkt.IncompatFlags(); flags&^byteframe.SupportedIncompatFlags != 0 {
			return &decodeerr.Incompatible{Flags: flags}
		}
	}
	if !cfg.sysIDAllowed(pkt.SystemID()) {
		return &decodeerr.InvalidSystemID{SystemID: pkt.SystemID()}
	}
	if !cfg.compIDAllowed(pkt.ComponentID()) {
		return &decodeerr.InvalidComponentID{ComponentID: pkt.ComponentID()}
	}
	if cfg.SkipCRCValidation {
		return nil
	}

	extraCRC, ok := catalog.ExtraCRC(pkt.MessageID())
	if !ok {
		return &decodeerr.UnknownMessageID{MessageID: pkt.MessageID()}
	}
	want := crc16.Checksum(pkt.ChecksumInput(), extraCRC)
	if got := pkt.Checksum(); got != want {
		return &decodeerr.InvalidCRC{Want: want, Got: got}
	}
	return nil
}

func errorLabel(err error) string {
	switch err.(type) {
	case *decodeerr.InvalidSystemID:
		return metrics.ErrInvalidSystemID
	case *decodeerr.InvalidComponentID:
		return metrics.ErrInvalidComponentID
	case *decodeerr.Incompatible:
		return metrics.ErrIncompatible
	case *decodeerr.UnknownMessageID:
		return metrics.ErrUnknownMessageID
	case *decodeerr.InvalidCRC:
		return metrics.ErrInvalidCRC
	default:
		return "unknown"
	}
}
