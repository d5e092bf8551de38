package message

import (
	"bytes"

	"github.com/kstaniek/mavlink-codec/catalog"
)

const (
	// RCChannelsID is the MAVLink common dialect message id for RC_CHANNELS.
	RCChannelsID = 65
	// RCChannelsLen is RC_CHANNELS's canonical encoded payload length.
	RCChannelsLen = 42
	// RCChannelsExtraCRC is RC_CHANNELS's extra-CRC seed byte.
	RCChannelsExtraCRC = 118
	// rcChannelCount is how many chanN_raw fields the message carries.
	rcChannelCount = 18
)

// RCChannels is the RC_CHANNELS message (id 65): the receiver's raw PWM
// reading of up to 18 RC input channels plus a received-signal-strength
// indicator.
type RCChannels struct {
	payload []byte
}

// ParseRCChannels wraps an RC_CHANNELS payload. See Heartbeat's doc comment
// for the short-payload/elided-tail contract.
func ParseRCChannels(payload []byte) RCChannels {
	return RCChannels{payload: payload}
}

// MessageID implements catalog.Body.
func (r RCChannels) MessageID() uint32 { return RCChannelsID }

// TimeBootMs returns the sender's boot-relative timestamp in milliseconds.
func (r RCChannels) TimeBootMs() uint32 {
	end := min(4, len(r.payload))
	return le32(r.payload[0:end])
}

// ChanRaw returns the raw PWM value for channel n (1-indexed, 1..18). A
// value of 0xFFFF marks the channel unused; out-of-range n or a payload too
// short to reach it both return 0, and a channel whose high byte was elided
// returns its low byte alone.
func (r RCChannels) ChanRaw(n int) uint16 {
	if n < 1 || n > rcChannelCount {
		return 0
	}
	offset := 4 + (n-1)*2
	if offset >= len(r.payload) {
		return 0
	}
	return le16(r.payload[offset:min(offset+2, len(r.payload))])
}

// ChanCount returns the number of channels the sender actually populated.
func (r RCChannels) ChanCount() uint8 { return byteAt(r.payload, 40) }

// RSSI returns the received-signal-strength indicator, or 255 if unknown
// per the dialect's convention (callers short on payload see 0, which this
// accessor does not special-case — use ChanCount/payload length to detect
// elision).
func (r RCChannels) RSSI() uint8 { return byteAt(r.payload, 41) }

func serializeRCChannels(body catalog.Body, buf *bytes.Buffer) error {
	r := body.(RCChannels)
	field := make([]byte, RCChannelsLen)
	putLE32(field[0:4], r.TimeBootMs())
	for n := 1; n <= rcChannelCount; n++ {
		offset := 4 + (n-1)*2
		putLE16(field[offset:offset+2], r.ChanRaw(n))
	}
	field[40] = r.ChanCount()
	field[41] = r.RSSI()
	buf.Write(field)
	return nil
}

// BuildRCChannels constructs an RCChannels from field values. chans must
// have length 18; unused trailing channels should be set to 0xFFFF per the
// dialect's convention.
func BuildRCChannels(timeBootMs uint32, chans [rcChannelCount]uint16, chanCount, rssi uint8) RCChannels {
	payload := make([]byte, RCChannelsLen)
	putLE32(payload[0:4], timeBootMs)
	for n := 1; n <= rcChannelCount; n++ {
		offset := 4 + (n-1)*2
		putLE16(payload[offset:offset+2], chans[n-1])
	}
	payload[40] = chanCount
	payload[41] = rssi
	return RCChannels{payload: payload}
}
