// Package catalog implements the message catalog registry (component C): a
// fixed, id-keyed table of {encoded payload length, extra-CRC seed, parse,
// serialize}. The registry itself is generic — message.init() registers
// HEARTBEAT and RC_CHANNELS into it, the way code generation would
// register the other ~200 dialect messages the spec leaves out of scope.
// Grounded on the teacher's can.Frame + dialect-table shape, generalized
// from a single struct to an id-indexed registry of behaviors.
package catalog

import "bytes"

// Body is the minimal contract a decoded message value must satisfy to be
// stored and round-tripped through the registry. Concrete message types
// (message.Heartbeat, message.RCChannels, ...) implement it.
type Body interface {
	// MessageID returns the catalog id this value was parsed as or will
	// serialize as.
	MessageID() uint32
}

// ParseFunc constructs a Body from a payload byte view. Implementations
// must not copy payload — it shares the packet's backing array.
type ParseFunc func(payload []byte) (Body, error)

// SerializeFunc appends the wire encoding of body to buf in schema field
// order, little-endian.
type SerializeFunc func(body Body, buf *bytes.Buffer) error

// Entry is one message's catalog registration.
type Entry struct {
	ID         uint32
	EncodedLen uint16
	ExtraCRC   uint8
	Parse      ParseFunc
	Serialize  SerializeFunc
}

var registry = make(map[uint32]Entry)

// Register adds or replaces a catalog entry. Called from each message
// package's init() — the seam code generation would target to register the
// full ~200-message dialect.
func Register(e Entry) {
	registry[e.ID] = e
}

// Lookup returns the registered entry for id, if any.
func Lookup(id uint32) (Entry, bool) {
	e, ok := registry[id]
	return e, ok
}

// ExtraCRC returns the extra-CRC seed for id, or ok=false if id is unknown
// — the query primitive §4.C specifies, used directly by the decoder's CRC
// validation step.
func ExtraCRC(id uint32) (seed uint8, ok bool) {
	e, ok := registry[id]
	if !ok {
		return 0, false
	}
	return e.ExtraCRC, true
}

// EncodedLen returns the canonical encoded payload length for id.
func EncodedLen(id uint32) (length uint16, ok bool) {
	e, ok := registry[id]
	if !ok {
		return 0, false
	}
	return e.EncodedLen, true
}
