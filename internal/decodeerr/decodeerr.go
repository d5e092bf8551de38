// Package decodeerr defines the decoder's error taxonomy (component H):
// one concrete type per validation failure the state machine can produce,
// so callers can type-switch or errors.As instead of string-matching.
// Grounded on the teacher's internal/server/errors.go sentinel-error
// classifiers, generalized from package-level sentinels (the teacher's
// failures carry no payload) to structs carrying the offending field,
// since a decode error needs to report what was wrong, not just that it
// was — the same shape the original Rust source's thiserror enum gives
// each variant its own fields.
package decodeerr

import "fmt"

// InvalidSystemID reports a frame whose SYSID failed the configured allow
// check (Config.DropInvalidSysID).
type InvalidSystemID struct {
	SystemID uint8
}

func (e *InvalidSystemID) Error() string {
	return fmt.Sprintf("mavlink: invalid system id %d", e.SystemID)
}

// InvalidComponentID reports a frame whose COMPID failed the configured
// allow check (Config.DropInvalidCompID).
type InvalidComponentID struct {
	ComponentID uint8
}

func (e *InvalidComponentID) Error() string {
	return fmt.Sprintf("mavlink: invalid component id %d", e.ComponentID)
}

// Incompatible reports a v2 frame whose INCOMPAT_FLAGS set a bit this
// codec does not understand (Config.DropIncompatible).
type Incompatible struct {
	Flags uint8
}

func (e *Incompatible) Error() string {
	return fmt.Sprintf("mavlink: incompatible flags %#02x", e.Flags)
}

// UnknownMessageID reports a frame whose MSGID has no catalog entry.
type UnknownMessageID struct {
	MessageID uint32
}

func (e *UnknownMessageID) Error() string {
	return fmt.Sprintf("mavlink: unknown message id %d", e.MessageID)
}

// InvalidCRC reports a frame whose trailing checksum did not match the
// computed one.
type InvalidCRC struct {
	Want, Got uint16
}

func (e *InvalidCRC) Error() string {
	return fmt.Sprintf("mavlink: invalid crc: got %#04x, want %#04x", e.Got, e.Want)
}

// Io wraps an underlying I/O failure encountered while filling the
// decoder's buffer. It is not itself produced by Decoder.Decode — callers
// wrap their own read errors in it before logging or propagating them
// alongside decode errors, so both classes satisfy the same interface.
type Io struct {
	Err error
}

func (e *Io) Error() string { return fmt.Sprintf("mavlink: io: %v", e.Err) }

func (e *Io) Unwrap() error { return e.Err }
