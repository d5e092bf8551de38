package message

import "encoding/json"

// BitsField wraps a bit-flag field so it (de)serializes as {"bits": N}
// instead of a bare number, mirroring the original Rust source's
// serde_utils::BitsField<T> — used for both header-level flag bytes
// (semantic.Header) and message-level bitmask fields (Heartbeat.BaseMode).
type BitsField[T ~uint8 | ~uint16 | ~uint32] struct {
	Bits T
}

type bitsFieldJSON[T any] struct {
	Bits T `json:"bits"`
}

// MarshalJSON renders the field as {"bits": N}.
func (b BitsField[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(bitsFieldJSON[T]{Bits: b.Bits})
}

// UnmarshalJSON parses {"bits": N}.
func (b *BitsField[T]) UnmarshalJSON(data []byte) error {
	var wire bitsFieldJSON[T]
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	b.Bits = wire.Bits
	return nil
}
