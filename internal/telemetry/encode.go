package telemetry

import (
	"encoding/json"

	"github.com/fxamacker/cbor/v2"

	"github.com/kstaniek/mavlink-codec/semantic"
)

// marshalJSON renders frame via its own json.Marshaler (semantic.Frame).
func marshalJSON(frame semantic.Frame) ([]byte, error) {
	return json.Marshal(frame)
}

// marshalCBOR renders frame as CBOR by transcoding through the same JSON
// representation json.Marshal already produces: semantic.Frame's
// enum-as-{"type":NAME} and bits-as-{"bits":N} shapes come from hand-written
// MarshalJSON methods on unexported-field types (Heartbeat, RCChannels),
// which fxamacker/cbor has no tags to reach directly. Decoding into a
// generic value first and re-encoding that as CBOR keeps both encodings
// structurally identical without duplicating every message type's field
// list under cbor struct tags.
func marshalCBOR(frame semantic.Frame) ([]byte, error) {
	asJSON, err := json.Marshal(frame)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(asJSON, &generic); err != nil {
		return nil, err
	}
	return cbor.Marshal(generic)
}
