package mavlink

import (
	"bytes"
	"errors"
	"testing"

	"github.com/kstaniek/mavlink-codec/packet"
)

func TestEncoderEncodeAppendsPermittedVersion(t *testing.T) {
	pkt := buildHeartbeatV2(t)
	enc := Encoder{Config: Config{AcceptV1: false, AcceptV2: true}}

	var out bytes.Buffer
	if err := enc.Encode(pkt, &out); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(out.Bytes(), pkt.Bytes()) {
		t.Fatalf("Encode wrote %x, want %x", out.Bytes(), pkt.Bytes())
	}
}

func TestEncoderEncodeRejectsDisallowedVersion(t *testing.T) {
	pkt := buildHeartbeatV2(t)
	enc := Encoder{Config: Config{AcceptV1: true, AcceptV2: false}}

	var out bytes.Buffer
	err := enc.Encode(pkt, &out)
	var mismatch *ErrVersionNotPermitted
	if !errors.As(err, &mismatch) {
		t.Fatalf("Encode error = %v (%T), want *ErrVersionNotPermitted", err, err)
	}
	if out.Len() != 0 {
		t.Fatalf("Encode wrote %d bytes on rejection, want 0", out.Len())
	}
	if mismatch.Version != packet.V2 {
		t.Fatalf("mismatch.Version = %v, want packet.V2", mismatch.Version)
	}
}
