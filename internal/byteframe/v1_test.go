package byteframe

import "testing"

// heartbeatV1 is scenario S1 from the spec's end-to-end test vectors.
var heartbeatV1 = []byte{
	254,          // stx
	9,            // len
	239,          // seq
	1,            // sysid
	2,            // compid
	0,            // msgid
	5, 0, 0, 0, 2, 3, 89, 3, 3, // payload
	31, 80, // crc
}

func TestV1Accessors(t *testing.T) {
	if got := V1Stx(heartbeatV1); got != V1STX {
		t.Errorf("Stx() = %d, want %d", got, V1STX)
	}
	if got := V1PayloadLength(heartbeatV1); got != 9 {
		t.Errorf("PayloadLength() = %d, want 9", got)
	}
	if got := V1Sequence(heartbeatV1); got != 239 {
		t.Errorf("Sequence() = %d, want 239", got)
	}
	if got := V1SystemID(heartbeatV1); got != 1 {
		t.Errorf("SystemID() = %d, want 1", got)
	}
	if got := V1ComponentID(heartbeatV1); got != 2 {
		t.Errorf("ComponentID() = %d, want 2", got)
	}
	if got := V1MessageID(heartbeatV1); got != 0 {
		t.Errorf("MessageID() = %d, want 0", got)
	}
	wantPayload := []byte{5, 0, 0, 0, 2, 3, 89, 3, 3}
	if got := V1PayloadSpan(heartbeatV1); string(got) != string(wantPayload) {
		t.Errorf("PayloadSpan() = %v, want %v", got, wantPayload)
	}
	if got := V1Checksum(heartbeatV1); got != 0x501F {
		t.Errorf("Checksum() = %#04x, want 0x501F", got)
	}
	if got := V1PacketSize(heartbeatV1); got != len(heartbeatV1) {
		t.Errorf("PacketSize() = %d, want %d", got, len(heartbeatV1))
	}
}

func TestV1AccessorIdempotence(t *testing.T) {
	a := V1Checksum(heartbeatV1)
	b := V1Checksum(heartbeatV1)
	if a != b {
		t.Fatalf("Checksum() not idempotent: %#04x != %#04x", a, b)
	}
}
