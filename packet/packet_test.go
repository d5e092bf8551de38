package packet

import "testing"

var heartbeatV1 = []byte{
	254, 9, 239, 1, 2, 0,
	5, 0, 0, 0, 2, 3, 89, 3, 3,
	31, 80,
}

func TestPacketV1Accessors(t *testing.T) {
	p := New(V1, heartbeatV1)

	if p.Version() != V1 {
		t.Fatalf("Version() = %v, want V1", p.Version())
	}
	if p.Sequence() != 239 {
		t.Fatalf("Sequence() = %d, want 239", p.Sequence())
	}
	if p.SystemID() != 1 {
		t.Fatalf("SystemID() = %d, want 1", p.SystemID())
	}
	if p.ComponentID() != 2 {
		t.Fatalf("ComponentID() = %d, want 2", p.ComponentID())
	}
	if p.MessageID() != 0 {
		t.Fatalf("MessageID() = %d, want 0", p.MessageID())
	}
	if p.Checksum() != 0x501F {
		t.Fatalf("Checksum() = %#04x, want 0x501F", p.Checksum())
	}
	if p.PacketSize() != len(heartbeatV1) {
		t.Fatalf("PacketSize() = %d, want %d", p.PacketSize(), len(heartbeatV1))
	}
	if p.HasSignature() {
		t.Fatalf("HasSignature() = true for a v1 packet, want false")
	}
	if _, ok := p.Signature(); ok {
		t.Fatalf("Signature() ok = true for a v1 packet, want false")
	}
}

func TestPacketCloneIsCheapAndShared(t *testing.T) {
	p := New(V1, heartbeatV1)
	clone := p
	if !clone.Equal(p) {
		t.Fatalf("clone does not equal original")
	}
	if &clone.buf[0] != &p.buf[0] {
		t.Fatalf("clone does not share the backing array")
	}
}

func TestPacketEqualByContent(t *testing.T) {
	a := New(V1, append([]byte(nil), heartbeatV1...))
	b := New(V1, append([]byte(nil), heartbeatV1...))
	if !a.Equal(b) {
		t.Fatalf("byte-identical packets with distinct backing arrays should be Equal")
	}
}

func TestPacketAccessorIdempotence(t *testing.T) {
	p := New(V1, heartbeatV1)
	if p.Sequence() != p.Sequence() || p.Checksum() != p.Checksum() {
		t.Fatalf("accessors are not idempotent")
	}
}
