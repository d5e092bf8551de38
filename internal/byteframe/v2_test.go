package byteframe

import "testing"

// commandLongV2 is scenario S2 from the spec's end-to-end test vectors.
var commandLongV2 = []byte{
	253,       // stx
	30,        // len
	0,         // incompat flags
	0,         // compat flags
	0,         // seq
	0,         // sysid
	50,        // compid
	76, 0, 0,  // msgid
	0, 0, 230, 66, 0, 64, 156, 69, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 255, 1,
	188, 195, // crc
}

func TestV2Accessors(t *testing.T) {
	if got := V2Stx(commandLongV2); got != V2STX {
		t.Errorf("Stx() = %d, want %d", got, V2STX)
	}
	if got := V2PayloadLength(commandLongV2); got != 30 {
		t.Errorf("PayloadLength() = %d, want 30", got)
	}
	if got := V2MessageID(commandLongV2); got != 76 {
		t.Errorf("MessageID() = %d, want 76", got)
	}
	if got := V2ComponentID(commandLongV2); got != 50 {
		t.Errorf("ComponentID() = %d, want 50", got)
	}
	if V2HasSignature(commandLongV2) {
		t.Errorf("HasSignature() = true, want false")
	}
	if got := V2PacketSize(commandLongV2); got != len(commandLongV2) {
		t.Errorf("PacketSize() = %d, want %d", got, len(commandLongV2))
	}
	if got := V2Checksum(commandLongV2); got != uint16(188)|uint16(195)<<8 {
		t.Errorf("Checksum() = %#04x, want %#04x", got, uint16(188)|uint16(195)<<8)
	}
}

func TestV2HasSignatureFutureProofing(t *testing.T) {
	// A hypothetical future incompat flag sharing no bits with 0x01 must not
	// be mistaken for "signed" under != 0 masking when bit 0 itself is clear.
	buf := append([]byte(nil), commandLongV2...)
	buf[2] = 0x02
	if V2HasSignature(buf) {
		t.Fatalf("HasSignature() = true for incompat_flags=0x02, want false")
	}
	buf[2] = 0x01
	if !V2HasSignature(buf) {
		t.Fatalf("HasSignature() = false for incompat_flags=0x01, want true")
	}
	buf[2] = 0x03
	if !V2HasSignature(buf) {
		t.Fatalf("HasSignature() = false for incompat_flags=0x03, want true")
	}
}

func TestV2SignatureSpan(t *testing.T) {
	signed := make([]byte, 0, len(commandLongV2)+SignatureSize)
	signed = append(signed, commandLongV2...)
	signed[2] = SignedIncompatFlag
	signed = append(signed, make([]byte, SignatureSize)...)

	span := V2SignatureSpan(signed)
	if len(span) != SignatureSize {
		t.Fatalf("SignatureSpan() len = %d, want %d", len(span), SignatureSize)
	}
	if got := V2PacketSize(signed); got != len(signed) {
		t.Fatalf("PacketSize() = %d, want %d", got, len(signed))
	}
}
