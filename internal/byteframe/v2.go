package byteframe

const (
	// V2STX is the start-of-transmission byte for MAVLink v2 frames.
	V2STX = 0xFD
	// V2StxSize is the width of the STX field.
	V2StxSize = 1
	// V2HeaderSize is the width of the v2 header: LEN, INCOMPAT_FLAGS,
	// COMPAT_FLAGS, SEQ, SYSID, COMPID, MSGID(3).
	V2HeaderSize = 9
	// SignatureSize is the width of the optional v2 signing trailer.
	SignatureSize = 13
	// SignedIncompatFlag is the only currently-defined incompatibility bit.
	SignedIncompatFlag = 0x01
	// SupportedIncompatFlags is the set of incompatibility bits this codec
	// understands; anything else trips DropIncompatible validation.
	SupportedIncompatFlags = SignedIncompatFlag
	// V2MaxPacketSize bounds a fully-buffered, signed v2 frame.
	V2MaxPacketSize = V2StxSize + V2HeaderSize + MaxPayloadSize + ChecksumSize + SignatureSize
)

// V2Stx reads the start byte of buf.
func V2Stx(buf []byte) byte { return buf[0] }

// V2PayloadLength reads LEN.
func V2PayloadLength(buf []byte) uint8 { return buf[1] }

// V2IncompatFlags reads INCOMPAT_FLAGS.
func V2IncompatFlags(buf []byte) uint8 { return buf[2] }

// V2CompatFlags reads COMPAT_FLAGS.
func V2CompatFlags(buf []byte) uint8 { return buf[3] }

// V2Sequence reads SEQ.
func V2Sequence(buf []byte) uint8 { return buf[4] }

// V2SystemID reads SYSID.
func V2SystemID(buf []byte) uint8 { return buf[5] }

// V2ComponentID reads COMPID.
func V2ComponentID(buf []byte) uint8 { return buf[6] }

// V2MessageID reads the 3-byte little-endian MSGID, zero-padded to uint32.
func V2MessageID(buf []byte) uint32 {
	return uint32(buf[7]) | uint32(buf[8])<<8 | uint32(buf[9])<<16
}

// V2HasSignature reports whether the signed incompatibility bit is set.
// Masked with != 0 rather than == 1 so a future incompatibility flag
// sharing bit 0's byte position can't silently flip this (see the Open
// Question this resolves in favor of future-proofing).
func V2HasSignature(buf []byte) bool {
	return V2IncompatFlags(buf)&SignedIncompatFlag != 0
}

// V2HeaderSpan returns the header bytes: LEN, INCOMPAT_FLAGS .. MSGID,
// i.e. everything between STX and the payload, as in V1HeaderSpan.
func V2HeaderSpan(buf []byte) []byte {
	return buf[V2StxSize : V2StxSize+V2HeaderSize]
}

// V2PayloadSpan returns the payload bytes, sized by LEN.
func V2PayloadSpan(buf []byte) []byte {
	start := V2StxSize + V2HeaderSize
	end := start + int(V2PayloadLength(buf))
	return buf[start:end]
}

// V2PacketSize computes the total frame length from LEN and the signed flag.
func V2PacketSize(buf []byte) int {
	size := V2StxSize + V2HeaderSize + int(V2PayloadLength(buf)) + ChecksumSize
	if V2HasSignature(buf) {
		size += SignatureSize
	}
	return size
}

// V2ChecksumInput returns the span fed to the CRC: LEN through the last
// payload byte.
func V2ChecksumInput(buf []byte) []byte {
	end := V2StxSize + V2HeaderSize + int(V2PayloadLength(buf))
	return buf[V2StxSize:end]
}

// V2Checksum reads the little-endian CRC that follows the payload.
func V2Checksum(buf []byte) uint16 {
	payloadEnd := V2StxSize + V2HeaderSize + int(V2PayloadLength(buf))
	start := payloadEnd
	return uint16(buf[start]) | uint16(buf[start+1])<<8
}

// V2SignatureSpan returns the 13-byte signing trailer, or nil if the frame
// isn't signed. Interpreting {link_id, timestamp, signature} is a
// collaborator concern (§6); this codec only surfaces the bytes.
func V2SignatureSpan(buf []byte) []byte {
	if !V2HasSignature(buf) {
		return nil
	}
	start := V2StxSize + V2HeaderSize + int(V2PayloadLength(buf)) + ChecksumSize
	end := start + SignatureSize
	return buf[start:end]
}
