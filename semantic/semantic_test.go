package semantic

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/kstaniek/mavlink-codec/mavlink"
	"github.com/kstaniek/mavlink-codec/message"
	"github.com/kstaniek/mavlink-codec/packet"
)

func buildHeartbeatPacket(t *testing.T, version packet.Version) packet.Packet {
	t.Helper()
	var enc mavlink.Encoder
	body := message.BuildHeartbeat(5, message.MavTypeQuadrotor, message.MavAutopilotArdupilotmega, 89, message.MavStateActive, 3)
	pkt, err := enc.Build(mavlink.Header{Sequence: 1, SystemID: 1, ComponentID: 2}, body, version)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return pkt
}

func TestFromPacketRendersEnumsAndBits(t *testing.T) {
	pkt := buildHeartbeatPacket(t, packet.V1)
	frame, err := FromPacket(pkt)
	if err != nil {
		t.Fatalf("FromPacket: %v", err)
	}

	data, err := json.Marshal(frame)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}

	var generic map[string]json.RawMessage
	if err := json.Unmarshal(data, &generic); err != nil {
		t.Fatalf("unmarshal generic: %v", err)
	}
	var msg map[string]json.RawMessage
	if err := json.Unmarshal(generic["message"], &msg); err != nil {
		t.Fatalf("unmarshal message: %v", err)
	}
	var mavType map[string]string
	if err := json.Unmarshal(msg["mav_type"], &mavType); err != nil {
		t.Fatalf("unmarshal mav_type: %v", err)
	}
	if mavType["type"] != "MAV_TYPE_QUADROTOR" {
		t.Fatalf("mav_type.type = %q, want MAV_TYPE_QUADROTOR", mavType["type"])
	}
	var baseMode map[string]int
	if err := json.Unmarshal(msg["base_mode"], &baseMode); err != nil {
		t.Fatalf("unmarshal base_mode: %v", err)
	}
	if baseMode["bits"] != 89 {
		t.Fatalf("base_mode.bits = %d, want 89", baseMode["bits"])
	}
}

func TestFrameJSONRoundTrip(t *testing.T) {
	pkt := buildHeartbeatPacket(t, packet.V2)
	frame, err := FromPacket(pkt)
	if err != nil {
		t.Fatalf("FromPacket: %v", err)
	}

	data, err := json.Marshal(frame)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var roundTripped Frame
	if err := json.Unmarshal(data, &roundTripped); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if roundTripped.Header.MessageID != frame.Header.MessageID {
		t.Fatalf("MessageID = %d, want %d", roundTripped.Header.MessageID, frame.Header.MessageID)
	}

	rebuilt, err := ToPacket(roundTripped)
	if err != nil {
		t.Fatalf("ToPacket: %v", err)
	}
	if !bytes.Equal(rebuilt.Payload(), pkt.Payload()) {
		t.Fatalf("ToPacket payload = % x, want % x", rebuilt.Payload(), pkt.Payload())
	}
}

func TestFromPacketUnknownMessageID(t *testing.T) {
	unknown := packet.New(packet.V1, []byte{254, 0, 0, 1, 2, 200, 0, 0})
	if _, err := FromPacket(unknown); err == nil {
		t.Fatalf("FromPacket on unregistered message id should return an error")
	}
}
