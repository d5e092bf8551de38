package telemetry

import (
	"testing"

	"github.com/kstaniek/mavlink-codec/mavlink"
	"github.com/kstaniek/mavlink-codec/message"
	"github.com/kstaniek/mavlink-codec/packet"
	"github.com/kstaniek/mavlink-codec/semantic"
)

func buildFrame(t *testing.T) semantic.Frame {
	t.Helper()
	var enc mavlink.Encoder
	body := message.BuildHeartbeat(5, message.MavTypeQuadrotor, message.MavAutopilotArdupilotmega, 89, message.MavStateActive, 3)
	pkt, err := enc.Build(mavlink.Header{Sequence: 1, SystemID: 1, ComponentID: 2}, body, packet.V1)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	frame, err := semantic.FromPacket(pkt)
	if err != nil {
		t.Fatalf("FromPacket: %v", err)
	}
	return frame
}

func TestMarshalJSONProducesNonEmptyPayload(t *testing.T) {
	data, err := marshalJSON(buildFrame(t))
	if err != nil {
		t.Fatalf("marshalJSON: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("marshalJSON produced empty payload")
	}
}

func TestMarshalCBORProducesNonEmptyPayload(t *testing.T) {
	data, err := marshalCBOR(buildFrame(t))
	if err != nil {
		t.Fatalf("marshalCBOR: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("marshalCBOR produced empty payload")
	}
}
