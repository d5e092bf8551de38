package mavlink

import (
	"bytes"
	"testing"

	"github.com/kstaniek/mavlink-codec/packet"
)

func BenchmarkDecoder_Decode_V1Heartbeat(b *testing.B) {
	d := NewDecoder(DefaultConfig())
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf := bytes.NewBuffer(heartbeatV1)
		_, _, _ = d.Decode(buf)
	}
}

func BenchmarkDecoder_Decode_StreamOfHeartbeats(b *testing.B) {
	d := NewDecoder(DefaultConfig())
	var stream bytes.Buffer
	for i := 0; i < 64; i++ {
		stream.Write(heartbeatV1)
	}
	wire := stream.Bytes()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf := bytes.NewBuffer(wire)
		for {
			outcome, _, _ := d.Decode(buf)
			if outcome != OutcomeReady {
				break
			}
		}
	}
}

func BenchmarkEncoder_Build_V1Heartbeat(b *testing.B) {
	var enc Encoder
	body := buildHeartbeatBody()
	header := Header{Sequence: 1, SystemID: 1, ComponentID: 2}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = enc.Build(header, body, packet.V1)
	}
}
