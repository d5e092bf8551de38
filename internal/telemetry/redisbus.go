// Package telemetry publishes decoded frames to a Redis stream, the
// collaborator-facing sink the demo and any future ground-station glue
// would fan out to. Grounded on the teacher's transport.AsyncTx (a
// non-blocking fan-in sender with an overflow hook) generalized from a
// fixed-size client queue to a single Redis XAdd publisher, using
// redis/go-redis/v9 the way the rest of the pack reaches for it and
// fxamacker/cbor/v2 for a compact wire-efficient alternative to JSON.
package telemetry

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/kstaniek/mavlink-codec/internal/logging"
	"github.com/kstaniek/mavlink-codec/internal/metrics"
	"github.com/kstaniek/mavlink-codec/semantic"
)

// Encoding selects the wire format XAdd stores the frame under.
type Encoding int

const (
	// EncodingJSON stores the frame as a JSON string field.
	EncodingJSON Encoding = iota
	// EncodingCBOR stores the frame as a binary CBOR field — smaller, and
	// what a bandwidth-constrained telemetry link would actually want.
	EncodingCBOR
)

// RedisBus publishes semantic.Frame values to a Redis stream via XAdd.
// Publish is synchronous; Enqueue funnels frames through a single
// background goroutine instead, the same non-blocking posture the
// teacher's AsyncTx gives its serial/SocketCAN writers, so a congested
// Redis link never stalls the decode loop.
type RedisBus struct {
	client   *redis.Client
	stream   string
	encoding Encoding

	async *asyncPub[semantic.Frame]
}

// NewRedisBus constructs a RedisBus publishing to stream on client.
func NewRedisBus(client *redis.Client, stream string, encoding Encoding) *RedisBus {
	return &RedisBus{client: client, stream: stream, encoding: encoding}
}

// ErrRedisBusOverflow is returned by Enqueue when the background buffer is full.
var ErrRedisBusOverflow = fmt.Errorf("telemetry: redis publish queue full")

// StartAsync spins up the background publisher goroutine with a queue of
// size buf. Call Close to stop it. Safe to call at most once.
func (b *RedisBus) StartAsync(ctx context.Context, buf int) {
	b.async = newAsyncPub(ctx, buf, func(frame semantic.Frame) error {
		return b.Publish(ctx, frame)
	}, asyncPubHooks[semantic.Frame]{
		OnError: func(err error) {
			logging.L().Warn("telemetry_async_publish_error", "error", err, "stream", b.stream)
			metrics.IncDecodeError("telemetry_publish")
		},
		OnDrop: func() error {
			metrics.IncDecodeError("telemetry_overflow")
			return ErrRedisBusOverflow
		},
	})
}

// Enqueue hands frame to the background publisher without blocking the
// caller. Requires StartAsync to have been called first.
func (b *RedisBus) Enqueue(frame semantic.Frame) error {
	return b.async.Send(frame)
}

// Close stops the background publisher, if started, and waits for its
// goroutine to exit. Frames still queued at that point may be discarded
// without being published.
func (b *RedisBus) Close() {
	if b.async != nil {
		b.async.Close()
	}
}

// Publish serializes frame per b.encoding and XAdds it to the stream.
func (b *RedisBus) Publish(ctx context.Context, frame semantic.Frame) error {
	var payload []byte
	var err error
	var field string

	switch b.encoding {
	case EncodingCBOR:
		payload, err = marshalCBOR(frame)
		field = "cbor"
	default:
		payload, err = marshalJSON(frame)
		field = "json"
	}
	if err != nil {
		metrics.IncDecodeError("telemetry_marshal")
		return fmt.Errorf("telemetry: marshal frame: %w", err)
	}

	res := b.client.XAdd(ctx, &redis.XAddArgs{
		Stream: b.stream,
		Values: map[string]any{field: payload},
	})
	if err := res.Err(); err != nil {
		logging.L().Warn("telemetry_xadd_error", "error", err, "stream", b.stream)
		return fmt.Errorf("telemetry: xadd: %w", err)
	}
	return nil
}
