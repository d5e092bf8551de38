// Command mavlink-codec-demo relays HEARTBEAT and RC_CHANNELS frames from a
// serial link to stdout as newline-delimited JSON, demonstrating the codec
// wired end to end. It is deliberately not a full ground-control CLI —
// dialect coverage, signing, and reconnection policy are all out of scope
// (see SPEC_FULL.md's Non-goals) — just enough flags to prove the pieces
// fit together the way the teacher's cmd/can-server wires its backends.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kstaniek/mavlink-codec/internal/logging"
	"github.com/kstaniek/mavlink-codec/internal/metrics"
	"github.com/kstaniek/mavlink-codec/internal/serial"
	"github.com/kstaniek/mavlink-codec/internal/telemetry"
	"github.com/kstaniek/mavlink-codec/mavlink"
	"github.com/kstaniek/mavlink-codec/packet"
	"github.com/kstaniek/mavlink-codec/semantic"

	_ "github.com/kstaniek/mavlink-codec/message" // registers HEARTBEAT/RC_CHANNELS
)

func main() {
	var (
		portName    = flag.String("port", "/dev/ttyUSB0", "serial device to read MAVLink frames from")
		baud        = flag.Int("baud", 57600, "serial baud rate")
		metricsAddr = flag.String("metrics-addr", "", "if set, serve Prometheus metrics on this address")
		skipCRC     = flag.Bool("skip-crc", false, "disable checksum validation")
		mdnsName    = flag.String("mdns-name", "", "mDNS instance name to advertise (requires -metrics-addr)")
		redisAddr   = flag.String("redis-addr", "", "if set, republish decoded frames to this Redis server")
		redisStream = flag.String("redis-stream", "mavlink:frames", "Redis stream name for -redis-addr")
		redisCBOR   = flag.Bool("redis-cbor", false, "encode republished frames as CBOR instead of JSON")
	)
	flag.Parse()

	l := logging.New("text", slog.LevelInfo, os.Stderr)
	logging.Set(l)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *metricsAddr != "" {
		metrics.InitBuildInfo("dev", "none", "unknown")
		srv := metrics.StartHTTP(*metricsAddr)
		defer func() { _ = srv.Shutdown(context.Background()) }()

		if mdnsPort := portOf(*metricsAddr); mdnsPort != 0 {
			stopMDNS, err := startMDNS(ctx, *mdnsName, mdnsPort)
			if err != nil {
				l.Warn("mdns_register_error", "error", err)
			} else {
				defer stopMDNS()
			}
		}
	}

	port, err := serial.Open(*portName, *baud, 500*time.Millisecond)
	if err != nil {
		l.Error("serial_open_error", "error", err, "port", *portName)
		os.Exit(1)
	}
	defer port.Close()

	cfg := mavlink.DefaultConfig()
	cfg.SkipCRCValidation = *skipCRC
	dec := mavlink.NewDecoder(cfg)

	var bus *telemetry.RedisBus
	if *redisAddr != "" {
		encoding := telemetry.EncodingJSON
		if *redisCBOR {
			encoding = telemetry.EncodingCBOR
		}
		bus = telemetry.NewRedisBus(redis.NewClient(&redis.Options{Addr: *redisAddr}), *redisStream, encoding)
		bus.StartAsync(ctx, 64)
		defer bus.Close()
	}

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigCh
		l.Info("shutdown_signal", "signal", s.String())
		cancel()
	}()

	if err := relay(ctx, port, dec, os.Stdout, bus, l); err != nil {
		l.Error("relay_error", "error", err)
		os.Exit(1)
	}
}

// portOf extracts the numeric port from a "host:port" address, returning
// 0 if addr has no parseable port (mDNS advertisement is then skipped).
func portOf(addr string) int {
	_, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return 0
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0
	}
	return port
}

// relay reads raw bytes from r, decodes frames via dec, and writes each
// successfully decoded frame to w as one JSON line. Decode errors are
// logged and counted, not fatal — the same "keep going" posture the
// teacher's serial backend takes toward malformed frames.
func relay(ctx context.Context, r io.Reader, dec *mavlink.Decoder, w io.Writer, bus *telemetry.RedisBus, logger *slog.Logger) error {
	buf := &bytes.Buffer{}
	chunk := make([]byte, 4096)
	enc := json.NewEncoder(w)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		n, readErr := r.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
			drainFrames(buf, dec, enc, bus, logger)
		}
		if readErr != nil {
			return fmt.Errorf("read serial port: %w", readErr)
		}
	}
}

// drainFrames decodes and emits every complete frame currently buffered,
// stopping at the first NeedsMore/EndOfStream outcome. Each decoded frame
// is written to enc and, if bus is non-nil, also enqueued for async
// republish to Redis.
func drainFrames(buf *bytes.Buffer, dec *mavlink.Decoder, enc *json.Encoder, bus *telemetry.RedisBus, logger *slog.Logger) {
	for {
		outcome, pkt, decErr := dec.Decode(buf)
		switch outcome {
		case mavlink.OutcomeReady:
			if decErr != nil {
				logger.Warn("decode_error", "error", decErr)
				continue
			}
			// The frame may be published after buf is written to again, so
			// detach it from buf's backing array first.
			pkt = packet.New(pkt.Version(), append([]byte(nil), pkt.Bytes()...))
			frame, ferr := semantic.FromPacket(pkt)
			if ferr != nil {
				logger.Warn("parse_error", "error", ferr)
				continue
			}
			if jerr := enc.Encode(frame); jerr != nil {
				logger.Error("json_encode_error", "error", jerr)
			}
			if bus != nil {
				if berr := bus.Enqueue(frame); berr != nil {
					logger.Warn("redis_enqueue_error", "error", berr)
				}
			}
		case mavlink.OutcomeNeedsMore, mavlink.OutcomeEndOfStream:
			return
		}
	}
}
