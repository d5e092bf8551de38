// Package metrics exposes the codec's Prometheus instrumentation. Counter
// and gauge shapes are carried over from the teacher's hub/serial metrics
// (promauto registration, a local atomic mirror for cheap in-process
// logging, a readiness hook wired to /ready), relabeled for decode/encode
// events instead of CAN frame transport.
package metrics

import (
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/kstaniek/mavlink-codec/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus counters and gauges.
var (
	FramesDecoded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mavlink_frames_decoded_total",
		Help: "Total MAVLink frames successfully decoded.",
	})
	FramesEncoded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mavlink_frames_encoded_total",
		Help: "Total MAVLink frames successfully encoded.",
	})
	DecodeErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mavlink_decode_errors_total",
		Help: "Total decode errors by kind.",
	}, []string{"kind"})
	Resyncs = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mavlink_resyncs_total",
		Help: "Total times the decoder discarded a byte and resynced on the next STX.",
	})
	BytesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mavlink_bytes_dropped_total",
		Help: "Total stream bytes discarded while resyncing.",
	})
	BuildInfo = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "build_info",
		Help: "Build metadata (value is always 1).",
	}, []string{"version", "commit", "date"})

	readinessMu sync.RWMutex
	readinessFn func() bool
)

// Decode error label constants (stable label values to bound cardinality).
const (
	ErrInvalidSystemID    = "invalid_sysid"
	ErrInvalidComponentID = "invalid_compid"
	ErrIncompatible       = "incompatible_flags"
	ErrUnknownMessageID   = "unknown_msgid"
	ErrInvalidCRC         = "invalid_crc"
)

// StartHTTP serves Prometheus metrics at /metrics, and readiness at /ready.
func StartHTTP(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		if IsReady() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready\n"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("not ready\n"))
	})

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	go func() {
		logging.L().Info("metrics_listen", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.L().Error("metrics_http_error", "error", err)
		}
	}()
	return srv
}

// Local mirrored counters for cheap in-process logging without a scrape.
var (
	localDecoded uint64
	localEncoded uint64
	localErrors  uint64
	localResyncs uint64
	localDropped uint64
)

// Snapshot is a cheap copy of the local counters.
type Snapshot struct {
	FramesDecoded uint64
	FramesEncoded uint64
	DecodeErrors  uint64
	Resyncs       uint64
	BytesDropped  uint64
}

func Snap() Snapshot {
	return Snapshot{
		FramesDecoded: atomic.LoadUint64(&localDecoded),
		FramesEncoded: atomic.LoadUint64(&localEncoded),
		DecodeErrors:  atomic.LoadUint64(&localErrors),
		Resyncs:       atomic.LoadUint64(&localResyncs),
		BytesDropped:  atomic.LoadUint64(&localDropped),
	}
}

// IncFramesDecoded increments the decoded-frame counters.
func IncFramesDecoded() {
	FramesDecoded.Inc()
	atomic.AddUint64(&localDecoded, 1)
}

// IncFramesEncoded increments the encoded-frame counters.
func IncFramesEncoded() {
	FramesEncoded.Inc()
	atomic.AddUint64(&localEncoded, 1)
}

// IncDecodeError increments the decode-error counters for the given label.
func IncDecodeError(label string) {
	DecodeErrors.WithLabelValues(label).Inc()
	atomic.AddUint64(&localErrors, 1)
}

// IncResync increments the resync counter, and BytesDropped by n.
func IncResync(n int) {
	Resyncs.Inc()
	atomic.AddUint64(&localResyncs, 1)
	BytesDropped.Add(float64(n))
	atomic.AddUint64(&localDropped, uint64(n))
}

// InitBuildInfo sets the build info gauge and pre-registers error label
// series so the first error doesn't pay registration latency.
func InitBuildInfo(version, commit, date string) {
	BuildInfo.WithLabelValues(version, commit, date).Set(1)
	for _, lbl := range []string{
		ErrInvalidSystemID, ErrInvalidComponentID, ErrIncompatible,
		ErrUnknownMessageID, ErrInvalidCRC,
	} {
		DecodeErrors.WithLabelValues(lbl).Add(0)
	}
}

// SetReadinessFunc registers a function used by /ready and IsReady.
func SetReadinessFunc(fn func() bool) { readinessMu.Lock(); readinessFn = fn; readinessMu.Unlock() }

// IsReady invokes the registered readiness function if present.
func IsReady() bool {
	readinessMu.RLock()
	fn := readinessFn
	readinessMu.RUnlock()
	if fn == nil {
		return true
	}
	return fn()
}

// Ready is a concise alias used at call sites.
func Ready() bool { return IsReady() }
