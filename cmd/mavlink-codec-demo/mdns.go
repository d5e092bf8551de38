package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/grandcat/zeroconf"
)

// mdnsServiceType advertises the demo's metrics endpoint so a ground
// station on the same LAN can discover it without a configured address,
// the same role the teacher's cmd/can-server/mdns.go plays for its hub.
const mdnsServiceType = "_mavlink-codec._tcp"

// startMDNS registers the demo via mDNS and returns a cleanup function.
// No-op (and never errors) when port is 0, i.e. metrics are disabled.
func startMDNS(ctx context.Context, instance string, port int) (func(), error) {
	if port == 0 {
		return func() {}, nil
	}
	if instance == "" {
		host, _ := os.Hostname()
		instance = fmt.Sprintf("mavlink-codec-%s", host)
	}
	svc, err := zeroconf.Register(instance, mdnsServiceType, "local.", port, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("mdns register: %w", err)
	}
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		svc.Shutdown()
	}()
	return func() { close(done); svc.Shutdown(); time.Sleep(50 * time.Millisecond) }, nil
}
