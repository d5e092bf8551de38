//go:build !bugst

package serial

import (
	"time"

	"github.com/tarm/serial"
)

// Open opens name at baud using tarm/serial, the default backend.
func Open(name string, baud int, readTimeout time.Duration) (Port, error) {
	cfg := &serial.Config{Name: name, Baud: baud, ReadTimeout: readTimeout}
	return serial.OpenPort(cfg)
}
