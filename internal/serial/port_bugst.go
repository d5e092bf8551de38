//go:build bugst

package serial

import (
	"time"

	goserial "go.bug.st/serial"
)

// Open opens name at baud using go.bug.st/serial instead of tarm/serial.
// Build with -tags bugst to select this backend; it speaks the same Port
// interface so callers never need to know which library is underneath.
func Open(name string, baud int, readTimeout time.Duration) (Port, error) {
	mode := &goserial.Mode{BaudRate: baud}
	port, err := goserial.Open(name, mode)
	if err != nil {
		return nil, err
	}
	if err := port.SetReadTimeout(readTimeout); err != nil {
		port.Close()
		return nil, err
	}
	return port, nil
}
