// Package serialport implements tl50.PortOpener over a real serial
// connection using github.com/tarm/serial.
//
// The TL50's USB interface enumerates as a CDC serial device, so
// discovery is a scan over the platform's conventional device names.
// On Windows pass explicit names like "COM6" to Session.OpenPort; COM
// ports cannot be probed for existence without opening them.
package serialport

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/tarm/serial"

	"github.com/AllenNeuralDynamics/go-tl50/tl50"
)

// DefaultBaud is the serial line rate of the device's CDC interface.
const DefaultBaud = 19200

// Opener claims serial ports for a tl50.Session.
type Opener struct {
	baud        int
	readTimeout time.Duration
}

// NewOpener returns an Opener with the default baud rate and a 500ms
// per-read timeout. The read timeout only bounds individual reads; the
// session applies its own deadline across a whole exchange.
func NewOpener() *Opener {
	return &Opener{
		baud:        DefaultBaud,
		readTimeout: 500 * time.Millisecond,
	}
}

// WithBaud overrides the baud rate and returns the opener.
func (o *Opener) WithBaud(baud int) *Opener {
	if baud > 0 {
		o.baud = baud
	}
	return o
}

// WithReadTimeout overrides the per-read timeout and returns the
// opener.
func (o *Opener) WithReadTimeout(timeout time.Duration) *Opener {
	if timeout > 0 {
		o.readTimeout = timeout
	}
	return o
}

// Discover returns the first serial device node matching the
// platform's USB-serial naming conventions.
func (o *Opener) Discover() (string, error) {
	patterns := discoveryPatterns()
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			continue
		}
		for _, name := range matches {
			if _, err := os.Stat(name); err == nil {
				return name, nil
			}
		}
	}
	return "", fmt.Errorf("no candidate serial port found (looked for %v)", patterns)
}

// discoveryPatterns lists device-node globs per platform. Windows COM
// ports are not filesystem entries, so discovery there is empty and
// callers must name the port explicitly.
func discoveryPatterns() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"/dev/tty.usbmodem*", "/dev/tty.usbserial*"}
	case "windows":
		return nil
	default:
		return []string{"/dev/ttyACM*", "/dev/ttyUSB*"}
	}
}

// Open claims the named port for exclusive use.
func (o *Opener) Open(name string) (tl50.Port, error) {
	port, err := serial.OpenPort(&serial.Config{
		Name:        name,
		Baud:        o.baud,
		ReadTimeout: o.readTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return port, nil
}
