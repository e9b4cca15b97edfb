package tl50

import "io"

// Port is an exclusively-owned byte stream to the device. Reads are
// expected to block no longer than the opener's configured timeout; a
// timed-out read returns an error (or a short read) rather than
// blocking forever.
type Port interface {
	io.ReadWriteCloser
}

// PortOpener locates and claims serial ports. Implementations own the
// OS-level enumeration and open/close calls; the session only consumes
// the resulting byte stream.
//
// serialport.Opener provides the real implementation; tests substitute
// mocks.
type PortOpener interface {
	// Discover returns the name of a candidate port for the device, or
	// an error if none exists.
	Discover() (string, error)

	// Open claims the named port for exclusive use.
	Open(name string) (Port, error)
}
