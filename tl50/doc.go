// Package tl50 provides a session-oriented driver for a TL50-style
// multi-segment tower light over a serial connection.
//
// # Overview
//
// A Session claims one serial port exclusively and moves through a
// fixed lifecycle: Uninitialized, then Active after a successful Open,
// then Closed after Close. Closed is terminal; create a new Session to
// reconnect. Commands are built by the protocol package, written to the
// port, and the device's ACK or NACK response classifies the outcome.
//
// # Basic usage
//
//	sess := tl50.NewSession(serialport.NewOpener())
//	if err := sess.Open(); err != nil {
//	    log.Fatal(err)
//	}
//	defer sess.Close()
//
//	err := sess.SetSegmentSolid(0, protocol.ColorGreen)
//	if tl50.ResultOf(err) == tl50.Nacked {
//	    // device declined the command
//	}
//
// To claim a specific port instead of discovering one:
//
//	err := sess.OpenPort("COM6")
//
// # Results
//
// Every operation returns nil on success or a *CommError carrying
// exactly one Result. ResultOf classifies either form:
//
//	switch tl50.ResultOf(err) {
//	case tl50.Success:
//	case tl50.Nacked:          // device declined; fix the value, retrying verbatim repeats the error
//	case tl50.ChecksumMismatch: // response corrupt; caller may retry
//	case tl50.ReadFailed:      // timed out; session stays Active
//	// ...
//	}
//
// The driver performs no automatic retries. A failed send leaves the
// session Active with unknown device state; retrying or reopening is
// the caller's decision.
//
// # Persistence
//
// Segment and audible settings are transient: the device loses them on
// power-down. Custom color, custom intensity and custom speed settings
// are stored in device flash and survive power cycles.
//
// # Concurrency
//
// The protocol is strict request-then-response with no way to match
// interleaved replies, so a Session supports one in-flight exchange at
// a time and does no internal locking. Serialize access externally if
// multiple goroutines share a session.
//
// # Hardware independence
//
// Sessions depend only on the Port and PortOpener interfaces. The
// serialport package implements them over a real serial connection;
// tests substitute in-memory mocks.
package tl50
