package tl50

import (
	"errors"
	"fmt"
	"time"

	"github.com/AllenNeuralDynamics/go-tl50/protocol"
)

// sessionState tracks the lifecycle of a Session.
type sessionState int

const (
	// stateUninitialized: created but no port claimed yet
	stateUninitialized sessionState = iota

	// stateActive: port claimed, commands may be sent
	stateActive

	// stateClosed: terminal; a new Session is required to reopen
	stateClosed
)

// Session owns one exclusive connection to a tower light and sequences
// command/response exchanges over it.
//
// The protocol is strictly request-then-response with no request
// identifiers, so only one exchange may be in flight at a time. A
// Session performs no locking of its own; a multi-goroutine caller must
// serialize access externally.
type Session struct {
	opener PortOpener
	config Config

	state    sessionState
	port     Port
	portName string
}

// NewSession creates a Session in the Uninitialized state. The opener
// supplies port discovery and claiming; no port is touched until Open.
//
// Example:
//
//	sess := tl50.NewSession(serialport.NewOpener(),
//	    tl50.WithTimeout(5*time.Second),
//	)
func NewSession(opener PortOpener, opts ...Option) *Session {
	if opener == nil {
		panic("opener cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Session{
		opener: opener,
		config: cfg,
	}
}

// Open asks the opener for a candidate port and claims it. On success
// the session transitions to Active and issues the capability-probe
// handshake, which the device acknowledges and persists session context
// for. On failure the session stays Uninitialized and Open may be
// retried.
func (s *Session) Open() error {
	return s.open("")
}

// OpenPort claims the named port directly, skipping discovery.
// Otherwise behaves like Open.
func (s *Session) OpenPort(name string) error {
	if name == "" {
		return commErr(PortNotFound, errors.New("empty port name"))
	}
	return s.open(name)
}

func (s *Session) open(name string) error {
	switch s.state {
	case stateActive:
		return nil
	case stateClosed:
		return commErr(NotInitialized, errors.New("session is closed"))
	}

	if name == "" {
		candidate, err := s.opener.Discover()
		if err != nil {
			return commErr(PortNotFound, err)
		}
		name = candidate
	}

	port, err := s.opener.Open(name)
	if err != nil {
		return commErr(PortOpenFailed, err)
	}

	s.port = port
	s.portName = name
	s.state = stateActive

	s.logDebug("port claimed", "port", name)

	if s.config.Probe {
		if err := s.exchange(protocol.BuildHandshakeCmd()); err != nil {
			// Probe failed: release the port and allow a retry.
			_ = port.Close()
			s.port = nil
			s.portName = ""
			s.state = stateUninitialized
			return err
		}
	}

	s.logInfo("session opened", "port", name)
	return nil
}

// Close releases the transport and transitions to Closed regardless of
// the prior state. Closing an already-closed session returns nil.
func (s *Session) Close() error {
	if s.state == stateClosed {
		return nil
	}

	if s.port != nil {
		_ = s.port.Close()
		s.port = nil
	}
	s.state = stateClosed

	s.logInfo("session closed", "port", s.portName)
	return nil
}

// Active reports whether the session holds a claimed port and accepts
// commands.
func (s *Session) Active() bool {
	return s.state == stateActive
}

// PortName returns the name of the claimed port, or "" before Open.
func (s *Session) PortName() string {
	return s.portName
}

// SetSegment changes the indication of a single segment (0-based index,
// 0-9). Fields of desc that the chosen animation ignores are still
// validated and transmitted. Not retained across power cycles.
func (s *Session) SetSegment(segment int, desc protocol.SegmentCommand) error {
	frame, err := protocol.BuildSetSegmentCmd(segment, desc)
	if err != nil {
		return commErr(Nacked, err)
	}
	return s.send(frame)
}

// SetSegmentSolid turns a segment on to a steady color at high
// intensity. Not retained across power cycles.
func (s *Session) SetSegmentSolid(segment int, color protocol.Color) error {
	return s.SetSegment(segment, protocol.SegmentCommand{
		Animation:  protocol.AnimationSteady,
		Color1:     color,
		Intensity1: protocol.IntensityHigh,
	})
}

// SetSegmentOff turns off indication of a segment. Not retained across
// power cycles.
func (s *Session) SetSegmentOff(segment int) error {
	return s.SetSegment(segment, protocol.SegmentCommand{
		Animation: protocol.AnimationOff,
	})
}

// SetAudible changes the sound pattern of the audible segment, if
// present. Not retained across power cycles.
func (s *Session) SetAudible(pattern protocol.Audible) error {
	frame, err := protocol.BuildSetAudibleCmd(pattern)
	if err != nil {
		return commErr(Nacked, err)
	}
	return s.send(frame)
}

// SetCustomColor changes the RGB value used when the given custom color
// slot is active. The triplet controls only the ratio of the colors;
// brightness is controlled by intensity. Persisted by the device across
// power cycles.
func (s *Session) SetCustomColor(slot protocol.CustomSlot, r, g, b byte) error {
	frame, err := protocol.BuildSetCustomColorCmd(slot, r, g, b)
	if err != nil {
		return commErr(Nacked, err)
	}
	return s.send(frame)
}

// SetCustomIntensity changes the duty cycle (0-100) used when
// IntensityCustom is active. Persisted by the device across power
// cycles.
func (s *Session) SetCustomIntensity(percent int) error {
	frame, err := protocol.BuildSetCustomIntensityCmd(percent)
	if err != nil {
		return commErr(Nacked, err)
	}
	return s.send(frame)
}

// SetCustomSpeed changes the animation speed in dHz (5-200) used when
// SpeedCustom is active. Persisted by the device across power cycles.
func (s *Session) SetCustomSpeed(dHz int) error {
	frame, err := protocol.BuildSetCustomSpeedCmd(dHz)
	if err != nil {
		return commErr(Nacked, err)
	}
	return s.send(frame)
}

// send guards the state machine around one exchange.
func (s *Session) send(frame []byte) error {
	if s.state != stateActive {
		return commErr(NotInitialized, errors.New("open a session before sending"))
	}
	return s.exchange(frame)
}

// exchange writes one command frame and reads the device's response.
// A write failure or a timed-out read leaves the session Active with
// unknown device state; the caller decides whether to retry or close.
func (s *Session) exchange(frame []byte) error {
	if _, err := s.port.Write(frame); err != nil {
		s.logError("write failed", "cmd", fmt.Sprintf("0x%02X", frame[1]), "err", err)
		return commErr(WriteFailed, err)
	}

	resp := make([]byte, protocol.ResponseFrameSize)
	if err := s.readFull(resp); err != nil {
		s.logError("read failed", "cmd", fmt.Sprintf("0x%02X", frame[1]), "err", err)
		return commErr(ReadFailed, err)
	}

	status, err := protocol.ParseResponse(resp)
	if err != nil {
		// Any framing damage means the response bytes cannot be
		// trusted, the same corruption class as a checksum failure.
		return commErr(ChecksumMismatch, err)
	}

	if status == protocol.StatusNack {
		s.logDebug("device declined command", "cmd", fmt.Sprintf("0x%02X", frame[1]))
		return commErr(Nacked, nil)
	}

	return nil
}

// readFull reads len(buf) response bytes within the exchange timeout.
// Serial reads may legally return short (or empty) chunks, so it loops
// until the buffer is full or the deadline passes.
func (s *Session) readFull(buf []byte) error {
	deadline := time.Now().Add(s.config.ExchangeTimeout)
	filled := 0

	for filled < len(buf) {
		if time.Now().After(deadline) {
			return fmt.Errorf("timed out after %s with %d of %d bytes",
				s.config.ExchangeTimeout, filled, len(buf))
		}

		n, err := s.port.Read(buf[filled:])
		if err != nil {
			return err
		}
		filled += n
	}

	return nil
}

func (s *Session) logDebug(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Debug(msg, keysAndValues...)
	}
}

func (s *Session) logInfo(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Info(msg, keysAndValues...)
	}
}

func (s *Session) logError(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Error(msg, keysAndValues...)
	}
}
