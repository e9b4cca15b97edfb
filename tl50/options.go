package tl50

import "time"

// Config holds the session configuration.
type Config struct {
	// Logger is used for logging operations (optional)
	Logger Logger

	// ExchangeTimeout bounds one full write-then-read command exchange
	ExchangeTimeout time.Duration

	// Probe controls whether Open issues the capability-probe handshake
	// after claiming the port
	Probe bool
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		ExchangeTimeout: 2 * time.Second,
		Probe:           true,
	}
}

// Option is a functional option for configuring a Session.
type Option func(*Config)

// WithLogger sets a logger for session operations.
//
// Example:
//
//	sess := tl50.NewSession(opener, tl50.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithTimeout bounds each command exchange (write plus response read).
// The opener should configure its ports with a matching read timeout.
//
// Example:
//
//	sess := tl50.NewSession(opener, tl50.WithTimeout(5*time.Second))
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.ExchangeTimeout = timeout
		}
	}
}

// WithProbe enables or disables the capability-probe handshake issued
// after the port is claimed. Default is true; disabling it is only
// useful against devices or fixtures that do not answer the handshake.
//
// Example:
//
//	sess := tl50.NewSession(opener, tl50.WithProbe(false))
func WithProbe(probe bool) Option {
	return func(c *Config) {
		c.Probe = probe
	}
}
