package config

import (
	"errors"
	"fmt"
	"net"
)

// Validate checks every field and returns all failures joined together.
func (c *Config) Validate() error {
	errz := []error{}

	switch {
	case c.Host == "":
		errz = append(errz, fmt.Errorf("%w: host is empty", ErrInvalidHost))
	case net.ParseIP(c.Host) == nil && c.Host != "localhost":
		errz = append(errz, fmt.Errorf("%w: %q is not an IP address", ErrInvalidHost, c.Host))
	}

	// port 0 is allowed so tests can ask the kernel for a free port
	if c.Port < 0 || c.Port > 65535 {
		errz = append(errz, fmt.Errorf("%w: %d is outside 0-65535", ErrInvalidPort, c.Port))
	}

	if c.Greeting == "" {
		errz = append(errz, ErrEmptyGreeting)
	}

	// zero value means "not set" and falls back to the defaults at setup
	if c.Logging.Level != "" && !c.Logging.Level.IsValid() {
		errz = append(errz, fmt.Errorf("%w: %s", ErrInvalidLogLevel, c.Logging.Level))
	}
	if c.Logging.Format != "" && !c.Logging.Format.IsValid() {
		errz = append(errz, fmt.Errorf("%w: %s", ErrInvalidLogFormat, c.Logging.Format))
	}

	if len(errz) > 0 {
		return fmt.Errorf("%w: %w", ErrFailedToValidateConfig, errors.Join(errz...))
	}
	return nil
}
