// Package config holds the fixed settings of the hellocontainer responder.
//
// There is no loader: the listener address, port and greeting are compiled in,
// and New returns the only value the production binary uses. Logging may be
// adjusted from the command line since it never reaches the HTTP surface.
package config

import (
	"fmt"
	"net"
	"strconv"
)

const (
	// DefaultHost binds every interface so a published container port reaches the process.
	DefaultHost = "0.0.0.0"

	// DefaultPort is the port the container exposes.
	DefaultPort = 3000

	// DefaultGreeting is the body returned for every GET request, without a trailing newline.
	DefaultGreeting = "Hello from inside the container"
)

// Config is not modified once the responder has started.
type Config struct {
	Host     string
	Port     int
	Greeting string
	Logging  LoggingConfig
}

// New returns the fixed configuration.
func New() *Config {
	return &Config{
		Host:     DefaultHost,
		Port:     DefaultPort,
		Greeting: DefaultGreeting,
		Logging: LoggingConfig{
			Format: LogFormatText,
			Level:  LogLevelInfo,
		},
	}
}

// Address returns the host:port pair passed to the listener.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ReadyMessage is the line printed to stdout once the socket is bound.
func (c *Config) ReadyMessage() string {
	return FormatReadyMessage(c.Port)
}

// FormatReadyMessage renders the readiness line for the port actually bound.
func FormatReadyMessage(port int) string {
	return fmt.Sprintf("Server listening on port %d", port)
}

// Body returns a fresh copy of the greeting bytes.
func (c *Config) Body() []byte {
	return []byte(c.Greeting)
}
