package responder

import (
	"fmt"
	"net"
)

// Listen binds a TCP socket on address. IPv4 literals such as 0.0.0.0 bind
// IPv4 only; everything else lets the runtime pick the family.
func Listen(address string) (net.Listener, error) {
	listener, err := net.Listen(network(address), address)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBindFailure, address, err)
	}
	return listener, nil
}

func network(address string) string {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return "tcp"
	}
	if ip := net.ParseIP(host); ip != nil && ip.To4() != nil {
		return "tcp4"
	}
	return "tcp"
}

// boundPort reports the TCP port of a listener, or -1 for other address types.
func boundPort(listener net.Listener) int {
	if addr, ok := listener.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return -1
}
