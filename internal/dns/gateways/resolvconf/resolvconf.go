// Package resolvconf finds the system resolver to query when none is configured.
package resolvconf

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/miekg/dns"
)

// ErrNoNameserver is returned when the resolver configuration lists no nameserver.
var ErrNoNameserver = errors.New("no nameserver found")

// loadConfig reads a resolv.conf style file. Replaced in tests.
var loadConfig = dns.ClientConfigFromFile

// Discover returns the first nameserver listed in path joined with port.
func Discover(path string, port int) (string, error) {
	cfg, err := loadConfig(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(cfg.Servers) == 0 {
		return "", fmt.Errorf("%w in %s", ErrNoNameserver, path)
	}
	return net.JoinHostPort(cfg.Servers[0], strconv.Itoa(port)), nil
}
