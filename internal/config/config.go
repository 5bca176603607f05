// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

const (
	DefaultHost = "localhost"
	SinglePort  = 8081
	minPort     = 1
	maxPort     = 65535
)

// ListenerSetPorts are bound, in order, by the multi-port variant.
var ListenerSetPorts = []int{8081, 8082, 8083}

var (
	ErrInvalidHost   = errors.New("invalid host")
	ErrInvalidPort   = errors.New("invalid port")
	ErrNoPorts       = errors.New("no ports configured")
	ErrDuplicatePort = errors.New("duplicate port")
)

// ServerConfig describes a single Ping Responder listener.
type ServerConfig struct {
	Host        string
	Port        int
	LogRequests bool // per-request access log on stderr
}

// Addr returns the host:port the listener binds.
func (sc ServerConfig) Addr() string {
	return net.JoinHostPort(sc.Host, strconv.Itoa(sc.Port))
}

// URL returns the address as announced at startup.
func (sc ServerConfig) URL() string { return "http://" + sc.Addr() }

// Validate reports whether the config can be bound. Port 0 is rejected;
// tests that need an ephemeral port bind their own listener.
func (sc ServerConfig) Validate() error {
	if sc.Host == "" {
		return fmt.Errorf("%w: host is empty", ErrInvalidHost)
	}
	if sc.Port < minPort || sc.Port > maxPort {
		return fmt.Errorf("%w: %d is outside %d-%d", ErrInvalidPort, sc.Port, minPort, maxPort)
	}
	return nil
}

// ListenerSetConfig is a fixed host with an ordered list of ports, one listener per port.
type ListenerSetConfig struct {
	Host  string
	Ports []int
}

// Servers expands the set into per-port server configs, preserving port order.
// Request logging is always off inside a listener set.
func (lc ListenerSetConfig) Servers() []ServerConfig {
	servers := make([]ServerConfig, 0, len(lc.Ports))
	for _, port := range lc.Ports {
		servers = append(servers, ServerConfig{Host: lc.Host, Port: port})
	}
	return servers
}

func (lc ListenerSetConfig) Validate() error {
	if len(lc.Ports) == 0 {
		return ErrNoPorts
	}
	seen := make(map[int]struct{}, len(lc.Ports))
	for _, sc := range lc.Servers() {
		if err := sc.Validate(); err != nil {
			return err
		}
		if _, dup := seen[sc.Port]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicatePort, sc.Port)
		}
		seen[sc.Port] = struct{}{}
	}
	return nil
}

// DefaultServer returns the single-port variant's settings.
func DefaultServer() ServerConfig {
	return ServerConfig{Host: DefaultHost, Port: SinglePort, LogRequests: true}
}

// DefaultListenerSet returns the multi-port variant's settings.
func DefaultListenerSet() ListenerSetConfig {
	ports := make([]int, len(ListenerSetPorts))
	copy(ports, ListenerSetPorts)
	return ListenerSetConfig{Host: DefaultHost, Ports: ports}
}
