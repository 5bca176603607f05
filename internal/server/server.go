// File: internal/server/server.go
package server

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/fntelecomllc/pingresponder/internal/api"
	"github.com/fntelecomllc/pingresponder/internal/config"
)

// PingServer is one Ping Responder bound to a TCP port.
//
// No read, write or idle timeouts are configured: a slow or idle client can
// hold its connection for as long as it likes.
type PingServer struct {
	httpServer *http.Server
	listener   net.Listener
	host       string
}

// Listen binds cfg's address and announces it on out. A bind failure is
// returned as-is (wrapped) and never retried.
func Listen(cfg config.ServerConfig, out io.Writer) (*PingServer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("server config: %w", err)
	}
	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return nil, fmt.Errorf("bind %s: %w", cfg.Addr(), err)
	}
	ps := &PingServer{
		httpServer: &http.Server{Handler: api.NewRouter(api.RouterOptions{LogRequests: cfg.LogRequests})},
		listener:   ln,
		host:       cfg.Host,
	}
	fmt.Fprintf(out, "Server running on %s\n", ps.URL())
	return ps, nil
}

// Serve runs the accept loop until the listener is closed. Closing the
// server is not reported as an error.
func (ps *PingServer) Serve() error {
	if err := ps.httpServer.Serve(ps.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve %s: %w", ps.listener.Addr(), err)
	}
	return nil
}

// Addr returns the bound address.
func (ps *PingServer) Addr() net.Addr { return ps.listener.Addr() }

// URL reports the configured host with the port actually bound.
func (ps *PingServer) URL() string {
	_, port, err := net.SplitHostPort(ps.listener.Addr().String())
	if err != nil {
		return "http://" + ps.listener.Addr().String()
	}
	return "http://" + net.JoinHostPort(ps.host, port)
}

// Close closes the listener and any open connections immediately.
// In-flight requests are not drained.
func (ps *PingServer) Close() error {
	err := ps.httpServer.Close()
	// Serve may not have taken ownership of the listener yet.
	if lerr := ps.listener.Close(); lerr != nil && !errors.Is(lerr, net.ErrClosed) && err == nil {
		err = lerr
	}
	return err
}

// Run binds and serves cfg until the server fails.
func Run(cfg config.ServerConfig, out io.Writer) error {
	ps, err := Listen(cfg, out)
	if err != nil {
		return err
	}
	return ps.Serve()
}
