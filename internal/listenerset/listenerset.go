// File: internal/listenerset/listenerset.go
package listenerset

import (
	"context"
	"fmt"
	"io"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/fntelecomllc/pingresponder/internal/config"
	"github.com/fntelecomllc/pingresponder/internal/server"
)

// ListenerSet runs one Ping Responder per configured port. The listeners are
// independent: a bind failure ends only the goroutine that hit it, and
// nothing tells the others to stop. There is no shutdown sequence; sockets
// are released when the process exits.
type ListenerSet struct {
	cfg   config.ListenerSetConfig
	out   io.Writer
	group errgroup.Group // no context: one failure must not cancel the rest
}

// New creates a listener set that announces each bound address on out.
func New(cfg config.ListenerSetConfig, out io.Writer) *ListenerSet {
	return &ListenerSet{cfg: cfg, out: out}
}

// Start launches every listener in port order and returns immediately.
func (ls *ListenerSet) Start() {
	for _, sc := range ls.cfg.Servers() {
		ls.group.Go(func() error {
			if err := server.Run(sc, ls.out); err != nil {
				log.Printf("ListenerSet: listener on %s stopped: %v", sc.Addr(), err)
				return err
			}
			return nil
		})
	}
}

// Wait blocks until every listener has returned and reports the first error.
func (ls *ListenerSet) Wait() error {
	return ls.group.Wait()
}

// Run starts the set and blocks until ctx is done or every listener has
// returned. Cancelling ctx prints a shutdown notice and returns nil without
// touching the listeners.
func (ls *ListenerSet) Run(ctx context.Context) error {
	if err := ls.cfg.Validate(); err != nil {
		return fmt.Errorf("listener set config: %w", err)
	}
	ls.Start()

	done := make(chan error, 1)
	go func() { done <- ls.Wait() }()

	select {
	case <-ctx.Done():
		fmt.Fprintln(ls.out, "Shutting down servers...")
		return nil
	case err := <-done:
		return err
	}
}
