// File: cmd/pingservers/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/fntelecomllc/pingresponder/internal/config"
	"github.com/fntelecomllc/pingresponder/internal/listenerset"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Returning from main abandons the listeners; the OS closes their sockets.
	// When every listener has failed the set is done; the failure is logged
	// and the process exits normally, as it does after an interrupt.
	if err := listenerset.New(config.DefaultListenerSet(), os.Stdout).Run(ctx); err != nil {
		log.Printf("All listeners failed: %v", err)
	}
}
