// File: cmd/pingserver/main.go
package main

import (
	"log"
	"os"

	"github.com/fntelecomllc/pingresponder/internal/config"
	"github.com/fntelecomllc/pingresponder/internal/server"
)

func main() {
	if err := server.Run(config.DefaultServer(), os.Stdout); err != nil {
		log.Fatalf("Ping server failed: %v", err)
	}
}
