// Command orienteer finds least-cost routes across classified orienteering
// maps.
//
//	orienteer route   --map forest.png --start 10,20 --goal 300,410
//	orienteer route   --layout meadow.json --json
//	orienteer analyze --map forest.png --start 10,20 --goal 300,410
//	orienteer mcp     --layout meadow.json
//
// Settings come from ORIENTEER_* variables (a .env file in the working
// directory is merged in first); flags override them.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/orienteer/config"
)

func main() {
	base, err := config.Load()
	if err != nil {
		log.Fatalf("orienteer: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(base, os.Stdout, os.Stderr).Run(ctx, os.Args); err != nil {
		log.Printf("orienteer: %v", err)
		stop()
		os.Exit(1)
	}
}
