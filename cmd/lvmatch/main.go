// Command lvmatch runs graph simulation, dual simulation and dual subgraph
// isomorphism queries over labeled graph files, and manages a small on-disk
// catalog of graphs.
package main

import (
	"context"
	"os"
	"os/signal"
)

var version = "dev"

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	// trap Ctrl+C and call cancel on the context
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer func() {
		signal.Stop(c)
		cancel()
	}()
	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := newRootCommand(ctx, &Input{}, version).Execute(); err != nil {
		os.Exit(1)
	}
}
