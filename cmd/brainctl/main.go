// Command brainctl administers brains, memberships and vector links.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fairyhunter13/brainstore/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := cli.Run(ctx, os.Args, os.Stdout, cli.OpenPostgres); err != nil {
		fmt.Fprintln(os.Stderr, "brainctl:", err)
		stop()
		os.Exit(1)
	}
}
