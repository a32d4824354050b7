// Package main is the entry point for the economy CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"resource-economy/cmd/cli/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
