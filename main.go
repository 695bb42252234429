// Package main provides the tg-webm-converter entry point.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/7591yj/tg-webm-converter/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := cli.Execute(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
