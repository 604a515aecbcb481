package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"prtrain.dev/prtrain/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := cli.NewRootCmd(version, commit, date)
	code := cli.Execute(ctx, rootCmd)
	stop()
	os.Exit(code)
}
