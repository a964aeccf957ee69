package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/hoist/internal/adapters/in/cli"
)

var (
	version string
	commit  string
	date    string
)

func main() {
	cli.SetVersionInfo(version, commit, date)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx)
	stop()
	os.Exit(code)
}
