package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/inventario-cli/internal/interfaces/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Run(ctx, cli.OpenPostgres, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
