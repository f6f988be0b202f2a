// Package main is the entry point for the scaffold tool.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.trai.ch/scaffold/cmd/scaffold/commands"
	"go.trai.ch/scaffold/internal/app"
	_ "go.trai.ch/scaffold/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*app.App)) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, err := app.NewApp(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() { _ = components.App.Close() }()

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
