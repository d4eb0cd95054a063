// Package main is the entry point for the stamp CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/stampkit/stamp/cmd/stamp/commands"
	"github.com/stampkit/stamp/internal/app"
	"github.com/stampkit/stamp/internal/core/domain"
	_ "github.com/stampkit/stamp/internal/wiring"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	defer func() { _ = components.Tracer.Close() }()

	cli := commands.New(components.App)
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrCompileFailed) || errors.Is(err, commands.ErrArtifactsInvalid) {
			// The command already reported the details.
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
