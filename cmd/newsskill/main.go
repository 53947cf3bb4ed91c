// Package main is the entry point for the news aggregator skill installer.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/newsskill/cmd/newsskill/commands"
	"go.trai.ch/newsskill/internal/app"
	"go.trai.ch/newsskill/internal/core/domain"
	_ "go.trai.ch/newsskill/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*app.App)) int {
	ctx := context.Background()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// Apply options
	for _, opt := range opts {
		opt(components.App)
	}

	defer func() {
		if err := components.App.Close(); err != nil {
			components.Logger.Warn(err.Error())
		}
	}()

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(os.Args[1:])

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		var usageErr *domain.UsageError
		if errors.As(err, &usageErr) {
			components.App.ReportUsageError(usageErr)
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
