// Package commands implements the CLI commands for the skill installer.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/newsskill/internal/app"
	"go.trai.ch/newsskill/internal/build"
)

// CLI represents the command line interface for the installer.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	c := &CLI{app: a}

	// Parse validates the tokens itself so that unknown flags surface as usage errors.
	c.rootCmd = &cobra.Command{
		Use:                build.Program + " install [--target <selector>] [--dir <path>] [--dry-run]",
		Short:              "Install the news aggregator skill into assistant skill directories",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := Parse(args)
			if err != nil {
				return err
			}
			return c.app.Run(cmd.Context(), req)
		},
	}

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}
