package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pixelextrude/internal/cli"
	"github.com/matzehuels/pixelextrude/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:])
	cancel()
	os.Exit(exitCode(os.Stderr, err))
}

// exitCode reports err on w and maps it to a process exit status.
func exitCode(w io.Writer, err error) int {
	switch {
	case err == nil:
		return 0
	case stderrors.Is(err, context.Canceled):
		return 130 // Standard shell convention for SIGINT
	}
	fmt.Fprintf(w, "pixelextrude: %s\n", errors.UserMessage(err))
	return 1
}

func run(ctx context.Context, args []string) error {
	var verbose bool

	// Logs go to stderr so stdout stays clean for status lines.
	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every pipeline, cache and request event")

	// The log level must be set before the root's own pre-run registers hooks.
	registerHooks := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		return registerHooks(cmd, args)
	}

	return root.ExecuteContext(ctx)
}
