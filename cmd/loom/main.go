package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/loomui/loom/internal/app"
	"github.com/loomui/loom/internal/cli"
)

// main is the entrypoint for the loom CLI.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) error {
	workDir, err := os.Getwd()
	if err != nil {
		workDir = "."
	}

	cfg, shouldExit, err := cli.Parse(args, workDir, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	loomApp := app.NewApp(outW, cfg)
	return loomApp.Run(context.Background(), cfg)
}
