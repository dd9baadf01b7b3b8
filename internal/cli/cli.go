// Package cli parses the loom command line into an app.Config, layering
// flags over the optional loom.yaml project file.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/loomui/loom/internal/app"
	"github.com/loomui/loom/internal/projfile"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// multiFlag collects repeated occurrences of a string flag.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating the program should exit cleanly (help, no target), or
// an ExitError. workDir is where the loom.yaml project file is looked up.
func Parse(args []string, workDir string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("loom", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
loom - compile and inspect loom markup components.

Usage:
  loom [options] [PATH]

Arguments:
  PATH
    A .loom markup file, or a directory whose .loom files are all compiled.
    Defaults to the entry of loom.yaml when present.

Options:
`)
		flagSet.PrintDefaults()
	}

	var includes multiFlag
	flagSet.Var(&includes, "I", "Directory to search for imports. May be repeated.")
	styleFlag := flagSet.String("style", "", "Widget style to compile with (fluent, material, native).")
	inspectFlag := flagSet.Bool("inspect", false, "Print properties, callbacks and globals of each compiled component.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	// Project file defaults; flags win.
	var proj *projfile.File
	if path, ok := projfile.Find(workDir); ok {
		loaded, err := projfile.Load(path)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		proj = loaded
		slog.Debug("Project file loaded.", "path", path)
	}

	path := ""
	if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	} else if proj != nil {
		path = proj.Entry
	}
	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	style := *styleFlag
	if style == "" && proj != nil {
		style = proj.Style
	}
	includePaths := []string(includes)
	if proj != nil {
		includePaths = append(includePaths, proj.IncludePaths...)
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		Path:         path,
		Style:        style,
		IncludePaths: includePaths,
		Inspect:      *inspectFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return config, false, nil
}
