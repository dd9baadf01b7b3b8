// Package app wires the loom CLI together: it owns the logger and the
// component compiler and drives compile/inspect runs over markup files.
package app

import (
	"errors"
	"io"
	"log/slog"

	"github.com/loomui/loom/interp"
)

// Config holds everything one App run needs.
type Config struct {
	// Path is a markup file, or a directory whose markup files are all
	// compiled.
	Path string
	// Style is the widget style to compile with; empty picks the
	// compiler's default.
	Style string
	// IncludePaths are the directories searched when resolving imports.
	IncludePaths []string
	// Inspect prints the introspection surface of each successfully
	// compiled definition.
	Inspect bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Path == "" {
		return nil, errors.New("a markup file or directory is required")
	}
	return &cfg, nil
}

// App encapsulates the CLI's dependencies: an isolated logger and a
// configured compiler.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	compiler *interp.ComponentCompiler
}

// NewApp returns a fully initialized App with its own logger and compiler.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)

	compiler := interp.NewComponentCompiler()
	compiler.SetIncludePaths(cfg.IncludePaths)
	if cfg.Style != "" {
		compiler.SetStyle(cfg.Style)
	}
	logger.Debug("Compiler configured.", "style", compiler.Style(), "include_paths", len(cfg.IncludePaths))

	return &App{outW: outW, logger: logger, compiler: compiler}
}

// Compiler returns the application's compiler. This is primarily for
// testing.
func (a *App) Compiler() *interp.ComponentCompiler {
	return a.compiler
}
