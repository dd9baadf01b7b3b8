package app

import (
	"context"
	"fmt"
	"os"

	"github.com/loomui/loom/internal/ctxlog"
	"github.com/loomui/loom/internal/fsutil"
	"github.com/loomui/loom/interp"
)

// Run compiles the configured target: one markup file, or every markup file
// under a directory. Diagnostics are printed as they are produced; a
// non-nil error means at least one file failed to compile.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	targets, err := a.resolveTargets(cfg.Path)
	if err != nil {
		return err
	}
	a.logger.Debug("Compilation targets resolved.", "count", len(targets))

	failed := 0
	for _, target := range targets {
		def := a.compiler.BuildFromPath(ctx, target)
		for _, diag := range a.compiler.Diagnostics() {
			fmt.Fprintln(a.outW, diag)
		}
		if def == nil {
			failed++
			continue
		}
		if cfg.Inspect {
			a.printDefinition(def)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed to compile", failed, len(targets))
	}
	return nil
}

func (a *App) resolveTargets(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot access %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	files, err := fsutil.FindMarkupFiles(path)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s files found under %s", fsutil.MarkupExt, path)
	}
	return files, nil
}

// printDefinition writes the introspection surface of a compiled component.
func (a *App) printDefinition(def *interp.ComponentDefinition) {
	fmt.Fprintf(a.outW, "component %s (style %s)\n", def.Name(), def.Style())
	for _, prop := range def.Properties() {
		fmt.Fprintf(a.outW, "  property %s: %s\n", prop.Name, prop.TypeName())
	}
	for _, cb := range def.Callbacks() {
		fmt.Fprintf(a.outW, "  callback %s\n", cb)
	}
	for _, global := range def.Globals() {
		fmt.Fprintf(a.outW, "  global %s\n", global)
		if props, ok := def.GlobalProperties(global); ok {
			for _, prop := range props {
				fmt.Fprintf(a.outW, "    property %s: %s\n", prop.Name, prop.TypeName())
			}
		}
		if callbacks, ok := def.GlobalCallbacks(global); ok {
			for _, cb := range callbacks {
				fmt.Fprintf(a.outW, "    callback %s\n", cb)
			}
		}
	}
}
