// Package interp loads loom markup at run time and turns it into live
// component trees.
//
// The entry point is the ComponentCompiler, which builds a
// ComponentDefinition from source text or a file path. A definition is an
// immutable, shareable factory; ComponentDefinition.Create instantiates it
// into a ComponentInstance whose properties, callbacks and exported global
// singletons the host reads and writes through the dynamically typed
// loom.Value system.
//
// ComponentInstance and everything reachable from it is confined to the
// goroutine that created the instance, which must be the goroutine running
// the event loop. Calls from other goroutines panic rather than corrupt
// state; use loom.PostEvent to hand work over.
package interp

import (
	"context"
	"os"

	"github.com/loomui/loom/internal/ctxlog"
	"github.com/loomui/loom/internal/markup"
)

// ComponentCompiler compiles markup into ComponentDefinitions. It holds the
// compilation configuration (include paths, widget style) between builds
// and the diagnostics of the most recent build. A compiler is reusable: a
// failed build leaves it ready for the next attempt.
//
// A ComponentCompiler is not safe for concurrent use.
type ComponentCompiler struct {
	includePaths []string
	style        string
	diags        []Diagnostic
}

// NewComponentCompiler returns a compiler with no include paths and the
// style taken from the LOOM_STYLE environment variable, falling back to the
// built-in default.
func NewComponentCompiler() *ComponentCompiler {
	style := os.Getenv("LOOM_STYLE")
	if style == "" {
		style = markup.DefaultStyle
	}
	return &ComponentCompiler{style: style}
}

// SetIncludePaths replaces the directories searched when resolving imports.
func (c *ComponentCompiler) SetIncludePaths(paths []string) {
	c.includePaths = append([]string(nil), paths...)
}

// IncludePaths returns the configured import search path.
func (c *ComponentCompiler) IncludePaths() []string {
	return append([]string(nil), c.includePaths...)
}

// SetStyle selects the widget style used by subsequent builds.
func (c *ComponentCompiler) SetStyle(style string) {
	c.style = style
}

// Style returns the widget style used by subsequent builds.
func (c *ComponentCompiler) Style() string {
	return c.style
}

// Diagnostics returns the ordered diagnostics produced by the most recent
// build. They are cleared at the start of every build; a successful build
// may still leave warnings here.
func (c *ComponentCompiler) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), c.diags...)
}

// BuildFromSource compiles markup source text into a ComponentDefinition.
// path names the source in diagnostics and anchors relative imports. It
// returns nil when compilation produced at least one error; warnings alone
// do not prevent success. Each call is a single deterministic attempt that
// first discards the previous call's diagnostics.
func (c *ComponentCompiler) BuildFromSource(ctx context.Context, source, path string) *ComponentDefinition {
	return c.build(ctx, func(p *markup.Parser) (*markup.Document, []Diagnostic) {
		doc, diags := p.ParseSource(ctx, []byte(source), path)
		return doc, fromHCL(diags)
	})
}

// BuildFromPath compiles the markup file at path into a
// ComponentDefinition. Semantics match BuildFromSource.
func (c *ComponentCompiler) BuildFromPath(ctx context.Context, path string) *ComponentDefinition {
	return c.build(ctx, func(p *markup.Parser) (*markup.Document, []Diagnostic) {
		doc, diags := p.ParseFile(ctx, path)
		return doc, fromHCL(diags)
	})
}

func (c *ComponentCompiler) build(ctx context.Context, parse func(*markup.Parser) (*markup.Document, []Diagnostic)) *ComponentDefinition {
	logger := ctxlog.FromContext(ctx)
	c.diags = nil

	style := c.style
	if !markup.KnownStyle(style) {
		c.diags = append(c.diags, Diagnostic{
			Level:   DiagnosticWarning,
			Message: "unknown widget style " + style + ", falling back to " + markup.DefaultStyle,
		})
		style = markup.DefaultStyle
	}

	doc, diags := parse(markup.NewParser(c.includePaths, style))
	c.diags = append(c.diags, diags...)

	if doc == nil || hasErrors(c.diags) {
		logger.Debug("Compilation failed.", "diagnostics", len(c.diags))
		return nil
	}
	logger.Debug("Compilation succeeded.", "component", doc.Root.Name, "style", style)
	return &ComponentDefinition{doc: doc, style: style}
}
