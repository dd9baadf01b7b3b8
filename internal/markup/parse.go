package markup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/loomui/loom/internal/ctxlog"
	"github.com/loomui/loom/internal/fsutil"
)

// Parser turns markup source into an analyzed Document. A Parser is cheap
// and single-use per build; the compiler constructs a fresh one for every
// attempt so no diagnostics or file caches leak between builds.
type Parser struct {
	includePaths []string
	registry     *ElementRegistry
}

// NewParser returns a parser that resolves imports against includePaths and
// validates elements against the widget set of the given style.
func NewParser(includePaths []string, style string) *Parser {
	return &Parser{
		includePaths: includePaths,
		registry:     NewElementRegistry(style),
	}
}

// ParseSource analyzes the given markup source. virtualPath names the
// source in diagnostics and anchors relative imports.
func (p *Parser) ParseSource(ctx context.Context, src []byte, virtualPath string) (*Document, hcl.Diagnostics) {
	s := p.newSession(virtualPath)
	if abs, err := filepath.Abs(virtualPath); err == nil {
		s.loaded[abs] = true
		s.loading = append(s.loading, abs)
	}
	root, diags := s.decodeSource(src, virtualPath)
	s.diags = append(s.diags, diags...)
	if root != nil {
		s.mergeFile(ctx, root, virtualPath)
	}
	return s.finish(ctx, root)
}

// ParseFile reads and analyzes the markup file at path.
func (p *Parser) ParseFile(ctx context.Context, path string) (*Document, hcl.Diagnostics) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Failed to read markup file",
			Detail:   err.Error(),
		}}
	}
	s := p.newSession(path)
	if abs, absErr := filepath.Abs(path); absErr == nil {
		s.loaded[abs] = true
		s.loading = append(s.loading, abs)
	}
	root, diags := s.decodeSource(src, path)
	s.diags = append(s.diags, diags...)
	if root != nil {
		s.mergeFile(ctx, root, path)
	}
	return s.finish(ctx, root)
}

// loadSession carries the state of one parse: the merged document, which
// files were loaded, and the in-progress stack used for cycle detection.
type loadSession struct {
	p       *Parser
	hclp    *hclparse.Parser
	doc     *Document
	loaded  map[string]bool
	loading []string
	diags   hcl.Diagnostics

	// pendingElements are element nodes whose type was not in the style
	// registry when first seen; they may still name a component that a
	// later import contributes.
	pendingElements []pendingElement
}

type pendingElement struct {
	el  *Element
	rng hcl.Range
}

func (p *Parser) newSession(path string) *loadSession {
	return &loadSession{
		p:    p,
		hclp: hclparse.NewParser(),
		doc: &Document{
			Path:       path,
			Components: make(map[string]*Component),
			Globals:    make(map[string]*Global),
		},
		loaded: make(map[string]bool),
	}
}

func (s *loadSession) decodeSource(src []byte, path string) (*fileRoot, hcl.Diagnostics) {
	file, diags := s.hclp.ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, diags
	}
	var root fileRoot
	decodeDiags := gohcl.DecodeBody(file.Body, nil, &root)
	diags = append(diags, decodeDiags...)
	if decodeDiags.HasErrors() {
		return nil, diags
	}
	return &root, diags
}

// mergeFile translates every block of one file into the document, processing
// imports first so imported components are visible to the importing file.
func (s *loadSession) mergeFile(ctx context.Context, root *fileRoot, path string) {
	for _, imp := range root.Imports {
		s.loadImport(ctx, imp, filepath.Dir(path))
	}
	for _, gb := range root.Globals {
		s.mergeGlobal(gb)
	}
	for _, cb := range root.Components {
		s.mergeComponent(cb)
	}
}

func (s *loadSession) loadImport(ctx context.Context, imp *importBlock, fromDir string) {
	logger := ctxlog.FromContext(ctx)
	rng := imp.Path.Range()

	pathVal, diags := imp.Path.Value(nil)
	if diags.HasErrors() {
		s.diags = append(s.diags, diags...)
		return
	}
	if pathVal.IsNull() || pathVal.Type() != cty.String {
		s.errorf(&rng, "Invalid import path", "the import path must be a string literal")
		return
	}
	name := pathVal.AsString()

	resolved, found := fsutil.ResolveImport(name, fromDir, s.p.includePaths)
	if !found {
		s.errorf(&rng, "Import not found",
			fmt.Sprintf("no file named %q exists relative to the importing file or on the include path", name))
		return
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		abs = resolved
	}

	for _, inProgress := range s.loading {
		if inProgress == abs {
			s.errorf(&rng, "Import cycle",
				fmt.Sprintf("importing %q would close a cycle of imports", name))
			return
		}
	}
	if s.loaded[abs] {
		// Diamond imports are fine; the first load already merged the file.
		return
	}
	s.loaded[abs] = true
	logger.Debug("Loading markup import.", "path", resolved)

	src, err := os.ReadFile(resolved)
	if err != nil {
		s.errorf(&rng, "Failed to read import", err.Error())
		return
	}
	root, diags := s.decodeSource(src, resolved)
	s.diags = append(s.diags, diags...)
	if root == nil {
		return
	}
	s.loading = append(s.loading, abs)
	s.mergeFile(ctx, root, resolved)
	s.loading = s.loading[:len(s.loading)-1]
}

func (s *loadSession) mergeComponent(cb *componentBlock) {
	comp := &Component{
		Name:      cb.Name,
		propIndex: make(map[string]*PropertySpec),
		cbIndex:   make(map[string]*CallbackSpec),
	}
	if _, exists := s.doc.Components[cb.Name]; exists {
		rng := cb.Remain.MissingItemRange()
		s.errorf(&rng, "Duplicate component",
			fmt.Sprintf("a component named %q is already defined", cb.Name))
		return
	}

	s.translateMembers(cb.Properties, cb.Callbacks, comp.propIndex, comp.cbIndex,
		&comp.Properties, &comp.Callbacks, "component "+cb.Name)

	for _, eb := range cb.Elements {
		comp.Elements = append(comp.Elements, s.translateElement(eb))
	}

	s.doc.Components[cb.Name] = comp
}

func (s *loadSession) mergeGlobal(gb *globalBlock) {
	if _, exists := s.doc.Globals[gb.Name]; exists {
		rng := gb.Remain.MissingItemRange()
		s.errorf(&rng, "Duplicate global",
			fmt.Sprintf("a global named %q is already defined", gb.Name))
		return
	}
	g := &Global{
		Name:      gb.Name,
		Exported:  gb.Export,
		propIndex: make(map[string]*PropertySpec),
		cbIndex:   make(map[string]*CallbackSpec),
	}
	s.translateMembers(gb.Properties, gb.Callbacks, g.propIndex, g.cbIndex,
		&g.Properties, &g.Callbacks, "global "+gb.Name)
	s.doc.Globals[gb.Name] = g
}

// translateMembers handles the property and callback blocks shared by
// components and globals.
func (s *loadSession) translateMembers(
	props []*propertyBlock,
	callbacks []*callbackBlock,
	propIndex map[string]*PropertySpec,
	cbIndex map[string]*CallbackSpec,
	propOut *[]*PropertySpec,
	cbOut *[]*CallbackSpec,
	owner string,
) {
	for _, pb := range props {
		rng := pb.Type.Range()
		if _, dup := propIndex[pb.Name]; dup {
			s.errorf(&rng, "Duplicate property",
				fmt.Sprintf("%s already declares a property named %q", owner, pb.Name))
			continue
		}
		declared, diags := TypeExpr(pb.Type)
		s.diags = append(s.diags, diags...)

		spec := &PropertySpec{Name: pb.Name, Type: declared}
		if pb.Default != nil {
			defRange := pb.Default.Range()
			defVal, valDiags := pb.Default.Value(nil)
			if valDiags.HasErrors() {
				s.diags = append(s.diags, valDiags...)
			} else {
				converted, err := CtyToValue(defVal, declared)
				switch {
				case err != nil:
					s.errorf(&defRange, "Invalid default value", err.Error())
				case !KindMatchesType(converted.Kind(), declared):
					s.errorf(&defRange, "Default value type mismatch",
						fmt.Sprintf("property %q is declared as %s but its default is a %s",
							pb.Name, FriendlyTypeName(declared), converted.Kind()))
				default:
					spec.Default = converted
					spec.HasDefault = true
				}
			}
		}
		propIndex[pb.Name] = spec
		*propOut = append(*propOut, spec)
	}

	for _, cb := range callbacks {
		if _, dup := cbIndex[cb.Name]; dup {
			var subject *hcl.Range
			if cb.Args != nil {
				rng := cb.Args.Range()
				subject = &rng
			}
			s.errorf(subject, "Duplicate callback",
				fmt.Sprintf("%s already declares a callback named %q", owner, cb.Name))
			continue
		}
		args, argDiags := TypeExprList(cb.Args)
		s.diags = append(s.diags, argDiags...)

		spec := &CallbackSpec{Name: cb.Name, Args: args}
		if cb.Returns != nil {
			ret, retDiags := TypeExpr(cb.Returns)
			s.diags = append(s.diags, retDiags...)
			spec.Returns = ret
		}
		cbIndex[cb.Name] = spec
		*cbOut = append(*cbOut, spec)
	}
}

func (s *loadSession) translateElement(eb *elementBlock) *Element {
	el := &Element{Type: eb.Type, ID: eb.ID}
	if !s.p.registry.Lookup(eb.Type) {
		// Component references are resolved in finish, once every import
		// was merged. Remember the range for the late check.
		rng := eb.Remain.MissingItemRange()
		s.pendingElements = append(s.pendingElements, pendingElement{el, rng})
	}
	for _, child := range eb.Children {
		el.Children = append(el.Children, s.translateElement(child))
	}
	return el
}

// finish runs the checks that need the whole document and picks the root
// component.
func (s *loadSession) finish(ctx context.Context, root *fileRoot) (*Document, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)

	if root != nil {
		// The root component is the last component block of the top-level
		// file, not of an import.
		if len(root.Components) == 0 {
			s.diags = append(s.diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "No component defined",
				Detail:   "a markup document must declare at least one component block",
			})
		} else {
			s.doc.Root = s.doc.Components[root.Components[len(root.Components)-1].Name]
		}
	}

	for _, pending := range s.pendingElements {
		if _, isComponent := s.doc.Components[pending.el.Type]; isComponent {
			continue
		}
		rng := pending.rng
		s.errorf(&rng, "Unknown element type",
			fmt.Sprintf("%q is neither a %s-style element nor a component in this document",
				pending.el.Type, s.p.registry.Style()))
	}

	if s.diags.HasErrors() {
		logger.Debug("Markup analysis failed.", "diagnostics", len(s.diags))
		return nil, s.diags
	}
	logger.Debug("Markup analysis succeeded.",
		"components", len(s.doc.Components), "globals", len(s.doc.Globals))
	return s.doc, s.diags
}

func (s *loadSession) errorf(subject *hcl.Range, summary, detail string) {
	s.diags = append(s.diags, &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   detail,
		Subject:  subject,
	})
}
