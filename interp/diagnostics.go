package interp

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// DiagnosticLevel distinguishes fatal errors from warnings.
type DiagnosticLevel int

const (
	// DiagnosticError marks a problem that prevents a build from producing
	// a definition.
	DiagnosticError DiagnosticLevel = iota
	// DiagnosticWarning marks a problem that does not prevent success.
	DiagnosticWarning
)

// String returns "error" or "warning".
func (l DiagnosticLevel) String() string {
	if l == DiagnosticError {
		return "error"
	}
	return "warning"
}

// Diagnostic is one error or warning produced by a build attempt. File,
// Line and Column locate the originating markup when known; Line is zero
// for diagnostics without a source location.
type Diagnostic struct {
	Level   DiagnosticLevel
	Message string
	File    string
	Line    int
	Column  int
}

// String renders the diagnostic in the usual file:line:col form.
func (d Diagnostic) String() string {
	if d.Line == 0 {
		return fmt.Sprintf("%s: %s", d.Level, d.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s: %s", d.File, d.Line, d.Column, d.Level, d.Message)
}

// fromHCL flattens hcl diagnostics into the public form. Summary and detail
// collapse into one message.
func fromHCL(diags hcl.Diagnostics) []Diagnostic {
	out := make([]Diagnostic, 0, len(diags))
	for _, d := range diags {
		level := DiagnosticError
		if d.Severity == hcl.DiagWarning {
			level = DiagnosticWarning
		}
		msg := d.Summary
		if d.Detail != "" {
			msg = d.Summary + ": " + d.Detail
		}
		diag := Diagnostic{Level: level, Message: msg}
		if d.Subject != nil {
			diag.File = d.Subject.Filename
			diag.Line = d.Subject.Start.Line
			diag.Column = d.Subject.Start.Column
		}
		out = append(out, diag)
	}
	return out
}

func hasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Level == DiagnosticError {
			return true
		}
	}
	return false
}
