package interp

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticString(t *testing.T) {
	located := Diagnostic{
		Level:   DiagnosticError,
		Message: "Unknown element type: nope",
		File:    "app.loom",
		Line:    4,
		Column:  3,
	}
	assert.Equal(t, "app.loom:4:3: error: Unknown element type: nope", located.String())

	bare := Diagnostic{Level: DiagnosticWarning, Message: "unknown widget style"}
	assert.Equal(t, "warning: unknown widget style", bare.String())
}

func TestFromHCL(t *testing.T) {
	rng := hcl.Range{
		Filename: "app.loom",
		Start:    hcl.Pos{Line: 7, Column: 2},
	}
	out := fromHCL(hcl.Diagnostics{
		{
			Severity: hcl.DiagError,
			Summary:  "Duplicate property",
			Detail:   `already declares "x"`,
			Subject:  &rng,
		},
		{
			Severity: hcl.DiagWarning,
			Summary:  "Deprecated syntax",
		},
	})
	require.Len(t, out, 2)

	assert.Equal(t, DiagnosticError, out[0].Level)
	assert.Equal(t, `Duplicate property: already declares "x"`, out[0].Message)
	assert.Equal(t, "app.loom", out[0].File)
	assert.Equal(t, 7, out[0].Line)
	assert.Equal(t, 2, out[0].Column)

	assert.Equal(t, DiagnosticWarning, out[1].Level)
	assert.Equal(t, "Deprecated syntax", out[1].Message)
	assert.Zero(t, out[1].Line)
}

func TestHasErrors(t *testing.T) {
	assert.False(t, hasErrors(nil))
	assert.False(t, hasErrors([]Diagnostic{{Level: DiagnosticWarning}}))
	assert.True(t, hasErrors([]Diagnostic{{Level: DiagnosticWarning}, {Level: DiagnosticError}}))
}
