// Package testutil provides shared helpers for the interpreter's tests:
// markup fixtures on disk, a compile harness and a thread-safe log buffer.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/loomui/loom/interp"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements io.Writer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements fmt.Stringer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// WriteMarkupTree materializes the given name→source files in a fresh temp
// directory and returns its path. Subdirectories in names are created.
func WriteMarkupTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, src := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	}
	return dir
}

// Compile builds the given markup source with a fresh compiler and returns
// both, leaving success checking to the caller.
func Compile(t *testing.T, source string) (*interp.ComponentDefinition, *interp.ComponentCompiler) {
	t.Helper()
	compiler := interp.NewComponentCompiler()
	def := compiler.BuildFromSource(context.Background(), source, "test.loom")
	return def, compiler
}

// MustCompile builds the given markup source and fails the test with the
// compiler's diagnostics if compilation did not succeed.
func MustCompile(t *testing.T, source string) *interp.ComponentDefinition {
	t.Helper()
	def, compiler := Compile(t, source)
	if def == nil {
		for _, diag := range compiler.Diagnostics() {
			t.Log(diag)
		}
		t.Fatal("compilation failed")
	}
	return def
}
