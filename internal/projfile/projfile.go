// Package projfile reads the optional loom.yaml project file that supplies
// defaults for the CLI: the entry markup file, the widget style and the
// import search path.
package projfile

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Name is the file name looked up in the working directory.
const Name = "loom.yaml"

// File is the parsed project file. All fields are optional; command line
// flags override them.
type File struct {
	// Entry is the markup file compiled when the CLI gets no positional
	// argument.
	Entry string `yaml:"entry"`
	// Style is the widget style to compile with.
	Style string `yaml:"style"`
	// IncludePaths are directories searched when resolving imports,
	// relative to the project file.
	IncludePaths []string `yaml:"include_paths"`
}

// Load parses the project file at path. Include paths and the entry file
// are rebased onto the file's directory so the result is usable from any
// working directory.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	base := filepath.Dir(path)
	if f.Entry != "" && !filepath.IsAbs(f.Entry) {
		f.Entry = filepath.Join(base, f.Entry)
	}
	for i, inc := range f.IncludePaths {
		if !filepath.IsAbs(inc) {
			f.IncludePaths[i] = filepath.Join(base, inc)
		}
	}
	return &f, nil
}

// Find reports the project file in dir, if one exists.
func Find(dir string) (string, bool) {
	path := filepath.Join(dir, Name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}
