// Package fsutil provides the file system lookups the compiler needs:
// discovering markup files under a directory and resolving import names
// against a search path.
package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// MarkupExt is the file extension of loom markup files.
const MarkupExt = ".loom"

// FindMarkupFiles recursively searches rootPath for all loom markup files
// and returns their paths in walk order.
func FindMarkupFiles(rootPath string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), MarkupExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// ResolveImport resolves an import name against the directory of the
// importing file first and then each include path in order. It returns the
// cleaned path of the first existing regular file. Absolute names bypass
// the search path.
func ResolveImport(name, fromDir string, includePaths []string) (string, bool) {
	if filepath.IsAbs(name) {
		if isFile(name) {
			return filepath.Clean(name), true
		}
		return "", false
	}
	dirs := make([]string, 0, len(includePaths)+1)
	if fromDir != "" {
		dirs = append(dirs, fromDir)
	}
	dirs = append(dirs, includePaths...)
	for _, dir := range dirs {
		candidate := filepath.Join(dir, name)
		if isFile(candidate) {
			return filepath.Clean(candidate), true
		}
	}
	return "", false
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
