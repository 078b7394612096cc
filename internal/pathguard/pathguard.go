// Package pathguard confines file operations to a configured set of allowed
// directories. Every tool path goes through Validate before the first byte
// of I/O happens.
package pathguard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Guard checks requested paths against the allowed directory set.
type Guard struct {
	allowedDirs []string
}

// New builds a Guard from the configured directories. Each directory must
// exist; paths are normalized to absolute form with a trailing separator so
// prefix checks cannot match sibling directories (/tmp/foo must not admit
// /tmp/foobar).
func New(dirs []string) (*Guard, error) {
	if len(dirs) == 0 {
		return nil, fmt.Errorf("no allowed directories configured")
	}

	normalized := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("resolve allowed directory %s: %w", dir, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("allowed directory %s: %w", dir, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("allowed path %s is not a directory", abs)
		}
		if !strings.HasSuffix(abs, string(filepath.Separator)) {
			abs += string(filepath.Separator)
		}
		normalized = append(normalized, abs)
	}
	return &Guard{allowedDirs: normalized}, nil
}

// AllowedDirs returns the normalized allowed directories.
func (g *Guard) AllowedDirs() []string {
	return append([]string(nil), g.allowedDirs...)
}

// Validate resolves a requested path and rejects it when it falls outside
// the allowed directories, including when a symlink points outside them.
// For paths that do not exist yet the parent directory is checked instead,
// so create-style tools can target new files. The returned path is absolute.
func (g *Guard) Validate(requestedPath string) (string, error) {
	abs, err := filepath.Abs(requestedPath)
	if err != nil {
		return "", fmt.Errorf("invalid path %s: %w", requestedPath, err)
	}
	if !g.contains(abs) {
		return "", fmt.Errorf("access denied: path outside allowed directories: %s", abs)
	}

	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", err
		}
		// New file: validate the nearest existing parent instead.
		realParent, err := filepath.EvalSymlinks(filepath.Dir(abs))
		if err != nil {
			return "", fmt.Errorf("parent directory does not exist: %s", filepath.Dir(abs))
		}
		if !g.contains(realParent) {
			return "", fmt.Errorf("access denied: parent directory outside allowed directories: %s", realParent)
		}
		return abs, nil
	}

	if !g.contains(real) {
		return "", fmt.Errorf("access denied: symlink target outside allowed directories: %s", real)
	}
	return real, nil
}

// contains reports whether a cleaned absolute path lies inside any allowed
// directory.
func (g *Guard) contains(path string) bool {
	if !strings.HasSuffix(path, string(filepath.Separator)) {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			path = filepath.Dir(path) + string(filepath.Separator)
		} else {
			path += string(filepath.Separator)
		}
	}
	for _, dir := range g.allowedDirs {
		if strings.HasPrefix(path, dir) {
			return true
		}
	}
	return false
}
