// Package datasets provides convenience routines to locate the short example
// files bundled with this package.
package datasets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"syscall"
)

var (
	ErrNotFound    = fmt.Errorf("not found")
	ErrInvalidName = fmt.Errorf("invalid name")
)

// basePath is the root directory of this package.
var basePath string

var defaultResolver *Resolver

func init() {
	_, currentFile, _, _ := runtime.Caller(0)
	basePath = filepath.Dir(currentFile)
	defaultResolver = &Resolver{base: basePath}
}

// BasePath returns the directory holding the bundled examples.
func BasePath() string {
	return basePath
}

// Default returns the resolver rooted at BasePath.
func Default() *Resolver {
	return defaultResolver
}

// Get returns the absolute file name of a bundled example.
func Get(name string) (string, error) {
	return defaultResolver.Get(name)
}

// Resolver looks up example files under a fixed base directory. It holds no
// mutable state and is safe for concurrent use.
type Resolver struct {
	base string
}

// NewResolver returns a resolver rooted at base. A relative base is made
// absolute against the working directory.
func NewResolver(base string) (*Resolver, error) {
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base directory %s: %w", base, err)
	}

	return &Resolver{base: abs}, nil
}

// Base returns the directory names are resolved against.
func (r *Resolver) Base() string {
	return r.base
}

// Get appends name to the base directory and returns the result, as written,
// if something exists there. An empty name yields the base directory itself.
func (r *Resolver) Get(name string) (string, error) {
	if name != "" && !filepath.IsLocal(name) {
		return "", fmt.Errorf("example '%s' escapes %s: %w", name, r.base, ErrInvalidName)
	}

	full := r.base
	if name != "" {
		full = r.base + string(filepath.Separator) + name
	}

	if _, err := os.Stat(full); err != nil {
		// a file used as a directory ("iris.csv/x", "iris.csv/") fails with ENOTDIR
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return "", fmt.Errorf("unable to find example '%s': %w", name, ErrNotFound)
		}

		return "", err
	}

	return full, nil
}

// Names lists the example files directly under the base directory, skipping
// Go sources and hidden files.
func (r *Resolver) Names() ([]string, error) {
	entries, err := os.ReadDir(r.base)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !entry.Type().IsRegular() || strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".go") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}
