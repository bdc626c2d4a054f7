package source

import (
	"errors"
	"fmt"
	"go/token"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
// Only file lists are needed; files are parsed by ParseFile.
const LoadMode = packages.NeedName | packages.NeedFiles

// ErrNoFiles is returned when the patterns match no Go files.
var ErrNoFiles = errors.New("no Go files matched")

// Loader resolves package patterns to parsed files.
type Loader struct {
	// Dir is the directory patterns are resolved in. Empty means the current directory.
	Dir string
	// Tests includes _test.go files.
	Tests bool

	fset *token.FileSet
}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{fset: token.NewFileSet()}
}

// Fset returns the file set shared by all loaded files.
func (l *Loader) Fset() *token.FileSet {
	return l.fset
}

// Load loads the packages matched by patterns (e.g., "./...", "./store") and
// parses their files. Generated files are skipped.
func (l *Loader) Load(patterns ...string) ([]*File, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	cfg := &packages.Config{
		Mode:  LoadMode,
		Dir:   l.Dir,
		Tests: l.Tests,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	var paths []string

	seen := make(map[string]bool)
	for _, pkg := range pkgs {
		for _, path := range pkg.GoFiles {
			if !seen[path] {
				seen[path] = true
				paths = append(paths, path)
			}
		}
	}

	return l.LoadFiles(paths...)
}

// LoadFiles parses the given files. Generated files are skipped.
func (l *Loader) LoadFiles(paths ...string) ([]*File, error) {
	files := make([]*File, 0, len(paths))

	for _, path := range paths {
		f, err := ParseFile(l.fset, path, nil)
		if err != nil {
			return nil, err
		}

		if f.Generated() {
			continue
		}

		files = append(files, f)
	}

	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	return files, nil
}
