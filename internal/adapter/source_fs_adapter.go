// Package adapter contains UI and infrastructure adapters for the fndecorate CLI.
package adapter

import (
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/fndecorate/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects. It hides direct `os` access so the
// workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Get resolves the roots (files, directories, or `dir/...` patterns) into
	// the Go files they contain.
	Get(roots []m.Path) ([]m.Source, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// MkdirAll creates a directory with its parents.
	MkdirAll(path m.Path) error

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// Remove deletes a file. A file that does not exist is not an error.
	Remove(path m.Path) error

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects Go source files for the provided roots. Each file appears once
// even when roots overlap.
func (a *LocalSourceFSAdapter) Get(roots []m.Path) ([]m.Source, error) {
	if len(roots) == 0 {
		return []m.Source{}, nil
	}

	seen := make(map[m.Path]struct{})

	var sources []m.Source

	collect := func(path string) error {
		source, ok, err := a.processFilePath(path)
		if err != nil || !ok {
			return err
		}

		if _, exists := seen[source.Origin]; exists {
			return nil
		}

		seen[source.Origin] = struct{}{}
		sources = append(sources, source)

		return nil
	}

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			if err := collect(rootPath); err != nil {
				return nil, err
			}

			continue
		}

		err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				if path != rootPath && skipDir(info.Name()) {
					return filepath.SkipDir
				}

				return nil
			}

			return collect(path)
		})
		if err != nil {
			return nil, err
		}
	}

	return sources, nil
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// MkdirAll creates path and any missing parents.
func (a *LocalSourceFSAdapter) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), 0o750)
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// Remove deletes the file at path, ignoring files that are already gone.
func (a *LocalSourceFSAdapter) Remove(path m.Path) error {
	if err := os.Remove(string(path)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

// skipDir matches the directories the go tool ignores.
func skipDir(name string) bool {
	return name == "vendor" || name == "testdata" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if rootStr == "..." {
		return ".", true
	}

	if len(rootStr) >= 4 && rootStr[len(rootStr)-4:] == "/..." {
		return rootStr[:len(rootStr)-4], true
	}

	return rootStr, false
}

func (a *LocalSourceFSAdapter) processFilePath(path string) (m.Source, bool, error) {
	if filepath.Ext(path) != ".go" {
		return m.Source{}, false, nil
	}

	if strings.HasSuffix(path, "_test.go") {
		return m.Source{}, false, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return m.Source{}, false, err
	}

	src, err := a.ReadFile(m.Path(absPath))
	if err != nil {
		return m.Source{}, false, nil
	}

	file, err := parser.ParseFile(token.NewFileSet(), absPath, src, parser.PackageClauseOnly)
	if err != nil || file.Name == nil {
		slog.Warn("skipping unparsable file", "path", absPath, "error", err)

		return m.Source{}, false, nil
	}

	return m.Source{Origin: m.Path(absPath), Package: file.Name.Name}, true, nil
}
