package adapter

import (
	"go/ast"
	"go/parser"
	"go/token"

	"golang.org/x/tools/imports"
)

// GoFileAdapter encapsulates Go-specific parsing and printing so the domain
// layer can focus on decorator rules while delegating toolchain details to an
// infrastructure component.
type GoFileAdapter interface {
	// Parse builds an AST, comments included, using the provided file set.
	Parse(fileSet *token.FileSet, filename string, src []byte) (*ast.File, error)

	// Format gofmt-formats src and fixes its import block.
	Format(filename string, src []byte) ([]byte, error)
}

// LocalGoFileAdapter provides a concrete GoFileAdapter backed by go/parser
// and x/tools/imports.
type LocalGoFileAdapter struct{}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter.
func NewLocalGoFileAdapter() *LocalGoFileAdapter {
	return &LocalGoFileAdapter{}
}

// Parse builds an AST for the provided filename/source pair.
func (a *LocalGoFileAdapter) Parse(fileSet *token.FileSet, filename string, src []byte) (*ast.File, error) {
	return parser.ParseFile(fileSet, filename, src, parser.ParseComments)
}

// Format runs src through goimports without adding missing imports.
func (a *LocalGoFileAdapter) Format(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
}
