package domain

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/mouse-blink/fndecorate/internal/adapter"
	"github.com/mouse-blink/fndecorate/internal/domain/directive"
	m "github.com/mouse-blink/fndecorate/internal/model"
)

// Transformer rewrites the decorated functions of a single Go file.
type Transformer interface {
	// TransformFile expands every directive in src. A file without
	// directives comes back unchanged with no decorations.
	TransformFile(path m.Path, src []byte) (m.FileResult, error)
}

type transformer struct {
	goAdapter adapter.GoFileAdapter
}

// NewTransformer creates a Transformer that parses and formats through goAdapter.
func NewTransformer(goAdapter adapter.GoFileAdapter) Transformer {
	return &transformer{goAdapter: goAdapter}
}

// target is a function declaration whose doc comment carries directives.
type target struct {
	decl       *ast.FuncDecl
	directives []*ast.Comment
	pragmas    []string
	doc        []string
}

func (t *transformer) TransformFile(path m.Path, src []byte) (m.FileResult, error) {
	result := m.FileResult{Source: m.Source{Origin: path}, Output: src}
	content := src

	// Each pass peels one directive off every decorated function; the
	// renamed originals carry the rest into the next pass.
	for {
		fset := token.NewFileSet()

		file, err := t.goAdapter.Parse(fset, string(path), content)
		if err != nil {
			return m.FileResult{}, fmt.Errorf("parse %s: %w", path, err)
		}

		result.Source.Package = file.Name.Name

		targets, err := collectTargets(fset, file)
		if err != nil {
			return m.FileResult{}, err
		}

		if len(targets) == 0 {
			break
		}

		content, err = t.applyPass(fset, content, targets, &result)
		if err != nil {
			return m.FileResult{}, err
		}
	}

	if len(result.Decorations) == 0 {
		return result, nil
	}

	out, err := t.goAdapter.Format(string(path), content)
	if err != nil {
		return m.FileResult{}, fmt.Errorf("format %s: %w", path, err)
	}

	result.Output = out

	return result, nil
}

func (t *transformer) applyPass(fset *token.FileSet, content []byte, targets []target, result *m.FileResult) ([]byte, error) {
	src := sourceText{fset: fset, content: content}

	type splice struct {
		start, end int
		code       string
	}

	splices := make([]splice, 0, len(targets))

	for _, tg := range targets {
		applied := tg.directives[0]

		spec, err := parseDirective(fset, applied)
		if err != nil {
			return nil, err
		}

		sig, err := ExtractSignature(fset, content, tg.decl)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fset.Position(tg.decl.Pos()), err)
		}

		var forwarded []Forwarded
		if spec.Selection != nil {
			for _, name := range UnmatchedSelections(sig.Params, spec.Selection) {
				slog.Warn("selection names no parameter",
					"position", fset.Position(applied.Pos()).String(),
					"function", sig.Name,
					"name", name)
			}

			forwarded = SelectParameters(sig.Params, spec.Selection)
		}

		start := src.offset(tg.decl.Pos())
		orig := Original{
			Code:       src.node(tg.decl),
			NameOffset: src.offset(tg.decl.Name.Pos()) - start,
			Doc:        tg.doc,
			Carried:    slices.Concat(tg.pragmas, commentTexts(tg.directives[1:])),
		}

		frag, err := Generate(sig, spec, forwarded, orig)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fset.Position(tg.decl.Pos()), err)
		}

		code, err := frag.Source()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fset.Position(tg.decl.Pos()), err)
		}

		splices = append(splices, splice{start: src.offset(tg.decl.Doc.Pos()), end: src.offset(tg.decl.End()), code: code})
		result.Decorations = append(result.Decorations, decorationFor(fset, tg.decl, sig, spec))

		slog.Debug("decorated function", "position", fset.Position(tg.decl.Pos()).String(), "function", sig.Name, "decorator", spec.Path)
	}

	// Later declarations first so earlier offsets stay valid.
	sort.Slice(splices, func(i, j int) bool { return splices[i].start > splices[j].start })

	for _, s := range splices {
		content = replaceRange(content, s.start, s.end, strings.TrimRight(s.code, "\n"))
	}

	return content, nil
}

// collectTargets finds decorated functions in source order. A directive in any
// comment group other than a function's doc comment is rejected.
func collectTargets(fset *token.FileSet, file *ast.File) ([]target, error) {
	docs := make(map[*ast.CommentGroup]struct{})

	var targets []target

	for _, decl := range file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}

		docs[fd.Doc] = struct{}{}

		tg := target{decl: fd}

		for _, c := range fd.Doc.List {
			switch {
			case isDirective(c.Text):
				tg.directives = append(tg.directives, c)
			case strings.HasPrefix(c.Text, "//go:"):
				tg.pragmas = append(tg.pragmas, c.Text)
			default:
				tg.doc = append(tg.doc, c.Text)
			}
		}

		for len(tg.doc) > 0 && strings.TrimSpace(tg.doc[len(tg.doc)-1]) == "//" {
			tg.doc = tg.doc[:len(tg.doc)-1]
		}

		if len(tg.directives) > 0 {
			targets = append(targets, tg)
		}
	}

	for _, group := range file.Comments {
		if _, ok := docs[group]; ok {
			continue
		}

		for _, c := range group.List {
			if isDirective(c.Text) {
				return nil, fmt.Errorf("%s: %w", fset.Position(c.Pos()),
					&m.StructuralError{Msg: "directive must be part of a function declaration's doc comment"})
			}
		}
	}

	return targets, nil
}

func isDirective(text string) bool {
	rest, ok := strings.CutPrefix(text, m.DirectivePrefix)

	return ok && (rest == "" || rest[0] == ' ' || rest[0] == '\t')
}

// parseDirective parses the arguments of c and reports grammar errors at
// their file position.
func parseDirective(fset *token.FileSet, c *ast.Comment) (m.DecoratorSpec, error) {
	args := strings.TrimPrefix(c.Text, m.DirectivePrefix)

	spec, err := directive.Parse(args)
	if err == nil {
		return spec, nil
	}

	pos := fset.Position(c.Pos())

	var gerr *m.GrammarError
	if errors.As(err, &gerr) {
		pos = fset.Position(c.Pos() + token.Pos(len(m.DirectivePrefix)+gerr.Column-1))
	}

	return m.DecoratorSpec{}, fmt.Errorf("%s: %w", pos, err)
}

func decorationFor(fset *token.FileSet, decl *ast.FuncDecl, sig m.FunctionSignature, spec m.DecoratorSpec) m.Decoration {
	d := m.Decoration{
		Position:  fset.Position(decl.Pos()).String(),
		Function:  sig.Name,
		Receiver:  sig.ReceiverType,
		Decorator: spec.Call(),
		Override:  spec.ReturnOverride,
		Async:     sig.IsAsync,
	}

	if spec.Selection != nil {
		d.Rule = spec.Selection.String()
	}

	return d
}

func commentTexts(comments []*ast.Comment) []string {
	out := make([]string, 0, len(comments))
	for _, c := range comments {
		out = append(out, c.Text)
	}

	return out
}

func replaceRange(content []byte, start, end int, replacement string) []byte {
	if start < 0 || end < start || end > len(content) {
		return content
	}

	out := make([]byte, 0, len(content)-(end-start)+len(replacement))
	out = append(out, content[:start]...)
	out = append(out, replacement...)
	out = append(out, content[end:]...)

	return out
}
