package domain

import (
	"fmt"
	"go/ast"
	"go/token"

	m "github.com/mouse-blink/fndecorate/internal/model"
)

// sourceText slices the byte range of AST nodes out of the file content.
type sourceText struct {
	fset    *token.FileSet
	content []byte
}

func (s sourceText) offset(pos token.Pos) int {
	return s.fset.PositionFor(pos, false).Offset
}

func (s sourceText) span(from, to token.Pos) string {
	return string(s.content[s.offset(from):s.offset(to)])
}

func (s sourceText) node(n ast.Node) string {
	return s.span(n.Pos(), n.End())
}

// ExtractSignature builds the normalized signature of decl.
func ExtractSignature(fset *token.FileSet, content []byte, decl *ast.FuncDecl) (m.FunctionSignature, error) {
	if decl.Body == nil {
		return m.FunctionSignature{}, &m.StructuralError{Msg: fmt.Sprintf("function %s has no body", decl.Name.Name)}
	}

	src := sourceText{fset: fset, content: content}

	sig := m.FunctionSignature{
		Name:       decl.Name.Name,
		Visibility: m.Unexported,
	}
	if ast.IsExported(sig.Name) {
		sig.Visibility = m.Exported
	}

	if decl.Recv != nil && len(decl.Recv.List) > 0 {
		field := decl.Recv.List[0]
		name := m.ReceiverBinding

		if len(field.Names) > 0 && field.Names[0].Name != "_" {
			name = field.Names[0].Name
		}

		sig.HasReceiver = true
		sig.ReceiverType = src.node(field.Type)
		sig.Params = append(sig.Params, m.Param{Slot: m.ReceiverSlot, Name: name, Type: sig.ReceiverType})
	}

	if tp := decl.Type.TypeParams; tp != nil && len(tp.List) > 0 {
		sig.TypeParams = src.span(tp.Opening, tp.Closing+1)

		for _, field := range tp.List {
			for _, name := range field.Names {
				sig.TypeParamNames = append(sig.TypeParamNames, name.Name)
			}
		}
	}

	sig.Params = append(sig.Params, extractParams(src, decl.Type.Params)...)

	if results := decl.Type.Results; results != nil && len(results.List) > 0 {
		if results.Opening.IsValid() {
			sig.Results = src.span(results.Opening, results.Closing+1)
		} else {
			sig.Results = src.node(results.List[0].Type)
		}

		if elem, ok := asyncElement(results); ok {
			sig.IsAsync = true
			sig.AwaitType = src.node(elem)
		}
	}

	return sig, nil
}

func extractParams(src sourceText, params *ast.FieldList) []m.Param {
	if params == nil {
		return nil
	}

	var out []m.Param

	index := 0
	add := func(name string, typ ast.Expr) {
		if name == "" || name == "_" {
			name = fmt.Sprintf("_p%d", index)
		}

		_, variadic := typ.(*ast.Ellipsis)
		out = append(out, m.Param{Slot: m.NamedSlot, Name: name, Type: src.node(typ), Variadic: variadic})
		index++
	}

	for _, field := range params.List {
		if len(field.Names) == 0 {
			add("", field.Type)

			continue
		}

		for _, name := range field.Names {
			add(name.Name, field.Type)
		}
	}

	return out
}

// asyncElement reports the element type when the only result is an unnamed
// receive-only channel.
func asyncElement(results *ast.FieldList) (ast.Expr, bool) {
	if len(results.List) != 1 || len(results.List[0].Names) != 0 {
		return nil, false
	}

	ch, ok := results.List[0].Type.(*ast.ChanType)
	if !ok || ch.Dir != ast.RECV {
		return nil, false
	}

	return ch.Value, true
}
