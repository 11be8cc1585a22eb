package domain

import (
	"strings"

	"github.com/mouse-blink/fndecorate/internal/domain/synth"
	m "github.com/mouse-blink/fndecorate/internal/model"
)

// Original is the source of the declaration being decorated.
type Original struct {
	// Code is the declaration text without its doc comment.
	Code string
	// NameOffset locates the function name inside Code.
	NameOffset int
	// Doc holds the doc-comment lines the wrapper keeps.
	Doc []string
	// Carried holds the lines that stay on the renamed original: compiler
	// pragmas and the directives still to be applied.
	Carried []string
}

// Fragment is the replacement for one decorated declaration: the renamed
// original followed by the wrapper that took over its name.
type Fragment struct {
	Original synth.RawDecl
	Wrapper  synth.FuncDecl
}

// Decls returns the two declarations in output order.
func (f Fragment) Decls() []synth.Decl {
	return []synth.Decl{f.Original, f.Wrapper}
}

// Source renders the fragment as gofmt-formatted Go.
func (f Fragment) Source() (string, error) {
	return synth.Format(f.Decls()...)
}

// Generate builds the renamed original and the wrapper for sig. forwarded
// is only consulted when spec carries a selection rule. A method is wrapped
// through a method expression on its receiver type, a function through its
// new name. Async functions need no extra statements: the wrapper returns
// the decorator's channel and the closure returns the original's channel,
// so every layer keeps exactly one receive point.
func Generate(sig m.FunctionSignature, spec m.DecoratorSpec, forwarded []Forwarded, orig Original) (Fragment, error) {
	if spec.Selection != nil {
		if err := checkReservedNames(sig); err != nil {
			return Fragment{}, err
		}
	}

	frag := Fragment{
		Original: renameOriginal(sig, orig),
		Wrapper:  wrapperHeader(sig, spec, orig.Doc),
	}

	var call synth.CallExpr
	if spec.Selection == nil {
		call = passThroughCall(sig, spec)
	} else {
		if recv, ok := sig.Receiver(); ok && recv.Name != m.ReceiverBinding {
			frag.Wrapper.Body = append(frag.Wrapper.Body, synth.DefineStmt{Name: m.ReceiverBinding, Value: synth.Ident(recv.Name)})
		}

		call = closureCall(sig, spec, forwarded)
	}

	frag.Wrapper.Body = append(frag.Wrapper.Body, resultStmt(frag.Wrapper.Results != "", call))

	if spec.Debug {
		return Fragment{}, debugAbort(sig, frag)
	}

	return frag, nil
}

func checkReservedNames(sig m.FunctionSignature) error {
	if !sig.HasReceiver {
		return nil
	}

	for _, p := range sig.Params {
		if p.Slot != m.NamedSlot {
			continue
		}

		switch p.Name {
		case m.ReceiverSelector:
			return &m.GenerationError{Function: sig.Name, Msg: "parameter `self` cannot be selected because `self` names the receiver"}
		case m.ReceiverBinding:
			return &m.GenerationError{Function: sig.Name, Msg: "parameter `_self` collides with the receiver binding"}
		}
	}

	return nil
}

func renameOriginal(sig m.FunctionSignature, orig Original) synth.RawDecl {
	end := orig.NameOffset + len(sig.Name)
	code := orig.Code[:orig.NameOffset] + sig.OriginalName() + orig.Code[end:]

	if len(orig.Carried) > 0 {
		code = strings.Join(orig.Carried, "\n") + "\n" + code
	}

	return synth.RawDecl{Code: code}
}

func wrapperHeader(sig m.FunctionSignature, spec m.DecoratorSpec, doc []string) synth.FuncDecl {
	fn := synth.FuncDecl{
		Doc:        doc,
		Name:       sig.Name,
		TypeParams: sig.TypeParams,
		Results:    sig.Results,
	}

	if spec.HasReturnOverride() {
		fn.Results = spec.ReturnOverride
	}

	for _, p := range sig.Params {
		if p.Slot == m.ReceiverSlot {
			fn.Recv = &synth.Field{Name: p.Name, Type: p.Type}

			continue
		}

		fn.Params = append(fn.Params, synth.Field{Name: p.Name, Type: p.Type})
	}

	return fn
}

// originalRef refers to the renamed original as a function value.
func originalRef(sig m.FunctionSignature) synth.Expr {
	if sig.HasReceiver {
		return synth.MethodExpr{Recv: sig.ReceiverType, Name: sig.OriginalName()}
	}

	var ref synth.Expr = synth.Ident(sig.OriginalName())
	if len(sig.TypeParamNames) > 0 {
		ref = synth.Instantiate{Fun: ref, TypeArgs: sig.TypeParamNames}
	}

	return ref
}

func decoratorArgs(spec m.DecoratorSpec) []synth.Expr {
	args := make([]synth.Expr, 0, len(spec.Args)+1)
	for _, a := range spec.Args {
		args = append(args, synth.Ident(a))
	}

	return args
}

func passThroughCall(sig m.FunctionSignature, spec m.DecoratorSpec) synth.CallExpr {
	args := append(decoratorArgs(spec), originalRef(sig))
	for _, p := range sig.Params {
		args = append(args, synth.Ident(p.Name))
	}

	return synth.CallExpr{Fun: synth.Ident(spec.Path), Args: args, Ellipsis: endsVariadic(sig.Params)}
}

func closureCall(sig m.FunctionSignature, spec m.DecoratorSpec, forwarded []Forwarded) synth.CallExpr {
	inner := synth.CallExpr{Fun: originalRef(sig), Ellipsis: endsVariadic(sig.Params)}
	for _, p := range sig.Params {
		inner.Args = append(inner.Args, synth.Ident(bindingName(p)))
	}

	closure := synth.FuncLit{
		Results: sig.Results,
		Body:    []synth.Stmt{resultStmt(sig.HasResults(), inner)},
	}

	trailing := make([]synth.Expr, 0, len(forwarded))
	variadic := false

	for _, f := range forwarded {
		closure.Params = append(closure.Params, synth.Field{Name: f.Binding, Type: f.Type})
		trailing = append(trailing, synth.Ident(f.Binding))
		variadic = f.Variadic
	}

	args := append(decoratorArgs(spec), closure)
	args = append(args, trailing...)

	return synth.CallExpr{Fun: synth.Ident(spec.Path), Args: args, Ellipsis: variadic}
}

func resultStmt(hasResults bool, call synth.CallExpr) synth.Stmt {
	if hasResults {
		return synth.ReturnStmt{Value: call}
	}

	return synth.ExprStmt{X: call}
}

func endsVariadic(params []m.Param) bool {
	return len(params) > 0 && params[len(params)-1].Variadic
}

func debugAbort(sig m.FunctionSignature, frag Fragment) *m.DebugAbort {
	code, err := frag.Source()
	if err != nil {
		code = synth.Print(frag.Decls()...)
	}

	return &m.DebugAbort{Function: sig.Name, Code: code}
}
