package synth

import (
	"fmt"
	"go/format"
	"strings"
)

// Print serializes declarations to Go source, separated by blank lines.
func Print(decls ...Decl) string {
	p := &printer{}
	for i, d := range decls {
		if i > 0 {
			p.blank()
		}

		p.printDecl(d)
	}

	return p.sb.String()
}

// Format prints declarations and runs them through gofmt.
func Format(decls ...Decl) (string, error) {
	src := Print(decls...)

	out, err := format.Source([]byte(src))
	if err != nil {
		return "", fmt.Errorf("format generated code: %w", err)
	}

	return string(out), nil
}

type printer struct {
	sb     strings.Builder
	indent int
}

func (p *printer) line(format string, args ...any) {
	p.writeIndent()
	fmt.Fprintf(&p.sb, format, args...)
	p.sb.WriteByte('\n')
}

func (p *printer) blank() {
	p.sb.WriteByte('\n')
}

func (p *printer) writeIndent() {
	for range p.indent {
		p.sb.WriteByte('\t')
	}
}

func (p *printer) printDecl(d Decl) {
	switch dt := d.(type) {
	case RawDecl:
		p.sb.WriteString(strings.TrimRight(dt.Code, "\n"))
		p.sb.WriteByte('\n')
	case FuncDecl:
		p.printFuncDecl(dt)
	}
}

func (p *printer) printFuncDecl(f FuncDecl) {
	for _, doc := range f.Doc {
		p.line("%s", doc)
	}

	sig := "func "
	if f.Recv != nil {
		sig += "(" + fieldString(*f.Recv) + ") "
	}

	sig += f.Name + f.TypeParams + "(" + fieldList(f.Params) + ")"
	if f.Results != "" {
		sig += " " + f.Results
	}

	p.line("%s {", sig)
	p.printBody(f.Body)
	p.line("}")
}

func (p *printer) printBody(body []Stmt) {
	p.indent++
	for _, s := range body {
		p.printStmt(s)
	}
	p.indent--
}

func (p *printer) printStmt(s Stmt) {
	switch st := s.(type) {
	case DefineStmt:
		p.line("%s := %s", st.Name, p.exprStr(st.Value))
	case ReturnStmt:
		if st.Value == nil {
			p.line("return")
		} else {
			p.line("return %s", p.exprStr(st.Value))
		}
	case ExprStmt:
		p.line("%s", p.exprStr(st.X))
	}
}

func (p *printer) exprStr(e Expr) string {
	switch ex := e.(type) {
	case Ident:
		return string(ex)
	case MethodExpr:
		if strings.HasPrefix(ex.Recv, "*") {
			return "(" + ex.Recv + ")." + ex.Name
		}

		return ex.Recv + "." + ex.Name
	case Instantiate:
		return p.exprStr(ex.Fun) + "[" + strings.Join(ex.TypeArgs, ", ") + "]"
	case CallExpr:
		return p.callStr(ex)
	case FuncLit:
		return p.funcLitStr(ex)
	default:
		return ""
	}
}

func (p *printer) callStr(call CallExpr) string {
	args := make([]string, 0, len(call.Args))
	for _, a := range call.Args {
		args = append(args, p.exprStr(a))
	}

	suffix := ""
	if call.Ellipsis && len(args) > 0 {
		suffix = "..."
	}

	return p.exprStr(call.Fun) + "(" + strings.Join(args, ", ") + suffix + ")"
}

// funcLitStr renders a closure body on its own lines, indented one level
// deeper than the statement that contains it.
func (p *printer) funcLitStr(lit FuncLit) string {
	sig := "func(" + fieldList(lit.Params) + ")"
	if lit.Results != "" {
		sig += " " + lit.Results
	}

	inner := &printer{indent: p.indent + 1}
	for _, s := range lit.Body {
		inner.printStmt(s)
	}

	var sb strings.Builder
	sb.WriteString(sig)
	sb.WriteString(" {\n")
	sb.WriteString(inner.sb.String())

	for range p.indent {
		sb.WriteByte('\t')
	}

	sb.WriteString("}")

	return sb.String()
}

func fieldString(f Field) string {
	if f.Name == "" {
		return f.Type
	}

	return f.Name + " " + f.Type
}

func fieldList(fields []Field) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fieldString(f))
	}

	return strings.Join(parts, ", ")
}
