package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrint_FuncDecl(t *testing.T) {
	got := Print(FuncDecl{
		Doc:     []string{"// Add sums."},
		Name:    "Add",
		Params:  []Field{{Name: "a", Type: "int"}, {Name: "b", Type: "int"}},
		Results: "int",
		Body: []Stmt{
			ReturnStmt{Value: CallExpr{Fun: Ident("sum"), Args: []Expr{Ident("a"), Ident("b")}}},
		},
	})

	assert.Equal(t, "// Add sums.\nfunc Add(a int, b int) int {\n\treturn sum(a, b)\n}\n", got)
}

func TestPrint_MethodExprAndInstantiation(t *testing.T) {
	p := &printer{}

	assert.Equal(t, "(*T).M", p.exprStr(MethodExpr{Recv: "*T", Name: "M"}))
	assert.Equal(t, "List[E].M", p.exprStr(MethodExpr{Recv: "List[E]", Name: "M"}))
	assert.Equal(t, "f[K, V]", p.exprStr(Instantiate{Fun: Ident("f"), TypeArgs: []string{"K", "V"}}))
	assert.Equal(t, "g(xs...)", p.exprStr(CallExpr{Fun: Ident("g"), Args: []Expr{Ident("xs")}, Ellipsis: true}))
	assert.Equal(t, "g()", p.exprStr(CallExpr{Fun: Ident("g"), Ellipsis: true}))
}

func TestPrint_NestedFuncLit(t *testing.T) {
	got := Print(FuncDecl{
		Recv:    &Field{Name: "s", Type: "*S"},
		Name:    "M",
		Params:  []Field{{Name: "x", Type: "int"}},
		Results: "int",
		Body: []Stmt{
			DefineStmt{Name: "_self", Value: Ident("s")},
			ReturnStmt{Value: CallExpr{
				Fun: Ident("d"),
				Args: []Expr{
					FuncLit{
						Results: "int",
						Body: []Stmt{ReturnStmt{Value: CallExpr{
							Fun:  MethodExpr{Recv: "*S", Name: "m"},
							Args: []Expr{Ident("_self"), Ident("x")},
						}}},
					},
				},
			}},
		},
	})

	want := "func (s *S) M(x int) int {\n" +
		"\t_self := s\n" +
		"\treturn d(func() int {\n" +
		"\t\treturn (*S).m(_self, x)\n" +
		"\t})\n" +
		"}\n"
	assert.Equal(t, want, got)
}

func TestFormat_SeparatesDecls(t *testing.T) {
	got, err := Format(
		RawDecl{Code: "func a() {}\n"},
		FuncDecl{Name: "b", Body: []Stmt{ExprStmt{X: CallExpr{Fun: Ident("a")}}}},
	)
	require.NoError(t, err)

	assert.Equal(t, "func a() {}\n\nfunc b() {\n\ta()\n}\n", got)
}
