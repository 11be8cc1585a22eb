package domain

import (
	"strings"
	"testing"

	"github.com/mouse-blink/fndecorate/internal/adapter"
	m "github.com/mouse-blink/fndecorate/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transform(t *testing.T, src string) (m.FileResult, error) {
	t.Helper()

	tr := NewTransformer(adapter.NewLocalGoFileAdapter())

	return tr.TransformFile("sample.go", []byte(src))
}

func TestTransformFile_NoDirectives(t *testing.T) {
	src := "package sample\n\n// Double doubles x.\nfunc Double(x int) int { return x * 2 }\n"

	result, err := transform(t, src)
	require.NoError(t, err)

	assert.Empty(t, result.Decorations)
	assert.Equal(t, src, string(result.Output))
	assert.Equal(t, "sample", result.Source.Package)
}

func TestTransformFile_SingleDirective(t *testing.T) {
	src := `package sample

// Double doubles x.
//
//fndecorate:use decorator()
func Double(x int64) int64 {
	return x * 2
}

func decorator(f func(int64) int64, x int64) int64 {
	return f(x) + 2
}
`

	want := `package sample

func Double_fn_decorator_original(x int64) int64 {
	return x * 2
}

// Double doubles x.
func Double(x int64) int64 {
	return decorator(Double_fn_decorator_original, x)
}

func decorator(f func(int64) int64, x int64) int64 {
	return f(x) + 2
}
`

	result, err := transform(t, src)
	require.NoError(t, err)

	assert.Equal(t, want, string(result.Output))
	require.Len(t, result.Decorations, 1)

	d := result.Decorations[0]
	assert.Equal(t, "Double", d.Function)
	assert.Equal(t, "decorator()", d.Decorator)
	assert.Empty(t, d.Rule)
	assert.Equal(t, "sample.go:6:1", d.Position)
}

func TestTransformFile_Method(t *testing.T) {
	src := `package sample

type MyStruct struct{ left string }

//fndecorate:use decorator("_middle_"), hide_parameters = [self]
func (o *MyStruct) Concat(right string) string {
	return o.left + right
}
`

	result, err := transform(t, src)
	require.NoError(t, err)

	out := string(result.Output)
	assert.Contains(t, out, "func (o *MyStruct) Concat_fn_decorator_original(right string) string {")
	assert.Contains(t, out, "\t_self := o\n")
	assert.Contains(t, out, "return (*MyStruct).Concat_fn_decorator_original(_self, right)")
	assert.NotContains(t, out, "fndecorate:use")

	require.Len(t, result.Decorations, 1)
	assert.Equal(t, "(*MyStruct).Concat", result.Decorations[0].QualifiedName())
	assert.Equal(t, "hide_parameters = [self]", result.Decorations[0].Rule)
}

func TestTransformFile_StackedDirectives(t *testing.T) {
	src := `package sample

//fndecorate:use outer()
//fndecorate:use inner()
func Double(x int) int {
	return x * 2
}
`

	result, err := transform(t, src)
	require.NoError(t, err)

	out := string(result.Output)
	assert.Contains(t, out, "func Double(x int) int {\n\treturn outer(Double_fn_decorator_original, x)\n}")
	assert.Contains(t, out, "func Double_fn_decorator_original(x int) int {\n\treturn inner(Double_fn_decorator_original_fn_decorator_original, x)\n}")
	assert.Contains(t, out, "func Double_fn_decorator_original_fn_decorator_original(x int) int {\n\treturn x * 2\n}")
	assert.NotContains(t, out, "fndecorate:use")

	require.Len(t, result.Decorations, 2)
	assert.Equal(t, "outer()", result.Decorations[0].Decorator)
	assert.Equal(t, "inner()", result.Decorations[1].Decorator)
}

func TestTransformFile_PragmasStayOnOriginal(t *testing.T) {
	src := `package sample

// Double doubles x.
//
//go:noinline
//fndecorate:use outer()
//fndecorate:use inner()
func Double(x int) int {
	return x * 2
}
`

	result, err := transform(t, src)
	require.NoError(t, err)

	out := string(result.Output)
	assert.Equal(t, 1, strings.Count(out, "//go:noinline"))
	assert.Contains(t, out, "//go:noinline\nfunc Double_fn_decorator_original_fn_decorator_original(x int) int {")
	assert.Contains(t, out, "// Double doubles x.\nfunc Double(x int) int {")
}

func TestTransformFile_SeveralFunctions(t *testing.T) {
	src := `package sample

//fndecorate:use trace("a")
func A() int { return 1 }

//fndecorate:use trace("b"), exact_parameters = []
func B(v int) { _ = v }
`

	result, err := transform(t, src)
	require.NoError(t, err)

	require.Len(t, result.Decorations, 2)
	assert.ElementsMatch(t, []string{"A", "B"}, []string{result.Decorations[0].Function, result.Decorations[1].Function})

	out := string(result.Output)
	assert.Contains(t, out, `return trace("a", A_fn_decorator_original)`)
	assert.Contains(t, out, "trace(\"b\", func() {\n\t\tB_fn_decorator_original(v)\n\t})")
	assert.Equal(t, 1, strings.Count(out, "func A("))
}

func TestTransformFile_StrayDirective(t *testing.T) {
	src := `package sample

//fndecorate:use decorator()
var x = 1
`

	_, err := transform(t, src)

	var serr *m.StructuralError
	require.ErrorAs(t, err, &serr)
	assert.Contains(t, err.Error(), "sample.go:3:1")
}

func TestTransformFile_DirectiveInsideBody(t *testing.T) {
	src := `package sample

func f() {
	//fndecorate:use decorator()
	g()
}
`

	_, err := transform(t, src)

	var serr *m.StructuralError
	require.ErrorAs(t, err, &serr)
}

func TestTransformFile_GrammarErrorPosition(t *testing.T) {
	src := `package sample

//fndecorate:use decorator(), hide_parameters = [a
func f(a int) int { return a }
`

	_, err := transform(t, src)

	var gerr *m.GrammarError
	require.ErrorAs(t, err, &gerr)
	assert.True(t, strings.HasPrefix(err.Error(), "sample.go:3:"), err.Error())
}

func TestTransformFile_DebugAborts(t *testing.T) {
	src := `package sample

//fndecorate:use decorator(), debug
func f(a int) int { return a }
`

	_, err := transform(t, src)

	var abort *m.DebugAbort
	require.ErrorAs(t, err, &abort)
	assert.Contains(t, abort.Code, "return decorator(f_fn_decorator_original, a)")
}

func TestTransformFile_ReservedNameError(t *testing.T) {
	src := `package sample

type T struct{}

//fndecorate:use decorator(), hide_parameters = [self]
func (t T) M(self int) int { return self }
`

	_, err := transform(t, src)

	var gerr *m.GenerationError
	require.ErrorAs(t, err, &gerr)
	assert.Contains(t, err.Error(), "sample.go:6:1")
}

func TestIsDirective(t *testing.T) {
	assert.True(t, isDirective("//fndecorate:use decorator()"))
	assert.True(t, isDirective("//fndecorate:use"))
	assert.False(t, isDirective("// fndecorate:use decorator()"))
	assert.False(t, isDirective("//fndecorate:user decorator()"))
}
