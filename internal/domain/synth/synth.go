// Package synth models the Go declarations produced by the decorator
// generator. The generator builds values of these types and Print
// serializes them to Go source.
package synth

// Decl is a top-level declaration.
type Decl interface{ synthDecl() }

// Stmt is a statement inside a function body.
type Stmt interface{ synthStmt() }

// Expr is an expression.
type Expr interface{ synthExpr() }

// RawDecl is a declaration kept exactly as written in the input file.
type RawDecl struct {
	Code string
}

func (RawDecl) synthDecl() {}

// FuncDecl represents: func (recv) name[typeParams](params) results { body }
type FuncDecl struct {
	Doc        []string // comment lines, "//" included
	Recv       *Field   // nil for plain functions
	Name       string
	TypeParams string // bracketed list as written, empty when not generic
	Params     []Field
	Results    string // empty for no results
	Body       []Stmt
}

func (FuncDecl) synthDecl() {}

// Field is a named parameter or receiver.
type Field struct {
	Name string
	Type string
}

// DefineStmt represents: name := value
type DefineStmt struct {
	Name  string
	Value Expr
}

func (DefineStmt) synthStmt() {}

// ReturnStmt represents: return value
type ReturnStmt struct {
	Value Expr
}

func (ReturnStmt) synthStmt() {}

// ExprStmt is an expression used as a statement.
type ExprStmt struct {
	X Expr
}

func (ExprStmt) synthStmt() {}

// Ident is an identifier or any expression kept as written.
type Ident string

func (Ident) synthExpr() {}

// MethodExpr represents a method expression: (*T).Name or T.Name.
type MethodExpr struct {
	Recv string
	Name string
}

func (MethodExpr) synthExpr() {}

// Instantiate represents an explicit generic instantiation: fn[T, U].
type Instantiate struct {
	Fun      Expr
	TypeArgs []string
}

func (Instantiate) synthExpr() {}

// CallExpr represents: fun(args) or fun(args...) when Ellipsis is set.
type CallExpr struct {
	Fun      Expr
	Args     []Expr
	Ellipsis bool
}

func (CallExpr) synthExpr() {}

// FuncLit represents: func(params) results { body }
type FuncLit struct {
	Params  []Field
	Results string
	Body    []Stmt
}

func (FuncLit) synthExpr() {}
