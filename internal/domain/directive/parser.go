package directive

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"

	m "github.com/mouse-blink/fndecorate/internal/model"
)

const (
	hideKeyword     = "hide_parameters"
	exactKeyword    = "exact_parameters"
	overrideKeyword = "override_return_type"
	debugKeyword    = "debug"
)

type clauseKind int

const (
	clauseSelection clauseKind = iota
	clauseCall
	clauseDebug
	clauseOverride
)

type clause struct {
	kind     clauseKind
	path     string
	args     []string
	rule     m.SelectionRule
	override string
}

type alternative func(c *Cursor) (clause, error)

// alternatives are tried in this order at every clause position.
var alternatives = []alternative{
	parseHideClause,
	parseExactClause,
	parseDecoratorCall,
	parseDebugClause,
	parseOverrideClause,
}

// Parse turns directive arguments into a DecoratorSpec.
func Parse(src string) (m.DecoratorSpec, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return m.DecoratorSpec{}, err
	}

	c := NewCursor(src, toks)

	var b specBuilder

	for first := true; !c.EOF(); first = false {
		if !first {
			if _, err := c.Expect(token.COMMA); err != nil {
				return m.DecoratorSpec{}, err
			}
		}

		start := c.Peek()

		cl, err := parseClause(c)
		if err != nil {
			return m.DecoratorSpec{}, err
		}

		if err := b.add(cl, start); err != nil {
			return m.DecoratorSpec{}, err
		}
	}

	return b.build(c)
}

// parseClause commits the first alternative that parses. When all fail, the
// failure that got furthest is reported if it lies past the clause's first
// two tokens; a lone unknown word gets the generic message.
func parseClause(c *Cursor) (clause, error) {
	first := c.Peek()

	lookahead := c.Fork()
	lookahead.Next()
	second := lookahead.Peek()

	var furthest *m.GrammarError

	for _, alt := range alternatives {
		fork := c.Fork()

		cl, err := alt(fork)
		if err == nil {
			c.AdvanceTo(fork)

			return cl, nil
		}

		var gerr *m.GrammarError
		if errors.As(err, &gerr) && (furthest == nil || gerr.Column > furthest.Column) {
			furthest = gerr
		}
	}

	if furthest != nil && first.Tok != token.EOF && second.Tok != token.EOF && furthest.Column-1 >= second.End() {
		return clause{}, furthest
	}

	return clause{}, errorAt(first,
		"expected decorator function call, %s = [...], %s = [...], %s = <type> or %s, found %s",
		hideKeyword, exactKeyword, overrideKeyword, debugKeyword, describe(first))
}

func parseHideClause(c *Cursor) (clause, error) {
	return parseSelection(c, hideKeyword, m.SelectHide)
}

func parseExactClause(c *Cursor) (clause, error) {
	return parseSelection(c, exactKeyword, m.SelectExact)
}

func parseSelection(c *Cursor, keyword string, kind m.SelectionKind) (clause, error) {
	if err := c.ExpectIdent(keyword); err != nil {
		return clause{}, err
	}

	if _, err := c.Expect(token.ASSIGN); err != nil {
		return clause{}, err
	}

	if _, err := c.Expect(token.LBRACK); err != nil {
		return clause{}, err
	}

	names := []string{}

	for c.Peek().Tok != token.RBRACK {
		ident, err := c.Expect(token.IDENT)
		if err != nil {
			return clause{}, c.Errorf("expected parameter name in %s list, found %s", keyword, describe(ident))
		}

		names = append(names, ident.Lit)

		if c.Peek().Tok != token.COMMA {
			break
		}

		c.Next()
	}

	if _, err := c.Expect(token.RBRACK); err != nil {
		return clause{}, err
	}

	return clause{kind: clauseSelection, rule: m.SelectionRule{Kind: kind, Names: names}}, nil
}

func parseDecoratorCall(c *Cursor) (clause, error) {
	first, err := c.Expect(token.IDENT)
	if err != nil {
		return clause{}, err
	}

	last := first

	for c.Peek().Tok == token.PERIOD {
		c.Next()

		if last, err = c.Expect(token.IDENT); err != nil {
			return clause{}, err
		}
	}

	if c.Peek().Tok == token.LBRACK {
		if last, err = parseTypeArgs(c); err != nil {
			return clause{}, err
		}
	}

	path := c.Text(first, last)

	if _, err := c.Expect(token.LPAREN); err != nil {
		return clause{}, err
	}

	args := []string{}

	for c.Peek().Tok != token.RPAREN {
		start := c.Peek()

		arg, err := c.Capture("decorator argument", token.COMMA, token.RPAREN)
		if err != nil {
			return clause{}, err
		}

		if _, err := parser.ParseExpr(arg); err != nil {
			return clause{}, errorAt(start, "malformed decorator argument %q", arg)
		}

		args = append(args, arg)

		if c.Peek().Tok != token.COMMA {
			break
		}

		c.Next()
	}

	if _, err := c.Expect(token.RPAREN); err != nil {
		return clause{}, err
	}

	return clause{kind: clauseCall, path: path, args: args}, nil
}

// parseTypeArgs consumes an explicit instantiation list and returns its closing bracket.
func parseTypeArgs(c *Cursor) (Token, error) {
	c.Next()

	for {
		start := c.Peek()

		arg, err := c.Capture("type argument", token.COMMA, token.RBRACK)
		if err != nil {
			return Token{}, err
		}

		if _, err := parser.ParseExpr(arg); err != nil {
			return Token{}, errorAt(start, "malformed type expression %q", arg)
		}

		if c.Peek().Tok != token.COMMA {
			break
		}

		c.Next()
	}

	return c.Expect(token.RBRACK)
}

func parseDebugClause(c *Cursor) (clause, error) {
	if err := c.ExpectIdent(debugKeyword); err != nil {
		return clause{}, err
	}

	return clause{kind: clauseDebug}, nil
}

func parseOverrideClause(c *Cursor) (clause, error) {
	if err := c.ExpectIdent(overrideKeyword); err != nil {
		return clause{}, err
	}

	if _, err := c.Expect(token.ASSIGN); err != nil {
		return clause{}, err
	}

	start := c.Peek()

	typ, err := c.Capture("type expression", token.COMMA)
	if err != nil {
		return clause{}, err
	}

	if !isResultList(typ) {
		return clause{}, errorAt(start, "malformed type expression %q", typ)
	}

	return clause{kind: clauseOverride, override: typ}, nil
}

// isResultList reports whether typ parses as the result list of a function type.
func isResultList(typ string) bool {
	expr, err := parser.ParseExpr("func() " + typ)
	if err != nil {
		return false
	}

	fn, ok := expr.(*ast.FuncType)

	return ok && fn.Results != nil && len(fn.Results.List) > 0
}

type specBuilder struct {
	spec    m.DecoratorSpec
	hasCall bool
}

func (b *specBuilder) add(cl clause, at Token) error {
	switch cl.kind {
	case clauseSelection:
		if b.spec.Selection != nil {
			if b.spec.Selection.Kind == cl.rule.Kind {
				return errorAt(at, "at most one %s list is allowed", cl.rule.Kind.Keyword())
			}

			return errorAt(at, "%s and %s are mutually exclusive", hideKeyword, exactKeyword)
		}

		rule := cl.rule
		b.spec.Selection = &rule
	case clauseCall:
		if b.hasCall {
			return errorAt(at, "exactly one decorator function call is allowed")
		}

		b.hasCall = true
		b.spec.Path = cl.path
		b.spec.Args = cl.args
	case clauseDebug:
		if b.spec.Debug {
			return errorAt(at, "at most one `%s` is allowed", debugKeyword)
		}

		b.spec.Debug = true
	case clauseOverride:
		if b.spec.HasReturnOverride() {
			return errorAt(at, "at most one %s is allowed", overrideKeyword)
		}

		b.spec.ReturnOverride = cl.override
	}

	return nil
}

func (b *specBuilder) build(c *Cursor) (m.DecoratorSpec, error) {
	if !b.hasCall {
		return m.DecoratorSpec{}, c.Errorf("exactly one decorator function call is required")
	}

	return b.spec, nil
}
