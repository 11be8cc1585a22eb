package directive

import (
	"fmt"
	"go/token"

	m "github.com/mouse-blink/fndecorate/internal/model"
)

// Cursor walks a token slice. Forks are cheap value copies, so clause
// alternatives can be tried without disturbing the parent position.
type Cursor struct {
	src  string
	toks []Token
	pos  int
}

// NewCursor returns a cursor positioned at the first token.
func NewCursor(src string, toks []Token) *Cursor {
	return &Cursor{src: src, toks: toks}
}

// Fork returns an independent cursor at the same position.
func (c *Cursor) Fork() *Cursor {
	fork := *c

	return &fork
}

// AdvanceTo moves c to the position reached by fork.
func (c *Cursor) AdvanceTo(fork *Cursor) {
	c.pos = fork.pos
}

// Peek returns the current token without consuming it.
func (c *Cursor) Peek() Token {
	if c.pos >= len(c.toks) {
		return Token{Tok: token.EOF, Offset: len(c.src)}
	}

	return c.toks[c.pos]
}

// Next consumes and returns the current token. EOF is never consumed.
func (c *Cursor) Next() Token {
	tok := c.Peek()
	if tok.Tok != token.EOF {
		c.pos++
	}

	return tok
}

// EOF reports whether all tokens were consumed.
func (c *Cursor) EOF() bool {
	return c.Peek().Tok == token.EOF
}

// Errorf builds a GrammarError located at the current token.
func (c *Cursor) Errorf(format string, args ...any) *m.GrammarError {
	return errorAt(c.Peek(), format, args...)
}

// Expect consumes a token of the given kind.
func (c *Cursor) Expect(tok token.Token) (Token, error) {
	next := c.Peek()
	if next.Tok != tok {
		return next, c.Errorf("expected `%s`, found %s", tok, describe(next))
	}

	return c.Next(), nil
}

// ExpectIdent consumes the identifier name.
func (c *Cursor) ExpectIdent(name string) error {
	next := c.Peek()
	if next.Tok != token.IDENT || next.Lit != name {
		return c.Errorf("expected `%s`, found %s", name, describe(next))
	}

	c.Next()

	return nil
}

// Text returns the source between the start of from and the end of to.
func (c *Cursor) Text(from, to Token) string {
	return c.src[from.Offset:to.End()]
}

// Capture consumes a balanced token run ending before the first stop token
// found outside brackets, and returns its text. EOF always stops.
func (c *Cursor) Capture(what string, stops ...token.Token) (string, error) {
	start := c.Peek()

	var (
		last  Token
		depth int
		count int
	)

	for {
		tok := c.Peek()
		if tok.Tok == token.EOF {
			if depth > 0 {
				return "", c.Errorf("unterminated %s", what)
			}

			break
		}

		if depth == 0 && isStop(tok.Tok, stops) {
			break
		}

		switch tok.Tok {
		case token.LPAREN, token.LBRACK, token.LBRACE:
			depth++
		case token.RPAREN, token.RBRACK, token.RBRACE:
			if depth == 0 {
				return "", c.Errorf("unbalanced `%s` in %s", tok.Tok, what)
			}

			depth--
		}

		last = c.Next()
		count++
	}

	if count == 0 {
		return "", errorAt(start, "expected %s, found %s", what, describe(start))
	}

	return c.Text(start, last), nil
}

func isStop(tok token.Token, stops []token.Token) bool {
	for _, stop := range stops {
		if tok == stop {
			return true
		}
	}

	return false
}

func errorAt(tok Token, format string, args ...any) *m.GrammarError {
	return &m.GrammarError{Column: tok.Offset + 1, Msg: fmt.Sprintf(format, args...)}
}

func describe(tok Token) string {
	if tok.Tok == token.EOF {
		return "end of directive"
	}

	return fmt.Sprintf("`%s`", tok.Text())
}
