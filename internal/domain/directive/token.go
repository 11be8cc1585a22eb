// Package directive parses the argument list of a //fndecorate:use directive.
package directive

import (
	"go/scanner"
	"go/token"

	m "github.com/mouse-blink/fndecorate/internal/model"
)

// Token is one lexical token of directive text.
type Token struct {
	Tok    token.Token
	Lit    string
	Offset int
}

// Text returns the token as it appears in the source.
func (t Token) Text() string {
	if t.Lit != "" {
		return t.Lit
	}

	return t.Tok.String()
}

// End is the offset just past the token.
func (t Token) End() int {
	if t.Tok == token.EOF {
		return t.Offset
	}

	return t.Offset + len(t.Text())
}

// Tokenize splits directive text into Go tokens. Semicolons the scanner
// inserts at line ends are dropped; the returned slice always ends with EOF.
func Tokenize(src string) ([]Token, error) {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	var firstErr *m.GrammarError

	var s scanner.Scanner
	s.Init(file, []byte(src), func(pos token.Position, msg string) {
		if firstErr == nil {
			firstErr = &m.GrammarError{Column: pos.Column, Msg: msg}
		}
	}, 0)

	var toks []Token

	for {
		pos, tok, lit := s.Scan()
		offset := file.Offset(pos)

		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}

		if tok == token.EOF {
			toks = append(toks, Token{Tok: token.EOF, Offset: len(src)})

			break
		}

		toks = append(toks, Token{Tok: tok, Lit: lit, Offset: offset})
	}

	if firstErr != nil {
		return nil, firstErr
	}

	return toks, nil
}
