package model

import "fmt"

// GrammarError reports malformed directive text.
type GrammarError struct {
	// Column is the 1-based column inside the directive arguments.
	Column int
	Msg    string
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("directive column %d: %s", e.Column, e.Msg)
}

// StructuralError reports a directive attached to something that cannot be decorated.
type StructuralError struct {
	Msg string
}

func (e *StructuralError) Error() string {
	return e.Msg
}

// GenerationError reports a signature the generator cannot wrap.
type GenerationError struct {
	Function string
	Msg      string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("cannot decorate %s: %s", e.Function, e.Msg)
}

// DebugAbort carries generated code requested by a debug directive. It always
// ends the run that produced it.
type DebugAbort struct {
	Function string
	Code     string
}

func (e *DebugAbort) Error() string {
	return fmt.Sprintf("generated code = `%s`", e.Code)
}
