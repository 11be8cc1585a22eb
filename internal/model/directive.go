// Package model defines the data structures shared by the directive parser,
// the code generator and the file workflow.
package model

import (
	"fmt"
	"strings"
)

const (
	// DirectivePrefix marks a doc-comment line carrying decorator directive arguments.
	DirectivePrefix = "//fndecorate:use"

	// ReceiverSelector names the receiver slot inside selection lists.
	ReceiverSelector = "self"

	// ReceiverBinding is the identifier the receiver is rebound to when it has
	// to be captured by, or passed through, a generated closure.
	ReceiverBinding = "_self"

	// OriginalSuffix is appended to the name of the relocated original function.
	OriginalSuffix = "_fn_decorator_original"
)

// SelectionKind tells how a SelectionRule filters the parameter list.
type SelectionKind int

const (
	// SelectHide forwards every parameter except the listed ones.
	SelectHide SelectionKind = iota + 1
	// SelectExact forwards only the listed parameters.
	SelectExact
)

// Keyword returns the directive clause keyword for the kind.
func (k SelectionKind) Keyword() string {
	switch k {
	case SelectHide:
		return "hide_parameters"
	case SelectExact:
		return "exact_parameters"
	default:
		return "unknown"
	}
}

// SelectionRule decides which parameters reach the closure handed to the decorator.
type SelectionRule struct {
	Kind  SelectionKind
	Names []string
}

// Contains reports whether selector appears in the rule's name list.
func (r SelectionRule) Contains(selector string) bool {
	for _, name := range r.Names {
		if name == selector {
			return true
		}
	}

	return false
}

func (r SelectionRule) String() string {
	return fmt.Sprintf("%s = [%s]", r.Kind.Keyword(), strings.Join(r.Names, ", "))
}

// DecoratorSpec is the parsed form of one directive.
type DecoratorSpec struct {
	// Path is the decorator function reference as written, type arguments included.
	Path string
	// Args are decorator arguments passed ahead of the wrapped function, verbatim.
	Args []string
	// Selection is nil when every parameter is forwarded.
	Selection *SelectionRule
	// ReturnOverride replaces the wrapper's result list when not empty.
	ReturnOverride string
	Debug          bool
}

// Call renders the decorator call clause the way it appeared in the directive.
func (s DecoratorSpec) Call() string {
	return fmt.Sprintf("%s(%s)", s.Path, strings.Join(s.Args, ", "))
}

// HasReturnOverride reports whether the wrapper result list is overridden.
func (s DecoratorSpec) HasReturnOverride() bool {
	return s.ReturnOverride != ""
}
