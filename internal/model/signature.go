package model

// Visibility is the export status of a declared function.
type Visibility int

const (
	// Unexported functions start with a lower-case letter.
	Unexported Visibility = iota
	// Exported functions start with an upper-case letter.
	Exported
)

func (v Visibility) String() string {
	if v == Exported {
		return "exported"
	}

	return "unexported"
}

// SlotKind distinguishes the receiver slot from ordinary parameters.
type SlotKind int

const (
	// NamedSlot is an ordinary parameter.
	NamedSlot SlotKind = iota
	// ReceiverSlot is a method receiver.
	ReceiverSlot
)

// Param is one slot of a function's parameter list.
type Param struct {
	Slot SlotKind
	// Name is the identifier the wrapper declares and forwards. Unnamed and
	// blank parameters get a synthetic name.
	Name string
	// Type is the declared type as written. Variadic parameters keep "...".
	Type     string
	Variadic bool
}

// Selector is the name selection rules use to address the slot.
func (p Param) Selector() string {
	if p.Slot == ReceiverSlot {
		return ReceiverSelector
	}

	return p.Name
}

// FunctionSignature is the normalized view of a decorated function.
type FunctionSignature struct {
	Name        string
	Visibility  Visibility
	IsAsync     bool
	HasReceiver bool
	// ReceiverType is the receiver type as written, empty for functions.
	ReceiverType string
	// TypeParams is the bracketed type parameter list as written.
	TypeParams     string
	TypeParamNames []string
	// Params holds the receiver first, when present, then the declared
	// parameters in declaration order.
	Params []Param
	// Results is the declared result list as written, empty when none.
	Results string
	// AwaitType is the element type of the result channel of an async function.
	AwaitType string
}

// Receiver returns the receiver slot of a method.
func (s FunctionSignature) Receiver() (Param, bool) {
	if !s.HasReceiver || len(s.Params) == 0 {
		return Param{}, false
	}

	return s.Params[0], true
}

// HasResults reports whether the function declares any result.
func (s FunctionSignature) HasResults() bool {
	return s.Results != ""
}

// OriginalName is the name the original definition is relocated to.
func (s FunctionSignature) OriginalName() string {
	return s.Name + OriginalSuffix
}
