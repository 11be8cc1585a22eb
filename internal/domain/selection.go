package domain

import (
	m "github.com/mouse-blink/fndecorate/internal/model"
)

// Forwarded is a parameter that reaches the decorator-facing closure.
type Forwarded struct {
	m.Param
	// Binding is the identifier used for the parameter inside the closure.
	Binding string
}

// SelectParameters returns the parameters forwarded to the decorator, in
// declaration order. A nil rule forwards everything. Names that do not
// match any slot are ignored.
func SelectParameters(params []m.Param, rule *m.SelectionRule) []Forwarded {
	out := make([]Forwarded, 0, len(params))

	for _, p := range params {
		if rule != nil {
			listed := rule.Contains(p.Selector())
			if (rule.Kind == m.SelectHide && listed) || (rule.Kind == m.SelectExact && !listed) {
				continue
			}
		}

		out = append(out, Forwarded{Param: p, Binding: bindingName(p)})
	}

	return out
}

// UnmatchedSelections lists rule names that address no slot of params.
func UnmatchedSelections(params []m.Param, rule *m.SelectionRule) []string {
	if rule == nil {
		return nil
	}

	known := make(map[string]struct{}, len(params))
	for _, p := range params {
		known[p.Selector()] = struct{}{}
	}

	var unmatched []string

	for _, name := range rule.Names {
		if _, ok := known[name]; !ok {
			unmatched = append(unmatched, name)
		}
	}

	return unmatched
}

func bindingName(p m.Param) string {
	if p.Slot == m.ReceiverSlot {
		return m.ReceiverBinding
	}

	return p.Name
}
