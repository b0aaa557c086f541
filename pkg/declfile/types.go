package declfile

import (
	"sort"

	"github.com/goliatone/go-prompter/pkg/constraint"
)

// Store keeps the parsed entity declarations. It is safe for concurrent
// readers when treated as immutable after construction.
type Store struct {
	entities map[string]Entity
}

// Entity holds the field overlays declared for one entity.
type Entity struct {
	Name   string
	Source string
	Fields map[string]FieldDecl
}

// FieldNames returns the declared field names in sorted order.
func (e Entity) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FieldDecl overlays one field.
type FieldDecl struct {
	Type          string       `json:"type,omitempty" yaml:"type,omitempty"`
	Prompt        string       `json:"prompt,omitempty" yaml:"prompt,omitempty"`
	Replace       bool         `json:"replace,omitempty" yaml:"replace,omitempty"`
	StringOptions *StringList  `json:"stringOptions,omitempty" yaml:"stringOptions,omitempty"`
	IntOptions    *IntList     `json:"intOptions,omitempty" yaml:"intOptions,omitempty"`
	IntRange      *RangeDecl   `json:"intRange,omitempty" yaml:"intRange,omitempty"`
	StringValues  *StringList  `json:"stringValues,omitempty" yaml:"stringValues,omitempty"`
	IntValues     *IntList     `json:"intValues,omitempty" yaml:"intValues,omitempty"`
	DoubleValues  *FloatList   `json:"doubleValues,omitempty" yaml:"doubleValues,omitempty"`
	NotNegative   *MessageDecl `json:"notNegative,omitempty" yaml:"notNegative,omitempty"`
}

// StringList declares a list of strings with an error message.
type StringList struct {
	Values []string `json:"values" yaml:"values"`
	ErrMsg string   `json:"errMsg,omitempty" yaml:"errMsg,omitempty"`
}

// IntList declares a list of integers with an error message.
type IntList struct {
	Values []int  `json:"values" yaml:"values"`
	ErrMsg string `json:"errMsg,omitempty" yaml:"errMsg,omitempty"`
}

// FloatList declares a list of floating-point numbers with an error message.
type FloatList struct {
	Values []float64 `json:"values" yaml:"values"`
	ErrMsg string    `json:"errMsg,omitempty" yaml:"errMsg,omitempty"`
}

// RangeDecl declares an inclusive integer range; omitted bounds default to
// 1 and 5.
type RangeDecl struct {
	From   *int   `json:"from,omitempty" yaml:"from,omitempty"`
	To     *int   `json:"to,omitempty" yaml:"to,omitempty"`
	ErrMsg string `json:"errMsg,omitempty" yaml:"errMsg,omitempty"`
}

// MessageDecl declares a constraint that only carries a message.
type MessageDecl struct {
	ErrMsg string `json:"errMsg,omitempty" yaml:"errMsg,omitempty"`
}

// Constraints converts the declarations into constraint values, in a fixed
// order: options, range, values, NotNegative.
func (f FieldDecl) Constraints() constraint.Set {
	var out constraint.Set
	if f.StringOptions != nil {
		out = append(out, constraint.StringOptions{Options: f.StringOptions.Values, ErrMsg: f.StringOptions.ErrMsg})
	}
	if f.IntOptions != nil {
		out = append(out, constraint.IntOptions{Options: f.IntOptions.Values, ErrMsg: f.IntOptions.ErrMsg})
	}
	if f.IntRange != nil {
		rng := constraint.DefaultRange(f.IntRange.ErrMsg)
		if f.IntRange.From != nil {
			rng.From = *f.IntRange.From
		}
		if f.IntRange.To != nil {
			rng.To = *f.IntRange.To
		}
		out = append(out, rng)
	}
	if f.StringValues != nil {
		out = append(out, constraint.StringValues{Values: f.StringValues.Values, ErrMsg: f.StringValues.ErrMsg})
	}
	if f.IntValues != nil {
		out = append(out, constraint.IntValues{Values: f.IntValues.Values, ErrMsg: f.IntValues.ErrMsg})
	}
	if f.DoubleValues != nil {
		out = append(out, constraint.DoubleValues{Values: f.DoubleValues.Values, ErrMsg: f.DoubleValues.ErrMsg})
	}
	if f.NotNegative != nil {
		out = append(out, constraint.NotNegative{ErrMsg: f.NotNegative.ErrMsg})
	}
	return out
}
