package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-prompter/pkg/constraint"
	"github.com/goliatone/go-prompter/pkg/model"
	"github.com/goliatone/go-prompter/pkg/testsupport"
	"github.com/goliatone/go-prompter/pkg/validation"
)

func descriptor(typ constraint.SemanticType, cs ...constraint.Constraint) model.FieldDescriptor {
	return model.FieldDescriptor{Name: "f", Type: typ, Constraints: cs}
}

func TestAccept(t *testing.T) {
	activity := descriptor(constraint.Float,
		constraint.IntRange{From: 1, To: 5, ErrMsg: "range"},
		constraint.DoubleValues{Values: []float64{1.2, 1.375, 1.55, 1.725, 1.9}},
	)
	gender := descriptor(constraint.Integer,
		constraint.StringOptions{Options: []string{"М", "Ж"}, ErrMsg: "gender"},
		constraint.IntValues{Values: []int{5, -161}},
	)

	cases := []struct {
		name  string
		field model.FieldDescriptor
		input string
		want  any
		err   string
	}{
		{name: "free text", field: descriptor(constraint.Text), input: " any thing ", want: " any thing "},
		{name: "text in values", field: descriptor(constraint.Text, constraint.StringValues{Values: []string{"a", "b"}, ErrMsg: "ab"}), input: "b", want: "b"},
		{name: "text outside values", field: descriptor(constraint.Text, constraint.StringValues{Values: []string{"a", "b"}, ErrMsg: "ab"}), input: "c", err: "ab"},
		{name: "text option to string value", field: descriptor(constraint.Text, constraint.IntOptions{Options: []int{10, 20}}, constraint.StringValues{Values: []string{"ten", "twenty"}}), input: "20", want: "twenty"},
		{name: "integer", field: descriptor(constraint.Integer), input: "-12", want: -12},
		{name: "integer parse failure", field: descriptor(constraint.Integer), input: "1.5", err: MsgIntegerRequired},
		{name: "integer with spaces", field: descriptor(constraint.Integer), input: " 4", err: MsgIntegerRequired},
		{name: "integer not negative zero", field: descriptor(constraint.Integer, constraint.NotNegative{}), input: "0", want: 0},
		{name: "integer negative", field: descriptor(constraint.Integer, constraint.NotNegative{ErrMsg: "neg"}), input: "-5", err: "neg"},
		{name: "integer values", field: descriptor(constraint.Integer, constraint.IntValues{Values: []int{3, 7}, ErrMsg: "3 or 7"}), input: "4", err: "3 or 7"},
		{name: "float", field: descriptor(constraint.Float), input: " 2.5 ", want: 2.5},
		{name: "float parse failure", field: descriptor(constraint.Float), input: "abc", err: MsgFloatRequired},
		{name: "float negative", field: descriptor(constraint.Float, constraint.NotNegative{ErrMsg: "neg"}), input: "-0.1", err: "neg"},
		{name: "float exact value", field: descriptor(constraint.Float, constraint.DoubleValues{Values: []float64{1.375}}), input: "1.375", want: 1.375},
		{name: "float inexact value", field: descriptor(constraint.Float, constraint.DoubleValues{Values: []float64{1.375}, ErrMsg: "exact"}), input: "1.3750001", err: "exact"},
		{name: "range option", field: activity, input: "3", want: 1.55},
		{name: "range option out of range", field: activity, input: "6", err: "range"},
		{name: "range option parse failure", field: activity, input: "three", err: "range"},
		{name: "string option", field: gender, input: "Ж", want: -161},
		{name: "string option miss", field: gender, input: "ж", err: "gender"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Accept(tc.field, tc.input)
			if tc.err != "" {
				var inputErr *constraint.InputError
				if !errors.As(err, &inputErr) {
					t.Fatalf("expected input error, got %v (value %#v)", err, got)
				}
				if inputErr.Message != tc.err {
					t.Fatalf("message mismatch: want %q got %q", tc.err, inputErr.Message)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("value mismatch: want %#v got %#v", tc.want, got)
			}
		})
	}
}

func TestAccept_UnvalidatedDescriptors(t *testing.T) {
	if _, err := Accept(descriptor(constraint.SemanticType("bool")), "true"); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}

	_, err := Accept(descriptor(constraint.Integer, constraint.DefaultRange("")), "2")
	var inputErr *constraint.InputError
	if err == nil || errors.As(err, &inputErr) {
		t.Fatalf("expected non-input error for options without values, got %v", err)
	}
}

func TestConfigure_RejectsPointerConstraints(t *testing.T) {
	cases := map[string]constraint.Constraint{
		"not negative": &constraint.NotNegative{ErrMsg: "neg"},
		"range":        &constraint.IntRange{From: 1, To: 5},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			reader := testsupport.NewScriptedReader("-5", "3")
			p := New[person](WithLineReader(reader), WithSink(&testsupport.RecordingSink{}))

			entity := model.NewEntity[person]("person").
				Int("age", func(p *person, v int) { p.Age = v }, model.With(c))
			if err := p.Configure(entity); !errors.Is(err, validation.ErrConfig) {
				t.Fatalf("expected configuration error, got %v", err)
			}

			got, err := p.Prompt(context.Background())
			if got != nil || !errors.Is(err, ErrEntityNotConfigured) {
				t.Fatalf("expected unconfigured prompter, got %#v, %v", got, err)
			}
			if reader.Consumed() != 0 {
				t.Fatalf("no input may be read, consumed %d lines", reader.Consumed())
			}
		})
	}
}
