package validation

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-prompter/pkg/constraint"
	"github.com/goliatone/go-prompter/pkg/model"
)

func field(name string, typ constraint.SemanticType, cs ...constraint.Constraint) model.FieldDescriptor {
	return model.FieldDescriptor{Name: name, Type: typ, Constraints: cs}
}

func TestValidateField(t *testing.T) {
	fiveDoubles := constraint.DoubleValues{Values: []float64{1.2, 1.375, 1.55, 1.725, 1.9}}

	cases := []struct {
		name   string
		field  model.FieldDescriptor
		reason string
	}{
		{
			name:  "plain text",
			field: field("name", constraint.Text),
		},
		{
			name:  "not negative integer",
			field: field("age", constraint.Integer, constraint.NotNegative{}),
		},
		{
			name:   "unsupported type",
			field:  field("flag", constraint.SemanticType("bool")),
			reason: reasonUnsupportedType,
		},
		{
			name:  "range with matching doubles",
			field: field("activity", constraint.Float, constraint.IntRange{From: 1, To: 5}, fiveDoubles),
		},
		{
			name: "range with short doubles",
			field: field("activity", constraint.Float, constraint.IntRange{From: 1, To: 5},
				constraint.DoubleValues{Values: []float64{1, 2, 3, 4}}),
			reason: reasonRangeLength,
		},
		{
			name:   "range spanning one value",
			field:  field("activity", constraint.Float, constraint.IntRange{From: 3, To: 3}, constraint.DoubleValues{Values: []float64{1}}),
			reason: reasonRangeInvalid,
		},
		{
			name:   "inverted range",
			field:  field("activity", constraint.Float, constraint.IntRange{From: 5, To: 1}, fiveDoubles),
			reason: reasonRangeInvalid,
		},
		{
			name:   "range without values",
			field:  field("activity", constraint.Float, constraint.DefaultRange("")),
			reason: reasonRangeNeedsValues,
		},
		{
			name: "range with options",
			field: field("activity", constraint.Integer, constraint.DefaultRange(""),
				constraint.IntOptions{Options: []int{1, 2, 3, 4, 5}}, constraint.IntValues{Values: []int{1, 2, 3, 4, 5}}),
			reason: reasonRangeWithOptions,
		},
		{
			name: "int options with matched string values",
			field: field("gender", constraint.Text, constraint.IntOptions{Options: []int{5, -161}},
				constraint.StringValues{Values: []string{"m", "f"}}),
		},
		{
			name: "int options with matched int values",
			field: field("gender", constraint.Integer, constraint.IntOptions{Options: []int{5, -161}},
				constraint.IntValues{Values: []int{1, 2}}),
		},
		{
			name: "int options with mismatched int values",
			field: field("gender", constraint.Integer, constraint.IntOptions{Options: []int{5, -161}},
				constraint.IntValues{Values: []int{1}}),
			reason: reasonOptionsLength,
		},
		{
			name: "int options with mismatched string values",
			field: field("gender", constraint.Text, constraint.IntOptions{Options: []int{5, -161}},
				constraint.StringValues{Values: []string{"a", "b", "c"}}),
			reason: reasonOptionsLength,
		},
		{
			name:   "options without values",
			field:  field("gender", constraint.Integer, constraint.StringOptions{Options: []string{"М", "Ж"}}),
			reason: reasonOptionsNeedValues,
		},
		{
			name: "both option kinds",
			field: field("gender", constraint.Integer, constraint.StringOptions{Options: []string{"a"}},
				constraint.IntOptions{Options: []int{1}}, constraint.IntValues{Values: []int{1}}),
			reason: reasonOptionsExclusive,
		},
		{
			name:   "not negative on text",
			field:  field("name", constraint.Text, constraint.NotNegative{}),
			reason: "NotNegative annotation cannot be applied to string field",
		},
		{
			name:   "not negative with values",
			field:  field("age", constraint.Integer, constraint.NotNegative{}, constraint.IntValues{Values: []int{1, 2}}),
			reason: reasonNotNegativeValues,
		},
		{
			name:   "double values on integer",
			field:  field("age", constraint.Integer, constraint.DoubleValues{Values: []float64{1}}),
			reason: "DoubleValues annotation cannot be applied to integer field",
		},
		{
			name:   "int values on double",
			field:  field("ratio", constraint.Float, constraint.IntValues{Values: []int{1}}),
			reason: "IntValues annotation cannot be applied to double field",
		},
		{
			name:   "repeated constraint",
			field:  field("age", constraint.Integer, constraint.NotNegative{}, constraint.NotNegative{}),
			reason: "NotNegative annotation can be applied only once",
		},
		{
			name:   "nil constraint",
			field:  field("age", constraint.Integer, nil),
			reason: reasonNilConstraint,
		},
		{
			name:   "pointer not negative",
			field:  field("age", constraint.Integer, &constraint.NotNegative{ErrMsg: "neg"}),
			reason: reasonNotAValue,
		},
		{
			name:   "pointer range without values",
			field:  field("activity", constraint.Float, &constraint.IntRange{From: 1, To: 5}),
			reason: reasonNotAValue,
		},
		{
			name:   "nil pointer constraint",
			field:  field("age", constraint.Integer, (*constraint.NotNegative)(nil)),
			reason: reasonNotAValue,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateField(tc.field)
			if tc.reason == "" {
				if err != nil {
					t.Fatalf("expected field to be valid, got %v", err)
				}
				return
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if cfgErr.Reason != tc.reason {
				t.Fatalf("reason mismatch:\nwant %q\ngot  %q", tc.reason, cfgErr.Reason)
			}
			if cfgErr.Field != tc.field.Name {
				t.Fatalf("field mismatch: %q", cfgErr.Field)
			}
			if !errors.Is(err, ErrConfig) {
				t.Fatalf("expected errors.Is(err, ErrConfig)")
			}
		})
	}
}

func TestValidateField_NotNegativeTextAlwaysRejected(t *testing.T) {
	variants := [][]constraint.Constraint{
		{constraint.NotNegative{}},
		{constraint.StringValues{Values: []string{"a"}}, constraint.NotNegative{}},
		{constraint.NotNegative{}, constraint.StringOptions{Options: []string{"a"}}, constraint.StringValues{Values: []string{"b"}}},
	}
	for i, cs := range variants {
		if err := ValidateField(field("name", constraint.Text, cs...)); err == nil {
			t.Fatalf("variant %d: expected NotNegative on text to be rejected", i)
		}
	}
}

func TestValidateFields_StopsAtFirstInvalidField(t *testing.T) {
	fields := []model.FieldDescriptor{
		field("ok", constraint.Text),
		field("broken", constraint.Float, constraint.DefaultRange("")),
		field("also-broken", constraint.SemanticType("bool")),
	}
	err := ValidateFields(fields)

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "broken" {
		t.Fatalf("expected error for field broken, got %v", err)
	}
	if err.Error() != "field broken: "+reasonRangeNeedsValues {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestValidateAll_OrderIndependentAndIdempotent(t *testing.T) {
	a := field("a", constraint.Float, constraint.DefaultRange(""), constraint.DoubleValues{Values: []float64{1, 2, 3, 4}})
	b := field("b", constraint.Integer, constraint.NotNegative{})
	c := field("c", constraint.Text, constraint.NotNegative{})

	verdicts := func(fields ...model.FieldDescriptor) map[string]string {
		out := map[string]string{}
		for _, fd := range fields {
			out[fd.Name] = ""
		}
		for _, issue := range ValidateAll(fields).Issues {
			out[issue.Field] = issue.Message
		}
		return out
	}

	forward := verdicts(a, b, c)
	backward := verdicts(c, b, a)
	if diff := cmp.Diff(forward, backward); diff != "" {
		t.Fatalf("verdicts depend on order (-forward +backward):\n%s", diff)
	}
	if diff := cmp.Diff(forward, verdicts(a, b, c)); diff != "" {
		t.Fatalf("validation is not idempotent:\n%s", diff)
	}

	result := ValidateAll([]model.FieldDescriptor{a, b, c})
	if result.Valid || len(result.Issues) != 2 {
		t.Fatalf("expected two issues, got %#v", result)
	}
	if !ValidateAll([]model.FieldDescriptor{b}).Valid {
		t.Fatalf("expected b alone to be valid")
	}
}
