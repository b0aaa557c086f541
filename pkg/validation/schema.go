// Package validation checks field declarations for legality and mutual
// consistency before any prompting happens. Validation is pure: it never
// touches an instance or an input stream.
package validation

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-prompter/pkg/constraint"
	"github.com/goliatone/go-prompter/pkg/model"
)

type kindSet map[constraint.Kind]struct{}

func kinds(list ...constraint.Kind) kindSet {
	out := make(kindSet, len(list))
	for _, k := range list {
		out[k] = struct{}{}
	}
	return out
}

// allowed is the per-type whitelist of constraint kinds.
var allowed = map[constraint.SemanticType]kindSet{
	constraint.Text: kinds(
		constraint.KindIntOptionRange,
		constraint.KindStringOptions,
		constraint.KindIntOptions,
		constraint.KindStringValues,
	),
	constraint.Integer: kinds(
		constraint.KindNotNegative,
		constraint.KindIntOptionRange,
		constraint.KindStringOptions,
		constraint.KindIntOptions,
		constraint.KindIntValues,
	),
	constraint.Float: kinds(
		constraint.KindNotNegative,
		constraint.KindIntOptionRange,
		constraint.KindStringOptions,
		constraint.KindIntOptions,
		constraint.KindDoubleValues,
	),
}

// SchemaIssue is one rejected field.
type SchemaIssue struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// SchemaValidationResult collects the verdicts for every field.
type SchemaValidationResult struct {
	Valid  bool          `json:"valid"`
	Issues []SchemaIssue `json:"issues,omitempty"`
}

// ValidateFields checks every descriptor in order and returns the first
// configuration error.
func ValidateFields(fields []model.FieldDescriptor) error {
	for _, fd := range fields {
		if err := ValidateField(fd); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAll checks every descriptor and reports each rejected field instead
// of stopping at the first one.
func ValidateAll(fields []model.FieldDescriptor) SchemaValidationResult {
	result := SchemaValidationResult{Valid: true}
	for _, fd := range fields {
		if err := ValidateField(fd); err != nil {
			result.Valid = false
			result.Issues = append(result.Issues, SchemaIssue{Field: fd.Name, Message: reasonOf(err)})
		}
	}
	return result
}

// ValidateField checks a single descriptor.
func ValidateField(fd model.FieldDescriptor) error {
	if !fd.Type.Valid() {
		return fail(fd, reasonUnsupportedType)
	}
	if err := checkWhitelist(fd); err != nil {
		return err
	}

	valuesLen := -1
	if values, ok := fd.Constraints.Values(); ok {
		valuesLen = values.Len()
	}

	if err := checkOptions(fd, valuesLen); err != nil {
		return err
	}
	if err := checkRange(fd, valuesLen); err != nil {
		return err
	}
	return checkNotNegative(fd)
}

func checkWhitelist(fd model.FieldDescriptor) error {
	whitelist := allowed[fd.Type]
	for _, c := range fd.Constraints {
		if c == nil {
			return fail(fd, reasonNilConstraint)
		}
		if !isValueVariant(c) {
			return fail(fd, reasonNotAValue)
		}
		if _, ok := whitelist[c.Kind()]; !ok {
			return fail(fd, fmt.Sprintf("%s annotation cannot be applied to %s field", c.Kind(), typeLabel(fd.Type)))
		}
		if fd.Constraints.Count(c.Kind()) > 1 {
			return fail(fd, fmt.Sprintf("%s annotation can be applied only once", c.Kind()))
		}
	}
	return nil
}

// isValueVariant reports whether c is one of the concrete value types. The
// populator and the checks below match on those types only.
func isValueVariant(c constraint.Constraint) bool {
	switch c.(type) {
	case constraint.StringOptions, constraint.IntOptions, constraint.IntRange,
		constraint.StringValues, constraint.IntValues, constraint.DoubleValues,
		constraint.NotNegative:
		return true
	default:
		return false
	}
}

func checkOptions(fd model.FieldDescriptor, valuesLen int) error {
	strOpts := fd.Constraints.Has(constraint.KindStringOptions)
	intOpts := fd.Constraints.Has(constraint.KindIntOptions)

	if strOpts && intOpts {
		return fail(fd, reasonOptionsExclusive)
	}
	if !strOpts && !intOpts {
		return nil
	}
	if valuesLen == -1 {
		return fail(fd, reasonOptionsNeedValues)
	}
	for _, c := range fd.Constraints {
		switch opt := c.(type) {
		case constraint.StringOptions:
			if opt.Len() != valuesLen {
				return fail(fd, reasonOptionsLength)
			}
		case constraint.IntOptions:
			if opt.Len() != valuesLen {
				return fail(fd, reasonOptionsLength)
			}
		}
	}
	return nil
}

func checkRange(fd model.FieldDescriptor, valuesLen int) error {
	var (
		rng   constraint.IntRange
		found bool
	)
	for _, c := range fd.Constraints {
		if r, ok := c.(constraint.IntRange); ok {
			rng, found = r, true
			break
		}
	}
	if !found {
		return nil
	}

	margin := rng.Len()
	if margin < 2 {
		return fail(fd, reasonRangeInvalid)
	}
	if fd.Constraints.Has(constraint.KindStringOptions) || fd.Constraints.Has(constraint.KindIntOptions) {
		return fail(fd, reasonRangeWithOptions)
	}
	if valuesLen == -1 {
		return fail(fd, reasonRangeNeedsValues)
	}
	if margin != valuesLen {
		return fail(fd, reasonRangeLength)
	}
	return nil
}

func checkNotNegative(fd model.FieldDescriptor) error {
	if !fd.Constraints.Has(constraint.KindNotNegative) {
		return nil
	}
	if fd.Type == constraint.Text {
		return fail(fd, reasonNotNegativeText)
	}
	if _, ok := fd.Constraints.Values(); ok {
		return fail(fd, reasonNotNegativeValues)
	}
	return nil
}

func typeLabel(t constraint.SemanticType) string {
	switch t {
	case constraint.Text:
		return "string"
	case constraint.Integer:
		return "integer"
	default:
		return "double"
	}
}

func fail(fd model.FieldDescriptor, reason string) error {
	return &ConfigError{Field: fd.Name, Type: fd.Type, Reason: reason}
}

func reasonOf(err error) string {
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return cfgErr.Reason
	}
	return err.Error()
}
