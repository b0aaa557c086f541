package model

import "github.com/goliatone/go-prompter/pkg/constraint"

// DefaultPromptPrefix precedes the field name when no prompt text is declared.
const DefaultPromptPrefix = "Enter your "

// FieldDescriptor is the static description of one promptable field.
type FieldDescriptor struct {
	Name          string                  `json:"name"`
	Type          constraint.SemanticType `json:"type"`
	PromptMessage string                  `json:"prompt,omitempty"`
	Constraints   constraint.Set          `json:"-"`
}

// Prompt returns the declared prompt text or the generated default.
func (d FieldDescriptor) Prompt() string {
	if d.PromptMessage != "" {
		return d.PromptMessage
	}
	return DefaultPromptPrefix + d.Name
}

// FieldOption mutates a descriptor while an entity is being declared.
type FieldOption func(*FieldDescriptor)

// Message sets the prompt text shown before reading input.
func Message(msg string) FieldOption {
	return func(d *FieldDescriptor) { d.PromptMessage = msg }
}

// With attaches constraints to the field in the given order.
func With(constraints ...constraint.Constraint) FieldOption {
	return func(d *FieldDescriptor) {
		d.Constraints = append(d.Constraints, constraints...)
	}
}

// Decorator adjusts the descriptors of a named entity after declaration.
type Decorator interface {
	Decorate(entity string, fields []*FieldDescriptor) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(entity string, fields []*FieldDescriptor) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(entity string, fields []*FieldDescriptor) error {
	return fn(entity, fields)
}
