package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-prompter/pkg/constraint"
)

// ErrTypeMismatch is returned when a value does not match the field setter.
var ErrTypeMismatch = errors.New("model: value type does not match field")

// Field couples a descriptor with the setter that writes an accepted value
// into a target instance.
type Field[T any] struct {
	FieldDescriptor
	assign func(*T, any) error
}

// Assign writes value into target. It never drops a value silently: a nil
// target, a missing setter or a type mismatch all yield an error.
func (f Field[T]) Assign(target *T, value any) error {
	if target == nil {
		return fmt.Errorf("model: assign %q: target is nil", f.Name)
	}
	if f.assign == nil {
		return fmt.Errorf("model: assign %q: no setter declared", f.Name)
	}
	return f.assign(target, value)
}

// Entity is the ordered declaration of every promptable field of T.
type Entity[T any] struct {
	name      string
	fields    []Field[T]
	index     map[string]int
	construct func() (*T, error)
}

// NewEntity starts an empty declaration. The name identifies the entity to
// decorators and in diagnostics.
func NewEntity[T any](name string) *Entity[T] {
	return &Entity[T]{
		name:  name,
		index: make(map[string]int),
	}
}

// Name reports the entity name.
func (e *Entity[T]) Name() string {
	return e.name
}

// String declares a text field.
func (e *Entity[T]) String(name string, set func(*T, string), opts ...FieldOption) *Entity[T] {
	return e.Add(name, constraint.Text, func(target *T, value any) error {
		v, ok := value.(string)
		if !ok {
			return mismatch(name, constraint.Text, value)
		}
		set(target, v)
		return nil
	}, opts...)
}

// Int declares an integer field.
func (e *Entity[T]) Int(name string, set func(*T, int), opts ...FieldOption) *Entity[T] {
	return e.Add(name, constraint.Integer, func(target *T, value any) error {
		v, ok := value.(int)
		if !ok {
			return mismatch(name, constraint.Integer, value)
		}
		set(target, v)
		return nil
	}, opts...)
}

// Float declares a floating-point field.
func (e *Entity[T]) Float(name string, set func(*T, float64), opts ...FieldOption) *Entity[T] {
	return e.Add(name, constraint.Float, func(target *T, value any) error {
		v, ok := value.(float64)
		if !ok {
			return mismatch(name, constraint.Float, value)
		}
		set(target, v)
		return nil
	}, opts...)
}

// Add declares a field with an explicit semantic type and untyped setter.
// Types outside the supported enumeration are accepted here and rejected by
// schema validation. Empty or duplicate names panic.
func (e *Entity[T]) Add(name string, typ constraint.SemanticType, assign func(*T, any) error, opts ...FieldOption) *Entity[T] {
	if strings.TrimSpace(name) == "" {
		panic("model: empty field name")
	}
	if _, exists := e.index[name]; exists {
		panic(fmt.Sprintf("model: field %q declared twice", name))
	}

	desc := FieldDescriptor{Name: name, Type: typ}
	for _, opt := range opts {
		if opt != nil {
			opt(&desc)
		}
	}

	e.index[name] = len(e.fields)
	e.fields = append(e.fields, Field[T]{FieldDescriptor: desc, assign: assign})
	return e
}

// WithConstructor overrides how the target instance is created. By default
// the zero value of T is allocated.
func (e *Entity[T]) WithConstructor(fn func() (*T, error)) *Entity[T] {
	e.construct = fn
	return e
}

// New creates the instance to populate.
func (e *Entity[T]) New() (*T, error) {
	if e.construct == nil {
		return new(T), nil
	}
	target, err := e.construct()
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, errors.New("model: constructor returned nil instance")
	}
	return target, nil
}

// Fields returns a snapshot of the declared fields in order.
func (e *Entity[T]) Fields() []Field[T] {
	out := make([]Field[T], len(e.fields))
	for i, f := range e.fields {
		f.Constraints = f.Constraints.Clone()
		out[i] = f
	}
	return out
}

// Descriptors returns the field descriptors in declaration order.
func (e *Entity[T]) Descriptors() []FieldDescriptor {
	out := make([]FieldDescriptor, len(e.fields))
	for i, f := range e.fields {
		out[i] = f.FieldDescriptor
		out[i].Constraints = f.Constraints.Clone()
	}
	return out
}

// Lookup returns the descriptor declared under name.
func (e *Entity[T]) Lookup(name string) (FieldDescriptor, bool) {
	idx, ok := e.index[name]
	if !ok {
		return FieldDescriptor{}, false
	}
	return e.fields[idx].FieldDescriptor, true
}

// Decorate lets d adjust copies of the declared descriptors. The copies are
// committed only when d succeeds, and field names and semantic types are
// always restored; decorators may only change prompt text and constraints.
func (e *Entity[T]) Decorate(d Decorator) error {
	if d == nil {
		return nil
	}
	drafts := make([]FieldDescriptor, len(e.fields))
	ptrs := make([]*FieldDescriptor, len(e.fields))
	for i := range e.fields {
		drafts[i] = e.fields[i].FieldDescriptor
		drafts[i].Constraints = drafts[i].Constraints.Clone()
		ptrs[i] = &drafts[i]
	}
	if err := d.Decorate(e.name, ptrs); err != nil {
		return err
	}
	for i := range e.fields {
		e.fields[i].PromptMessage = drafts[i].PromptMessage
		e.fields[i].Constraints = drafts[i].Constraints
	}
	return nil
}

func mismatch(name string, want constraint.SemanticType, value any) error {
	return fmt.Errorf("%w: field %q expects %s, got %T", ErrTypeMismatch, name, want, value)
}
