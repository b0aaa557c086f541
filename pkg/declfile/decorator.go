package declfile

import (
	"fmt"

	"github.com/goliatone/go-prompter/pkg/constraint"
	"github.com/goliatone/go-prompter/pkg/model"
)

// Decorator applies a Store's overlays to entity descriptors. It implements
// model.Decorator.
type Decorator struct {
	store *Store
}

// NewDecorator builds a Decorator backed by store. When store is nil or
// empty, the decorator becomes a no-op.
func NewDecorator(store *Store) *Decorator {
	return &Decorator{store: store}
}

// Apply overlays the declarations stored for entity onto it.
func Apply[T any](store *Store, entity *model.Entity[T]) error {
	if entity == nil {
		return nil
	}
	return entity.Decorate(NewDecorator(store))
}

// Decorate implements model.Decorator. Entities without declarations are
// left untouched; declarations for unknown fields or with a conflicting type
// are errors, reported before any descriptor is changed.
func (d *Decorator) Decorate(entity string, fields []*model.FieldDescriptor) error {
	if d == nil || d.store.Empty() {
		return nil
	}
	decl, ok := d.store.Entity(entity)
	if !ok {
		return nil
	}

	byName := make(map[string]*model.FieldDescriptor, len(fields))
	for _, fd := range fields {
		byName[fd.Name] = fd
	}

	names := decl.FieldNames()
	for _, name := range names {
		fd, ok := byName[name]
		if !ok {
			return fmt.Errorf("declfile: entity %q (file %s) declares unknown field %q", entity, decl.Source, name)
		}
		if err := checkType(fd, decl.Fields[name]); err != nil {
			return fmt.Errorf("declfile: entity %q (file %s): %w", entity, decl.Source, err)
		}
	}

	for _, name := range names {
		applyField(byName[name], decl.Fields[name])
	}
	return nil
}

func checkType(fd *model.FieldDescriptor, decl FieldDecl) error {
	if decl.Type != "" && constraint.SemanticType(decl.Type) != fd.Type {
		return fmt.Errorf("field %q declared as %s but entity declares %s", fd.Name, decl.Type, fd.Type)
	}
	return nil
}

func applyField(fd *model.FieldDescriptor, decl FieldDecl) {
	if decl.Prompt != "" {
		fd.PromptMessage = decl.Prompt
	}

	declared := decl.Constraints()
	if decl.Replace {
		fd.Constraints = declared
		return
	}
	fd.Constraints = merge(fd.Constraints, declared)
}

// merge replaces constraints of a declared kind in place and appends the rest.
func merge(existing, declared constraint.Set) constraint.Set {
	out := existing.Clone()
	for _, c := range declared {
		replaced := false
		for i, current := range out {
			if current != nil && current.Kind() == c.Kind() {
				out[i] = c
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, c)
		}
	}
	return out
}
