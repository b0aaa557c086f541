package prompter

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-prompter/pkg/declfile"
	"github.com/goliatone/go-prompter/pkg/model"
	"github.com/goliatone/go-prompter/pkg/prompt"
	"github.com/goliatone/go-prompter/pkg/validation"
)

// Option aliases prompt.Option so callers can configure sessions from the
// top-level module.
type Option = prompt.Option

// ValidationResult aliases the per-field verdicts returned by Validate.
type ValidationResult = validation.SchemaValidationResult

// New exposes the prompter constructor from the top-level module.
func New[T any](options ...Option) *prompt.Prompter[T] {
	return prompt.New[T](options...)
}

// NewEntity starts an entity declaration for T.
func NewEntity[T any](name string) *model.Entity[T] {
	return model.NewEntity[T](name)
}

// Validate reports every invalid field declaration of entity.
func Validate[T any](entity *model.Entity[T]) ValidationResult {
	if entity == nil {
		return ValidationResult{Valid: true}
	}
	return validation.ValidateAll(entity.Descriptors())
}

// PromptEntity configures a session for entity and prompts for every field.
// It is the simplest entry point for callers that just want a populated T.
func PromptEntity[T any](ctx context.Context, entity *model.Entity[T], options ...Option) (*T, error) {
	p := prompt.New[T](options...)
	if err := p.Configure(entity); err != nil {
		return nil, err
	}
	return p.Prompt(ctx)
}

// PromptWithDeclarations overlays the declaration files found in fsys onto
// entity before prompting.
func PromptWithDeclarations[T any](ctx context.Context, entity *model.Entity[T], fsys fs.FS, options ...Option) (*T, error) {
	store, err := declfile.LoadFS(fsys)
	if err != nil {
		return nil, err
	}
	if err := declfile.Apply(store, entity); err != nil {
		return nil, err
	}
	return PromptEntity(ctx, entity, options...)
}
