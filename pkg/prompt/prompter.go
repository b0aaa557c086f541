package prompt

import (
	"context"
	"errors"
	"os"

	"go.uber.org/zap"

	"github.com/goliatone/go-prompter/pkg/console"
	"github.com/goliatone/go-prompter/pkg/model"
	"github.com/goliatone/go-prompter/pkg/validation"
)

var (
	stdin  = os.Stdin
	stdout = os.Stdout
)

// Prompter collects a fully populated T from a line-based input stream.
type Prompter[T any] struct {
	session
	entity *model.Entity[T]
	fields []model.Field[T]
}

// New constructs a Prompter reading stdin and writing stdout, with the
// default message trailer.
func New[T any](options ...Option) *Prompter[T] {
	p := &Prompter[T]{
		session: session{
			trailer: DefaultMessageTrailer,
			logger:  zap.NewNop(),
		},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&p.session)
	}
	if p.reader == nil {
		p.reader = console.NewScanner(stdin)
	}
	if p.sink == nil {
		p.sink = console.NewWriterSink(stdout)
	}
	return p
}

// SetMessageTrailer changes the text appended after every error message.
func (p *Prompter[T]) SetMessageTrailer(trailer string) {
	p.trailer = trailer
}

// DisableDefaultMessageTrailer drops the trailer entirely.
func (p *Prompter[T]) DisableDefaultMessageTrailer() {
	p.trailer = ""
}

// Configure validates every declared field of entity and, on success, makes
// it the entity populated by Prompt. On failure the previous configuration
// is kept and the configuration error returned.
func (p *Prompter[T]) Configure(entity *model.Entity[T]) error {
	if entity == nil {
		return &InternalError{Op: "configure", Err: errors.New("entity is nil")}
	}
	if err := validation.ValidateFields(entity.Descriptors()); err != nil {
		p.logger.Warn("entity rejected", zap.String("entity", entity.Name()), zap.Error(err))
		return err
	}
	p.entity = entity
	p.fields = entity.Fields()
	p.logger.Debug("entity configured", zap.String("entity", entity.Name()), zap.Int("fields", len(p.fields)))
	return nil
}

// Prompt creates a new instance and populates every declared field in order.
// The instance is returned only once every field holds an accepted value.
func (p *Prompter[T]) Prompt(ctx context.Context) (*T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if p.entity == nil {
		return nil, &InternalError{Op: "prompt", Err: ErrEntityNotConfigured}
	}

	target, err := p.entity.New()
	if err != nil {
		return nil, &InternalError{Op: "construct", Err: err}
	}
	if err := p.PopulateInto(ctx, target); err != nil {
		return nil, err
	}
	return target, nil
}

// PopulateInto fills an existing instance field by field. Fields accepted
// before a failure keep their new values; callers that need all-or-nothing
// semantics should use Prompt.
func (p *Prompter[T]) PopulateInto(ctx context.Context, target *T) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if p.entity == nil {
		return &InternalError{Op: "prompt", Err: ErrEntityNotConfigured}
	}
	if target == nil {
		return &InternalError{Op: "prompt", Err: errors.New("target is nil")}
	}

	for _, field := range p.fields {
		if err := p.populateField(ctx, field, target); err != nil {
			return err
		}
	}

	p.logger.Debug("entity populated", zap.String("entity", p.entity.Name()))
	return nil
}
