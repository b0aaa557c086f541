package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-prompter/pkg/console"
	"github.com/goliatone/go-prompter/pkg/constraint"
	"github.com/goliatone/go-prompter/pkg/model"
)

// populateField loops until field holds an accepted value in target.
func (p *Prompter[T]) populateField(ctx context.Context, field model.Field[T], target *T) error {
	for attempt := 1; ; attempt++ {
		input, err := p.read(ctx, field.FieldDescriptor)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("prompt: field %q: %w", field.Name, ErrEndOfInput)
			}
			return fmt.Errorf("prompt: field %q: %w", field.Name, err)
		}

		value, err := Accept(field.FieldDescriptor, input)
		if err != nil {
			var inputErr *constraint.InputError
			if !errors.As(err, &inputErr) {
				return &InternalError{Op: "parse", Field: field.Name, Err: err}
			}
			p.logger.Debug("input rejected",
				zap.String("field", field.Name),
				zap.Int("attempt", attempt),
				zap.String("reason", inputErr.Message),
			)
			if err := p.sink.Error(inputErr.Message + p.trailer); err != nil {
				return fmt.Errorf("prompt: report error: %w", err)
			}
			continue
		}

		if err := field.Assign(target, value); err != nil {
			return &InternalError{Op: "assign", Field: field.Name, Err: err}
		}
		p.logger.Debug("input accepted", zap.String("field", field.Name), zap.Int("attempt", attempt))
		return nil
	}
}

// read asks for one line of fd. Readers that render prompts themselves get
// the prompt text, and option fields are offered as a choice when the reader
// supports it.
func (p *Prompter[T]) read(ctx context.Context, fd model.FieldDescriptor) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	msg := fd.Prompt()
	if reader, ok := p.reader.(console.ChoosingReader); ok {
		if opt, ok := fd.Constraints.Option(); ok {
			return reader.ReadChoice(ctx, msg, opt.Choices())
		}
	}
	if reader, ok := p.reader.(console.PromptingReader); ok {
		return reader.ReadPrompt(ctx, msg)
	}
	if err := p.sink.Prompt(msg); err != nil {
		return "", fmt.Errorf("prompt: write prompt: %w", err)
	}
	return p.reader.ReadLine(ctx)
}

// Accept parses and validates one raw input line for fd, returning the value
// to assign. Rejections are *constraint.InputError values carrying the
// message to show; any other error means fd was never validated.
func Accept(fd model.FieldDescriptor, input string) (any, error) {
	if opt, ok := fd.Constraints.Option(); ok {
		idx, err := opt.Resolve(input)
		if err != nil {
			return nil, err
		}
		values, ok := fd.Constraints.Values()
		if !ok || idx < 0 || idx >= values.Len() {
			return nil, fmt.Errorf("option %s resolved to %d without a matching value", opt.Kind(), idx)
		}
		return values.At(idx), nil
	}

	switch fd.Type {
	case constraint.Text:
		return acceptText(fd.Constraints, input)
	case constraint.Integer:
		return acceptInteger(fd.Constraints, input)
	case constraint.Float:
		return acceptFloat(fd.Constraints, input)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, fd.Type)
	}
}

func acceptText(cs constraint.Set, input string) (any, error) {
	if values, ok := cs.Values(); ok && !values.Contains(input) {
		return nil, constraint.Invalid(values.Message())
	}
	return input, nil
}

func acceptInteger(cs constraint.Set, input string) (any, error) {
	n, err := strconv.Atoi(input)
	if err != nil {
		return nil, constraint.Invalid(MsgIntegerRequired)
	}
	if err := checkNumber(cs, n, float64(n)); err != nil {
		return nil, err
	}
	return n, nil
}

func acceptFloat(cs constraint.Set, input string) (any, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return nil, constraint.Invalid(MsgFloatRequired)
	}
	if err := checkNumber(cs, f, f); err != nil {
		return nil, err
	}
	return f, nil
}

// checkNumber applies the value list when present, else NotNegative.
func checkNumber(cs constraint.Set, value any, numeric float64) error {
	if values, ok := cs.Values(); ok {
		if !values.Contains(value) {
			return constraint.Invalid(values.Message())
		}
		return nil
	}
	if nn, ok := cs.NotNegative(); ok {
		return nn.Check(numeric)
	}
	return nil
}
