package prompter_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	prompter "github.com/goliatone/go-prompter"
	"github.com/goliatone/go-prompter/pkg/constraint"
	"github.com/goliatone/go-prompter/pkg/model"
	"github.com/goliatone/go-prompter/pkg/prompt"
	"github.com/goliatone/go-prompter/pkg/testsupport"
	"github.com/goliatone/go-prompter/pkg/validation"
)

type order struct {
	Size     string
	Quantity int
}

func orderEntity() *model.Entity[order] {
	return prompter.NewEntity[order]("order").
		String("size", func(o *order, v string) { o.Size = v },
			model.With(constraint.StringValues{Values: []string{"S", "M", "L"}, ErrMsg: "Unknown size."})).
		Int("quantity", func(o *order, v int) { o.Quantity = v },
			model.With(constraint.NotNegative{}))
}

func TestPromptEntity(t *testing.T) {
	sink := &testsupport.RecordingSink{}
	got, err := prompter.PromptEntity(context.Background(), orderEntity(),
		prompt.WithLineReader(testsupport.NewScriptedReader("XL", "M", "-1", "2")),
		prompt.WithSink(sink),
	)
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if diff := cmp.Diff(&order{Size: "M", Quantity: 2}, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	want := []string{"Unknown size. Please try again.", "The number cannot be negative. Please try again."}
	if diff := cmp.Diff(want, sink.Messages(testsupport.KindError)); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestPromptWithDeclarations(t *testing.T) {
	fsys := fstest.MapFS{
		"order.yaml": &fstest.MapFile{Data: []byte("entities:\n  order:\n    fields:\n      size:\n        prompt: \"Size (S/M/L):\"\n")},
	}
	sink := &testsupport.RecordingSink{}
	_, err := prompter.PromptWithDeclarations(context.Background(), orderEntity(), fsys,
		prompt.WithLineReader(testsupport.NewScriptedReader("S", "1")),
		prompt.WithSink(sink),
	)
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if got := sink.Messages(testsupport.KindPrompt)[0]; got != "Size (S/M/L):" {
		t.Fatalf("prompt overlay not applied: %q", got)
	}
}

func TestValidate(t *testing.T) {
	entity := prompter.NewEntity[order]("order").
		String("size", func(o *order, v string) { o.Size = v }, model.With(constraint.NotNegative{}))

	result := prompter.Validate(entity)
	if result.Valid || len(result.Issues) != 1 {
		t.Fatalf("expected one issue, got %#v", result)
	}

	_, err := prompter.PromptEntity(context.Background(), entity)
	if !errors.Is(err, validation.ErrConfig) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}
