package console

import (
	"context"
	"errors"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// SurveyReader reads answers through survey's terminal prompts: free input
// for plain fields and a select list for option fields. It renders the
// prompt text itself.
type SurveyReader struct {
	opts []survey.AskOpt
}

// SurveyOption configures a SurveyReader.
type SurveyOption func(*SurveyReader)

// WithStdio routes the terminal prompt through custom streams.
func WithStdio(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) SurveyOption {
	return func(r *SurveyReader) {
		r.opts = append(r.opts, survey.WithStdio(in, out, errOut))
	}
}

// NewSurveyReader constructs a terminal-backed reader.
func NewSurveyReader(options ...SurveyOption) *SurveyReader {
	r := &SurveyReader{}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// ReadLine reads an answer without a prompt message.
func (r *SurveyReader) ReadLine(ctx context.Context) (string, error) {
	return r.ReadPrompt(ctx, "")
}

// ReadPrompt shows message and reads one answer.
func (r *SurveyReader) ReadPrompt(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: message,
	}
	if err := survey.AskOne(prompt, &out, r.opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

// ReadChoice shows message with a select list over choices and returns the
// chosen entry.
func (r *SurveyReader) ReadChoice(ctx context.Context, message string, choices []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(choices) == 0 {
		return r.ReadPrompt(ctx, message)
	}
	var out string
	prompt := &survey.Select{
		Message: message,
		Options: choices,
	}
	if err := survey.AskOne(prompt, &out, r.opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
