package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Sink receives the text a session shows to the user.
type Sink interface {
	Prompt(msg string) error
	Error(msg string) error
	Info(msg string) error
}

// WriterSink writes one line per message to an io.Writer.
type WriterSink struct {
	out      io.Writer
	theme    Theme
	errColor *color.Color
}

// NewWriterSink constructs a sink writing to w. A nil writer discards output.
func NewWriterSink(w io.Writer, options ...SinkOption) *WriterSink {
	if w == nil {
		w = io.Discard
	}
	s := &WriterSink{out: w}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Prompt writes a prompt line.
func (s *WriterSink) Prompt(msg string) error {
	_, err := fmt.Fprintln(s.out, s.theme.PromptPrefix+msg)
	return err
}

// Error writes an error line, colored when enabled.
func (s *WriterSink) Error(msg string) error {
	line := s.theme.ErrorPrefix + msg
	if s.errColor != nil {
		_, err := s.errColor.Fprintln(s.out, line)
		return err
	}
	_, err := fmt.Fprintln(s.out, line)
	return err
}

// Info writes an informational line.
func (s *WriterSink) Info(msg string) error {
	_, err := fmt.Fprintln(s.out, s.theme.InfoPrefix+msg)
	return err
}
