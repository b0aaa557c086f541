package prompt

import (
	"io"

	"github.com/AlecAivazis/survey/v2/terminal"
	"go.uber.org/zap"

	"github.com/goliatone/go-prompter/pkg/config"
	"github.com/goliatone/go-prompter/pkg/console"
)

// DefaultMessageTrailer is appended after every field-level error message.
const DefaultMessageTrailer = config.DefaultMessageTrailer

type session struct {
	reader  console.LineReader
	sink    console.Sink
	in      io.Reader
	out     io.Writer
	trailer string
	logger  *zap.Logger
}

// Option configures a Prompter.
type Option func(*session)

// WithLineReader overrides the input stream (stdin by default).
func WithLineReader(reader console.LineReader) Option {
	return func(s *session) {
		if reader != nil {
			s.reader = reader
		}
	}
}

// WithSink overrides where prompts and error messages are written.
func WithSink(sink console.Sink) Option {
	return func(s *session) {
		if sink != nil {
			s.sink = sink
		}
	}
}

// WithOutput writes prompts and error messages as plain lines to w.
func WithOutput(w io.Writer) Option {
	return func(s *session) {
		if w != nil {
			s.out = w
			s.sink = console.NewWriterSink(w)
		}
	}
}

// WithInput reads answers line by line from r.
func WithInput(r io.Reader) Option {
	return func(s *session) {
		if r != nil {
			s.in = r
			s.reader = console.NewScanner(r)
		}
	}
}

// WithMessageTrailer sets the text appended after every error message.
func WithMessageTrailer(trailer string) Option {
	return func(s *session) {
		s.trailer = trailer
	}
}

// DisableDefaultMessageTrailer drops the trailer entirely.
func DisableDefaultMessageTrailer() Option {
	return WithMessageTrailer("")
}

// WithLogger attaches a structured logger for session diagnostics. User-facing
// text is never routed through it.
func WithLogger(logger *zap.Logger) Option {
	return func(s *session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSettings applies loaded settings: the trailer, colored errors and the
// survey-backed terminal reader when Interactive is set. Streams given by
// earlier WithInput/WithOutput options are kept.
func WithSettings(settings config.Settings) Option {
	return func(s *session) {
		s.trailer = settings.Trailer()
		if settings.Color {
			s.sink = console.NewWriterSink(s.output(), console.WithColor(true))
		}
		if settings.Interactive {
			s.reader = console.NewSurveyReader(surveyStdio(s.in, s.output())...)
		}
	}
}

func (s *session) output() io.Writer {
	if s.out != nil {
		return s.out
	}
	return stdout
}

func surveyStdio(in io.Reader, out io.Writer) []console.SurveyOption {
	fin, okIn := in.(terminal.FileReader)
	fout, okOut := out.(terminal.FileWriter)
	if !okIn || !okOut {
		return nil
	}
	return []console.SurveyOption{console.WithStdio(fin, fout, fout)}
}
