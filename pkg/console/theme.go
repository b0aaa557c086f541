package console

import "github.com/fatih/color"

// Theme captures optional prefixes applied to each kind of message.
type Theme struct {
	PromptPrefix string
	InfoPrefix   string
	ErrorPrefix  string
}

// SinkOption configures a WriterSink.
type SinkOption func(*WriterSink)

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) SinkOption {
	return func(s *WriterSink) {
		s.theme = theme
	}
}

// WithColor toggles ANSI coloring of error lines regardless of whether the
// destination is a terminal.
func WithColor(enabled bool) SinkOption {
	return func(s *WriterSink) {
		if !enabled {
			s.errColor = nil
			return
		}
		c := color.New(color.FgRed)
		c.EnableColor()
		s.errColor = c
	}
}
