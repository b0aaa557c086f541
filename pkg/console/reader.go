package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
)

// LineReader abstracts the blocking line source so sessions can be driven by
// stdin, a terminal library, or scripted input in tests.
type LineReader interface {
	// ReadLine returns the next line without its terminator, or io.EOF when
	// the stream is exhausted.
	ReadLine(ctx context.Context) (string, error)
}

// PromptingReader is a LineReader that displays the prompt itself.
type PromptingReader interface {
	LineReader
	ReadPrompt(ctx context.Context, message string) (string, error)
}

// ChoosingReader is a PromptingReader that can offer a fixed list of
// answers. The chosen entry is returned verbatim.
type ChoosingReader interface {
	PromptingReader
	ReadChoice(ctx context.Context, message string, choices []string) (string, error)
}

// Scanner reads newline-delimited input from an io.Reader. Lines have no
// length limit.
type Scanner struct {
	reader *bufio.Reader
}

// NewScanner wraps r. A nil reader yields ErrNilReader on every read.
func NewScanner(r io.Reader) *Scanner {
	if r == nil {
		return &Scanner{}
	}
	return &Scanner{reader: bufio.NewReader(r)}
}

// ReadLine implements LineReader. Windows line endings are normalised; a
// final line without a terminator is still returned.
func (s *Scanner) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.reader == nil {
		return "", ErrNilReader
	}
	line, err := s.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", io.EOF
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
