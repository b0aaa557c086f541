// Package testsupport provides scripted console collaborators so prompting
// sessions can be exercised without a terminal.
package testsupport

import (
	"context"
	"io"
	"strings"
)

// ScriptedReader replays a fixed list of lines and then reports io.EOF.
type ScriptedReader struct {
	lines []string
	pos   int
}

// NewScriptedReader returns a reader replaying lines in order.
func NewScriptedReader(lines ...string) *ScriptedReader {
	return &ScriptedReader{lines: append([]string(nil), lines...)}
}

// ReadLine implements console.LineReader.
func (r *ScriptedReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if r.pos >= len(r.lines) {
		return "", io.EOF
	}
	line := r.lines[r.pos]
	r.pos++
	return line, nil
}

// Consumed reports how many lines were read.
func (r *ScriptedReader) Consumed() int {
	return r.pos
}

// Entry is one message captured by RecordingSink.
type Entry struct {
	Kind    string
	Message string
}

// Kinds recorded by RecordingSink.
const (
	KindPrompt = "prompt"
	KindError  = "error"
	KindInfo   = "info"
)

// RecordingSink captures every message written by a session.
type RecordingSink struct {
	entries []Entry
}

// Prompt implements console.Sink.
func (s *RecordingSink) Prompt(msg string) error { return s.record(KindPrompt, msg) }

// Error implements console.Sink.
func (s *RecordingSink) Error(msg string) error { return s.record(KindError, msg) }

// Info implements console.Sink.
func (s *RecordingSink) Info(msg string) error { return s.record(KindInfo, msg) }

func (s *RecordingSink) record(kind, msg string) error {
	s.entries = append(s.entries, Entry{Kind: kind, Message: msg})
	return nil
}

// Entries returns a copy of the captured messages.
func (s *RecordingSink) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// Messages returns the captured messages of one kind.
func (s *RecordingSink) Messages(kind string) []string {
	var out []string
	for _, e := range s.Entries() {
		if e.Kind == kind {
			out = append(out, e.Message)
		}
	}
	return out
}

// Transcript renders the captured messages one per line.
func (s *RecordingSink) Transcript() string {
	var b strings.Builder
	for _, e := range s.Entries() {
		b.WriteString(e.Message)
		b.WriteByte('\n')
	}
	return b.String()
}
