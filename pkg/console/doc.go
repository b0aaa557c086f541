// Package console adapts line-oriented input streams and text output sinks
// for interactive prompting sessions.
//
// A LineReader yields one raw line per call and io.EOF once the stream is
// exhausted. Readers that render their own prompt (such as SurveyReader)
// additionally implement PromptingReader so the session hands them the prompt
// text instead of writing it to the Sink.
package console
