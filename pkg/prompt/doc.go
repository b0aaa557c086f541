// Package prompt populates declared entities from a line-based input stream.
//
// A Prompter validates an entity declaration once (Configure) and then, for
// every Prompt call, walks the declared fields in order. Each field runs its
// own loop: show the prompt, read a line, parse and validate it, and either
// assign the accepted value or report the constraint message followed by the
// session trailer and ask again. Input errors never leave the field; only
// configuration, internal, end-of-input and cancellation errors end a session.
package prompt
