// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package minijson

import (
	"fmt"
	"unicode/utf8"
)

// LexError is the concrete type of errors reported by the Lexer when the
// input does not begin a recognized token, a string literal runs off the end
// of the input, or a numeric literal cannot be converted.
type LexError struct {
	Pos   int     // byte offset of the offending character
	Loc   LineCol // line and column of the offending character
	Char  rune    // the offending character, if AtEnd is false
	AtEnd bool    // the input ended where a character was required

	// Err, if non-nil, is the underlying cause, for example the error from
	// converting a numeric literal.
	Err error
}

// Error satisfies the error interface.
func (e *LexError) Error() string {
	var msg string
	switch {
	case e.Err != nil:
		msg = e.Err.Error()
	case e.AtEnd:
		msg = "unexpected end of input"
	default:
		msg = fmt.Sprintf("unrecognized char %q", e.Char)
	}
	return fmt.Sprintf("at %s: %s (offset %d)", e.Loc, msg, e.Pos)
}

// Unwrap supports error wrapping.
func (e *LexError) Unwrap() error { return e.Err }

// KeywordError is the concrete type of errors reported by the Lexer when a
// run of letters is not one of the reserved words true, false, or null.
//
// A KeywordError is a lexical error: errors.As will find a *LexError in its
// chain describing the start of the word.
type KeywordError struct {
	Word string  // the unrecognized word
	Pos  int     // byte offset of the start of the word
	Loc  LineCol // line and column of the start of the word
}

// Error satisfies the error interface.
func (e *KeywordError) Error() string {
	return fmt.Sprintf("at %s: reserved keyword %q does not exist (offset %d)", e.Loc, e.Word, e.Pos)
}

// Unwrap supports error wrapping.
func (e *KeywordError) Unwrap() error {
	ch, _ := utf8.DecodeRuneInString(e.Word)
	return &LexError{Pos: e.Pos, Loc: e.Loc, Char: ch}
}

// ParseError is the concrete type of errors reported by the Parser when the
// current token does not fit the grammar.
type ParseError struct {
	Found Token   // the token found
	Want  string  // a description of what was expected
	Loc   LineCol // the start of the token found
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("at %s: found %v when expecting %s", e.Loc, e.Found, e.Want)
}
