// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package minijson

import (
	"fmt"

	"github.com/creachadair/minijson/internal/escape"
	"go4.org/mem"
)

// Kind is the type of a lexical token in the grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid     Kind = iota // invalid token
	String                  // quoted string
	Number                  // number: integer or decimal fraction
	ArrayOpen               // left square bracket "["
	ArrayClose              // right square bracket "]"
	ObjectOpen              // left brace "{"
	ObjectClose             // right brace "}"
	Colon                   // colon ":"
	Comma                   // comma ","
	Boolean                 // constant: true or false
	Null                    // constant: null
	EndOfInput              // end of input
)

var kindStr = [...]string{
	Invalid:     "invalid token",
	String:      "string",
	Number:      "number",
	ArrayOpen:   `"["`,
	ArrayClose:  `"]"`,
	ObjectOpen:  `"{"`,
	ObjectClose: `"}"`,
	Colon:       `":"`,
	Comma:       `","`,
	Boolean:     "boolean",
	Null:        "null",
	EndOfInput:  "end of input",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Token is a single lexical unit of the input. The concrete type of the
// Payload depends on the Kind:
//
//	Kind        | Payload
//	----------- | -----------------------------------------
//	String      | string, the text between the quotes
//	Number      | int64 or float64 (if a "." was present), or *big.Int
//	            | for an integer outside the range of int64
//	Boolean     | string, "true" or "false"
//	Null        | string, "null"
//	EndOfInput  | string, "EOF"
//	punctuation | string, the punctuation character
//
// Tokens are comparable: two tokens are equal if they have the same kind and
// equal payloads. A *big.Int payload compares by pointer.
type Token struct {
	Kind    Kind
	Payload any
}

// String returns a human-readable rendering of t, for diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case String:
		s, _ := t.Payload.(string)
		return "string " + string(escape.Quote(mem.S(s)))
	case Number:
		return fmt.Sprintf("number %v", t.Payload)
	case Boolean:
		return fmt.Sprint(t.Payload)
	default:
		return t.Kind.String()
	}
}

var endOfInput = Token{Kind: EndOfInput, Payload: "EOF"}

// keywords maps each reserved word to the token it denotes.
var keywords = map[string]Token{
	"true":  {Kind: Boolean, Payload: "true"},
	"false": {Kind: Boolean, Payload: "false"},
	"null":  {Kind: Null, Payload: "null"},
}

var self = [...]Kind{ObjectOpen, ObjectClose, ArrayOpen, ArrayClose, Comma, Colon}

// selfDelim reports whether ch is a single-character structural token, and
// if so which.
func selfDelim(ch rune) (Token, bool) {
	const delims = "{}[],:"
	for i, d := range delims {
		if d == ch {
			return Token{Kind: self[i], Payload: delims[i : i+1]}, true
		}
	}
	return Token{}, false
}
