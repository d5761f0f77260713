// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package minijson implements a lexer for a restricted subset of JSON.
// The companion package ast parses the tokens into a value tree.
//
// # Lexing
//
// The Lexer type reads tokens from a complete, non-empty source string.
// Construct a lexer and call its Next method to fetch tokens one at a time:
//
//	lx, err := minijson.NewLexer(input)
//	if err != nil {
//	   log.Fatalf("NewLexer: %v", err)
//	}
//	for {
//	   tok, err := lx.Next()
//	   if err != nil {
//	      log.Fatalf("Next failed: %v", err)
//	   } else if tok.Kind == minijson.EndOfInput {
//	      break
//	   }
//	   log.Printf("Next token: %v", tok)
//	}
//
// Next returns an EndOfInput token when the input has been fully consumed,
// and keeps doing so if called again. To collect all the tokens at once, use
// AllTokens, or range over Tokens.
//
// # Grammar
//
// The input language is a subset of JSON with a few differences:
//
//   - Strings have no escape sequences. A string runs from a quotation mark
//     to the next quotation mark, and may contain any other character.
//   - Numbers are an optional sign ("+" or "-"), digits, and an optional
//     decimal point followed by digits. There is no exponent. A literal with
//     a decimal point is a float64, otherwise an int64, or a *big.Int if it
//     does not fit in an int64.
//   - Object keys may be numbers as well as strings.
//
// # Errors
//
// Lexical errors have concrete type *LexError, except that an unrecognized
// word (anything other than true, false, or null) is reported as a
// *KeywordError. Syntax errors from the parser have type *ParseError. All
// three carry the position of the offending input.
package minijson
