// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package minijson

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"math/big"
	"unicode"

	"go4.org/mem"
)

// A Lexer reads lexical tokens from an in-memory source text. Each call to
// Next advances the lexer past the next token. The cursor only moves
// forward; to scan the same text again, construct a new Lexer.
//
// A Lexer is not safe for concurrent use.
type Lexer struct {
	src mem.RO

	pos, end int // start and end offsets of current token; end is the cursor

	// Apparent line and column offsets (0-based)
	pline, pcol int
	eline, ecol int
}

// NewLexer constructs a new lexer that consumes the given source text.
// It reports an error of concrete type *LexError if text is empty.
func NewLexer(text string) (*Lexer, error) {
	if text == "" {
		return nil, &LexError{Loc: LineCol{Line: 1}, AtEnd: true}
	}
	return &Lexer{src: mem.S(text)}, nil
}

// Next returns the next token of the input and advances past it. At the end
// of the input Next returns a token of kind EndOfInput, and continues to do
// so on subsequent calls.
//
// Next reports an error of concrete type *LexError or *KeywordError if the
// input does not contain a valid token.
func (lx *Lexer) Next() (Token, error) {
	lx.readWhile(isSpace)
	lx.pos, lx.pline, lx.pcol = lx.end, lx.eline, lx.ecol

	ch, n := lx.peek()
	if n == 0 {
		return endOfInput, nil
	}

	// Handle punctuation.
	if t, ok := selfDelim(ch); ok {
		lx.advance(ch, n)
		return t, nil
	}

	switch {
	case ch == '"':
		return lx.scanString(ch, n)
	case unicode.IsLetter(ch):
		return lx.scanKeyword()
	case isNumStart(ch):
		return lx.scanNumber(ch)
	}
	return Token{}, &LexError{Pos: lx.end, Loc: lx.cursor(), Char: ch}
}

// Tokens returns an iterator over the remaining tokens of the input, up to
// but not including the end of input. If the lexer reports an error, the
// iterator yields the error and stops.
func (lx *Lexer) Tokens() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := lx.Next()
			if err != nil {
				yield(Token{}, err)
				return
			} else if tok.Kind == EndOfInput {
				return
			} else if !yield(tok, nil) {
				return
			}
		}
	}
}

// AllTokens consumes the remaining input and returns all its tokens, not
// including the final EndOfInput. In case of error, no tokens are returned.
func (lx *Lexer) AllTokens() ([]Token, error) {
	var out []Token
	for tok, err := range lx.Tokens() {
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
	}
	return out, nil
}

// Span returns the location span of the current token.
func (lx *Lexer) Span() Span { return Span{Pos: lx.pos, End: lx.end} }

// Location returns the complete location of the current token.
func (lx *Lexer) Location() Location {
	return Location{
		Span:  lx.Span(),
		First: lx.first(),
		Last:  lx.cursor(),
	}
}

var errUnterminated = errors.New("unterminated string")

// scanString consumes a string literal. Everything up to the next quotation
// mark is taken verbatim, since the grammar has no escapes.
func (lx *Lexer) scanString(open rune, n int) (Token, error) {
	lx.advance(open, n)
	start := lx.end
	for {
		ch, n := lx.peek()
		if n == 0 {
			return Token{}, &LexError{Pos: lx.end, Loc: lx.cursor(), AtEnd: true, Err: errUnterminated}
		} else if ch == open {
			text := lx.src.Slice(start, lx.end).StringCopy()
			lx.advance(ch, n)
			return Token{Kind: String, Payload: text}, nil
		}
		lx.advance(ch, n)
	}
}

// scanKeyword consumes a run of letters and resolves it against the reserved
// words.
func (lx *Lexer) scanKeyword() (Token, error) {
	lx.readWhile(unicode.IsLetter)
	word := lx.text().StringCopy()
	if tok, ok := keywords[word]; ok {
		return tok, nil
	}
	return Token{}, &KeywordError{Word: word, Pos: lx.pos, Loc: lx.first()}
}

// scanNumber consumes a numeric literal: an optional sign, zero or more
// digits, and optionally a decimal point followed by zero or more digits.
// There is no exponent. The literal is only checked by conversion.
//
// An integer outside the range of int64 has a *big.Int payload, and a
// decimal literal too large for float64 converts to an infinity.
func (lx *Lexer) scanNumber(start rune) (Token, error) {
	if start == '-' || start == '+' {
		lx.advance(start, 1)
	}
	lx.readWhile(isDigit)

	var isFloat bool
	if ch, n := lx.peek(); ch == '.' {
		lx.advance(ch, n)
		lx.readWhile(isDigit)
		isFloat = true
	}

	text := lx.text()
	if isFloat {
		v, err := mem.ParseFloat(text, 64)
		if err != nil {
			if !hasDigit(text) {
				return Token{}, lx.badNumber(start, err)
			}
			v = math.Inf(1) // out of range
			if start == '-' {
				v = math.Inf(-1)
			}
		}
		return Token{Kind: Number, Payload: v}, nil
	}
	v, err := mem.ParseInt(text, 10, 64)
	if err == nil {
		return Token{Kind: Number, Payload: v}, nil
	}

	// Integers outside the range of int64 are kept exactly.
	if z, ok := new(big.Int).SetString(text.StringCopy(), 10); ok {
		return Token{Kind: Number, Payload: z}, nil
	}
	return Token{}, lx.badNumber(start, err)
}

func (lx *Lexer) badNumber(start rune, err error) error {
	return &LexError{
		Pos:  lx.pos,
		Loc:  lx.first(),
		Char: start,
		Err:  fmt.Errorf("invalid number %q: %w", lx.text().StringCopy(), err),
	}
}

// peek returns the rune at the cursor and its width in bytes, or 0, 0 if the
// cursor is at the end of the input.
func (lx *Lexer) peek() (rune, int) {
	if lx.end >= lx.src.Len() {
		return 0, 0
	}
	return mem.DecodeRune(lx.src.SliceFrom(lx.end))
}

// advance moves the cursor past ch, whose encoding is n bytes.
func (lx *Lexer) advance(ch rune, n int) {
	lx.end += n
	if ch == '\n' {
		lx.eline++
		lx.ecol = 0
	} else {
		lx.ecol += n
	}
}

// readWhile advances the cursor over runes matching f.
func (lx *Lexer) readWhile(f func(rune) bool) {
	for {
		ch, n := lx.peek()
		if n == 0 || !f(ch) {
			return
		}
		lx.advance(ch, n)
	}
}

// text returns a view of the source text of the current token.
func (lx *Lexer) text() mem.RO { return lx.src.Slice(lx.pos, lx.end) }

func (lx *Lexer) first() LineCol  { return LineCol{Line: lx.pline + 1, Column: lx.pcol} }
func (lx *Lexer) cursor() LineCol { return LineCol{Line: lx.eline + 1, Column: lx.ecol} }

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch rune) bool { return ch == '-' || ch == '+' || isDigit(ch) }

// isDigit reports whether ch is an ASCII digit. Other Unicode decimal digits
// do not begin or continue a number.
func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }

func hasDigit(m mem.RO) bool {
	for i := range m.Len() {
		if isDigit(rune(m.At(i))) {
			return true
		}
	}
	return false
}
