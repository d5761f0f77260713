// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"math/big"
	"slices"
	"strings"

	"github.com/creachadair/minijson"
)

// Parse parses a single value from text. It is shorthand for constructing a
// Lexer and a Parser and calling Parse. Trailing input after the value is an
// error.
func Parse(text string) (Value, error) {
	lx, err := minijson.NewLexer(text)
	if err != nil {
		return nil, err
	}
	return NewParser(lx).Parse()
}

// A Parser constructs a value tree from the tokens of a Lexer, with a
// single token of lookahead. The grammar is:
//
//	expr    := object | array | string | number | boolean | null
//	object  := '{' '}' | '{' pair (',' pair)* '}'
//	pair    := key ':' expr
//	key     := number | string
//	array   := '[' ']' | '[' expr (',' expr)* ']'
//
// A Parser is meant to be used once, and is not safe for concurrent use.
type Parser struct {
	lx      *minijson.Lexer
	cur     minijson.Token
	loc     minijson.LineCol // start of cur
	lenient bool             // allow input after the value
}

// NewParser constructs a Parser that consumes tokens from lx.
func NewParser(lx *minijson.Lexer) *Parser { return &Parser{lx: lx} }

// AllowTrailingInput configures the parser to ignore (true) or reject (false)
// any tokens that follow a complete value. By default it is rejected.
func (p *Parser) AllowTrailingInput(ok bool) { p.lenient = ok }

// Parse consumes a value from the lexer and returns its tree. A syntax error
// is reported as a *minijson.ParseError; lexical errors from the lexer are
// returned as-is. In case of error no partial tree is returned.
func (p *Parser) Parse() (_ Value, err error) {
	defer p.recoverParseError(&err)

	p.advance()
	v := p.expr()
	if !p.lenient {
		p.eat(minijson.EndOfInput)
	}
	return v, nil
}

// expr parses a value of any type.
func (p *Parser) expr() Value {
	switch p.cur.Kind {
	case minijson.ObjectOpen:
		return p.object()
	case minijson.ArrayOpen:
		return p.array()
	case minijson.String:
		return p.string()
	case minijson.Boolean:
		return p.boolean()
	case minijson.Null:
		return p.null()
	case minijson.Number:
		return p.number()
	}
	panic(p.syntaxError(valueStart...))
}

var valueStart = []minijson.Kind{
	minijson.ObjectOpen, minijson.ArrayOpen, minijson.String,
	minijson.Number, minijson.Boolean, minijson.Null,
}

// object parses key-value pairs between braces.
// Precondition: token == ObjectOpen.
func (p *Parser) object() Object {
	p.eat(minijson.ObjectOpen)
	obj := make(Object)
	if p.cur.Kind == minijson.ObjectClose {
		p.advance()
		return obj // empty object
	}
	for {
		key, val := p.pair()
		obj[key] = val

		// Check whether we have more pairs (",") or are done ("}").
		p.expect(minijson.Comma, minijson.ObjectClose)
		if p.cur.Kind == minijson.ObjectClose {
			p.advance()
			return obj
		}
		p.advance()
	}
}

// pair parses a single key: value pair.
func (p *Parser) pair() (Key, Value) {
	key := p.key()
	p.eat(minijson.Colon)
	return key, p.expr()
}

// key parses an object key, which must be a number or a string.
func (p *Parser) key() Key {
	switch p.cur.Kind {
	case minijson.Number:
		return p.number()
	case minijson.String:
		return p.string()
	}
	panic(p.syntaxError(minijson.Number, minijson.String))
}

// array parses comma-separated values between brackets.
// Precondition: token == ArrayOpen.
func (p *Parser) array() Array {
	p.eat(minijson.ArrayOpen)
	arr := Array{}
	if p.cur.Kind == minijson.ArrayClose {
		p.advance()
		return arr // empty array
	}
	for {
		arr = append(arr, p.expr())

		p.expect(minijson.Comma, minijson.ArrayClose)
		if p.cur.Kind == minijson.ArrayClose {
			p.advance()
			return arr
		}
		p.advance()
	}
}

func (p *Parser) string() String {
	tok := p.cur
	p.eat(minijson.String)
	return String(tok.Payload.(string))
}

// number returns an Int, BigInt, or Float, according to the payload.
func (p *Parser) number() Key {
	tok := p.cur
	p.eat(minijson.Number)
	switch v := tok.Payload.(type) {
	case float64:
		return Float(v)
	case *big.Int:
		return BigInt(v.String())
	}
	return Int(tok.Payload.(int64))
}

func (p *Parser) boolean() Bool {
	tok := p.cur
	p.eat(minijson.Boolean)
	return tok.Payload == "true"
}

func (p *Parser) null() Null {
	p.eat(minijson.Null)
	return Null{}
}

// eat checks that the current token has the given kind, and advances to the
// next token.
func (p *Parser) eat(kind minijson.Kind) {
	p.expect(kind)
	p.advance()
}

// expect checks that the current token is one of the given kinds, without
// advancing.
func (p *Parser) expect(kinds ...minijson.Kind) {
	if !slices.Contains(kinds, p.cur.Kind) {
		panic(p.syntaxError(kinds...))
	}
}

// advance fetches the next token from the lexer.
func (p *Parser) advance() {
	tok, err := p.lx.Next()
	if err != nil {
		panic(lexError{err})
	}
	p.cur = tok
	p.loc = p.lx.Location().First
}

func (p *Parser) syntaxError(want ...minijson.Kind) *minijson.ParseError {
	return &minijson.ParseError{Found: p.cur, Want: kindLabel(want), Loc: p.loc}
}

type lexError struct{ error }

func (p *Parser) recoverParseError(errp *error) {
	if perr := recover(); perr != nil {
		switch err := perr.(type) {
		case *minijson.ParseError:
			*errp = err
		case lexError:
			*errp = err.error
		default:
			panic(perr)
		}
	}
}

// kindLabel makes a human-readable summary string for the given kinds.
func kindLabel(kinds []minijson.Kind) string {
	if len(kinds) == 1 {
		return kinds[0].String()
	}
	last := len(kinds) - 1
	ss := make([]string, last)
	for i, k := range kinds[:last] {
		ss[i] = k.String()
	}
	return strings.Join(ss, ", ") + " or " + kinds[last].String()
}
