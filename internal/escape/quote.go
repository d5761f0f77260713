// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape renders string payloads for inclusion in diagnostics.
//
// The input grammar has no escape sequences, so a string payload may hold
// raw control characters and newlines. Quote makes such text legible in an
// error message without changing which characters it denotes.
package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  0, // sentinel
}

const hexDigit = "0123456789abcdef"

// Quote returns src enclosed in double quotation marks, with backslashes,
// quotation marks, control characters and invalid UTF-8 escaped.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len()+2)
	buf = append(buf, '"')
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		switch {
		case r == utf8.RuneError && n <= 1:
			// Report the offending byte rather than the replacement rune.
			buf = appendHex(buf, src.At(0))
			n = 1
		case r < ' ':
			if b := controlEsc[r]; b != 0 {
				buf = append(buf, '\\', b)
			} else {
				buf = appendHex(buf, byte(r))
			}
		case r == '\\' || r == '"':
			buf = append(buf, '\\', byte(r))
		case r == '\u2028' || r == '\u2029':
			buf = append(buf, `\u202`...)
			buf = append(buf, hexDigit[r&15])
		default:
			buf = utf8.AppendRune(buf, r)
		}
		src = src.SliceFrom(n)
	}
	return append(buf, '"')
}

func appendHex(buf []byte, b byte) []byte {
	return append(buf, '\\', 'x', hexDigit[b>>4], hexDigit[b&15])
}
