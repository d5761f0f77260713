package minijson_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/creachadair/minijson"
)

// benchInput returns a document of n records that is valid both as standard
// JSON and in the restricted grammar.
func benchInput(n int) string {
	var sb strings.Builder
	sb.WriteString(`{"episodes": [`)
	for i := range n {
		if i > 0 {
			sb.WriteString(",\n")
		}
		fmt.Fprintf(&sb, `{"episode": %d, "title": "Episode number %d", "rating": %d.%d, `+
			`"hasDetail": %v, "notes": null, "tags": ["a", "b", "c"]}`, i, i, i%10, i%7, i%2 == 0)
	}
	sb.WriteString("]}")
	return sb.String()
}

func BenchmarkLexer(b *testing.B) {
	input := benchInput(2000)
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Decoder", func(b *testing.B) {
		for b.Loop() {
			dec := json.NewDecoder(bytes.NewReader([]byte(input)))
			for {
				_, err := dec.Token()
				if err == io.EOF {
					break
				} else if err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}
			}
		}
	})

	b.Run("Lexer", func(b *testing.B) {
		for b.Loop() {
			lx, err := minijson.NewLexer(input)
			if err != nil {
				b.Fatalf("NewLexer: %v", err)
			}
			for {
				tok, err := lx.Next()
				if err != nil {
					b.Fatalf("Unexpected error: %v", err)
				} else if tok.Kind == minijson.EndOfInput {
					break
				}
			}
		}
	})
}
