// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"encoding/json"
	"testing"

	"github.com/creachadair/minijson/ast"
	"github.com/google/go-cmp/cmp"
	"github.com/tailscale/hujson"
)

// Inputs in the intersection of this grammar and standard JSON should decode
// to the same structure as a standard decoder produces, up to the numeric
// representation.
func TestReference(t *testing.T) {
	tests := []string{
		`{}`,
		`[]`,
		`"omg_kittens"`,
		`-314`,
		`-3.14`,
		`[true, false, null, "lol", {"key": [{}, []]}]`,
		`{"lol": {"omg": {"so": {"deep": []}}}}`,
		`{"a": 1, "b": 2, "a": 3}`,
		`{
  "name": "minijson",
  "tags": ["lexer", "parser"],
  "size": {"lines": 400, "ratio": 0.55},
  "done": false,
  "owner": null
}`,
	}
	for _, input := range tests {
		got, err := ast.Parse(input)
		if err != nil {
			t.Errorf("Parse(%#q): unexpected error: %v", input, err)
			continue
		}

		std, err := hujson.Standardize([]byte(input))
		if err != nil {
			t.Fatalf("Standardize(%#q): %v", input, err)
		}
		var want any
		if err := json.Unmarshal(std, &want); err != nil {
			t.Fatalf("Unmarshal(%#q): %v", input, err)
		}

		if diff := cmp.Diff(normalize(want), normalize(got.Interface())); diff != "" {
			t.Errorf("Input: %#q\nResult: (-want, +got)\n%s", input, diff)
		}
	}
}

func TestReference_rejects(t *testing.T) {
	// These are valid for the reference decoder, which accepts the JWCC
	// extensions, but are outside this grammar.
	tests := []string{
		`[1, 2,]`,
		`{"a": 1,}`,
		`[1 /* two */, 3]`,
		`{"a": 1e5}`,
		`{"a": "b\"c"}`,
	}
	for _, input := range tests {
		if _, err := hujson.Parse([]byte(input)); err != nil {
			t.Fatalf("hujson.Parse(%#q): %v", input, err)
		}
		if v, err := ast.Parse(input); err == nil {
			t.Errorf("Parse(%#q): got %v, want error", input, v)
		}
	}
}

// normalize converts integers to float64 and object keys to strings, so that
// decoded values can be compared with the output of encoding/json.
func normalize(v any) any {
	switch t := v.(type) {
	case int64:
		return float64(t)
	case []any:
		out := make([]any, len(t))
		for i, elt := range t {
			out[i] = normalize(elt)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, elt := range t {
			out[k.(string)] = normalize(elt)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, elt := range t {
			out[k] = normalize(elt)
		}
		return out
	}
	return v
}
