// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"errors"
	"testing"

	"github.com/creachadair/minijson/ast"
	"github.com/google/go-cmp/cmp"
)

const testInput = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": true,
    "q": false
  },
  404: "not found"
}`

func TestPath(t *testing.T) {
	v, err := ast.Parse(testInput)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	root := v.(ast.Object)

	tests := []struct {
		name string
		path []any
		want ast.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, v, true},
		{"WrongType", []any{11}, v, true},
		{"IntKey", []any{404}, ast.String("not found"), false},
		{"BadElement", []any{true}, v, true},

		{"ArrayPos", []any{"list", 1}, root[ast.String("list")].(ast.Array)[1], false},
		{"ArrayNeg", []any{"list", -1}, root[ast.String("list")].(ast.Array)[1], false},
		{"ArrayRange", []any{"o", 25}, v, true},
		{"ArrayKey", []any{"o", "hi"}, v, true},
		{"ObjPath", []any{"xyz", "d"}, ast.Bool(true), false},
		{"Deep", []any{"list", 0, "x"}, ast.Int(1), false},

		{"FuncArray", []any{"o", testPathFunc}, ast.Int(2), false},
		{"FuncObj", []any{"xyz", testPathFunc}, ast.Int(3), false},
		{"FuncWrong", []any{"xyz", "d", testPathFunc}, v, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ast.Path(v, tc.path...)
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
				} else {
					t.Fatalf("Path: unexpected error: %v", err)
				}
			} else if tc.fail {
				t.Fatalf("Path: got %v, want error", got)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Wrong result (-want, +got):\n%s", diff)
			}
		})
	}
}

func testPathFunc(v ast.Value) (ast.Value, error) {
	if ln, ok := v.(interface{ Len() int }); ok {
		return ast.Int(ln.Len()), nil
	}
	return nil, errors.New("not a thing with length")
}
