// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import "fmt"

// Path traverses a sequential path through the structure of a value starting
// at v. If the path is valid, the element reached is returned. In case of
// error, the input v is returned along with the error.
//
// A string path element must select a String key of an object.
//
// An integer path element applied to an array is an offset into it, where
// negative offsets count backward from the end (-1 is last, -2 second last,
// etc.). Applied to an object, it must select an Int key.
//
// If a path element is a function, the function is executed and its result
// becomes the next value in the sequence. The function must have signature
//
//	func(ast.Value) (ast.Value, error)
//
// If the function fails, the traversal reports its error.
func Path(v Value, path ...any) (Value, error) {
	cur := v
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			obj, ok := cur.(Object)
			if !ok {
				return v, fmt.Errorf("cannot traverse %T with %q", cur, elt)
			}
			next, ok := obj[String(t)]
			if !ok {
				return v, fmt.Errorf("key %q not found", t)
			}
			cur = next
		case int:
			switch c := cur.(type) {
			case Array:
				i, ok := fixArrayBound(len(c), t)
				if !ok {
					return v, fmt.Errorf("array index %d out of bounds (n=%d)", t, len(c))
				}
				cur = c[i]
			case Object:
				next, ok := c[Int(t)]
				if !ok {
					return v, fmt.Errorf("key %d not found", t)
				}
				cur = next
			default:
				return v, fmt.Errorf("cannot traverse %T with %v", cur, elt)
			}
		case func(Value) (Value, error):
			next, err := t(cur)
			if err != nil {
				return v, err
			}
			cur = next
		default:
			return v, fmt.Errorf("invalid path element %T", elt)
		}
	}
	return cur, nil
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
