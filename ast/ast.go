// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a tree of decoded values, and a recursive-descent
// parser that constructs trees from source text.
package ast

import (
	"fmt"
	"math/big"
)

// A Value is a node of a decoded value tree. The concrete type is one of
// Null, Bool, Int, BigInt, Float, String, Array, or Object.
type Value interface {
	// Interface returns the Go-native equivalent of the value: nil, bool,
	// int64, *big.Int, float64, string, []any, or map[any]any.
	Interface() any
}

// A Key is a Value that may be used as the key of an Object member.
// The concrete type is one of String, Int, BigInt, or Float.
type Key interface {
	Value
	isKey()
}

// Null represents the null constant.
type Null struct{}

// Interface satisfies the Value interface.
func (Null) Interface() any { return nil }

// A Bool is a Boolean constant, true or false.
type Bool bool

// Interface satisfies the Value interface.
func (b Bool) Interface() any { return bool(b) }

// An Int is an integer value.
type Int int64

// Interface satisfies the Value interface.
func (z Int) Interface() any { return int64(z) }

func (Int) isKey() {}

// A BigInt is an integer value outside the range of Int. It holds the
// decimal text of the value, so that equal values are equal keys.
type BigInt string

// Interface satisfies the Value interface.
func (z BigInt) Interface() any { return z.Big() }

// Big returns the value of z as a *big.Int, or nil if z is not a valid
// decimal integer.
func (z BigInt) Big() *big.Int {
	v, ok := new(big.Int).SetString(string(z), 10)
	if !ok {
		return nil
	}
	return v
}

func (BigInt) isKey() {}

// intKey returns z as an Int if it fits, otherwise as a BigInt.
func intKey(z *big.Int) Key {
	if z.IsInt64() {
		return Int(z.Int64())
	}
	return BigInt(z.String())
}

// A Float is a floating-point value.
type Float float64

// Interface satisfies the Value interface.
func (f Float) Interface() any { return float64(f) }

func (Float) isKey() {}

// A String is a string value.
type String string

// Interface satisfies the Value interface.
func (s String) Interface() any { return string(s) }

func (String) isKey() {}

// An Array is a sequence of values.
type Array []Value

// Interface satisfies the Value interface.
func (a Array) Interface() any {
	out := make([]any, len(a))
	for i, v := range a {
		out[i] = v.Interface()
	}
	return out
}

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// ArrayOf constructs an array of values converted by ToValue.
func ArrayOf[T any](vs ...T) Array {
	out := make(Array, len(vs))
	for i, v := range vs {
		out[i] = ToValue(v)
	}
	return out
}

// An Object is a collection of key-value members. Keys are distinct by type
// as well as value, so Int(1) and Float(1) are different keys. An Object has
// no ordering of its members.
type Object map[Key]Value

// Interface satisfies the Value interface.
func (o Object) Interface() any {
	out := make(map[any]any, len(o))
	for k, v := range o {
		out[k.Interface()] = v.Interface()
	}
	return out
}

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Find returns the value of the member of o with the given key, or nil if
// there is no such member. The key is converted by ToKey.
func (o Object) Find(key any) Value {
	k, err := ToKey(key)
	if err != nil {
		return nil
	}
	return o[k]
}

// ToKey converts a Go string, integer, *big.Int, or float to a Key. A Key is
// returned unchanged. A *big.Int that fits in an int64 becomes an Int.
func ToKey(v any) (Key, error) {
	switch t := v.(type) {
	case Key:
		return t, nil
	case string:
		return String(t), nil
	case int:
		return Int(t), nil
	case int64:
		return Int(t), nil
	case *big.Int:
		return intKey(t), nil
	case float64:
		return Float(t), nil
	}
	return nil, fmt.Errorf("invalid key type %T", v)
}

// ToValue converts a Go value to a Value. A Value is returned unchanged.
// Besides the types returned by Interface, it accepts the sized integer and
// float types, []Value, map[string]any, and map[Key]Value. A *big.Int that
// fits in an int64 becomes an Int. It panics if v cannot be converted.
func ToValue(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case nil:
		return Null{}
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Int(t)
	case int32:
		return Int(t)
	case int64:
		return Int(t)
	case *big.Int:
		return intKey(t)
	case float32:
		return Float(t)
	case float64:
		return Float(t)
	case []Value:
		return Array(t)
	case []any:
		return ArrayOf(t...)
	case map[Key]Value:
		return Object(t)
	case map[string]any:
		out := make(Object, len(t))
		for k, v := range t {
			out[String(k)] = ToValue(v)
		}
		return out
	case map[any]any:
		out := make(Object, len(t))
		for k, v := range t {
			key, err := ToKey(k)
			if err != nil {
				panic(fmt.Sprintf("ToValue: %v", err))
			}
			out[key] = ToValue(v)
		}
		return out
	}
	panic(fmt.Sprintf("ToValue: unsupported type %T", v))
}
