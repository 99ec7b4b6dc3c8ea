// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package strata

import (
	"context"
	"strings"

	"github.com/z5labs/strata/enum"
	"github.com/z5labs/strata/env"
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindBool
	kindInt
	kindUint
	kindFloat
	kindEnum
)

// Field describes how one value of a configuration record is resolved
// from an environment variable. Construct fields with String, Bool, Int,
// Uint, Float or EnumField.
type Field struct {
	name       string
	variable   string
	kind       fieldKind
	defaultVal string
	hasDefault bool

	enumFallback bool
	resolveEnum  func(context.Context, env.Store) (any, error)
}

// FieldOption configures a Field.
type FieldOption func(*Field)

// Var overrides the environment variable the field is resolved from.
// Without it, the field's name uppercased is used.
func Var(name string) FieldOption {
	return func(f *Field) {
		f.variable = name
	}
}

// Default declares a literal default for the field, used when its
// variable is absent or, for numeric fields, unparseable. A declared
// Default is never consulted for bool fields: those resolve to false
// on absence or parse failure.
func Default(literal string) FieldOption {
	return func(f *Field) {
		f.defaultVal = literal
		f.hasDefault = true
	}
}

// String declares a string field. A string field with no environment
// value and no Default is a fatal configuration error.
func String(name string, opts ...FieldOption) Field {
	return newField(name, kindString, opts)
}

// Bool declares a bool field. Absence and parse failure both resolve
// to false, never to an error.
func Bool(name string, opts ...FieldOption) Field {
	return newField(name, kindBool, opts)
}

// Int declares an integer field. The resolved value is an int64; any
// integer width in the destination struct is narrowed on Unmarshal.
func Int(name string, opts ...FieldOption) Field {
	return newField(name, kindInt, opts)
}

// Uint declares an unsigned integer field. The resolved value is a uint64.
func Uint(name string, opts ...FieldOption) Field {
	return newField(name, kindUint, opts)
}

// Float declares a floating point field. The resolved value is a float64.
func Float(name string, opts ...FieldOption) Field {
	return newField(name, kindFloat, opts)
}

func newField(name string, kind fieldKind, opts []FieldOption) Field {
	f := Field{
		name: name,
		kind: kind,
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// EnumField declares a field resolved through the given enum. The enum
// owns its variable name and fallback policy, so EnumField takes no
// field options: a no-match degrades to the enum's fallback value
// instead of failing the record. Consequently the enum must declare a
// default or marker variant; an enum whose sole policy is PanicOnNoMatch
// is rejected when the schema is validated.
func EnumField[T any](name string, e *enum.Enum[T]) Field {
	f := Field{
		name: name,
		kind: kindEnum,
	}
	if e == nil {
		return f
	}

	_, hasFallback := e.Fallback()
	f.variable = e.Variable()
	f.enumFallback = hasFallback
	f.resolveEnum = func(ctx context.Context, store env.Store) (any, error) {
		v, err := e.Resolve(ctx, store)
		if err == nil {
			return v, nil
		}
		d, ok := e.Fallback()
		if !ok {
			return nil, err
		}
		return d, nil
	}
	return f
}

// Name returns the field's name, which is also its key in the
// populated Record.
func (f Field) Name() string {
	return f.name
}

// Variable returns the environment variable the field resolves from.
func (f Field) Variable() string {
	if f.variable != "" {
		return f.variable
	}
	return strings.ToUpper(f.name)
}

func (f Field) resolve(ctx context.Context, store env.Store) (any, error) {
	if f.kind == kindEnum {
		return f.resolveEnum(ctx, store)
	}

	raw, ok := store.Lookup(f.Variable())
	switch f.kind {
	case kindBool:
		return coerceBool(raw, ok), nil
	case kindInt:
		return coerceNumber(f, raw, ok, parseInt)
	case kindUint:
		return coerceNumber(f, raw, ok, parseUint)
	case kindFloat:
		return coerceNumber(f, raw, ok, parseFloat)
	default:
		return coerceString(f, raw, ok)
	}
}
