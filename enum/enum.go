// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package enum

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/z5labs/strata/env"
	"github.com/z5labs/strata/internal/noop"
)

// Enum is an immutable resolver for one environment variable backed
// enumeration. Construct it with New or MustNew.
type Enum[T any] struct {
	log *slog.Logger

	variable string
	variants []Variant[T]
	rule     Case

	panicOnNoMatch bool

	hasDefault bool
	defaultVal T

	hasMarker bool
	markerVal T
}

// Option configures an Enum.
type Option func(*enumOptions)

type enumOptions struct {
	logHandler     slog.Handler
	rule           Case
	panicOnNoMatch bool
}

// MatchCase sets the enum wide case rule. Variants without their own
// Cased rule compare under it. Defaults to CaseExact.
func MatchCase(c Case) Option {
	return func(eo *enumOptions) {
		eo.rule = c
	}
}

// PanicOnNoMatch makes Get panic instead of falling back when no
// variant matches. Resolve is unaffected and keeps returning errors.
func PanicOnNoMatch() Option {
	return func(eo *enumOptions) {
		eo.panicOnNoMatch = true
	}
}

// LogHandler sets the slog.Handler used for resolution debug logs.
func LogHandler(h slog.Handler) Option {
	return func(eo *enumOptions) {
		eo.logHandler = h
	}
}

// MisconfiguredSchemaError occurs when an enum or schema declaration is
// statically invalid. It is always reported at construction time, never
// during resolution.
type MisconfiguredSchemaError struct {
	Reason string
}

// Error implements the error interface.
func (e MisconfiguredSchemaError) Error() string {
	return fmt.Sprintf("misconfigured schema: %s", e.Reason)
}

// New returns an Enum which resolves the named environment variable against
// the given variants, in declaration order. If variable is empty, the name
// of T uppercased is used instead.
//
// The variants must declare a fallback policy: a default variant, a marker
// variant or the PanicOnNoMatch option. New rejects an enum declaring none
// of the three with a MisconfiguredSchemaError.
func New[T any](variable string, variants []Variant[T], opts ...Option) (*Enum[T], error) {
	eo := &enumOptions{
		logHandler: noop.LogHandler{},
		rule:       CaseExact,
	}
	for _, opt := range opts {
		opt(eo)
	}

	if variable == "" {
		var zero T
		variable = strings.ToUpper(reflect.TypeOf(&zero).Elem().Name())
	}
	if variable == "" {
		return nil, MisconfiguredSchemaError{
			Reason: "enum has no variable name and its type name can not be derived",
		}
	}

	e := &Enum[T]{
		log:            slog.New(eo.logHandler),
		variable:       variable,
		variants:       variants,
		rule:           eo.rule,
		panicOnNoMatch: eo.panicOnNoMatch,
	}

	for _, v := range variants {
		if v.name == "" {
			return nil, MisconfiguredSchemaError{
				Reason: fmt.Sprintf("enum %q declares a variant with an empty name", variable),
			}
		}
		if v.def && !e.hasDefault {
			e.hasDefault = true
			e.defaultVal = v.value
		}
		if v.marker && !e.hasMarker {
			e.hasMarker = true
			e.markerVal = v.value
		}
	}

	if !e.hasDefault && !e.hasMarker && !e.panicOnNoMatch {
		return nil, MisconfiguredSchemaError{
			Reason: fmt.Sprintf("enum %q declares no default variant, no marker variant and does not panic on no match", variable),
		}
	}
	return e, nil
}

// MustNew is like New but panics on a MisconfiguredSchemaError. It is
// meant for enums declared statically at program start.
func MustNew[T any](variable string, variants []Variant[T], opts ...Option) *Enum[T] {
	e, err := New(variable, variants, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// Variable returns the environment variable name this enum resolves.
func (e *Enum[T]) Variable() string {
	return e.variable
}

// MissingVariableError occurs when the resolved environment variable
// is not set at all.
type MissingVariableError struct {
	Variable string
}

// Error implements the error interface.
func (e MissingVariableError) Error() string {
	return fmt.Sprintf("environment variable %q is not set", e.Variable)
}

// NoMatchingVariantError occurs when the environment variable is set
// but its value matches no variant.
type NoMatchingVariantError struct {
	Variable string
	Raw      string
}

// Error implements the error interface.
func (e NoMatchingVariantError) Error() string {
	return fmt.Sprintf("value %q of environment variable %q matches no variant", e.Raw, e.Variable)
}

// Resolve reads the enum's variable from the given store and returns the
// first matching variant's value. It never falls back and never panics:
// an absent variable yields a MissingVariableError and a non-matching
// value yields a NoMatchingVariantError, regardless of the enum's
// fallback policy.
//
// The store is read exactly once per call and nothing is cached, so two
// calls may legitimately observe different values.
func (e *Enum[T]) Resolve(ctx context.Context, store env.Store) (T, error) {
	raw, ok := store.Lookup(e.variable)
	if ok {
		for _, v := range e.variants {
			if v.ignored {
				continue
			}
			if !v.matches(raw, e.rule) {
				continue
			}
			e.log.DebugContext(
				ctx,
				"matched variant",
				slog.String("variable", e.variable),
				slog.String("variant", v.name),
			)
			return v.value, nil
		}
	}

	var zero T
	if !ok {
		return zero, MissingVariableError{Variable: e.variable}
	}
	return zero, NoMatchingVariantError{Variable: e.variable, Raw: raw}
}

// Get is the abort-capable entry point. It resolves exactly like Resolve
// and, when no variant matches, applies the fallback policy: panic if
// PanicOnNoMatch was set, otherwise the default variant, otherwise the
// marker variant.
func (e *Enum[T]) Get(ctx context.Context, store env.Store) T {
	v, err := e.Resolve(ctx, store)
	if err == nil {
		return v
	}
	if e.panicOnNoMatch {
		panic(err)
	}

	f, ok := e.Fallback()
	if !ok {
		// unreachable: New guarantees a fallback exists unless PanicOnNoMatch is set
		panic(err)
	}
	e.log.DebugContext(
		ctx,
		"falling back",
		slog.String("variable", e.variable),
		slog.Any("error", err),
	)
	return f
}

// Fallback returns the value resolution degrades to when no variant
// matches: the default variant if one is declared, otherwise the marker
// variant. The bool reports whether such a variant exists; it is false
// only for enums whose sole policy is PanicOnNoMatch.
func (e *Enum[T]) Fallback() (T, bool) {
	if e.hasDefault {
		return e.defaultVal, true
	}
	if e.hasMarker {
		return e.markerVal, true
	}
	var zero T
	return zero, false
}
