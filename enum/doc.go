// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package enum resolves environment variable values into closed enumerations.
//
// An Enum[T] is an immutable description of a variable name, an ordered list
// of named variants and a fallback policy. Resolution reads the variable
// once, compares its value against each matchable variant in declaration
// order under that variant's case rule and short-circuits on the first
// match.
//
// # Case rules
//
// Each variant compares under exactly one effective rule: its own rule if
// declared, otherwise the enum wide rule, otherwise CaseExact.
//
//   - CaseExact compares the raw value to the variant name unmodified.
//   - CaseUpper and CaseLower normalize the variant name, never the raw value.
//   - CaseFold lowercases both sides for a case-insensitive match.
//
// Matching is always full-string equality after normalization. There is no
// substring or prefix matching.
//
// # Fallback
//
// When no variant matches (including when the variable is absent) the
// enum's fallback policy decides the outcome. A policy is declared at
// construction time: a default variant (AsDefault), a marker variant
// (AsMarker, excluded from matching) or PanicOnNoMatch. New rejects an enum
// which declares none of the three with a MisconfiguredSchemaError. When
// several are declared, panic takes precedence over the default variant,
// which takes precedence over the marker.
//
// # Entry points
//
// Two entry points share the same matching semantics and differ only in how
// they terminate on no match:
//
//	v, err := e.Resolve(ctx, store) // typed error, never panics
//	v := e.Get(ctx, store)          // fallback value, or panic under PanicOnNoMatch
//
// # Basic usage
//
//	type Color int
//
//	const (
//	    Red Color = iota
//	    Green
//	)
//
//	colors := enum.MustNew("COLOR", []enum.Variant[Color]{
//	    enum.NewVariant("Red", Red),
//	    enum.NewVariant("Green", Green, enum.AsDefault()),
//	})
//
//	color := colors.Get(ctx, env.OS())
package enum
