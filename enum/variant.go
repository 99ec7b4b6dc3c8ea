// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package enum

import (
	"fmt"
	"strings"
)

// Case identifies the normalization applied before a variant name
// is compared against a raw environment variable value.
type Case int

const (
	// CaseExact compares the raw value to the variant name unmodified.
	CaseExact Case = iota

	// CaseUpper uppercases the variant name before comparing it
	// to the raw, unmodified value.
	CaseUpper

	// CaseLower lowercases the variant name before comparing it
	// to the raw, unmodified value.
	CaseLower

	// CaseFold lowercases both the variant name and the raw value,
	// yielding a case-insensitive match.
	CaseFold
)

// String implements the fmt.Stringer interface.
func (c Case) String() string {
	switch c {
	case CaseExact:
		return "exact"
	case CaseUpper:
		return "uppercase"
	case CaseLower:
		return "lowercase"
	case CaseFold:
		return "fold"
	default:
		return fmt.Sprintf("Case(%d)", int(c))
	}
}

// Variant is one named member of a closed enumeration.
type Variant[T any] struct {
	name    string
	value   T
	rule    Case
	ruleSet bool
	ignored bool
	def     bool
	marker  bool
}

// VariantOption configures a Variant.
type VariantOption func(*variantOptions)

type variantOptions struct {
	rule    Case
	ruleSet bool
	ignored bool
	def     bool
	marker  bool
}

// Cased sets the case rule for this variant, overriding the
// enum wide rule set with MatchCase.
func Cased(c Case) VariantOption {
	return func(vo *variantOptions) {
		vo.rule = c
		vo.ruleSet = true
	}
}

// Ignored excludes this variant from matching. An ignored variant can
// never be returned by resolution unless it is also the default or
// marker variant.
func Ignored() VariantOption {
	return func(vo *variantOptions) {
		vo.ignored = true
	}
}

// AsDefault designates this variant as the enum's default. The default
// is returned when no variant matches and when the enum is queried for
// its fallback value. It remains matchable.
func AsDefault() VariantOption {
	return func(vo *variantOptions) {
		vo.def = true
	}
}

// AsMarker designates this variant as the enum's "not found" sentinel.
// A marker is excluded from matching: an environment value equal to the
// marker's name does not match it.
func AsMarker() VariantOption {
	return func(vo *variantOptions) {
		vo.marker = true
		vo.ignored = true
	}
}

// NewVariant returns a Variant with the given display name and value.
func NewVariant[T any](name string, value T, opts ...VariantOption) Variant[T] {
	var vo variantOptions
	for _, opt := range opts {
		opt(&vo)
	}
	return Variant[T]{
		name:    name,
		value:   value,
		rule:    vo.rule,
		ruleSet: vo.ruleSet,
		ignored: vo.ignored,
		def:     vo.def,
		marker:  vo.marker,
	}
}

// Name returns the variant's display name.
func (v Variant[T]) Name() string {
	return v.name
}

// Value returns the variant's value.
func (v Variant[T]) Value() T {
	return v.value
}

func (v Variant[T]) matches(raw string, enumRule Case) bool {
	rule := enumRule
	if v.ruleSet {
		rule = v.rule
	}

	name := v.name
	switch rule {
	case CaseUpper:
		name = strings.ToUpper(name)
	case CaseLower:
		name = strings.ToLower(name)
	case CaseFold:
		name = strings.ToLower(name)
		raw = strings.ToLower(raw)
	}
	return raw == name
}
