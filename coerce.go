// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package strata

import (
	"fmt"
	"strconv"
	"strings"
)

// MissingValueError occurs when a required field has neither an
// environment value nor a declared default.
type MissingValueError struct {
	Field    string
	Variable string
}

// Error implements the error interface.
func (e MissingValueError) Error() string {
	return fmt.Sprintf("no environment variable or default value found for field %q (variable %q)", e.Field, e.Variable)
}

// CoercionError occurs when a value can not be parsed into the field's
// type and no usable fallback exists.
type CoercionError struct {
	Field    string
	Variable string
	Raw      string
	Cause    error
}

// Error implements the error interface.
func (e CoercionError) Error() string {
	return fmt.Sprintf("failed to coerce value %q of variable %q for field %q: %s", e.Raw, e.Variable, e.Field, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e CoercionError) Unwrap() error {
	return e.Cause
}

func coerceString(f Field, raw string, present bool) (string, error) {
	if present {
		return raw, nil
	}
	if f.hasDefault {
		return f.defaultVal, nil
	}
	return "", MissingValueError{Field: f.name, Variable: f.Variable()}
}

func coerceBool(raw string, present bool) bool {
	if !present {
		return false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return b
}

// coerceNumber resolves a numeric field: the raw value is trimmed and
// parsed if present; on absence or parse failure the declared default is
// parsed instead, untrimmed; with no default the failure is fatal.
func coerceNumber[N any](f Field, raw string, present bool, parse func(string) (N, error)) (any, error) {
	var parseErr error
	if present {
		n, err := parse(strings.TrimSpace(raw))
		if err == nil {
			return n, nil
		}
		parseErr = err
	}

	if !f.hasDefault {
		if !present {
			return nil, MissingValueError{Field: f.name, Variable: f.Variable()}
		}
		return nil, CoercionError{
			Field:    f.name,
			Variable: f.Variable(),
			Raw:      raw,
			Cause:    parseErr,
		}
	}

	n, err := parse(f.defaultVal)
	if err != nil {
		return nil, CoercionError{
			Field:    f.name,
			Variable: f.Variable(),
			Raw:      f.defaultVal,
			Cause:    err,
		}
	}
	return n, nil
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
