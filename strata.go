// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package strata

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/z5labs/strata/enum"
	"github.com/z5labs/strata/env"
	"github.com/z5labs/strata/internal/noop"

	"go.opentelemetry.io/otel"
)

// Schema is an ordered list of fields describing one configuration
// record. Declaration order is the resolution order.
type Schema []Field

func (s Schema) validate() error {
	seen := make(map[string]struct{}, len(s))
	for _, f := range s {
		if f.name == "" {
			return enum.MisconfiguredSchemaError{
				Reason: "schema declares a field with an empty name",
			}
		}
		if _, ok := seen[f.name]; ok {
			return enum.MisconfiguredSchemaError{
				Reason: fmt.Sprintf("schema declares field %q more than once", f.name),
			}
		}
		seen[f.name] = struct{}{}

		if f.kind == kindEnum && f.resolveEnum == nil {
			return enum.MisconfiguredSchemaError{
				Reason: fmt.Sprintf("enum field %q references a nil enum", f.name),
			}
		}
		if f.kind == kindEnum && !f.enumFallback {
			return enum.MisconfiguredSchemaError{
				Reason: fmt.Sprintf("enum field %q has no default or marker variant to fall back on", f.name),
			}
		}
	}
	return nil
}

// Option configures Populate.
type Option func(*options)

type options struct {
	store      env.Store
	logHandler slog.Handler
}

// Source sets the store fields are resolved from. Defaults to env.OS().
func Source(s env.Store) Option {
	return func(o *options) {
		o.store = s
	}
}

// LogHandler sets the slog.Handler used for per field debug logs.
func LogHandler(h slog.Handler) Option {
	return func(o *options) {
		o.logHandler = h
	}
}

// FieldError occurs when a field can not be resolved and has no viable
// fallback. It names the offending field and wraps the underlying cause.
type FieldError struct {
	Field string
	Cause error
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return fmt.Sprintf("failed to resolve field %q: %s", e.Field, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e FieldError) Unwrap() error {
	return e.Cause
}

// Populate resolves every schema field, in declaration order, into a
// fresh Record. Fields are resolved in isolation: no field's resolution
// depends on another's and no relationship between fields is validated.
//
// The schema is statically validated before any variable is read; an
// enum field whose enum declares neither a default nor a marker variant
// is rejected then, not at resolution time. A string field with no value
// and no default, or a numeric field with no parseable value and no
// default, fails the whole record with a FieldError; enum field failures
// degrade to the enum's own fallback instead.
//
// The record is all-or-nothing: on error no partial record is returned.
func Populate(ctx context.Context, schema Schema, opts ...Option) (*Record, error) {
	o := &options{
		store:      env.OS(),
		logHandler: noop.LogHandler{},
	}
	for _, opt := range opts {
		opt(o)
	}
	log := slog.New(o.logHandler)

	err := schema.validate()
	if err != nil {
		return nil, err
	}

	spanCtx, span := otel.Tracer("strata").Start(ctx, "Populate")
	defer span.End()

	values := make(map[string]any, len(schema))
	for _, f := range schema {
		v, err := f.resolve(spanCtx, o.store)
		if err != nil {
			return nil, FieldError{Field: f.name, Cause: err}
		}

		log.DebugContext(
			spanCtx,
			"resolved field",
			slog.String("field", f.name),
			slog.String("variable", f.Variable()),
		)
		values[f.name] = v
	}
	return &Record{values: values}, nil
}

// MustPopulate is like Populate but panics on any error. It is the
// abort-capable entry point for configuration a process can not start
// without.
func MustPopulate(ctx context.Context, schema Schema, opts ...Option) *Record {
	r, err := Populate(ctx, schema, opts...)
	if err != nil {
		panic(err)
	}
	return r
}
