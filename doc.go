// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package strata extracts process configuration from environment variables
// into strongly typed values.
//
// A Schema declares named, typed fields. Each field resolves from one
// environment variable (its name uppercased, unless overridden with Var)
// eagerly and exactly once per Populate call. Closed enumerations resolve
// through the enum subpackage, primitives through the standard library
// parsers.
//
//	dbType := enum.MustNew("DATABASE_TYPE", []enum.Variant[DatabaseType]{
//	    enum.NewVariant("Postgres", Postgres),
//	    enum.NewVariant("Mysql", Mysql),
//	    enum.NewVariant("Sqlite", Sqlite, enum.AsDefault()),
//	}, enum.MatchCase(enum.CaseFold))
//
//	schema := strata.Schema{
//	    strata.String("db_host"),
//	    strata.Int("db_port", strata.Default("5432")),
//	    strata.Bool("use_tls"),
//	    strata.EnumField("db_type", dbType),
//	}
//
//	rec, err := strata.Populate(ctx, schema)
//	if err != nil {
//	    // a required field could not be resolved
//	}
//
//	var cfg Config
//	err = rec.Unmarshal(&cfg)
//
// MustPopulate offers the same semantics with panic instead of error
// termination, for configuration a process can not start without.
//
// # Failure asymmetry
//
// Field kinds fail differently, and deliberately so:
//
//   - string fields with no value and no default fail the whole record;
//   - bool fields silently resolve to false on absence or parse failure;
//   - numeric fields fall back to their declared default, failing the
//     record only when no default exists or it does not parse;
//   - enum fields never fail the record: they degrade to their enum's
//     declared fallback, and a schema whose enum has no fallback is
//     rejected before any variable is read.
//
// Callers depend on this asymmetry as a stable contract.
package strata
