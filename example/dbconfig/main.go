// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/z5labs/strata"
	"github.com/z5labs/strata/enum"
	"github.com/z5labs/strata/env"
)

type DatabaseType int

const (
	Postgres DatabaseType = iota
	Mysql
	Sqlite
)

var dbType = enum.MustNew("DATABASE_TYPE", []enum.Variant[DatabaseType]{
	enum.NewVariant("Postgres", Postgres),
	enum.NewVariant("Mysql", Mysql),
	enum.NewVariant("Sqlite", Sqlite, enum.AsDefault()),
}, enum.MatchCase(enum.CaseFold))

type Config struct {
	Host   string       `env:"db_host"`
	Port   uint16       `env:"db_port"`
	UseTLS bool         `env:"use_tls"`
	Type   DatabaseType `env:"db_type"`
}

func main() {
	schema := strata.Schema{
		strata.String("db_host", strata.Default("localhost")),
		strata.Int("db_port", strata.Default("5432")),
		strata.Bool("use_tls"),
		strata.EnumField("db_type", dbType),
	}

	// Layer a .env file, if present, under the process environment.
	store := env.OS()
	if dotenv, err := env.DotEnv(".env"); err == nil {
		store = env.Multi(store, dotenv)
	}

	rec, err := strata.Populate(
		context.Background(),
		schema,
		strata.Source(store),
		strata.LogHandler(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var cfg Config
	err = rec.Unmarshal(&cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("%+v\n", cfg)
}
