// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package strata_test

import (
	"context"
	"fmt"

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

func (t DatabaseType) String() string {
	switch t {
	case Postgres:
		return "postgres"
	case Mysql:
		return "mysql"
	default:
		return "sqlite"
	}
}

func Example() {
	dbType := enum.MustNew("DATABASE_TYPE", []enum.Variant[DatabaseType]{
		enum.NewVariant("Postgres", Postgres),
		enum.NewVariant("Mysql", Mysql),
		enum.NewVariant("Sqlite", Sqlite, enum.AsDefault()),
	}, enum.MatchCase(enum.CaseFold))

	schema := strata.Schema{
		strata.String("db_host"),
		strata.Int("db_port", strata.Default("5432")),
		strata.Bool("use_tls"),
		strata.EnumField("db_type", dbType),
	}

	store := env.Map{
		"DB_HOST":       "localhost",
		"USE_TLS":       "true",
		"DATABASE_TYPE": "POSTGRES",
	}

	var cfg struct {
		Host   string       `env:"db_host"`
		Port   uint16       `env:"db_port"`
		UseTLS bool         `env:"use_tls"`
		Type   DatabaseType `env:"db_type"`
	}

	rec := strata.MustPopulate(context.Background(), schema, strata.Source(store))
	err := rec.Unmarshal(&cfg)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(cfg.Host)
	fmt.Println(cfg.Port)
	fmt.Println(cfg.UseTLS)
	fmt.Println(cfg.Type)
	// Output:
	// localhost
	// 5432
	// true
	// postgres
}
