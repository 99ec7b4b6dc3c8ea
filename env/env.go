// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package env abstracts the process environment behind a small Store interface.
//
// Everything in strata resolves values through a Store instead of reading
// os.Getenv directly, which keeps resolution testable and lets callers layer
// alternative backends (in-memory maps, .env files, viper instances) without
// touching the process environment.
package env

import "os"

// Store represents a read-only, string keyed view of environment variables.
//
// Lookup follows the os.LookupEnv contract: the second return reports
// whether the variable is present at all, which is distinct from it being
// set to the empty string.
type Store interface {
	Lookup(name string) (string, bool)
}

// StoreFunc is a functional implementation of the Store interface.
type StoreFunc func(string) (string, bool)

// Lookup implements the Store interface.
func (f StoreFunc) Lookup(name string) (string, bool) {
	return f(name)
}

// OS returns a Store backed by the environment variables
// of the current process.
func OS() Store {
	return StoreFunc(os.LookupEnv)
}

// Map is an in-memory Store. It is primarily meant for tests
// and for composing with Multi.
type Map map[string]string

// Lookup implements the Store interface.
func (m Map) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Multi returns a Store which consults the given Stores in order
// and returns the first value found. Earlier stores shadow later ones.
func Multi(stores ...Store) Store {
	return StoreFunc(func(name string) (string, bool) {
		for _, s := range stores {
			v, ok := s.Lookup(name)
			if ok {
				return v, true
			}
		}
		return "", false
	})
}
