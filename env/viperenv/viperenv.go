// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package viperenv bridges an existing spf13/viper instance into an env.Store.
//
// It lives in its own package so that only callers who already depend on
// viper pull it into their module graph.
package viperenv

import (
	"github.com/z5labs/strata/env"

	"github.com/spf13/viper"
)

// Store returns an env.Store whose lookups are served by v. A key is
// considered present if viper reports it set through any of its sources.
func Store(v *viper.Viper) env.Store {
	return env.StoreFunc(func(name string) (string, bool) {
		if !v.IsSet(name) {
			return "", false
		}
		return v.GetString(name), true
	})
}
