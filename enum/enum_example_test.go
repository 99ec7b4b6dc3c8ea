// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package enum_test

import (
	"context"
	"fmt"

	"github.com/z5labs/strata/enum"
	"github.com/z5labs/strata/env"
)

type Mode int

const (
	Dev Mode = iota
	Prod
)

func Example() {
	modes := enum.MustNew("MODE", []enum.Variant[Mode]{
		enum.NewVariant("Prod", Prod, enum.Cased(enum.CaseUpper)),
		enum.NewVariant("Dev", Dev, enum.AsDefault()),
	})

	mode := modes.Get(context.Background(), env.Map{"MODE": "PROD"})
	fmt.Println(mode == Prod)

	mode = modes.Get(context.Background(), env.Map{})
	fmt.Println(mode == Dev)
	// Output:
	// true
	// true
}

func ExampleEnum_Resolve() {
	colors := enum.MustNew("COLOR", []enum.Variant[string]{
		enum.NewVariant("Red", "red"),
		enum.NewVariant("Green", "green", enum.AsDefault()),
	})

	_, err := colors.Resolve(context.Background(), env.Map{"COLOR": "Yellow"})
	fmt.Println(err)
	// Output:
	// value "Yellow" of environment variable "COLOR" matches no variant
}
