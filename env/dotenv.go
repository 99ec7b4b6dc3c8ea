// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package env

import (
	"fmt"

	"github.com/joho/godotenv"
)

// DotEnvError occurs if a .env file can not be opened or parsed.
type DotEnvError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e DotEnvError) Error() string {
	return fmt.Sprintf("failed to load env file %q: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e DotEnvError) Unwrap() error {
	return e.Cause
}

// DotEnv returns a Map loaded from the given .env file. The file is read
// once, eagerly; later changes to it are not observed. The process
// environment is left untouched.
func DotEnv(path string) (Map, error) {
	m, err := godotenv.Read(path)
	if err != nil {
		return nil, DotEnvError{Path: path, Cause: err}
	}
	return Map(m), nil
}
