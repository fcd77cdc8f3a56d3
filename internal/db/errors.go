// Copyright (c) 2026 ToeiRei
// dataentry - simple people data entry
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"errors"
	"fmt"
)

var (
	// ErrConnection is returned when the store cannot be opened or reached.
	ErrConnection = errors.New("database connection failed")
	// ErrSchema is returned when the people table cannot be created.
	ErrSchema = errors.New("schema creation failed")
	// ErrInsert is returned when a person could not be written.
	ErrInsert = errors.New("insert failed")
	// ErrQuery is returned when the listing could not be read.
	ErrQuery = errors.New("query failed")
)

// wrap tags err with kind unless it already carries it.
func wrap(kind, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, kind) {
		return err
	}
	return fmt.Errorf("%w: %w", kind, err)
}

// IsStorageError reports whether err came out of this package.
func IsStorageError(err error) bool {
	return errors.Is(err, ErrConnection) ||
		errors.Is(err, ErrSchema) ||
		errors.Is(err, ErrInsert) ||
		errors.Is(err, ErrQuery)
}
