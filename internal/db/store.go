// Copyright (c) 2026 ToeiRei
// dataentry - simple people data entry
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"iter"

	"github.com/toeirei/dataentry/internal/model"
)

// Store defines every operation the rest of the program may perform against
// the relational store.
type Store interface {
	// EnsureSchema idempotently creates the people table.
	EnsureSchema(ctx context.Context) error
	// InsertPerson appends one row. There are no duplicate checks.
	InsertPerson(ctx context.Context, name string, age int) error
	// FetchAllPeople returns every stored person in insertion order. The
	// sequence is lazy and restartable: each range re-runs the query. A
	// failure is yielded once as a non-nil error, after which iteration stops.
	FetchAllPeople(ctx context.Context) iter.Seq2[model.Person, error]
	// Close releases the connection.
	Close() error
}

// CollectPeople drains seq into a slice, stopping at the first error.
func CollectPeople(seq iter.Seq2[model.Person, error]) ([]model.Person, error) {
	var people []model.Person
	for p, err := range seq {
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	return people, nil
}
