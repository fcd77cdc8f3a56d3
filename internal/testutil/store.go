// Copyright (c) 2026 ToeiRei
// dataentry - simple people data entry
// This source code is licensed under the MIT license found in the LICENSE file.

// Package testutil holds test doubles shared by the controller and UI tests.
package testutil

import (
	"context"
	"iter"

	"github.com/toeirei/dataentry/internal/model"
)

// MemStore is an in-memory people store with injectable failures. It keeps
// insertion order and counts every call so tests can assert the store was
// left alone.
type MemStore struct {
	People    []model.Person
	InsertErr error
	FetchErr  error
	Inserts   int
	Fetches   int
}

// InsertPerson appends a person unless InsertErr is set.
func (s *MemStore) InsertPerson(_ context.Context, name string, age int) error {
	s.Inserts++
	if s.InsertErr != nil {
		return s.InsertErr
	}
	s.People = append(s.People, model.Person{Name: name, Age: age})
	return nil
}

// FetchAllPeople yields the stored people, or FetchErr once.
func (s *MemStore) FetchAllPeople(context.Context) iter.Seq2[model.Person, error] {
	return func(yield func(model.Person, error) bool) {
		s.Fetches++
		if s.FetchErr != nil {
			yield(model.Person{}, s.FetchErr)
			return
		}
		for _, p := range s.People {
			if !yield(p, nil) {
				return
			}
		}
	}
}
