// Copyright (c) 2026 ToeiRei
// dataentry - simple people data entry
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"iter"

	"github.com/toeirei/dataentry/internal/model"
)

// unavailableStore stands in for a store that could not be opened at
// startup. Every operation reports the connection error from startup.
type unavailableStore struct {
	err error
}

// Unavailable returns a Store whose operations all fail with err (wrapped in
// ErrConnection). It lets the UI start after a failed connection.
func Unavailable(err error) Store {
	return unavailableStore{err: wrap(ErrConnection, err)}
}

func (u unavailableStore) EnsureSchema(context.Context) error { return u.err }

func (u unavailableStore) InsertPerson(context.Context, string, int) error { return u.err }

func (u unavailableStore) FetchAllPeople(context.Context) iter.Seq2[model.Person, error] {
	return func(yield func(model.Person, error) bool) {
		yield(model.Person{}, u.err)
	}
}

func (u unavailableStore) Close() error { return nil }
