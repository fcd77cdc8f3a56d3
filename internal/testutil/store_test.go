// Copyright (c) 2026 ToeiRei
// dataentry - simple people data entry
// This source code is licensed under the MIT license found in the LICENSE file.
package testutil

import (
	"context"
	"errors"
	"testing"

	"github.com/toeirei/dataentry/internal/model"
)

func TestMemStoreKeepsOrder(t *testing.T) {
	s := &MemStore{}
	ctx := context.Background()
	_ = s.InsertPerson(ctx, "Alice", 30)
	_ = s.InsertPerson(ctx, "Bob", 25)

	var got []model.Person
	for p, err := range s.FetchAllPeople(ctx) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, p)
	}
	if len(got) != 2 || got[0].Name != "Alice" || got[1].Name != "Bob" {
		t.Fatalf("unexpected order: %v", got)
	}
	if s.Inserts != 2 || s.Fetches != 1 {
		t.Fatalf("unexpected counters: %d inserts, %d fetches", s.Inserts, s.Fetches)
	}
}

func TestMemStoreFailures(t *testing.T) {
	boom := errors.New("boom")
	s := &MemStore{InsertErr: boom, FetchErr: boom}
	if err := s.InsertPerson(context.Background(), "x", 1); !errors.Is(err, boom) {
		t.Fatalf("expected insert error, got %v", err)
	}
	if len(s.People) != 0 {
		t.Fatalf("failed insert must not store")
	}
	n := 0
	for _, err := range s.FetchAllPeople(context.Background()) {
		n++
		if !errors.Is(err, boom) {
			t.Fatalf("expected fetch error, got %v", err)
		}
	}
	if n != 1 {
		t.Fatalf("expected exactly one error, got %d items", n)
	}
}
