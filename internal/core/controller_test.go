// Copyright (c) 2026 ToeiRei
// dataentry - simple people data entry
// This source code is licensed under the MIT license found in the LICENSE file.
package core

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
	"github.com/toeirei/dataentry/internal/db"
	"github.com/toeirei/dataentry/internal/form"
	"github.com/toeirei/dataentry/internal/i18n"
	"github.com/toeirei/dataentry/internal/logging"
	"github.com/toeirei/dataentry/internal/model"
	"github.com/toeirei/dataentry/internal/testutil"
)

func newController(store PeopleStore, name, age string) *Controller {
	i18n.Init("en")
	c := New(store, nil)
	c.Form().SetName(name)
	c.Form().SetAge(age)
	return c
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logging.L
	logging.L = clog.New(&buf)
	t.Cleanup(func() { logging.L = prev })
	return &buf
}

func TestSave_ValidInputStoresAndClearsForm(t *testing.T) {
	st := &testutil.MemStore{}
	c := newController(st, "Alice", "30")

	r := c.Save(context.Background())
	if !r.OK() {
		t.Fatalf("expected success, got %+v", r)
	}
	if r.Title != "Success" || r.Message != "Data saved successfully." {
		t.Fatalf("unexpected dialog text: %q / %q", r.Title, r.Message)
	}
	if len(st.People) != 1 || st.People[0] != (model.Person{Name: "Alice", Age: 30}) {
		t.Fatalf("unexpected stored rows: %v", st.People)
	}
	if !c.Form().IsEmpty() {
		t.Fatalf("form should be cleared after save, got %q/%q", c.Form().ReadName(), c.Form().ReadAge())
	}
}

func TestSave_InvalidAgeLeavesStoreUntouched(t *testing.T) {
	for _, age := range []string{"abc", "", " 30", "30 ", "1.5", "3O", "2147483648", "0x10"} {
		t.Run(age, func(t *testing.T) {
			st := &testutil.MemStore{}
			c := newController(st, "Alice", age)
			logBuf := captureLog(t)

			r := c.Save(context.Background())
			if r.Kind != InputError {
				t.Fatalf("expected InputError for %q, got %+v", age, r)
			}
			if !errors.Is(r.Err, ErrInvalidAge) {
				t.Fatalf("expected ErrInvalidAge, got %v", r.Err)
			}
			if r.Title != "Input Error" || r.Message != "Please enter a valid age (integer)." {
				t.Fatalf("unexpected dialog text: %q / %q", r.Title, r.Message)
			}
			if st.Inserts != 0 {
				t.Fatalf("store must not be touched, got %d inserts", st.Inserts)
			}
			if c.Form().ReadName() != "Alice" || c.Form().ReadAge() != age {
				t.Fatalf("form must keep its content on input error")
			}
			if !strings.Contains(logBuf.String(), "age must be an integer") {
				t.Fatalf("expected the input error to be logged, got %q", logBuf.String())
			}
		})
	}
}

func TestParseAge_AcceptsSignedIntegers(t *testing.T) {
	cases := map[string]int{"0": 0, "30": 30, "+7": 7, "-3": -3, "007": 7, "2147483647": 2147483647, "-2147483648": -2147483648}
	for raw, want := range cases {
		got, err := ParseAge(raw)
		if err != nil || got != want {
			t.Fatalf("ParseAge(%q) = %d, %v; want %d", raw, got, err, want)
		}
	}
}

func TestSave_StorageErrorKeepsForm(t *testing.T) {
	st := &testutil.MemStore{InsertErr: errors.New("disk full")}
	c := newController(st, "Alice", "30")
	logBuf := captureLog(t)

	r := c.Save(context.Background())
	if r.Kind != StorageError {
		t.Fatalf("expected StorageError, got %+v", r)
	}
	if r.Title != "Database Error" || r.Message != "Error saving data: disk full" {
		t.Fatalf("unexpected dialog text: %q / %q", r.Title, r.Message)
	}
	if c.Form().ReadName() != "Alice" || c.Form().ReadAge() != "30" {
		t.Fatalf("form must keep its content on storage error")
	}
	if !strings.Contains(logBuf.String(), "disk full") {
		t.Fatalf("expected the storage error to be logged, got %q", logBuf.String())
	}
}

func TestView_FormatsOneLinePerPerson(t *testing.T) {
	st := &testutil.MemStore{People: []model.Person{{Name: "Alice", Age: 30}, {Name: "Bob", Age: 25}}}
	c := newController(st, "", "")

	listing, r := c.View(context.Background())
	if !r.OK() || !r.Silent() {
		t.Fatalf("expected silent success, got %+v", r)
	}
	if listing != "Alice, 30\nBob, 25\n" {
		t.Fatalf("unexpected listing %q", listing)
	}
}

func TestView_EmptyStore(t *testing.T) {
	c := newController(&testutil.MemStore{}, "", "")
	listing, r := c.View(context.Background())
	if !r.OK() || listing != "" {
		t.Fatalf("expected empty listing and success, got %q / %+v", listing, r)
	}
}

func TestView_StorageError(t *testing.T) {
	st := &testutil.MemStore{
		People:   []model.Person{{Name: "Alice", Age: 30}},
		FetchErr: errors.New("no such table: people"),
	}
	c := newController(st, "", "")
	captureLog(t)

	listing, r := c.View(context.Background())
	if r.Kind != StorageError || listing != "" {
		t.Fatalf("expected StorageError with empty listing, got %q / %+v", listing, r)
	}
	if r.Message != "Error retrieving data: no such table: people" {
		t.Fatalf("unexpected message %q", r.Message)
	}
}

func TestClear_NeverTouchesStore(t *testing.T) {
	st := &testutil.MemStore{}
	c := newController(st, "Bob", "abc")
	r := c.Clear()
	if !r.OK() || !r.Silent() {
		t.Fatalf("expected silent success, got %+v", r)
	}
	if !c.Form().IsEmpty() {
		t.Fatalf("form not cleared")
	}
	if st.Inserts != 0 || st.Fetches != 0 {
		t.Fatalf("clear touched the store: %d inserts, %d fetches", st.Inserts, st.Fetches)
	}
}

func TestNew_UsesGivenFormState(t *testing.T) {
	fs := &form.State{}
	fs.SetName("Carol")
	c := New(&testutil.MemStore{}, fs)
	if c.Form() != fs || c.Form().ReadName() != "Carol" {
		t.Fatalf("controller should use the provided form state")
	}
}

func TestFormatListing(t *testing.T) {
	if got := FormatListing(nil); got != "" {
		t.Fatalf("expected empty listing, got %q", got)
	}
	got := FormatListing([]model.Person{{Name: "A", Age: 1}})
	if got != "A, 1\n" {
		t.Fatalf("unexpected listing %q", got)
	}
}

func TestKind_String(t *testing.T) {
	if Success.String() != "success" || InputError.String() != "input_error" || StorageError.String() != "storage_error" || Kind(42).String() != "unknown" {
		t.Fatalf("unexpected kind names")
	}
}

func openSQLite(t *testing.T, dsn string) *db.BunStore {
	t.Helper()
	ctx := context.Background()
	s, err := db.Open(ctx, "sqlite", dsn)
	if err != nil {
		t.Fatalf("db.Open: %v", err)
	}
	if err := s.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	return s
}

func TestScenario_SaveTwiceThenViewAndRestart(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "data.db")
	s := openSQLite(t, dsn)

	c := newController(s, "Alice", "30")
	if r := c.Save(ctx); !r.OK() {
		t.Fatalf("save Alice: %+v", r)
	}
	c.Form().SetName("Bob")
	c.Form().SetAge("25")
	if r := c.Save(ctx); !r.OK() {
		t.Fatalf("save Bob: %+v", r)
	}
	c.Form().SetName("Eve")
	c.Form().SetAge("abc")
	if r := c.Save(ctx); r.Kind != InputError {
		t.Fatalf("expected input error, got %+v", r)
	}

	listing, r := c.View(ctx)
	if !r.OK() {
		t.Fatalf("view: %+v", r)
	}
	if listing != "Alice, 30\nBob, 25\n" {
		t.Fatalf("unexpected listing %q", listing)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Simulate a restart.
	s2 := openSQLite(t, dsn)
	defer func() { _ = s2.Close() }()
	listing, r = New(s2, nil).View(ctx)
	if !r.OK() || listing != "Alice, 30\nBob, 25\n" {
		t.Fatalf("rows did not survive restart: %q / %+v", listing, r)
	}
}

func TestUnavailableStore_StorageErrorsButClearWorks(t *testing.T) {
	ctx := context.Background()
	st := db.Unavailable(errors.New("unable to open database file"))
	c := newController(st, "Alice", "30")
	captureLog(t)

	if r := c.Save(ctx); r.Kind != StorageError || !errors.Is(r.Err, db.ErrConnection) {
		t.Fatalf("expected storage error from unavailable store, got %+v", r)
	}
	if _, r := c.View(ctx); r.Kind != StorageError {
		t.Fatalf("expected storage error from unavailable store, got %+v", r)
	}
	if r := c.Clear(); !r.OK() || !c.Form().IsEmpty() {
		t.Fatalf("clear must succeed without a store, got %+v", r)
	}

	cr := ConnectionResult(errors.New("unable to open database file"))
	if cr.Kind != StorageError || cr.Message != "Error connecting to database: unable to open database file" {
		t.Fatalf("unexpected connection result %+v", cr)
	}
}

func TestResultAsError(t *testing.T) {
	c := newController(&testutil.MemStore{}, "Eve", "old")
	r := c.Save(context.Background())
	err := r.AsError()
	if !errors.Is(err, ErrInvalidAge) {
		t.Fatalf("expected ErrInvalidAge in chain, got %v", err)
	}
	if err.Error() != "Input Error: Please enter a valid age (integer)." {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if (Result{Kind: Success}).AsError() != nil {
		t.Fatalf("success must not convert to an error")
	}
}

func TestSchemaResult(t *testing.T) {
	i18n.Init("en")
	r := SchemaResult(errors.New("read-only"))
	if r.Kind != StorageError || r.Message != "Error creating table: read-only" {
		t.Fatalf("unexpected result %+v", r)
	}
}
