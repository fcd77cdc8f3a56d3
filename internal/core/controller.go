// Copyright (c) 2026 ToeiRei
// dataentry - simple people data entry
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/toeirei/dataentry/internal/form"
	"github.com/toeirei/dataentry/internal/i18n"
	"github.com/toeirei/dataentry/internal/logging"
	"github.com/toeirei/dataentry/internal/model"
)

// PeopleStore is the part of the persistence gateway the controller needs.
type PeopleStore interface {
	InsertPerson(ctx context.Context, name string, age int) error
	FetchAllPeople(ctx context.Context) iter.Seq2[model.Person, error]
}

// Controller wires the save, view and clear actions to the form state and
// the store. It is not safe for concurrent use; actions are expected to be
// dispatched one at a time.
type Controller struct {
	store PeopleStore
	form  *form.State
}

// New returns a controller over store. A nil fs starts with an empty form.
func New(store PeopleStore, fs *form.State) *Controller {
	if fs == nil {
		fs = &form.State{}
	}
	return &Controller{store: store, form: fs}
}

// Form exposes the form state so the presentation layer can write the
// fields the user edits.
func (c *Controller) Form() *form.State {
	return c.form
}

// ParseAge converts raw age text to an int using the same rules as a 32-bit
// base-10 integer parse: optional sign, digits only, no surrounding spaces.
func ParseAge(raw string) (int, error) {
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAge, raw)
	}
	return int(n), nil
}

// Save validates the age, stores the person and clears the form. On an
// input error the store is not touched; on any error the form keeps its
// content.
func (c *Controller) Save(ctx context.Context) Result {
	name := c.form.ReadName()
	age, err := ParseAge(c.form.ReadAge())
	if err != nil {
		return c.fail("save", inputErrorResult(err))
	}

	if err := c.store.InsertPerson(ctx, name, age); err != nil {
		return c.fail("save", storageErrorResult("result.error_save", err))
	}

	c.form.Clear()
	logging.Debugf("saved person name=%q age=%d", name, age)
	return successResult(i18n.T("result.saved"))
}

// View returns the listing of every stored person, one "<name>, <age>" line
// each, in store order. On failure the listing is empty and the caller should
// keep whatever it displayed before.
func (c *Controller) View(ctx context.Context) (string, Result) {
	var b strings.Builder
	for p, err := range c.store.FetchAllPeople(ctx) {
		if err != nil {
			return "", c.fail("view", storageErrorResult("result.error_retrieve", err))
		}
		writeLine(&b, p)
	}
	return b.String(), Result{Kind: Success}
}

// Clear empties the form. It never touches the store.
func (c *Controller) Clear() Result {
	c.form.Clear()
	return Result{Kind: Success}
}

// FormatListing renders people the way View does.
func FormatListing(people []model.Person) string {
	var b strings.Builder
	for _, p := range people {
		writeLine(&b, p)
	}
	return b.String()
}

func writeLine(b *strings.Builder, p model.Person) {
	b.WriteString(p.String())
	b.WriteByte('\n')
}

func (c *Controller) fail(action string, r Result) Result {
	logging.Errorf("%s failed (%s): %v", action, r.Kind, r.Err)
	return r
}
