// Copyright (c) 2026 ToeiRei
// dataentry - simple people data entry
// This source code is licensed under the MIT license found in the LICENSE file.

// Package core is the application controller of dataentry. It turns the three
// user actions (save, view, clear) into calls against the form state and the
// store, and reports the outcome as a Result value instead of talking to any
// particular UI toolkit.
//
// The package does not import the database layer; the store is injected
// through the small PeopleStore interface so the TUI, the CLI and tests can
// all drive the same controller.
package core
