// Copyright (c) 2026 ToeiRei
// dataentry - simple people data entry
// This source code is licensed under the MIT license found in the LICENSE file.

// Package form holds the transient, user-edited values of the entry form
// before they are persisted.
package form

// State is the raw text of the Name and Age fields. The zero value is an
// empty form.
type State struct {
	name string
	age  string
}

// ReadName returns the current raw name text.
func (s *State) ReadName() string { return s.name }

// ReadAge returns the current raw age text; it is not validated here.
func (s *State) ReadAge() string { return s.age }

// SetName replaces the name text.
func (s *State) SetName(v string) { s.name = v }

// SetAge replaces the age text.
func (s *State) SetAge(v string) { s.age = v }

// Clear resets both fields to empty.
func (s *State) Clear() {
	s.name = ""
	s.age = ""
}

// IsEmpty reports whether both fields are empty.
func (s *State) IsEmpty() bool {
	return s.name == "" && s.age == ""
}
