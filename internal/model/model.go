// Copyright (c) 2026 ToeiRei
// dataentry - simple people data entry
// This source code is licensed under the MIT license found in the LICENSE file.

// package model defines the data structures shared between the store, the
// controller and the user interfaces.
package model // import "github.com/toeirei/dataentry/internal/model"

import "fmt"

// Person is one saved form entry. Rows are append-only; a Person is never
// updated or deleted once written.
type Person struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// String returns the "<name>, <age>" listing representation.
func (p Person) String() string {
	return fmt.Sprintf("%s, %d", p.Name, p.Age)
}

// BackupVersion is the format version written into BackupData.
const BackupVersion = 1

// BackupData is the document written by backup and read by restore.
type BackupData struct {
	Version int      `json:"version"`
	People  []Person `json:"people"`
}
