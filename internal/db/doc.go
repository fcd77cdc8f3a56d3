// Copyright (c) 2026 ToeiRei
// dataentry - simple people data entry
// This source code is licensed under the MIT license found in the LICENSE file.

// Package db is the persistence gateway of dataentry: the only package that
// talks to the relational store.
//
// Backends
//   - sqlite (default, modernc.org/sqlite, file or in-memory DSN)
//   - postgres (jackc/pgx stdlib driver)
//   - mysql (go-sql-driver/mysql)
//
// All three are driven through a single *bun.DB with the matching dialect.
//
// Schema
//
// EnsureSchema applies the embedded steps under migrations/<type>/ in name
// order and records each applied step in schema_migrations. Step 0001 is the
// plain `people(name TEXT, age INTEGER)` table; step 0002 adds an
// autoincrement id so listings come back in insertion order. Both steps are
// safe to run against a table created by earlier versions of the program.
//
// Errors
//
// Every failure is wrapped in one of ErrConnection, ErrSchema, ErrInsert or
// ErrQuery; match with errors.Is. The driver message stays in the error text.
//
// Testing notes
//   - Prefer a temp file DSN (filepath.Join(t.TempDir(), "data.db")) in tests
//     that need real semantics, including reopen-after-close.
//   - Use go-sqlmock with NewStore for driver failure paths.
package db
