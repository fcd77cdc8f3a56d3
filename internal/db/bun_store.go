// Copyright (c) 2026 ToeiRei
// dataentry - simple people data entry
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"iter"

	"github.com/toeirei/dataentry/internal/model"
	"github.com/uptrace/bun"
)

// PersonModel is the bun mapping of the people table.
type PersonModel struct {
	bun.BaseModel `bun:"table:people"`
	ID            int64  `bun:"id,pk,autoincrement"`
	Name          string `bun:"name"`
	Age           int    `bun:"age"`
}

// BunStore is the Store implementation shared by all backends.
type BunStore struct {
	bun    *bun.DB
	dbType string
}

var _ Store = (*BunStore)(nil)

// Type returns the configured backend name.
func (s *BunStore) Type() string {
	return s.dbType
}

// EnsureSchema applies the embedded schema steps for the backend.
func (s *BunStore) EnsureSchema(ctx context.Context) error {
	return wrap(ErrSchema, RunMigrations(ctx, s.bun, s.dbType))
}

// InsertPerson appends one row to people.
func (s *BunStore) InsertPerson(ctx context.Context, name string, age int) error {
	_, err := s.bun.NewInsert().
		Model(&PersonModel{Name: name, Age: age}).
		Exec(ctx)
	if err != nil {
		return wrap(ErrInsert, err)
	}
	dbLogf("db: inserted person name=%q age=%d", name, age)
	return nil
}

// FetchAllPeople streams people ordered by id.
func (s *BunStore) FetchAllPeople(ctx context.Context) iter.Seq2[model.Person, error] {
	return func(yield func(model.Person, error) bool) {
		rows, err := s.bun.NewSelect().
			Model((*PersonModel)(nil)).
			Column("name", "age").
			OrderExpr("id ASC").
			Rows(ctx)
		if err != nil {
			yield(model.Person{}, wrap(ErrQuery, err))
			return
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			// Rows written by other tools may hold NULLs; read them as zero values.
			var name sql.NullString
			var age sql.NullInt64
			if err := rows.Scan(&name, &age); err != nil {
				yield(model.Person{}, wrap(ErrQuery, err))
				return
			}
			if !yield(model.Person{Name: name.String, Age: int(age.Int64)}, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(model.Person{}, wrap(ErrQuery, err))
		}
	}
}

// Close closes the underlying connection pool.
func (s *BunStore) Close() error {
	return s.bun.Close()
}
