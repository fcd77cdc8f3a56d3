// Copyright (c) 2026 ToeiRei
// dataentry - simple people data entry
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/uptrace/bun"
)

//go:embed migrations
var embeddedMigrations embed.FS

// SchemaMigration records one applied schema step.
type SchemaMigration struct {
	bun.BaseModel `bun:"table:schema_migrations"`
	Version       string    `bun:"version,pk,type:varchar(191)"`
	AppliedAt     time.Time `bun:"applied_at,nullzero"`
}

// RunMigrations applies every embedded *.up.sql step for dbType that is not
// yet recorded in schema_migrations. Each step runs in its own transaction.
func RunMigrations(ctx context.Context, bdb *bun.DB, dbType string) error {
	start := time.Now()
	dbLogf("db: starting migrations for %s", dbType)
	migrationsPath := path.Join("migrations", dbType)

	ups, err := migrationFiles(migrationsPath)
	if err != nil {
		return err
	}

	if _, err := bdb.NewCreateTable().
		Model((*SchemaMigration)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to ensure schema_migrations table: %w", err)
	}

	for _, fname := range ups {
		version := strings.TrimSuffix(fname, ".up.sql")

		applied, err := bdb.NewSelect().
			Model((*SchemaMigration)(nil)).
			Where("version = ?", version).
			Exists(ctx)
		if err != nil {
			return fmt.Errorf("failed to check migration version %s: %w", version, err)
		}
		if applied {
			continue
		}

		data, err := embeddedMigrations.ReadFile(path.Join(migrationsPath, fname))
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", fname, err)
		}

		if err := applyMigration(ctx, bdb, version, string(data)); err != nil {
			return err
		}
		dbLogf("db: applied migration %s", version)
	}

	dbLogf("db: migrations for %s completed in %s", dbType, time.Since(start))
	return nil
}

func applyMigration(ctx context.Context, bdb *bun.DB, version, script string) error {
	tx, err := bdb.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for migration %s: %w", version, err)
	}
	defer func() { _ = tx.Rollback() }()

	// Run the script through the raw *sql.Tx so bun does not try to expand
	// placeholders inside it.
	if _, err := tx.Tx.ExecContext(ctx, script); err != nil {
		return fmt.Errorf("failed to execute migration %s: %w", version, err)
	}
	if _, err := tx.NewInsert().
		Model(&SchemaMigration{Version: version, AppliedAt: time.Now().UTC()}).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to record migration %s: %w", version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %s: %w", version, err)
	}
	return nil
}

// migrationFiles lists the .up.sql files below dir in name order.
func migrationFiles(dir string) ([]string, error) {
	entries, err := fs.ReadDir(embeddedMigrations, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("no schema embedded for database type %q", path.Base(dir))
		}
		return nil, fmt.Errorf("failed to read embedded migrations (%s): %w", dir, err)
	}

	var ups []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if name := e.Name(); strings.HasSuffix(name, ".up.sql") {
			ups = append(ups, name)
		}
	}
	sort.Strings(ups)
	return ups, nil
}
