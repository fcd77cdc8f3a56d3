// Copyright (c) 2026 ToeiRei
// dataentry - simple people data entry
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"fmt"
)

// Maintain performs engine-specific housekeeping on the open store. For
// SQLite this runs PRAGMA optimize, VACUUM, a WAL checkpoint and an
// integrity check (unless skipIntegrity). Postgres runs VACUUM ANALYZE and
// MySQL runs OPTIMIZE TABLE on people.
func (s *BunStore) Maintain(ctx context.Context, skipIntegrity bool) error {
	switch s.dbType {
	case "sqlite":
		// PRAGMA optimize is not useful everywhere (e.g. in-memory); ignore failures.
		if _, err := s.bun.ExecContext(ctx, "PRAGMA optimize"); err != nil {
			dbLogf("db: sqlite optimize failed (ignored): %v", err)
		}
		if _, err := s.bun.ExecContext(ctx, "VACUUM"); err != nil {
			return fmt.Errorf("sqlite vacuum failed: %w", err)
		}
		// WAL checkpoint; a no-op when the journal is not in WAL mode.
		_, _ = s.bun.ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE)")
		if skipIntegrity {
			return nil
		}
		var res string
		if err := s.bun.QueryRowContext(ctx, "PRAGMA integrity_check").Scan(&res); err != nil {
			return fmt.Errorf("sqlite integrity_check failed: %w", err)
		}
		if res != "ok" {
			return fmt.Errorf("sqlite integrity_check failed: %s", res)
		}
	case "postgres":
		if _, err := s.bun.ExecContext(ctx, "VACUUM ANALYZE people"); err != nil {
			return fmt.Errorf("postgres vacuum failed: %w", err)
		}
	case "mysql":
		if _, err := s.bun.ExecContext(ctx, "OPTIMIZE TABLE people"); err != nil {
			return fmt.Errorf("mysql optimize failed: %w", err)
		}
	default:
		return fmt.Errorf("unsupported db type for maintenance: %s", s.dbType)
	}
	return nil
}
