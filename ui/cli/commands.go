// Copyright (c) 2026 ToeiRei
// dataentry - simple people data entry
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/toeirei/dataentry/internal/db"
	"github.com/toeirei/dataentry/internal/i18n"
	"github.com/toeirei/dataentry/internal/logging"
)

func (a *app) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME AGE",
		Short: "Save one entry without opening the form",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := a.ctrl.Form()
			fs.SetName(args[0])
			fs.SetAge(args[1])

			r := a.ctrl.Save(cmd.Context())
			if err := r.AsError(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.Message)
			return nil
		},
	}
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print all saved entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			listing, r := a.ctrl.View(cmd.Context())
			if err := r.AsError(); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), listing)
			return nil
		},
	}
}

// defaultBackupName is the file written when backup gets no argument.
func defaultBackupName(now time.Time) string {
	return fmt.Sprintf("dataentry-backup-%s.json.zst", now.Format("2006-01-02"))
}

func (a *app) newBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup [output-file]",
		Short: "Write all entries to a compressed backup file",
		Long: `Writes every saved entry to a zstd compressed JSON file.
If no output file is given, a timestamped name is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := defaultBackupName(time.Now())
			if len(args) > 0 {
				target = args[0]
				if !strings.HasSuffix(target, ".zst") {
					target += ".zst"
				}
			}

			logging.Infof("%s", i18n.T("cli.backup_starting"))
			f, err := os.Create(target)
			if err != nil {
				return errors.New(i18n.T("cli.backup_error", err))
			}
			n, err := a.ctrl.Backup(cmd.Context(), f)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				_ = os.Remove(target)
				return errors.New(i18n.T("cli.backup_error", err))
			}

			logging.Debugf("backed up %d entries", n)
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.backup_success", target))
			return nil
		},
	}
}

func (a *app) newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <backup-file>",
		Short: "Append the entries of a backup file",
		Long: `Reads a backup written by 'dataentry backup' and appends its entries
in backup order. Existing entries are kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Infof("%s", i18n.T("cli.restore_starting", args[0]))
			f, err := os.Open(args[0])
			if err != nil {
				return errors.New(i18n.T("cli.restore_error", err))
			}
			defer func() { _ = f.Close() }()

			n, err := a.ctrl.Restore(cmd.Context(), f)
			if err != nil {
				logging.Warnf("restore stopped after %d entries", n)
				return errors.New(i18n.T("cli.restore_error", err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("result.restored", n))
			return nil
		},
	}
}

func (a *app) newDBCmd() *cobra.Command {
	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "Database commands",
	}

	maintain := &cobra.Command{
		Use:   "maintain",
		Short: "Run engine specific maintenance on the database",
		Long: `Runs maintenance for the configured engine: VACUUM and integrity_check
for SQLite, VACUUM ANALYZE for PostgreSQL, OPTIMIZE TABLE for MySQL.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			skip, _ := cmd.Flags().GetBool("skip-integrity")
			timeout, _ := cmd.Flags().GetInt("timeout")

			bs, ok := a.store.(*db.BunStore)
			if !ok {
				if a.startup != nil {
					return a.startup.AsError()
				}
				return errors.New(i18n.T("cli.maintain_unavailable"))
			}

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
				defer cancel()
			}

			logging.Infof("%s", i18n.T("cli.maintain_starting"))
			if err := bs.Maintain(ctx, skip); err != nil {
				return errors.New(i18n.T("cli.maintain_error", err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.maintain_success"))
			return nil
		},
	}
	maintain.Flags().Bool("skip-integrity", false, "Skip integrity_check (SQLite) during maintenance")
	maintain.Flags().Int("timeout", 0, "Timeout in seconds for maintenance (0 means no timeout)")

	dbCmd.AddCommand(maintain)
	return dbCmd
}
