// Copyright (c) 2026 ToeiRei
// dataentry - simple people data entry
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/dataentry/internal/config"
	"github.com/toeirei/dataentry/internal/core"
	"github.com/toeirei/dataentry/internal/db"
	"github.com/toeirei/dataentry/internal/i18n"
	"github.com/toeirei/dataentry/internal/logging"
	"github.com/toeirei/dataentry/internal/tui"
	"golang.org/x/term"
)

// skipServices marks commands that run without config or store.
const skipServices = "skip-services"

// stdinIsTerminal is swapped in tests.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// runTUI is swapped in tests.
var runTUI = tui.Run

// app holds the services shared by one command invocation.
type app struct {
	cfgFile string
	verbose bool

	cfg     config.Config
	store   db.Store
	ctrl    *core.Controller
	startup *core.Result
}

// Execute runs the root command until it finishes or the process receives
// an interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:                "dataentry",
		Short:              "Simple people data entry",
		Long:               i18n.T("cli.short"),
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
		RunE:               a.runInteractive,
	}
	cmd.Version = compositeVersion()

	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging (includes database statements)")
	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/dataentry/dataentry.yaml)")
	cmd.PersistentFlags().String("database.type", "sqlite", "Database type ("+strings.Join(db.SupportedTypes, ", ")+")")
	cmd.PersistentFlags().String("database.dsn", "./data.db", "Database connection string")
	cmd.PersistentFlags().String("language", "en", `Interface language ("en", "de")`)
	cmd.PersistentFlags().String("log.level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		a.newAddCmd(),
		a.newListCmd(),
		a.newBackupCmd(),
		a.newRestoreCmd(),
		a.newDBCmd(),
		newVersionCmd(),
	)
	a.closeOnError(cmd)
	return cmd
}

// closeOnError makes every RunE release the store when it fails, since cobra
// skips PersistentPostRunE after an error.
func (a *app) closeOnError(c *cobra.Command) {
	if run := c.RunE; run != nil {
		c.RunE = func(cmd *cobra.Command, args []string) error {
			err := run(cmd, args)
			if err != nil {
				if cerr := a.teardown(cmd, args); cerr != nil {
					logging.Warnf("closing database: %v", cerr)
				}
			}
			return err
		}
	}
	for _, sub := range c.Commands() {
		a.closeOnError(sub)
	}
}

// setup loads configuration and opens the store. A store that cannot be
// opened is replaced with an unavailable one so the failure surfaces through
// the first action instead of aborting the process.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[skipServices] == "true" {
		return nil
	}

	var explicit *string
	if a.cfgFile != "" {
		explicit = &a.cfgFile
	}
	cfg, err := config.LoadConfig[config.Config](cmd, config.Defaults(), explicit)
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return errors.New(i18n.T("cli.error_config", err))
		}
		if werr := config.WriteConfigFile(&cfg, false); werr != nil {
			logging.Warnf("could not write default config: %v", werr)
		}
	}
	a.cfg = cfg

	i18n.Init(cfg.Language)
	if _, ok := i18n.GetAvailableLocales()[cfg.Language]; !ok {
		logging.Warnf("unknown language %q, falling back to English", cfg.Language)
		i18n.SetLang("en")
	}
	if err := logging.SetLevel(cfg.Log.Level); err != nil {
		logging.Warnf("%v", err)
	}
	if a.verbose {
		logging.SetDebug(true)
		db.SetDebug(true)
	}

	a.store = a.openStore(cmd.Context())
	a.ctrl = core.New(a.store, nil)
	return nil
}

func (a *app) openStore(ctx context.Context) db.Store {
	s, err := db.Open(ctx, a.cfg.Database.Type, a.cfg.Database.Dsn)
	if err != nil {
		logging.Errorf("could not open %s database: %v", a.cfg.Database.Type, err)
		r := core.ConnectionResult(err)
		a.startup = &r
		return db.Unavailable(err)
	}
	if err := s.EnsureSchema(ctx); err != nil {
		logging.Errorf("could not prepare schema: %v", err)
		r := core.SchemaResult(err)
		a.startup = &r
	}
	logging.Debugf("using %s database %s", s.Type(), a.cfg.Database.Dsn)
	return s
}

func (a *app) teardown(*cobra.Command, []string) error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}

func (a *app) runInteractive(cmd *cobra.Command, _ []string) error {
	if !stdinIsTerminal() {
		return errors.New(i18n.T("cli.error_no_tty"))
	}

	logFile := a.cfg.Log.File
	if logFile == "" {
		logFile = logging.DefaultLogFile()
	}
	restore, err := logging.RedirectToFile(logFile)
	if err != nil {
		logging.Warnf("%v", err)
	} else {
		defer func() {
			if cerr := restore(); cerr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "closing log file: %v\n", cerr)
			}
		}()
	}

	return runTUI(cmd.Context(), a.ctrl, a.startup)
}
