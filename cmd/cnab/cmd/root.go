// Package cmd provides the cnab CLI commands.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/grachmannico95/cnab-ledger/internal/cnab"
	"github.com/grachmannico95/cnab-ledger/internal/config"
	"github.com/grachmannico95/cnab-ledger/internal/storage"
	"github.com/grachmannico95/cnab-ledger/pkg/logger"
	"github.com/spf13/cobra"
)

// app holds the flags and storage shared by the subcommands.
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	ledger  storage.Ledger
	decoder *cnab.Decoder

	driver     string
	sqlitePath string
	debug      bool
}

func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "cnab",
		Short: "Ingest CNAB files and query store balances",
		Long: `cnab reads fixed-width CNAB transaction files into the ledger
and prints stores with their transactions and balances.

Storage is taken from the environment (.env is honoured), the same
way the HTTP server configures it.

Example:
  cnab ingest CNAB.txt
  cnab stores --cpf 096.206.760-17 --page 1 --page-size 10`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&a.driver, "driver", "", "storage driver: memory, sqlite or postgres (default from STORAGE_DRIVER)")
	root.PersistentFlags().StringVar(&a.sqlitePath, "sqlite-path", "", "SQLite database file (default from SQLITE_PATH)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	root.AddCommand(newIngestCmd(a))
	root.AddCommand(newStoresCmd(a))

	return root
}

// run opens storage around a subcommand body.
func (a *app) run(body func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := a.open(cmd); err != nil {
			return err
		}
		defer a.close()

		return body(cmd, args)
	}
}

func (a *app) open(cmd *cobra.Command) error {
	a.cfg = config.Load()
	if a.driver != "" {
		a.cfg.Storage.Driver = a.driver
	}
	if a.sqlitePath != "" {
		a.cfg.Storage.SQLitePath = a.sqlitePath
	}

	level := "warn"
	if a.debug {
		level = "debug"
	}
	a.log = logger.New(level)

	a.decoder = cnab.NewDecoder(a.cfg.Ingest.UTCOffsetHours)

	ledger, err := storage.Open(cmd.Context(), a.cfg.Storage, a.decoder.Location(), a.log)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	a.ledger = ledger

	return nil
}

func (a *app) close() {
	if err := a.ledger.Close(); err != nil {
		a.log.Error(context.Background(), "Failed to close storage",
			"error", err,
		)
	}
	_ = a.log.Sync()
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
