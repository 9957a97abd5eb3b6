package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/grachmannico95/cnab-ledger/internal/domain"
	"github.com/grachmannico95/cnab-ledger/internal/service"
	"github.com/spf13/cobra"
)

var errIngestFailures = errors.New("some lines could not be stored")

type fileReport struct {
	File   string              `json:"file"`
	Report *domain.BatchReport `json:"report"`
}

func newIngestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ingest <file>...",
		Short: "Ingest CNAB files into the ledger",
		Long: `Ingest reads each file line by line and records its transactions.
Files are processed in the order given. Lines already ingested are
reported as duplicates, so re-running a file is safe.

Exits non-zero when a line failed because of storage errors.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			ingestor := service.NewTransactionIngestor(a.ledger, a.log)
			processor := service.NewCNABProcessor(a.decoder, ingestor, a.log)

			reports := make([]fileReport, 0, len(args))
			failed := false
			for _, path := range args {
				report, err := ingestFile(cmd, processor, path)
				if err != nil {
					return err
				}
				reports = append(reports, fileReport{File: filepath.Base(path), Report: report})
				if report.HasPersistenceFailures() || report.Cancelled {
					failed = true
				}
			}

			if err := printJSON(cmd, reports); err != nil {
				return err
			}
			if failed {
				return errIngestFailures
			}
			return nil
		}),
	}
}

func ingestFile(cmd *cobra.Command, processor *service.CNABProcessor, path string) (*domain.BatchReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	report, err := processor.ProcessStream(cmd.Context(), f)
	if err != nil {
		return nil, fmt.Errorf("ingest %s: %w", path, err)
	}
	return report, nil
}
