package service

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/grachmannico95/cnab-ledger/internal/cnab"
	"github.com/grachmannico95/cnab-ledger/internal/domain"
	"github.com/grachmannico95/cnab-ledger/pkg/logger"
)

// Lines longer than this are reported as malformed and skipped.
const maxLineBytes = 64 * 1024

type CNABProcessorInterface interface {
	ProcessStream(ctx context.Context, reader io.Reader) (*domain.BatchReport, error)
}

// CNABProcessor feeds lines to the ingestor strictly in order. A bad line
// is recorded in the report and never stops the batch.
type CNABProcessor struct {
	decoder  *cnab.Decoder
	ingestor LineIngestor
	logger   *logger.Logger
}

func NewCNABProcessor(decoder *cnab.Decoder, ingestor LineIngestor, log *logger.Logger) *CNABProcessor {
	return &CNABProcessor{
		decoder:  decoder,
		ingestor: ingestor,
		logger:   log,
	}
}

// ProcessStream returns the report built so far together with any read
// error. Cancelling ctx stops before the next line; committed lines stay.
func (p *CNABProcessor) ProcessStream(ctx context.Context, reader io.Reader) (*domain.BatchReport, error) {
	p.logger.Info(ctx, "Starting CNAB processing")

	lines := newLineReader(reader)

	report := domain.NewBatchReport()
	lineNumber := 0

	for {
		raw, oversized, readErr := lines.next()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			p.logger.Error(ctx, "Failed to read CNAB content",
				"line", lineNumber+1,
				"error", readErr,
			)
			return report, fmt.Errorf("read line %d: %w", lineNumber+1, readErr)
		}

		if ctx.Err() != nil {
			report.Cancelled = true
			break
		}

		lineNumber++
		report.TotalLines = lineNumber

		if oversized {
			err := &cnab.MalformedLineError{
				LineNumber: lineNumber,
				Reason:     fmt.Sprintf("line exceeds %d bytes", maxLineBytes),
			}
			p.logger.Warn(ctx, "Line too long, skipping",
				"line", lineNumber,
			)
			report.RecordFailure(lineNumber, domain.FailureMalformed, err.Error())
			continue
		}

		line := strings.TrimSuffix(raw, "\r")
		if strings.TrimSpace(line) == "" {
			p.logger.Warn(ctx, "Line is empty, skipping", "line", lineNumber)
			report.RecordBlank(lineNumber)
			continue
		}

		rec, err := p.decoder.Decode(line, lineNumber)
		if err != nil {
			p.logger.Warn(ctx, "Failed to decode line",
				"line", lineNumber,
				"error", err,
			)
			report.RecordFailure(lineNumber, domain.FailureMalformed, err.Error())
			continue
		}

		outcome, err := p.ingestor.Ingest(ctx, rec, lineNumber, cnab.HashLine(line))
		if outcome == domain.OutcomeFailed && ctx.Err() != nil {
			report.TotalLines = lineNumber - 1
			report.Cancelled = true
			break
		}

		switch outcome {
		case domain.OutcomeCreated:
			report.RecordCreated()
		case domain.OutcomeDuplicate:
			report.RecordDuplicate(lineNumber)
		case domain.OutcomeInvalid:
			report.RecordFailure(lineNumber, domain.FailureInvalid, errorText(err))
		default:
			report.RecordFailure(lineNumber, domain.FailurePersistence, errorText(err))
		}
	}

	if report.Cancelled {
		p.logger.Warn(ctx, "CNAB processing cancelled",
			"lines_read", lineNumber,
			"created", report.Created,
		)
	} else {
		p.logger.Info(ctx, "CNAB processing completed",
			"total_lines", report.TotalLines,
			"created", report.Created,
			"duplicates", len(report.DuplicateLines),
			"blank", len(report.BlankLines),
			"failures", len(report.Failures),
		)
	}

	return report, nil
}

// lineReader splits on '\n' without a line length ceiling. Content beyond
// maxLineBytes is drained and the line flagged as oversized.
type lineReader struct {
	r *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

func (lr *lineReader) next() (string, bool, error) {
	var (
		buf       []byte
		oversized bool
	)
	for {
		chunk, isPrefix, err := lr.r.ReadLine()
		if err != nil {
			return "", false, err
		}
		if !oversized {
			if len(buf)+len(chunk) > maxLineBytes {
				oversized = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return string(buf), oversized, nil
		}
	}
}

func errorText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
