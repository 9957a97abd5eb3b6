package eventbus

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/grachmannico95/cnab-ledger/internal/domain"
	"github.com/grachmannico95/cnab-ledger/pkg/logger"
	"github.com/grachmannico95/cnab-ledger/pkg/retry"
)

// ErrPersistenceFailures marks a batch whose report still holds lines
// that failed on storage. Re-running it is safe.
var ErrPersistenceFailures = errors.New("batch has persistence failures")

type BatchProcessor interface {
	ProcessStream(ctx context.Context, reader io.Reader) (*domain.BatchReport, error)
}

// BatchConsumer ingests queued CNAB submissions.
type BatchConsumer struct {
	uploads     domain.UploadRepository
	processor   BatchProcessor
	logger      *logger.Logger
	workerCount int
	timeout     time.Duration
}

func NewBatchConsumer(uploads domain.UploadRepository, processor BatchProcessor, log *logger.Logger, workerCount int, timeout time.Duration) *BatchConsumer {
	return &BatchConsumer{
		uploads:     uploads,
		processor:   processor,
		logger:      log,
		workerCount: workerCount,
		timeout:     timeout,
	}
}

func (bc *BatchConsumer) Consume(ctx context.Context, event Event) error {
	processed, err := bc.uploads.IsEventProcessed(ctx, event.ID)
	if err != nil {
		bc.logger.Error(ctx, "Failed to check event processed status",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	if processed {
		bc.logger.Debug(ctx, "Event already processed, skipping",
			"event_id", event.ID,
		)
		return nil
	}

	payload, ok := event.Payload.(BatchEvent)
	if !ok {
		bc.logger.Error(ctx, "Invalid payload type for batch event",
			"event_id", event.ID,
		)
		return retry.Permanent(fmt.Errorf("invalid payload type %T", event.Payload))
	}

	ctx = logger.WithUploadID(ctx, payload.UploadID)

	if err := bc.uploads.UpdateUploadStatus(ctx, payload.UploadID, domain.UploadStatusProcessing); err != nil {
		if errors.Is(err, domain.ErrUploadNotFound) {
			return retry.Permanent(err)
		}
		return err
	}

	processCtx := ctx
	if bc.timeout > 0 {
		var cancel context.CancelFunc
		processCtx, cancel = context.WithTimeout(ctx, bc.timeout)
		defer cancel()
	}

	bc.logger.Info(ctx, "Processing batch",
		"event_id", event.ID,
		"source", payload.Source,
		"attempt", event.Retries+1,
		"size_bytes", len(payload.Content),
	)

	report, err := bc.processor.ProcessStream(processCtx, bytes.NewReader(payload.Content))
	if report != nil {
		if saveErr := bc.uploads.SaveUploadReport(ctx, payload.UploadID, report); saveErr != nil {
			bc.logger.Error(ctx, "Failed to save upload report",
				"error", saveErr,
			)
			return saveErr
		}
	}
	if err != nil {
		bc.logger.Error(ctx, "Batch processing failed",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	if report.HasPersistenceFailures() {
		bc.logger.Warn(ctx, "Batch finished with persistence failures, will retry",
			"event_id", event.ID,
			"failures", len(report.Failures),
		)
		return ErrPersistenceFailures
	}

	status := domain.UploadStatusCompleted
	if report.Cancelled {
		status = domain.UploadStatusFailed
	}
	if err := bc.uploads.UpdateUploadStatus(ctx, payload.UploadID, status); err != nil {
		bc.logger.Error(ctx, "Failed to update upload status",
			"status", status,
			"error", err,
		)
		return err
	}

	if err := bc.uploads.MarkEventProcessed(ctx, event.ID); err != nil {
		bc.logger.Error(ctx, "Failed to mark event as processed",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	bc.logger.Info(ctx, "Batch processed",
		"event_id", event.ID,
		"status", status,
		"created", report.Created,
		"duplicates", len(report.DuplicateLines),
		"failures", len(report.Failures),
	)

	return nil
}

// OnFailure marks the upload failed once the bus gives up on it.
func (bc *BatchConsumer) OnFailure(ctx context.Context, event Event, err error) {
	payload, ok := event.Payload.(BatchEvent)
	if !ok {
		return
	}
	ctx = logger.WithUploadID(ctx, payload.UploadID)

	if updateErr := bc.uploads.UpdateUploadStatus(ctx, payload.UploadID, domain.UploadStatusFailed); updateErr != nil {
		bc.logger.Error(ctx, "Failed to mark upload as failed",
			"error", updateErr,
		)
	}
	if markErr := bc.uploads.MarkEventProcessed(ctx, event.ID); markErr != nil {
		bc.logger.Error(ctx, "Failed to mark event as processed",
			"event_id", event.ID,
			"error", markErr,
		)
	}

	bc.logger.Warn(ctx, "Batch abandoned",
		"event_id", event.ID,
		"cause", err.Error(),
	)
}

func (bc *BatchConsumer) GetWorkerCount() int {
	return bc.workerCount
}
