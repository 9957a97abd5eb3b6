package service

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/grachmannico95/cnab-ledger/internal/domain"
	"github.com/grachmannico95/cnab-ledger/internal/eventbus"
	"github.com/grachmannico95/cnab-ledger/pkg/logger"
)

type IngestionService interface {
	// Ingest processes the content before returning.
	Ingest(ctx context.Context, reader io.Reader, source string) (*domain.Upload, error)
	// Submit queues the content on the event bus and returns the upload id.
	Submit(ctx context.Context, content []byte, source string) (string, error)
	GetUpload(ctx context.Context, uploadID string) (*domain.Upload, error)
}

type ingestionService struct {
	uploads   domain.UploadRepository
	processor CNABProcessorInterface
	eventBus  eventbus.EventBus
	logger    *logger.Logger
}

func NewIngestionService(uploads domain.UploadRepository, processor CNABProcessorInterface, eventBus eventbus.EventBus, log *logger.Logger) IngestionService {
	return &ingestionService{
		uploads:   uploads,
		processor: processor,
		eventBus:  eventBus,
		logger:    log,
	}
}

func (s *ingestionService) Ingest(ctx context.Context, reader io.Reader, source string) (*domain.Upload, error) {
	uploadID := uuid.New().String()
	ctx = logger.WithUploadID(ctx, uploadID)

	if err := s.uploads.CreateUpload(ctx, uploadID, source); err != nil {
		s.logger.Error(ctx, "Failed to create upload",
			"error", err,
		)
		return nil, err
	}
	if err := s.uploads.UpdateUploadStatus(ctx, uploadID, domain.UploadStatusProcessing); err != nil {
		return nil, err
	}

	report, procErr := s.processor.ProcessStream(ctx, reader)
	if report != nil {
		if err := s.uploads.SaveUploadReport(ctx, uploadID, report); err != nil {
			s.logger.Error(ctx, "Failed to save upload report",
				"error", err,
			)
			return nil, err
		}
	}

	status := domain.UploadStatusCompleted
	if procErr != nil || (report != nil && report.Cancelled) {
		status = domain.UploadStatusFailed
	}
	if err := s.uploads.UpdateUploadStatus(ctx, uploadID, status); err != nil {
		return nil, err
	}

	if procErr != nil {
		s.logger.Error(ctx, "CNAB processing failed",
			"error", procErr,
		)
		return nil, procErr
	}

	return s.uploads.GetUpload(ctx, uploadID)
}

func (s *ingestionService) Submit(ctx context.Context, content []byte, source string) (string, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return "", domain.ErrEmptyContent
	}

	uploadID := uuid.New().String()
	ctx = logger.WithUploadID(ctx, uploadID)

	s.logger.Info(ctx, "Creating upload record",
		"source", source,
		"size_bytes", len(content),
	)

	if err := s.uploads.CreateUpload(ctx, uploadID, source); err != nil {
		s.logger.Error(ctx, "Failed to create upload",
			"error", err,
		)
		return "", err
	}

	event := eventbus.Event{
		ID:   uploadID,
		Type: eventbus.EventTypeCNABBatch,
		Payload: eventbus.BatchEvent{
			UploadID: uploadID,
			Source:   source,
			Content:  content,
		},
		Timestamp: time.Now(),
	}

	if err := s.eventBus.Publish(ctx, event); err != nil {
		s.logger.Error(ctx, "Failed to publish batch event",
			"error", err,
		)
		if updateErr := s.uploads.UpdateUploadStatus(ctx, uploadID, domain.UploadStatusFailed); updateErr != nil {
			s.logger.Error(ctx, "Failed to update upload status to failed",
				"error", updateErr,
			)
		}
		return "", err
	}

	s.logger.Info(ctx, "Upload queued")

	return uploadID, nil
}

func (s *ingestionService) GetUpload(ctx context.Context, uploadID string) (*domain.Upload, error) {
	ctx = logger.WithUploadID(ctx, uploadID)

	s.logger.Debug(ctx, "Getting upload status")

	upload, err := s.uploads.GetUpload(ctx, uploadID)
	if err != nil {
		s.logger.Error(ctx, "Failed to get upload",
			"error", err,
		)
		return nil, err
	}

	return upload, nil
}
