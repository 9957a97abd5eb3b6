package storage

import (
	"context"
	"sync"
	"time"

	"github.com/grachmannico95/cnab-ledger/internal/domain"
)

// UploadStore tracks asynchronous submissions and the bus events already
// handled for them.
type UploadStore struct {
	uploads         map[string]*domain.Upload
	processedEvents map[string]bool
	mu              sync.RWMutex
}

func NewUploadStore() *UploadStore {
	return &UploadStore{
		uploads:         make(map[string]*domain.Upload),
		processedEvents: make(map[string]bool),
	}
}

func (s *UploadStore) CreateUpload(ctx context.Context, uploadID, source string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.uploads[uploadID] = &domain.Upload{
		ID:        uploadID,
		Source:    source,
		Status:    domain.UploadStatusQueued,
		CreatedAt: time.Now(),
	}

	return nil
}

// GetUpload returns a snapshot; later updates do not affect it.
func (s *UploadStore) GetUpload(ctx context.Context, uploadID string) (*domain.Upload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	upload, exists := s.uploads[uploadID]
	if !exists {
		return nil, domain.ErrUploadNotFound
	}

	snapshot := *upload
	if upload.Report != nil {
		report := *upload.Report
		snapshot.Report = &report
	}
	return &snapshot, nil
}

func (s *UploadStore) UpdateUploadStatus(ctx context.Context, uploadID string, status domain.UploadStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	upload, exists := s.uploads[uploadID]
	if !exists {
		return domain.ErrUploadNotFound
	}

	upload.Status = status
	if status == domain.UploadStatusCompleted || status == domain.UploadStatusFailed {
		now := time.Now()
		upload.CompletedAt = &now
	}

	return nil
}

func (s *UploadStore) SaveUploadReport(ctx context.Context, uploadID string, report *domain.BatchReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	upload, exists := s.uploads[uploadID]
	if !exists {
		return domain.ErrUploadNotFound
	}

	upload.Report = report

	return nil
}

func (s *UploadStore) IsEventProcessed(ctx context.Context, eventID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.processedEvents[eventID], nil
}

func (s *UploadStore) MarkEventProcessed(ctx context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.processedEvents[eventID] = true

	return nil
}
