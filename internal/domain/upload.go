package domain

import "time"

type LineOutcome string

const (
	OutcomeCreated   LineOutcome = "created"
	OutcomeDuplicate LineOutcome = "duplicate"
	OutcomeInvalid   LineOutcome = "invalid"
	OutcomeFailed    LineOutcome = "failed"
)

type FailureKind string

const (
	FailureMalformed   FailureKind = "malformed"
	FailureInvalid     FailureKind = "invalid"
	FailurePersistence FailureKind = "persistence"
)

type LineFailure struct {
	LineNumber int         `json:"line_number"`
	Kind       FailureKind `json:"kind"`
	Reason     string      `json:"reason"`
}

// BatchReport summarizes one submission. Every non-blank line ends up in
// exactly one of Created, DuplicateLines or Failures.
type BatchReport struct {
	TotalLines     int           `json:"total_lines"`
	Processed      int           `json:"processed"`
	Created        int           `json:"created"`
	DuplicateLines []int         `json:"duplicate_lines"`
	BlankLines     []int         `json:"blank_lines"`
	Failures       []LineFailure `json:"failures"`
	Cancelled      bool          `json:"cancelled"`
}

func NewBatchReport() *BatchReport {
	return &BatchReport{
		DuplicateLines: []int{},
		BlankLines:     []int{},
		Failures:       []LineFailure{},
	}
}

func (r *BatchReport) RecordCreated() {
	r.Processed++
	r.Created++
}

func (r *BatchReport) RecordDuplicate(lineNumber int) {
	r.Processed++
	r.DuplicateLines = append(r.DuplicateLines, lineNumber)
}

func (r *BatchReport) RecordBlank(lineNumber int) {
	r.BlankLines = append(r.BlankLines, lineNumber)
}

func (r *BatchReport) RecordFailure(lineNumber int, kind FailureKind, reason string) {
	r.Processed++
	r.Failures = append(r.Failures, LineFailure{LineNumber: lineNumber, Kind: kind, Reason: reason})
}

func (r *BatchReport) HasPersistenceFailures() bool {
	for _, f := range r.Failures {
		if f.Kind == FailurePersistence {
			return true
		}
	}
	return false
}

type UploadStatus string

const (
	UploadStatusQueued     UploadStatus = "queued"
	UploadStatusProcessing UploadStatus = "processing"
	UploadStatusCompleted  UploadStatus = "completed"
	UploadStatusFailed     UploadStatus = "failed"
)

type Upload struct {
	ID          string       `json:"id"`
	Source      string       `json:"source"`
	Status      UploadStatus `json:"status"`
	Report      *BatchReport `json:"report,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
}
