package eventbus

import (
	"time"
)

type EventType string

const (
	EventTypeCNABBatch EventType = "cnab_batch"
)

type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
	Retries   int         `json:"retries"`
}

// BatchEvent carries one submitted CNAB content to be ingested.
type BatchEvent struct {
	UploadID string `json:"upload_id"`
	Source   string `json:"source"`
	Content  []byte `json:"content"`
}
