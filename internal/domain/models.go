package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntityRecord is the canonical unit flowing through the pipeline: one
// identifier/name/type triple linked by a fixed relation. Instances are
// created by the extractor or the CSV codec and are immutable afterwards.
type EntityRecord struct {
	Identifier string     `json:"identifier"`
	Relation   Relation   `json:"relation"`
	EntityName string     `json:"entityName"`
	EntityType EntityType `json:"entityType"`
}

// Valid reports whether the record carries a non-empty identifier and name.
// Records failing this are dropped silently during parsing, not surfaced
// as errors.
func (r EntityRecord) Valid() bool {
	return r.Identifier != "" && r.EntityName != ""
}

// ReconciliationResult partitions extracted and ground-truth records by
// identifier membership. Matches and extractor-only entries are drawn from
// the extracted set; ground-truth-only entries from the ground-truth set.
// A fresh result supersedes the previous one on every verification run.
type ReconciliationResult struct {
	Matches         []EntityRecord `json:"matches"`
	ExtractorOnly   []EntityRecord `json:"extractor_only"`
	GroundTruthOnly []EntityRecord `json:"ground_truth_only"`
}

// Session holds the per-document state owned by the orchestrating caller:
// the normalized text of the currently loaded document, the most recent
// extraction output, and the most recent reconciliation result. Nothing
// here survives a process restart.
type Session struct {
	ID           uuid.UUID             `json:"id"`
	DocumentName string                `json:"document_name"`
	ContentType  string                `json:"content_type"`
	Text         string                `json:"-"`
	Records      []EntityRecord        `json:"records,omitempty"`
	Result       *ReconciliationResult `json:"result,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	LastActiveAt time.Time             `json:"last_active_at"`
}

// SessionSummary is the API-facing view of a session.
type SessionSummary struct {
	ID           uuid.UUID `json:"id"`
	DocumentName string    `json:"document_name"`
	ContentType  string    `json:"content_type"`
	TextLength   int       `json:"text_length"`
	RecordCount  int       `json:"record_count"`
	HasResult    bool      `json:"has_result"`
	CreatedAt    time.Time `json:"created_at"`
}

// Summarize builds the API-facing view of s.
func (s *Session) Summarize() SessionSummary {
	return SessionSummary{
		ID:           s.ID,
		DocumentName: s.DocumentName,
		ContentType:  s.ContentType,
		TextLength:   len(s.Text),
		RecordCount:  len(s.Records),
		HasResult:    s.Result != nil,
		CreatedAt:    s.CreatedAt,
	}
}
