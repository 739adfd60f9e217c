package port

import (
	"context"

	"github.com/Abhijeet-077/Query-AI-Agent/internal/domain"
)

// ExtractInput carries the data needed for entity extraction.
type ExtractInput struct {
	Text string
}

// EntityExtractor abstracts the LLM-based structured extraction capability:
// given normalized document text, return typed entity records. The exchange
// is a single request/response; no streaming or partial results.
type EntityExtractor interface {
	Extract(ctx context.Context, input ExtractInput) ([]domain.EntityRecord, error)
}
