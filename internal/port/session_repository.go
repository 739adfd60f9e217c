package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Abhijeet-077/Query-AI-Agent/internal/domain"
)

// SessionRepository defines the contract for session state storage.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Update(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteIdleSince(ctx context.Context, cutoff time.Time) int
}
