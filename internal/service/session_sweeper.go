package service

import (
	"context"
	"log"
	"time"

	"github.com/Abhijeet-077/Query-AI-Agent/internal/config"
	"github.com/Abhijeet-077/Query-AI-Agent/internal/port"
)

// SessionSweeper evicts idle sessions on a fixed interval so abandoned
// documents do not accumulate in memory.
type SessionSweeper struct {
	repo port.SessionRepository
	cfg  config.SessionConfig
}

// NewSessionSweeper creates a new SessionSweeper.
func NewSessionSweeper(repo port.SessionRepository, cfg config.SessionConfig) *SessionSweeper {
	return &SessionSweeper{repo: repo, cfg: cfg}
}

// Start runs the sweep loop until ctx is canceled.
func (w *SessionSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.SweepInterval)
	defer ticker.Stop()

	log.Printf("sessionSweeper: started (interval=%s, ttl=%s)", w.cfg.SweepInterval, w.cfg.TTL)

	for {
		select {
		case <-ctx.Done():
			log.Printf("sessionSweeper: shutting down")
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-w.cfg.TTL)
			if removed := w.repo.DeleteIdleSince(ctx, cutoff); removed > 0 {
				log.Printf("sessionSweeper: evicted %d idle session(s)", removed)
			}
		}
	}
}
