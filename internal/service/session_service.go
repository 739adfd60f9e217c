package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Abhijeet-077/Query-AI-Agent/internal/config"
	"github.com/Abhijeet-077/Query-AI-Agent/internal/domain"
	"github.com/Abhijeet-077/Query-AI-Agent/internal/entitycsv"
	"github.com/Abhijeet-077/Query-AI-Agent/internal/normalizer"
	"github.com/Abhijeet-077/Query-AI-Agent/internal/port"
	"github.com/Abhijeet-077/Query-AI-Agent/internal/reconcile"
	"github.com/Abhijeet-077/Query-AI-Agent/internal/xlsxexport"
)

// UploadInput carries an uploaded document.
type UploadInput struct {
	File   multipart.File
	Header *multipart.FileHeader
}

// SessionService orchestrates the extraction-and-reconciliation pipeline
// for per-document sessions. It owns the shared-state policy: stale
// extraction output and reconciliation results are discarded before a new
// run starts, and stay cleared when the run fails.
type SessionService interface {
	Upload(ctx context.Context, input UploadInput) (*domain.Session, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Extract(ctx context.Context, id uuid.UUID) ([]domain.EntityRecord, error)
	Verify(ctx context.Context, id uuid.UUID, groundTruthCSV []byte) (*domain.ReconciliationResult, error)
	ExportCSV(ctx context.Context, id uuid.UUID) ([]byte, error)
	ExportXLSX(ctx context.Context, id uuid.UUID) ([]byte, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type sessionService struct {
	repo      port.SessionRepository
	extractor port.EntityExtractor
	cfg       *config.UploadConfig
}

// NewSessionService creates a new SessionService.
func NewSessionService(repo port.SessionRepository, extractor port.EntityExtractor, cfg *config.UploadConfig) SessionService {
	return &sessionService{
		repo:      repo,
		extractor: extractor,
		cfg:       cfg,
	}
}

// Upload validates, normalizes, and stores an uploaded document as a new
// session. Rejection happens before normalization: unknown content types
// and oversized files never reach the normalizer.
func (s *sessionService) Upload(ctx context.Context, input UploadInput) (*domain.Session, error) {
	contentType := resolveContentType(input.Header)
	if _, ok := domain.AllowedContentTypes[contentType]; !ok {
		return nil, &normalizer.UnsupportedFormatError{ContentType: contentType}
	}

	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	raw, err := io.ReadAll(input.File)
	if err != nil {
		return nil, fmt.Errorf("%w: reading upload: %v", domain.ErrDocumentExtraction, err)
	}

	text, err := normalizer.Normalize(normalizer.Document{
		Bytes:       raw,
		ContentType: contentType,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &domain.Session{
		ID:           uuid.New(),
		DocumentName: input.Header.Filename,
		ContentType:  contentType,
		Text:         text,
		CreatedAt:    now,
		LastActiveAt: now,
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	log.Printf("sessionService.Upload: session %s created for %q (%s, %d bytes, %d chars)",
		session.ID, session.DocumentName, contentType, input.Header.Size, len(text))
	return session, nil
}

func (s *sessionService) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	return s.repo.GetByID(ctx, id)
}

// Extract runs entity extraction on the session's normalized text. Stale
// records and any previous reconciliation result are discarded before the
// call and remain cleared if it fails, so no stale output is ever shown
// with fresh input.
func (s *sessionService) Extract(ctx context.Context, id uuid.UUID) ([]domain.EntityRecord, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Text == "" {
		return nil, domain.ErrNoDocument
	}

	session.Records = nil
	session.Result = nil
	if err := s.repo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("clearing stale results: %w", err)
	}

	records, err := s.extractor.Extract(ctx, port.ExtractInput{Text: session.Text})
	if err != nil {
		log.Printf("sessionService.Extract: session %s extraction failed: %v", id, err)
		return nil, err
	}

	session.Records = records
	if err := s.repo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("storing extraction output: %w", err)
	}

	log.Printf("sessionService.Extract: session %s extracted %d record(s)", id, len(records))
	return records, nil
}

// Verify parses an uploaded ground-truth CSV and reconciles it against the
// session's most recent extraction output. Each run produces a fresh
// result that supersedes the previous one.
func (s *sessionService) Verify(ctx context.Context, id uuid.UUID, groundTruthCSV []byte) (*domain.ReconciliationResult, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	truth, err := entitycsv.Decode(string(groundTruthCSV))
	if err != nil {
		return nil, err
	}

	result := reconcile.Compare(session.Records, truth)
	session.Result = &result
	if err := s.repo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("storing reconciliation result: %w", err)
	}

	log.Printf("sessionService.Verify: session %s reconciled (%d matched, %d extractor-only, %d ground-truth-only)",
		id, len(result.Matches), len(result.ExtractorOnly), len(result.GroundTruthOnly))
	return &result, nil
}

func (s *sessionService) ExportCSV(ctx context.Context, id uuid.UUID) ([]byte, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return []byte(entitycsv.Encode(session.Records)), nil
}

func (s *sessionService) ExportXLSX(ctx context.Context, id uuid.UUID) ([]byte, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return xlsxexport.Write(session.Records, session.Result)
}

func (s *sessionService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// resolveContentType returns the declared MIME type of a multipart part,
// falling back to the file extension when the part carries none.
func resolveContentType(header *multipart.FileHeader) string {
	declared := header.Header.Get("Content-Type")
	if i := strings.Index(declared, ";"); i >= 0 {
		declared = declared[:i]
	}
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	if mapped, ok := domain.AllowedExtensions[ext]; ok {
		return mapped
	}
	return declared
}
