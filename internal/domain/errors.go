package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnsupportedFormat  = errors.New("unsupported document format")
	ErrDocumentExtraction = errors.New("document text extraction failed")
	ErrEmptyResponse      = errors.New("extraction service returned an empty response")
	ErrMalformedResponse  = errors.New("extraction service returned a malformed response")
	ErrExtractionService  = errors.New("extraction service call failed")
	ErrMissingColumns     = errors.New("ground-truth CSV is missing required columns")
	ErrNoDocument         = errors.New("no document text loaded for this session")
	ErrFileTooLarge       = errors.New("file exceeds maximum allowed size")
)
