package normalizer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/Abhijeet-077/Query-AI-Agent/internal/domain"
)

// Document is a raw input document: a byte stream plus its declared MIME type.
type Document struct {
	Bytes       []byte
	ContentType string
}

// UnsupportedFormatError reports a declared content type outside the
// accepted set, naming the offending type.
type UnsupportedFormatError struct {
	ContentType string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format: %q", e.ContentType)
}

func (e *UnsupportedFormatError) Unwrap() error {
	return domain.ErrUnsupportedFormat
}

// Normalize converts an input document into a single plain-text blob.
// Plain text passes through verbatim as UTF-8. PDF text is extracted
// page-by-page in page order, one newline-terminated block per page. A
// failure on any page fails the whole operation; partial text from earlier
// pages is discarded.
func Normalize(doc Document) (string, error) {
	switch doc.ContentType {
	case "text/plain":
		return string(doc.Bytes), nil
	case "application/pdf":
		return extractPDFText(doc.Bytes)
	default:
		return "", &UnsupportedFormatError{ContentType: doc.ContentType}
	}
}

func extractPDFText(content []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("%w: opening pdf: %v", domain.ErrDocumentExtraction, err)
	}

	var text strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			return "", fmt.Errorf("%w: page %d is unreadable", domain.ErrDocumentExtraction, i)
		}
		pageText, err := extractPageText(page)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", domain.ErrDocumentExtraction, i, err)
		}
		text.WriteString(pageText)
		text.WriteString("\n")
	}
	return text.String(), nil
}

// extractPageText extracts the text of a single page. The underlying
// content-stream interpreter panics on malformed streams, so panics are
// converted into errors here.
func extractPageText(page pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("decoding page content: %v", r)
		}
	}()

	text, err = page.GetPlainText(nil)
	if err != nil {
		return "", err
	}
	return text, nil
}
