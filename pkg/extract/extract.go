// Package extract pulls plain text out of uploaded documents.
// Supported: PDF (page-wise), DOCX (paragraph-wise), TXT.
package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupportedFormat is returned for file types no extractor handles.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// ExtractError wraps a per-source extraction failure.
type ExtractError struct {
	Source string
	Err    error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Source, e.Err)
}

func (e *ExtractError) Unwrap() error { return e.Err }

// Extractor converts a document on disk into plain text.
type Extractor interface {
	Extract(path string) (string, error)
}

// Result carries extracted text plus basic metadata.
type Result struct {
	Text      string `json:"text"`
	Filename  string `json:"filename"`
	FileType  string `json:"file_type"`
	WordCount int    `json:"word_count"`
}

// Documents dispatches on file extension.
type Documents struct{}

// NewDocuments returns the default multi-format extractor.
func NewDocuments() *Documents {
	return &Documents{}
}

// Extract returns the plain text of any supported file.
func (d *Documents) Extract(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDF(path)
	case ".docx":
		return extractDOCX(path)
	case ".doc":
		// Legacy binary .doc is not a zip container; the DOCX reader
		// cannot open it.
		return "", fmt.Errorf("%w: .doc (convert to .docx)", ErrUnsupportedFormat)
	case ".txt":
		return extractTXT(path)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ExtractFile extracts text and wraps it with metadata.
func (d *Documents) ExtractFile(path string) (*Result, error) {
	text, err := d.Extract(path)
	if err != nil {
		return nil, err
	}
	return &Result{
		Text:      text,
		Filename:  filepath.Base(path),
		FileType:  strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."),
		WordCount: len(strings.Fields(text)),
	}, nil
}
