package extractor

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/prepmate/interview-backend/internal/entity"
)

// Extractor turns uploaded resume files into plain text. Format is picked by
// file extension; unknown extensions are rejected rather than guessed.
type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

func (e *Extractor) ExtractText(data []byte, filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDOCX(data)
	case ".txt", ".md":
		return extractPlainText(data)
	default:
		return "", fmt.Errorf("%w: %s", entity.ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

func extractPlainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: file is not valid utf-8 text", entity.ErrUnsupportedFormat)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("%w: file is empty", entity.ErrUnsupportedFormat)
	}
	return text, nil
}
