package resume

import (
	"github.com/prepmate/interview-backend/internal/entity"
)

type TextExtractor interface {
	ExtractText(data []byte, filename string) (string, error)
}

type ResumeParser interface {
	Parse(text string) *entity.ParsedResume
}
