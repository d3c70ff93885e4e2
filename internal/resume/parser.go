package resume

import (
	"regexp"
	"strings"

	"github.com/prepmate/interview-backend/internal/entity"
)

// Parser extracts structured fields from resume text with regex heuristics.
// Everything is best-effort: a field that cannot be found stays empty.
type Parser struct {
	emailPattern *regexp.Regexp
	phonePattern *regexp.Regexp
}

func NewParser() *Parser {
	return &Parser{
		emailPattern: regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`),
		phonePattern: regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	}
}

// Parse extracts structured fields from already-extracted plain text.
func (p *Parser) Parse(text string) *entity.ParsedResume {
	return &entity.ParsedResume{
		Name:       p.extractName(text),
		Email:      p.extractEmail(text),
		Phone:      p.extractPhone(text),
		Skills:     extractSkills(text),
		Experience: extractSection(text, experienceHeaders),
		Education:  extractSection(text, educationHeaders),
		RawText:    text,
	}
}

// extractName assumes the name sits in the first few lines: short, mostly
// alphabetic, and not a contact line.
func (p *Parser) extractName(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i, line := range lines {
		if i == 5 {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" || len(strings.Fields(line)) > 4 {
			continue
		}
		lower := strings.ToLower(line)
		if strings.ContainsAny(line, "@") ||
			strings.Contains(lower, ".com") ||
			strings.Contains(lower, "phone") ||
			strings.Contains(lower, "email") {
			continue
		}
		if strings.IndexFunc(line, func(r rune) bool {
			return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
		}) >= 0 {
			return line
		}
	}
	return ""
}

func (p *Parser) extractEmail(text string) string {
	return p.emailPattern.FindString(text)
}

func (p *Parser) extractPhone(text string) string {
	return strings.TrimSpace(p.phonePattern.FindString(text))
}

// skillKeywords is the flat vocabulary matched case-insensitively against
// the resume body.
var skillKeywords = []string{
	"python", "java", "javascript", "typescript", "react", "angular", "vue",
	"node.js", "django", "flask", "fastapi", "spring", "express", "mongodb",
	"mysql", "postgresql", "redis", "kafka", "aws", "azure", "gcp", "docker",
	"kubernetes", "terraform", "git", "jenkins", "ci/cd", "linux", "html",
	"css", "c++", "c#", "go", "rust", "scala", "kotlin", "swift",
	"machine learning", "data science", "deep learning", "tensorflow",
	"pytorch", "pandas", "numpy", "sql", "nosql", "microservices",
	"rest api", "graphql", "grpc", "agile", "scrum",
}

var skillPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(skillKeywords))
	for _, skill := range skillKeywords {
		patterns[skill] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`)
	}
	return patterns
}()

func extractSkills(text string) []string {
	var found []string
	seen := map[string]struct{}{}
	for _, skill := range skillKeywords {
		match := skillPatterns[skill].FindString(text)
		if match == "" {
			continue
		}
		key := strings.ToLower(match)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		found = append(found, match)
	}
	if found == nil {
		found = []string{}
	}
	return found
}

var (
	experienceHeaders = []string{"experience", "work history", "employment"}
	educationHeaders  = []string{"education", "academic background", "qualifications"}

	allHeaders = []string{
		"experience", "work history", "employment",
		"education", "academic background", "qualifications",
		"skills", "projects", "certifications", "summary", "objective",
	}
)

// extractSection captures the non-empty lines between a matching section
// header and the next recognized header.
func extractSection(text string, headers []string) []string {
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		if isHeader(line, headers) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return []string{}
	}

	var entries []string
	for _, line := range lines[start:] {
		if isHeader(line, allHeaders) {
			break
		}
		if line = strings.TrimSpace(line); line != "" {
			entries = append(entries, line)
		}
	}
	if entries == nil {
		entries = []string{}
	}
	return entries
}

// isHeader reports whether a line is a standalone section header: short and
// consisting of the header phrase, optionally with a trailing colon.
func isHeader(line string, headers []string) bool {
	clean := strings.ToLower(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ":")))
	if clean == "" || len(clean) > 30 {
		return false
	}
	for _, header := range headers {
		if clean == header {
			return true
		}
	}
	return false
}
