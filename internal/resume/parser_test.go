package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Smith
Senior Backend Engineer
jane.smith@example.com | +1 (555) 123-4567

Summary:
Backend engineer with 8 years of experience building distributed systems.

Experience:
2019 - Present, Acme Corp, Staff Engineer
Built event-driven services in Go and Kafka on Kubernetes.
2015 - 2019, Widgets Inc, Backend Engineer
Developed REST API services with Python and PostgreSQL.

Education:
B.Sc. Computer Science, State University, 2015

Skills:
Go, Python, PostgreSQL, Kafka, Docker, Kubernetes, Terraform
`

func TestParseSampleResume(t *testing.T) {
	parsed := NewParser().Parse(sampleResume)

	assert.Equal(t, "Jane Smith", parsed.Name)
	assert.Equal(t, "jane.smith@example.com", parsed.Email)
	assert.NotEmpty(t, parsed.Phone)

	assert.Contains(t, parsed.Skills, "Go")
	assert.Contains(t, parsed.Skills, "Python")
	assert.Contains(t, parsed.Skills, "PostgreSQL")
	assert.Contains(t, parsed.Skills, "Kubernetes")

	require.NotEmpty(t, parsed.Experience)
	assert.Contains(t, parsed.Experience[0], "Acme Corp")

	require.NotEmpty(t, parsed.Education)
	assert.Contains(t, parsed.Education[0], "State University")

	assert.Equal(t, sampleResume, parsed.RawText)
}

func TestParseEmptyText(t *testing.T) {
	parsed := NewParser().Parse("")

	assert.Empty(t, parsed.Name)
	assert.Empty(t, parsed.Email)
	assert.NotNil(t, parsed.Skills)
	assert.NotNil(t, parsed.Experience)
	assert.NotNil(t, parsed.Education)
}

func TestExtractNameSkipsContactLines(t *testing.T) {
	text := "jane@example.com\nphone: 555-123-4567\nJane Smith\n"
	parsed := NewParser().Parse(text)
	assert.Equal(t, "Jane Smith", parsed.Name)
}

func TestSkillsDeduplicated(t *testing.T) {
	parsed := NewParser().Parse("Python python PYTHON")
	count := 0
	for _, s := range parsed.Skills {
		if s == "Python" || s == "python" || s == "PYTHON" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
