package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prepmate/interview-backend/internal/entity"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		answer     string
		degenerate bool
	}{
		{"stoplist asdf", "asdf", true},
		{"stoplist xyz", "xyz", true},
		{"stoplist mixed case", "  TESTING  ", true},
		{"too short", "idk", true},
		{"empty", "", true},
		{"keyboard mash", "aaa bbb aba", true},
		{"repeated char", "aaaaaaaaaaaa", true},
		{"digits only", "111000111", true},
		{"real answer", "I led a team of 5 engineers to redesign our caching layer", false},
		{"short but real", "Yes, in 2019 at Acme", false},
		{"punctuation escapes charset check", "a, b?", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.answer)
			assert.Equal(t, tt.degenerate, got.Degenerate)
			if tt.degenerate {
				assert.NotEmpty(t, got.Reason)
			}
		})
	}
}

func TestApplyOverrideWinsOverModelScore(t *testing.T) {
	result := entity.EvaluationResult{
		Score:     9,
		Feedback:  "great depth",
		Strengths: []string{"detail"},
		Relevant:  true,
	}

	ApplyOverride(&result, Classify("asdf"))

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, degenerateFeedback, result.Feedback)
	assert.Empty(t, result.Strengths)
	assert.Equal(t, []string{degenerateImprovement}, result.Improvements)
	assert.False(t, result.Relevant)
}

func TestApplyOverrideNoopForGenuineAnswer(t *testing.T) {
	result := entity.EvaluationResult{Score: 7, Feedback: "good", Relevant: true}
	ApplyOverride(&result, Classify("I migrated our billing service to event sourcing"))
	assert.Equal(t, 7.0, result.Score)
	assert.Equal(t, "good", result.Feedback)
}
