package interview

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceQuestionsRoundTrip(t *testing.T) {
	original := []string{
		"Tell me about a time you led a team?",
		"How do you handle conflicting priorities?",
		"What is your biggest professional achievement?",
	}
	raw, err := json.Marshal(original)
	require.NoError(t, err)

	got := CoerceQuestions(string(raw), len(original))
	assert.Equal(t, original, got)
}

func TestCoerceQuestionsFencedJSON(t *testing.T) {
	raw := "```json\n[\"First question?\", \"Second question?\"]\n```"
	got := CoerceQuestions(raw, 2)
	assert.Equal(t, []string{"First question?", "Second question?"}, got)
}

func TestCoerceQuestionsLineHeuristic(t *testing.T) {
	raw := "1. What motivates you in your career?\n" +
		"2) Describe your leadership style\n" +
		"- Why this company?\n" +
		"ok\n"

	got := CoerceQuestions(raw, 10)
	assert.Equal(t, []string{
		"What motivates you in your career?",
		"Describe your leadership style?",
		"Why this company?",
	}, got)
}

func TestCoerceQuestionsHeuristicRespectsLimit(t *testing.T) {
	raw := "First plausible question here?\nSecond plausible question here?\nThird plausible question here?"
	got := CoerceQuestions(raw, 2)
	assert.Len(t, got, 2)
}

func TestCoerceQuestionsGarbageYieldsEmpty(t *testing.T) {
	got := CoerceQuestions("", 5)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCoerceEvaluationFencedPartial(t *testing.T) {
	got := CoerceEvaluation("```json\n{\"score\": 7}\n```")

	assert.Equal(t, 7.0, got.Score)
	assert.Equal(t, defaultFeedback, got.Feedback)
	assert.Empty(t, got.Strengths)
	assert.Empty(t, got.Improvements)
	assert.Empty(t, got.FollowUpQuestions)
	assert.True(t, got.Relevant)
}

func TestCoerceEvaluationNeverPanics(t *testing.T) {
	inputs := map[string]string{
		"empty":          "",
		"plain text":     "the candidate did fine I suppose",
		"empty object":   "{}",
		"array":          "[1, 2, 3]",
		"truncated json": `{"score": 8, "feedback": "goo`,
	}

	for name, raw := range inputs {
		t.Run(name, func(t *testing.T) {
			got := CoerceEvaluation(raw)
			assert.GreaterOrEqual(t, got.Score, 0.0)
			assert.LessOrEqual(t, got.Score, 10.0)
			assert.NotNil(t, got.Strengths)
			assert.NotNil(t, got.Improvements)
			assert.NotNil(t, got.FollowUpQuestions)
		})
	}
}

func TestCoerceEvaluationStringScore(t *testing.T) {
	got := CoerceEvaluation(`{"score": "8.5", "feedback": "solid"}`)
	assert.Equal(t, 8.5, got.Score)
	assert.Equal(t, "solid", got.Feedback)
}

func TestCoerceEvaluationUnconvertibleScore(t *testing.T) {
	got := CoerceEvaluation(`{"score": "high"}`)
	assert.Equal(t, 0.0, got.Score)
}

func TestCoerceEvaluationClampsScore(t *testing.T) {
	assert.Equal(t, 10.0, CoerceEvaluation(`{"score": 42}`).Score)
	assert.Equal(t, 0.0, CoerceEvaluation(`{"score": -2}`).Score)
}

func TestCoerceEvaluationNonListBecomesEmpty(t *testing.T) {
	got := CoerceEvaluation(`{"strengths": "clear communication", "improvements": 5}`)
	assert.Empty(t, got.Strengths)
	assert.Empty(t, got.Improvements)
}

func TestCoerceSummaryClampsScore(t *testing.T) {
	assert.Equal(t, 10.0, CoerceSummary(`{"overall_score": 15}`).OverallScore)
	assert.Equal(t, 0.0, CoerceSummary(`{"overall_score": -3}`).OverallScore)
}

func TestCoerceSummaryFullObject(t *testing.T) {
	raw := `{
		"overall_score": 7.5,
		"summary": "Strong technical candidate",
		"key_strengths": ["depth", "clarity"],
		"areas_for_improvement": ["system design"],
		"recommendation": "hire",
		"next_steps": ["onsite round"]
	}`
	got := CoerceSummary(raw)

	assert.Equal(t, 7.5, got.OverallScore)
	assert.Equal(t, "Strong technical candidate", got.Summary)
	assert.Equal(t, []string{"depth", "clarity"}, got.KeyStrengths)
	assert.Equal(t, []string{"system design"}, got.AreasForImprovement)
	assert.Equal(t, "hire", got.Recommendation)
	assert.Equal(t, []string{"onsite round"}, got.NextSteps)
}

func TestCoerceSummaryFreeTextFallback(t *testing.T) {
	got := CoerceSummary("The candidate performed reasonably well overall.")
	assert.Equal(t, 0.0, got.OverallScore)
	assert.Equal(t, "The candidate performed reasonably well overall.", got.Summary)
	assert.NotNil(t, got.KeyStrengths)
}

func TestCoerceSummaryFallbackTruncated(t *testing.T) {
	long := ""
	for range 60 {
		long += "the candidate spoke at length "
	}
	got := CoerceSummary(long)
	assert.LessOrEqual(t, len(got.Summary), maxFallbackSummaryLen+3)
}

func TestExtractJSONSegment(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"fenced object", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"fenced array", "```json\n[1, 2]\n```", `[1, 2]`},
		{"prose around object", "Sure! Here you go: {\"a\": 1} Hope that helps.", `{"a": 1}`},
		{"array before object", `["x"] {"a": 1}`, `["x"]`},
		{"no brackets", "just text", "just text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSONSegment(tt.in))
		})
	}
}
