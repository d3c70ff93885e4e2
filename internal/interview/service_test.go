package interview

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepmate/interview-backend/internal/entity"
)

// scriptedCompleter returns its responses in order and records the prompts
// it saw.
type scriptedCompleter struct {
	responses []string
	err       error
	prompts   []string
}

func (s *scriptedCompleter) Complete(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	i := len(s.prompts) - 1
	if i >= len(s.responses) {
		return "", errors.New("no scripted response left")
	}
	return s.responses[i], nil
}

func genRequest(count int) entity.GenerationRequest {
	return entity.GenerationRequest{
		Persona:        entity.PersonaTechLead,
		Difficulty:     entity.DifficultyMedium,
		ResumeText:     "Go, Postgres, Kafka",
		JobDescription: "Backend engineer",
		Count:          count,
	}
}

func TestGenerateQuestionsHappyPath(t *testing.T) {
	completer := &scriptedCompleter{responses: []string{
		`["q1?", "q2?", "q3?"]`,
	}}
	svc := NewService(completer)

	got, err := svc.GenerateQuestions(context.Background(), genRequest(3))
	require.NoError(t, err)

	assert.Equal(t, []string{"q1?", "q2?", "q3?"}, got)
	assert.Len(t, completer.prompts, 1)
}

func TestGenerateQuestionsShortBatchTriggersOneTopUp(t *testing.T) {
	completer := &scriptedCompleter{responses: []string{
		`["q1?", "q2?", "q3?"]`,
		`["q4?", "q5?"]`,
	}}
	svc := NewService(completer)

	got, err := svc.GenerateQuestions(context.Background(), genRequest(5))
	require.NoError(t, err)

	require.Len(t, completer.prompts, 2)
	assert.Contains(t, completer.prompts[1], "exactly 2 NEW")
	assert.Equal(t, []string{"q1?", "q2?", "q3?", "q4?", "q5?"}, got)
}

func TestGenerateQuestionsProviderDownUsesBank(t *testing.T) {
	completer := &scriptedCompleter{err: entity.ErrProviderUnavailable}
	svc := NewService(completer)

	got, err := svc.GenerateQuestions(context.Background(), genRequest(4))
	require.NoError(t, err)

	bank := ProfileFor(entity.PersonaTechLead).FallbackBank
	assert.Equal(t, bank[:4], got)
	assert.Len(t, completer.prompts, 1, "no top-up after a failed first call")
}

func TestGenerateQuestionsInvalidCount(t *testing.T) {
	svc := NewService(&scriptedCompleter{})
	_, err := svc.GenerateQuestions(context.Background(), genRequest(0))
	assert.ErrorIs(t, err, entity.ErrInvalidParameter)
}

func TestGenerateQuestionsInvalidDifficulty(t *testing.T) {
	svc := NewService(&scriptedCompleter{})
	req := genRequest(3)
	req.Difficulty = "impossible"
	_, err := svc.GenerateQuestions(context.Background(), req)
	assert.ErrorIs(t, err, entity.ErrInvalidDifficulty)
}

func TestEvaluateAnswerParsesModelVerdict(t *testing.T) {
	completer := &scriptedCompleter{responses: []string{
		`{"score": 8, "feedback": "strong", "strengths": ["clarity"], "relevant": true}`,
	}}
	svc := NewService(completer)

	got := svc.EvaluateAnswer(context.Background(), entity.EvaluationRequest{
		Persona:  entity.PersonaHR,
		Question: "Why us?",
		Answer:   "I admire how the team ships and want to grow here.",
	})

	assert.Equal(t, 8.0, got.Score)
	assert.Equal(t, "strong", got.Feedback)
	assert.Equal(t, []string{"clarity"}, got.Strengths)
}

func TestEvaluateAnswerProviderDownReturnsConservativeDefault(t *testing.T) {
	svc := NewService(&scriptedCompleter{err: errors.New("rate limited")})

	got := svc.EvaluateAnswer(context.Background(), entity.EvaluationRequest{
		Persona:  entity.PersonaHR,
		Question: "Why us?",
		Answer:   "A perfectly reasonable answer about the role.",
	})

	assert.Equal(t, 0.0, got.Score)
	assert.False(t, got.Relevant)
	assert.NotEmpty(t, got.Feedback)
	assert.NotNil(t, got.Strengths)
}

func TestEvaluateAnswerDegenerateOverridesHighScore(t *testing.T) {
	completer := &scriptedCompleter{responses: []string{
		`{"score": 9, "feedback": "excellent", "relevant": true}`,
	}}
	svc := NewService(completer)

	got := svc.EvaluateAnswer(context.Background(), entity.EvaluationRequest{
		Persona:  entity.PersonaTechLead,
		Question: "Describe your architecture?",
		Answer:   "asdf",
	})

	assert.Equal(t, 0.0, got.Score)
	assert.Equal(t, degenerateFeedback, got.Feedback)
	assert.False(t, got.Relevant)
}

func TestSummarizeSession(t *testing.T) {
	completer := &scriptedCompleter{responses: []string{
		"```json\n" + `{"overall_score": 6, "summary": "decent", "recommendation": "maybe"}` + "\n```",
	}}
	svc := NewService(completer)

	got := svc.SummarizeSession(context.Background(), entity.SummaryRequest{
		Persona: entity.PersonaBehavioral,
		Exchanges: []entity.Exchange{
			{Question: "Q?", Answer: "A"},
		},
	})

	assert.Equal(t, 6.0, got.OverallScore)
	assert.Equal(t, "decent", got.Summary)
	assert.Equal(t, "maybe", got.Recommendation)
	require.Len(t, completer.prompts, 1)
	assert.True(t, strings.Contains(completer.prompts[0], "Q: Q?"))
}

func TestSummarizeSessionProviderDown(t *testing.T) {
	svc := NewService(&scriptedCompleter{err: errors.New("timeout")})

	got := svc.SummarizeSession(context.Background(), entity.SummaryRequest{
		Persona: entity.PersonaHR,
	})

	assert.Equal(t, 0.0, got.OverallScore)
	assert.NotEmpty(t, got.Summary)
	assert.NotNil(t, got.KeyStrengths)
}
