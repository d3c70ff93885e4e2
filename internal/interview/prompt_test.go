package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepmate/interview-backend/internal/entity"
)

func TestBuildQuestionPrompt(t *testing.T) {
	req := entity.GenerationRequest{
		Persona:        entity.PersonaTechLead,
		Difficulty:     entity.DifficultyHard,
		ResumeText:     "10 years of Go",
		JobDescription: "Senior backend engineer",
		Count:          5,
	}

	prompt, err := BuildQuestionPrompt(req)
	require.NoError(t, err)

	assert.Contains(t, prompt, "Technical Lead")
	assert.Contains(t, prompt, "HARD")
	assert.Contains(t, prompt, "10 years of Go")
	assert.Contains(t, prompt, "Senior backend engineer")
	assert.Contains(t, prompt, "exactly 5")
	assert.Contains(t, prompt, "JSON array")
}

func TestBuildQuestionPromptInvalidDifficulty(t *testing.T) {
	req := entity.GenerationRequest{
		Persona:    entity.PersonaHR,
		Difficulty: "brutal",
		Count:      3,
	}
	_, err := BuildQuestionPrompt(req)
	assert.ErrorIs(t, err, entity.ErrInvalidDifficulty)
}

func TestBuildQuestionPromptUnknownPersonaFallsBackToHR(t *testing.T) {
	req := entity.GenerationRequest{
		Persona:    "alien",
		Difficulty: entity.DifficultyEasy,
		Count:      2,
	}
	prompt, err := BuildQuestionPrompt(req)
	require.NoError(t, err)
	assert.Contains(t, prompt, "HR interviewer")
}

func TestBuildTopUpPromptListsExisting(t *testing.T) {
	req := entity.GenerationRequest{
		Persona:    entity.PersonaBehavioral,
		Difficulty: entity.DifficultyMedium,
		Count:      5,
	}
	prompt, err := BuildTopUpPrompt(req, 2, []string{"Tell me about a conflict?"})
	require.NoError(t, err)

	assert.Contains(t, prompt, "exactly 2 NEW")
	assert.Contains(t, prompt, "Tell me about a conflict?")
	assert.Contains(t, prompt, "distinct")
}

func TestBuildEvaluationPromptEmbedsRubric(t *testing.T) {
	prompt := BuildEvaluationPrompt(entity.EvaluationRequest{
		Persona:  entity.PersonaHR,
		Question: "Why us?",
		Answer:   "Because of the mission.",
	})

	// The rubric bands are relied upon by the degeneracy override.
	assert.Contains(t, prompt, "0-1 = irrelevant or nonsensical")
	assert.Contains(t, prompt, "8-9 = excellent")
	assert.Contains(t, prompt, "10 = outstanding")
	assert.Contains(t, prompt, "MUST score 0-1")
	assert.Contains(t, prompt, "Why us?")
	assert.Contains(t, prompt, "Because of the mission.")
	assert.Contains(t, prompt, "communication clarity")
}

func TestBuildSummaryPromptIncludesAllExchanges(t *testing.T) {
	prompt := BuildSummaryPrompt(entity.SummaryRequest{
		Persona: entity.PersonaTechLead,
		Exchanges: []entity.Exchange{
			{Question: "Q one?", Answer: "A one"},
			{Question: "Q two?", Answer: "A two"},
		},
	})

	assert.Contains(t, prompt, "Q: Q one?")
	assert.Contains(t, prompt, "A: A one")
	assert.Contains(t, prompt, "Q: Q two?")
	assert.Contains(t, prompt, "overall_score")
}
