package interview

import (
	"context"

	"github.com/prepmate/interview-backend/internal/entity"
)

// Interviewer runs the LLM round-trips for an interview.
type Interviewer interface {
	GenerateQuestions(ctx context.Context, req entity.GenerationRequest) ([]string, error)
	EvaluateAnswer(ctx context.Context, req entity.EvaluationRequest) entity.EvaluationResult
	SummarizeSession(ctx context.Context, req entity.SummaryRequest) entity.SummaryResult
}
