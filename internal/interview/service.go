package interview

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/prepmate/interview-backend/internal/entity"
)

// Completer is the single capability required from an LLM provider: turn a
// prompt into free text. No output shape is guaranteed, which is exactly why
// every response goes through coercion.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Service drives the three interview round-trips: question generation,
// answer evaluation and session summary. It is stateless; all policy lives
// in the persona table and the coercion rules.
type Service struct {
	completer Completer
}

func NewService(completer Completer) *Service {
	return &Service{completer: completer}
}

// GenerateQuestions returns exactly req.Count questions for valid input.
// Provider failures fall back to the persona's static bank; only invalid
// difficulty or a non-positive count surface as errors.
func (s *Service) GenerateQuestions(ctx context.Context, req entity.GenerationRequest) ([]string, error) {
	if req.Count < 1 {
		return nil, fmt.Errorf("%w: question count must be at least 1", entity.ErrInvalidParameter)
	}
	prompt, err := BuildQuestionPrompt(req)
	if err != nil {
		return nil, err
	}

	bank := ProfileFor(req.Persona).FallbackBank

	raw, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		ctxzap.Warn(ctx, "question generation call failed, using fallback bank", zap.Error(err))
		return EnsureCount(ctx, nil, req.Count, nil, bank), nil
	}

	questions := CoerceQuestions(raw, req.Count)
	return EnsureCount(ctx, questions, req.Count, s.regenerator(req), bank), nil
}

// regenerator builds the one-shot top-up callback for EnsureCount.
func (s *Service) regenerator(req entity.GenerationRequest) RegenerateFunc {
	return func(ctx context.Context, needed int, existing []string) ([]string, error) {
		prompt, err := BuildTopUpPrompt(req, needed, existing)
		if err != nil {
			return nil, err
		}
		raw, err := s.completer.Complete(ctx, prompt)
		if err != nil {
			return nil, fmt.Errorf("top-up completion: %w", err)
		}
		return CoerceQuestions(raw, needed), nil
	}
}

// EvaluateAnswer scores one answer. The result is always structured: provider
// failures become a conservative zero-score evaluation, and degenerate
// answers override whatever the model returned.
func (s *Service) EvaluateAnswer(ctx context.Context, req entity.EvaluationRequest) entity.EvaluationResult {
	var result entity.EvaluationResult

	raw, err := s.completer.Complete(ctx, BuildEvaluationPrompt(req))
	if err != nil {
		ctxzap.Warn(ctx, "evaluation call failed, returning conservative default", zap.Error(err))
		result = entity.EvaluationResult{
			Score:             0,
			Feedback:          "The answer could not be evaluated right now. Please try again later.",
			Strengths:         []string{},
			Improvements:      []string{},
			FollowUpQuestions: []string{},
			Relevant:          false,
		}
	} else {
		result = CoerceEvaluation(raw)
	}

	if c := Classify(req.Answer); c.Degenerate {
		ctxzap.Info(ctx, "degenerate answer detected", zap.String("reason", c.Reason))
		ApplyOverride(&result, c)
	}
	return result
}

// SummarizeSession produces the end-of-interview report. Provider failures
// yield a structured zero-score summary rather than an error.
func (s *Service) SummarizeSession(ctx context.Context, req entity.SummaryRequest) entity.SummaryResult {
	raw, err := s.completer.Complete(ctx, BuildSummaryPrompt(req))
	if err != nil {
		ctxzap.Warn(ctx, "summary call failed, returning conservative default", zap.Error(err))
		return entity.SummaryResult{
			OverallScore:        0,
			Summary:             "The interview summary could not be generated right now.",
			KeyStrengths:        []string{},
			AreasForImprovement: []string{},
			Recommendation:      defaultRecommendation,
			NextSteps:           []string{},
		}
	}
	return CoerceSummary(raw)
}
