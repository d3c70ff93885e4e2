package llm

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector returns canned completions for local development without a
// real provider. The response shape is picked from markers in the prompt.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

const mockQuestions = `[
  "Tell me about the most challenging project on your resume?",
  "How do you approach breaking down an ambiguous task?",
  "Describe a time you disagreed with a technical decision. What did you do?",
  "What part of this role excites you the most and why?",
  "How do you measure the success of your own work?",
  "Tell me about a skill you learned recently and how you applied it?",
  "Describe how you handle feedback you disagree with?"
]`

const mockEvaluation = `{
  "score": 7,
  "feedback": "A solid answer with a concrete example, though it could go deeper into measurable outcomes.",
  "strengths": ["Concrete example", "Clear structure"],
  "improvements": ["Quantify the impact", "Mention what you would do differently"],
  "follow_up_questions": ["What metrics did you track?", "How did the team react?"],
  "relevant": true,
  "reasoning": "The answer addresses the question with specifics."
}`

const mockSummary = `{
  "overall_score": 7,
  "summary": "The candidate communicated clearly and backed most answers with real examples. Depth varied across topics.",
  "key_strengths": ["Clear communication", "Concrete examples", "Honest about gaps"],
  "areas_for_improvement": ["Quantify results more often", "Stronger system design depth"],
  "recommendation": "maybe - promising candidate, verify technical depth in a follow-up round",
  "next_steps": ["Schedule a technical deep-dive", "Collect references"]
}`

func (m *MockConnector) Complete(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] completing prompt", zap.Int("prompt_length", len(prompt)))

	switch {
	case strings.Contains(prompt, "JSON array"):
		return mockQuestions, nil
	case strings.Contains(prompt, "overall_score"):
		return mockSummary, nil
	default:
		return mockEvaluation, nil
	}
}
