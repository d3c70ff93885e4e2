package entity

// GenerationRequest describes a batch of interview questions to produce.
type GenerationRequest struct {
	Persona        Persona
	Difficulty     Difficulty
	JobDescription string
	ResumeText     string
	Count          int
}

// EvaluationRequest carries one question/answer pair for scoring.
type EvaluationRequest struct {
	Persona        Persona
	Question       string
	Answer         string
	JobDescription string
}

// EvaluationResult is the structured verdict for a single answer. Score is
// always within [0, 10] and list fields are never nil after coercion.
type EvaluationResult struct {
	Score             float64  `json:"score"`
	Feedback          string   `json:"feedback"`
	Strengths         []string `json:"strengths"`
	Improvements      []string `json:"improvements"`
	FollowUpQuestions []string `json:"follow_up_questions"`
	Relevant          bool     `json:"relevant"`
	Reasoning         string   `json:"reasoning,omitempty"`
}

// Exchange is one completed question/answer round within a session.
type Exchange struct {
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Score    float64 `json:"score"`
}

// SummaryRequest asks for a whole-session verdict.
type SummaryRequest struct {
	Persona   Persona
	Exchanges []Exchange
}

// SummaryResult is the structured end-of-interview report.
type SummaryResult struct {
	OverallScore        float64  `json:"overall_score"`
	Summary             string   `json:"summary"`
	KeyStrengths        []string `json:"key_strengths"`
	AreasForImprovement []string `json:"areas_for_improvement"`
	Recommendation      string   `json:"recommendation"`
	NextSteps           []string `json:"next_steps"`
}

// CompletionRequest is the wire format of the generic HTTP text provider.
type CompletionRequest struct {
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature,omitempty"`
}

// CompletionResponse is the generic HTTP text provider's reply.
type CompletionResponse struct {
	Text string `json:"text"`
}
