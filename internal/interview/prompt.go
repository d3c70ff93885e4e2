package interview

import (
	"fmt"
	"strings"

	"github.com/prepmate/interview-backend/internal/entity"
)

// scoringRubric is embedded verbatim into every evaluation prompt. The
// degeneracy override relies on these exact band boundaries, so the text
// must stay in sync with the detector's scoring.
const scoringRubric = `Score strictly on this rubric:
0-1 = irrelevant or nonsensical answer
2-3 = mostly off-topic
4-5 = relevant but shallow
6-7 = good answer
8-9 = excellent answer
10 = outstanding answer
Placeholder, random-character or single-word answers MUST score 0-1.`

// BuildQuestionPrompt renders the generation prompt for a question batch.
// Unknown personas silently use the HR profile; an unknown difficulty is a
// caller bug and returns entity.ErrInvalidDifficulty.
func BuildQuestionPrompt(req entity.GenerationRequest) (string, error) {
	if err := req.Difficulty.Validate(); err != nil {
		return "", fmt.Errorf("build question prompt: %w", err)
	}
	prof := ProfileFor(req.Persona)

	var b strings.Builder
	fmt.Fprintf(&b, "You are a %s interviewer with a %s approach, conducting a %s level interview.\n",
		prof.Title, prof.Personality, strings.ToUpper(string(req.Difficulty)))
	fmt.Fprintf(&b, "Generate %d interview questions that assess:\n", req.Count)
	for _, area := range prof.FocusAreas {
		fmt.Fprintf(&b, "- %s\n", area)
	}
	fmt.Fprintf(&b, "\n%s\n", prof.Guidance[req.Difficulty])
	fmt.Fprintf(&b, "\nRESUME:\n%s\n\nJOB DESCRIPTION:\n%s\n", req.ResumeText, req.JobDescription)
	fmt.Fprintf(&b, "\nGenerate exactly %d relevant interview questions.\n", req.Count)
	b.WriteString(`Return the questions as a JSON array of strings.
Example format: ["Question 1?", "Question 2?", "Question 3?"]`)
	return b.String(), nil
}

// BuildTopUpPrompt renders the supplementary generation prompt used when the
// first batch came up short. Existing questions are passed back so the model
// avoids repeating them.
func BuildTopUpPrompt(req entity.GenerationRequest, needed int, existing []string) (string, error) {
	if err := req.Difficulty.Validate(); err != nil {
		return "", fmt.Errorf("build top-up prompt: %w", err)
	}
	prof := ProfileFor(req.Persona)

	var b strings.Builder
	fmt.Fprintf(&b, "You are a %s interviewer conducting a %s level interview.\n",
		prof.Title, strings.ToUpper(string(req.Difficulty)))
	fmt.Fprintf(&b, "Generate exactly %d NEW interview questions, distinct from every question below:\n", needed)
	for _, q := range existing {
		fmt.Fprintf(&b, "- %s\n", q)
	}
	fmt.Fprintf(&b, "\n%s\n", prof.Guidance[req.Difficulty])
	fmt.Fprintf(&b, "\nRESUME:\n%s\n\nJOB DESCRIPTION:\n%s\n", req.ResumeText, req.JobDescription)
	b.WriteString("\nReturn the questions as a JSON array of strings.")
	return b.String(), nil
}

// BuildEvaluationPrompt renders the scoring prompt for one answer.
func BuildEvaluationPrompt(req entity.EvaluationRequest) string {
	prof := ProfileFor(req.Persona)

	var b strings.Builder
	fmt.Fprintf(&b, "You are a %s interviewer evaluating a candidate's answer.\n\n", prof.Title)
	fmt.Fprintf(&b, "QUESTION: %s\nCANDIDATE'S ANSWER: %s\nJOB DESCRIPTION: %s\n\n",
		req.Question, req.Answer, req.JobDescription)
	fmt.Fprintf(&b, "Evaluate the answer based on: %s\n\n", prof.Criteria)
	b.WriteString(scoringRubric)
	b.WriteString(`

Provide your evaluation in the following JSON format:
{
    "score": 0-10,
    "feedback": "detailed feedback on the answer",
    "strengths": ["strength 1", "strength 2"],
    "improvements": ["improvement 1", "improvement 2"],
    "follow_up_questions": ["follow up question 1", "follow up question 2"],
    "relevant": true,
    "reasoning": "one sentence explaining the score"
}`)
	return b.String()
}

// BuildSummaryPrompt renders the whole-session summary prompt.
func BuildSummaryPrompt(req entity.SummaryRequest) string {
	prof := ProfileFor(req.Persona)

	var b strings.Builder
	fmt.Fprintf(&b, "You are a %s interviewer providing the final interview summary.\n\nINTERVIEW Q&A:\n", prof.Title)
	for _, ex := range req.Exchanges {
		fmt.Fprintf(&b, "Q: %s\nA: %s\n\n", ex.Question, ex.Answer)
	}
	b.WriteString(`Provide a comprehensive evaluation in JSON format:
{
    "overall_score": 0-10,
    "summary": "overall performance summary",
    "key_strengths": ["strength 1", "strength 2", "strength 3"],
    "areas_for_improvement": ["improvement 1", "improvement 2", "improvement 3"],
    "recommendation": "hire/reject/maybe with reasoning",
    "next_steps": ["step 1", "step 2"]
}`)
	return b.String()
}
