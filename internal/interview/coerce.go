package interview

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/prepmate/interview-backend/internal/entity"
)

// Coercion turns whatever the model returned into a fully defaulted typed
// value. Nothing in this file returns an error: malformed provider output is
// always resolved into a best-effort structure.

const (
	defaultFeedback       = "No feedback provided"
	defaultSummaryText    = "Overall performance evaluation"
	defaultRecommendation = "Needs further evaluation"

	// maxFallbackSummaryLen bounds how much raw model text is surfaced when
	// the summary cannot be parsed.
	maxFallbackSummaryLen = 500
)

// extractJSONSegment strips markdown fences and surrounding prose by slicing
// between the first opening bracket and the last matching closing one.
// Returns the trimmed input unchanged when no bracket pair is found.
func extractJSONSegment(raw string) string {
	raw = strings.TrimSpace(raw)

	objStart := strings.IndexByte(raw, '{')
	arrStart := strings.IndexByte(raw, '[')

	start, closing := objStart, byte('}')
	if start < 0 || (arrStart >= 0 && arrStart < start) {
		start, closing = arrStart, ']'
	}
	if start < 0 {
		return raw
	}
	end := strings.LastIndexByte(raw, closing)
	if end <= start {
		return raw
	}
	return raw[start : end+1]
}

// enumMarkers matches leading enumeration noise on heuristic question lines.
const enumMarkers = "0123456789.)]-*•>\"' \t"

// CoerceQuestions parses a model response into a question list. A valid JSON
// array of strings is returned as-is in order; anything else goes through a
// line heuristic that keeps lines looking like questions and caps the result
// at requested.
func CoerceQuestions(raw string, requested int) []string {
	segment := extractJSONSegment(raw)

	var parsed []any
	if err := json.Unmarshal([]byte(segment), &parsed); err == nil {
		questions := make([]string, 0, len(parsed))
		for _, item := range parsed {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					questions = append(questions, s)
				}
			}
		}
		if len(questions) > 0 {
			return questions
		}
	}
	return questionsFromLines(raw, requested)
}

// questionsFromLines is the last-resort parser for free-text responses.
// It strips enumeration markers and keeps lines that contain a question mark
// or enough text to plausibly be a question, appending the missing mark.
func questionsFromLines(raw string, limit int) []string {
	var questions []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.Trim(strings.TrimSpace(line), enumMarkers)
		if line == "" {
			continue
		}
		if !strings.Contains(line, "?") && len(line) <= 10 {
			continue
		}
		if !strings.HasSuffix(line, "?") {
			line += "?"
		}
		questions = append(questions, line)
		if limit > 0 && len(questions) == limit {
			break
		}
	}
	if questions == nil {
		questions = []string{}
	}
	return questions
}

// CoerceEvaluation parses a model response into an EvaluationResult. Missing
// fields get safe defaults, scores are clamped into [0, 10], and list fields
// are never nil.
func CoerceEvaluation(raw string) entity.EvaluationResult {
	result := entity.EvaluationResult{
		Score:             0,
		Feedback:          defaultFeedback,
		Strengths:         []string{},
		Improvements:      []string{},
		FollowUpQuestions: []string{},
		Relevant:          true,
	}

	fields, ok := parseObject(raw)
	if !ok {
		return result
	}

	result.Score = clampScore(floatField(fields, "score", 0))
	result.Feedback = stringField(fields, "feedback", defaultFeedback)
	result.Strengths = listField(fields, "strengths")
	result.Improvements = listField(fields, "improvements")
	result.FollowUpQuestions = listField(fields, "follow_up_questions")
	result.Reasoning = stringField(fields, "reasoning", "")
	if v, ok := fields["relevant"].(bool); ok {
		result.Relevant = v
	}
	return result
}

// CoerceSummary parses a model response into a SummaryResult. On a parse
// failure the raw text itself becomes the summary, truncated so a wall of
// broken JSON is never shown to a candidate.
func CoerceSummary(raw string) entity.SummaryResult {
	result := entity.SummaryResult{
		OverallScore:        0,
		Summary:             defaultSummaryText,
		KeyStrengths:        []string{},
		AreasForImprovement: []string{},
		Recommendation:      defaultRecommendation,
		NextSteps:           []string{},
	}

	fields, ok := parseObject(raw)
	if !ok {
		result.Summary = fallbackSummaryText(raw)
		return result
	}

	result.OverallScore = clampScore(floatField(fields, "overall_score", 0))
	result.Summary = stringField(fields, "summary", defaultSummaryText)
	result.KeyStrengths = listField(fields, "key_strengths")
	result.AreasForImprovement = listField(fields, "areas_for_improvement")
	result.Recommendation = stringField(fields, "recommendation", defaultRecommendation)
	result.NextSteps = listField(fields, "next_steps")
	return result
}

func fallbackSummaryText(raw string) string {
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return defaultSummaryText
	}
	if strings.HasPrefix(clean, "{") && strings.HasSuffix(clean, "}") {
		return "The interview was completed, but there was an issue formatting the detailed feedback."
	}
	if len(clean) > maxFallbackSummaryLen {
		clean = clean[:maxFallbackSummaryLen] + "..."
	}
	return clean
}

func parseObject(raw string) (map[string]any, bool) {
	segment := extractJSONSegment(raw)
	var fields map[string]any
	if err := json.Unmarshal([]byte(segment), &fields); err != nil {
		return nil, false
	}
	return fields, true
}

// floatField reads a numeric field that may arrive as a JSON number or a
// quoted string; anything unconvertible yields the default.
func floatField(fields map[string]any, key string, def float64) float64 {
	switch v := fields[key].(type) {
	case float64:
		return v
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return def
}

func stringField(fields map[string]any, key, def string) string {
	if s, ok := fields[key].(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	return def
}

// listField coerces a field into a string slice. A value of any other type
// becomes an empty list rather than being wrapped, so structure the model
// never produced is not fabricated.
func listField(fields map[string]any, key string) []string {
	items, ok := fields[key].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}
