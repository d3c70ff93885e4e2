package interview

import (
	"strings"

	"github.com/prepmate/interview-backend/internal/entity"
)

// Messages substituted into an evaluation when the answer is not a genuine
// attempt. The override is a trust boundary: it wins over whatever score the
// model produced.
const (
	degenerateFeedback    = "The answer does not appear to be a genuine attempt to respond to the question. Please provide a real answer describing your experience or reasoning."
	degenerateImprovement = "Give a substantive answer that actually addresses the question"
)

// answerStoplist holds placeholder tokens that are never real answers.
var answerStoplist = map[string]struct{}{
	"test":    {},
	"testing": {},
	"random":  {},
	"abc":     {},
	"xyz":     {},
	"asdf":    {},
	"qwerty":  {},
}

// Classification is the degeneracy verdict for one answer.
type Classification struct {
	Degenerate bool
	Reason     string
}

// Classify flags answers that are too short, stoplisted, or low-entropy
// keyboard mashing. It is deliberately blunt and can misfire on very short
// real answers; loosening it would let placeholder input earn real scores.
func Classify(answer string) Classification {
	trimmed := strings.TrimSpace(answer)

	if len(trimmed) < 5 {
		return Classification{Degenerate: true, Reason: "answer shorter than 5 characters"}
	}
	if _, ok := answerStoplist[strings.ToLower(trimmed)]; ok {
		return Classification{Degenerate: true, Reason: "answer matches placeholder stoplist"}
	}
	if isLowEntropy(trimmed) {
		return Classification{Degenerate: true, Reason: "answer has too few distinct characters"}
	}
	return Classification{}
}

// isLowEntropy reports whether the answer consists only of lowercase
// alphanumerics and spaces while using at most 3 distinct non-space
// characters.
func isLowEntropy(answer string) bool {
	distinct := map[rune]struct{}{}
	for _, r := range answer {
		switch {
		case r == ' ':
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			distinct[r] = struct{}{}
		default:
			return false
		}
	}
	return len(distinct) <= 3
}

// ApplyOverride rewrites an evaluation for a degenerate answer: zero score,
// fixed explanatory feedback, cleared strengths.
func ApplyOverride(result *entity.EvaluationResult, c Classification) {
	if !c.Degenerate {
		return
	}
	result.Score = 0
	result.Feedback = degenerateFeedback
	result.Strengths = []string{}
	result.Improvements = []string{degenerateImprovement}
	result.Relevant = false
	result.Reasoning = c.Reason
}
