package render

import (
	"fmt"
	"strings"

	"github.com/prepmate/interview-backend/internal/entity"
)

// Static bot messages.
const (
	MsgWelcome = `👋 Welcome to the mock interview bot!

I run practice interviews with an HR, Tech Lead, or Behavioral interviewer, score each answer, and give you a final rundown.

Press the button below to begin.`

	MsgHelp = `🤖 Bot commands:

/start - begin a new mock interview
/help - show this help
/cancel - abandon the current interview

How it works:
1. Pick an interviewer and a difficulty
2. Send the job description you are preparing for
3. Answer the questions one by one
4. Get per-answer feedback and a final summary`

	MsgChoosePersona    = "Who should interview you?"
	MsgChooseDifficulty = "Pick a difficulty:"
	MsgSendJob          = "Send me the job description (a few sentences is enough)."
	MsgGenerating       = "⏳ Preparing your questions..."
	MsgEvaluating       = "⏳ Scoring your answer..."
	MsgCancelled        = "Interview abandoned. /start when you want another go."
	MsgNoActive         = "No active interview. Use /start to begin."
	ErrGeneric          = "❌ Something went wrong. Try again or use /start."
	ErrUnknownCommand   = "❌ Unknown command. Use /start."
)

// Question formats the next question to ask.
func Question(index, total int, question string) string {
	return fmt.Sprintf("❓ Question %d/%d\n\n%s", index+1, total, question)
}

// Feedback formats a scored answer.
func Feedback(result *entity.EvaluationResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📝 Score: %.1f/10\n\n%s", result.Score, result.Feedback)
	if len(result.Strengths) > 0 {
		b.WriteString("\n\n💪 Strengths:")
		for _, s := range result.Strengths {
			fmt.Fprintf(&b, "\n• %s", s)
		}
	}
	if len(result.Improvements) > 0 {
		b.WriteString("\n\n🔧 To improve:")
		for _, s := range result.Improvements {
			fmt.Fprintf(&b, "\n• %s", s)
		}
	}
	return b.String()
}

// Summary formats the end-of-interview rundown.
func Summary(summary *entity.SummaryResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏁 Interview finished!\n\nOverall score: %.1f/10\n\n%s", summary.OverallScore, summary.Summary)
	if len(summary.KeyStrengths) > 0 {
		b.WriteString("\n\n💪 Key strengths:")
		for _, s := range summary.KeyStrengths {
			fmt.Fprintf(&b, "\n• %s", s)
		}
	}
	if len(summary.AreasForImprovement) > 0 {
		b.WriteString("\n\n🔧 Areas to work on:")
		for _, s := range summary.AreasForImprovement {
			fmt.Fprintf(&b, "\n• %s", s)
		}
	}
	if summary.Recommendation != "" {
		fmt.Fprintf(&b, "\n\n📋 Recommendation: %s", summary.Recommendation)
	}
	return b.String()
}
