package interview

import (
	"context"
	"fmt"
	"strings"

	"github.com/prepmate/interview-backend/internal/entity"
	"github.com/prepmate/interview-backend/internal/pkg/formatter"
)

// Report is an exported interview report ready to send to the client.
type Report struct {
	Data        []byte
	ContentType string
	Filename    string
}

// BuildReport renders a session into the requested export format.
func (uc *InterviewUsecase) BuildReport(ctx context.Context, ownerID, sessionID string, format entity.ReportFormat) (*Report, error) {
	session, err := uc.sessionRepo.GetSession(ctx, sessionID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	f, err := formatter.NewFactory().Create(format)
	if err != nil {
		return nil, err
	}

	data, err := f.Format(renderReportText(session))
	if err != nil {
		return nil, fmt.Errorf("format report: %w", err)
	}

	return &Report{
		Data:        data,
		ContentType: f.ContentType(),
		Filename:    fmt.Sprintf("interview-%s%s", session.ID, f.FileExtension()),
	}, nil
}

// renderReportText lays the session out as plain text with markdown-style
// section headers, which every formatter knows how to style.
func renderReportText(session *entity.Session) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Persona: %s\n", session.Persona)
	fmt.Fprintf(&b, "Difficulty: %s\n", session.Difficulty)
	fmt.Fprintf(&b, "Date: %s\n", session.CreatedAt.Format("2006-01-02"))

	for i, question := range session.Questions {
		fmt.Fprintf(&b, "\n## Question %d\n%s\n", i+1, question)
		if i >= len(session.Answers) {
			b.WriteString("\nNot answered.\n")
			continue
		}
		fmt.Fprintf(&b, "\nAnswer:\n%s\n", session.Answers[i])
		if i < len(session.Feedback) {
			fb := session.Feedback[i]
			fmt.Fprintf(&b, "\nScore: %.1f/10\n%s\n", fb.Score, fb.Feedback)
			writeList(&b, "Strengths", fb.Strengths)
			writeList(&b, "Improvements", fb.Improvements)
		}
	}

	if session.Summary != nil {
		s := session.Summary
		b.WriteString("\n## Summary\n")
		fmt.Fprintf(&b, "Overall score: %.1f/10\n\n%s\n", s.OverallScore, s.Summary)
		writeList(&b, "Key strengths", s.KeyStrengths)
		writeList(&b, "Areas for improvement", s.AreasForImprovement)
		if s.Recommendation != "" {
			fmt.Fprintf(&b, "\nRecommendation: %s\n", s.Recommendation)
		}
		writeList(&b, "Next steps", s.NextSteps)
	}

	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}
