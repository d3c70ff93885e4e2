package interview

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/prepmate/interview-backend/internal/entity"
	"github.com/prepmate/interview-backend/internal/pkg/validator"
	"github.com/prepmate/interview-backend/internal/repository"
)

// stubInterviewer returns fixed values without touching any provider.
type stubInterviewer struct {
	questions []string
	result    entity.EvaluationResult
	summary   entity.SummaryResult
}

func (s *stubInterviewer) GenerateQuestions(context.Context, entity.GenerationRequest) ([]string, error) {
	return s.questions, nil
}

func (s *stubInterviewer) EvaluateAnswer(context.Context, entity.EvaluationRequest) entity.EvaluationResult {
	return s.result
}

func (s *stubInterviewer) SummarizeSession(context.Context, entity.SummaryRequest) entity.SummaryResult {
	return s.summary
}

func newTestUsecase(iv Interviewer) *InterviewUsecase {
	return NewUsecase(
		repository.NewSessionMemory(),
		iv,
		validator.New(1<<20),
		zap.NewNop(),
	)
}

func startRequest() *entity.StartInterviewRequest {
	return &entity.StartInterviewRequest{
		Persona:        "tech_lead",
		Difficulty:     "medium",
		JobDescription: "Backend engineer role",
		ResumeText:     "Go developer",
		NumQuestions:   2,
	}
}

func TestInterviewLifecycle(t *testing.T) {
	iv := &stubInterviewer{
		questions: []string{"q1?", "q2?"},
		result:    entity.EvaluationResult{Score: 7, Feedback: "good", Relevant: true},
		summary:   entity.SummaryResult{OverallScore: 7, Summary: "solid", Recommendation: "hire"},
	}
	uc := newTestUsecase(iv)
	ctx := context.Background()

	session, err := uc.StartInterview(ctx, "u1", startRequest())
	require.NoError(t, err)
	assert.Equal(t, entity.SessionActive, session.Status)
	assert.Equal(t, []string{"q1?", "q2?"}, session.Questions)
	assert.Equal(t, 0, session.NextQuestionIndex())

	result, err := uc.SubmitAnswer(ctx, "u1", session.ID, &entity.SubmitAnswerRequest{QuestionIndex: 0, Answer: "first answer"})
	require.NoError(t, err)
	assert.Equal(t, 7.0, result.Score)

	_, err = uc.SubmitAnswer(ctx, "u1", session.ID, &entity.SubmitAnswerRequest{QuestionIndex: 1, Answer: "second answer"})
	require.NoError(t, err)

	summary, err := uc.CompleteInterview(ctx, "u1", session.ID)
	require.NoError(t, err)
	assert.Equal(t, "hire", summary.Recommendation)

	got, err := uc.GetSession(ctx, "u1", session.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionCompleted, got.Status)
	require.NotNil(t, got.Summary)

	stats, err := uc.GetStats(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalSessions)
	assert.Equal(t, 1, stats.CompletedSessions)
	assert.Equal(t, 2, stats.AnsweredQuestions)
	assert.Equal(t, 7.0, stats.AverageScore)
}

func TestSubmitAnswerOutOfOrder(t *testing.T) {
	iv := &stubInterviewer{questions: []string{"q1?", "q2?"}}
	uc := newTestUsecase(iv)
	ctx := context.Background()

	session, err := uc.StartInterview(ctx, "u1", startRequest())
	require.NoError(t, err)

	_, err = uc.SubmitAnswer(ctx, "u1", session.ID, &entity.SubmitAnswerRequest{QuestionIndex: 1, Answer: "skipping ahead"})
	assert.ErrorIs(t, err, entity.ErrQuestionOutOfOrder)
}

func TestSubmitAnswerAfterCompletionRejected(t *testing.T) {
	iv := &stubInterviewer{questions: []string{"q1?", "q2?"}}
	uc := newTestUsecase(iv)
	ctx := context.Background()

	session, err := uc.StartInterview(ctx, "u1", startRequest())
	require.NoError(t, err)

	_, err = uc.CompleteInterview(ctx, "u1", session.ID)
	require.NoError(t, err)

	_, err = uc.SubmitAnswer(ctx, "u1", session.ID, &entity.SubmitAnswerRequest{QuestionIndex: 0, Answer: "too late"})
	assert.ErrorIs(t, err, entity.ErrSessionCompleted)

	_, err = uc.CompleteInterview(ctx, "u1", session.ID)
	assert.ErrorIs(t, err, entity.ErrSessionCompleted)
}

func TestStartInterviewValidation(t *testing.T) {
	uc := newTestUsecase(&stubInterviewer{})
	ctx := context.Background()

	req := startRequest()
	req.Persona = "ceo"
	_, err := uc.StartInterview(ctx, "u1", req)
	assert.ErrorIs(t, err, entity.ErrInvalidPersona)

	req = startRequest()
	req.Difficulty = "nightmare"
	_, err = uc.StartInterview(ctx, "u1", req)
	assert.ErrorIs(t, err, entity.ErrInvalidDifficulty)

	req = startRequest()
	req.NumQuestions = 0
	_, err = uc.StartInterview(ctx, "u1", req)
	assert.ErrorIs(t, err, entity.ErrInvalidParameter)
}

func TestSessionsAreOwnerScoped(t *testing.T) {
	iv := &stubInterviewer{questions: []string{"q1?", "q2?"}}
	uc := newTestUsecase(iv)
	ctx := context.Background()

	session, err := uc.StartInterview(ctx, "u1", startRequest())
	require.NoError(t, err)

	_, err = uc.GetSession(ctx, "intruder", session.ID)
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)

	err = uc.DeleteSession(ctx, "intruder", session.ID)
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestBuildReportMarkdown(t *testing.T) {
	iv := &stubInterviewer{
		questions: []string{"q1?", "q2?"},
		result:    entity.EvaluationResult{Score: 6, Feedback: "ok", Strengths: []string{"clarity"}},
		summary:   entity.SummaryResult{OverallScore: 6, Summary: "fine", KeyStrengths: []string{"calm"}},
	}
	uc := newTestUsecase(iv)
	ctx := context.Background()

	session, err := uc.StartInterview(ctx, "u1", startRequest())
	require.NoError(t, err)
	_, err = uc.SubmitAnswer(ctx, "u1", session.ID, &entity.SubmitAnswerRequest{QuestionIndex: 0, Answer: "an answer"})
	require.NoError(t, err)
	_, err = uc.CompleteInterview(ctx, "u1", session.ID)
	require.NoError(t, err)

	report, err := uc.BuildReport(ctx, "u1", session.ID, entity.FormatMarkdown)
	require.NoError(t, err)

	text := string(report.Data)
	assert.Contains(t, text, "# Interview Report")
	assert.Contains(t, text, "q1?")
	assert.Contains(t, text, "an answer")
	assert.Contains(t, text, "Score: 6.0/10")
	assert.Contains(t, text, "Not answered.")
	assert.Contains(t, text, "## Summary")
	assert.Equal(t, "text/markdown; charset=utf-8", report.ContentType)
}

func TestBuildReportUnknownFormat(t *testing.T) {
	uc := newTestUsecase(&stubInterviewer{questions: []string{"q1?", "q2?"}})
	ctx := context.Background()

	session, err := uc.StartInterview(ctx, "u1", startRequest())
	require.NoError(t, err)

	_, err = uc.BuildReport(ctx, "u1", session.ID, "epub")
	assert.ErrorIs(t, err, entity.ErrInvalidParameter)
}
