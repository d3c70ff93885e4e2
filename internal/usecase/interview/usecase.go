package interview

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/prepmate/interview-backend/internal/entity"
	"github.com/prepmate/interview-backend/internal/pkg/validator"
	"github.com/prepmate/interview-backend/internal/repository"
)

// InterviewUsecase implements the interview session business logic.
type InterviewUsecase struct {
	sessionRepo repository.SessionRepository
	interviewer Interviewer
	validator   *validator.Validator
	logger      *zap.Logger
}

// NewUsecase creates a new interview use case
func NewUsecase(
	sessionRepo repository.SessionRepository,
	interviewer Interviewer,
	validator *validator.Validator,
	logger *zap.Logger,
) *InterviewUsecase {
	return &InterviewUsecase{
		sessionRepo: sessionRepo,
		interviewer: interviewer,
		validator:   validator,
		logger:      logger,
	}
}

// StartInterview generates a question set and persists a new session.
func (uc *InterviewUsecase) StartInterview(ctx context.Context, ownerID string, req *entity.StartInterviewRequest) (*entity.Session, error) {
	if err := uc.validator.ValidateStartInterview(req); err != nil {
		return nil, err
	}

	questions, err := uc.interviewer.GenerateQuestions(ctx, entity.GenerationRequest{
		Persona:        entity.Persona(req.Persona),
		Difficulty:     entity.Difficulty(req.Difficulty),
		ResumeText:     req.ResumeText,
		JobDescription: req.JobDescription,
		Count:          req.NumQuestions,
	})
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	now := time.Now().UTC()
	session := &entity.Session{
		ID:             uuid.New().String(),
		OwnerID:        ownerID,
		Persona:        entity.Persona(req.Persona),
		Difficulty:     entity.Difficulty(req.Difficulty),
		JobDescription: req.JobDescription,
		ResumeText:     req.ResumeText,
		Status:         entity.SessionActive,
		Questions:      questions,
		Answers:        []string{},
		Feedback:       []entity.EvaluationResult{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	ctxzap.Info(ctx, "interview started",
		zap.String("session_id", session.ID),
		zap.String("persona", req.Persona),
		zap.String("difficulty", req.Difficulty),
		zap.Int("questions", len(questions)),
	)
	return session, nil
}

// SubmitAnswer scores an answer to the next unanswered question and appends
// both answer and feedback to the session.
func (uc *InterviewUsecase) SubmitAnswer(ctx context.Context, ownerID, sessionID string, req *entity.SubmitAnswerRequest) (*entity.EvaluationResult, error) {
	if err := uc.validator.ValidateSubmitAnswer(req); err != nil {
		return nil, err
	}

	session, err := uc.sessionRepo.GetSession(ctx, sessionID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if session.Status != entity.SessionActive {
		return nil, entity.ErrSessionCompleted
	}

	next := session.NextQuestionIndex()
	if next < 0 {
		return nil, entity.ErrAllQuestionsDone
	}
	if req.QuestionIndex != next {
		return nil, fmt.Errorf("%w: expected index %d, got %d", entity.ErrQuestionOutOfOrder, next, req.QuestionIndex)
	}

	result := uc.interviewer.EvaluateAnswer(ctx, entity.EvaluationRequest{
		Persona:        session.Persona,
		Question:       session.Questions[next],
		Answer:         req.Answer,
		JobDescription: session.JobDescription,
	})

	if err := uc.sessionRepo.AppendAnswer(ctx, sessionID, ownerID, req.Answer, result); err != nil {
		return nil, fmt.Errorf("append answer: %w", err)
	}

	ctxzap.Info(ctx, "answer evaluated",
		zap.String("session_id", sessionID),
		zap.Int("question_index", next),
		zap.Float64("score", result.Score),
	)
	return &result, nil
}

// CompleteInterview summarizes all exchanges and marks the session done.
// Unanswered questions are dropped from the summary input.
func (uc *InterviewUsecase) CompleteInterview(ctx context.Context, ownerID, sessionID string) (*entity.SummaryResult, error) {
	session, err := uc.sessionRepo.GetSession(ctx, sessionID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if session.Status != entity.SessionActive {
		return nil, entity.ErrSessionCompleted
	}

	summary := uc.interviewer.SummarizeSession(ctx, entity.SummaryRequest{
		Persona:   session.Persona,
		Exchanges: exchanges(session),
	})

	if err := uc.sessionRepo.CompleteSession(ctx, sessionID, ownerID, summary); err != nil {
		return nil, fmt.Errorf("complete session: %w", err)
	}

	ctxzap.Info(ctx, "interview completed",
		zap.String("session_id", sessionID),
		zap.Float64("overall_score", summary.OverallScore),
	)
	return &summary, nil
}

// GetSession returns one session owned by the caller.
func (uc *InterviewUsecase) GetSession(ctx context.Context, ownerID, sessionID string) (*entity.Session, error) {
	session, err := uc.sessionRepo.GetSession(ctx, sessionID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

// ListSessions returns the caller's sessions, newest first.
func (uc *InterviewUsecase) ListSessions(ctx context.Context, ownerID string) ([]*entity.Session, error) {
	sessions, err := uc.sessionRepo.ListSessions(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// DeleteSession removes a session owned by the caller.
func (uc *InterviewUsecase) DeleteSession(ctx context.Context, ownerID, sessionID string) error {
	if err := uc.sessionRepo.DeleteSession(ctx, sessionID, ownerID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	ctxzap.Info(ctx, "session deleted", zap.String("session_id", sessionID))
	return nil
}

// GetStats aggregates the caller's interview history.
func (uc *InterviewUsecase) GetStats(ctx context.Context, ownerID string) (*entity.UserStats, error) {
	sessions, err := uc.sessionRepo.ListSessions(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	stats := &entity.UserStats{TotalSessions: len(sessions)}
	var scoreSum float64
	var scored int
	for _, session := range sessions {
		stats.AnsweredQuestions += len(session.Answers)
		if session.Status != entity.SessionCompleted {
			continue
		}
		stats.CompletedSessions++
		if session.Summary != nil {
			scoreSum += session.Summary.OverallScore
			scored++
		}
	}
	if scored > 0 {
		stats.AverageScore = scoreSum / float64(scored)
	}
	return stats, nil
}

func exchanges(session *entity.Session) []entity.Exchange {
	out := make([]entity.Exchange, 0, len(session.Answers))
	for i, answer := range session.Answers {
		if i >= len(session.Questions) {
			break
		}
		ex := entity.Exchange{Question: session.Questions[i], Answer: answer}
		if i < len(session.Feedback) {
			ex.Score = session.Feedback[i].Score
		}
		out = append(out, ex)
	}
	return out
}
