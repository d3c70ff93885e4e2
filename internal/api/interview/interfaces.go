package interview

import (
	"context"

	"github.com/prepmate/interview-backend/internal/entity"
	"github.com/prepmate/interview-backend/internal/usecase/interview"
)

type InterviewUsecase interface {
	StartInterview(ctx context.Context, ownerID string, req *entity.StartInterviewRequest) (*entity.Session, error)
	SubmitAnswer(ctx context.Context, ownerID, sessionID string, req *entity.SubmitAnswerRequest) (*entity.EvaluationResult, error)
	CompleteInterview(ctx context.Context, ownerID, sessionID string) (*entity.SummaryResult, error)
	GetSession(ctx context.Context, ownerID, sessionID string) (*entity.Session, error)
	ListSessions(ctx context.Context, ownerID string) ([]*entity.Session, error)
	DeleteSession(ctx context.Context, ownerID, sessionID string) error
	GetStats(ctx context.Context, ownerID string) (*entity.UserStats, error)
	BuildReport(ctx context.Context, ownerID, sessionID string, format entity.ReportFormat) (*interview.Report, error)
}
