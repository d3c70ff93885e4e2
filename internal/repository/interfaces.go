package repository

import (
	"context"

	"github.com/prepmate/interview-backend/internal/entity"
)

// SessionRepository persists interview sessions keyed by session id plus
// owner id. Implementations must treat a lookup with the wrong owner as not
// found.
type SessionRepository interface {
	CreateSession(ctx context.Context, session *entity.Session) error
	GetSession(ctx context.Context, id, ownerID string) (*entity.Session, error)
	ListSessions(ctx context.Context, ownerID string) ([]*entity.Session, error)
	AppendAnswer(ctx context.Context, id, ownerID, answer string, feedback entity.EvaluationResult) error
	CompleteSession(ctx context.Context, id, ownerID string, summary entity.SummaryResult) error
	DeleteSession(ctx context.Context, id, ownerID string) error
}

// UserRepository persists registered users.
type UserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
}
