package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/prepmate/interview-backend/internal/entity"
)

var (
	_ SessionRepository = &SessionStore{}
	_ UserRepository    = &UserStore{}
)

// SessionStore wraps a durable repository with an in-memory fallback. When
// the durable store errors, or a record only exists in memory because it was
// created during an outage, the fallback serves the request. With a nil
// durable store every call goes straight to memory.
type SessionStore struct {
	durable  SessionRepository
	fallback SessionRepository
	logger   *zap.Logger
}

func NewSessionStore(durable SessionRepository, fallback SessionRepository, logger *zap.Logger) *SessionStore {
	return &SessionStore{durable: durable, fallback: fallback, logger: logger}
}

// infrastructureFailure reports whether the error is an actual store failure
// rather than a domain outcome like "not found".
func infrastructureFailure(err error) bool {
	return err != nil &&
		!errors.Is(err, entity.ErrSessionNotFound) &&
		!errors.Is(err, entity.ErrUserNotFound) &&
		!errors.Is(err, entity.ErrEmailTaken)
}

func (s *SessionStore) CreateSession(ctx context.Context, session *entity.Session) error {
	if s.durable == nil {
		return s.fallback.CreateSession(ctx, session)
	}
	err := s.durable.CreateSession(ctx, session)
	if infrastructureFailure(err) {
		s.logger.Warn("durable session store unavailable, using memory fallback", zap.Error(err))
		return s.fallback.CreateSession(ctx, session)
	}
	return err
}

func (s *SessionStore) GetSession(ctx context.Context, id, ownerID string) (*entity.Session, error) {
	if s.durable == nil {
		return s.fallback.GetSession(ctx, id, ownerID)
	}
	session, err := s.durable.GetSession(ctx, id, ownerID)
	if err == nil {
		return session, nil
	}
	if infrastructureFailure(err) {
		s.logger.Warn("durable session store unavailable, using memory fallback", zap.Error(err))
	}
	// Not-found also falls through: the session may live only in memory.
	return s.fallback.GetSession(ctx, id, ownerID)
}

func (s *SessionStore) ListSessions(ctx context.Context, ownerID string) ([]*entity.Session, error) {
	if s.durable == nil {
		return s.fallback.ListSessions(ctx, ownerID)
	}
	durable, err := s.durable.ListSessions(ctx, ownerID)
	if infrastructureFailure(err) {
		s.logger.Warn("durable session store unavailable, using memory fallback", zap.Error(err))
		return s.fallback.ListSessions(ctx, ownerID)
	}
	inMemory, ferr := s.fallback.ListSessions(ctx, ownerID)
	if ferr != nil || len(inMemory) == 0 {
		return durable, err
	}

	seen := make(map[string]struct{}, len(durable))
	for _, session := range durable {
		seen[session.ID] = struct{}{}
	}
	for _, session := range inMemory {
		if _, dup := seen[session.ID]; !dup {
			durable = append(durable, session)
		}
	}
	return durable, nil
}

func (s *SessionStore) AppendAnswer(ctx context.Context, id, ownerID, answer string, feedback entity.EvaluationResult) error {
	return s.writeThrough(ctx, id, ownerID, func(repo SessionRepository) error {
		return repo.AppendAnswer(ctx, id, ownerID, answer, feedback)
	})
}

func (s *SessionStore) CompleteSession(ctx context.Context, id, ownerID string, summary entity.SummaryResult) error {
	return s.writeThrough(ctx, id, ownerID, func(repo SessionRepository) error {
		return repo.CompleteSession(ctx, id, ownerID, summary)
	})
}

func (s *SessionStore) DeleteSession(ctx context.Context, id, ownerID string) error {
	return s.writeThrough(ctx, id, ownerID, func(repo SessionRepository) error {
		return repo.DeleteSession(ctx, id, ownerID)
	})
}

// writeThrough applies a mutation to the durable store, retrying against the
// fallback when the durable store fails or never saw the session.
func (s *SessionStore) writeThrough(_ context.Context, _, _ string, op func(SessionRepository) error) error {
	if s.durable == nil {
		return op(s.fallback)
	}
	err := op(s.durable)
	if err == nil {
		return nil
	}
	if infrastructureFailure(err) {
		s.logger.Warn("durable session store unavailable, using memory fallback", zap.Error(err))
	}
	return op(s.fallback)
}

// UserStore is the durable-or-fallback wrapper for users.
type UserStore struct {
	durable  UserRepository
	fallback UserRepository
	logger   *zap.Logger
}

func NewUserStore(durable UserRepository, fallback UserRepository, logger *zap.Logger) *UserStore {
	return &UserStore{durable: durable, fallback: fallback, logger: logger}
}

func (s *UserStore) CreateUser(ctx context.Context, user *entity.User) error {
	if s.durable == nil {
		return s.fallback.CreateUser(ctx, user)
	}
	err := s.durable.CreateUser(ctx, user)
	if infrastructureFailure(err) {
		s.logger.Warn("durable user store unavailable, using memory fallback", zap.Error(err))
		return s.fallback.CreateUser(ctx, user)
	}
	return err
}

func (s *UserStore) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	if s.durable == nil {
		return s.fallback.GetUserByEmail(ctx, email)
	}
	user, err := s.durable.GetUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if infrastructureFailure(err) {
		s.logger.Warn("durable user store unavailable, using memory fallback", zap.Error(err))
	}
	return s.fallback.GetUserByEmail(ctx, email)
}

func (s *UserStore) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	if s.durable == nil {
		return s.fallback.GetUserByID(ctx, id)
	}
	user, err := s.durable.GetUserByID(ctx, id)
	if err == nil {
		return user, nil
	}
	if infrastructureFailure(err) {
		s.logger.Warn("durable user store unavailable, using memory fallback", zap.Error(err))
	}
	return s.fallback.GetUserByID(ctx, id)
}
