package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/prepmate/interview-backend/internal/entity"
)

var _ SessionRepository = &SessionMemory{}

// SessionMemory is the in-process fallback session store used when the
// database is unavailable or mocks are enabled. Entries expire so an
// abandoned interview does not live forever.
type SessionMemory struct {
	mu    sync.Mutex
	cache *gocache.Cache
}

const (
	memorySessionTTL     = 24 * time.Hour
	memoryCleanupEvery   = 30 * time.Minute
)

func NewSessionMemory() *SessionMemory {
	return &SessionMemory{
		cache: gocache.New(memorySessionTTL, memoryCleanupEvery),
	}
}

func (r *SessionMemory) CreateSession(_ context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Set(session.ID, cloneSession(session), gocache.DefaultExpiration)
	return nil
}

func (r *SessionMemory) GetSession(_ context.Context, id, ownerID string) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, err := r.get(id, ownerID)
	if err != nil {
		return nil, err
	}
	return cloneSession(session), nil
}

func (r *SessionMemory) ListSessions(_ context.Context, ownerID string) ([]*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sessions []*entity.Session
	for _, item := range r.cache.Items() {
		session, ok := item.Object.(*entity.Session)
		if !ok || session.OwnerID != ownerID {
			continue
		}
		sessions = append(sessions, cloneSession(session))
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	return sessions, nil
}

func (r *SessionMemory) AppendAnswer(_ context.Context, id, ownerID, answer string, feedback entity.EvaluationResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, err := r.get(id, ownerID)
	if err != nil {
		return err
	}
	if session.Status != entity.SessionActive {
		return entity.ErrSessionNotFound
	}
	session.Answers = append(session.Answers, answer)
	session.Feedback = append(session.Feedback, feedback)
	session.UpdatedAt = time.Now().UTC()
	r.cache.Set(id, session, gocache.DefaultExpiration)
	return nil
}

func (r *SessionMemory) CompleteSession(_ context.Context, id, ownerID string, summary entity.SummaryResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, err := r.get(id, ownerID)
	if err != nil {
		return err
	}
	session.Status = entity.SessionCompleted
	session.Summary = &summary
	session.UpdatedAt = time.Now().UTC()
	r.cache.Set(id, session, gocache.DefaultExpiration)
	return nil
}

func (r *SessionMemory) DeleteSession(_ context.Context, id, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.get(id, ownerID); err != nil {
		return err
	}
	r.cache.Delete(id)
	return nil
}

// get returns the live cache entry; callers must hold the lock and clone
// before handing the session out.
func (r *SessionMemory) get(id, ownerID string) (*entity.Session, error) {
	item, ok := r.cache.Get(id)
	if !ok {
		return nil, entity.ErrSessionNotFound
	}
	session, ok := item.(*entity.Session)
	if !ok || session.OwnerID != ownerID {
		return nil, entity.ErrSessionNotFound
	}
	return session, nil
}

func cloneSession(s *entity.Session) *entity.Session {
	clone := *s
	clone.Questions = append([]string(nil), s.Questions...)
	clone.Answers = append([]string(nil), s.Answers...)
	clone.Feedback = append([]entity.EvaluationResult(nil), s.Feedback...)
	if s.Summary != nil {
		summary := *s.Summary
		clone.Summary = &summary
	}
	return &clone
}
