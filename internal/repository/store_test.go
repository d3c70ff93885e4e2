package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/prepmate/interview-backend/internal/entity"
)

// failingSessionRepo simulates a dead database.
type failingSessionRepo struct{}

var errStoreDown = errors.New("connection refused")

func (failingSessionRepo) CreateSession(context.Context, *entity.Session) error { return errStoreDown }
func (failingSessionRepo) GetSession(context.Context, string, string) (*entity.Session, error) {
	return nil, errStoreDown
}
func (failingSessionRepo) ListSessions(context.Context, string) ([]*entity.Session, error) {
	return nil, errStoreDown
}
func (failingSessionRepo) AppendAnswer(context.Context, string, string, string, entity.EvaluationResult) error {
	return errStoreDown
}
func (failingSessionRepo) CompleteSession(context.Context, string, string, entity.SummaryResult) error {
	return errStoreDown
}
func (failingSessionRepo) DeleteSession(context.Context, string, string) error { return errStoreDown }

func testSession(id, owner string) *entity.Session {
	return &entity.Session{
		ID:         id,
		OwnerID:    owner,
		Persona:    entity.PersonaHR,
		Difficulty: entity.DifficultyEasy,
		Status:     entity.SessionActive,
		Questions:  []string{"Why us?"},
		CreatedAt:  time.Now().UTC(),
	}
}

func TestSessionStoreFallsBackWhenDurableDown(t *testing.T) {
	store := NewSessionStore(failingSessionRepo{}, NewSessionMemory(), zap.NewNop())
	ctx := context.Background()

	session := testSession("s1", "u1")
	require.NoError(t, store.CreateSession(ctx, session))

	got, err := store.GetSession(ctx, "s1", "u1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID)

	require.NoError(t, store.AppendAnswer(ctx, "s1", "u1", "my answer", entity.EvaluationResult{Score: 6}))
	got, err = store.GetSession(ctx, "s1", "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"my answer"}, got.Answers)
}

func TestSessionStoreNilDurableUsesMemoryOnly(t *testing.T) {
	store := NewSessionStore(nil, NewSessionMemory(), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, store.CreateSession(ctx, testSession("s1", "u1")))

	sessions, err := store.ListSessions(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, sessions, 1)

	_, err = store.GetSession(ctx, "s1", "someone-else")
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestSessionStoreNotFoundDoesNotMaskAsFailure(t *testing.T) {
	store := NewSessionStore(NewSessionMemory(), NewSessionMemory(), zap.NewNop())

	_, err := store.GetSession(context.Background(), "missing", "u1")
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestSessionMemoryLifecycle(t *testing.T) {
	repo := NewSessionMemory()
	ctx := context.Background()

	session := testSession("s1", "u1")
	require.NoError(t, repo.CreateSession(ctx, session))

	require.NoError(t, repo.AppendAnswer(ctx, "s1", "u1", "a1", entity.EvaluationResult{Score: 7}))
	require.NoError(t, repo.CompleteSession(ctx, "s1", "u1", entity.SummaryResult{OverallScore: 7}))

	got, err := repo.GetSession(ctx, "s1", "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.SessionCompleted, got.Status)
	require.NotNil(t, got.Summary)
	assert.Equal(t, 7.0, got.Summary.OverallScore)

	// Completed sessions reject further answers.
	err = repo.AppendAnswer(ctx, "s1", "u1", "a2", entity.EvaluationResult{})
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)

	require.NoError(t, repo.DeleteSession(ctx, "s1", "u1"))
	_, err = repo.GetSession(ctx, "s1", "u1")
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestSessionMemoryClonesOnRead(t *testing.T) {
	repo := NewSessionMemory()
	ctx := context.Background()
	require.NoError(t, repo.CreateSession(ctx, testSession("s1", "u1")))

	got, err := repo.GetSession(ctx, "s1", "u1")
	require.NoError(t, err)
	got.Questions[0] = "mutated?"

	again, err := repo.GetSession(ctx, "s1", "u1")
	require.NoError(t, err)
	assert.Equal(t, "Why us?", again.Questions[0])
}

func TestUserStoreFallsBackWhenDurableDown(t *testing.T) {
	store := NewUserStore(failingUserRepo{}, NewUserMemory(), zap.NewNop())
	ctx := context.Background()

	user := &entity.User{ID: "u1", Email: "a@b.c", Name: "A", PasswordHash: "x", CreatedAt: time.Now()}
	require.NoError(t, store.CreateUser(ctx, user))

	got, err := store.GetUserByEmail(ctx, "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)

	assert.ErrorIs(t, store.CreateUser(ctx, user), entity.ErrEmailTaken)
}

type failingUserRepo struct{}

func (failingUserRepo) CreateUser(context.Context, *entity.User) error { return errStoreDown }
func (failingUserRepo) GetUserByEmail(context.Context, string) (*entity.User, error) {
	return nil, errStoreDown
}
func (failingUserRepo) GetUserByID(context.Context, string) (*entity.User, error) {
	return nil, errStoreDown
}
