package repository

import (
	"context"
	"sync"

	gocache "github.com/patrickmn/go-cache"

	"github.com/prepmate/interview-backend/internal/entity"
)

var _ UserRepository = &UserMemory{}

// UserMemory is the in-process fallback user store. Accounts created here do
// not survive a restart, which is acceptable for the degraded mode it backs.
type UserMemory struct {
	mu      sync.Mutex
	byID    *gocache.Cache
	byEmail *gocache.Cache
}

func NewUserMemory() *UserMemory {
	return &UserMemory{
		byID:    gocache.New(gocache.NoExpiration, 0),
		byEmail: gocache.New(gocache.NoExpiration, 0),
	}
}

func (r *UserMemory) CreateUser(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail.Get(user.Email); exists {
		return entity.ErrEmailTaken
	}
	clone := *user
	r.byID.Set(user.ID, &clone, gocache.NoExpiration)
	r.byEmail.Set(user.Email, &clone, gocache.NoExpiration)
	return nil
}

func (r *UserMemory) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return userFromCache(r.byEmail, email)
}

func (r *UserMemory) GetUserByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return userFromCache(r.byID, id)
}

func userFromCache(cache *gocache.Cache, key string) (*entity.User, error) {
	item, ok := cache.Get(key)
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	user, ok := item.(*entity.User)
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}
