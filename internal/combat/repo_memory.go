package combat

import (
	"context"
	"sync"
)

// Repository stores live combat sessions for the presentation layer. The
// store is safe for concurrent use; individual sessions are not, and callers
// must serialize commands against any one session themselves.
type Repository interface {
	Get(ctx context.Context, id string) (*Session, bool, error)
	Put(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]string, error)
}

type MemoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{sessions: map[string]*Session{}}
}

func (r *MemoryRepo) Get(ctx context.Context, id string) (*Session, bool, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok, nil
}

func (r *MemoryRepo) Put(ctx context.Context, s *Session) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id string) (bool, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return false, nil
	}
	delete(r.sessions, id)
	return true, nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]string, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		out = append(out, id)
	}
	return out, nil
}
