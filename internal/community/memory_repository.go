package community

import (
	"context"
	"sort"
	"sync"
)

// InMemoryRepository is an in-memory implementation of Repository for
// development and testing.
type InMemoryRepository struct {
	mu      sync.RWMutex
	members map[string]*Member
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemoryRepository creates a new in-memory member repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		members: make(map[string]*Member),
	}
}

func (r *InMemoryRepository) List(_ context.Context) ([]*Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Member, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, cloneMember(m))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *InMemoryRepository) Get(_ context.Context, id string) (*Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.members[id]
	if !ok {
		return nil, ErrMemberNotFound
	}
	return cloneMember(m), nil
}

func (r *InMemoryRepository) GetByUser(_ context.Context, userID string) (*Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.members {
		if m.UserID == userID {
			return cloneMember(m), nil
		}
	}
	return nil, ErrMemberNotFound
}

func (r *InMemoryRepository) Create(_ context.Context, m *Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.members {
		if existing.UserID == m.UserID {
			return ErrMemberExists
		}
	}
	r.members[m.ID] = cloneMember(m)
	return nil
}

func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.members[id]; !ok {
		return ErrMemberNotFound
	}
	delete(r.members, id)
	return nil
}

func cloneMember(m *Member) *Member {
	c := *m
	c.Interests = append([]string(nil), m.Interests...)
	return &c
}
