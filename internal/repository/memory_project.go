package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexanderramin/researchdesk/internal/domain"
)

// MemoryProjectRepo implements ProjectRepo on a slice.
type MemoryProjectRepo struct {
	mu       sync.RWMutex
	projects []*domain.Project
}

// NewMemoryProjectRepo creates an empty MemoryProjectRepo.
func NewMemoryProjectRepo() *MemoryProjectRepo {
	return &MemoryProjectRepo{}
}

func (r *MemoryProjectRepo) List(_ context.Context) ([]*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Project, len(r.projects))
	for i, p := range r.projects {
		out[i] = p.Clone()
	}
	return out, nil
}

func (r *MemoryProjectRepo) GetByID(_ context.Context, id int) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.projects[i].Clone(), nil
	}
	return nil, ErrNotFound
}

func (r *MemoryProjectRepo) Create(_ context.Context, p *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID()
	r.projects = append(r.projects, p.Clone())
	return nil
}

// Insert appends p keeping its id.
func (r *MemoryProjectRepo) Insert(_ context.Context, p *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID <= 0 {
		return fmt.Errorf("inserting project: id must be positive, got %d", p.ID)
	}
	if r.indexOf(p.ID) >= 0 {
		return fmt.Errorf("inserting project: duplicate id %d", p.ID)
	}
	r.projects = append(r.projects, p.Clone())
	return nil
}

func (r *MemoryProjectRepo) Update(_ context.Context, id int, patch domain.ProjectPatch) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	patch.Apply(r.projects[i])
	return true, nil
}

func (r *MemoryProjectRepo) Delete(_ context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.projects = append(r.projects[:i:i], r.projects[i+1:]...)
	return true, nil
}

func (r *MemoryProjectRepo) NextID(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.nextID(), nil
}

// nextID must be called with the lock held.
func (r *MemoryProjectRepo) nextID() int {
	maxID := 0
	for _, p := range r.projects {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}

func (r *MemoryProjectRepo) indexOf(id int) int {
	for i, p := range r.projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}
