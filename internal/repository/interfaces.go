package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/researchdesk/internal/domain"
)

// ErrNotFound is returned by lookups for an id that is not in the store.
var ErrNotFound = errors.New("project not found")

// ProjectRepo is the record store: an ordered collection of projects plus
// the next-identifier counter. All mutations go through it.
//
// Returned projects are copies; changing them does not change the store.
type ProjectRepo interface {
	// List returns every project in insertion order.
	List(ctx context.Context) ([]*domain.Project, error)
	GetByID(ctx context.Context, id int) (*domain.Project, error)
	// Create assigns p.ID (max existing id + 1, or 1 when empty) and appends p.
	Create(ctx context.Context, p *domain.Project) error
	// Update merges patch into the project with the given id. It reports
	// false without error when no such project exists.
	Update(ctx context.Context, id int, patch domain.ProjectPatch) (bool, error)
	// Delete removes the project with the given id. It reports false without
	// error when no such project exists.
	Delete(ctx context.Context, id int) (bool, error)
	// NextID returns the id the next Create would assign.
	NextID(ctx context.Context) (int, error)
}

// Seed inserts projects in order, keeping their ids. It is meant for loading
// the initial dataset into an empty store.
func Seed(ctx context.Context, repo Seeder, projects []*domain.Project) error {
	for _, p := range projects {
		if err := repo.Insert(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// Seeder stores a project with a caller-chosen id.
type Seeder interface {
	Insert(ctx context.Context, p *domain.Project) error
}
