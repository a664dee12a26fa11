package testutil

import (
	"context"
	"strings"
	"testing"

	"github.com/alexanderramin/researchdesk/internal/domain"
	"github.com/alexanderramin/researchdesk/internal/repository"
	"github.com/alexanderramin/researchdesk/internal/seed"
)

// ProjectOption customizes a test project.
type ProjectOption func(*domain.Project)

func WithStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
		p.SyncProgress()
	}
}

func WithArea(area string) ProjectOption {
	return func(p *domain.Project) {
		p.Area = area
	}
}

func WithOwner(owner string) ProjectOption {
	return func(p *domain.Project) {
		p.Owner = owner
	}
}

func WithDescription(desc string) ProjectOption {
	return func(p *domain.Project) {
		p.Description = desc
	}
}

func WithID(id int) ProjectOption {
	return func(p *domain.Project) {
		p.ID = id
	}
}

// NewTestProject returns a valid planned project with the given title.
func NewTestProject(title string, opts ...ProjectOption) *domain.Project {
	p := &domain.Project{
		Title:       title,
		Description: "Description of " + strings.ToLower(title) + " for testing purposes.",
		Objectives:  "Produce results",
		Owner:       "Dr. Test",
		Area:        "Testing",
		StartDate:   "2024-01-01",
		EndDate:     "2024-12-31",
		Status:      domain.StatusPlanned,
		Funding:     "R$ 1.000,00",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SeededMemoryRepo returns a memory store loaded with the built-in dataset.
func SeededMemoryRepo(t *testing.T) *repository.MemoryProjectRepo {
	t.Helper()
	repo := repository.NewMemoryProjectRepo()
	projects, err := seed.Default()
	if err != nil {
		t.Fatalf("loading seed: %v", err)
	}
	if err := repository.Seed(context.Background(), repo, projects); err != nil {
		t.Fatalf("seeding repo: %v", err)
	}
	return repo
}

// IDs extracts project ids in order.
func IDs(projects []*domain.Project) []int {
	ids := make([]int, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	return ids
}
