package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/researchdesk/internal/domain"
	"github.com/alexanderramin/researchdesk/internal/filter"
	"github.com/alexanderramin/researchdesk/internal/repository"
)

type projectService struct {
	projects repository.ProjectRepo
	observer UseCaseObserver
}

func NewProjectService(projects repository.ProjectRepo, observers ...UseCaseObserver) ProjectService {
	return &projectService{
		projects: projects,
		observer: useCaseObserverOrNoop(observers),
	}
}

// observe reports a finished use case. Call it deferred with a pointer to
// the named error result.
func (s *projectService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, errp *error) {
	var err error
	if errp != nil {
		err = *errp
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectService) GetByID(ctx context.Context, id int) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) Filter(ctx context.Context, c filter.Criteria) (matched []*domain.Project, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"query":  c.Query,
		"status": string(c.Status),
		"area":   c.Area,
	}
	defer s.observe(ctx, "filter-projects", startedAt, fields, &err)

	all, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	matched = filter.Apply(all, c)
	fields["matched"] = len(matched)
	return matched, nil
}

func (s *projectService) Areas(ctx context.Context) (areas []string, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer s.observe(ctx, "list-areas", startedAt, fields, &err)

	all, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	areas = filter.Areas(all)
	fields["areas"] = len(areas)
	return areas, nil
}

// Create validates p, derives its progress and stores it with a fresh id.
// Validation failures are returned as *domain.ValidationError and leave the
// store untouched.
func (s *projectService) Create(ctx context.Context, p *domain.Project) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"status": string(p.Status)}
	defer s.observe(ctx, "create-project", startedAt, fields, &err)

	if err = p.Validate(); err != nil {
		return err
	}
	p.SyncProgress()
	if err = s.projects.Create(ctx, p); err != nil {
		return fmt.Errorf("creating project: %w", err)
	}
	fields["project_id"] = p.ID
	return nil
}

// Update merges patch into the stored project after validating the merged
// result. A missing id reports false with no error.
func (s *projectService) Update(ctx context.Context, id int, patch domain.ProjectPatch) (found bool, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project_id": id}
	defer s.observe(ctx, "update-project", startedAt, fields, &err)

	current, err := s.projects.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		fields["found"] = false
		return false, nil
	}
	if err != nil {
		return false, err
	}

	merged := current.Clone()
	patch.Apply(merged)
	if err = merged.Validate(); err != nil {
		return false, err
	}

	found, err = s.projects.Update(ctx, id, patch)
	if err != nil {
		return false, fmt.Errorf("updating project: %w", err)
	}
	fields["found"] = found
	fields["status"] = string(merged.Status)
	return found, nil
}

func (s *projectService) Delete(ctx context.Context, id int) (found bool, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project_id": id}
	defer s.observe(ctx, "delete-project", startedAt, fields, &err)

	found, err = s.projects.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("deleting project: %w", err)
	}
	fields["found"] = found
	return found, nil
}
