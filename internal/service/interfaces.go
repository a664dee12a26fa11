package service

import (
	"context"

	"github.com/alexanderramin/researchdesk/internal/domain"
	"github.com/alexanderramin/researchdesk/internal/filter"
)

type ProjectService interface {
	List(ctx context.Context) ([]*domain.Project, error)
	GetByID(ctx context.Context, id int) (*domain.Project, error)
	Filter(ctx context.Context, c filter.Criteria) ([]*domain.Project, error)
	Areas(ctx context.Context) ([]string, error)
	Create(ctx context.Context, p *domain.Project) error
	Update(ctx context.Context, id int, patch domain.ProjectPatch) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}
