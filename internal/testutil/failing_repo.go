package testutil

import (
	"context"
	"sync/atomic"

	"github.com/alexanderramin/researchdesk/internal/domain"
	"github.com/alexanderramin/researchdesk/internal/repository"
)

// FailingRepo wraps a ProjectRepo and injects Err into mutating calls.
// Reads pass through. FailOn selects which mutating call fails, counting
// from 1; zero fails every mutating call.
type FailingRepo struct {
	repository.ProjectRepo
	FailOn int32
	Err    error

	count atomic.Int32
}

func (f *FailingRepo) shouldFail() bool {
	n := f.count.Add(1)
	return f.FailOn == 0 || n == f.FailOn
}

func (f *FailingRepo) Create(ctx context.Context, p *domain.Project) error {
	if f.shouldFail() {
		return f.Err
	}
	return f.ProjectRepo.Create(ctx, p)
}

func (f *FailingRepo) Update(ctx context.Context, id int, patch domain.ProjectPatch) (bool, error) {
	if f.shouldFail() {
		return false, f.Err
	}
	return f.ProjectRepo.Update(ctx, id, patch)
}

func (f *FailingRepo) Delete(ctx context.Context, id int) (bool, error) {
	if f.shouldFail() {
		return false, f.Err
	}
	return f.ProjectRepo.Delete(ctx, id)
}
