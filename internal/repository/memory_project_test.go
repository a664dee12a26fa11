package repository_test

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/researchdesk/internal/repository"
	"github.com/alexanderramin/researchdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepo_ConcurrentReadsDuringWrites(t *testing.T) {
	repo := repository.NewMemoryProjectRepo()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = repo.Create(ctx, testutil.NewTestProject("Concurrent create"))
		}()
		go func() {
			defer wg.Done()
			_, _ = repo.List(ctx)
		}()
	}
	wg.Wait()

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 20)

	seen := map[int]bool{}
	for _, p := range all {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
	}
}

func TestMemoryRepo_InsertRejectsNonPositiveID(t *testing.T) {
	repo := repository.NewMemoryProjectRepo()
	err := repo.Insert(context.Background(), testutil.NewTestProject("No id here"))
	assert.Error(t, err)
}
