package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/alexanderramin/researchdesk/internal/domain"
	"github.com/alexanderramin/researchdesk/internal/filter"
	"github.com/alexanderramin/researchdesk/internal/repository"
	"github.com/alexanderramin/researchdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func TestProjectService_CreateDerivesProgress(t *testing.T) {
	ctx := context.Background()
	for _, status := range domain.Statuses {
		t.Run(string(status), func(t *testing.T) {
			svc := NewProjectService(repository.NewMemoryProjectRepo())
			p := testutil.NewTestProject("Progress check")
			p.Status = status
			p.Progress = 77

			require.NoError(t, svc.Create(ctx, p))

			stored, err := svc.GetByID(ctx, p.ID)
			require.NoError(t, err)
			assert.Equal(t, domain.ProgressFor(status), stored.Progress)
		})
	}
}

func TestProjectService_UpdateDerivesProgress(t *testing.T) {
	ctx := context.Background()
	svc := NewProjectService(testutil.SeededMemoryRepo(t))

	for _, status := range domain.Statuses {
		s := status
		found, err := svc.Update(ctx, 1, domain.ProjectPatch{Status: &s})
		require.NoError(t, err)
		require.True(t, found)

		p, err := svc.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, domain.ProgressFor(status), p.Progress, "status %q", status)
	}
}

func TestProjectService_SequentialIDs(t *testing.T) {
	ctx := context.Background()
	svc := NewProjectService(repository.NewMemoryProjectRepo())

	prev := 0
	for i := 0; i < 10; i++ {
		p := testutil.NewTestProject("Sequential project")
		require.NoError(t, svc.Create(ctx, p))
		assert.Greater(t, p.ID, prev)
		prev = p.ID
	}
	assert.Equal(t, 10, prev)
}

func TestProjectService_CreateRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	repo := testutil.SeededMemoryRepo(t)
	svc := NewProjectService(repo)

	p := testutil.NewTestProject("abcd")
	err := svc.Create(ctx, p)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "title", ve.Field)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestProjectService_UpdateValidatesMergedRecord(t *testing.T) {
	ctx := context.Background()
	svc := NewProjectService(testutil.SeededMemoryRepo(t))

	short := "too short"
	_, err := svc.Update(ctx, 2, domain.ProjectPatch{Description: &short})
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "description", ve.Field)

	p, err := svc.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.NotEqual(t, short, p.Description)
}

func TestProjectService_UpdateMissingIsNoop(t *testing.T) {
	svc := NewProjectService(testutil.SeededMemoryRepo(t))
	title := "Valid title"
	found, err := svc.Update(context.Background(), 404, domain.ProjectPatch{Title: &title})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestProjectService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := NewProjectService(testutil.SeededMemoryRepo(t))

	found, err := svc.Delete(ctx, 3)
	require.NoError(t, err)
	assert.True(t, found)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 5}, testutil.IDs(all))

	found, err = svc.Delete(ctx, 3)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestProjectService_FilterAndAreas(t *testing.T) {
	ctx := context.Background()
	svc := NewProjectService(testutil.SeededMemoryRepo(t))

	got, err := svc.Filter(ctx, filter.Criteria{Status: domain.StatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5}, testutil.IDs(got))

	areas, err := svc.Areas(ctx)
	require.NoError(t, err)
	assert.Len(t, areas, 5)
}

func TestProjectService_StoreErrorsAreWrapped(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk on fire")
	svc := NewProjectService(&testutil.FailingRepo{ProjectRepo: testutil.SeededMemoryRepo(t), Err: boom})

	err := svc.Create(ctx, testutil.NewTestProject("Will not land"))
	assert.ErrorIs(t, err, boom)

	_, err = svc.Delete(ctx, 1)
	assert.ErrorIs(t, err, boom)

	title := "Renamed title"
	_, err = svc.Update(ctx, 1, domain.ProjectPatch{Title: &title})
	assert.ErrorIs(t, err, boom)
}

func TestProjectService_ObservesUseCases(t *testing.T) {
	ctx := context.Background()
	obs := &recordingObserver{}
	svc := NewProjectService(testutil.SeededMemoryRepo(t), obs)

	require.NoError(t, svc.Create(ctx, testutil.NewTestProject("Observed project")))
	_ = svc.Create(ctx, testutil.NewTestProject("bad"))
	_, _ = svc.Delete(ctx, 1)

	require.Len(t, obs.events, 3)
	assert.Equal(t, "create-project", obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, 6, obs.events[0].Fields["project_id"])
	assert.False(t, obs.events[1].Success)
	assert.Error(t, obs.events[1].Err)
	assert.Equal(t, "delete-project", obs.events[2].Name)
	assert.Equal(t, true, obs.events[2].Fields["found"])
}

type listFailingRepo struct {
	repository.ProjectRepo
	err error
}

func (r listFailingRepo) List(context.Context) ([]*domain.Project, error) {
	return nil, r.err
}

func TestProjectService_AreasFailureIsObserved(t *testing.T) {
	boom := errors.New("disk gone")
	obs := &recordingObserver{}
	svc := NewProjectService(listFailingRepo{ProjectRepo: testutil.SeededMemoryRepo(t), err: boom}, obs)

	_, err := svc.Areas(context.Background())
	require.ErrorIs(t, err, boom)

	require.Len(t, obs.events, 1)
	assert.Equal(t, "list-areas", obs.events[0].Name)
	assert.False(t, obs.events[0].Success)
	assert.ErrorIs(t, obs.events[0].Err, boom)
}

func TestLogUseCaseObserver_WritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	obs := NewLogUseCaseObserver(logger)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:    "delete-project",
		Success: true,
		Fields:  map[string]any{"project_id": 4},
	})

	line := buf.String()
	assert.True(t, strings.Contains(line, "use_case=delete-project"), line)
	assert.Contains(t, line, "project_id=4")
	assert.Contains(t, line, "success=true")
}

func TestNewLogUseCaseObserver_NilLogger(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
