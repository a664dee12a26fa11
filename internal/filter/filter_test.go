package filter_test

import (
	"testing"

	"github.com/alexanderramin/researchdesk/internal/domain"
	"github.com/alexanderramin/researchdesk/internal/filter"
	"github.com/alexanderramin/researchdesk/internal/seed"
	"github.com/alexanderramin/researchdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProjects(t *testing.T) []*domain.Project {
	t.Helper()
	projects, err := seed.Default()
	require.NoError(t, err)
	return projects
}

func TestApply_EmptyCriteriaReturnsAllInOrder(t *testing.T) {
	projects := seedProjects(t)
	got := filter.Apply(projects, filter.Criteria{})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, testutil.IDs(got))
	assert.True(t, filter.Criteria{}.IsZero())
}

func TestApply_StatusExactMatch(t *testing.T) {
	projects := seedProjects(t)

	tests := []struct {
		status domain.ProjectStatus
		want   []int
	}{
		{domain.StatusCompleted, []int{3, 5}},
		{domain.StatusInProgress, []int{1, 2}},
		{domain.StatusPlanned, []int{4}},
		{domain.StatusCancelled, []int{}},
	}
	for _, tc := range tests {
		t.Run(string(tc.status), func(t *testing.T) {
			got := filter.Apply(projects, filter.Criteria{Status: tc.status})
			assert.Equal(t, tc.want, testutil.IDs(got))
		})
	}
}

func TestApply_QueryIsCaseInsensitiveAcrossFields(t *testing.T) {
	projects := seedProjects(t)

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{"title", "DENGUE", []int{2}},
		{"description", "amazon", []int{1}},
		{"owner", "juliana", []int{5}},
		{"no match", "quantum", []int{}},
		{"objectives are not searched", "pre-clinical", []int{}},
		{"area is not searched", "biomedicine", []int{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := filter.Apply(projects, filter.Criteria{Query: tc.query})
			assert.Equal(t, tc.want, testutil.IDs(got))
		})
	}
}

func TestApply_CombinedPredicates(t *testing.T) {
	projects := seedProjects(t)

	got := filter.Apply(projects, filter.Criteria{Query: "dr.", Status: domain.StatusCompleted})
	assert.Equal(t, []int{3, 5}, testutil.IDs(got))

	got = filter.Apply(projects, filter.Criteria{Query: "forest", Status: domain.StatusCompleted})
	assert.Equal(t, []int{5}, testutil.IDs(got))

	got = filter.Apply(projects, filter.Criteria{Status: domain.StatusCompleted, Area: "Engineering"})
	assert.Equal(t, []int{3}, testutil.IDs(got))
}

func TestApply_DoesNotModifyInput(t *testing.T) {
	projects := seedProjects(t)
	_ = filter.Apply(projects, filter.Criteria{Status: domain.StatusPlanned})
	assert.Len(t, projects, 5)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, testutil.IDs(projects))
}

func TestCriteria_MatchAgreesWithApply(t *testing.T) {
	projects := seedProjects(t)
	c := filter.Criteria{Query: "a", Area: "Biology"}
	for _, p := range projects {
		want := len(filter.Apply([]*domain.Project{p}, c)) == 1
		assert.Equal(t, want, c.Match(p), "project %d", p.ID)
	}
}

func TestAreas_SortedDistinct(t *testing.T) {
	projects := seedProjects(t)
	projects = append(projects, testutil.NewTestProject("Duplicate area", testutil.WithArea("Biology")))
	projects = append(projects, testutil.NewTestProject("No area", testutil.WithArea("")))

	assert.Equal(t,
		[]string{"Biology", "Biomedicine", "Data Science", "Education", "Engineering"},
		filter.Areas(projects))
}
