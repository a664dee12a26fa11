package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProject() *Project {
	return &Project{
		Title:       "Soil Study",
		Description: "Long-term soil sampling across three biomes.",
		Owner:       "Dr. Lima",
		StartDate:   "2024-01-15",
		Status:      StatusPlanned,
	}
}

func TestProgressFor(t *testing.T) {
	cases := map[ProjectStatus]int{
		StatusPlanned:    0,
		StatusInProgress: 50,
		StatusCompleted:  100,
		StatusCancelled:  0,
		"unknown":        0,
	}
	for status, want := range cases {
		assert.Equal(t, want, ProgressFor(status), "status %q", status)
	}
}

func TestNormalize_UnknownFallsBackToPlanned(t *testing.T) {
	assert.Equal(t, StatusPlanned, ProjectStatus("archived").Normalize())
	assert.Equal(t, StatusCompleted, StatusCompleted.Normalize())
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, validProject().Validate())
}

func TestValidate_TitleBoundary(t *testing.T) {
	p := validProject()
	p.Title = "abcd"
	err := p.Validate()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "title", ve.Field)

	p.Title = "abcde"
	assert.NoError(t, p.Validate())
}

func TestValidate_DescriptionBoundary(t *testing.T) {
	p := validProject()
	p.Description = strings.Repeat("x", 19)
	err := p.Validate()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "description", ve.Field)

	p.Description = strings.Repeat("x", 20)
	assert.NoError(t, p.Validate())
}

func TestValidate_CountsCharactersNotBytes(t *testing.T) {
	p := validProject()
	p.Title = "Ação!"
	assert.NoError(t, p.Validate())
}

func TestValidate_DistinctMessages(t *testing.T) {
	owner := validProject()
	owner.Owner = ""
	start := validProject()
	start.StartDate = ""

	errOwner := owner.Validate()
	errStart := start.Validate()
	require.Error(t, errOwner)
	require.Error(t, errStart)
	assert.NotEqual(t, errOwner.Error(), errStart.Error())
	assert.Contains(t, errOwner.Error(), "owner")
	assert.Contains(t, errStart.Error(), "start date")
}

func TestPatchApply_MergesAndDerivesProgress(t *testing.T) {
	p := validProject()
	p.Funding = "R$ 10.000,00"

	title := "Renamed Study"
	status := StatusCompleted
	ProjectPatch{Title: &title, Status: &status}.Apply(p)

	assert.Equal(t, "Renamed Study", p.Title)
	assert.Equal(t, "R$ 10.000,00", p.Funding, "unspecified fields are retained")
	assert.Equal(t, 100, p.Progress)
}

func TestFullPatch_OverwritesEveryField(t *testing.T) {
	src := validProject()
	src.Status = StatusInProgress
	dst := &Project{ID: 9, Title: "old", Funding: "old"}

	FullPatch(src).Apply(dst)

	assert.Equal(t, 9, dst.ID)
	assert.Equal(t, src.Title, dst.Title)
	assert.Equal(t, "", dst.Funding)
	assert.Equal(t, 50, dst.Progress)
}

func TestClone_IsIndependent(t *testing.T) {
	p := validProject()
	c := p.Clone()
	c.Title = "changed"
	assert.Equal(t, "Soil Study", p.Title)
}

func TestPatch_IsEmpty(t *testing.T) {
	assert.True(t, ProjectPatch{}.IsEmpty())
	s := "x"
	assert.False(t, ProjectPatch{Owner: &s}.IsEmpty())
}
