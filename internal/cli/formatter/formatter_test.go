package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/researchdesk/internal/controller"
	"github.com/alexanderramin/researchdesk/internal/domain"
	"github.com/alexanderramin/researchdesk/internal/presenter"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func init() {
	MarkdownStyle = "notty"
}

func sampleProject() *domain.Project {
	return &domain.Project{
		ID:          7,
		Title:       "Urban heat islands",
		Description: "Mapping **surface temperature** across the metropolitan region with drone flights.",
		Objectives:  "- Build a thermal map\n- Publish open data",
		Owner:       "Dr. Rafael Lima",
		Area:        "Climate",
		StartDate:   "2024-05-10",
		EndDate:     "2025-05-10",
		Status:      domain.StatusInProgress,
		Progress:    50,
	}
}

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name   string
		pct    int
		filled int
		label  string
	}{
		{"zero", 0, 0, "  0%"},
		{"half", 50, 5, " 50%"},
		{"full", 100, 10, "100%"},
		{"over clamps", 150, 10, "100%"},
		{"negative clamps", -5, 0, "  0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ansi.Strip(RenderProgress(tt.pct, 10))
			assert.Equal(t, tt.filled, strings.Count(got, filledBlock))
			assert.Equal(t, 10-tt.filled, strings.Count(got, emptyBlock))
			assert.True(t, strings.HasSuffix(got, tt.label), got)
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "", Truncate("abc", 0))

	styled := StyleGreen.Render("abcdefgh")
	cut := Truncate(styled, 5)
	assert.Equal(t, "abcd…", ansi.Strip(cut))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, 5, lipgloss.Width(PadRight("abcdefgh", 5)))
}

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	out := ansi.Strip(RenderTable(
		[]string{"ID", "NAME"},
		[][]string{
			{StyleGreen.Render("1"), "Alpha"},
			{"22", Bold("Beta")},
		},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "ID  NAME", strings.TrimRight(lines[0], " "))
	assert.Equal(t, "1   Alpha", lines[2])
	assert.Equal(t, "22  Beta", strings.TrimRight(lines[3], " "))
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestStatusPill(t *testing.T) {
	for _, s := range domain.Statuses {
		got := ansi.Strip(StatusPill(presenter.StatusBadge(s)))
		assert.Equal(t, "● "+presenter.StatusLabel(s), got)
	}
}

func TestFormatSummary(t *testing.T) {
	got := ansi.Strip(FormatSummary(presenter.Summary{Total: 5, InProgress: 2, Completed: 2, Planned: 1}))
	assert.Contains(t, got, "5 total")
	assert.Contains(t, got, "2 in progress")
	assert.Contains(t, got, "1 planned")
	assert.NotContains(t, got, "cancelled")

	got = ansi.Strip(FormatSummary(presenter.Summary{Total: 1, Cancelled: 1}))
	assert.Contains(t, got, "1 cancelled")
}

func TestFormatCard(t *testing.T) {
	card := presenter.BuildCard(sampleProject())

	got := ansi.Strip(FormatCard(card, true, 100))
	assert.Contains(t, got, "Urban heat islands")
	assert.Contains(t, got, "In Progress")
	assert.Contains(t, got, "Climate")
	assert.Contains(t, got, "Dr. Rafael Lima")
	assert.Contains(t, got, "10/05/2024")
	assert.Contains(t, got, "50%")
	for _, line := range strings.Split(got, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 100)
	}
}

func TestFormatEmptyState(t *testing.T) {
	lv := presenter.BuildList(nil)
	got := ansi.Strip(FormatEmptyState(*lv.Empty))
	assert.Contains(t, got, "No projects found")
	assert.Contains(t, got, "No projects match the selected filters.")
	assert.Contains(t, got, "New project")
}

func TestFormatProjectTable(t *testing.T) {
	lv := presenter.BuildList([]*domain.Project{sampleProject()})
	got := ansi.Strip(FormatProjectTable(lv))
	assert.Contains(t, got, "TITLE")
	assert.Contains(t, got, "Urban heat islands")
	assert.Contains(t, got, "1 project(s) found")

	empty := ansi.Strip(FormatProjectTable(presenter.BuildList(nil)))
	assert.Contains(t, empty, "No projects found")
}

func TestFormatDetail(t *testing.T) {
	dv := presenter.BuildDetail(sampleProject())
	got := ansi.Strip(FormatDetail(dv, 80))

	assert.Contains(t, got, "Urban heat islands")
	assert.Contains(t, got, "DESCRIPTION")
	assert.Contains(t, got, "surface temperature")
	assert.Contains(t, got, "thermal map")
	assert.Contains(t, got, "Project start")
	assert.Contains(t, got, "Expected completion")
	assert.Contains(t, got, "No results recorded yet.")
	assert.Contains(t, got, "Not informed")
	assert.Contains(t, got, "50%")
}

func TestRenderMarkdown_Empty(t *testing.T) {
	assert.Empty(t, RenderMarkdown("   ", 40))
}

func TestFormatNotice(t *testing.T) {
	assert.Empty(t, FormatNotice(controller.Notice{}))
	got := ansi.Strip(FormatNotice(controller.Notice{Kind: controller.NoticeSuccess, Message: "Saved"}))
	assert.Equal(t, "✓ Saved", got)
}
