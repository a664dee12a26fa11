package presenter

import (
	"fmt"

	"github.com/alexanderramin/researchdesk/internal/domain"
)

// ExcerptLen is the number of description characters shown on a card.
const ExcerptLen = 150

// Action is something a card offers to do with its project.
type Action string

const (
	ActionView   Action = "view"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// CardAction binds an action to the project it applies to.
type CardAction struct {
	Action    Action
	ProjectID int
	Label     string
}

// Card is the list entry for one project.
type Card struct {
	ID        int
	Title     string
	Area      string
	Badge     Badge
	Icon      string
	Excerpt   string
	Owner     string
	StartDate string
	Progress  int
	Actions   []CardAction
}

// EmptyState is shown in place of cards when nothing matches.
type EmptyState struct {
	Icon         string
	Title        string
	Description  string
	CallToAction string
}

// ListView is the projection of a filtered project list.
// Empty is nil when there is at least one card.
type ListView struct {
	Cards      []Card
	Empty      *EmptyState
	Count      int
	CountLabel string
}

// BuildList projects projects into a ListView. Calling it again with the
// same input yields the same view.
func BuildList(projects []*domain.Project) ListView {
	lv := ListView{
		Count:      len(projects),
		CountLabel: CountLabel(len(projects)),
	}
	if len(projects) == 0 {
		lv.Empty = &EmptyState{
			Icon:         "📂",
			Title:        "No projects found",
			Description:  "No projects match the selected filters.",
			CallToAction: "New project",
		}
		return lv
	}

	lv.Cards = make([]Card, 0, len(projects))
	for _, p := range projects {
		lv.Cards = append(lv.Cards, BuildCard(p))
	}
	return lv
}

// BuildCard projects a single project into a Card.
func BuildCard(p *domain.Project) Card {
	return Card{
		ID:        p.ID,
		Title:     p.Title,
		Area:      p.Area,
		Badge:     StatusBadge(p.Status),
		Icon:      StatusIcon(p.Status),
		Excerpt:   Excerpt(p.Description, ExcerptLen),
		Owner:     p.Owner,
		StartDate: FormatDate(p.StartDate),
		Progress:  p.Progress,
		Actions: []CardAction{
			{Action: ActionView, ProjectID: p.ID, Label: "Details"},
			{Action: ActionEdit, ProjectID: p.ID, Label: "Edit"},
			{Action: ActionDelete, ProjectID: p.ID, Label: "Delete"},
		},
	}
}

// CountLabel renders the "N project(s) found" label.
func CountLabel(n int) string {
	return fmt.Sprintf("%d project(s) found", n)
}

// Excerpt returns the first n characters of s followed by "...".
// The ellipsis is always appended, matching the card layout.
func Excerpt(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r) + "..."
}

// Summary holds the header counters, computed over the whole store.
type Summary struct {
	Total      int
	InProgress int
	Completed  int
	Planned    int
	Cancelled  int
}

// BuildSummary counts projects by status.
func BuildSummary(projects []*domain.Project) Summary {
	s := Summary{Total: len(projects)}
	for _, p := range projects {
		switch p.Status {
		case domain.StatusInProgress:
			s.InProgress++
		case domain.StatusCompleted:
			s.Completed++
		case domain.StatusPlanned:
			s.Planned++
		case domain.StatusCancelled:
			s.Cancelled++
		}
	}
	return s
}
