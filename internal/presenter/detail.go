package presenter

import (
	"fmt"

	"github.com/alexanderramin/researchdesk/internal/domain"
)

const (
	noResults = "No results recorded yet."
	noFunding = "Not informed"
)

// MarkerState is the state of a timeline point.
type MarkerState string

const (
	MarkerCompleted MarkerState = "completed"
	MarkerPending   MarkerState = "pending"
	// MarkerNone is an unmarked start point (the project has not begun).
	MarkerNone MarkerState = ""
)

// TimelinePoint is one of the two points on the detail timeline.
type TimelinePoint struct {
	Date   string
	Label  string
	Marker MarkerState
}

// MetaItem is one cell of the detail metadata grid.
type MetaItem struct {
	Label string
	Value string
}

// DetailView is the read-only projection of a single project.
type DetailView struct {
	ID          int
	Title       string
	Badge       Badge
	Area        string
	Description string
	Objectives  string
	Timeline    [2]TimelinePoint
	Results     string
	Meta        []MetaItem
}

// BuildDetail projects p into a DetailView.
//
// The start point is completed once the project has any progress; the
// completion point is completed only at 100%, otherwise pending.
func BuildDetail(p *domain.Project) DetailView {
	start := MarkerNone
	if p.Progress > 0 {
		start = MarkerCompleted
	}
	end := MarkerPending
	if p.Progress == 100 {
		end = MarkerCompleted
	}

	results := p.Results
	if results == "" {
		results = noResults
	}
	funding := p.Funding
	if funding == "" {
		funding = noFunding
	}

	return DetailView{
		ID:          p.ID,
		Title:       p.Title,
		Badge:       StatusBadge(p.Status),
		Area:        p.Area,
		Description: p.Description,
		Objectives:  p.Objectives,
		Timeline: [2]TimelinePoint{
			{Date: FormatDate(p.StartDate), Label: "Project start", Marker: start},
			{Date: FormatDate(p.EndDate), Label: "Expected completion", Marker: end},
		},
		Results: results,
		Meta: []MetaItem{
			{Label: "Owner", Value: p.Owner},
			{Label: "Funding", Value: funding},
			{Label: "Progress", Value: fmt.Sprintf("%d%%", p.Progress)},
		},
	}
}
