// Package filter narrows a project list by free text, status and area.
package filter

import (
	"sort"
	"strings"

	"github.com/alexanderramin/researchdesk/internal/domain"
)

// Criteria selects projects. Zero-valued fields match everything.
type Criteria struct {
	Query  string
	Status domain.ProjectStatus
	Area   string
}

// IsZero reports whether c matches every project.
func (c Criteria) IsZero() bool {
	return c.Query == "" && c.Status == "" && c.Area == ""
}

// Match reports whether p satisfies every predicate in c.
// The query is matched case-insensitively against title, description and owner.
func (c Criteria) Match(p *domain.Project) bool {
	return c.matchQuery(p) &&
		(c.Status == "" || p.Status == c.Status) &&
		(c.Area == "" || p.Area == c.Area)
}

func (c Criteria) matchQuery(p *domain.Project) bool {
	if c.Query == "" {
		return true
	}
	lq := strings.ToLower(c.Query)
	return strings.Contains(strings.ToLower(p.Title), lq) ||
		strings.Contains(strings.ToLower(p.Description), lq) ||
		strings.Contains(strings.ToLower(p.Owner), lq)
}

// Apply returns the projects matching c, in their original order.
// The input slice is not modified.
func Apply(projects []*domain.Project, c Criteria) []*domain.Project {
	out := make([]*domain.Project, 0, len(projects))
	for _, p := range projects {
		if c.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// Areas returns the distinct non-empty areas of projects, sorted.
func Areas(projects []*domain.Project) []string {
	seen := make(map[string]bool)
	var areas []string
	for _, p := range projects {
		if p.Area == "" || seen[p.Area] {
			continue
		}
		seen[p.Area] = true
		areas = append(areas, p.Area)
	}
	sort.Strings(areas)
	return areas
}
