// Package presenter maps projects to display values and view models.
//
// Everything here is pure: no terminal, no store access. The cli package
// styles the resulting view models for the terminal.
package presenter

import (
	"time"

	"github.com/alexanderramin/researchdesk/internal/domain"
)

const (
	isoLayout     = "2006-01-02"
	displayLayout = "02/01/2006"
)

// FormatDate renders an ISO date as DD/MM/YYYY. Empty input renders as "-";
// input that is not an ISO date is returned unchanged.
func FormatDate(iso string) string {
	if iso == "" {
		return "-"
	}
	t, err := time.Parse(isoLayout, iso)
	if err != nil {
		return iso
	}
	return t.Format(displayLayout)
}

// Badge is the style class and label shown for a status.
type Badge struct {
	Class string
	Label string
}

var badges = map[domain.ProjectStatus]Badge{
	domain.StatusPlanned:    {Class: "badge-info", Label: "Planned"},
	domain.StatusInProgress: {Class: "badge-warning", Label: "In Progress"},
	domain.StatusCompleted:  {Class: "badge-success", Label: "Completed"},
	domain.StatusCancelled:  {Class: "badge-error", Label: "Cancelled"},
}

var icons = map[domain.ProjectStatus]string{
	domain.StatusPlanned:    "📋",
	domain.StatusInProgress: "🔄",
	domain.StatusCompleted:  "✅",
	domain.StatusCancelled:  "❌",
}

// StatusBadge returns the badge for s, falling back to the planned badge.
func StatusBadge(s domain.ProjectStatus) Badge {
	if b, ok := badges[s]; ok {
		return b
	}
	return badges[domain.StatusPlanned]
}

// StatusIcon returns the glyph for s, falling back to the planned glyph.
func StatusIcon(s domain.ProjectStatus) string {
	if icon, ok := icons[s]; ok {
		return icon
	}
	return icons[domain.StatusPlanned]
}

// StatusLabel is shorthand for StatusBadge(s).Label.
func StatusLabel(s domain.ProjectStatus) string {
	return StatusBadge(s).Label
}
