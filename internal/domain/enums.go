package domain

type ProjectStatus string

const (
	StatusPlanned    ProjectStatus = "planned"
	StatusInProgress ProjectStatus = "in_progress"
	StatusCompleted  ProjectStatus = "completed"
	StatusCancelled  ProjectStatus = "cancelled"
)

// Statuses lists every recognized status in presentation order.
var Statuses = []ProjectStatus{
	StatusPlanned,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

// ValidStatuses is the canonical set of accepted status strings.
var ValidStatuses = map[string]bool{
	"planned": true, "in_progress": true, "completed": true, "cancelled": true,
}

// IsValid reports whether s is one of the recognized statuses.
func (s ProjectStatus) IsValid() bool {
	return ValidStatuses[string(s)]
}

// Normalize maps unrecognized statuses to StatusPlanned.
func (s ProjectStatus) Normalize() ProjectStatus {
	if s.IsValid() {
		return s
	}
	return StatusPlanned
}

// ProgressFor returns the fixed progress percentage for a status.
// Progress is never edited directly; it always follows the status.
// Unrecognized statuses map to 0.
func ProgressFor(s ProjectStatus) int {
	switch s {
	case StatusInProgress:
		return 50
	case StatusCompleted:
		return 100
	default:
		return 0
	}
}
