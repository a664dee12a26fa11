package controller

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/researchdesk/internal/domain"
)

// FormData is the raw content of the edit form. ID is empty when the form
// was opened for a new project.
type FormData struct {
	ID          string
	Title       string
	Description string
	Objectives  string
	Owner       string
	Area        string
	StartDate   string
	EndDate     string
	Status      string
	Funding     string
	Results     string
}

// formFromProject pre-fills every field from p.
func formFromProject(p *domain.Project) FormData {
	return FormData{
		ID:          strconv.Itoa(p.ID),
		Title:       p.Title,
		Description: p.Description,
		Objectives:  p.Objectives,
		Owner:       p.Owner,
		Area:        p.Area,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Status:      string(p.Status),
		Funding:     p.Funding,
		Results:     p.Results,
	}
}

func blankForm() FormData {
	return FormData{Status: string(domain.StatusPlanned)}
}

// project converts the form into a project with surrounding whitespace
// removed from every field.
func (f FormData) project() *domain.Project {
	return &domain.Project{
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Objectives:  strings.TrimSpace(f.Objectives),
		Owner:       strings.TrimSpace(f.Owner),
		Area:        strings.TrimSpace(f.Area),
		StartDate:   strings.TrimSpace(f.StartDate),
		EndDate:     strings.TrimSpace(f.EndDate),
		Status:      domain.ProjectStatus(strings.TrimSpace(f.Status)).Normalize(),
		Funding:     strings.TrimSpace(f.Funding),
		Results:     strings.TrimSpace(f.Results),
	}
}
