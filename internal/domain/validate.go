package domain

import (
	"fmt"
	"unicode/utf8"
)

const (
	MinTitleLen       = 5
	MinDescriptionLen = 20
)

// ValidationError reports a user-correctable problem with submitted input.
// Message is suitable for showing directly to the user.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the fields required for a project to be saved. Checks run
// in a fixed order and the first failure is returned. Lengths are counted in
// characters, not bytes.
func (p *Project) Validate() error {
	if utf8.RuneCountInString(p.Title) < MinTitleLen {
		return &ValidationError{Field: "title", Message: fmt.Sprintf("Title must be at least %d characters.", MinTitleLen)}
	}
	if utf8.RuneCountInString(p.Description) < MinDescriptionLen {
		return &ValidationError{Field: "description", Message: fmt.Sprintf("Description must be at least %d characters.", MinDescriptionLen)}
	}
	if p.Owner == "" {
		return &ValidationError{Field: "owner", Message: "Enter the project owner."}
	}
	if p.StartDate == "" {
		return &ValidationError{Field: "start_date", Message: "Enter the start date."}
	}
	return nil
}
