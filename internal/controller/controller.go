// Package controller drives the edit and detail dialogs and the delete
// confirmation on top of the project service.
//
// It owns dialog state only. Records live in the store behind the service;
// rendering is left to the caller, which re-reads the store after every
// successful mutation.
package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/researchdesk/internal/domain"
	"github.com/alexanderramin/researchdesk/internal/presenter"
	"github.com/alexanderramin/researchdesk/internal/repository"
	"github.com/alexanderramin/researchdesk/internal/service"
)

// ErrDialogClosed is returned by Submit when the edit dialog is not open.
var ErrDialogClosed = errors.New("edit dialog is not open")

// DeletePrompt is the question asked before a project is deleted.
const DeletePrompt = "Are you sure you want to delete this project? This action cannot be undone."

type EditState int

const (
	EditClosed EditState = iota
	EditCreating
	EditUpdating
)

func (s EditState) String() string {
	switch s {
	case EditCreating:
		return "open-for-create"
	case EditUpdating:
		return "open-for-edit"
	default:
		return "closed"
	}
}

type DetailState int

const (
	DetailClosed DetailState = iota
	DetailOpen
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// FormController holds the state of the two dialogs.
type FormController struct {
	projects service.ProjectService

	edit      EditState
	editingID int

	detail   DetailState
	detailID int
}

func New(projects service.ProjectService) *FormController {
	return &FormController{projects: projects}
}

func (c *FormController) EditState() EditState     { return c.edit }
func (c *FormController) DetailState() DetailState { return c.detail }

// EditingID is the id of the project being edited, or 0.
func (c *FormController) EditingID() int { return c.editingID }

// DetailID is the id of the project shown in the detail dialog, or 0.
func (c *FormController) DetailID() int { return c.detailID }

// EditTitle is the heading of the edit dialog for its current state.
func (c *FormController) EditTitle() string {
	if c.edit == EditUpdating {
		return "Edit project"
	}
	return "New project"
}

// OpenEdit opens the edit dialog. When id is non-nil and names an existing
// project the form is pre-filled from it; otherwise a blank form for a new
// project is returned.
func (c *FormController) OpenEdit(ctx context.Context, id *int) (FormData, error) {
	if id != nil {
		p, err := c.projects.GetByID(ctx, *id)
		switch {
		case err == nil:
			c.edit = EditUpdating
			c.editingID = p.ID
			return formFromProject(p), nil
		case !errors.Is(err, repository.ErrNotFound):
			return FormData{}, fmt.Errorf("loading project %d: %w", *id, err)
		}
	}
	c.edit = EditCreating
	c.editingID = 0
	return blankForm(), nil
}

// CloseEdit closes the edit dialog, discarding any unsaved input.
func (c *FormController) CloseEdit() {
	c.edit = EditClosed
	c.editingID = 0
}

// Submit validates the form and creates or updates the project.
//
// On a validation or store failure the dialog stays open, the store is left
// as it was, and the returned error notice carries the message to show. On
// success the dialog is closed and a success notice is returned.
func (c *FormController) Submit(ctx context.Context, f FormData) (Notice, error) {
	if c.edit == EditClosed {
		return Notice{}, ErrDialogClosed
	}

	p := f.project()
	if err := p.Validate(); err != nil {
		return failureNotice(err), err
	}

	switch c.edit {
	case EditUpdating:
		found, err := c.projects.Update(ctx, c.editingID, domain.FullPatch(p))
		if err != nil {
			return failureNotice(err), err
		}
		c.CloseEdit()
		if !found {
			return Notice{}, nil
		}
		return NewNotice(NoticeSuccess, "Project updated successfully!"), nil
	default:
		if err := c.projects.Create(ctx, p); err != nil {
			return failureNotice(err), err
		}
		c.CloseEdit()
		return NewNotice(NoticeSuccess, "Project created successfully!"), nil
	}
}

// OpenDetail opens the read-only detail dialog. When id does not name a
// project the dialog stays closed and ok is false.
func (c *FormController) OpenDetail(ctx context.Context, id int) (view *presenter.DetailView, ok bool) {
	p, err := c.projects.GetByID(ctx, id)
	if err != nil {
		return nil, false
	}
	dv := presenter.BuildDetail(p)
	c.detail = DetailOpen
	c.detailID = id
	return &dv, true
}

func (c *FormController) CloseDetail() {
	c.detail = DetailClosed
	c.detailID = 0
}

// CloseAll closes both dialogs.
func (c *FormController) CloseAll() {
	c.CloseEdit()
	c.CloseDetail()
}

// Delete asks confirm before deleting the project. Declining changes
// nothing and reports deleted=false.
func (c *FormController) Delete(ctx context.Context, id int, confirm Confirmer) (notice Notice, deleted bool, err error) {
	if confirm == nil || !confirm.Confirm(DeletePrompt) {
		return Notice{}, false, nil
	}
	notice, err = c.DeleteConfirmed(ctx, id)
	return notice, err == nil && !notice.IsZero(), err
}

// DeleteConfirmed deletes the project once the user has agreed. A missing id
// is a silent no-op.
func (c *FormController) DeleteConfirmed(ctx context.Context, id int) (Notice, error) {
	found, err := c.projects.Delete(ctx, id)
	if err != nil {
		return failureNotice(err), err
	}
	if !found {
		return Notice{}, nil
	}
	if c.detailID == id {
		c.CloseDetail()
	}
	return NewNotice(NoticeSuccess, "Project deleted successfully!"), nil
}

func failureNotice(err error) Notice {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return NewNotice(NoticeError, ve.Message)
	}
	return NewNotice(NoticeError, "Something went wrong: "+err.Error())
}
