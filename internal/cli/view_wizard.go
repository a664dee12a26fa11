package cli

import (
	"context"

	"github.com/alexanderramin/researchdesk/internal/controller"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// wizardView wraps a huh.Form as a dialog on the navigation stack.
// When the form completes it calls done, which either closes the dialog
// or swaps in a fresh form to keep it open.
type wizardView struct {
	state    *SharedState
	id       ViewID
	form     *huh.Form
	titleStr string
	done     func(v *wizardView) tea.Cmd

	// Bound form values, set according to the dialog kind.
	data      *controller.FormData
	confirmed *bool
}

func (v *wizardView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *wizardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Escape closes every open dialog, not only this one.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, closeDialogs
	}
	// Already answered; waiting for the stack to drop this view.
	if v.form.State != huh.StateNormal {
		return v, nil
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	switch v.form.State {
	case huh.StateCompleted:
		return v, tea.Batch(cmd, v.done(v))
	case huh.StateAborted:
		return v, closeDialogs
	}
	return v, cmd
}

func (v *wizardView) View() string {
	return "\n" + v.form.View()
}

func (v *wizardView) ID() ViewID    { return v.id }
func (v *wizardView) Title() string { return v.titleStr }
func (v *wizardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab/enter", "next")),
		key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "back")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// newEditFormView opens the edit dialog on data. A failed submit keeps the
// dialog open with the entered values and shows the error notice.
func newEditFormView(state *SharedState, data controller.FormData, areas []string) *wizardView {
	v := &wizardView{
		state:    state,
		id:       ViewEditForm,
		titleStr: state.Dialogs.EditTitle(),
		data:     &data,
	}
	v.form = projectForm(v.data, areas, dialogWidth(state))
	v.done = func(v *wizardView) tea.Cmd {
		notice, err := state.Dialogs.Submit(context.Background(), *v.data)
		if err != nil {
			v.form = projectForm(v.data, areas, dialogWidth(state))
			return tea.Batch(v.form.Init(), showNotice(notice))
		}
		return dialogDone(notice)
	}
	return v
}

// newConfirmView asks before deleting project id.
func newConfirmView(state *SharedState, id int, title string) *wizardView {
	v := &wizardView{
		state:     state,
		id:        ViewConfirm,
		titleStr:  "Delete",
		confirmed: new(bool),
	}
	v.form = deleteForm(title, v.confirmed, dialogWidth(state))
	v.done = func(v *wizardView) tea.Cmd {
		answer := controller.ConfirmFunc(func(string) bool { return *v.confirmed })
		notice, deleted, err := state.Dialogs.Delete(context.Background(), id, answer)
		switch {
		case err != nil:
			return tea.Batch(popView(), showNotice(notice))
		case deleted:
			return dialogDone(notice)
		default:
			return popView()
		}
	}
	return v
}

func dialogWidth(state *SharedState) int {
	return min(state.ContentWidth()-4, 100)
}
