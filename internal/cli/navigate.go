package cli

import (
	"time"

	"github.com/alexanderramin/researchdesk/internal/controller"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

type pushViewMsg struct {
	view View
}

type popViewMsg struct{}

// closeDialogsMsg closes every open dialog and returns to the list.
type closeDialogsMsg struct{}

// refreshViewMsg asks every view on the stack to reload from the store.
type refreshViewMsg struct{}

// dialogDoneMsg closes the top dialog and shows notice, if any. Views send
// it after a successful save or delete so the pop, the refresh and the
// notification happen together.
type dialogDoneMsg struct {
	notice controller.Notice
}

// noticeMsg shows a notice without touching the view stack.
type noticeMsg struct {
	notice controller.Notice
}

// noticeExpiredMsg dismisses the notice with the given id if it is still
// the one on screen.
type noticeExpiredMsg struct {
	id string
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func closeDialogs() tea.Msg { return closeDialogsMsg{} }

func refreshViews() tea.Msg { return refreshViewMsg{} }

func dialogDone(n controller.Notice) tea.Cmd {
	return func() tea.Msg { return dialogDoneMsg{notice: n} }
}

func showNotice(n controller.Notice) tea.Cmd {
	if n.IsZero() {
		return nil
	}
	return func() tea.Msg { return noticeMsg{notice: n} }
}

// expireNotice fires after ttl for the notice with id.
func expireNotice(id string, ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg { return noticeExpiredMsg{id: id} })
}
