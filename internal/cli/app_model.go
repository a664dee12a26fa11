package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/researchdesk/internal/cli/formatter"
	"github.com/alexanderramin/researchdesk/internal/controller"
	"github.com/alexanderramin/researchdesk/internal/presenter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// summaryLoadedMsg carries the header counters computed over the whole store.
type summaryLoadedMsg struct {
	summary presenter.Summary
	err     error
}

// appModel is the root bubbletea Model for the TUI.
// It manages the view stack, the header counters and the notice line.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	summary presenter.Summary
	notice  controller.Notice
}

func newAppModel(a *App) appModel {
	state := newSharedState(a)
	return appModel{
		state:     state,
		viewStack: []View{newProjectListView(state)},
	}
}

func runTUI(a *App) error {
	p := tea.NewProgram(newAppModel(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

func (m *appModel) loadSummary() tea.Cmd {
	projects := m.state.App.Projects
	return func() tea.Msg {
		all, err := projects.List(context.Background())
		if err != nil {
			return summaryLoadedMsg{err: err}
		}
		return summaryLoadedMsg{summary: presenter.BuildSummary(all)}
	}
}

// pop removes the top view and closes whatever dialog it represented.
func (m *appModel) pop() {
	if len(m.viewStack) <= 1 {
		return
	}
	switch m.activeView().ID() {
	case ViewEditForm:
		m.state.Dialogs.CloseEdit()
	case ViewDetail:
		m.state.Dialogs.CloseDetail()
	}
	m.viewStack = m.viewStack[:len(m.viewStack)-1]
}

// closeAll drops every dialog view and closes both dialogs.
func (m *appModel) closeAll() {
	m.state.Dialogs.CloseAll()
	if len(m.viewStack) > 1 {
		m.viewStack = m.viewStack[:1]
	}
}

func (m *appModel) setNotice(n controller.Notice) tea.Cmd {
	if n.IsZero() {
		return nil
	}
	m.notice = n
	return expireNotice(n.ID, controller.NoticeTTL)
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadSummary()}
	if v := m.activeView(); v != nil {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		// Every view sizes itself from SharedState, but the ones with
		// viewports need to hear about the change.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		m.pop()
		return m, nil

	case closeDialogsMsg:
		m.closeAll()
		return m, nil

	case refreshViewMsg:
		// Broadcast to every view so the list underneath a dialog reloads too.
		cmds := []tea.Cmd{m.loadSummary()}
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case summaryLoadedMsg:
		if msg.err == nil {
			m.summary = msg.summary
		}
		return m, nil

	case dialogDoneMsg:
		m.pop()
		cmd := m.setNotice(msg.notice)
		return m, tea.Batch(cmd, refreshViews)

	case noticeMsg:
		cmd := m.setNotice(msg.notice)
		return m, cmd

	case noticeExpiredMsg:
		if m.notice.ID == msg.id {
			m.notice = controller.Notice{}
		}
		return m, nil
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Views with their own text input get every key, Escape included.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch {
	case msg.String() == "q" && len(m.viewStack) == 1:
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyEsc && len(m.viewStack) > 1:
		m.closeAll()
		return m, nil
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.renderNotice(), m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("researchdesk")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	if len(crumbs) > 0 {
		title += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	sep := formatter.Dim(strings.Repeat("─", m.state.ContentWidth()))
	return title + "\n" + formatter.FormatSummary(m.summary) + "\n" + sep
}

func (m *appModel) renderNotice() string {
	return formatter.FormatNotice(m.notice)
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if len(m.viewStack) == 1 {
		hints = append(hints, formatter.Dim("q: quit"))
	}

	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", m.state.ContentWidth()))
	return sep + "\n" + strings.Join(hints, "  ")
}

// viewCapturesInput reports whether the active view should receive every
// key, bypassing the global q and Escape bindings.
func viewCapturesInput(v View) bool {
	switch v := v.(type) {
	case *projectListView:
		return v.searching
	case *wizardView:
		return true
	}
	return false
}
