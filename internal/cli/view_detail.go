package cli

import (
	"context"

	"github.com/alexanderramin/researchdesk/internal/cli/formatter"
	"github.com/alexanderramin/researchdesk/internal/presenter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// detailView is the read-only detail dialog, scrollable when the project
// text does not fit.
type detailView struct {
	state  *SharedState
	detail presenter.DetailView
	vp     viewport.Model
}

func newDetailView(state *SharedState, dv presenter.DetailView) *detailView {
	vp := viewport.New(state.ContentWidth(), state.ContentHeight())
	vp.KeyMap = detailViewportKeyMap()
	vp.MouseWheelEnabled = true
	v := &detailView{state: state, detail: dv, vp: vp}
	v.render()
	return v
}

func (v *detailView) ID() ViewID    { return ViewDetail }
func (v *detailView) Title() string { return v.detail.Title }

func (v *detailView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

func (v *detailView) Init() tea.Cmd { return nil }

func (v *detailView) render() {
	v.vp.SetContent(formatter.FormatDetail(v.detail, v.vp.Width-4))
}

func (v *detailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = v.state.ContentWidth()
		v.vp.Height = v.state.ContentHeight()
		v.render()
		return v, nil

	case refreshViewMsg:
		p, err := v.state.App.Projects.GetByID(context.Background(), v.detail.ID)
		if err != nil {
			// Deleted underneath us.
			return v, popView()
		}
		v.detail = presenter.BuildDetail(p)
		v.render()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "e":
			id := v.detail.ID
			return v, openEdit(v.state, &id)
		case "d":
			return v, pushView(newConfirmView(v.state, v.detail.ID, v.detail.Title))
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *detailView) View() string {
	return v.vp.View()
}

// detailViewportKeyMap leaves letter keys free for the view's own actions.
func detailViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}
