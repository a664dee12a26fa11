package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/researchdesk/internal/cli/formatter"
	"github.com/alexanderramin/researchdesk/internal/domain"
	"github.com/alexanderramin/researchdesk/internal/filter"
	"github.com/alexanderramin/researchdesk/internal/presenter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// cardHeight is the number of lines a card takes, including the gap below it.
const cardHeight = 4

// listChromeHeight covers the filter bar, the count line and a blank line.
const listChromeHeight = 3

// projectsLoadedMsg carries the filtered projects and the area options,
// tagged with the criteria they were computed for.
type projectsLoadedMsg struct {
	criteria filter.Criteria
	projects []*domain.Project
	areas    []string
	err      error
}

// statusCycle is the order the status filter steps through. The empty
// status means "any".
var statusCycle = append([]domain.ProjectStatus{""}, domain.Statuses...)

// projectListView shows the filtered projects as cards.
type projectListView struct {
	state    *SharedState
	criteria filter.Criteria
	areas    []string
	projects []*domain.Project
	list     presenter.ListView
	cursor   int
	offset   int
	loading  bool
	err      error

	query     textinput.Model
	searching bool
}

func newProjectListView(state *SharedState) *projectListView {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search title, description or owner"
	ti.CharLimit = 120
	return &projectListView{
		state:   state,
		query:   ti,
		loading: true,
	}
}

func (v *projectListView) ID() ViewID    { return ViewProjectList }
func (v *projectListView) Title() string { return "Projects" }

func (v *projectListView) ShortHelp() []key.Binding {
	if v.searching {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "stop searching")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "area")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
		key.NewBinding(key.WithKeys("enter", "v"), key.WithHelp("enter", "details")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	}
}

func (v *projectListView) Init() tea.Cmd {
	return v.load()
}

func (v *projectListView) load() tea.Cmd {
	projects := v.state.App.Projects
	c := v.criteria
	return func() tea.Msg {
		ctx := context.Background()
		matched, err := projects.Filter(ctx, c)
		if err != nil {
			return projectsLoadedMsg{criteria: c, err: err}
		}
		areas, err := projects.Areas(ctx)
		return projectsLoadedMsg{criteria: c, projects: matched, areas: areas, err: err}
	}
}

func (v *projectListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case projectsLoadedMsg:
		// Loads run concurrently; a reply for older criteria is stale.
		if msg.criteria != v.criteria {
			return v, nil
		}
		v.loading = false
		v.err = msg.err
		if msg.err != nil {
			return v, nil
		}
		v.projects = msg.projects
		v.areas = msg.areas
		v.list = presenter.BuildList(msg.projects)
		v.cursor = min(v.cursor, max(len(v.projects)-1, 0))
		v.scrollToCursor()
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		if v.searching {
			return v.updateSearch(msg)
		}
		return v.updateNormal(msg)
	}

	if v.searching {
		var cmd tea.Cmd
		v.query, cmd = v.query.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *projectListView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
			v.scrollToCursor()
		}
	case "down", "j":
		if v.cursor < len(v.projects)-1 {
			v.cursor++
			v.scrollToCursor()
		}
	case "/":
		v.searching = true
		return v, v.query.Focus()
	case "s":
		v.criteria.Status = nextStatus(v.criteria.Status)
		return v, v.refilter()
	case "a":
		v.criteria.Area = nextArea(v.areas, v.criteria.Area)
		return v, v.refilter()
	case "x":
		v.criteria = filter.Criteria{}
		v.query.SetValue("")
		return v, v.refilter()
	case "enter", "v":
		if p := v.selected(); p != nil {
			return v, openDetail(v.state, p.ID)
		}
	case "e":
		if p := v.selected(); p != nil {
			id := p.ID
			return v, openEdit(v.state, &id)
		}
	case "n":
		return v, openEdit(v.state, nil)
	case "d":
		if p := v.selected(); p != nil {
			return v, pushView(newConfirmView(v.state, p.ID, p.Title))
		}
	}
	return v, nil
}

func (v *projectListView) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		v.searching = false
		v.query.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.query, cmd = v.query.Update(msg)
	if q := v.query.Value(); q != v.criteria.Query {
		v.criteria.Query = q
		return v, tea.Batch(cmd, v.refilter())
	}
	return v, cmd
}

// refilter resets the selection and reloads with the current criteria.
func (v *projectListView) refilter() tea.Cmd {
	v.cursor = 0
	v.offset = 0
	return v.load()
}

func (v *projectListView) selected() *domain.Project {
	if v.cursor < 0 || v.cursor >= len(v.projects) {
		return nil
	}
	return v.projects[v.cursor]
}

func (v *projectListView) visibleCards() int {
	return max((v.state.ContentHeight()-listChromeHeight)/cardHeight, 1)
}

func (v *projectListView) scrollToCursor() {
	n := v.visibleCards()
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+n {
		v.offset = v.cursor - n + 1
	}
}

func nextStatus(cur domain.ProjectStatus) domain.ProjectStatus {
	for i, s := range statusCycle {
		if s == cur {
			return statusCycle[(i+1)%len(statusCycle)]
		}
	}
	return ""
}

// nextArea steps through areas, wrapping back to "any" after the last one.
func nextArea(areas []string, cur string) string {
	if cur == "" {
		if len(areas) == 0 {
			return ""
		}
		return areas[0]
	}
	for i, a := range areas {
		if a == cur && i+1 < len(areas) {
			return areas[i+1]
		}
	}
	return ""
}

func (v *projectListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading projects...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var b strings.Builder
	b.WriteString(v.renderFilterBar() + "\n")
	b.WriteString("  " + formatter.Dim(v.list.CountLabel) + "\n\n")

	if v.list.Empty != nil {
		b.WriteString(formatter.FormatEmptyState(*v.list.Empty))
		return b.String()
	}

	width := v.state.ContentWidth() - 2
	end := min(v.offset+v.visibleCards(), len(v.list.Cards))
	for i := v.offset; i < end; i++ {
		b.WriteString(indent(formatter.FormatCard(v.list.Cards[i], i == v.cursor, width), "  "))
		b.WriteString("\n\n")
	}
	if end < len(v.list.Cards) {
		b.WriteString("  " + formatter.Dim("↓ more") + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (v *projectListView) renderFilterBar() string {
	var search string
	switch {
	case v.searching:
		search = v.query.View()
	case v.criteria.Query != "":
		search = formatter.StyleYellow.Render("/ ") + v.criteria.Query
	default:
		search = formatter.Dim("/ search")
	}

	status := formatter.Dim("any")
	if v.criteria.Status != "" {
		status = formatter.StatusPill(presenter.StatusBadge(v.criteria.Status))
	}
	area := formatter.Dim("any")
	if v.criteria.Area != "" {
		area = formatter.StylePurple.Render(v.criteria.Area)
	}

	return "  " + search + "   " + formatter.Dim("status:") + " " + status + "   " + formatter.Dim("area:") + " " + area
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
