package cli

import (
	"testing"

	"github.com/alexanderramin/researchdesk/internal/config"
	"github.com/alexanderramin/researchdesk/internal/controller"
	"github.com/alexanderramin/researchdesk/internal/service"
	"github.com/alexanderramin/researchdesk/internal/teatest"
	"github.com/alexanderramin/researchdesk/internal/testutil"
)

// TestDriver wraps teatest.Driver with access to appModel internals (view
// stack, shared state, notice) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// testApp wires an App over a seeded in-memory store.
func testApp(t *testing.T) *App {
	t.Helper()
	return &App{
		Config:   config.Default(),
		Projects: service.NewProjectService(testutil.SeededMemoryRepo(t)),
	}
}

// NewTestDriver builds the appModel, sets a terminal size large enough to
// show every seeded card and drains Init.
func NewTestDriver(t *testing.T, a *App) *TestDriver {
	t.Helper()
	d := teatest.New(t, newAppModel(a), teatest.WithSize(120, 60))
	d.DrainInit()
	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

func (d *TestDriver) Dialogs() *controller.FormController {
	return d.State().Dialogs
}

func (d *TestDriver) Notice() controller.Notice {
	return d.appModel().notice
}

func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// List returns the project list at the bottom of the stack.
func (d *TestDriver) List() *projectListView {
	return d.appModel().viewStack[0].(*projectListView)
}

// VisibleIDs returns the ids of the projects the list currently shows.
func (d *TestDriver) VisibleIDs() []int {
	return testutil.IDs(d.List().projects)
}

// Wizard returns the dialog on top of the stack, failing the test if the
// top view is not a form dialog.
func (d *TestDriver) Wizard() *wizardView {
	d.T.Helper()
	m := d.appModel()
	w, ok := m.activeView().(*wizardView)
	if !ok {
		d.T.Fatalf("top view is %T, not a dialog", m.activeView())
	}
	return w
}

// Complete finishes the top dialog as if the user had submitted the form.
func (d *TestDriver) Complete() {
	d.T.Helper()
	w := d.Wizard()
	d.Run(w.done(w))
}
