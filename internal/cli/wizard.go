package cli

import (
	"context"

	"github.com/alexanderramin/researchdesk/internal/cli/formatter"
	"github.com/alexanderramin/researchdesk/internal/controller"
	"github.com/alexanderramin/researchdesk/internal/domain"
	"github.com/alexanderramin/researchdesk/internal/presenter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// deskHuhTheme returns a huh theme using the Gruvbox palette.
func deskHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func statusOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.Statuses))
	for _, s := range domain.Statuses {
		opts = append(opts, huh.NewOption(presenter.StatusIcon(s)+" "+presenter.StatusLabel(s), string(s)))
	}
	return opts
}

// projectForm builds the edit form bound to the fields of data. Area
// suggestions come from the areas already in use.
func projectForm(data *controller.FormData, areas []string, width int) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("at least 5 characters").
				Value(&data.Title),
			huh.NewText().
				Title("Description").
				Description("Markdown is rendered in the detail view.").
				Lines(4).
				Value(&data.Description),
			huh.NewText().
				Title("Objectives").
				Lines(3).
				Value(&data.Objectives),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Owner").
				Value(&data.Owner),
			huh.NewInput().
				Title("Area").
				Suggestions(areas).
				Value(&data.Area),
			huh.NewInput().
				Title("Start date").
				Placeholder("YYYY-MM-DD").
				Value(&data.StartDate),
			huh.NewInput().
				Title("End date").
				Placeholder("YYYY-MM-DD").
				Value(&data.EndDate),
			huh.NewSelect[string]().
				Title("Status").
				Options(statusOptions()...).
				Value(&data.Status),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Funding").
				Placeholder("e.g. R$ 150.000,00").
				Value(&data.Funding),
			huh.NewText().
				Title("Results").
				Lines(3).
				Value(&data.Results),
		),
	).WithTheme(deskHuhTheme()).WithShowHelp(false).WithWidth(width)
}

// deleteForm asks the delete question and stores the answer in confirmed.
func deleteForm(title string, confirmed *bool, width int) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(controller.DeletePrompt).
				Description(title).
				Affirmative("Delete").
				Negative("Cancel").
				Value(confirmed),
		),
	).WithTheme(deskHuhTheme()).WithShowHelp(false).WithWidth(width)
}

// openDetail opens the detail dialog for id. A missing id does nothing.
func openDetail(state *SharedState, id int) tea.Cmd {
	dv, ok := state.Dialogs.OpenDetail(context.Background(), id)
	if !ok {
		return nil
	}
	return pushView(newDetailView(state, *dv))
}

// openEdit opens the edit dialog, pre-filled when id names a project.
func openEdit(state *SharedState, id *int) tea.Cmd {
	ctx := context.Background()
	data, err := state.Dialogs.OpenEdit(ctx, id)
	if err != nil {
		return showNotice(controller.NewNotice(controller.NoticeError, err.Error()))
	}
	// Area suggestions are optional: the form still opens without them.
	areas, err := state.App.Projects.Areas(ctx)
	if err != nil {
		warn := controller.NewNotice(controller.NoticeWarning, "Area suggestions unavailable: "+err.Error())
		return tea.Batch(pushView(newEditFormView(state, data, nil)), showNotice(warn))
	}
	return pushView(newEditFormView(state, data, areas))
}
