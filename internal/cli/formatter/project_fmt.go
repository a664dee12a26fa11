package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/researchdesk/internal/controller"
	"github.com/alexanderramin/researchdesk/internal/presenter"
	"github.com/charmbracelet/lipgloss"
)

const progressBarWidth = 10

// FormatSummary renders the header counters on one line.
func FormatSummary(s presenter.Summary) string {
	parts := []string{
		Bold(strconv.Itoa(s.Total)) + Dim(" total"),
		StyleYellow.Render(fmt.Sprintf("%d in progress", s.InProgress)),
		StyleGreen.Render(fmt.Sprintf("%d completed", s.Completed)),
		StyleBlue.Render(fmt.Sprintf("%d planned", s.Planned)),
	}
	if s.Cancelled > 0 {
		parts = append(parts, StyleRed.Render(fmt.Sprintf("%d cancelled", s.Cancelled)))
	}
	return strings.Join(parts, Dim(" · "))
}

// FormatCard renders one list entry in three lines: heading, excerpt and
// owner line. The selected card gets an accent bar on its left edge.
func FormatCard(c presenter.Card, selected bool, width int) string {
	width = max(width, 40)
	inner := width - 2

	title := StyleFg.Render(c.Title)
	if selected {
		title = StyleBold.Render(c.Title)
	}
	heading := fmt.Sprintf("%s %s  %s", c.Icon, title, StatusPill(c.Badge))
	if c.Area != "" {
		heading += "  " + StylePurple.Render(c.Area)
	}

	meta := strings.Join([]string{
		Dim("👤 ") + StyleFg.Render(c.Owner),
		Dim("📅 ") + StyleFg.Render(c.StartDate),
		RenderProgress(c.Progress, progressBarWidth),
	}, "   ")

	body := strings.Join([]string{
		Truncate(heading, inner),
		Dim(Truncate(c.Excerpt, inner)),
		Truncate(meta, inner),
	}, "\n")

	accent := ColorDim
	if selected {
		accent = ColorHeader
	}
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(accent).
		PaddingLeft(1).
		Render(body)
}

// FormatEmptyState renders the placeholder shown when no project matches.
func FormatEmptyState(e presenter.EmptyState) string {
	lines := []string{
		e.Icon,
		Bold(e.Title),
		Dim(e.Description),
		"",
		StyleHeader.Render("n") + Dim(": "+e.CallToAction),
	}
	return lipgloss.NewStyle().Padding(1, 4).Render(strings.Join(lines, "\n"))
}

// FormatProjectTable renders a list view as a table followed by its count
// label, for non-interactive output.
func FormatProjectTable(lv presenter.ListView) string {
	if lv.Empty != nil {
		return fmt.Sprintf("%s %s\n%s\n", lv.Empty.Icon, Bold(lv.Empty.Title), Dim(lv.Empty.Description))
	}

	headers := []string{"ID", "TITLE", "AREA", "STATUS", "OWNER", "START", "PROGRESS"}
	rows := make([][]string, 0, len(lv.Cards))
	for _, c := range lv.Cards {
		rows = append(rows, []string{
			StyleGreen.Render(strconv.Itoa(c.ID)),
			Bold(Truncate(c.Title, 40)),
			StylePurple.Render(c.Area),
			StatusPill(c.Badge),
			c.Owner,
			c.StartDate,
			RenderProgress(c.Progress, progressBarWidth),
		})
	}
	return RenderTable(headers, rows) + "\n" + Dim(lv.CountLabel) + "\n"
}

// FormatDetail renders the read-only detail of a project. Long text is
// rendered as Markdown wrapped at width.
func FormatDetail(d presenter.DetailView, width int) string {
	width = max(width, 40)
	var b strings.Builder

	b.WriteString(StyleBold.Render(d.Title) + "\n")
	b.WriteString(StatusPill(d.Badge))
	if d.Area != "" {
		b.WriteString("  " + StylePurple.Render(d.Area))
	}
	b.WriteString("\n\n")

	section := func(title, body string) {
		b.WriteString(Header(title) + "\n")
		b.WriteString(body + "\n\n")
	}
	section("Description", markdownOrDash(d.Description, width))
	section("Objectives", markdownOrDash(d.Objectives, width))
	section("Timeline", formatTimeline(d.Timeline))
	section("Results", markdownOrDash(d.Results, width))

	rows := make([][]string, 0, len(d.Meta))
	for _, m := range d.Meta {
		rows = append(rows, []string{Dim(m.Label), StyleFg.Render(m.Value)})
	}
	b.WriteString(RenderTable([]string{"", ""}, rows))
	return strings.TrimRight(b.String(), "\n")
}

func formatTimeline(points [2]presenter.TimelinePoint) string {
	lines := make([]string, 0, len(points))
	for _, p := range points {
		lines = append(lines, fmt.Sprintf("%s %s  %s", timelineMarker(p.Marker), PadRight(p.Date, 10), Dim(p.Label)))
	}
	return strings.Join(lines, "\n")
}

func timelineMarker(m presenter.MarkerState) string {
	switch m {
	case presenter.MarkerCompleted:
		return StyleGreen.Render("●")
	case presenter.MarkerPending:
		return StyleYellow.Render("○")
	default:
		return Dim("·")
	}
}

func markdownOrDash(text string, width int) string {
	if strings.TrimSpace(text) == "" {
		return Dim("-")
	}
	return RenderMarkdown(text, width)
}

// FormatNotice renders a transient notification line.
func FormatNotice(n controller.Notice) string {
	if n.IsZero() {
		return ""
	}
	var style lipgloss.Style
	switch n.Kind {
	case controller.NoticeSuccess:
		style = StyleGreen
	case controller.NoticeError:
		style = StyleRed
	case controller.NoticeWarning:
		style = StyleYellow
	default:
		style = StyleBlue
	}
	return style.Render(n.Icon() + " " + n.Message)
}
