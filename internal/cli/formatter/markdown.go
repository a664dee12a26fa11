package formatter

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// MarkdownStyle is the glamour standard style used for long text. A fixed
// style keeps glamour from querying the terminal background.
var MarkdownStyle = "dark"

var (
	mdMu        sync.Mutex
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// RenderMarkdown renders md for the terminal, wrapped at width. On any
// rendering failure the input is returned as-is.
func RenderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	width = max(width, 10)

	mdMu.Lock()
	defer mdMu.Unlock()

	key := MarkdownStyle + ":" + strconv.Itoa(width)
	r, ok := mdRenderers[key]
	if !ok {
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(MarkdownStyle),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRenderers[key] = r
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
