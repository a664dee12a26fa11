package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░]  50% for a
// percentage between 0 and 100. Values outside that range are clamped.
// Completed work is green, started work yellow, untouched work dim.
func RenderProgress(pct int, width int) string {
	pct = min(max(pct, 0), 100)
	if width < 2 {
		width = 2
	}

	filled := pct * width / 100
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleDim
	switch {
	case pct >= 100:
		style = StyleGreen
	case pct > 0:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3d%%", style.Render(bar), pct)
}
