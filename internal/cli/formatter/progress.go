package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░]  45%, green above 66%,
// yellow from 33% and red below.
func RenderProgress(ratio float64, width int) string {
	ratio = min(max(ratio, 0), 1)
	width = max(width, 2)

	filled := min(int(ratio*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if ratio < 0.33 {
		style = StyleRed
	} else if ratio < 0.66 {
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), ratio*100)
}
