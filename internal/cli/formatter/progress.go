package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderPassRate renders how many goals were met as a bar like
// [████░░░░] 3/6. Green when every goal passes, yellow from half, red below.
func RenderPassRate(achieved, total, width int) string {
	if width < 2 {
		width = 2
	}
	if total <= 0 {
		return fmt.Sprintf("[%s] 0/0", StyleDim.Render(strings.Repeat(emptyBlock, width)))
	}
	if achieved > total {
		achieved = total
	}

	filled := achieved * width / total
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case achieved*2 < total:
		style = StyleRed
	case achieved < total:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %d/%d", style.Render(bar), achieved, total)
}
