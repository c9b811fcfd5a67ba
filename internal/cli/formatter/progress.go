package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadrage/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderCompletion renders a completion percentage as a bar like
// [████░░░░]  45 %. Green from 67 %, yellow from 34 %, red below.
func RenderCompletion(pct int, width int) string {
	pct = domain.ClampPercent(pct)
	width = max(width, 2)

	filled := pct * width / 100
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct < 34:
		style = StyleRed
	case pct < 67:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3d %%", style.Render(bar), pct)
}
