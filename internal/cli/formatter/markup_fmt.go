package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/cadrage/internal/markup"
)

// RenderBlocks renders parsed markup for the terminal, the way the documents
// lay it out.
func RenderBlocks(blocks []markup.Block) string {
	var b strings.Builder
	for _, blk := range blocks {
		switch blk.Kind {
		case markup.BlockHeading:
			style := StyleHeader
			if blk.Level > 2 {
				style = StyleBold
			}
			b.WriteString(style.Render(blk.Text))
		case markup.BlockBullet:
			b.WriteString("  " + StyleDim.Render("•") + " " + renderRuns(blk.Runs))
		case markup.BlockOrdered:
			b.WriteString("  " + StyleDim.Render(strconv.Itoa(blk.Index)+".") + " " + renderRuns(blk.Runs))
		case markup.BlockParagraph:
			b.WriteString(renderRuns(blk.Runs))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatBlockDump lists the parsed block sequence one block per line, for
// checking how a text will be read.
func FormatBlockDump(blocks []markup.Block) string {
	if len(blocks) == 0 {
		return Dim("(no blocks)") + "\n"
	}
	rows := make([][]string, 0, len(blocks))
	for i, blk := range blocks {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			StylePurple.Render(blockLabel(blk)),
			renderRuns(blockRuns(blk)),
		})
	}
	return RenderTable([]string{"#", "BLOCK", "CONTENT"}, rows)
}

func blockLabel(blk markup.Block) string {
	switch blk.Kind {
	case markup.BlockHeading:
		return fmt.Sprintf("heading(%d)", blk.Level)
	case markup.BlockOrdered:
		return fmt.Sprintf("ordered(%d)", blk.Index)
	default:
		return blk.Kind.String()
	}
}

func blockRuns(blk markup.Block) []markup.Run {
	if blk.Kind == markup.BlockHeading {
		return []markup.Run{{Text: blk.Text, Bold: true}}
	}
	return blk.Runs
}

func renderRuns(runs []markup.Run) string {
	var b strings.Builder
	for _, r := range runs {
		switch {
		case r.Bold && r.Italic:
			b.WriteString(StyleBold.Italic(true).Render(r.Text))
		case r.Bold:
			b.WriteString(StyleBold.Render(r.Text))
		case r.Italic:
			b.WriteString(StyleItalic.Render(r.Text))
		default:
			b.WriteString(r.Text)
		}
	}
	return b.String()
}
