package docx

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadrage/internal/markup"
	"github.com/alexanderramin/cadrage/internal/ooxml"
	"github.com/alexanderramin/cadrage/internal/report"
)

// Numbering ids declared in numbering.xml. Ordered lists get their own num
// instance starting at firstOrderedNum so each list restarts at 1.
const (
	bulletNumID     = 1
	firstOrderedNum = 2
)

// runStyle is the character formatting of one w:r.
type runStyle struct {
	bold   bool
	italic bool
	color  report.Color
	size   float64
}

// body accumulates the w:body content of document.xml.
type body struct {
	w     ooxml.Writer
	style report.StyleConfig

	orderedNums   int  // ordered list instances allocated so far
	currentList   int  // numId of the ordered list being written, 0 if none
	lastWasBlank  bool // collapses runs of blank markup lines
	wroteAnything bool
}

func newBody(style report.StyleConfig) *body {
	return &body{style: style}
}

func (b *body) run(text string, rs runStyle) {
	b.w.Raw(`<w:r>`)
	var props strings.Builder
	if rs.bold {
		props.WriteString(`<w:b/>`)
	}
	if rs.italic {
		props.WriteString(`<w:i/>`)
	}
	if rs.color != "" {
		props.WriteString(`<w:color w:val="` + rs.color.String() + `"/>`)
	}
	if rs.size > 0 {
		props.WriteString(fmt.Sprintf(`<w:sz w:val="%d"/>`, halfPoints(rs.size)))
	}
	if props.Len() > 0 {
		b.w.Raw(`<w:rPr>` + props.String() + `</w:rPr>`)
	}
	b.w.Raw(`<w:t xml:space="preserve">`).Text(text).Raw(`</w:t></w:r>`)
}

// para writes one paragraph. pPr is raw paragraph-property markup (may be "").
func (b *body) para(pPr string, fill func()) {
	b.w.Raw(`<w:p>`)
	if pPr != "" {
		b.w.Raw(`<w:pPr>` + pPr + `</w:pPr>`)
	}
	if fill != nil {
		fill()
	}
	b.w.Raw(`</w:p>`)
	b.wroteAnything = true
	b.lastWasBlank = false
}

func styleRef(id string) string {
	return `<w:pStyle w:val="` + id + `"/>`
}

func (b *body) styled(styleID, text string) {
	b.para(styleRef(styleID), func() { b.run(text, runStyle{}) })
}

func (b *body) heading(level int, text string) {
	b.endList()
	b.styled(fmt.Sprintf("Heading%d", level), text)
}

func (b *body) plain(text string) {
	b.para("", func() { b.run(text, runStyle{}) })
}

func (b *body) note(text string) {
	b.para("", func() { b.run(text, runStyle{italic: true, color: b.style.Palette.Muted}) })
}

// field writes a "Label : value" line.
func (b *body) field(label, value string) {
	b.para(`<w:spacing w:after="60"/>`, func() {
		b.run(label+" : ", runStyle{bold: true, color: b.style.Palette.Primary})
		b.run(value, runStyle{})
	})
}

func (b *body) runs(runs []markup.Run) {
	for _, r := range runs {
		b.run(r.Text, runStyle{bold: r.Bold, italic: r.Italic})
	}
}

func (b *body) pageBreak() {
	b.endList()
	b.para("", func() { b.w.Raw(`<w:r><w:br w:type="page"/></w:r>`) })
}

func listProps(numID, level int) string {
	return styleRef("ListParagraph") +
		fmt.Sprintf(`<w:numPr><w:ilvl w:val="%d"/><w:numId w:val="%d"/></w:numPr>`, level, numID)
}

func (b *body) bullet(level int, fill func()) {
	b.para(listProps(bulletNumID, level), fill)
}

func (b *body) ordered(index int, fill func()) {
	if b.currentList == 0 || index == 1 {
		b.currentList = firstOrderedNum + b.orderedNums
		b.orderedNums++
	}
	b.para(listProps(b.currentList, 0), fill)
}

func (b *body) endList() {
	b.currentList = 0
}

// blocks writes parsed markup. A level 2 markup heading becomes a
// headingBase heading and level 3 the one below it.
func (b *body) blocks(blocks []markup.Block, headingBase int) {
	for _, blk := range blocks {
		switch blk.Kind {
		case markup.BlockHeading:
			b.heading(headingBase+blk.Level-2, blk.Text)
		case markup.BlockParagraph:
			b.endList()
			b.para("", func() { b.runs(blk.Runs) })
		case markup.BlockBullet:
			b.endList()
			b.bullet(0, func() { b.runs(blk.Runs) })
		case markup.BlockOrdered:
			b.ordered(blk.Index, func() { b.runs(blk.Runs) })
		case markup.BlockBlank:
			b.endList()
			if b.wroteAnything && !b.lastWasBlank {
				b.para("", nil)
				b.lastWasBlank = true
			}
		}
	}
	b.endList()
}

// table writes rows with the first row as a shaded header.
func (b *body) table(rows [][]string, widths []int) {
	b.endList()
	pal := b.style.Palette
	b.w.Raw(`<w:tbl><w:tblPr><w:tblStyle w:val="ReportTable"/><w:tblW w:w="5000" w:type="pct"/></w:tblPr>`)
	b.w.Raw(`<w:tblGrid>`)
	for _, w := range widths {
		b.w.Raw(fmt.Sprintf(`<w:gridCol w:w="%d"/>`, w))
	}
	b.w.Raw(`</w:tblGrid>`)

	for i, row := range rows {
		header := i == 0
		b.w.Raw(`<w:tr>`)
		if header {
			b.w.Raw(`<w:trPr><w:tblHeader/></w:trPr>`)
		}
		for c, cell := range row {
			b.w.Raw(`<w:tc><w:tcPr>`)
			if c < len(widths) {
				b.w.Raw(fmt.Sprintf(`<w:tcW w:w="%d" w:type="dxa"/>`, widths[c]))
			}
			switch {
			case header:
				b.w.Raw(`<w:shd w:val="clear" w:color="auto" w:fill="` + pal.TableHead.String() + `"/>`)
			case i%2 == 0:
				b.w.Raw(`<w:shd w:val="clear" w:color="auto" w:fill="` + pal.TableAlt.String() + `"/>`)
			}
			b.w.Raw(`</w:tcPr><w:p>`)
			if header {
				b.run(cell, runStyle{bold: true, color: pal.OnPrimary})
			} else {
				b.run(cell, runStyle{})
			}
			b.w.Raw(`</w:p></w:tc>`)
		}
		b.w.Raw(`</w:tr>`)
	}
	b.w.Raw(`</w:tbl>`)
	// Word needs a paragraph between a table and whatever follows it.
	b.para("", nil)
}

func halfPoints(pt float64) int {
	return int(pt*2 + 0.5)
}
