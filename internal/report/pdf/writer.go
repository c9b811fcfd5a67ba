package pdf

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/alexanderramin/cadrage/internal/aggregate"
	"github.com/alexanderramin/cadrage/internal/icon"
	"github.com/alexanderramin/cadrage/internal/markup"
	"github.com/alexanderramin/cadrage/internal/report"
)

// Vertical room reserved above and below the text area for the page
// decorations, in mm.
const (
	headerSpace = 5
	footerSpace = 5
)

const (
	lineHeight  = 5.5
	indentStep  = 6.0
	bulletGlyph = "•"
)

// writer wraps one fpdf document. Every string handed to it is UTF-8; the
// core fonts need cp1252, so text goes through tr before reaching fpdf.
type writer struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	style  report.StyleConfig
	view   *aggregate.View
	stamp  string
	margin float64

	lastWasBlank bool
}

func newWriter(pdf *fpdf.Fpdf, view *aggregate.View, opts report.Options) *writer {
	return &writer{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		style:  opts.Style,
		view:   view,
		stamp:  report.GeneratedPrefix + aggregate.FormatStamp(opts.GeneratedAt),
		margin: opts.Style.MarginMM,
	}
}

func (w *writer) font(style string, size float64) {
	w.pdf.SetFont(w.style.Fonts.PDF, style, size)
}

func (w *writer) textColor(c report.Color) {
	r, g, b := c.RGB()
	w.pdf.SetTextColor(r, g, b)
}

func (w *writer) fillColor(c report.Color) {
	r, g, b := c.RGB()
	w.pdf.SetFillColor(r, g, b)
}

func (w *writer) drawColor(c report.Color) {
	r, g, b := c.RGB()
	w.pdf.SetDrawColor(r, g, b)
}

func (w *writer) contentWidth() float64 {
	pageWidth, _ := w.pdf.GetPageSize()
	return pageWidth - 2*w.margin
}

// fit translates s and shortens it with an ellipsis until it fits width in
// the current font.
func (w *writer) fit(s string, width float64) string {
	out := w.tr(s)
	if w.pdf.GetStringWidth(out) <= width {
		return out
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		out = w.tr(strings.TrimSpace(string(runes)) + "...")
		if w.pdf.GetStringWidth(out) <= width {
			return out
		}
	}
	return ""
}

// ensureSpace starts a new page when fewer than h mm remain above the
// bottom margin. Drawings do not trigger fpdf's automatic page break.
func (w *writer) ensureSpace(h float64) bool {
	_, pageHeight := w.pdf.GetPageSize()
	if w.pdf.GetY()+h > pageHeight-w.margin-footerSpace {
		w.pdf.AddPage()
		return true
	}
	return false
}

// pageTextHeight is the vertical room between the header and footer bands.
func (w *writer) pageTextHeight() float64 {
	_, pageHeight := w.pdf.GetPageSize()
	return pageHeight - 2*w.margin - headerSpace - footerSpace
}

// heading1 is a section title with a rule under it.
func (w *writer) heading1(text string) {
	w.ensureSpace(20)
	w.font("B", w.style.Sizes.Heading2+2)
	w.textColor(w.style.Palette.Primary)
	w.pdf.CellFormat(0, 10, w.tr(text), "", 1, "L", false, 0, "")
	y := w.pdf.GetY()
	w.drawColor(w.style.Palette.Secondary)
	w.pdf.SetLineWidth(0.6)
	w.pdf.Line(w.margin, y, w.margin+40, y)
	w.pdf.Ln(4)
	w.lastWasBlank = false
}

// heading writes a level 2 to 4 heading.
func (w *writer) heading(level int, text string) {
	size := w.style.Sizes.Heading2
	color := w.style.Palette.Secondary
	switch {
	case level == 3:
		size = w.style.Sizes.Heading3
	case level >= 4:
		size = w.style.Sizes.Body + 1
		color = w.style.Palette.Text
	}
	w.ensureSpace(14)
	w.pdf.Ln(2)
	w.font("B", size)
	w.textColor(color)
	w.pdf.MultiCell(0, size*0.5, w.tr(text), "", "L", false)
	w.pdf.Ln(1)
	w.lastWasBlank = false
}

func (w *writer) plain(text string) {
	w.font("", w.style.Sizes.Body)
	w.textColor(w.style.Palette.Text)
	w.pdf.MultiCell(0, lineHeight, w.tr(text), "", "L", false)
	w.lastWasBlank = false
}

func (w *writer) note(text string) {
	w.font("I", w.style.Sizes.Body)
	w.textColor(w.style.Palette.Muted)
	w.pdf.MultiCell(0, lineHeight, w.tr(text), "", "L", false)
	w.lastWasBlank = false
}

// field writes a "Label : value" line.
func (w *writer) field(label, value string) {
	w.font("B", w.style.Sizes.Body)
	w.textColor(w.style.Palette.Primary)
	w.pdf.Write(lineHeight, w.tr(label+" : "))
	w.font("", w.style.Sizes.Body)
	w.textColor(w.style.Palette.Text)
	w.pdf.Write(lineHeight, w.tr(value))
	w.pdf.Ln(lineHeight + 0.5)
	w.lastWasBlank = false
}

// runs writes styled inline text starting at the current position. Wrapped
// lines return to indent.
func (w *writer) runs(runs []markup.Run, indent float64) {
	w.pdf.SetLeftMargin(w.margin + indent)
	w.textColor(w.style.Palette.Text)
	for _, r := range runs {
		style := ""
		if r.Bold {
			style += "B"
		}
		if r.Italic {
			style += "I"
		}
		w.font(style, w.style.Sizes.Body)
		w.pdf.Write(lineHeight, w.tr(r.Text))
	}
	w.pdf.SetLeftMargin(w.margin)
	w.pdf.Ln(lineHeight)
}

// listItem writes a marker in the gutter and the item text indented past it.
func (w *writer) listItem(level int, marker string, runs []markup.Run) {
	gutter := w.margin + float64(level)*indentStep
	w.pdf.SetX(gutter)
	w.font("", w.style.Sizes.Body)
	w.textColor(w.style.Palette.Secondary)
	w.pdf.CellFormat(indentStep, lineHeight, w.tr(marker), "", 0, "L", false, 0, "")
	w.runs(runs, float64(level+1)*indentStep)
	w.lastWasBlank = false
}

// blocks writes parsed markup. A level 2 markup heading becomes a headingBase
// heading and level 3 the one below it.
func (w *writer) blocks(blocks []markup.Block, headingBase int) {
	for _, blk := range blocks {
		switch blk.Kind {
		case markup.BlockHeading:
			w.heading(headingBase+blk.Level-2, blk.Text)
		case markup.BlockParagraph:
			w.pdf.SetX(w.margin)
			w.runs(blk.Runs, 0)
			w.lastWasBlank = false
		case markup.BlockBullet:
			w.listItem(0, bulletGlyph, blk.Runs)
		case markup.BlockOrdered:
			w.listItem(0, strconv.Itoa(blk.Index)+".", blk.Runs)
		case markup.BlockBlank:
			if !w.lastWasBlank {
				w.pdf.Ln(lineHeight / 2)
				w.lastWasBlank = true
			}
		}
	}
	w.lastWasBlank = false
}

type rowKind int

const (
	rowHeader rowKind = iota
	rowPlain
	rowAlt
)

const (
	cellLine    = 5.0
	cellPadding = 1.5
)

// table draws rows with the first row as header. Cells wrap; the header is
// repeated when a row starts a new page.
func (w *writer) table(rows [][]string, widths []float64) {
	if len(rows) == 0 {
		return
	}
	w.tableRow(rows[0], widths, rowHeader)
	for i, row := range rows[1:] {
		kind := rowPlain
		if i%2 == 1 {
			kind = rowAlt
		}
		w.tableStyle(kind)
		if _, h := w.wrapRow(row, widths); w.ensureSpace(h) {
			w.tableRow(rows[0], widths, rowHeader)
		}
		w.tableRow(row, widths, kind)
	}
	w.pdf.Ln(4)
}

func (w *writer) tableStyle(kind rowKind) {
	pal := w.style.Palette
	size := w.style.Sizes.Small + 0.5
	switch kind {
	case rowHeader:
		w.fillColor(pal.TableHead)
		w.textColor(pal.OnPrimary)
		w.font("B", size)
	case rowAlt:
		w.fillColor(pal.TableAlt)
		w.textColor(pal.Text)
		w.font("", size)
	default:
		w.fillColor(pal.OnPrimary)
		w.textColor(pal.Text)
		w.font("", size)
	}
}

// wrapRow splits every cell to its column width in the current font and
// returns the lines with the resulting row height.
func (w *writer) wrapRow(row []string, widths []float64) ([][]string, float64) {
	cells := make([][]string, len(row))
	maxLines := 1
	for c, cell := range row {
		for _, l := range w.pdf.SplitLines([]byte(w.tr(cell)), widths[c]-2*cellPadding) {
			cells[c] = append(cells[c], string(l))
		}
		maxLines = max(maxLines, len(cells[c]))
	}
	return cells, float64(maxLines)*cellLine + 2*cellPadding
}

func (w *writer) tableRow(row []string, widths []float64, kind rowKind) {
	w.tableStyle(kind)
	cells, h := w.wrapRow(row, widths)
	if kind == rowHeader {
		w.ensureSpace(h + cellLine)
	}
	w.drawColor(w.style.Palette.Border)
	w.pdf.SetLineWidth(0.2)

	x, y := w.margin, w.pdf.GetY()
	for c, lines := range cells {
		w.pdf.Rect(x, y, widths[c], h, "FD")
		for i, l := range lines {
			w.pdf.SetXY(x+cellPadding, y+cellPadding+float64(i)*cellLine)
			w.pdf.CellFormat(widths[c]-2*cellPadding, cellLine, l, "", 0, "L", false, 0, "")
		}
		x += widths[c]
	}
	w.pdf.SetXY(w.margin, y+h)
}

// drawIcon paints an icon's shapes into box (mm).
func (w *writer) drawIcon(ic icon.Icon, box icon.Box) {
	for _, s := range ic.Place(box) {
		w.fillColor(report.Color(s.Fill))
		cx, cy := s.X+s.W/2, s.Y+s.H/2
		rotated := s.Rotation != 0
		if rotated {
			w.pdf.TransformBegin()
			// fpdf rotates counter-clockwise.
			w.pdf.TransformRotate(-s.Rotation, cx, cy)
		}
		switch s.Kind {
		case icon.ShapeEllipse:
			w.pdf.Ellipse(cx, cy, s.W/2, s.H/2, 0, "F")
		case icon.ShapeRect:
			w.pdf.Rect(s.X, s.Y, s.W, s.H, "F")
		case icon.ShapeRoundRect:
			w.pdf.RoundedRect(s.X, s.Y, s.W, s.H, math.Min(s.W, s.H)/2, "1234", "F")
		case icon.ShapeTriangle:
			w.pdf.Polygon([]fpdf.PointType{
				{X: cx, Y: s.Y},
				{X: s.X + s.W, Y: s.Y + s.H},
				{X: s.X, Y: s.Y + s.H},
			}, "F")
		case icon.ShapePolygon:
			pts := make([]fpdf.PointType, len(s.Points))
			for i, p := range s.Points {
				pts[i] = fpdf.PointType{X: p.X, Y: p.Y}
			}
			w.pdf.Polygon(pts, "F")
		}
		if rotated {
			w.pdf.TransformEnd()
		}
	}
}
