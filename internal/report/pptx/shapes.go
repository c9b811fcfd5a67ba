package pptx

import (
	"fmt"
	"math"

	"github.com/alexanderramin/cadrage/internal/icon"
	"github.com/alexanderramin/cadrage/internal/ooxml"
	"github.com/alexanderramin/cadrage/internal/report"
)

const (
	nsA = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsP = "http://schemas.openxmlformats.org/presentationml/2006/main"
)

// rect is a position on the slide in inches.
type rect struct {
	x, y, w, h float64
}

func (r rect) xfrm(rotDeg float64) string {
	rot := ""
	if rotDeg != 0 {
		rot = fmt.Sprintf(` rot="%d"`, int64(math.Round(rotDeg*60000)))
	}
	return fmt.Sprintf(`<a:xfrm%s><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`,
		rot, ooxml.Inches(r.x), ooxml.Inches(r.y), ooxml.Inches(r.w), ooxml.Inches(r.h))
}

// textRun is one a:r.
type textRun struct {
	text   string
	bold   bool
	italic bool
	color  report.Color
	size   float64 // points; 0 uses the paragraph default
}

type bulletKind int

const (
	bulletNone bulletKind = iota
	bulletChar
	bulletNumber
)

// paragraph is one a:p.
type paragraph struct {
	runs   []textRun
	bullet bulletKind
	level  int
	align  string // l, ctr, r
}

func plainPara(text string, rs textRun) paragraph {
	rs.text = text
	return paragraph{runs: []textRun{rs}}
}

// spTree accumulates the shapes of one slide, master or layout.
type spTree struct {
	w      ooxml.Writer
	style  report.StyleConfig
	nextID int
}

func newSpTree(style report.StyleConfig) *spTree {
	t := &spTree{style: style, nextID: 2}
	t.w.Raw(`<p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>`)
	t.w.Raw(`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`)
	return t
}

func (t *spTree) id() int {
	id := t.nextID
	t.nextID++
	return id
}

func (t *spTree) close() string {
	t.w.Raw(`</p:spTree>`)
	return t.w.String()
}

func solidFill(c report.Color) string {
	return `<a:solidFill><a:srgbClr val="` + c.String() + `"/></a:solidFill>`
}

// shapeOpts describes the geometry and look of one p:sp.
type shapeOpts struct {
	name     string
	geometry string // preset name, or raw a:custGeom markup when custom is set
	custom   bool
	rotation float64
	fill     report.Color
	line     report.Color
	anchor   string // t, ctr, b
	inset    float64
	paras    []paragraph
}

func (t *spTree) shape(r rect, o shapeOpts) {
	id := t.id()
	name := o.name
	if name == "" {
		name = fmt.Sprintf("Shape %d", id)
	}
	t.w.Raw(fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="`, id)).Text(name).Raw(`"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>`)

	t.w.Raw(`<p:spPr>` + r.xfrm(o.rotation))
	if o.custom {
		t.w.Raw(o.geometry)
	} else {
		geom := o.geometry
		if geom == "" {
			geom = "rect"
		}
		t.w.Raw(`<a:prstGeom prst="` + geom + `"><a:avLst/></a:prstGeom>`)
	}
	if o.fill != "" {
		t.w.Raw(solidFill(o.fill))
	} else {
		t.w.Raw(`<a:noFill/>`)
	}
	if o.line != "" {
		t.w.Raw(`<a:ln w="9525">` + solidFill(o.line) + `</a:ln>`)
	} else {
		t.w.Raw(`<a:ln><a:noFill/></a:ln>`)
	}
	t.w.Raw(`</p:spPr>`)

	if len(o.paras) > 0 {
		t.txBody(o)
	}
	t.w.Raw(`</p:sp>`)
}

func (t *spTree) txBody(o shapeOpts) {
	anchor := o.anchor
	if anchor == "" {
		anchor = "t"
	}
	ins := ooxml.Inches(o.inset)
	t.w.Raw(fmt.Sprintf(`<p:txBody><a:bodyPr wrap="square" lIns="%d" tIns="%d" rIns="%d" bIns="%d" anchor="%s"><a:normAutofit/></a:bodyPr><a:lstStyle/>`,
		ins, ins, ins, ins, anchor))
	for _, p := range o.paras {
		t.para(p)
	}
	t.w.Raw(`</p:txBody>`)
}

// Bullet indentation per level, in inches.
const (
	bulletIndent = 0.16
	levelIndent  = 0.18
)

func (t *spTree) para(p paragraph) {
	t.w.Raw(`<a:p>`)
	var ppr string
	if p.align != "" {
		ppr += ` algn="` + p.align + `"`
	}
	switch p.bullet {
	case bulletChar, bulletNumber:
		marL := ooxml.Inches(bulletIndent + float64(p.level)*levelIndent)
		ppr += fmt.Sprintf(` marL="%d" lvl="%d" indent="%d"`, marL, p.level, -ooxml.Inches(bulletIndent))
	}
	t.w.Raw(`<a:pPr` + ppr + `><a:spcBef><a:spcPts val="200"/></a:spcBef>`)
	switch p.bullet {
	case bulletChar:
		char := "•"
		if p.level > 0 {
			char = "–"
		}
		t.w.Raw(`<a:buClr>` + `<a:srgbClr val="` + t.style.Palette.Secondary.String() + `"/></a:buClr>`)
		t.w.Raw(`<a:buFont typeface="Arial"/><a:buChar char="` + char + `"/>`)
	case bulletNumber:
		t.w.Raw(`<a:buClr>` + `<a:srgbClr val="` + t.style.Palette.Secondary.String() + `"/></a:buClr>`)
		t.w.Raw(`<a:buFont typeface="+mj-lt"/><a:buAutoNum type="arabicPeriod"/>`)
	default:
		t.w.Raw(`<a:buNone/>`)
	}
	t.w.Raw(`</a:pPr>`)

	for _, r := range p.runs {
		t.run(r)
	}
	t.w.Raw(`</a:p>`)
}

func (t *spTree) run(r textRun) {
	size := r.size
	if size == 0 {
		size = t.style.Sizes.Small + 1
	}
	color := r.color
	if color == "" {
		color = t.style.Palette.Text
	}
	attrs := fmt.Sprintf(` lang="fr-FR" sz="%d"`, int(math.Round(size*100)))
	if r.bold {
		attrs += ` b="1"`
	}
	if r.italic {
		attrs += ` i="1"`
	}
	font := ooxml.Escape(t.style.Fonts.Office)
	t.w.Raw(`<a:r><a:rPr` + attrs + ` dirty="0">` + solidFill(color) +
		`<a:latin typeface="` + font + `"/><a:cs typeface="` + font + `"/></a:rPr><a:t>`)
	t.w.Text(r.text)
	t.w.Raw(`</a:t></a:r>`)
}

// Preset geometries matching the icon primitives.
var presetFor = map[icon.ShapeKind]string{
	icon.ShapeEllipse:   "ellipse",
	icon.ShapeRect:      "rect",
	icon.ShapeRoundRect: "roundRect",
	icon.ShapeTriangle:  "triangle",
}

// icon draws an icon into box (inches).
func (t *spTree) icon(ic icon.Icon, box rect) {
	for i, s := range ic.Place(icon.Box{X: box.x, Y: box.y, W: box.w, H: box.h}) {
		name := fmt.Sprintf("%s %d", ic.Name, i+1)
		if s.Kind == icon.ShapePolygon {
			r, geom := customGeometry(s.Points)
			t.shape(r, shapeOpts{name: name, geometry: geom, custom: true, fill: report.Color(s.Fill)})
			continue
		}
		t.shape(rect{s.X, s.Y, s.W, s.H}, shapeOpts{
			name:     name,
			geometry: presetFor[s.Kind],
			rotation: s.Rotation,
			fill:     report.Color(s.Fill),
		})
	}
}

// customGeometry turns absolute points (inches) into a bounding rect and an
// a:custGeom whose path is relative to it.
func customGeometry(pts []icon.Point) (rect, string) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	bounds := rect{minX, minY, maxX - minX, maxY - minY}
	w, h := ooxml.Inches(bounds.w), ooxml.Inches(bounds.h)

	var b ooxml.Writer
	b.Raw(`<a:custGeom><a:avLst/><a:gdLst/><a:ahLst/><a:cxnLst/><a:rect l="0" t="0" r="r" b="b"/><a:pathLst>`)
	b.Raw(fmt.Sprintf(`<a:path w="%d" h="%d">`, w, h))
	for i, p := range pts {
		pt := fmt.Sprintf(`<a:pt x="%d" y="%d"/>`, ooxml.Inches(p.X-minX), ooxml.Inches(p.Y-minY))
		if i == 0 {
			b.Raw(`<a:moveTo>` + pt + `</a:moveTo>`)
		} else {
			b.Raw(`<a:lnTo>` + pt + `</a:lnTo>`)
		}
	}
	b.Raw(`<a:close/></a:path></a:pathLst></a:custGeom>`)
	return bounds, b.String()
}
