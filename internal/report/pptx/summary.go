package pptx

import (
	"fmt"

	"github.com/alexanderramin/cadrage/internal/aggregate"
	"github.com/alexanderramin/cadrage/internal/domain"
	"github.com/alexanderramin/cadrage/internal/icon"
	"github.com/alexanderramin/cadrage/internal/ooxml"
	"github.com/alexanderramin/cadrage/internal/report"
)

// SummaryRowsPerSlide caps the project rows of one summary slide.
const SummaryRowsPerSlide = 10

const (
	summaryTitle     = "Synthèse des projets"
	summaryRowHeight = 0.4
	summaryIconSize  = 0.26
)

var summaryTable = rect{0.3, 0.9, 9.4, 0}

type summaryColumn struct {
	title string
	width float64
	value func(v *aggregate.View) string
	icon  func(v *aggregate.View) icon.Icon
}

var summaryColumns = []summaryColumn{
	{title: "Projet", width: 2.4, value: func(v *aggregate.View) string { return v.Data.Project.DisplayCode() + projectSuffix(v) }},
	{title: "Chef de projet", width: 1.7, value: func(v *aggregate.View) string {
		return domain.CoalesceStr(v.Data.Project.ManagerName, report.NotDefinedF)
	}},
	{title: "Statut", width: 1.1, value: func(v *aggregate.View) string { return v.Data.Project.Status.Label() }},
	{title: "Avancement", width: 1.0, value: func(v *aggregate.View) string { return aggregate.Completion(v.Data.Project.Completion) }},
	{title: "Météo", width: 0.8, icon: func(v *aggregate.View) icon.Icon { return v.WeatherIcon }},
	{title: "Tendance", width: 0.8, icon: func(v *aggregate.View) icon.Icon { return v.ProgressIcon }},
	{title: "Fin prévue", width: 1.6, value: func(v *aggregate.View) string {
		return aggregate.FormatDateOr(v.Data.Project.EndDate, report.NotDefinedF)
	}},
}

// projectSuffix appends the title when the code stands in for it.
func projectSuffix(v *aggregate.View) string {
	p := v.Data.Project
	if p.Code != "" && p.Title != "" {
		return " - " + p.Title
	}
	return ""
}

// summarySlides splits views into pages of SummaryRowsPerSlide rows.
func summarySlides(views []*aggregate.View, style report.StyleConfig) []string {
	pages := (len(views) + SummaryRowsPerSlide - 1) / SummaryRowsPerSlide
	out := make([]string, 0, pages)
	for page := 0; page < pages; page++ {
		start := page * SummaryRowsPerSlide
		end := min(start+SummaryRowsPerSlide, len(views))
		title := summaryTitle
		if pages > 1 {
			title = fmt.Sprintf("%s (%d/%d)", summaryTitle, page+1, pages)
		}
		out = append(out, summarySlide(title, views[start:end], style))
	}
	return out
}

func summarySlide(title string, views []*aggregate.View, style report.StyleConfig) string {
	t := newSpTree(style)
	pal := style.Palette

	t.shape(titleBar, shapeOpts{
		name:   "Title",
		fill:   pal.Primary,
		anchor: "ctr",
		inset:  0.1,
		paras: []paragraph{{runs: []textRun{
			{text: title, bold: true, color: pal.OnPrimary, size: style.Sizes.Heading2 + 2},
		}}},
	})

	frame := summaryTable
	frame.h = float64(len(views)+1) * summaryRowHeight
	t.table(frame, views)

	// Icons sit on top of the empty Météo and Tendance cells.
	x := frame.x
	for _, col := range summaryColumns {
		if col.icon != nil {
			for i, v := range views {
				cy := frame.y + float64(i+1)*summaryRowHeight
				t.icon(col.icon(v), rect{
					x + (col.width-summaryIconSize)/2,
					cy + (summaryRowHeight-summaryIconSize)/2,
					summaryIconSize, summaryIconSize,
				})
			}
		}
		x += col.width
	}
	return slideXML(t.close())
}

// table writes the summary as a DrawingML table in a graphic frame.
func (t *spTree) table(frame rect, views []*aggregate.View) {
	pal := t.style.Palette
	id := t.id()
	t.w.Raw(fmt.Sprintf(`<p:graphicFrame><p:nvGraphicFramePr><p:cNvPr id="%d" name="Summary"/>`, id))
	t.w.Raw(`<p:cNvGraphicFramePr><a:graphicFrameLocks noGrp="1"/></p:cNvGraphicFramePr><p:nvPr/></p:nvGraphicFramePr>`)
	t.w.Raw(fmt.Sprintf(`<p:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></p:xfrm>`,
		ooxml.Inches(frame.x), ooxml.Inches(frame.y), ooxml.Inches(frame.w), ooxml.Inches(frame.h)))
	t.w.Raw(`<a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/table"><a:tbl>`)
	t.w.Raw(`<a:tblPr firstRow="1" bandRow="1"/><a:tblGrid>`)
	for _, col := range summaryColumns {
		t.w.Raw(fmt.Sprintf(`<a:gridCol w="%d"/>`, ooxml.Inches(col.width)))
	}
	t.w.Raw(`</a:tblGrid>`)

	rowH := ooxml.Inches(summaryRowHeight)
	t.w.Raw(fmt.Sprintf(`<a:tr h="%d">`, rowH))
	for _, col := range summaryColumns {
		t.cell(col.title, textRun{bold: true, color: pal.OnPrimary}, pal.TableHead)
	}
	t.w.Raw(`</a:tr>`)

	for i, v := range views {
		fill := pal.OnPrimary
		if i%2 == 1 {
			fill = pal.TableAlt
		}
		t.w.Raw(fmt.Sprintf(`<a:tr h="%d">`, rowH))
		for _, col := range summaryColumns {
			text := ""
			if col.value != nil {
				text = col.value(v)
			}
			t.cell(text, textRun{}, fill)
		}
		t.w.Raw(`</a:tr>`)
	}
	t.w.Raw(`</a:tbl></a:graphicData></a:graphic></p:graphicFrame>`)
}

func (t *spTree) cell(text string, rs textRun, fill report.Color) {
	t.w.Raw(`<a:tc><a:txBody><a:bodyPr/><a:lstStyle/>`)
	if text == "" {
		t.w.Raw(`<a:p><a:endParaRPr lang="fr-FR" dirty="0"/></a:p>`)
	} else {
		t.para(plainPara(text, rs))
	}
	border := `<a:solidFill><a:srgbClr val="` + t.style.Palette.Border.String() + `"/></a:solidFill>`
	t.w.Raw(`</a:txBody><a:tcPr marL="45720" marR="45720" anchor="ctr">`)
	for _, side := range []string{"lnL", "lnR", "lnT", "lnB"} {
		t.w.Raw(`<a:` + side + ` w="6350">` + border + `</a:` + side + `>`)
	}
	t.w.Raw(solidFill(fill) + `</a:tcPr></a:tc>`)
}
