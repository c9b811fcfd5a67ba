package pdf

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadrage/internal/aggregate"
	"github.com/alexanderramin/cadrage/internal/domain"
	"github.com/alexanderramin/cadrage/internal/icon"
	"github.com/alexanderramin/cadrage/internal/markup"
	"github.com/alexanderramin/cadrage/internal/report"
)

// Risk table column shares of the text width.
var riskColumnShares = []float64{0.46, 0.18, 0.18, 0.18}

func (w *writer) coverPage() {
	pdf := w.pdf
	pal := w.style.Palette
	p := w.view.Data.Project

	pdf.AddPage()
	pageWidth, pageHeight := pdf.GetPageSize()

	w.fillColor(pal.Primary)
	pdf.Rect(0, 0, pageWidth, 8, "F")

	pdf.SetY(70)
	w.font("B", w.style.Sizes.Title+6)
	w.textColor(pal.Primary)
	pdf.CellFormat(0, 16, w.tr(report.DocumentTitle), "", 1, "C", false, 0, "")

	pdf.Ln(4)
	w.font("", w.style.Sizes.Heading2+2)
	w.textColor(pal.Secondary)
	pdf.MultiCell(0, 9, w.tr(p.Title), "", "C", false)

	type row struct{ label, value string }
	var rows []row
	if p.Code != "" {
		rows = append(rows, row{report.LabelCode, p.Code})
	}
	rows = append(rows,
		row{report.LabelManager, aggregate.Manager(p)},
		row{report.LabelStatus, p.Status.Label()},
		row{report.LabelStart, aggregate.FormatDate(p.StartDate)},
		row{report.LabelEnd, aggregate.FormatDate(p.EndDate)},
		row{report.LabelOrg, domain.CoalesceStr(w.view.Breadcrumb, report.NotAttached)},
	)

	const rowHeight = 8.0
	boxX := w.margin
	boxWidth := pageWidth - 2*boxX
	boxY := pdf.GetY() + 15
	boxHeight := float64(len(rows))*rowHeight + 12
	w.fillColor(pal.Background)
	w.drawColor(pal.Border)
	pdf.SetLineWidth(0.3)
	pdf.RoundedRect(boxX, boxY, boxWidth, boxHeight, 3, "1234", "FD")

	const labelWidth = 40.0
	y := boxY + 6
	for _, r := range rows {
		pdf.SetXY(boxX+6, y)
		w.font("B", w.style.Sizes.Body)
		w.textColor(pal.Muted)
		pdf.CellFormat(labelWidth, rowHeight, w.tr(r.label), "", 0, "L", false, 0, "")
		w.font("", w.style.Sizes.Body)
		w.textColor(pal.Text)
		pdf.CellFormat(boxWidth-labelWidth-12, rowHeight, w.fit(r.value, boxWidth-labelWidth-12), "", 0, "L", false, 0, "")
		y += rowHeight
	}

	pdf.SetY(pageHeight - w.margin - 14)
	w.font("", w.style.Sizes.Body-1)
	w.textColor(pal.Muted)
	pdf.CellFormat(0, 6, w.tr(w.stamp), "", 1, "C", false, 0, "")

	w.fillColor(pal.Primary)
	pdf.Rect(0, pageHeight-8, pageWidth, 8, "F")
}

func (w *writer) general() {
	v := w.view
	p := v.Data.Project
	w.heading1(report.SectionGeneral)

	w.heading(2, report.LabelDescription)
	if strings.TrimSpace(p.Description) == "" {
		w.note(report.NoDescription)
	} else {
		w.blocks(markup.Parse(p.Description), 3)
	}
	w.pdf.Ln(2)

	w.field(report.LabelPriority, p.Priority.Label())
	w.field(report.LabelCompletion, aggregate.Completion(p.Completion))
	w.field(report.LabelLastReview, v.ReviewDate(report.NoReview))
	w.pdf.Ln(2)

	w.statusPanel()
}

// statusPanel shows the weather and trend icons with their labels and the
// review comment. A comment too tall for one page continues below the icon
// strip and breaks across pages like body text.
func (w *writer) statusPanel() {
	pdf := w.pdf
	pal := w.style.Palette
	v := w.view

	var weather domain.Weather
	var progress domain.Progress
	if v.Data.LastReview != nil {
		weather, progress = v.Data.LastReview.Weather, v.Data.LastReview.Progress
	}
	comment := domain.CoalesceStr(v.ReviewComment(), report.NoComment)

	const (
		iconSize = 14.0
		pad      = 4.0
	)
	width := w.contentWidth()
	half := width / 2
	strip := iconSize + 2*pad

	w.font("I", w.style.Sizes.Body)
	commentLines := pdf.SplitLines([]byte(w.tr(comment)), width-2*pad)
	height := strip + float64(len(commentLines))*lineHeight + pad
	boxed := height <= w.pageTextHeight()
	if boxed {
		w.ensureSpace(height)
	} else {
		w.ensureSpace(strip + 2*lineHeight)
		height = strip
	}

	x, y := w.margin, pdf.GetY()
	w.fillColor(pal.Background)
	w.drawColor(pal.Border)
	pdf.SetLineWidth(0.3)
	pdf.RoundedRect(x, y, width, height, 2, "1234", "FD")

	cells := []struct {
		label, value string
		icon         icon.Icon
	}{
		{report.LabelWeather, weather.Label(), v.WeatherIcon},
		{report.LabelProgress, progress.Label(), v.ProgressIcon},
	}
	for i, c := range cells {
		cx := x + float64(i)*half + pad
		w.drawIcon(c.icon, icon.Box{X: cx, Y: y + pad, W: iconSize, H: iconSize})
		pdf.SetXY(cx+iconSize+3, y+pad+1)
		w.font("B", w.style.Sizes.Small)
		w.textColor(pal.Muted)
		pdf.CellFormat(half-iconSize-2*pad, 5, w.tr(c.label), "", 2, "L", false, 0, "")
		pdf.SetX(cx + iconSize + 3)
		w.font("B", w.style.Sizes.Body)
		w.textColor(pal.Text)
		pdf.CellFormat(half-iconSize-2*pad, 6, w.tr(c.value), "", 0, "L", false, 0, "")
	}

	w.font("I", w.style.Sizes.Body)
	w.textColor(pal.Text)
	if boxed {
		for i, l := range commentLines {
			pdf.SetXY(x+pad, y+strip+float64(i)*lineHeight)
			pdf.CellFormat(width-2*pad, lineHeight, string(l), "", 0, "L", false, 0, "")
		}
		pdf.SetXY(w.margin, y+height+4)
		return
	}

	pdf.SetLeftMargin(x + pad)
	pdf.SetXY(x+pad, y+strip+2)
	pdf.MultiCell(width-2*pad, lineHeight, w.tr(comment), "", "L", false)
	pdf.SetLeftMargin(w.margin)
	pdf.SetXY(w.margin, pdf.GetY()+4)
}

func (w *writer) framing() {
	w.heading1(report.SectionFraming)
	sections := w.view.FramingSections()
	if len(sections) == 0 {
		w.note(report.NoFraming)
		return
	}
	for _, s := range sections {
		w.heading(2, s.Key.Label())
		w.blocks(markup.Parse(s.Text), 3)
	}
}

func (w *writer) risks() {
	v := w.view
	w.heading1(report.SectionRisks)
	if len(v.Risks.All) == 0 {
		w.plain(report.NoRisks)
		return
	}

	width := w.contentWidth()
	widths := make([]float64, len(riskColumnShares))
	for i, share := range riskColumnShares {
		widths[i] = width * share
	}
	w.table(aggregate.RiskTable(v.Risks.All), widths)

	if len(v.Risks.WithMitigation) == 0 {
		return
	}
	w.heading(2, report.SectionMitigate)
	for _, r := range v.Risks.WithMitigation {
		w.ensureSpace(2 * lineHeight)
		w.font("B", w.style.Sizes.Body)
		w.textColor(w.style.Palette.Text)
		w.pdf.MultiCell(0, lineHeight, w.tr(r.Description), "", "L", false)
		w.blocks(markup.Parse(r.MitigationPlan), 3)
		w.pdf.Ln(2)
	}
}

func (w *writer) tasks() {
	v := w.view
	w.heading1(report.SectionTasks)
	if len(v.Data.Tasks) == 0 {
		w.plain(report.NoTasks)
		return
	}

	for _, status := range aggregate.TaskStatusOrder {
		w.heading(2, report.TaskGroupTitle(status))
		groups := v.Groups(status)
		if len(groups) == 0 {
			w.note(report.NoTasksInGroup)
			continue
		}
		for _, g := range groups {
			w.task(g)
		}
	}
}

func (w *writer) task(g aggregate.TaskGroup) {
	pdf := w.pdf
	pal := w.style.Palette
	t := g.Task

	w.ensureSpace(3 * lineHeight)
	pdf.Ln(1)
	pdf.SetX(w.margin)
	w.font("B", w.style.Sizes.Body)
	w.textColor(pal.Text)
	pdf.Write(lineHeight, w.tr(t.Title))
	w.font("", w.style.Sizes.Small+0.5)
	w.textColor(pal.Muted)
	pdf.Write(lineHeight, w.tr(fmt.Sprintf("  (%s : %s)", report.LabelDue, aggregate.FormatDate(t.DueDate))))
	pdf.Ln(lineHeight)

	if t.Assignee != "" {
		pdf.SetX(w.margin + indentStep)
		w.font("", w.style.Sizes.Small+0.5)
		w.textColor(pal.Muted)
		pdf.CellFormat(0, lineHeight, w.tr(report.LabelAssignee+" : "+t.Assignee), "", 1, "L", false, 0, "")
	}
	if d := strings.TrimSpace(t.Description); d != "" {
		pdf.SetX(w.margin + indentStep)
		w.font("I", w.style.Sizes.Body)
		w.textColor(pal.Text)
		pdf.MultiCell(0, lineHeight, w.tr(d), "", "L", false)
	}

	for _, sub := range g.Subtasks {
		pdf.SetX(w.margin + indentStep)
		w.font("", w.style.Sizes.Body)
		w.textColor(pal.Secondary)
		pdf.CellFormat(indentStep, lineHeight, w.tr(bulletGlyph), "", 0, "L", false, 0, "")
		pdf.SetLeftMargin(w.margin + 2*indentStep)
		w.textColor(pal.Text)
		pdf.Write(lineHeight, w.tr(sub.Title))
		w.font("I", w.style.Sizes.Small+0.5)
		w.textColor(pal.Muted)
		pdf.Write(lineHeight, w.tr(" ["+sub.Status.Label()+"]"))
		pdf.SetLeftMargin(w.margin)
		pdf.Ln(lineHeight)
	}
}
