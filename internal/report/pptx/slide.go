package pptx

import (
	"strings"

	"github.com/alexanderramin/cadrage/internal/aggregate"
	"github.com/alexanderramin/cadrage/internal/domain"
	"github.com/alexanderramin/cadrage/internal/icon"
	"github.com/alexanderramin/cadrage/internal/markup"
	"github.com/alexanderramin/cadrage/internal/ooxml"
	"github.com/alexanderramin/cadrage/internal/report"
)

// Slide grid, in inches on the 10 x 5.625 canvas.
var (
	titleBar = rect{0.3, 0.2, 9.4, 0.5}

	weatherBox  = rect{0.3, 0.9, 1.6, 1.3}
	progressBox = rect{2.0, 0.9, 1.6, 1.3}
	statusBox   = rect{3.7, 0.9, 4.2, 1.3}
	endDateBox  = rect{8.0, 0.9, 1.7, 1.3}

	todoBox       = rect{0.3, 2.35, 1.85, 3.0}
	inProgressBox = rect{2.25, 2.35, 1.85, 3.0}
	doneBox       = rect{4.2, 2.35, 1.85, 3.0}
	risksBox      = rect{6.15, 2.35, 1.75, 3.0}
	actionsBox    = rect{8.0, 2.35, 1.7, 3.0}
)

const (
	stripHeight = 0.28
	iconSize    = 0.6
)

// Box titles and empty-box fallbacks.
const (
	titleWeather  = "Situation"
	titleProgress = "Évolution"
	titleStatus   = "Statut général"
	titleEndDate  = "Fin prévue"
	titleRisks    = "Risques"
	titleActions  = "Actions"

	noRisks   = "Aucun risque identifié"
	noActions = "Aucune action définie"
)

var taskBoxes = map[domain.TaskStatus]struct {
	box   rect
	empty string
}{
	domain.TaskTodo:       {todoBox, "Aucune tâche à faire"},
	domain.TaskInProgress: {inProgressBox, "Aucune tâche en cours"},
	domain.TaskDone:       {doneBox, "Aucune tâche terminée"},
}

// projectSlide lays out one project on the fixed grid.
func projectSlide(v *aggregate.View, style report.StyleConfig) string {
	t := newSpTree(style)
	pal := style.Palette
	p := v.Data.Project

	title := p.Title
	if p.Code != "" {
		title = p.Code + " - " + p.Title
	}
	t.shape(titleBar, shapeOpts{
		name:   "Title",
		fill:   pal.Primary,
		anchor: "ctr",
		inset:  0.1,
		paras: []paragraph{{runs: []textRun{
			{text: title, bold: true, color: pal.OnPrimary, size: style.Sizes.Heading2 + 2},
			{text: "   " + p.Status.Label() + " - " + aggregate.Completion(p.Completion), color: pal.OnPrimary, size: style.Sizes.Small + 1},
		}}},
	})

	var weather domain.Weather
	var progress domain.Progress
	if v.Data.LastReview != nil {
		weather, progress = v.Data.LastReview.Weather, v.Data.LastReview.Progress
	}
	t.iconBox(weatherBox, titleWeather, v.WeatherIcon, weather.Label())
	t.iconBox(progressBox, titleProgress, v.ProgressIcon, progress.Label())

	t.box(statusBox, titleStatus, "t", []paragraph{
		plainPara(domain.CoalesceStr(v.ReviewComment(), report.NoComment), textRun{}),
	})
	t.box(endDateBox, titleEndDate, "ctr", []paragraph{{
		align: "ctr",
		runs:  []textRun{{text: aggregate.FormatDateOr(p.EndDate, report.NotDefinedF), bold: true, size: style.Sizes.Body + 1}},
	}})

	for _, status := range aggregate.TaskStatusOrder {
		tb := taskBoxes[status]
		t.box(tb.box, report.TaskGroupTitle(status), "t", taskParagraphs(v, status, tb.empty, pal))
	}
	t.box(risksBox, titleRisks, "t", riskParagraphs(v, pal))
	t.box(actionsBox, titleActions, "t", actionParagraphs(v, pal))

	return slideXML(t.close())
}

// box draws a titled box: a filled header strip over a bordered body.
func (t *spTree) box(r rect, title, anchor string, paras []paragraph) {
	pal := t.style.Palette
	t.shape(rect{r.x, r.y, r.w, stripHeight}, shapeOpts{
		name:   title,
		fill:   pal.Secondary,
		anchor: "ctr",
		inset:  0.05,
		paras: []paragraph{{align: "ctr", runs: []textRun{
			{text: title, bold: true, color: pal.OnPrimary, size: t.style.Sizes.Small + 1},
		}}},
	})
	t.shape(rect{r.x, r.y + stripHeight, r.w, r.h - stripHeight}, shapeOpts{
		name:   title + " body",
		fill:   pal.OnPrimary,
		line:   pal.Border,
		anchor: anchor,
		inset:  0.06,
		paras:  paras,
	})
}

func (t *spTree) iconBox(r rect, title string, ic icon.Icon, label string) {
	t.box(r, title, "b", []paragraph{{
		align: "ctr",
		runs:  []textRun{{text: label, bold: true}},
	}})
	body := r.y + stripHeight
	t.icon(ic, rect{r.x + (r.w-iconSize)/2, body + 0.08, iconSize, iconSize})
}

func fallback(text string, pal report.Palette) []paragraph {
	return []paragraph{plainPara(text, textRun{italic: true, color: pal.Muted})}
}

func taskParagraphs(v *aggregate.View, status domain.TaskStatus, empty string, pal report.Palette) []paragraph {
	groups := v.Groups(status)
	if len(groups) == 0 {
		return fallback(empty, pal)
	}
	var out []paragraph
	for _, g := range groups {
		runs := []textRun{{text: g.Task.Title, bold: true}}
		if g.Task.DueDate != "" {
			runs = append(runs, textRun{text: " (" + aggregate.FormatDate(g.Task.DueDate) + ")", color: pal.Muted})
		}
		out = append(out, paragraph{bullet: bulletChar, runs: runs})
		for _, sub := range g.Subtasks {
			out = append(out, paragraph{bullet: bulletChar, level: 1, runs: []textRun{
				{text: sub.Title},
				{text: " [" + sub.Status.Label() + "]", italic: true, color: pal.Muted},
			}})
		}
	}
	return out
}

func riskParagraphs(v *aggregate.View, pal report.Palette) []paragraph {
	if len(v.Risks.All) == 0 {
		return fallback(noRisks, pal)
	}
	out := make([]paragraph, 0, len(v.Risks.All))
	for _, r := range v.Risks.All {
		out = append(out, paragraph{bullet: bulletChar, runs: []textRun{
			{text: r.Description},
			{text: " (" + r.Probability.Label() + " / " + r.Severity.Label() + ")", color: pal.Muted},
		}})
	}
	return out
}

// actionParagraphs numbers the review actions then the mitigation plans.
func actionParagraphs(v *aggregate.View, pal report.Palette) []paragraph {
	var out []paragraph
	for _, a := range v.ReviewActions() {
		out = append(out, paragraph{bullet: bulletNumber, runs: []textRun{{text: a}}})
	}
	for _, r := range v.Risks.WithMitigation {
		out = append(out, paragraph{bullet: bulletNumber, runs: []textRun{{text: flatten(r.MitigationPlan)}}})
	}
	if len(out) == 0 {
		return fallback(noActions, pal)
	}
	return out
}

// flatten reduces markup to a single line of plain text.
func flatten(text string) string {
	var parts []string
	for _, b := range markup.Parse(text) {
		if s := strings.TrimSpace(b.PlainText()); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

func slideXML(tree string) string {
	return ooxml.XMLHeader + `<p:sld xmlns:a="` + nsA + `" xmlns:r="` + nsR + `" xmlns:p="` + nsP + `">` +
		`<p:cSld>` + tree + `</p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`
}
