// Package docx renders a project framing note as a WordprocessingML (.docx)
// document.
package docx

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadrage/internal/aggregate"
	"github.com/alexanderramin/cadrage/internal/domain"
	"github.com/alexanderramin/cadrage/internal/markup"
	"github.com/alexanderramin/cadrage/internal/ooxml"
	"github.com/alexanderramin/cadrage/internal/report"
)

// Risk table column widths in twentieths of a point (dxa), summing to the
// A4 text width at 2cm margins.
var riskColumnWidths = []int{4638, 1700, 1700, 1600}

// Render builds the framing note for data. The output is a complete .docx
// archive; on error no bytes are returned.
func Render(data *domain.ProjectData, opts report.Options) ([]byte, error) {
	return report.Guard("docx", func() ([]byte, error) {
		if data == nil {
			return nil, report.ErrNoProjects
		}
		if err := opts.Style.Validate(); err != nil {
			return nil, err
		}

		view := aggregate.Build(data)
		b := newBody(opts.Style)

		writeTitle(b, view, opts)
		b.pageBreak()
		writeGeneral(b, view)
		writeFraming(b, view)
		b.pageBreak()
		writeRisks(b, view)
		b.pageBreak()
		writeTasks(b, view)

		return assemble(b, data.Project.Title, opts)
	})
}

func writeTitle(b *body, v *aggregate.View, opts report.Options) {
	p := v.Data.Project
	b.styled("Title", report.DocumentTitle)
	b.styled("Subtitle", p.Title)

	if p.Code != "" {
		b.field(report.LabelCode, p.Code)
	}
	b.field(report.LabelManager, aggregate.Manager(p))
	b.field(report.LabelStatus, p.Status.Label())
	b.field(report.LabelStart, aggregate.FormatDate(p.StartDate))
	b.field(report.LabelEnd, aggregate.FormatDate(p.EndDate))
	b.field(report.LabelOrg, domain.CoalesceStr(v.Breadcrumb, report.NotAttached))
	b.note(report.GeneratedPrefix + aggregate.FormatStamp(opts.GeneratedAt))
}

func writeGeneral(b *body, v *aggregate.View) {
	p := v.Data.Project
	b.heading(1, report.SectionGeneral)

	b.heading(2, report.LabelDescription)
	if strings.TrimSpace(p.Description) == "" {
		b.note(report.NoDescription)
	} else {
		b.blocks(markup.Parse(p.Description), 3)
	}

	b.field(report.LabelPriority, p.Priority.Label())
	b.field(report.LabelCompletion, aggregate.Completion(p.Completion))
	b.field(report.LabelLastReview, v.ReviewDate(report.NoReview))
	if v.Data.LastReview != nil {
		b.field(report.LabelWeather, v.Data.LastReview.Weather.Label())
		b.field(report.LabelProgress, v.Data.LastReview.Progress.Label())
		b.field(report.LabelComment, domain.CoalesceStr(v.ReviewComment(), report.NoComment))
	}
}

func writeFraming(b *body, v *aggregate.View) {
	b.heading(1, report.SectionFraming)
	sections := v.FramingSections()
	if len(sections) == 0 {
		b.note(report.NoFraming)
		return
	}
	for _, s := range sections {
		b.heading(2, s.Key.Label())
		b.blocks(markup.Parse(s.Text), 3)
	}
}

func writeRisks(b *body, v *aggregate.View) {
	b.heading(1, report.SectionRisks)
	if len(v.Risks.All) == 0 {
		b.plain(report.NoRisks)
		return
	}

	b.table(aggregate.RiskTable(v.Risks.All), riskColumnWidths)

	if len(v.Risks.WithMitigation) == 0 {
		return
	}
	b.heading(2, report.SectionMitigate)
	for _, r := range v.Risks.WithMitigation {
		b.para(`<w:keepNext/>`, func() {
			b.run(r.Description, runStyle{bold: true})
		})
		b.blocks(markup.Parse(r.MitigationPlan), 3)
	}
}

func writeTasks(b *body, v *aggregate.View) {
	b.heading(1, report.SectionTasks)
	if len(v.Data.Tasks) == 0 {
		b.plain(report.NoTasks)
		return
	}

	for _, status := range aggregate.TaskStatusOrder {
		b.heading(2, report.TaskGroupTitle(status))
		groups := v.Groups(status)
		if len(groups) == 0 {
			b.note(report.NoTasksInGroup)
			continue
		}
		for _, g := range groups {
			writeTask(b, g)
		}
	}
}

func writeTask(b *body, g aggregate.TaskGroup) {
	t := g.Task
	b.para(`<w:spacing w:before="120" w:after="40"/>`, func() {
		b.run(t.Title, runStyle{bold: true})
		b.run(fmt.Sprintf(" (%s : %s)", report.LabelDue, aggregate.FormatDate(t.DueDate)), runStyle{color: b.style.Palette.Muted})
	})
	if t.Assignee != "" {
		b.para(`<w:ind w:left="360"/>`, func() {
			b.run(report.LabelAssignee+" : "+t.Assignee, runStyle{color: b.style.Palette.Muted})
		})
	}
	if strings.TrimSpace(t.Description) != "" {
		b.para(`<w:ind w:left="360"/>`, func() {
			b.run(strings.TrimSpace(t.Description), runStyle{italic: true})
		})
	}
	for _, sub := range g.Subtasks {
		b.bullet(1, func() {
			b.run(sub.Title, runStyle{})
			b.run(" ["+sub.Status.Label()+"]", runStyle{italic: true, color: b.style.Palette.Muted})
		})
	}
}

func assemble(b *body, title string, opts report.Options) ([]byte, error) {
	pkg := ooxml.NewPackage()

	var doc ooxml.Writer
	doc.Raw(ooxml.XMLHeader)
	doc.Raw(`<w:document xmlns:w="` + nsW + `" xmlns:r="` + nsR + `"><w:body>`)
	doc.Raw(b.w.String())
	doc.Raw(sectionProps(opts.Style.MarginMM))
	doc.Raw(`</w:body></w:document>`)

	parts := []struct {
		name, ctype string
		data        []byte
		rel         string
	}{
		{"word/document.xml", ooxml.TypeDocument, doc.Bytes(), ""},
		{"word/styles.xml", ooxml.TypeStyles, stylesXML(opts.Style), ooxml.RelStyles},
		{"word/numbering.xml", ooxml.TypeNumbering, numberingXML(b.orderedNums), ooxml.RelNumbering},
		{"word/settings.xml", ooxml.TypeSettings, settingsXML(), ooxml.RelSettings},
	}
	for _, p := range parts {
		if err := pkg.AddPart(p.name, p.ctype, p.data); err != nil {
			return nil, err
		}
		if p.rel != "" {
			pkg.Relate("word/document.xml", p.rel, strings.TrimPrefix(p.name, "word/"))
		}
	}
	pkg.Relate("", ooxml.RelOfficeDocument, "word/document.xml")

	if err := pkg.AddCoreProperties(report.DocumentTitle+" - "+title, report.Application, report.Application, opts.GeneratedAt); err != nil {
		return nil, err
	}
	return pkg.Bytes()
}
