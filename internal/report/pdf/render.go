// Package pdf renders a project framing note as an A4 PDF: a cover page then
// one page per section (general information and framing, risks, tasks).
package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/alexanderramin/cadrage/internal/aggregate"
	"github.com/alexanderramin/cadrage/internal/domain"
	"github.com/alexanderramin/cadrage/internal/report"
)

// Render builds the framing note for data. On error no bytes are returned.
func Render(data *domain.ProjectData, opts report.Options) ([]byte, error) {
	return render(data, opts, true)
}

func render(data *domain.ProjectData, opts report.Options, compress bool) ([]byte, error) {
	return report.Guard("pdf", func() ([]byte, error) {
		if data == nil {
			return nil, report.ErrNoProjects
		}
		if err := opts.Style.Validate(); err != nil {
			return nil, err
		}

		pdf := fpdf.New("P", "mm", "A4", "")
		m := opts.Style.MarginMM
		pdf.SetMargins(m, m+headerSpace, m)
		pdf.SetAutoPageBreak(true, m+footerSpace)
		pdf.SetCompression(compress)
		pdf.SetCreationDate(opts.GeneratedAt)
		pdf.SetModificationDate(opts.GeneratedAt)
		pdf.SetTitle(report.DocumentTitle+" - "+data.Project.Title, true)
		pdf.SetCreator(report.Application, true)

		w := newWriter(pdf, aggregate.Build(data), opts)

		w.coverPage()

		pdf.AddPage()
		w.general()
		w.framing()

		pdf.AddPage()
		w.risks()

		pdf.AddPage()
		w.tasks()

		w.decoratePages()

		if pdf.Err() {
			return nil, fmt.Errorf("building pdf: %w", pdf.Error())
		}
		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			return nil, fmt.Errorf("pdf output: %w", err)
		}
		return buf.Bytes(), nil
	})
}

const pageLabelWidth = 30.0

// decoratePages adds the page-number header and generation footer to every
// page except the cover.
func (w *writer) decoratePages() {
	pdf := w.pdf
	pdf.SetAutoPageBreak(false, 0)

	total := pdf.PageCount()
	pageWidth, pageHeight := pdf.GetPageSize()
	m := w.margin
	title := w.view.Data.Project.Title

	for i := 2; i <= total; i++ {
		pdf.SetPage(i)

		pdf.SetY(m - 8)
		w.font("B", w.style.Sizes.Small)
		w.textColor(w.style.Palette.Primary)
		pdf.CellFormat(pageWidth-2*m-pageLabelWidth, 5, w.fit(report.DocumentTitle+" - "+title, pageWidth-2*m-pageLabelWidth), "", 0, "L", false, 0, "")
		w.font("", w.style.Sizes.Small)
		w.textColor(w.style.Palette.Muted)
		pdf.CellFormat(pageLabelWidth, 5, fmt.Sprintf("Page %d / %d", i-1, total-1), "", 1, "R", false, 0, "")
		w.drawColor(w.style.Palette.Primary)
		pdf.SetLineWidth(0.4)
		pdf.Line(m, m-2, pageWidth-m, m-2)

		w.drawColor(w.style.Palette.Border)
		pdf.SetLineWidth(0.3)
		pdf.Line(m, pageHeight-m+2, pageWidth-m, pageHeight-m+2)
		pdf.SetY(pageHeight - m + 4)
		w.font("", w.style.Sizes.Small)
		w.textColor(w.style.Palette.Muted)
		pdf.CellFormat(0, 5, w.tr(w.stamp), "", 0, "C", false, 0, "")
	}
}
