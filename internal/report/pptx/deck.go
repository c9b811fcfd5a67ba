// Package pptx renders project status slides as a PresentationML (.pptx)
// deck: one fixed-grid slide per project, optionally preceded by summary
// slides listing every project.
package pptx

import (
	"fmt"

	"github.com/alexanderramin/cadrage/internal/aggregate"
	"github.com/alexanderramin/cadrage/internal/domain"
	"github.com/alexanderramin/cadrage/internal/ooxml"
	"github.com/alexanderramin/cadrage/internal/report"
)

// Canvas is 16:9, 10in x 5.625in.
const (
	SlideWidthEMU  = 9144000
	SlideHeightEMU = 5143500
)

// Options extends the shared render options with deck-only settings.
type Options struct {
	report.Options
	// Summary prepends the project summary slides.
	Summary bool
}

// Render builds one deck for projects, in input order. On error no bytes are
// returned.
func Render(projects []*domain.ProjectData, opts Options) ([]byte, error) {
	return report.Guard("pptx", func() ([]byte, error) {
		if len(projects) == 0 {
			return nil, report.ErrNoProjects
		}
		if err := opts.Style.Validate(); err != nil {
			return nil, err
		}

		views := make([]*aggregate.View, len(projects))
		for i, p := range projects {
			if p == nil {
				return nil, fmt.Errorf("project %d is nil", i)
			}
			views[i] = aggregate.Build(p)
		}

		var slides []string
		if opts.Summary {
			slides = append(slides, summarySlides(views, opts.Style)...)
		}
		for _, v := range views {
			slides = append(slides, projectSlide(v, opts.Style))
		}

		title := report.DocumentTitle
		if len(projects) == 1 {
			title += " - " + projects[0].Project.Title
		}
		return assemble(slides, title, opts)
	})
}

func assemble(slides []string, title string, opts Options) ([]byte, error) {
	pkg := ooxml.NewPackage()
	const (
		presentation = "ppt/presentation.xml"
		master       = "ppt/slideMasters/slideMaster1.xml"
		layout       = "ppt/slideLayouts/slideLayout1.xml"
		theme        = "ppt/theme/theme1.xml"
	)

	masterID := pkg.Relate(presentation, ooxml.RelSlideMaster, "slideMasters/slideMaster1.xml")
	slideIDs := make([]string, len(slides))
	for i, s := range slides {
		name := fmt.Sprintf("ppt/slides/slide%d.xml", i+1)
		if err := pkg.AddPart(name, ooxml.TypeSlide, []byte(s)); err != nil {
			return nil, err
		}
		pkg.Relate(name, ooxml.RelSlideLayout, "../slideLayouts/slideLayout1.xml")
		slideIDs[i] = pkg.Relate(presentation, ooxml.RelSlide, fmt.Sprintf("slides/slide%d.xml", i+1))
	}
	pkg.Relate(presentation, ooxml.RelPresProps, "presProps.xml")
	pkg.Relate(presentation, ooxml.RelViewProps, "viewProps.xml")
	pkg.Relate(presentation, ooxml.RelTheme, "theme/theme1.xml")
	pkg.Relate(presentation, ooxml.RelTableStyles, "tableStyles.xml")

	pkg.Relate(master, ooxml.RelSlideLayout, "../slideLayouts/slideLayout1.xml")
	pkg.Relate(master, ooxml.RelTheme, "../theme/theme1.xml")
	pkg.Relate(layout, ooxml.RelSlideMaster, "../slideMasters/slideMaster1.xml")
	pkg.Relate("", ooxml.RelOfficeDocument, presentation)

	parts := []struct {
		name, ctype string
		data        []byte
	}{
		{presentation, ooxml.TypePresentation, presentationXML(masterID, slideIDs)},
		{master, ooxml.TypeSlideMaster, masterXML(opts.Style)},
		{layout, ooxml.TypeSlideLayout, layoutXML()},
		{theme, ooxml.TypeTheme, themeXML(opts.Style)},
		{"ppt/presProps.xml", ooxml.TypePresProps, presPropsXML()},
		{"ppt/viewProps.xml", ooxml.TypeViewProps, viewPropsXML()},
		{"ppt/tableStyles.xml", ooxml.TypeTableStyles, tableStylesXML()},
	}
	for _, p := range parts {
		if err := pkg.AddPart(p.name, p.ctype, p.data); err != nil {
			return nil, err
		}
	}

	if err := pkg.AddCoreProperties(title, report.Application, report.Application, opts.GeneratedAt); err != nil {
		return nil, err
	}
	return pkg.Bytes()
}
