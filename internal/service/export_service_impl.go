package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/cadrage/internal/aggregate"
	"github.com/alexanderramin/cadrage/internal/domain"
	"github.com/alexanderramin/cadrage/internal/report"
	"github.com/alexanderramin/cadrage/internal/report/docx"
	"github.com/alexanderramin/cadrage/internal/report/pdf"
	"github.com/alexanderramin/cadrage/internal/report/pptx"
)

// ErrExportFailed is the only error export callers see.
var ErrExportFailed = errors.New("export failed")

type Format string

const (
	FormatDeck Format = "deck"
	FormatDocx Format = "docx"
	FormatPDF  Format = "pdf"
)

// AllFormats lists every format in export order.
var AllFormats = []Format{FormatDeck, FormatDocx, FormatPDF}

// ParseFormat accepts a format name, or "all" for every format.
func ParseFormat(s string) ([]Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "all" {
		return AllFormats, nil
	}
	for _, f := range AllFormats {
		if string(f) == s {
			return []Format{f}, nil
		}
	}
	return nil, fmt.Errorf("unknown format %q (expected deck, docx, pdf or all)", s)
}

// ExportResult describes one delivered document.
type ExportResult struct {
	ID       string
	Format   Format
	FileName string
	Path     string
	Size     int
	Projects int
}

const defaultParallel = 4

type exportService struct {
	sink     Sink
	style    report.StyleConfig
	location *time.Location
	now      func() time.Time
	parallel int
	summary  bool
	observer ExportObserver
}

type ExportOption func(*exportService)

// WithClock replaces time.Now, for stable file names and stamps.
func WithClock(now func() time.Time) ExportOption {
	return func(s *exportService) { s.now = now }
}

// WithLocation sets the zone generation stamps are written in.
func WithLocation(loc *time.Location) ExportOption {
	return func(s *exportService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithStyle overrides the compiled-in document style.
func WithStyle(style report.StyleConfig) ExportOption {
	return func(s *exportService) { s.style = style }
}

// WithParallel bounds concurrent renders in ExportBatch.
func WithParallel(n int) ExportOption {
	return func(s *exportService) {
		if n > 0 {
			s.parallel = n
		}
	}
}

// WithSummarySlides prepends the summary slides to every deck.
func WithSummarySlides(on bool) ExportOption {
	return func(s *exportService) { s.summary = on }
}

func WithObserver(obs ExportObserver) ExportOption {
	return func(s *exportService) {
		if obs != nil {
			s.observer = obs
		}
	}
}

func NewExportService(sink Sink, opts ...ExportOption) ExportService {
	s := &exportService{
		sink:     sink,
		style:    report.DefaultStyle(),
		location: time.UTC,
		now:      time.Now,
		parallel: defaultParallel,
		observer: NoopExportObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *exportService) GenerateSlideDeck(ctx context.Context, projects []*domain.ProjectData) (*ExportResult, error) {
	return s.export(ctx, "generate-slide-deck", FormatDeck, projects)
}

func (s *exportService) GenerateWordDocument(ctx context.Context, project *domain.ProjectData) (*ExportResult, error) {
	return s.export(ctx, "generate-word-document", FormatDocx, []*domain.ProjectData{project})
}

func (s *exportService) GeneratePDF(ctx context.Context, project *domain.ProjectData) (*ExportResult, error) {
	return s.export(ctx, "generate-pdf", FormatPDF, []*domain.ProjectData{project})
}

func (s *exportService) ExportBatch(ctx context.Context, projects []*domain.ProjectData, formats []Format) (results []*ExportResult, err error) {
	event := ExportEvent{Op: "export-batch", Projects: len(projects), StartedAt: s.now()}
	defer func() {
		event.Duration = s.now().Sub(event.StartedAt)
		event.Err = err
		s.observer.ObserveExport(ctx, event)
	}()

	type job struct {
		format   Format
		projects []*domain.ProjectData
	}
	var jobs []job
	for _, f := range formats {
		if f == FormatDeck {
			jobs = append(jobs, job{f, projects})
			continue
		}
		for _, p := range projects {
			jobs = append(jobs, job{f, []*domain.ProjectData{p}})
		}
	}
	event.Jobs = len(jobs)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallel)
	out := make([]*ExportResult, len(jobs))
	for i, j := range jobs {
		g.Go(func() error {
			res, err := s.export(gctx, "export-"+string(j.format), j.format, j.projects)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// export renders and delivers one document. The returned error is always
// ErrExportFailed; the observer receives the cause.
func (s *exportService) export(ctx context.Context, op string, format Format, projects []*domain.ProjectData) (*ExportResult, error) {
	res := &ExportResult{ID: uuid.New().String(), Format: format, Projects: len(projects)}
	event := ExportEvent{Op: op, ExportID: res.ID, Format: format, Projects: len(projects), StartedAt: s.now()}
	defer func() {
		event.Duration = s.now().Sub(event.StartedAt)
		s.observer.ObserveExport(ctx, event)
	}()

	if event.Err = s.run(ctx, res, projects, event.StartedAt.In(s.location)); event.Err != nil {
		return nil, ErrExportFailed
	}
	event.File, event.Bytes = res.FileName, res.Size
	return res, nil
}

func (s *exportService) run(ctx context.Context, res *ExportResult, projects []*domain.ProjectData, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	opts := report.Options{Style: s.style, GeneratedAt: at}
	var data []byte
	var err error
	switch res.Format {
	case FormatDeck:
		data, err = pptx.Render(projects, pptx.Options{Options: opts, Summary: s.summary})
	case FormatDocx:
		data, err = docx.Render(projects[0], opts)
	case FormatPDF:
		data, err = pdf.Render(projects[0], opts)
	default:
		return fmt.Errorf("unknown format %q", res.Format)
	}
	if err != nil {
		return err
	}

	res.FileName = fileName(res.Format, projects, at)
	res.Size = len(data)
	res.Path, err = s.sink.Deliver(ctx, res.FileName, data)
	if err != nil {
		return fmt.Errorf("delivering %s: %w", res.FileName, err)
	}
	return nil
}

// fileName runs after a successful render, so every project is non-nil.
func fileName(format Format, projects []*domain.ProjectData, at time.Time) string {
	if format == FormatDeck {
		titles := make([]string, len(projects))
		for i, p := range projects {
			titles[i] = p.Project.Title
		}
		return aggregate.DeckFileName(titles, at)
	}
	return aggregate.DocumentFileName(projects[0].Project.Title, string(format))
}
