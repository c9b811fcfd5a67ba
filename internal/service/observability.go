package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// ExportEvent describes one finished export operation: a single document,
// or a whole batch when Op is "export-batch".
type ExportEvent struct {
	Op        string
	ExportID  string
	Format    Format
	Projects  int
	Jobs      int
	File      string
	Bytes     int
	StartedAt time.Time
	Duration  time.Duration

	// Err is the real cause. Callers of the export service only get
	// ErrExportFailed.
	Err error
}

func (e ExportEvent) Success() bool { return e.Err == nil }

// ExportObserver is told about every export the service runs. Batch renders
// report each document and then the batch itself.
type ExportObserver interface {
	ObserveExport(ctx context.Context, event ExportEvent)
}

type NoopExportObserver struct{}

func (NoopExportObserver) ObserveExport(context.Context, ExportEvent) {}

type logExportObserver struct {
	logger *slog.Logger
}

// NewLogExportObserver writes one slog text record per export to w.
func NewLogExportObserver(w io.Writer) ExportObserver {
	if w == nil {
		return NoopExportObserver{}
	}
	return NewSlogExportObserver(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})))
}

func NewSlogExportObserver(logger *slog.Logger) ExportObserver {
	if logger == nil {
		return NoopExportObserver{}
	}
	return &logExportObserver{logger: logger}
}

func (o *logExportObserver) ObserveExport(ctx context.Context, e ExportEvent) {
	attrs := []slog.Attr{
		slog.String("op", e.Op),
		slog.Int("projects", e.Projects),
		slog.Int64("duration_ms", e.Duration.Milliseconds()),
	}
	if e.ExportID != "" {
		attrs = append(attrs, slog.String("export_id", e.ExportID), slog.String("format", string(e.Format)))
	}
	if e.Jobs > 0 {
		attrs = append(attrs, slog.Int("jobs", e.Jobs))
	}
	if e.File != "" {
		attrs = append(attrs, slog.String("file", e.File), slog.Int("bytes", e.Bytes))
	}

	if e.Err != nil {
		attrs = append(attrs, slog.String("error", e.Err.Error()))
		o.logger.LogAttrs(ctx, slog.LevelError, "export failed", attrs...)
		return
	}
	o.logger.LogAttrs(ctx, slog.LevelInfo, "export done", attrs...)
}
