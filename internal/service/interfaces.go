package service

import (
	"context"

	"github.com/alexanderramin/cadrage/internal/domain"
)

// ExportService turns ProjectData snapshots into delivered documents. Every
// failure surfaces as ErrExportFailed; the cause goes to the observer.
type ExportService interface {
	// GenerateSlideDeck renders one deck holding every project, in order.
	GenerateSlideDeck(ctx context.Context, projects []*domain.ProjectData) (*ExportResult, error)
	GenerateWordDocument(ctx context.Context, project *domain.ProjectData) (*ExportResult, error)
	GeneratePDF(ctx context.Context, project *domain.ProjectData) (*ExportResult, error)
	// ExportBatch renders one word/PDF file per project and one deck for all
	// of them, concurrently. Results follow the order formats then projects.
	ExportBatch(ctx context.Context, projects []*domain.ProjectData, formats []Format) ([]*ExportResult, error)
}

// Sink receives finished documents. Deliver returns where the file ended up.
type Sink interface {
	Deliver(ctx context.Context, name string, data []byte) (string, error)
}
