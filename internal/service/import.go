package service

import (
	"fmt"

	"github.com/alexanderramin/cadrage/internal/domain"
	"github.com/alexanderramin/cadrage/internal/importer"
)

// LoadProjects reads, validates and converts snapshot files, keeping file
// order and the project order inside each file.
func LoadProjects(paths ...string) ([]*domain.ProjectData, error) {
	var out []*domain.ProjectData
	for _, path := range paths {
		snaps, err := importer.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading import file %s: %w", path, err)
		}
		if errs := importer.ValidateSnapshots(snaps); len(errs) > 0 {
			return nil, fmt.Errorf("%s: %w", path, FormatValidationErrors(errs))
		}
		out = append(out, importer.ConvertAll(snaps)...)
	}
	return out, nil
}

// FormatValidationErrors folds validation errors into one multi-line error.
func FormatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
