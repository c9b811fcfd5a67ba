package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadrage/internal/service"
)

// FormatExportResults lists delivered files.
func FormatExportResults(results []*service.ExportResult) string {
	if len(results) == 0 {
		return Dim("Nothing exported.") + "\n"
	}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			StylePurple.Render(string(r.Format)),
			Bold(r.FileName),
			HumanSize(r.Size),
			Dim(r.Path),
		})
	}
	return RenderTable([]string{"FORMAT", "FILE", "SIZE", "PATH"}, rows)
}

// FormatValidation reports the outcome of validating one snapshot file.
func FormatValidation(file string, projects int, errs []error) string {
	if len(errs) == 0 {
		return StyleGreen.Render("✔ ") + Bold(file) + Dim(fmt.Sprintf("  %d project(s) valid", projects)) + "\n"
	}
	var b strings.Builder
	b.WriteString(StyleRed.Render("✖ ") + Bold(file) + Dim(fmt.Sprintf("  %d error(s)", len(errs))) + "\n")
	for _, err := range errs {
		b.WriteString("  " + StyleRed.Render("- ") + err.Error() + "\n")
	}
	return b.String()
}

// HumanSize renders a byte count as B, KB or MB.
func HumanSize(n int) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}
