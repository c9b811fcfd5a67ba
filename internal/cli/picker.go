package cli

import (
	"github.com/alexanderramin/cadrage/internal/cli/formatter"
	"github.com/alexanderramin/cadrage/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// cadrageHuhTheme returns a huh theme matching the formatter palette.
func cadrageHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// formatForm builds the single-select form behind pickFormats.
func formatForm(choice *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Format d'export").
				Description("Choisir le document à générer").
				Options(
					huh.NewOption("Présentation (.pptx)", string(service.FormatDeck)),
					huh.NewOption("Note de cadrage Word (.docx)", string(service.FormatDocx)),
					huh.NewOption("Note de cadrage PDF (.pdf)", string(service.FormatPDF)),
					huh.NewOption("Tous les formats", "all"),
				).
				Value(choice),
		),
	).WithTheme(cadrageHuhTheme()).WithShowHelp(false)
}

func pickFormats() ([]service.Format, error) {
	choice := "all"
	if err := formatForm(&choice).Run(); err != nil {
		return nil, err
	}
	return service.ParseFormat(choice)
}
