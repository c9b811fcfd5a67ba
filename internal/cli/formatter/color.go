package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadrage/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleItalic     = lipgloss.NewStyle().Foreground(ColorFg).Italic(true)
)

// LevelStyle colors a risk probability or severity.
func LevelStyle(l domain.Level) lipgloss.Style {
	switch l {
	case domain.LevelHigh:
		return StyleRed
	case domain.LevelMedium:
		return StyleYellow
	case domain.LevelLow:
		return StyleGreen
	default:
		return StyleDim
	}
}

// WeatherBadge returns a colored weather indicator such as "☀ Ensoleillé".
// Values outside the known set read as cloudy, like the document icons.
func WeatherBadge(w domain.Weather) string {
	switch w {
	case domain.WeatherSunny:
		return StyleYellow.Render("☀ " + w.Label())
	case domain.WeatherStormy:
		return StyleRed.Render("⚡ " + w.Label())
	case domain.WeatherCloudy:
		return StyleDim.Render("☁ " + w.Label())
	default:
		return StyleDim.Render("☁ " + domain.WeatherCloudy.Label())
	}
}

// ProgressBadge returns a colored trend arrow with its label.
func ProgressBadge(p domain.Progress) string {
	switch p {
	case domain.ProgressBetter:
		return StyleGreen.Render("↗ " + p.Label())
	case domain.ProgressWorse:
		return StyleRed.Render("↘ " + p.Label())
	case domain.ProgressStable:
		return StyleBlue.Render("→ " + p.Label())
	default:
		return StyleBlue.Render("→ " + domain.ProgressStable.Label())
	}
}

// LifecyclePill returns a colored lifecycle status.
func LifecyclePill(s domain.LifecycleStatus) string {
	switch s {
	case domain.LifecycleInProgress, domain.LifecycleValidated:
		return StyleGreen.Render("● " + s.Label())
	case domain.LifecycleStudy:
		return StyleBlue.Render("○ " + s.Label())
	case domain.LifecycleSuspended:
		return StyleYellow.Render("○ " + s.Label())
	case domain.LifecycleCompleted:
		return StyleDim.Render("✔ " + s.Label())
	case domain.LifecycleAbandoned:
		return StyleDim.Render("✖ " + s.Label())
	default:
		return StyleDim.Render(s.Label())
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
