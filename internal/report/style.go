// Package report holds what the three document renderers share: the style
// value passed into every render, render options and error handling.
package report

import (
	"fmt"
	"strconv"
	"time"
)

// Color is an RRGGBB hex string without the leading '#'.
type Color string

// RGB returns the color components. Malformed colors come back as black.
func (c Color) RGB() (r, g, b int) {
	if len(c) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(string(c), 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}

func (c Color) String() string {
	return string(c)
}

// Palette groups the colors used across documents.
type Palette struct {
	Primary    Color // titles, header strips
	Secondary  Color // headings, accents
	Text       Color
	Muted      Color // captions, footers
	Background Color // slide and box backgrounds
	TableHead  Color
	TableAlt   Color // alternating table rows
	Border     Color
	OnPrimary  Color // text drawn over Primary
}

// Fonts names the typefaces per output. PDF core fonts differ from the
// office families, so both are carried.
type Fonts struct {
	Office string
	PDF    string
}

// Sizes are in points.
type Sizes struct {
	Title    float64
	Heading2 float64
	Heading3 float64
	Body     float64
	Small    float64
}

// StyleConfig is the complete visual contract of a render. It is a value:
// renderers receive their own copy and never share mutable style state.
type StyleConfig struct {
	Palette Palette
	Fonts   Fonts
	Sizes   Sizes
	// MarginMM is the PDF page margin.
	MarginMM float64
}

// DefaultStyle returns the house style.
func DefaultStyle() StyleConfig {
	return StyleConfig{
		Palette: Palette{
			Primary:    "1F3A5F",
			Secondary:  "2E75B6",
			Text:       "2C3E50",
			Muted:      "7F8C8D",
			Background: "F5F7FA",
			TableHead:  "1F3A5F",
			TableAlt:   "EEF2F7",
			Border:     "D0D7E1",
			OnPrimary:  "FFFFFF",
		},
		Fonts: Fonts{
			Office: "Calibri",
			PDF:    "Helvetica",
		},
		Sizes: Sizes{
			Title:    26,
			Heading2: 16,
			Heading3: 13,
			Body:     11,
			Small:    9,
		},
		MarginMM: 20,
	}
}

// Options carries everything a render needs besides the project data.
type Options struct {
	Style       StyleConfig
	GeneratedAt time.Time
}

// DefaultOptions uses DefaultStyle and the current time in loc (UTC if nil).
func DefaultOptions(loc *time.Location) Options {
	if loc == nil {
		loc = time.UTC
	}
	return Options{Style: DefaultStyle(), GeneratedAt: time.Now().In(loc)}
}

// Validate checks the style colors so renderers can rely on them.
func (s StyleConfig) Validate() error {
	colors := map[string]Color{
		"primary": s.Palette.Primary, "secondary": s.Palette.Secondary,
		"text": s.Palette.Text, "muted": s.Palette.Muted,
		"background": s.Palette.Background, "table_head": s.Palette.TableHead,
		"table_alt": s.Palette.TableAlt, "border": s.Palette.Border,
		"on_primary": s.Palette.OnPrimary,
	}
	for name, c := range colors {
		if len(c) != 6 {
			return fmt.Errorf("style color %s: %q is not RRGGBB", name, c)
		}
		if _, err := strconv.ParseUint(string(c), 16, 32); err != nil {
			return fmt.Errorf("style color %s: %q is not hex", name, c)
		}
	}
	if s.Fonts.Office == "" || s.Fonts.PDF == "" {
		return fmt.Errorf("style fonts must be set")
	}
	return nil
}
