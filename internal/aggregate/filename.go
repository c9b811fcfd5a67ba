package aggregate

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	documentPrefix = "Note_Cadrage_"
	batchDeckStem  = "projets-export-"
	fallbackSlug   = "projet"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonSlugRun    = regexp.MustCompile(`[^a-z0-9]+`)
)

// pathSeparators keeps a title from turning into a directory path.
var pathSeparators = strings.NewReplacer("/", "_", "\\", "_")

// DocumentFileName names a word or PDF export: "Note_Cadrage_" followed by
// the title with every whitespace run replaced by one underscore and path
// separators replaced by underscores. Other characters are kept as they are.
func DocumentFileName(title, ext string) string {
	name := whitespaceRun.ReplaceAllString(title, "_")
	return documentPrefix + pathSeparators.Replace(name) + "." + ext
}

// DeckFileName names a deck export. A single project gets its title slug,
// several projects share "projets-export-<YYYY-MM-DD>".
func DeckFileName(titles []string, now time.Time) string {
	if len(titles) == 1 {
		return Slug(titles[0]) + ".pptx"
	}
	return batchDeckStem + now.Format(time.DateOnly) + ".pptx"
}

// Slug lowercases s, strips accents and joins the remaining alphanumeric
// runs with hyphens.
func Slug(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, s)
	if err != nil {
		plain = s
	}
	slug := strings.Trim(nonSlugRun.ReplaceAllString(strings.ToLower(plain), "-"), "-")
	if slug == "" {
		return fallbackSlug
	}
	return slug
}
