package aggregate

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cadrage/internal/domain"
)

const (
	DateUndefined = "Non défini"
	DateInvalid   = "Date invalide"
)

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate accepts a calendar date or a timestamp in one of the layouts
// callers send.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders s as "15 janvier 2024". Empty input gives DateUndefined
// and unparseable input gives DateInvalid; neither is an error.
func FormatDate(s string) string {
	if strings.TrimSpace(s) == "" {
		return DateUndefined
	}
	t, ok := ParseDate(s)
	if !ok {
		return DateInvalid
	}
	return FormatTime(t)
}

// FormatDateOr is FormatDate with a different placeholder for missing dates.
func FormatDateOr(s, missing string) string {
	if strings.TrimSpace(s) == "" {
		return missing
	}
	return FormatDate(s)
}

// FormatTime renders t as "15 janvier 2024".
func FormatTime(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), frenchMonths[t.Month()-1], t.Year())
}

// FormatStamp renders a generation timestamp as "15/01/2024 à 14:30".
func FormatStamp(t time.Time) string {
	return t.Format("02/01/2006") + " à " + t.Format("15:04")
}

// Breadcrumb joins the non-empty organization levels with " > ". It returns
// "" when the project is attached to nothing.
func Breadcrumb(org domain.Organization) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{org.Pole, org.Direction, org.Service} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " > ")
}

// Completion renders a completion percentage such as "45 %".
func Completion(pct int) string {
	return fmt.Sprintf("%d %%", domain.ClampPercent(pct))
}

// Manager renders the manager name with the email in parentheses when known.
func Manager(p domain.Project) string {
	name := strings.TrimSpace(p.ManagerName)
	email := strings.TrimSpace(p.ManagerEmail)
	switch {
	case name != "" && email != "":
		return fmt.Sprintf("%s (%s)", name, email)
	case name != "":
		return name
	case email != "":
		return email
	default:
		return "Non défini"
	}
}
