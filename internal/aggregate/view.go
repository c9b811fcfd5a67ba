package aggregate

import (
	"strings"

	"github.com/alexanderramin/cadrage/internal/domain"
	"github.com/alexanderramin/cadrage/internal/icon"
)

// View bundles the derived data one render needs. It is built once per
// project and only read afterwards.
type View struct {
	Data       *domain.ProjectData
	Tasks      TaskBuckets
	Subtasks   *SubtaskIndex
	Risks      RiskPartition
	Breadcrumb string

	WeatherIcon  icon.Icon
	ProgressIcon icon.Icon
}

func Build(data *domain.ProjectData) *View {
	weather, progress := icon.ForReview(data.LastReview)
	return &View{
		Data:         data,
		Tasks:        BucketTasks(data.Tasks),
		Subtasks:     IndexSubtasks(data.Tasks),
		Risks:        PartitionRisks(data.Risks),
		Breadcrumb:   Breadcrumb(data.Project.Org),
		WeatherIcon:  weather,
		ProgressIcon: progress,
	}
}

// FramingSection is one non-empty framing field.
type FramingSection struct {
	Key  domain.FramingKey
	Text string
}

// FramingSections returns the present, non-blank framing fields in the fixed
// document order.
func (v *View) FramingSections() []FramingSection {
	var out []FramingSection
	for _, key := range domain.FramingKeys {
		text := v.Data.Framing.Value(key)
		if strings.TrimSpace(text) == "" {
			continue
		}
		out = append(out, FramingSection{Key: key, Text: text})
	}
	return out
}

// ReviewActions lists the last review's action descriptions, skipping blanks.
func (v *View) ReviewActions() []string {
	if v.Data.LastReview == nil {
		return nil
	}
	var out []string
	for _, a := range v.Data.LastReview.Actions {
		if d := strings.TrimSpace(a.Description); d != "" {
			out = append(out, d)
		}
	}
	return out
}

// ReviewComment returns the last review comment, or "" without a review.
func (v *View) ReviewComment() string {
	if v.Data.LastReview == nil {
		return ""
	}
	return strings.TrimSpace(v.Data.LastReview.Comment)
}

// ReviewDate returns the formatted last review date, or the given fallback.
func (v *View) ReviewDate(missing string) string {
	if v.Data.LastReview == nil {
		return missing
	}
	return FormatDateOr(v.Data.LastReview.CreatedAt, missing)
}
