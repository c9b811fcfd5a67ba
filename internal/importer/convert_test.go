package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/cadrage/internal/domain"
)

func TestConvert_MinimalSnapshot(t *testing.T) {
	data := Convert(validMinimalSnapshot())

	assert.Equal(t, "Refonte", data.Project.Title)
	assert.Empty(t, data.Project.Code)
	assert.Nil(t, data.Framing)
	assert.Nil(t, data.LastReview)
	assert.Empty(t, data.Risks)
	assert.Empty(t, data.Tasks)
}

func TestConvert_FullSnapshot(t *testing.T) {
	data := Convert(validFullSnapshot())

	p := data.Project
	assert.Equal(t, "PRJ-001", p.Code)
	assert.Equal(t, domain.LifecycleInProgress, p.Status)
	assert.Equal(t, domain.PriorityHigh, p.Priority)
	assert.Equal(t, 45, p.Completion)
	assert.Equal(t, "2024-12-31", p.EndDate)
	assert.Equal(t, domain.Organization{Pole: "Pôle Numérique"}, p.Org)

	assert.Equal(t, "1. Réduire les coûts", data.Framing.Value(domain.FramingObjectives))
	assert.Empty(t, data.Framing.Value(domain.FramingGovernance))

	require.NotNil(t, data.LastReview)
	assert.Equal(t, domain.WeatherSunny, data.LastReview.Weather)
	assert.Equal(t, domain.ProgressBetter, data.LastReview.Progress)
	assert.Equal(t, []domain.ReviewAction{{Description: "Valider le budget"}}, data.LastReview.Actions)

	require.Len(t, data.Risks, 1)
	assert.Equal(t, domain.LevelHigh, data.Risks[0].Probability)
	assert.True(t, data.Risks[0].HasMitigation())

	// Task order is preserved as given.
	require.Len(t, data.Tasks, 3)
	assert.Equal(t, "T2a", data.Tasks[0].ID)
	require.NotNil(t, data.Tasks[0].ParentTaskID)
	assert.Equal(t, "T2", *data.Tasks[0].ParentTaskID)
	assert.True(t, data.Tasks[1].IsTopLevel())
}

func TestConvert_ClampsCompletion(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-5, 0},
		{0, 0},
		{73, 73},
		{100, 100},
		{140, 100},
	}
	for _, tt := range tests {
		s := validMinimalSnapshot()
		s.Project.Completion = tt.in
		assert.Equal(t, tt.want, Convert(s).Project.Completion, "completion %d", tt.in)
	}
}

func TestConvert_RiskStatusDefaultsToOpen(t *testing.T) {
	s := validMinimalSnapshot()
	s.Risks = []RiskImport{{Description: "Budget", Probability: "low", Severity: "low"}}
	assert.Equal(t, domain.RiskOpen, Convert(s).Risks[0].Status)
}

func TestConvert_EmptyParentIsTopLevel(t *testing.T) {
	s := validMinimalSnapshot()
	s.Tasks = []TaskImport{{ID: "a", Title: "A", Status: "todo", ParentTaskID: ptrStr("")}}
	assert.True(t, Convert(s).Tasks[0].IsTopLevel())
}

func TestConvertAll_KeepsOrder(t *testing.T) {
	a, b := validMinimalSnapshot(), validMinimalSnapshot()
	a.Project.Title, b.Project.Title = "A", "B"

	out := ConvertAll([]Snapshot{*a, *b})
	require.Len(t, out, 2)
	assert.Equal(t, "A", out[0].Project.Title)
	assert.Equal(t, "B", out[1].Project.Title)
}
