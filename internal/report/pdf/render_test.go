package pdf

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/cadrage/internal/domain"
	"github.com/alexanderramin/cadrage/internal/report"
	"github.com/alexanderramin/cadrage/internal/testutil"
)

func testOptions() report.Options {
	return report.Options{
		Style:       report.DefaultStyle(),
		GeneratedAt: time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC),
	}
}

// cp1252 matches what the core fonts write into content streams.
var cp1252 = fpdf.New("P", "mm", "A4", "").UnicodeTranslatorFromDescriptor("")

// renderPlain renders without stream compression so page text is searchable.
func renderPlain(t *testing.T, data *domain.ProjectData) string {
	t.Helper()
	out, err := render(data, testOptions(), false)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	return string(out)
}

func pageCount(doc string) int {
	return strings.Count(doc, "<</Type /Page\n")
}

func TestRender_EmptyProjectFallbacks(t *testing.T) {
	doc := renderPlain(t, testutil.NewTestProjectData("Vide"))

	assert.Contains(t, doc, cp1252(report.NoRisks))
	assert.Contains(t, doc, cp1252(report.NoTasks))
	assert.Contains(t, doc, cp1252(report.NoFraming))
	assert.NotContains(t, doc, cp1252(report.SectionMitigate))
	assert.Equal(t, 4, pageCount(doc), "cover plus one page per section")
}

func TestRender_PageDecorations(t *testing.T) {
	doc := renderPlain(t, testutil.NewTestProjectData("Vide"))

	for _, n := range []string{"Page 1 / 3", "Page 2 / 3", "Page 3 / 3"} {
		assert.Contains(t, doc, n)
	}
	assert.NotContains(t, doc, "Page 0 /")
	// Cover footer plus one footer per content page.
	assert.Equal(t, 4, strings.Count(doc, cp1252(report.GeneratedPrefix+"15/01/2024 à 09:30")))
}

func TestRender_CoverMetadata(t *testing.T) {
	doc := renderPlain(t, testutil.NewFullProjectData("Refonte"))

	for _, s := range []string{
		report.DocumentTitle,
		"Refonte",
		"PRJ-001",
		"Camille Martin (camille.martin@example.org)",
		"Pôle Numérique > Direction SI > Service Études",
		"15 janvier 2024",
		"31 décembre 2024",
	} {
		assert.Contains(t, doc, cp1252(s))
	}
}

func TestRender_FullProjectSections(t *testing.T) {
	doc := renderPlain(t, testutil.NewFullProjectData("Refonte"))

	for _, s := range []string{
		report.SectionGeneral,
		report.SectionFraming,
		"Contexte",
		"Objectifs",
		"Origine",
		"historique",
		report.SectionRisks,
		"Description", "Probabilité", "Gravité", "Statut",
		"Retard fournisseur",
		"Turnover",
		report.SectionMitigate,
		"Pénalités contractuelles",
		report.SectionTasks,
		"Développement",
		"[Terminée]",
		"[À faire]",
		"Responsable : Alex",
		"Ensoleillé",
		"En amélioration",
		"Bon démarrage",
	} {
		assert.Contains(t, doc, cp1252(s))
	}
	assert.NotContains(t, doc, cp1252("Gouvernance"))
	assert.NotContains(t, doc, cp1252(report.NoRisks))
	assert.NotContains(t, doc, cp1252(report.NoTasks))
}

func TestRender_InvalidDateIsPlaceholder(t *testing.T) {
	doc := renderPlain(t, testutil.NewTestProjectData("Dates", testutil.WithDates("bientôt", "")))
	assert.Contains(t, doc, "Date invalide")
	assert.Contains(t, doc, cp1252("Non défini"))
}

func TestRender_ManyRisksSpillOver(t *testing.T) {
	var risks []domain.Risk
	for i := 0; i < 60; i++ {
		risks = append(risks, testutil.NewTestRisk(strings.Repeat("Risque long ", 8), domain.LevelHigh, domain.LevelLow, ""))
	}
	doc := renderPlain(t, testutil.NewTestProjectData("Volumineux", testutil.WithRisks(risks...)))
	assert.Greater(t, pageCount(doc), 4)
}

func reviewComment(lines int) string {
	parts := make([]string, lines)
	for i := range parts {
		parts[i] = fmt.Sprintf("Ligne %03d du commentaire", i+1)
	}
	return strings.Join(parts, "\n")
}

func TestRender_LongReviewCommentPaginates(t *testing.T) {
	tests := []struct {
		lines    int
		maxPages int
	}{
		{lines: 0, maxPages: 4},
		{lines: 30, maxPages: 5},
		{lines: 60, maxPages: 6},
		{lines: 120, maxPages: 8},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d lines", tt.lines), func(t *testing.T) {
			data := testutil.NewTestProjectData("Revue",
				testutil.WithReview(domain.WeatherStormy, domain.ProgressWorse, reviewComment(tt.lines)))
			doc := renderPlain(t, data)

			assert.LessOrEqual(t, pageCount(doc), tt.maxPages)
			if tt.lines > 0 {
				assert.Contains(t, doc, "Ligne 001 du commentaire")
				assert.Contains(t, doc, fmt.Sprintf("Ligne %03d du commentaire", tt.lines))
			}
		})
	}
}

// textPosition matches a text show operator with its x offset.
var textPosition = regexp.MustCompile(`BT ([0-9.]+) [0-9.]+ Td \(([^)]*)\)\s?Tj`)

func TestRender_WrappedSubtaskKeepsIndent(t *testing.T) {
	words := make([]string, 40)
	for i := range words {
		words[i] = fmt.Sprintf("sousA%02d", i+1)
	}
	data := testutil.NewTestProjectData("Tâches", testutil.WithTasks(
		testutil.NewTestTask("Parent", domain.TaskInProgress, testutil.WithTaskID("P")),
		testutil.NewTestTask(strings.Join(words, " "), domain.TaskTodo, testutil.WithParent("P")),
	))
	doc := renderPlain(t, data)

	var xs []string
	for _, m := range textPosition.FindAllStringSubmatch(doc, -1) {
		if strings.Contains(m[2], "sousA") {
			xs = append(xs, m[1])
		}
	}
	require.Greater(t, len(xs), 1, "subtask title should wrap")
	for _, x := range xs[1:] {
		assert.Equal(t, xs[0], x)
	}
}

func TestRender_Compressed(t *testing.T) {
	out, err := Render(testutil.NewFullProjectData("Refonte"), testOptions())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Contains(t, string(out[len(out)-16:]), "%%EOF")
}

func TestRender_Errors(t *testing.T) {
	out, err := Render(nil, testOptions())
	assert.ErrorIs(t, err, report.ErrRender)
	assert.Nil(t, out)

	opts := testOptions()
	opts.Style.Fonts.PDF = ""
	out, err = Render(testutil.NewTestProjectData("x"), opts)
	assert.ErrorIs(t, err, report.ErrRender)
	assert.Nil(t, out)
}
