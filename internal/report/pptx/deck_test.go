package pptx

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/cadrage/internal/domain"
	"github.com/alexanderramin/cadrage/internal/icon"
	"github.com/alexanderramin/cadrage/internal/report"
	"github.com/alexanderramin/cadrage/internal/testutil"
)

func testOptions(summary bool) Options {
	return Options{
		Options: report.Options{
			Style:       report.DefaultStyle(),
			GeneratedAt: time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC),
		},
		Summary: summary,
	}
}

func renderDeck(t *testing.T, summary bool, projects ...*domain.ProjectData) map[string]string {
	t.Helper()
	out, err := Render(projects, testOptions(summary))
	require.NoError(t, err)
	return testutil.ReadZip(t, out)
}

func slideCount(files map[string]string) int {
	n := 0
	for name := range files {
		if strings.HasPrefix(name, "ppt/slides/slide") && strings.HasSuffix(name, ".xml") {
			n++
		}
	}
	return n
}

func assertWellFormed(t *testing.T, name, content string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(content))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			t.Fatalf("%s is not well-formed XML: %v", name, err)
		}
	}
}

func TestRender_PackageIsComplete(t *testing.T) {
	files := renderDeck(t, true, testutil.NewFullProjectData("Refonte"))

	for _, name := range []string{
		"[Content_Types].xml", "_rels/.rels",
		"ppt/presentation.xml", "ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml", "ppt/slideMasters/_rels/slideMaster1.xml.rels",
		"ppt/slideLayouts/slideLayout1.xml", "ppt/slideLayouts/_rels/slideLayout1.xml.rels",
		"ppt/theme/theme1.xml", "ppt/presProps.xml", "ppt/viewProps.xml", "ppt/tableStyles.xml",
		"ppt/slides/slide1.xml", "ppt/slides/_rels/slide1.xml.rels",
		"docProps/core.xml",
	} {
		require.Contains(t, files, name)
	}
	for name, content := range files {
		if strings.HasSuffix(name, ".xml") || strings.HasSuffix(name, ".rels") {
			assertWellFormed(t, name, content)
		}
	}

	pres := files["ppt/presentation.xml"]
	assert.Contains(t, pres, `<p:sldSz cx="9144000" cy="5143500"/>`)
	assert.Equal(t, 2, strings.Count(pres, "<p:sldId "))
	assert.Contains(t, files["[Content_Types].xml"], `PartName="/ppt/slides/slide2.xml"`)
}

func TestRender_OneSlidePerProjectInOrder(t *testing.T) {
	files := renderDeck(t, false,
		testutil.NewTestProjectData("Alpha"),
		testutil.NewTestProjectData("Beta"),
		testutil.NewTestProjectData("Gamma"),
	)

	require.Equal(t, 3, slideCount(files))
	for i, title := range []string{"Alpha", "Beta", "Gamma"} {
		assert.Contains(t, files[fmt.Sprintf("ppt/slides/slide%d.xml", i+1)], "<a:t>"+title+"</a:t>")
	}
	// Every slide uses the single layout and master.
	for i := 1; i <= 3; i++ {
		assert.Contains(t, files[fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i)], "slideLayout1.xml")
	}
	assert.Contains(t, files["ppt/slideMasters/slideMaster1.xml"], `<a:srgbClr val="F5F7FA"/>`)
}

func TestRender_ProjectSlideContent(t *testing.T) {
	files := renderDeck(t, false, testutil.NewFullProjectData("Refonte"))
	slide := files["ppt/slides/slide1.xml"]

	for _, s := range []string{
		"PRJ-001 - Refonte",
		titleWeather, titleProgress, titleStatus, titleEndDate, titleRisks, titleActions,
		"À faire", "En cours", "Terminées",
		"Ensoleillé", "En amélioration",
		"Bon démarrage",
		"31 décembre 2024",
		"Retard fournisseur",
		"Valider le budget",
		"Pénalités contractuelles",
	} {
		assert.Contains(t, slide, ooxmlText(s))
	}

	// Sunny is a disc plus eight rays; better is a single triangle.
	assert.Equal(t, 1, strings.Count(slide, `prst="ellipse"`))
	assert.Equal(t, 1, strings.Count(slide, `prst="triangle"`))
	assert.Contains(t, slide, `rot="2700000"`)

	// Subtasks sit one level below their parent.
	assertBefore(t, slide, "Développement", "API")
	assert.Contains(t, slide, `lvl="1"`)
	assert.Contains(t, slide, ooxmlText(" [Terminée]"))

	// Actions: review action first, then the mitigation plan, numbered.
	assertBefore(t, slide, "Valider le budget", "Pénalités contractuelles")
	assert.Equal(t, 2, strings.Count(slide, `<a:buAutoNum type="arabicPeriod"/>`))
}

func TestRender_Fallbacks(t *testing.T) {
	files := renderDeck(t, false, testutil.NewTestProjectData("Vide", testutil.WithDates("", "")))
	slide := files["ppt/slides/slide1.xml"]

	for _, s := range []string{
		report.NoComment,
		"Aucune tâche à faire",
		"Aucune tâche en cours",
		"Aucune tâche terminée",
		noRisks,
		noActions,
		report.NotDefinedF,
	} {
		assert.Contains(t, slide, ooxmlText(s))
	}
	// No review: cloudy and stable icons.
	assert.Equal(t, 2, strings.Count(slide, `prst="roundRect"`))
	assert.Contains(t, slide, `rot="5400000"`)
}

func TestRender_StormyIconHasBoltPolygon(t *testing.T) {
	data := testutil.NewTestProjectData("Orage", testutil.WithReview(domain.WeatherStormy, domain.ProgressWorse, ""))
	slide := renderDeck(t, false, data)["ppt/slides/slide1.xml"]

	assert.Contains(t, slide, "<a:custGeom>")
	assert.Equal(t, 7, strings.Count(slide, "<a:pt "), "seven bolt points")
	assert.Contains(t, slide, `rot="10800000"`)
	assert.Contains(t, slide, icon.ColorBolt)
}

func TestRender_SummarySlides(t *testing.T) {
	var projects []*domain.ProjectData
	for i := 0; i < 12; i++ {
		projects = append(projects, testutil.NewTestProjectData(fmt.Sprintf("Projet %02d", i+1)))
	}
	files := renderDeck(t, true, projects...)

	require.Equal(t, 2+12, slideCount(files))
	first, second := files["ppt/slides/slide1.xml"], files["ppt/slides/slide2.xml"]
	assert.Contains(t, first, ooxmlText(summaryTitle+" (1/2)"))
	assert.Contains(t, second, ooxmlText(summaryTitle+" (2/2)"))
	assert.Equal(t, 1+SummaryRowsPerSlide, strings.Count(first, "<a:tr "))
	assert.Equal(t, 1+2, strings.Count(second, "<a:tr "))
	assert.Contains(t, first, "Projet 10")
	assert.NotContains(t, first, "Projet 11")

	for _, col := range summaryColumns {
		assert.Contains(t, first, ooxmlText(col.title))
	}
	// Each row gets a weather and a trend icon (cloudy + stable: 2 + 2 shapes).
	assert.Equal(t, 2*SummaryRowsPerSlide, strings.Count(first, `prst="roundRect"`))

	assert.Contains(t, files["ppt/slides/slide3.xml"], "Projet 01")
}

func TestRender_SummaryOffByDefault(t *testing.T) {
	files := renderDeck(t, false, testutil.NewTestProjectData("Seul"))
	assert.Equal(t, 1, slideCount(files))
	assert.NotContains(t, files["ppt/slides/slide1.xml"], summaryTitle)
	assert.Contains(t, files["docProps/core.xml"], "Note de cadrage - Seul")
}

func TestRender_Errors(t *testing.T) {
	_, err := Render(nil, testOptions(false))
	assert.ErrorIs(t, err, report.ErrRender)
	assert.ErrorIs(t, err, report.ErrNoProjects)

	out, err := Render([]*domain.ProjectData{testutil.NewTestProjectData("a"), nil}, testOptions(false))
	assert.ErrorIs(t, err, report.ErrRender)
	assert.Nil(t, out)
}

func TestFlatten(t *testing.T) {
	assert.Equal(t, "Plan A étape 1 étape 2", flatten("## Plan A\n\n- étape 1\n- **étape** 2"))
	assert.Equal(t, "", flatten(""))
}

func ooxmlText(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

func assertBefore(t *testing.T, haystack, first, second string) {
	t.Helper()
	i, j := strings.Index(haystack, first), strings.Index(haystack, second)
	require.GreaterOrEqual(t, i, 0, "%q missing", first)
	require.GreaterOrEqual(t, j, 0, "%q missing", second)
	assert.Less(t, i, j, "%q should come before %q", first, second)
}
