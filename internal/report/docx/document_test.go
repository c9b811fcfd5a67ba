package docx

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/cadrage/internal/domain"
	"github.com/alexanderramin/cadrage/internal/report"
	"github.com/alexanderramin/cadrage/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions() report.Options {
	return report.Options{
		Style:       report.DefaultStyle(),
		GeneratedAt: time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC),
	}
}

func renderDocument(t *testing.T, data *domain.ProjectData) (document string, files map[string]string) {
	t.Helper()
	out, err := Render(data, testOptions())
	require.NoError(t, err)
	files = testutil.ReadZip(t, out)
	require.Contains(t, files, "word/document.xml")
	return files["word/document.xml"], files
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

func assertInOrder(t *testing.T, haystack string, needles ...string) {
	t.Helper()
	pos := 0
	for _, n := range needles {
		i := strings.Index(haystack[pos:], n)
		require.GreaterOrEqual(t, i, 0, "%q not found after offset %d", n, pos)
		pos += i + len(n)
	}
}

func TestRender_PackageParts(t *testing.T) {
	_, files := renderDocument(t, testutil.NewFullProjectData("Refonte"))

	for _, name := range []string{
		"[Content_Types].xml", "_rels/.rels", "word/_rels/document.xml.rels",
		"word/styles.xml", "word/numbering.xml", "word/settings.xml",
		"docProps/core.xml", "docProps/app.xml",
	} {
		require.Contains(t, files, name)
		assertWellFormed(t, name, files[name])
	}
	assertWellFormed(t, "word/document.xml", files["word/document.xml"])
	assert.Contains(t, files["word/_rels/document.xml.rels"], `Target="numbering.xml"`)
}

func TestRender_SectionOrderAndPageBreaks(t *testing.T) {
	doc, _ := renderDocument(t, testutil.NewFullProjectData("Refonte"))

	assert.Equal(t, 3, strings.Count(doc, `<w:br w:type="page"/>`))
	assertInOrder(t, doc,
		report.DocumentTitle,
		"Refonte",
		"PRJ-001",
		"Camille Martin",
		"Pôle Numérique &gt; Direction SI &gt; Service Études",
		"15/01/2024 à 09:30",
		`<w:br w:type="page"/>`,
		report.SectionGeneral,
		report.SectionFraming,
		"Contexte",
		"Objectifs",
		`<w:br w:type="page"/>`,
		report.SectionRisks,
		`<w:br w:type="page"/>`,
		report.SectionTasks,
		"À faire",
		"En cours",
		"Terminées",
	)
}

func TestRender_FramingMarkup(t *testing.T) {
	doc, files := renderDocument(t, testutil.NewFullProjectData("Refonte"))

	// "## Origine" nests below the framing key heading.
	assert.Contains(t, doc, `<w:pStyle w:val="Heading3"/></w:pPr><w:r><w:t xml:space="preserve">Origine</w:t>`)
	assert.Contains(t, doc, `<w:rPr><w:b/></w:rPr><w:t xml:space="preserve">historique</w:t>`)
	assert.Contains(t, doc, `<w:rPr><w:i/></w:rPr><w:t xml:space="preserve">avant</w:t>`)
	assert.Contains(t, doc, `<w:numId w:val="1"/>`, "bullets use the shared bullet list")
	assert.Contains(t, doc, `<w:numId w:val="2"/>`, "ordered list gets its own instance")

	// Blank governance text is skipped entirely.
	assert.NotContains(t, doc, "Gouvernance")

	assert.Contains(t, files["word/numbering.xml"], `<w:num w:numId="2"><w:abstractNumId w:val="1"/>`)
}

func TestRender_EachOrderedListRestarts(t *testing.T) {
	data := testutil.NewTestProjectData("Listes",
		testutil.WithFraming(domain.FramingContext, "1. a\n2. b\n\n1. c"),
		testutil.WithFraming(domain.FramingTimeline, "1. d"),
	)
	doc, files := renderDocument(t, data)

	assert.Equal(t, 2, strings.Count(doc, `<w:numId w:val="2"/>`))
	assert.Equal(t, 1, strings.Count(doc, `<w:numId w:val="3"/>`))
	assert.Equal(t, 1, strings.Count(doc, `<w:numId w:val="4"/>`))
	assert.Equal(t, 3, strings.Count(files["word/numbering.xml"], `<w:startOverride w:val="1"/>`))
}

func TestRender_EmptyProject(t *testing.T) {
	doc, _ := renderDocument(t, testutil.NewTestProjectData("Vide"))

	assert.Contains(t, doc, report.NoRisks)
	assert.Contains(t, doc, report.NoTasks)
	assert.Contains(t, doc, report.NoFraming)
	assert.Contains(t, doc, report.NoReview)
	assert.NotContains(t, doc, report.SectionMitigate)
	assert.NotContains(t, doc, "<w:tbl>")
}

func TestRender_RisksTableAndMitigation(t *testing.T) {
	doc, _ := renderDocument(t, testutil.NewFullProjectData("Refonte"))

	tbl := doc[strings.Index(doc, "<w:tbl>"):strings.Index(doc, "</w:tbl>")]
	assert.Equal(t, 3, strings.Count(tbl, "<w:tr>"), "header plus one row per risk")
	assert.Contains(t, tbl, "Élevée")

	mitigation := doc[strings.Index(doc, report.SectionMitigate):]
	assert.Contains(t, mitigation, "Retard fournisseur")
	assert.Contains(t, mitigation, "Pénalités contractuelles")
	assert.NotContains(t, mitigation[:strings.Index(mitigation, report.SectionTasks)], "Turnover")
}

func TestRender_SubtasksFollowParent(t *testing.T) {
	doc, _ := renderDocument(t, testutil.NewFullProjectData("Refonte"))

	tasks := doc[strings.Index(doc, report.SectionTasks):]
	assertInOrder(t, tasks, "En cours", "Développement", "Sprint 1 à 4", "API", "[Terminée]", "Front", "[À faire]", "Terminées", "Cadrage")
	// Subtasks are not listed as top-level entries of their own status.
	done := tasks[strings.Index(tasks, "Terminées"):]
	assert.NotContains(t, done, "API")
}

func TestRender_InvalidDateIsPlaceholder(t *testing.T) {
	data := testutil.NewTestProjectData("Dates", testutil.WithDates("n/a", ""))
	doc, _ := renderDocument(t, data)
	assert.Contains(t, doc, "Date invalide")
	assert.Contains(t, doc, "Non défini")
}

func TestRender_NilData(t *testing.T) {
	out, err := Render(nil, testOptions())
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, report.ErrRender)
}

func TestRender_BadStyle(t *testing.T) {
	opts := testOptions()
	opts.Style.Palette.Text = "nope"
	_, err := Render(testutil.NewTestProjectData("x"), opts)
	assert.ErrorIs(t, err, report.ErrRender)
}
