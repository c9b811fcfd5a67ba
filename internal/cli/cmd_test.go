package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/cadrage/internal/config"
	"github.com/alexanderramin/cadrage/internal/service"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

const snapshotJSON = `{
	"project": {"title": "Refonte du portail", "code": "PRJ-001", "status": "in_progress", "completion": 40},
	"framing": {"context": "## Origine\nL'outil **historique**"},
	"lastReview": {"weather": "stormy", "progress": "worse", "comment": "Fournisseur en retard"},
	"risks": [{"description": "Retard fournisseur", "probability": "high", "severity": "high", "mitigationPlan": "- Relancer\n- Pénalités"}],
	"tasks": [
		{"id": "T1", "title": "Cadrage", "status": "done"},
		{"id": "T2", "title": "Build", "status": "in_progress"},
		{"id": "T2a", "title": "API", "status": "todo", "parentTaskId": "T2"}
	]
}`

// testApp wires an App writing into a temp dir with a fixed clock and no terminal.
func testApp(t *testing.T) (*App, string) {
	t.Helper()
	out := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.OutputDir = out
	now := time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC)

	return &App{
		Config: cfg,
		NewExporter: func(outDir string, summary bool) service.ExportService {
			return service.NewExportService(service.NewFileSink(outDir),
				service.WithClock(func() time.Time { return now }),
				service.WithSummarySlides(summary),
			)
		},
		PickFormats: func() ([]service.Format, error) {
			t.Fatal("picker must not run without a terminal")
			return nil, nil
		},
	}, out
}

func writeSnapshot(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return ansiPattern.ReplaceAllString(buf.String(), ""), err
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestExportCmd_AllFormatsByDefault(t *testing.T) {
	app, out := testApp(t)
	file := writeSnapshot(t, "refonte.json", snapshotJSON)

	stdout, err := executeCmd(t, app, "", "export", file)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"refonte-du-portail.pptx",
		"Note_Cadrage_Refonte_du_portail.docx",
		"Note_Cadrage_Refonte_du_portail.pdf",
	}, listDir(t, out))
	assert.Contains(t, stdout, "Note_Cadrage_Refonte_du_portail.pdf")
	assert.Contains(t, stdout, "FORMAT")
}

func TestExportCmd_FormatAndOutFlags(t *testing.T) {
	app, defaultOut := testApp(t)
	custom := filepath.Join(t.TempDir(), "exports")
	first := writeSnapshot(t, "a.json", snapshotJSON)
	second := writeSnapshot(t, "b.yaml", "project:\n  title: Second\n")

	_, err := executeCmd(t, app, "", "export", first, second, "--format", "deck", "--summary", "--out", custom)
	require.NoError(t, err)

	assert.Equal(t, []string{"projets-export-2024-01-15.pptx"}, listDir(t, custom))
	assert.Empty(t, listDir(t, defaultOut))
}

func TestExportCmd_PickerOnTerminal(t *testing.T) {
	app, out := testApp(t)
	app.IsInteractive = func() bool { return true }
	picked := 0
	app.PickFormats = func() ([]service.Format, error) {
		picked++
		return []service.Format{service.FormatPDF}, nil
	}

	_, err := executeCmd(t, app, "", "export", writeSnapshot(t, "a.json", snapshotJSON))
	require.NoError(t, err)
	assert.Equal(t, 1, picked)
	assert.Equal(t, []string{"Note_Cadrage_Refonte_du_portail.pdf"}, listDir(t, out))
}

func TestExportCmd_PickerCanceled(t *testing.T) {
	app, out := testApp(t)
	app.IsInteractive = func() bool { return true }
	canceled := errors.New("user aborted")
	app.PickFormats = func() ([]service.Format, error) { return nil, canceled }

	_, err := executeCmd(t, app, "", "export", writeSnapshot(t, "a.json", snapshotJSON))
	assert.ErrorIs(t, err, canceled)
	assert.Empty(t, listDir(t, out))
}

func TestExportCmd_Errors(t *testing.T) {
	app, out := testApp(t)

	_, err := executeCmd(t, app, "", "export", writeSnapshot(t, "a.json", snapshotJSON), "--format", "odt")
	assert.ErrorContains(t, err, `unknown format "odt"`)

	_, err = executeCmd(t, app, "", "export", writeSnapshot(t, "bad.json", `{"project": {}}`))
	assert.ErrorContains(t, err, "project.title is required")

	_, err = executeCmd(t, app, "", "export")
	assert.Error(t, err)

	assert.Empty(t, listDir(t, out))
}

func TestInspectCmd(t *testing.T) {
	app, _ := testApp(t)

	stdout, err := executeCmd(t, app, "", "inspect", writeSnapshot(t, "a.json", snapshotJSON))
	require.NoError(t, err)

	for _, s := range []string{"Refonte du portail", "PRJ-001", "⚡ Orageux", "↘ En dégradation", "Fournisseur en retard", "└─ API", "Retard fournisseur", "Relancer"} {
		assert.Contains(t, stdout, s)
	}
}

func TestMarkupCmd(t *testing.T) {
	app, _ := testApp(t)

	t.Run("block dump from stdin", func(t *testing.T) {
		stdout, err := executeCmd(t, app, "## Titre\n- un\n1. deux", "markup", "-")
		require.NoError(t, err)
		assert.Contains(t, stdout, "heading(2)")
		assert.Contains(t, stdout, "bullet")
		assert.Contains(t, stdout, "ordered(1)")
	})

	t.Run("preview from file", func(t *testing.T) {
		path := writeSnapshot(t, "text.md", "Texte **gras**\n2. point")
		stdout, err := executeCmd(t, app, "", "markup", path, "--preview")
		require.NoError(t, err)
		assert.Equal(t, "Texte gras\n  1. point\n", stdout)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := executeCmd(t, app, "", "markup", filepath.Join(t.TempDir(), "absent.md"))
		assert.ErrorContains(t, err, "reading markup")
	})
}

func TestValidateCmd(t *testing.T) {
	app, _ := testApp(t)
	good := writeSnapshot(t, "good.json", snapshotJSON)
	bad := writeSnapshot(t, "bad.yaml", "project:\n  title: X\ntasks:\n  - {id: a, title: A, status: todo, parentTaskId: b}\n")
	broken := writeSnapshot(t, "broken.json", "{")

	stdout, err := executeCmd(t, app, "", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, stdout, "✔ "+good+"  1 project(s) valid")

	stdout, err = executeCmd(t, app, "", "validate", good, bad, broken)
	assert.EqualError(t, err, "2 of 3 file(s) failed validation")
	assert.Contains(t, stdout, "✖ "+bad+"  1 error(s)")
	assert.Contains(t, stdout, `tasks[0].parentTaskId: id "b" not found in tasks`)
	assert.Contains(t, stdout, "parsing import file")
}
