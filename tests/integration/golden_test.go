package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"l10n-verify/internal/adapters"
	"l10n-verify/internal/app"
	"l10n-verify/internal/types"
	"l10n-verify/tests/testutil"
)

func newService(out *bytes.Buffer) app.Service {
	service := app.NewService()
	service.ReportWriter = adapters.ReportWriterAdapter{Stdout: out}
	return service
}

// TestGoldenTextReport renders the sample project report and compares it
// against the committed golden file. If the golden file does not exist yet
// it is written so it can be committed.
//
// To update the golden file after an intentional change, delete
// testdata/golden/ and re-run the test.
func TestGoldenTextReport(t *testing.T) {
	root := testutil.RepoRoot(t)
	project := testutil.LoadSampleProject(t)
	goldenPath := filepath.Join(root, "tests", "integration", "testdata", "golden", "report.txt")

	var out bytes.Buffer
	_, err := newService(&out).Report(t.Context(), app.ReportRequest{
		BaseDir: project.Root,
		Symbols: app.SymbolSources{
			Catalogs:   []string{project.Catalog},
			SourceRoot: project.SourceRoot,
		},
		Format: types.ReportFormatText,
	})
	require.NoError(t, err)

	if _, statErr := os.Stat(goldenPath); os.IsNotExist(statErr) {
		require.NoError(t, os.MkdirAll(filepath.Dir(goldenPath), 0o755))
		require.NoError(t, os.WriteFile(goldenPath, out.Bytes(), 0o644))
		t.Logf("golden file written: %s (commit it)", goldenPath)
		return
	}
	expected, err := os.ReadFile(goldenPath)
	require.NoError(t, err)
	assert.Equal(t, string(expected), out.String(),
		"golden mismatch for report.txt -- delete testdata/golden/ and re-run to regenerate")
}

// TestReportTracksTranslationChanges adds a translation to a copy of the
// sample project and checks that discovery and diffing pick it up.
func TestReportTracksTranslationChanges(t *testing.T) {
	project := testutil.CopySampleProject(t)
	french := filepath.Join(filepath.Dir(project.Messages), "messages_fr.properties")
	content := "greeting=Bonjour\napp.ui.Labels.TITLE=Titre\napp.ui.Labels.SUBTITLE=Sous-titre\n" +
		"app.ui.Labels.UNKNOWN=Inconnu\napp.ui.Labels.Errors.NOT_FOUND=Introuvable\napp.ui.Missing.GONE=Parti\n"
	require.NoError(t, os.WriteFile(french, []byte(content), 0644))

	var out bytes.Buffer
	result, err := newService(&out).Report(t.Context(), app.ReportRequest{
		BaseDir: project.Root,
		Format:  types.ReportFormatYAML,
		Output:  filepath.Join(t.TempDir(), "report.yaml"),
	})
	require.NoError(t, err)
	assert.Zero(t, out.Len(), "file output must not write to stdout")
	require.FileExists(t, result.Output)

	names := make([]string, 0, len(result.Report.Translations))
	for _, translation := range result.Report.Translations {
		names = append(names, translation.Filename)
	}
	assert.Equal(t, []string{"messages_es.properties", "messages_es_MX.properties", "messages_fr.properties"}, names)

	frenchSummary := result.Report.Translations[2]
	assert.Equal(t, "French", frenchSummary.Locale.Language)
	assert.Empty(t, frenchSummary.MissingKeys)
	assert.Empty(t, frenchSummary.ExtraKeys)
	assert.InDelta(t, 100.0, frenchSummary.CompletionPercent, 1e-9)
}

// TestVerifyFlow runs verification against the sample project with both
// symbol sources layered.
func TestVerifyFlow(t *testing.T) {
	project := testutil.LoadSampleProject(t)
	result, err := app.NewService().Verify(t.Context(), app.VerifyRequest{
		MessagesPath: project.Messages,
		Symbols: app.SymbolSources{
			Catalogs:   []string{project.Catalog},
			SourceRoot: project.SourceRoot,
		},
	})
	require.NoError(t, err)
	assert.Len(t, result.Issues, 3)
	assert.True(t, result.Classiness)
}
