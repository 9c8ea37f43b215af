package app

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"l10n-verify/internal/adapters"
	"l10n-verify/internal/types"
)

type recordingReportWriter struct {
	report types.Report
	format types.ReportFormat
	path   string
	calls  int
}

func (w *recordingReportWriter) WriteReport(report types.Report, format types.ReportFormat, path string) error {
	w.report = report
	w.format = format
	w.path = path
	w.calls++
	return nil
}

func newReportService(writer *recordingReportWriter) Service {
	service := NewService()
	service.ReportWriter = writer
	service.Clock = func() time.Time {
		return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	}
	return service
}

func TestReportApp(t *testing.T) {
	project := loadSampleProject(t)
	writer := &recordingReportWriter{}

	result, err := newReportService(writer).Report(t.Context(), ReportRequest{
		BaseDir: project.Root,
		Symbols: project.symbols(),
		Output:  "report.txt",
	})
	require.NoError(t, err)
	require.Equal(t, 1, writer.calls)
	assert.Equal(t, types.ReportFormatText, writer.format)
	assert.Equal(t, "report.txt", writer.path)

	want := types.Report{
		Title:       DefaultReportTitle,
		GeneratedAt: "2026-01-02T03:04:05Z",
		Authoritative: types.AuthoritativeSummary{
			Filename:      "messages.properties",
			KeyCount:      6,
			DuplicateKeys: []string{"app.ui.Labels.SUBTITLE"},
		},
		MissingClasses: []types.MissingClass{{ClassName: "app.ui.Missing"}},
		MissingKeys:    []types.MissingKey{{ClassName: "app.ui.Labels", KeyName: "UNKNOWN"}},
		Translations: []types.TranslationSummary{
			{
				Filename: "messages_es.properties",
				Locale:   &types.LocaleSummary{Tag: "es", Language: "Spanish"},
				KeyCount: 4,
				MissingKeys: []string{
					"app.ui.Labels.Errors.NOT_FOUND",
					"app.ui.Labels.UNKNOWN",
					"app.ui.Missing.GONE",
				},
				ExtraKeys:         []string{"app.ui.Old.KEY"},
				DuplicateKeys:     []string{},
				CompletionPercent: 50,
			},
			{
				Filename: "messages_es_MX.properties",
				Locale:   &types.LocaleSummary{Tag: "es_MX", Language: "Spanish", Country: "Mexico"},
				KeyCount: 1,
				MissingKeys: []string{
					"app.ui.Labels.Errors.NOT_FOUND",
					"app.ui.Labels.SUBTITLE",
					"app.ui.Labels.UNKNOWN",
					"app.ui.Missing.GONE",
					"greeting",
				},
				ExtraKeys:         []string{},
				DuplicateKeys:     []string{"app.ui.Labels.TITLE"},
				CompletionPercent: 100.0 / 6,
			},
		},
	}
	if diff := cmp.Diff(want, result.Report, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("unexpected report (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, writer.report, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("unexpected written report (-want +got):\n%s", diff)
	}
}

func TestReportAppRendersText(t *testing.T) {
	project := loadSampleProject(t)
	var out bytes.Buffer
	service := NewService()
	service.ReportWriter = adapters.ReportWriterAdapter{Stdout: &out}

	_, err := service.Report(t.Context(), ReportRequest{
		BaseDir: project.Root,
		Symbols: project.symbols(),
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Translation Key Verification\n")
	assert.Contains(t, out.String(), "  - app.ui.Labels UNKNOWN\n")
	assert.Contains(t, out.String(), "Translation Completion Percentage:  16.67%\n")
}

func TestReportAppNoTranslations(t *testing.T) {
	project := loadSampleProject(t)
	writer := &recordingReportWriter{}

	result, err := newReportService(writer).Report(t.Context(), ReportRequest{
		BaseDir: project.Root,
		Pattern: "src/main/resources/messages_fr*.properties",
	})
	require.NoError(t, err)
	assert.Empty(t, result.Report.Translations)
	assert.NotNil(t, result.Report.Translations)
}

func TestReportAppMissingBaseDir(t *testing.T) {
	_, err := newReportService(&recordingReportWriter{}).Report(t.Context(), ReportRequest{
		BaseDir:      filepath.Join(t.TempDir(), "missing"),
		MessagesPath: filepath.Join(loadSampleProject(t).Resources, "messages.properties"),
	})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestCompletionPercent(t *testing.T) {
	translation := types.TranslatedFile{
		TranslationFile: types.TranslationFile{Keys: types.NewKeySet("a", "b", "x")},
		ExtraKeys:       types.NewKeySet("x"),
	}
	assert.InDelta(t, 50.0, completionPercent(translation, 4), 1e-9)
	assert.Zero(t, completionPercent(translation, 0))
}

func TestReportAppBlankPathUsesDefault(t *testing.T) {
	baseDir := t.TempDir()

	_, err := newReportService(&recordingReportWriter{}).Report(t.Context(), ReportRequest{BaseDir: baseDir})
	require.Error(t, err)
	var ioErr *types.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, filepath.Join(baseDir, DefaultMessagesPath), ioErr.Path)
}
