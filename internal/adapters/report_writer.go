package adapters

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"l10n-verify/internal/ports"
	"l10n-verify/internal/types"
)

// ReportWriterAdapter renders reports to a file, or to Stdout when the
// path is empty or "-".
type ReportWriterAdapter struct {
	Stdout io.Writer
}

func NewReportWriterAdapter() ReportWriterAdapter {
	return ReportWriterAdapter{Stdout: os.Stdout}
}

func (a ReportWriterAdapter) WriteReport(report types.Report, format types.ReportFormat, path string) error {
	data, err := RenderReport(report, format)
	if err != nil {
		return err
	}
	if path == "" || path == "-" {
		out := a.Stdout
		if out == nil {
			out = os.Stdout
		}
		if _, err := out.Write(data); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write report").
				WithCause(err)
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create report directory").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write report: " + path).
			WithCause(err)
	}
	return nil
}

func RenderReport(report types.Report, format types.ReportFormat) ([]byte, error) {
	switch format {
	case types.ReportFormatText, "":
		return []byte(renderTextReport(report)), nil
	case types.ReportFormatJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to encode json report").
				WithCause(err)
		}
		return append(data, '\n'), nil
	case types.ReportFormatYAML:
		data, err := yaml.Marshal(report)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to encode yaml report").
				WithCause(err)
		}
		return data, nil
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported report format: %s", format))
	}
}

func renderTextReport(report types.Report) string {
	var b strings.Builder
	heading(&b, report.Title, "=")
	b.WriteString("This report describes translation keys listed in your messages properties file that are in an invalid state.\n")

	heading(&b, "Duplicate Translation Keys", "-")
	listSection(&b, report.Authoritative.DuplicateKeys,
		"No duplicate translation keys were found.",
		"The following duplicate translation keys were found in your messages properties file.")

	heading(&b, "Missing Translation Classes", "-")
	classNames := make([]string, 0, len(report.MissingClasses))
	for _, class := range report.MissingClasses {
		classNames = append(classNames, class.ClassName)
	}
	listSection(&b, classNames,
		"No missing translation key classes were found.",
		"The following is a list of classes that are listed in your messages properties file, but are not found to actually exist.")

	heading(&b, "Missing Translation Keys", "-")
	keyNames := make([]string, 0, len(report.MissingKeys))
	for _, key := range report.MissingKeys {
		keyNames = append(keyNames, key.ClassName+" "+key.KeyName)
	}
	listSection(&b, keyNames,
		"No missing translation keys were found.",
		"The following is a list of translation keys that are found in the messages properties file, but were not found to actually exist.")

	heading(&b, "Authoritative Messages Statistics", "-")
	row(&b, "Filename", report.Authoritative.Filename)
	localeRows(&b, report.Authoritative.Locale)
	row(&b, "Translation Key Count", fmt.Sprintf("%d", report.Authoritative.KeyCount))

	heading(&b, "Translated Messages Statistics", "-")
	if len(report.Translations) == 0 {
		b.WriteString("No translations of the configured authoritative messages file were found.\n")
		return b.String()
	}
	b.WriteString("'Extra translation keys' are keys that are discovered in the translated messages properties, but do not exist in the authoritative message properties.\n")
	b.WriteString("'Missing translation keys' are keys that are found in the authoritative messages properties, but are not found in the translation.\n")
	for _, translation := range report.Translations {
		heading(&b, translation.Filename, "~")
		localeRows(&b, translation.Locale)
		row(&b, "Translation Key Count", fmt.Sprintf("%d", translation.KeyCount))
		row(&b, "Missing Translation Keys", fmt.Sprintf("%d", len(translation.MissingKeys)))
		row(&b, "Extra Translation Keys", fmt.Sprintf("%d", len(translation.ExtraKeys)))
		row(&b, "Translation Completion Percentage", fmt.Sprintf("%.2f%%", translation.CompletionPercent))
		b.WriteString("\n")
		listSection(&b, translation.DuplicateKeys,
			"No duplicate translation keys were found.",
			"The following duplicate translation keys were found in this messages properties file.")
	}
	return b.String()
}

func heading(b *strings.Builder, title string, underline string) {
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat(underline, len(title)) + "\n")
}

func listSection(b *strings.Builder, items []string, empty string, intro string) {
	if len(items) == 0 {
		b.WriteString(empty + "\n")
		return
	}
	b.WriteString(intro + "\n")
	for _, item := range items {
		b.WriteString("  - " + item + "\n")
	}
}

func localeRows(b *strings.Builder, locale *types.LocaleSummary) {
	if locale == nil {
		return
	}
	row(b, "Supported Language", locale.Language)
	if locale.Country != "" {
		row(b, "Supported Country", locale.Country)
	}
}

func row(b *strings.Builder, label string, value string) {
	fmt.Fprintf(b, "%-35s %s\n", label+":", value)
}

var _ ports.ReportWriterPort = ReportWriterAdapter{}
