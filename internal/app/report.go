package app

import (
	"context"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"l10n-verify/internal/core"
	"l10n-verify/internal/types"
)

// Report compares every discovered translation against the authoritative
// messages file, runs classiness analysis and writes the rendered report.
func (s Service) Report(ctx context.Context, req ReportRequest) (ReportResult, error) {
	req = applyReportDefaults(req)

	loader := core.NewMessagesLoader(s.KeyFile)
	if req.Workers > 0 {
		loader.Workers = req.Workers
	}
	authoritative, err := loader.LoadAuthoritative(ctx, req.MessagesPath)
	if err != nil {
		return ReportResult{}, err
	}
	paths, err := s.Discovery.FindTranslations(req.BaseDir, req.Pattern, req.MessagesPath)
	if err != nil {
		return ReportResult{}, err
	}
	translations, err := loader.LoadTranslations(ctx, authoritative, paths)
	if err != nil {
		return ReportResult{}, err
	}
	classiness, _, err := s.analyzeClassiness(ctx, req.Symbols, authoritative.Classes)
	if err != nil {
		return ReportResult{}, err
	}

	report := buildReport(req.Title, authoritative, translations, classiness)
	if s.Clock != nil {
		report.GeneratedAt = s.Clock().UTC().Format(time.RFC3339)
	}
	if err := s.ReportWriter.WriteReport(report, req.Format, req.Output); err != nil {
		return ReportResult{}, err
	}
	log.Ctx(ctx).Debug().
		Int("translations", len(report.Translations)).
		Str("format", string(req.Format)).
		Msg("report written")
	return ReportResult{Report: report, Output: req.Output}, nil
}

func buildReport(title string, authoritative types.AuthoritativeFile, translations []types.TranslatedFile, classiness types.ClassinessResult) types.Report {
	report := types.Report{
		Title: title,
		Authoritative: types.AuthoritativeSummary{
			Filename:      filepath.Base(authoritative.Path),
			Locale:        describeLocale(authoritative.Locale),
			KeyCount:      authoritative.Keys.Len(),
			DuplicateKeys: authoritative.DuplicateKeys.Sorted(),
		},
		MissingClasses: classiness.MissingClasses,
		MissingKeys:    classiness.MissingKeys,
		Translations:   make([]types.TranslationSummary, 0, len(translations)),
	}
	for _, translation := range translations {
		report.Translations = append(report.Translations, types.TranslationSummary{
			Filename:          filepath.Base(translation.Path),
			Locale:            describeLocale(translation.Locale),
			KeyCount:          translation.Keys.Len(),
			MissingKeys:       translation.MissingKeys.Sorted(),
			ExtraKeys:         translation.ExtraKeys.Sorted(),
			DuplicateKeys:     translation.DuplicateKeys.Sorted(),
			CompletionPercent: completionPercent(translation, authoritative.Keys.Len()),
		})
	}
	return report
}

// completionPercent counts the translated keys that exist in the
// authoritative file against the authoritative key count.
func completionPercent(translation types.TranslatedFile, authoritativeKeys int) float64 {
	if authoritativeKeys == 0 {
		return 0
	}
	translated := translation.Keys.Len() - translation.ExtraKeys.Len()
	return float64(translated) / float64(authoritativeKeys) * 100
}

func describeLocale(locale *types.Locale) *types.LocaleSummary {
	if locale == nil {
		return nil
	}
	summary := core.DescribeLocale(*locale)
	return &summary
}
