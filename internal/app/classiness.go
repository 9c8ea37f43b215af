package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"l10n-verify/internal/core"
	"l10n-verify/internal/types"
)

// analyzeClassiness runs the analyzer against the configured symbol sources
// and returns results in presentation order. The bool is false when no
// symbol source is configured and the analysis was skipped.
func (s Service) analyzeClassiness(ctx context.Context, sources SymbolSources, classes []types.TranslationClass) (types.ClassinessResult, bool, error) {
	empty := types.ClassinessResult{
		MissingClasses: []types.MissingClass{},
		MissingKeys:    []types.MissingKey{},
	}
	resolver, err := s.buildResolver(ctx, sources)
	if err != nil {
		return empty, false, err
	}
	if resolver == nil {
		log.Ctx(ctx).Warn().Msg("no symbol catalog or source root configured, skipping classiness analysis")
		return empty, false, nil
	}
	result, err := core.NewClassinessAnalyzer(resolver).Analyze(ctx, classes)
	if err != nil {
		return empty, false, err
	}
	result.MissingClasses = core.SortMissingClasses(result.MissingClasses)
	result.MissingKeys = core.SortMissingKeys(result.MissingKeys)
	return result, true, nil
}
