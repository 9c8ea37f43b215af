package core

import (
	"context"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"l10n-verify/internal/ports"
	"l10n-verify/internal/types"
)

type ClassinessAnalyzer struct {
	Resolver ports.SymbolResolverPort
}

func NewClassinessAnalyzer(resolver ports.SymbolResolverPort) ClassinessAnalyzer {
	return ClassinessAnalyzer{Resolver: resolver}
}

// Analyze checks every translation class against the resolver. A class the
// resolver cannot find is reported once as a MissingClass and its members
// are not queried. Results follow the order of classes, then members.
func (a ClassinessAnalyzer) Analyze(ctx context.Context, classes []types.TranslationClass) (types.ClassinessResult, error) {
	if a.Resolver == nil {
		return types.ClassinessResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("classiness analysis requires a symbol resolver")
	}

	result := types.ClassinessResult{
		MissingClasses: []types.MissingClass{},
		MissingKeys:    []types.MissingKey{},
	}
	for _, class := range classes {
		exists, err := a.Resolver.ClassExists(class.Name)
		if err != nil {
			return types.ClassinessResult{}, resolutionError(class.Name, "", err)
		}
		if !exists {
			log.Ctx(ctx).Debug().Str("class", class.Name).Msg("translation key class not found")
			result.MissingClasses = append(result.MissingClasses, types.MissingClass{ClassName: class.Name})
			continue
		}
		for _, member := range class.Members {
			found, err := a.Resolver.MemberExists(class.Name, member)
			if err != nil {
				return types.ClassinessResult{}, resolutionError(class.Name, member, err)
			}
			if !found {
				log.Ctx(ctx).Debug().
					Str("class", class.Name).
					Str("key", member).
					Msg("translation key not found on class")
				result.MissingKeys = append(result.MissingKeys, types.MissingKey{ClassName: class.Name, KeyName: member})
			}
		}
	}

	log.Ctx(ctx).Debug().
		Int("classes", len(classes)).
		Int("missing_classes", len(result.MissingClasses)).
		Int("missing_keys", len(result.MissingKeys)).
		Msg("classiness analysis completed")
	return result, nil
}

func resolutionError(className string, member string, cause error) error {
	return &types.ResolutionError{
		ClassName: className,
		Member:    member,
		Err: errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("symbol resolver failed").
			WithCause(cause),
	}
}

// SortMissingClasses orders missing classes by class name.
func SortMissingClasses(classes []types.MissingClass) []types.MissingClass {
	ordered := append([]types.MissingClass(nil), classes...)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].ClassName < ordered[j].ClassName
	})
	return ordered
}

// SortMissingKeys orders missing keys by class name, then key name.
func SortMissingKeys(keys []types.MissingKey) []types.MissingKey {
	ordered := append([]types.MissingKey(nil), keys...)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Less(ordered[j])
	})
	return ordered
}
