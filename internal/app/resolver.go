package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"l10n-verify/internal/adapters"
	"l10n-verify/internal/ports"
	"l10n-verify/internal/shared"
)

// buildResolver chains the configured catalogs and source root. It returns
// nil when no symbol source is configured.
func (s Service) buildResolver(ctx context.Context, sources SymbolSources) (ports.SymbolResolverPort, error) {
	var resolvers []ports.SymbolResolverPort

	catalogs := shared.TrimNonEmpty(sources.Catalogs)
	if len(catalogs) > 0 {
		if s.NewCatalog == nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("symbol catalog support is not configured")
		}
		catalog := s.NewCatalog()
		for _, path := range catalogs {
			if err := catalog.LoadCatalog(path); err != nil {
				return nil, err
			}
		}
		log.Ctx(ctx).Debug().
			Int("layers", len(catalogs)).
			Int("classes", catalog.ClassCount()).
			Msg("symbol catalogs loaded")
		resolvers = append(resolvers, catalog)
	}

	if root := strings.TrimSpace(sources.SourceRoot); root != "" {
		if s.NewSource == nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("source resolver support is not configured")
		}
		resolvers = append(resolvers, s.NewSource(root))
	}

	switch len(resolvers) {
	case 0:
		return nil, nil
	case 1:
		return resolvers[0], nil
	default:
		return adapters.NewChainResolverAdapter(resolvers...), nil
	}
}
