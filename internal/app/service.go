package app

import (
	"time"

	"l10n-verify/internal/adapters"
	"l10n-verify/internal/ports"
)

type Service struct {
	KeyFile      ports.KeyFilePort
	Discovery    ports.TranslationDiscoveryPort
	ReportWriter ports.ReportWriterPort
	NewCatalog   func() ports.SymbolCatalogPort
	NewSource    func(root string) ports.SymbolResolverPort
	Clock        func() time.Time
}

func NewService() Service {
	return Service{
		KeyFile:      adapters.NewPropertiesFileAdapter(),
		Discovery:    adapters.NewTranslationDiscoveryAdapter(),
		ReportWriter: adapters.NewReportWriterAdapter(),
		NewCatalog: func() ports.SymbolCatalogPort {
			return adapters.NewSymbolCatalogAdapter()
		},
		NewSource: func(root string) ports.SymbolResolverPort {
			return adapters.NewGoSourceResolverAdapter(root)
		},
		Clock: time.Now,
	}
}
