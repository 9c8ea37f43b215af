package ports

// TranslationDiscoveryPort finds translation files of an authoritative
// messages file.
type TranslationDiscoveryPort interface {
	// FindTranslations matches pattern (relative to baseDir, ** allowed)
	// and returns the matches sorted, without the authoritative file.
	FindTranslations(baseDir string, pattern string, authoritative string) ([]string, error)
}
