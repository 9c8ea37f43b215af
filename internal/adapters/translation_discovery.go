package adapters

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/bmatcuk/doublestar/v4"

	"l10n-verify/internal/ports"
	"l10n-verify/internal/shared"
)

type TranslationDiscoveryAdapter struct{}

func NewTranslationDiscoveryAdapter() TranslationDiscoveryAdapter {
	return TranslationDiscoveryAdapter{}
}

func (a TranslationDiscoveryAdapter) FindTranslations(baseDir string, pattern string, authoritative string) ([]string, error) {
	if strings.TrimSpace(baseDir) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("base directory is empty")
	}
	pattern = filepath.ToSlash(strings.TrimSpace(pattern))
	if !doublestar.ValidatePattern(pattern) {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid translations pattern: " + pattern)
	}
	info, err := os.Stat(baseDir)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("base directory not found: " + baseDir).
			WithCause(err)
	}
	if !info.IsDir() {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("base directory is not a directory: " + baseDir)
	}

	matches, err := doublestar.Glob(os.DirFS(baseDir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan for translations").
			WithCause(err)
	}

	var paths []string
	for _, match := range matches {
		path := filepath.Join(baseDir, filepath.FromSlash(match))
		if shared.SamePath(path, authoritative) {
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}

var _ ports.TranslationDiscoveryPort = TranslationDiscoveryAdapter{}
