package adapters

import (
	"os"
	"strings"
	"sync"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"l10n-verify/internal/ports"
	"l10n-verify/internal/types"
)

// SymbolCatalogAdapter implements SymbolCatalogPort using layered
// symbols.yaml files. Each call to LoadCatalog merges the members of its
// classes into the catalog.
type SymbolCatalogAdapter struct {
	mu sync.RWMutex

	// classes holds the merged member sets after all layers.
	classes map[string]types.KeySet

	// layers tracks load order for debugging / provenance.
	layers []string
}

func NewSymbolCatalogAdapter() *SymbolCatalogAdapter {
	return &SymbolCatalogAdapter{
		classes: make(map[string]types.KeySet),
	}
}

func (a *SymbolCatalogAdapter) LoadCatalog(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read symbol catalog: " + path).
			WithCause(err)
	}

	var catalog types.SymbolCatalogFile
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse symbol catalog: " + path).
			WithCause(err)
	}
	if catalog.CatalogVersion == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("symbol catalog missing catalog_version: " + path)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	for name, members := range catalog.Classes {
		className := strings.TrimSpace(name)
		if className == "" {
			continue
		}
		existing, ok := a.classes[className]
		if !ok {
			existing = types.NewKeySet()
			a.classes[className] = existing
		} else {
			log.Debug().
				Str("class", className).
				Str("layer", path).
				Msg("symbol catalog class extended by later layer")
		}
		for _, member := range members {
			existing.Add(strings.TrimSpace(member))
		}
	}
	a.layers = append(a.layers, path)
	log.Debug().
		Str("path", path).
		Int("classes", len(catalog.Classes)).
		Int("total", len(a.classes)).
		Msg("symbol catalog layer loaded")
	return nil
}

func (a *SymbolCatalogAdapter) ClassExists(className string) (bool, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.classes[className]
	return ok, nil
}

func (a *SymbolCatalogAdapter) MemberExists(className string, member string) (bool, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.classes[className].Has(member), nil
}

func (a *SymbolCatalogAdapter) ClassCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.classes)
}

var _ ports.SymbolCatalogPort = (*SymbolCatalogAdapter)(nil)
