package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type sampleProject struct {
	Root      string
	Resources string
	Catalog   string
	Source    string
}

func loadSampleProject(t *testing.T) sampleProject {
	t.Helper()
	root, err := filepath.Abs(filepath.Join("..", "..", "fixtures", "sample-project"))
	require.NoError(t, err)
	return sampleProject{
		Root:      root,
		Resources: filepath.Join(root, "src", "main", "resources"),
		Catalog:   filepath.Join(root, "symbols.yaml"),
		Source:    filepath.Join(root, "testdata", "source"),
	}
}

func (p sampleProject) messages(name string) string {
	return filepath.Join(p.Resources, name)
}

func (p sampleProject) symbols() SymbolSources {
	return SymbolSources{Catalogs: []string{p.Catalog}, SourceRoot: p.Source}
}
