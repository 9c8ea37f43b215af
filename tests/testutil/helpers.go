// Package testutil provides shared test helpers used across integration
// and e2e test packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the absolute path to the repository root, two levels
// above the working directory of a tests/<suite> package.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// SampleProject describes the fixtures/sample-project layout.
type SampleProject struct {
	Root       string
	Messages   string
	Catalog    string
	SourceRoot string
}

func LoadSampleProject(t *testing.T) SampleProject {
	t.Helper()
	root := filepath.Join(RepoRoot(t), "fixtures", "sample-project")
	project := SampleProject{
		Root:       root,
		Messages:   filepath.Join(root, "src", "main", "resources", "messages.properties"),
		Catalog:    filepath.Join(root, "symbols.yaml"),
		SourceRoot: filepath.Join(root, "testdata", "source"),
	}
	require.FileExists(t, project.Messages)
	return project
}

// CopySampleProject copies the sample project into a temporary directory
// so a test can add or modify messages files.
func CopySampleProject(t *testing.T) SampleProject {
	t.Helper()
	source := LoadSampleProject(t)
	target := t.TempDir()
	err := filepath.WalkDir(source.Root, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(source.Root, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(target, rel)
		if entry.IsDir() {
			return os.MkdirAll(dest, 0755)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(dest, data, 0644)
	})
	require.NoError(t, err)
	return SampleProject{
		Root:       target,
		Messages:   filepath.Join(target, "src", "main", "resources", "messages.properties"),
		Catalog:    filepath.Join(target, "symbols.yaml"),
		SourceRoot: filepath.Join(target, "testdata", "source"),
	}
}
