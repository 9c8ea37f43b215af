package core

import (
	"context"
	"path/filepath"
	"runtime"
	"sort"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"l10n-verify/internal/ports"
	"l10n-verify/internal/types"
)

// MessagesLoader builds translation files from a KeyFilePort. Each file is
// parsed independently, so translations are loaded concurrently.
type MessagesLoader struct {
	KeyFile ports.KeyFilePort
	Workers int
}

func NewMessagesLoader(keyFile ports.KeyFilePort) MessagesLoader {
	return MessagesLoader{
		KeyFile: keyFile,
		Workers: runtime.NumCPU(),
	}
}

func (l MessagesLoader) LoadFile(path string) (types.TranslationFile, error) {
	if l.KeyFile == nil {
		return types.TranslationFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("messages loader requires a key file port")
	}
	keys, duplicates, err := l.KeyFile.Parse(path)
	if err != nil {
		return types.TranslationFile{}, err
	}
	file := types.TranslationFile{
		Path:          path,
		Keys:          keys,
		DuplicateKeys: duplicates,
	}
	if locale, ok := ParseLocale(path); ok {
		file.Locale = &locale
	}
	return file, nil
}

// LoadAuthoritative expects callers to have resolved the messages path.
func (l MessagesLoader) LoadAuthoritative(ctx context.Context, path string) (types.AuthoritativeFile, error) {
	assert.NotEmpty(ctx, path, "authoritative messages path must be set")
	file, err := l.LoadFile(path)
	if err != nil {
		return types.AuthoritativeFile{}, err
	}
	classes := BuildTranslationClasses(file.Keys)
	log.Ctx(ctx).Debug().
		Str("path", path).
		Int("keys", file.Keys.Len()).
		Int("duplicates", file.DuplicateKeys.Len()).
		Int("classes", len(classes)).
		Msg("authoritative messages loaded")
	return types.AuthoritativeFile{
		TranslationFile: file,
		Classes:         classes,
	}, nil
}

// LoadTranslations parses every path and diffs it against the authoritative
// file. The first failure cancels the remaining parses and no partial
// result is returned. Translations are sorted by file name.
func (l MessagesLoader) LoadTranslations(ctx context.Context, authoritative types.AuthoritativeFile, paths []string) ([]types.TranslatedFile, error) {
	translated := make([]types.TranslatedFile, len(paths))
	eg, ctx := errgroup.WithContext(ctx)
	if l.Workers > 0 {
		eg.SetLimit(l.Workers)
	}
	for i, path := range paths {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			file, err := l.LoadFile(path)
			if err != nil {
				return err
			}
			missing, extra := DiffKeys(authoritative.Keys, file.Keys)
			translated[i] = types.TranslatedFile{
				TranslationFile: file,
				MissingKeys:     missing,
				ExtraKeys:       extra,
			}
			log.Ctx(ctx).Debug().
				Str("path", path).
				Int("missing", missing.Len()).
				Int("extra", extra.Len()).
				Msg("translation compared")
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	sort.SliceStable(translated, func(i, j int) bool {
		left, right := filepath.Base(translated[i].Path), filepath.Base(translated[j].Path)
		if left != right {
			return left < right
		}
		return translated[i].Path < translated[j].Path
	})
	return translated, nil
}
