package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"l10n-verify/internal/core"
)

func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	path := strings.TrimSpace(req.Path)
	if path == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("messages file path is required")
	}
	loader := core.NewMessagesLoader(s.KeyFile)
	file, err := loader.LoadAuthoritative(ctx, path)
	if err != nil {
		return InspectResult{}, err
	}
	return InspectResult{
		Filename:      filepath.Base(file.Path),
		Locale:        describeLocale(file.Locale),
		KeyCount:      file.Keys.Len(),
		DuplicateKeys: file.DuplicateKeys.Sorted(),
		Classes:       file.Classes,
	}, nil
}
