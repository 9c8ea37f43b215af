package app

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"l10n-verify/internal/core"
	"l10n-verify/internal/policies"
	"l10n-verify/internal/types"
)

// Verify checks the authoritative messages file for duplicate keys and for
// keys that do not name existing symbols. Issues are logged; with FailBuild
// any issue fails the call.
func (s Service) Verify(ctx context.Context, req VerifyRequest) (VerifyResult, error) {
	req = applyVerifyDefaults(req)

	loader := core.NewMessagesLoader(s.KeyFile)
	authoritative, err := loader.LoadAuthoritative(ctx, req.MessagesPath)
	if err != nil {
		return VerifyResult{}, err
	}
	classiness, checked, err := s.analyzeClassiness(ctx, req.Symbols, authoritative.Classes)
	if err != nil {
		return VerifyResult{}, err
	}

	filename := filepath.Base(authoritative.Path)
	result := VerifyResult{
		Filename:       filename,
		KeyCount:       authoritative.Keys.Len(),
		DuplicateKeys:  authoritative.DuplicateKeys.Sorted(),
		MissingClasses: classiness.MissingClasses,
		MissingKeys:    classiness.MissingKeys,
		Classiness:     checked,
	}
	findings := []struct {
		kind  types.IssueKind
		count int
	}{
		{types.IssueKindDuplicateKeys, len(result.DuplicateKeys)},
		{types.IssueKindMissingClasses, len(result.MissingClasses)},
		{types.IssueKindMissingKeys, len(result.MissingKeys)},
	}
	for _, finding := range findings {
		if issue, ok := policies.NewIssue(finding.kind, filename, finding.count); ok {
			result.Issues = append(result.Issues, issue)
		}
	}

	policy := policies.IssuePolicy{FailBuild: req.FailBuild}
	level := zerolog.WarnLevel
	if policy.Severity() == types.SeverityError {
		level = zerolog.ErrorLevel
	}
	for _, issue := range result.Issues {
		log.Ctx(ctx).WithLevel(level).
			Str("kind", string(issue.Kind)).
			Int("count", issue.Count).
			Msg(issue.Message)
	}
	if err := policy.Evaluate(result.Issues); err != nil {
		return result, err
	}
	log.Ctx(ctx).Debug().
		Str("file", filename).
		Int("issues", len(result.Issues)).
		Msg("messages verified")
	return result, nil
}
