package policies

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"l10n-verify/internal/types"
)

// IssuePolicy decides how verification issues are reported.
type IssuePolicy struct {
	FailBuild bool
}

func (p IssuePolicy) Severity() types.Severity {
	if p.FailBuild {
		return types.SeverityError
	}
	return types.SeverityWarn
}

// Evaluate returns a FailedPrecondition error when the policy fails the
// build and at least one issue was found.
func (p IssuePolicy) Evaluate(issues []types.VerificationIssue) error {
	if !p.FailBuild || len(issues) == 0 {
		return nil
	}
	messages := make([]string, 0, len(issues))
	for _, issue := range issues {
		messages = append(messages, issue.Message)
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("verification failed: %s", strings.Join(messages, "; ")))
}

// NewIssue builds the issue for a finding count; zero counts yield no issue.
func NewIssue(kind types.IssueKind, filename string, count int) (types.VerificationIssue, bool) {
	if count <= 0 {
		return types.VerificationIssue{}, false
	}
	var message string
	switch kind {
	case types.IssueKindDuplicateKeys:
		message = fmt.Sprintf("File %s contains %d duplicate keys.", filename, count)
	case types.IssueKindMissingClasses:
		message = fmt.Sprintf("File %s contains %d references to non-existent translation key classes.", filename, count)
	case types.IssueKindMissingKeys:
		message = fmt.Sprintf("File %s contains %d references to non-existent translation class keys.", filename, count)
	default:
		message = fmt.Sprintf("File %s contains %d %s issues.", filename, count, kind)
	}
	return types.VerificationIssue{Kind: kind, Count: count, Message: message}, true
}
