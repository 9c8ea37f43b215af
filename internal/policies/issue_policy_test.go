package policies

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"l10n-verify/internal/types"
)

func TestIssuePolicySeverity(t *testing.T) {
	assert.Equal(t, types.SeverityWarn, IssuePolicy{}.Severity())
	assert.Equal(t, types.SeverityError, IssuePolicy{FailBuild: true}.Severity())
}

func TestIssuePolicyEvaluate(t *testing.T) {
	issue, ok := NewIssue(types.IssueKindDuplicateKeys, "messages.properties", 2)
	require.True(t, ok)

	tests := []struct {
		name    string
		policy  IssuePolicy
		issues  []types.VerificationIssue
		wantErr bool
	}{
		{name: "warn with issues", policy: IssuePolicy{}, issues: []types.VerificationIssue{issue}},
		{name: "fail without issues", policy: IssuePolicy{FailBuild: true}},
		{name: "fail with issues", policy: IssuePolicy{FailBuild: true}, issues: []types.VerificationIssue{issue}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Evaluate(tt.issues)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
			assert.Contains(t, err.Error(), "verification failed: File messages.properties contains 2 duplicate keys.")
		})
	}
}

func TestNewIssue(t *testing.T) {
	_, ok := NewIssue(types.IssueKindMissingKeys, "messages.properties", 0)
	assert.False(t, ok)

	got, ok := NewIssue(types.IssueKindMissingClasses, "messages.properties", 3)
	require.True(t, ok)
	want := types.VerificationIssue{
		Kind:    types.IssueKindMissingClasses,
		Count:   3,
		Message: "File messages.properties contains 3 references to non-existent translation key classes.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected issue (-want +got):\n%s", diff)
	}

	got, ok = NewIssue(types.IssueKindMissingKeys, "messages.properties", 1)
	require.True(t, ok)
	assert.Equal(t, "File messages.properties contains 1 references to non-existent translation class keys.", got.Message)
}
