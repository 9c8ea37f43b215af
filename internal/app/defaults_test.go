package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"l10n-verify/internal/types"
)

func TestApplyReportDefaults(t *testing.T) {
	tests := []struct {
		name     string
		req      ReportRequest
		expected ReportRequest
	}{
		{
			name: "empty request gets all defaults",
			req:  ReportRequest{},
			expected: ReportRequest{
				BaseDir:      ".",
				MessagesPath: filepath.Join(".", DefaultMessagesPath),
				Pattern:      DefaultTranslationsPattern,
				Format:       types.ReportFormatText,
				Title:        DefaultReportTitle,
			},
		},
		{
			name: "relative messages path joins base dir",
			req:  ReportRequest{BaseDir: "/project", MessagesPath: "i18n/messages.properties"},
			expected: ReportRequest{
				BaseDir:      "/project",
				MessagesPath: filepath.Join("/project", "i18n", "messages.properties"),
				Pattern:      DefaultTranslationsPattern,
				Format:       types.ReportFormatText,
				Title:        DefaultReportTitle,
			},
		},
		{
			name: "explicit values are kept",
			req: ReportRequest{
				BaseDir:      "/project",
				MessagesPath: "/abs/messages.properties",
				Pattern:      "**/*.properties",
				Format:       types.ReportFormatJSON,
				Title:        "Custom",
			},
			expected: ReportRequest{
				BaseDir:      "/project",
				MessagesPath: "/abs/messages.properties",
				Pattern:      "**/*.properties",
				Format:       types.ReportFormatJSON,
				Title:        "Custom",
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := applyReportDefaults(tc.req)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestApplyVerifyDefaults(t *testing.T) {
	assert.Equal(t, DefaultMessagesPath, applyVerifyDefaults(VerifyRequest{}).MessagesPath)
	assert.Equal(t, "x.properties", applyVerifyDefaults(VerifyRequest{MessagesPath: "x.properties"}).MessagesPath)
}
