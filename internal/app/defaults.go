package app

import (
	"path/filepath"
	"strings"

	"l10n-verify/internal/types"
)

const (
	DefaultMessagesPath        = "src/main/resources/messages.properties"
	DefaultTranslationsPattern = "src/main/resources/messages*.properties"
	DefaultReportTitle         = "Translation Key Verification"
)

func applyReportDefaults(req ReportRequest) ReportRequest {
	if strings.TrimSpace(req.BaseDir) == "" {
		req.BaseDir = "."
	}
	if strings.TrimSpace(req.MessagesPath) == "" {
		req.MessagesPath = DefaultMessagesPath
	}
	if !filepath.IsAbs(req.MessagesPath) {
		req.MessagesPath = filepath.Join(req.BaseDir, req.MessagesPath)
	}
	if strings.TrimSpace(req.Pattern) == "" {
		req.Pattern = DefaultTranslationsPattern
	}
	if req.Format == "" {
		req.Format = types.ReportFormatText
	}
	if strings.TrimSpace(req.Title) == "" {
		req.Title = DefaultReportTitle
	}
	return req
}

func applyVerifyDefaults(req VerifyRequest) VerifyRequest {
	if strings.TrimSpace(req.MessagesPath) == "" {
		req.MessagesPath = DefaultMessagesPath
	}
	return req
}
