package ports

import "l10n-verify/internal/types"

type ReportWriterPort interface {
	WriteReport(report types.Report, format types.ReportFormat, path string) error
}
