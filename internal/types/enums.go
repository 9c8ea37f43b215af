package types

type ReportFormat string

const (
	ReportFormatText ReportFormat = "text"
	ReportFormatJSON ReportFormat = "json"
	ReportFormatYAML ReportFormat = "yaml"
)

type IssueKind string

const (
	IssueKindDuplicateKeys  IssueKind = "duplicate-keys"
	IssueKindMissingClasses IssueKind = "missing-classes"
	IssueKindMissingKeys    IssueKind = "missing-keys"
)

type Severity string

const (
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)
