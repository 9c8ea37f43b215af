package types

// LocaleSummary carries the raw locale tag plus English display names.
type LocaleSummary struct {
	Tag      string `json:"tag" yaml:"tag"`
	Language string `json:"language" yaml:"language"`
	Country  string `json:"country,omitempty" yaml:"country,omitempty"`
}

type AuthoritativeSummary struct {
	Filename      string         `json:"filename" yaml:"filename"`
	Locale        *LocaleSummary `json:"locale,omitempty" yaml:"locale,omitempty"`
	KeyCount      int            `json:"key_count" yaml:"key_count"`
	DuplicateKeys []string       `json:"duplicate_keys" yaml:"duplicate_keys"`
}

type TranslationSummary struct {
	Filename          string         `json:"filename" yaml:"filename"`
	Locale            *LocaleSummary `json:"locale,omitempty" yaml:"locale,omitempty"`
	KeyCount          int            `json:"key_count" yaml:"key_count"`
	MissingKeys       []string       `json:"missing_keys" yaml:"missing_keys"`
	ExtraKeys         []string       `json:"extra_keys" yaml:"extra_keys"`
	DuplicateKeys     []string       `json:"duplicate_keys" yaml:"duplicate_keys"`
	CompletionPercent float64        `json:"completion_percent" yaml:"completion_percent"`
}

// Report is the rendered outcome of a full verification run.
type Report struct {
	Title          string               `json:"title" yaml:"title"`
	GeneratedAt    string               `json:"generated_at" yaml:"generated_at"`
	Authoritative  AuthoritativeSummary `json:"authoritative" yaml:"authoritative"`
	MissingClasses []MissingClass       `json:"missing_classes" yaml:"missing_classes"`
	MissingKeys    []MissingKey         `json:"missing_keys" yaml:"missing_keys"`
	Translations   []TranslationSummary `json:"translations" yaml:"translations"`
}

// VerificationIssue is one finding of the verify goal.
type VerificationIssue struct {
	Kind    IssueKind
	Count   int
	Message string
}
