package app

import "l10n-verify/internal/types"

// SymbolSources selects the resolvers used for classiness analysis.
// Catalogs are consulted before the source root.
type SymbolSources struct {
	Catalogs   []string
	SourceRoot string
}

type VerifyRequest struct {
	MessagesPath string
	Symbols      SymbolSources
	FailBuild    bool
}

type VerifyResult struct {
	Filename       string
	KeyCount       int
	DuplicateKeys  []string
	MissingClasses []types.MissingClass
	MissingKeys    []types.MissingKey
	Issues         []types.VerificationIssue
	Classiness     bool
}

type ReportRequest struct {
	MessagesPath string
	BaseDir      string
	Pattern      string
	Symbols      SymbolSources
	Format       types.ReportFormat
	Output       string
	Title        string
	// Workers bounds concurrent translation parsing; 0 uses the CPU count.
	Workers      int
}

type ReportResult struct {
	Report types.Report
	Output string
}

type InspectRequest struct {
	Path string
}

type InspectResult struct {
	Filename      string
	Locale        *types.LocaleSummary
	KeyCount      int
	DuplicateKeys []string
	Classes       []types.TranslationClass
}
