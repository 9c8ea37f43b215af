package core

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"l10n-verify/internal/types"
)

// ParseLocale derives the locale of a messages file from its name, following
// the <basename>[_<language>[_<region>]].<ext> convention. The second return
// value is false when the name carries no locale.
func ParseLocale(path string) (types.Locale, bool) {
	name := filepath.Base(path)
	underscore := strings.IndexByte(name, '_')
	if underscore < 0 {
		return types.Locale{}, false
	}
	span := name[underscore+1:]
	if dot := strings.LastIndexByte(span, '.'); dot >= 0 {
		span = span[:dot]
	}
	locale := types.Locale{Language: span}
	if second := strings.IndexByte(span, '_'); second >= 0 {
		locale.Language = span[:second]
		locale.Region = span[second+1:]
	}
	if locale.Language == "" {
		return types.Locale{}, false
	}
	return locale, true
}

// DescribeLocale returns the locale tag with English display names. Codes
// that are not valid ISO codes are shown as written.
func DescribeLocale(locale types.Locale) types.LocaleSummary {
	summary := types.LocaleSummary{
		Tag:      locale.String(),
		Language: locale.Language,
		Country:  locale.Region,
	}
	if base, err := language.ParseBase(locale.Language); err == nil {
		if name := display.English.Languages().Name(base); name != "" {
			summary.Language = name
		}
	}
	if locale.Region != "" {
		if region, err := language.ParseRegion(locale.Region); err == nil {
			if name := display.English.Regions().Name(region); name != "" {
				summary.Country = name
			}
		}
	}
	return summary
}
