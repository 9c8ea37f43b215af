package core

import "l10n-verify/internal/types"

// DiffKeys compares a candidate key set against the authoritative one.
// missing holds authoritative keys absent from the candidate, extra holds
// candidate keys absent from the authoritative set.
func DiffKeys(authoritative types.KeySet, candidate types.KeySet) (missing types.KeySet, extra types.KeySet) {
	missing = types.NewKeySet()
	for key := range authoritative {
		if !candidate.Has(key) {
			missing.Add(key)
		}
	}
	extra = types.NewKeySet()
	for key := range candidate {
		if !authoritative.Has(key) {
			extra.Add(key)
		}
	}
	return missing, extra
}
