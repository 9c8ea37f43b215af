package ports

import "l10n-verify/internal/types"

// KeyFilePort reads a key=value messages file.
type KeyFilePort interface {
	// Parse returns the canonical key set of the file plus the keys that
	// occur more than once in its raw lines. Open or read failures are
	// returned as *types.IOError; malformed lines are never errors.
	Parse(path string) (keys types.KeySet, duplicates types.KeySet, err error)
}
