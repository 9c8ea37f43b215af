package ports

// SymbolResolverPort answers whether the classes and members named by
// translation keys exist in the host program.
//
// A false answer is a normal negative result. A non-nil error means the
// resolver itself failed and aborts the analysis. Implementations must be
// safe for concurrent read-only queries.
type SymbolResolverPort interface {
	ClassExists(className string) (bool, error)

	// MemberExists is only called after ClassExists returned true for the
	// same class name.
	MemberExists(className string, member string) (bool, error)
}
