package ports

// SymbolCatalogPort is a SymbolResolverPort backed by symbols.yaml files.
//
// The catalog supports layering: each call to LoadCatalog adds a new
// layer. When several layers declare the same class, its member sets are
// merged, so a project can split its catalog per module.
type SymbolCatalogPort interface {
	SymbolResolverPort

	// LoadCatalog reads a symbols.yaml file and merges its classes into
	// the catalog.
	LoadCatalog(path string) error

	// ClassCount returns the number of distinct classes across all layers.
	ClassCount() int
}
