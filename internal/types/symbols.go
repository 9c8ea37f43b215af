package types

// SymbolCatalogFile is the top-level structure of a symbols.yaml file. It
// lists the classes of the host program that translation keys may refer
// to, with the member names declared on each.
//
// Several catalogs can be layered; members of a class declared in more than
// one layer are merged.
type SymbolCatalogFile struct {
	// CatalogVersion identifies the file format version.
	CatalogVersion string `yaml:"catalog_version"`

	// Classes maps a fully qualified class name (nested classes use $) to
	// its member names.
	Classes map[string][]string `yaml:"classes"`
}
