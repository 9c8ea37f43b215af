package adapters

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"l10n-verify/internal/ports"
	"l10n-verify/internal/types"
)

// GoSourceResolverAdapter resolves translation classes against Go source
// below Root. A qualified name a.b.Type maps to the package in directory
// Root/a/b and its declared type Type. Members of a type are its struct
// fields, interface methods, methods, and package-level constants and
// variables declared with that type.
//
// Packages are parsed on first use and cached. Nested class names (with $)
// never resolve since Go has no nested types.
type GoSourceResolverAdapter struct {
	Root string

	mu       sync.Mutex
	packages map[string]*goPackageIndex
}

type goPackageIndex struct {
	types   types.KeySet
	members map[string]types.KeySet
}

func NewGoSourceResolverAdapter(root string) *GoSourceResolverAdapter {
	return &GoSourceResolverAdapter{
		Root:     root,
		packages: map[string]*goPackageIndex{},
	}
}

func (a *GoSourceResolverAdapter) ClassExists(className string) (bool, error) {
	index, typeName, err := a.lookup(className)
	if err != nil || index == nil {
		return false, err
	}
	return index.types.Has(typeName), nil
}

func (a *GoSourceResolverAdapter) MemberExists(className string, member string) (bool, error) {
	index, typeName, err := a.lookup(className)
	if err != nil || index == nil {
		return false, err
	}
	return index.members[typeName].Has(member), nil
}

func (a *GoSourceResolverAdapter) lookup(className string) (*goPackageIndex, string, error) {
	if strings.Contains(className, "$") {
		log.Debug().Str("class", className).Msg("nested class names do not resolve in go source")
		return nil, "", nil
	}
	dir := a.Root
	typeName := className
	if lastDot := strings.LastIndexByte(className, '.'); lastDot >= 0 {
		dir = filepath.Join(append([]string{a.Root}, strings.Split(className[:lastDot], ".")...)...)
		typeName = className[lastDot+1:]
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if index, ok := a.packages[dir]; ok {
		return index, typeName, nil
	}
	index, err := indexGoPackage(dir)
	if err != nil {
		return nil, "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to index go package: " + dir).
			WithCause(err)
	}
	a.packages[dir] = index
	return index, typeName, nil
}

func indexGoPackage(dir string) (*goPackageIndex, error) {
	index := &goPackageIndex{
		types:   types.NewKeySet(),
		members: map[string]types.KeySet{},
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return index, nil
		}
		return nil, err
	}
	fset := token.NewFileSet()
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		file, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, err
		}
		index.addFile(file)
	}
	log.Debug().
		Str("dir", dir).
		Int("types", index.types.Len()).
		Msg("go package indexed")
	return index, nil
}

func (i *goPackageIndex) addMember(typeName string, member string) {
	if typeName == "" || member == "" || member == "_" {
		return
	}
	members, ok := i.members[typeName]
	if !ok {
		members = types.NewKeySet()
		i.members[typeName] = members
	}
	members.Add(member)
}

func (i *goPackageIndex) addFile(file *ast.File) {
	for _, decl := range file.Decls {
		switch decl := decl.(type) {
		case *ast.FuncDecl:
			if decl.Recv != nil && len(decl.Recv.List) > 0 {
				i.addMember(baseTypeName(decl.Recv.List[0].Type), decl.Name.Name)
			}
		case *ast.GenDecl:
			i.addGenDecl(decl)
		}
	}
}

func (i *goPackageIndex) addGenDecl(decl *ast.GenDecl) {
	// Constants without type or value repeat the previous spec of the block.
	current := ""
	for _, spec := range decl.Specs {
		switch spec := spec.(type) {
		case *ast.TypeSpec:
			i.types.Add(spec.Name.Name)
			i.addTypeMembers(spec.Name.Name, spec.Type)
		case *ast.ValueSpec:
			switch {
			case spec.Type != nil:
				current = baseTypeName(spec.Type)
			case decl.Tok == token.CONST && len(spec.Values) == 0:
			case len(spec.Values) == 1:
				current = compositeTypeName(spec.Values[0])
			default:
				current = ""
			}
			for _, name := range spec.Names {
				i.addMember(current, name.Name)
			}
		}
	}
}

func (i *goPackageIndex) addTypeMembers(typeName string, expr ast.Expr) {
	switch typ := expr.(type) {
	case *ast.StructType:
		for _, field := range typ.Fields.List {
			if len(field.Names) == 0 {
				i.addMember(typeName, baseTypeName(field.Type))
				continue
			}
			for _, name := range field.Names {
				i.addMember(typeName, name.Name)
			}
		}
	case *ast.InterfaceType:
		for _, method := range typ.Methods.List {
			for _, name := range method.Names {
				i.addMember(typeName, name.Name)
			}
		}
	}
}

// baseTypeName strips pointers, qualifiers and type parameters.
func baseTypeName(expr ast.Expr) string {
	switch typ := expr.(type) {
	case *ast.Ident:
		return typ.Name
	case *ast.StarExpr:
		return baseTypeName(typ.X)
	case *ast.SelectorExpr:
		return typ.Sel.Name
	case *ast.IndexExpr:
		return baseTypeName(typ.X)
	case *ast.IndexListExpr:
		return baseTypeName(typ.X)
	default:
		return ""
	}
}

func compositeTypeName(expr ast.Expr) string {
	switch value := expr.(type) {
	case *ast.CompositeLit:
		return baseTypeName(value.Type)
	case *ast.UnaryExpr:
		if value.Op == token.AND {
			return compositeTypeName(value.X)
		}
	case *ast.CallExpr:
		// conversions such as Message("text")
		if ident, ok := value.Fun.(*ast.Ident); ok && len(value.Args) == 1 {
			return ident.Name
		}
	}
	return ""
}

var _ ports.SymbolResolverPort = (*GoSourceResolverAdapter)(nil)
