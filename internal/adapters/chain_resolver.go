package adapters

import "l10n-verify/internal/ports"

// ChainResolverAdapter consults resolvers in order. The first resolver that
// knows a class is the one asked about its members.
type ChainResolverAdapter struct {
	Resolvers []ports.SymbolResolverPort
}

func NewChainResolverAdapter(resolvers ...ports.SymbolResolverPort) ChainResolverAdapter {
	return ChainResolverAdapter{Resolvers: resolvers}
}

func (a ChainResolverAdapter) ClassExists(className string) (bool, error) {
	owner, err := a.owner(className)
	return owner != nil, err
}

func (a ChainResolverAdapter) MemberExists(className string, member string) (bool, error) {
	owner, err := a.owner(className)
	if err != nil || owner == nil {
		return false, err
	}
	return owner.MemberExists(className, member)
}

func (a ChainResolverAdapter) owner(className string) (ports.SymbolResolverPort, error) {
	for _, resolver := range a.Resolvers {
		exists, err := resolver.ClassExists(className)
		if err != nil {
			return nil, err
		}
		if exists {
			return resolver, nil
		}
	}
	return nil, nil
}

var _ ports.SymbolResolverPort = ChainResolverAdapter{}
