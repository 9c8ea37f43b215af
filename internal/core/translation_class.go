package core

import (
	"sort"
	"strings"

	"l10n-verify/internal/types"
)

// BuildTranslationClasses groups authoritative keys by the class their
// dotted prefix names. Keys without a dot belong to no class. Classes are
// returned in name order and members are sorted.
func BuildTranslationClasses(keys types.KeySet) []types.TranslationClass {
	staging := map[string]types.KeySet{}
	for key := range keys {
		lastDot := strings.LastIndexByte(key, '.')
		if lastDot < 0 {
			continue
		}
		className := SanitizeClassName(key[:lastDot])
		members, ok := staging[className]
		if !ok {
			members = types.NewKeySet()
			staging[className] = members
		}
		members.Add(key[lastDot+1:])
	}

	classes := make([]types.TranslationClass, 0, len(staging))
	for name, members := range staging {
		classes = append(classes, types.TranslationClass{
			Name:    name,
			Members: members.Sorted(),
		})
	}
	sort.Slice(classes, func(i, j int) bool {
		return classes[i].Name < classes[j].Name
	})
	return classes
}
