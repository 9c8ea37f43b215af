package types

import "sort"

// KeySet is an unordered set of translation keys. Keys are compared as
// exact, case-sensitive strings.
type KeySet map[string]struct{}

func NewKeySet(keys ...string) KeySet {
	set := make(KeySet, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}
	return set
}

func (s KeySet) Add(key string) {
	s[key] = struct{}{}
}

func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

func (s KeySet) Len() int {
	return len(s)
}

// Sorted returns the keys in lexical order.
func (s KeySet) Sorted() []string {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Locale is derived from a messages file name such as messages_es_MX.properties.
type Locale struct {
	Language string `json:"language" yaml:"language"`
	Region   string `json:"region,omitempty" yaml:"region,omitempty"`
}

func (l Locale) String() string {
	if l.Region == "" {
		return l.Language
	}
	return l.Language + "_" + l.Region
}

type TranslationFile struct {
	Path          string
	Locale        *Locale
	Keys          KeySet
	DuplicateKeys KeySet
}

// AuthoritativeFile is the single messages file every translation is
// compared against.
type AuthoritativeFile struct {
	TranslationFile
	Classes []TranslationClass
}

type TranslatedFile struct {
	TranslationFile
	MissingKeys KeySet
	ExtraKeys   KeySet
}

// TranslationClass groups the member names of authoritative keys that share
// a class-like dotted prefix. Name may carry nested-class separators ($).
type TranslationClass struct {
	Name    string
	Members []string
}

type MissingClass struct {
	ClassName string `json:"class_name" yaml:"class_name"`
}

type MissingKey struct {
	ClassName string `json:"class_name" yaml:"class_name"`
	KeyName   string `json:"key_name" yaml:"key_name"`
}

// Less orders missing keys by class name, then key name.
func (k MissingKey) Less(other MissingKey) bool {
	if k.ClassName != other.ClassName {
		return k.ClassName < other.ClassName
	}
	return k.KeyName < other.KeyName
}

type ClassinessResult struct {
	MissingClasses []MissingClass
	MissingKeys    []MissingKey
}
