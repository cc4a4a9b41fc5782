package domain

import (
	"slices"
	"strings"
)

// LibraryName identifies a shared-object file, e.g. "libssl.so.3".
// Equality and ordering are byte-exact.
type LibraryName string

// String returns the underlying library file name.
func (l LibraryName) String() string {
	return string(l)
}

// Package identifies a package providing one or more libraries, e.g. "openssl.out".
// It lives in its own namespace even when its string equals a LibraryName.
type Package string

// String returns the underlying package attribute.
func (p Package) String() string {
	return string(p)
}

// CandidateEdge relates a library to a package that ships a file with its name.
// ProvidedPath is only shown to humans and carries no resolution semantics.
type CandidateEdge struct {
	Library      LibraryName
	Package      Package
	ProvidedPath string
}

// MissingLibrarySet is the canonical set of libraries a binary fails to load.
// It is sorted and free of duplicates so that resolution is reproducible.
type MissingLibrarySet struct {
	names []LibraryName
}

// NewMissingLibrarySet merges explicitly requested and scanned library names into
// a canonical set. Surrounding whitespace is trimmed and empty names are dropped.
func NewMissingLibrarySet(explicit, scanned []string) MissingLibrarySet {
	names := make([]LibraryName, 0, len(explicit)+len(scanned))
	for _, src := range [][]string{explicit, scanned} {
		for _, raw := range src {
			if name := strings.TrimSpace(raw); name != "" {
				names = append(names, LibraryName(name))
			}
		}
	}

	slices.Sort(names)
	return MissingLibrarySet{names: slices.Compact(names)}
}

// Names returns the libraries in canonical order.
func (s MissingLibrarySet) Names() []LibraryName {
	return slices.Clone(s.names)
}

// Len returns the number of libraries in the set.
func (s MissingLibrarySet) Len() int {
	return len(s.names)
}

// Contains reports whether lib is part of the set.
func (s MissingLibrarySet) Contains(lib LibraryName) bool {
	_, found := slices.BinarySearch(s.names, lib)
	return found
}
