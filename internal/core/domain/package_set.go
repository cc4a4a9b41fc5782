package domain

import (
	"slices"
	"strings"
)

// IncludedPackageSet is an insertion-ordered set of packages.
// Packages are never removed and adding a known package is a no-op.
type IncludedPackageSet struct {
	order []Package
	index map[Package]struct{}
}

// NewIncludedPackageSet seeds a set with the given packages, keeping their first
// occurrence order. Blank entries are ignored.
func NewIncludedPackageSet(pkgs ...Package) *IncludedPackageSet {
	s := &IncludedPackageSet{
		order: make([]Package, 0, len(pkgs)),
		index: make(map[Package]struct{}, len(pkgs)),
	}
	for _, p := range pkgs {
		s.Add(p)
	}
	return s
}

// PackagesFromStrings converts raw package attributes into Packages.
func PackagesFromStrings(raw []string) []Package {
	pkgs := make([]Package, 0, len(raw))
	for _, r := range raw {
		if name := strings.TrimSpace(r); name != "" {
			pkgs = append(pkgs, Package(name))
		}
	}
	return pkgs
}

// Add appends p unless it is already present. It reports whether p was new.
func (s *IncludedPackageSet) Add(p Package) bool {
	if p == "" {
		return false
	}
	if s.index == nil {
		s.index = make(map[Package]struct{})
	}
	if _, ok := s.index[p]; ok {
		return false
	}
	s.index[p] = struct{}{}
	s.order = append(s.order, p)
	return true
}

// Contains reports whether p has been included.
func (s *IncludedPackageSet) Contains(p Package) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[p]
	return ok
}

// Packages returns the included packages in insertion order.
func (s *IncludedPackageSet) Packages() []Package {
	if s == nil {
		return nil
	}
	return slices.Clone(s.order)
}

// Strings returns the included packages as plain strings in insertion order.
func (s *IncludedPackageSet) Strings() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.order))
	for i, p := range s.order {
		out[i] = string(p)
	}
	return out
}

// Len returns the number of included packages.
func (s *IncludedPackageSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Clone returns an independent copy of the set.
func (s *IncludedPackageSet) Clone() *IncludedPackageSet {
	if s == nil {
		return NewIncludedPackageSet()
	}
	return NewIncludedPackageSet(s.order...)
}

// ResolutionResult maps every package to the libraries it was selected to satisfy.
type ResolutionResult map[Package][]LibraryName

// Record notes that p satisfies lib. Recording the same pair twice is a no-op and
// each library list stays sorted.
func (r ResolutionResult) Record(p Package, lib LibraryName) {
	libs := r[p]
	i, found := slices.BinarySearch(libs, lib)
	if found {
		return
	}
	r[p] = slices.Insert(libs, i, lib)
}

// Libraries returns the libraries satisfied by p in sorted order.
func (r ResolutionResult) Libraries(p Package) []LibraryName {
	return slices.Clone(r[p])
}

// Satisfies reports whether p was recorded against lib.
func (r ResolutionResult) Satisfies(p Package, lib LibraryName) bool {
	_, found := slices.BinarySearch(r[p], lib)
	return found
}
