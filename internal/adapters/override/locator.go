// Package override pins providers for selected libraries ahead of the index.
package override

import (
	"context"
	"strings"

	"go.trai.ch/autobahn/internal/core/domain"
	"go.trai.ch/autobahn/internal/core/ports"
)

// ProvidedPath marks candidates that come from a pinned provider rather than the index.
const ProvidedPath = "(override)"

// Locator answers pinned libraries itself and forwards everything else.
type Locator struct {
	pins map[domain.LibraryName]domain.Package
	next ports.Locator
}

// New wraps next with the given library to package pins. Blank keys or values
// are ignored.
func New(pins map[string]string, next ports.Locator) *Locator {
	l := &Locator{
		pins: make(map[domain.LibraryName]domain.Package, len(pins)),
		next: next,
	}
	for lib, pkg := range pins {
		lib, pkg = strings.TrimSpace(lib), strings.TrimSpace(pkg)
		if lib == "" || pkg == "" {
			continue
		}
		l.pins[domain.LibraryName(lib)] = domain.Package(pkg)
	}
	return l
}

// FindCandidates implements ports.Locator.
func (l *Locator) FindCandidates(ctx context.Context, lib domain.LibraryName) ([]domain.CandidateEdge, error) {
	if pkg, ok := l.pins[lib]; ok {
		return []domain.CandidateEdge{{Library: lib, Package: pkg, ProvidedPath: ProvidedPath}}, nil
	}
	return l.next.FindCandidates(ctx, lib)
}
