// Package selection implements the built-in provider selection strategies.
package selection

import (
	"context"
	"errors"

	"go.trai.ch/autobahn/internal/core/domain"
	"go.trai.ch/autobahn/internal/core/ports"
	"go.trai.ch/zerr"
)

// New returns the strategy registered under name.
// The chooser is only used by the interactive strategy and may be nil otherwise.
func New(name string, chooser ports.Chooser) (ports.SelectionStrategy, error) {
	switch name {
	case domain.StrategyAll:
		return TakeAll{}, nil
	case domain.StrategyInteractive, "":
		if chooser == nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrUnknownStrategy, "interactive strategy needs a chooser"),
				"strategy", name)
		}
		return NewInteractive(chooser), nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownStrategy, name), "strategy", name)
	}
}

// TakeAll includes every candidate of an ambiguous library.
type TakeAll struct{}

// Select implements ports.SelectionStrategy.
func (TakeAll) Select(
	_ context.Context,
	lib domain.LibraryName,
	candidates []domain.CandidateEdge,
	included *domain.IncludedPackageSet,
) ([]domain.Package, error) {
	if chosen, decided, err := decide(lib, candidates, included); decided {
		return chosen, err
	}
	return packagesOf(candidates), nil
}

// Interactive asks a Chooser for exactly one provider of an ambiguous library.
type Interactive struct {
	chooser ports.Chooser
}

// NewInteractive creates an Interactive strategy backed by chooser.
func NewInteractive(chooser ports.Chooser) *Interactive {
	return &Interactive{chooser: chooser}
}

// Select implements ports.SelectionStrategy.
func (s *Interactive) Select(
	ctx context.Context,
	lib domain.LibraryName,
	candidates []domain.CandidateEdge,
	included *domain.IncludedPackageSet,
) ([]domain.Package, error) {
	if chosen, decided, err := decide(lib, candidates, included); decided {
		return chosen, err
	}

	idx, err := s.chooser.Choose(ctx, lib, candidates)
	if err != nil {
		if !errors.Is(err, domain.ErrSelectionCancelled) {
			err = errors.Join(domain.ErrSelectionCancelled, err)
		}
		return nil, zerr.With(zerr.Wrap(err, lib.String()), "library", lib.String())
	}
	if idx < 0 || idx >= len(candidates) {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrSelectionCancelled, "choice out of range"),
			"library", lib.String()), "choice", idx)
	}

	return []domain.Package{candidates[idx].Package}, nil
}

// decide applies the rules shared by every built-in strategy. It reports
// decided=false only for several candidates of which none is included yet.
func decide(
	lib domain.LibraryName,
	candidates []domain.CandidateEdge,
	included *domain.IncludedPackageSet,
) (chosen []domain.Package, decided bool, err error) {
	switch len(candidates) {
	case 0:
		return nil, true, zerr.With(zerr.Wrap(domain.ErrUnresolvable, lib.String()), "library", lib.String())
	case 1:
		return []domain.Package{candidates[0].Package}, true, nil
	}

	for _, c := range candidates {
		if included.Contains(c.Package) {
			chosen = append(chosen, c.Package)
		}
	}
	if len(chosen) > 0 {
		return chosen, true, nil
	}
	return nil, false, nil
}

func packagesOf(candidates []domain.CandidateEdge) []domain.Package {
	pkgs := make([]domain.Package, len(candidates))
	for i, c := range candidates {
		pkgs[i] = c.Package
	}
	return pkgs
}
