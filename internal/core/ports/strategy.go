package ports

import (
	"context"

	"go.trai.ch/autobahn/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=strategy.go -destination=mocks/mock_strategy.go -package=mocks

// SelectionStrategy decides which candidates satisfy a library.
type SelectionStrategy interface {
	// Select returns the packages chosen for lib given the packages included so far.
	// Returning an already included package records it against lib without adding
	// anything new.
	Select(
		ctx context.Context,
		lib domain.LibraryName,
		candidates []domain.CandidateEdge,
		included *domain.IncludedPackageSet,
	) ([]domain.Package, error)
}

// Chooser asks a human to pick exactly one provider for a library.
type Chooser interface {
	// Choose returns the index of the chosen candidate.
	// An abandoned choice returns an error wrapping domain.ErrSelectionCancelled.
	Choose(ctx context.Context, lib domain.LibraryName, candidates []domain.CandidateEdge) (int, error)
}
