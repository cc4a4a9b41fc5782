package ports

import (
	"context"

	"go.trai.ch/autobahn/internal/core/domain"
)

// Locator maps a library file name to the packages that ship it.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type Locator interface {
	// FindCandidates returns every package known to provide lib.
	//
	// It must be safe to call concurrently for distinct libraries. An empty result
	// with a nil error means the library has no known provider. An error means the
	// index itself failed and aborts the run.
	FindCandidates(ctx context.Context, lib domain.LibraryName) ([]domain.CandidateEdge, error)
}
