// Package resolver turns a set of missing libraries into the packages that provide them.
package resolver

import (
	"context"
	"errors"
	"runtime"
	"slices"

	"go.trai.ch/autobahn/internal/core/domain"
	"go.trai.ch/autobahn/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Engine resolves missing libraries against a Locator and a SelectionStrategy.
//
// Lookups run concurrently. Every decision that reads or grows the included
// package set happens afterwards on the calling goroutine, in canonical library
// order, so the outcome never depends on lookup timing.
type Engine struct {
	logger ports.Logger
	tracer ports.Tracer
}

// New creates an Engine.
func New(logger ports.Logger, tracer ports.Tracer) *Engine {
	return &Engine{logger: logger, tracer: tracer}
}

// Option tunes a single Resolve call.
type Option func(*options)

type options struct {
	concurrency int
}

// WithConcurrency bounds the number of lookups in flight. Values below one
// fall back to one lookup per CPU.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// Resolve computes the package set for missing, seeded with preSelected.
//
// The returned set lists preSelected first, in its own order, followed by
// resolved packages without repeats. Any failure aborts the whole run and
// returns no set.
func (e *Engine) Resolve(
	ctx context.Context,
	missing domain.MissingLibrarySet,
	preSelected *domain.IncludedPackageSet,
	locator ports.Locator,
	strategy ports.SelectionStrategy,
	opts ...Option,
) (*domain.IncludedPackageSet, domain.ResolutionResult, error) {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.concurrency < 1 {
		cfg.concurrency = runtime.NumCPU()
	}

	names := missing.Names()

	candidates, err := e.lookup(ctx, names, locator, cfg.concurrency)
	if err != nil {
		return nil, nil, err
	}

	included, result, err := e.fold(ctx, names, candidates, preSelected, strategy)
	if err != nil {
		return nil, nil, err
	}

	e.logger.Debug("resolution finished",
		"libraries", len(names),
		"preselected", preSelected.Len(),
		"packages", included.Len(),
	)
	return included, result, nil
}

// lookup queries the locator for every library. Results are stored by
// canonical index and the first failure cancels the lookups still in flight.
func (e *Engine) lookup(
	ctx context.Context,
	names []domain.LibraryName,
	locator ports.Locator,
	limit int,
) ([][]domain.CandidateEdge, error) {
	ctx, span := e.tracer.Start(ctx, "resolve.lookup")
	defer span.End()
	span.SetAttribute("libraries", len(names))
	span.SetAttribute("concurrency", limit)

	results := make([][]domain.CandidateEdge, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, lib := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			edges, err := locator.FindCandidates(gctx, lib)
			if err != nil {
				return locatorError(lib, err)
			}

			results[i] = dedupeCandidates(lib, edges)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return results, nil
}

// fold applies the strategy to every library. Libraries with at most one
// candidate are decided first, ambiguous ones afterwards, each group in
// canonical order.
func (e *Engine) fold(
	ctx context.Context,
	names []domain.LibraryName,
	candidates [][]domain.CandidateEdge,
	preSelected *domain.IncludedPackageSet,
	strategy ports.SelectionStrategy,
) (*domain.IncludedPackageSet, domain.ResolutionResult, error) {
	ctx, span := e.tracer.Start(ctx, "resolve.select")
	defer span.End()

	included := preSelected.Clone()
	result := make(domain.ResolutionResult)

	var ambiguous []int
	for i, lib := range names {
		if len(candidates[i]) > 1 {
			ambiguous = append(ambiguous, i)
			continue
		}
		if err := e.decide(ctx, lib, candidates[i], included, result, strategy); err != nil {
			span.RecordError(err)
			return nil, nil, err
		}
	}

	span.SetAttribute("ambiguous", len(ambiguous))

	for _, i := range ambiguous {
		if err := e.decide(ctx, names[i], candidates[i], included, result, strategy); err != nil {
			span.RecordError(err)
			return nil, nil, err
		}
	}

	return included, result, nil
}

func (e *Engine) decide(
	ctx context.Context,
	lib domain.LibraryName,
	candidates []domain.CandidateEdge,
	included *domain.IncludedPackageSet,
	result domain.ResolutionResult,
	strategy ports.SelectionStrategy,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	chosen, err := strategy.Select(ctx, lib, candidates, included.Clone())
	if err != nil {
		return err
	}

	chosen = slices.DeleteFunc(chosen, func(p domain.Package) bool { return p == "" })
	if len(chosen) == 0 {
		return zerr.With(zerr.Wrap(domain.ErrUnresolvable, "no provider selected"), "library", lib.String())
	}

	for _, p := range chosen {
		added := included.Add(p)
		result.Record(p, lib)
		e.logger.Debug("provider selected",
			"library", lib.String(),
			"package", p.String(),
			"new", added,
		)
	}
	return nil
}

// dedupeCandidates drops repeated packages, keeping the first provided path,
// and stamps every edge with lib.
func dedupeCandidates(lib domain.LibraryName, edges []domain.CandidateEdge) []domain.CandidateEdge {
	out := make([]domain.CandidateEdge, 0, len(edges))
	seen := make(map[domain.Package]struct{}, len(edges))
	for _, edge := range edges {
		if edge.Package == "" {
			continue
		}
		if _, ok := seen[edge.Package]; ok {
			continue
		}
		seen[edge.Package] = struct{}{}
		edge.Library = lib
		out = append(out, edge)
	}
	return out
}

func locatorError(lib domain.LibraryName, err error) error {
	if errors.Is(err, domain.ErrLocatorFailed) {
		return err
	}
	return errors.Join(domain.ErrLocatorFailed,
		zerr.With(zerr.Wrap(err, "lookup failed"), "library", lib.String()))
}
