package resolver_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/autobahn/internal/core/domain"
	"go.trai.ch/autobahn/internal/core/ports"
	"go.trai.ch/autobahn/internal/core/ports/mocks"
	"go.trai.ch/autobahn/internal/engine/resolver"
	"go.trai.ch/autobahn/internal/engine/selection"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// fakeLocator answers lookups from a fixed table.
type fakeLocator struct {
	table map[domain.LibraryName][]domain.CandidateEdge

	mu    sync.Mutex
	calls []domain.LibraryName
}

func newFakeLocator(table map[string][]string) *fakeLocator {
	l := &fakeLocator{table: make(map[domain.LibraryName][]domain.CandidateEdge)}
	for lib, pkgs := range table {
		name := domain.LibraryName(lib)
		edges := make([]domain.CandidateEdge, 0, len(pkgs))
		for _, p := range pkgs {
			edges = append(edges, domain.CandidateEdge{
				Library:      name,
				Package:      domain.Package(p),
				ProvidedPath: "/lib/" + lib,
			})
		}
		l.table[name] = edges
	}
	return l
}

func (l *fakeLocator) FindCandidates(_ context.Context, lib domain.LibraryName) ([]domain.CandidateEdge, error) {
	l.mu.Lock()
	l.calls = append(l.calls, lib)
	l.mu.Unlock()
	return l.table[lib], nil
}

func newEngine(t *testing.T) *resolver.Engine {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()

	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, span
		}).AnyTimes()

	return resolver.New(log, tracer)
}

func missing(names ...string) domain.MissingLibrarySet {
	return domain.NewMissingLibrarySet(nil, names)
}

func TestResolve_EndToEnd(t *testing.T) {
	engine := newEngine(t)
	locator := &fakeLocator{table: map[domain.LibraryName][]domain.CandidateEdge{
		"libssl.so.3": {{
			Library:      "libssl.so.3",
			Package:      "openssl_3_x",
			ProvidedPath: "/nix/store/abc-openssl-3.0.13/lib/libssl.so.3",
		}},
	}}

	included, result, err := engine.Resolve(
		context.Background(),
		missing("libssl.so.3"),
		domain.NewIncludedPackageSet(),
		locator,
		selection.TakeAll{},
	)
	require.NoError(t, err)

	assert.Equal(t, []domain.Package{"openssl_3_x"}, included.Packages())
	assert.Equal(t, domain.ResolutionResult{"openssl_3_x": {"libssl.so.3"}}, result)
}

func TestResolve_Determinism(t *testing.T) {
	table := map[string][]string{
		"libz.so.1":      {"zlib"},
		"libssl.so.3":    {"openssl_3_x", "openssl_3"},
		"libcrypto.so.3": {"openssl_3_x", "openssl_3"},
		"libGL.so.1":     {"libGL", "mesa", "libglvnd"},
		"libX11.so.6":    {"xorg.libX11"},
		"libglib.so.0":   {"glib.out"},
		"libstdc++.so.6": {"stdenv.cc.cc.lib", "gcc-unwrapped.lib"},
		"libfoo.so.2":    {"libfoo.out"},
	}
	libs := make([]string, 0, len(table))
	for lib := range table {
		libs = append(libs, lib)
	}

	run := func() []domain.Package {
		engine := newEngine(t)
		included, _, err := engine.Resolve(
			context.Background(),
			missing(libs...),
			domain.NewIncludedPackageSet("coreutils"),
			newFakeLocator(table),
			selection.TakeAll{},
			resolver.WithConcurrency(3),
		)
		require.NoError(t, err)
		return included.Packages()
	}

	first := run()
	for range 10 {
		assert.Equal(t, first, run())
	}
	assert.Equal(t, domain.Package("coreutils"), first[0])
}

func TestResolve_ShortCircuitOnPreSelected(t *testing.T) {
	ctrl := gomock.NewController(t)
	chooser := mocks.NewMockChooser(ctrl)

	engine := newEngine(t)
	pre := domain.NewIncludedPackageSet("P2")

	included, result, err := engine.Resolve(
		context.Background(),
		missing("L"),
		pre,
		newFakeLocator(map[string][]string{"L": {"P1", "P2"}}),
		selection.NewInteractive(chooser),
	)
	require.NoError(t, err)

	assert.Equal(t, []domain.Package{"P2"}, included.Packages())
	assert.Equal(t, domain.ResolutionResult{"P2": {"L"}}, result)
	assert.False(t, included.Contains("P1"))
}

func TestResolve_ZeroCandidates(t *testing.T) {
	engine := newEngine(t)

	included, result, err := engine.Resolve(
		context.Background(),
		missing("libfoo.so.2", "libz.so.1"),
		domain.NewIncludedPackageSet(),
		newFakeLocator(map[string][]string{"libz.so.1": {"zlib"}}),
		selection.TakeAll{},
	)
	require.ErrorIs(t, err, domain.ErrUnresolvable)
	assert.Contains(t, err.Error(), "libfoo.so.2")
	assert.Nil(t, included)
	assert.Nil(t, result)
}

func TestResolve_TakeAllFanOut(t *testing.T) {
	engine := newEngine(t)

	included, result, err := engine.Resolve(
		context.Background(),
		missing("L"),
		domain.NewIncludedPackageSet(),
		newFakeLocator(map[string][]string{"L": {"P1", "P2"}}),
		selection.TakeAll{},
	)
	require.NoError(t, err)

	assert.Equal(t, []domain.Package{"P1", "P2"}, included.Packages())
	assert.True(t, result.Satisfies("P1", "L"))
	assert.True(t, result.Satisfies("P2", "L"))
}

func TestResolve_CrossLibraryReuse(t *testing.T) {
	engine := newEngine(t)

	included, result, err := engine.Resolve(
		context.Background(),
		missing("L1", "L2"),
		domain.NewIncludedPackageSet(),
		newFakeLocator(map[string][]string{
			"L1": {"P1"},
			"L2": {"P1", "P3"},
		}),
		selection.TakeAll{},
	)
	require.NoError(t, err)

	count := 0
	for _, p := range included.Packages() {
		if p == "P1" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Subset(t, result.Libraries("P1"), []domain.LibraryName{"L1", "L2"})
	assert.ElementsMatch(t, []domain.LibraryName{"L1", "L2"}, result.Libraries("P1"))
}

func TestResolve_UnambiguousLibrariesDecideFirst(t *testing.T) {
	engine := newEngine(t)

	// liba sorts first but is ambiguous; libb pins P2 before liba is decided.
	included, result, err := engine.Resolve(
		context.Background(),
		missing("liba.so", "libb.so"),
		domain.NewIncludedPackageSet(),
		newFakeLocator(map[string][]string{
			"liba.so": {"P1", "P2"},
			"libb.so": {"P2"},
		}),
		selection.TakeAll{},
	)
	require.NoError(t, err)

	assert.Equal(t, []domain.Package{"P2"}, included.Packages())
	assert.Equal(t, []domain.LibraryName{"liba.so", "libb.so"}, result.Libraries("P2"))
}

func TestResolve_PreSelectedComeFirst(t *testing.T) {
	engine := newEngine(t)
	pre := domain.NewIncludedPackageSet("zlib", "coreutils")

	included, _, err := engine.Resolve(
		context.Background(),
		missing("libglib.so.0", "libz.so.1"),
		pre,
		newFakeLocator(map[string][]string{
			"libglib.so.0": {"glib.out"},
			"libz.so.1":    {"zlib"},
		}),
		selection.TakeAll{},
	)
	require.NoError(t, err)

	assert.Equal(t, []domain.Package{"zlib", "coreutils", "glib.out"}, included.Packages())
	assert.Equal(t, []domain.Package{"zlib", "coreutils"}, pre.Packages(), "input set must not be mutated")
}

func TestResolve_EmptyMissingSet(t *testing.T) {
	engine := newEngine(t)
	locator := newFakeLocator(nil)

	included, result, err := engine.Resolve(
		context.Background(),
		missing(),
		domain.NewIncludedPackageSet("bash"),
		locator,
		selection.TakeAll{},
	)
	require.NoError(t, err)

	assert.Equal(t, []domain.Package{"bash"}, included.Packages())
	assert.Empty(t, result)
	assert.Empty(t, locator.calls)
}

func TestResolve_DedupesCandidatesByPackage(t *testing.T) {
	ctrl := gomock.NewController(t)
	strategy := mocks.NewMockSelectionStrategy(ctrl)

	locator := &fakeLocator{table: map[domain.LibraryName][]domain.CandidateEdge{
		"libGL.so.1": {
			{Package: "libGL", ProvidedPath: "/lib/libGL.so.1"},
			{Package: "mesa", ProvidedPath: "/lib/libGL.so.1"},
			{Package: "libGL", ProvidedPath: "/lib64/libGL.so.1"},
		},
	}}

	strategy.EXPECT().
		Select(gomock.Any(), domain.LibraryName("libGL.so.1"), gomock.Any(), gomock.Any()).
		DoAndReturn(func(
			_ context.Context,
			_ domain.LibraryName,
			candidates []domain.CandidateEdge,
			_ *domain.IncludedPackageSet,
		) ([]domain.Package, error) {
			require.Len(t, candidates, 2)
			assert.Equal(t, domain.CandidateEdge{
				Library: "libGL.so.1", Package: "libGL", ProvidedPath: "/lib/libGL.so.1",
			}, candidates[0])
			assert.Equal(t, domain.Package("mesa"), candidates[1].Package)
			return []domain.Package{"libGL"}, nil
		})

	included, _, err := newEngine(t).Resolve(
		context.Background(),
		missing("libGL.so.1"),
		domain.NewIncludedPackageSet(),
		locator,
		strategy,
	)
	require.NoError(t, err)
	assert.Equal(t, []domain.Package{"libGL"}, included.Packages())
}

func TestResolve_EmptyChoiceIsUnresolvable(t *testing.T) {
	tests := []struct {
		name   string
		chosen []domain.Package
	}{
		{name: "nil choice", chosen: nil},
		{name: "blank packages only", chosen: []domain.Package{"", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			strategy := mocks.NewMockSelectionStrategy(ctrl)
			strategy.EXPECT().
				Select(gomock.Any(), domain.LibraryName("libGL.so.1"), gomock.Any(), gomock.Any()).
				Return(tt.chosen, nil)

			included, result, err := newEngine(t).Resolve(
				context.Background(),
				missing("libGL.so.1"),
				domain.NewIncludedPackageSet(),
				newFakeLocator(map[string][]string{"libGL.so.1": {"libGL", "mesa"}}),
				strategy,
			)
			require.ErrorIs(t, err, domain.ErrUnresolvable)
			assert.Contains(t, err.Error(), "no provider selected")
			assert.Nil(t, included)
			assert.Nil(t, result)

			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, "libGL.so.1", zErr.Metadata()["library"])
		})
	}
}

func TestResolve_LocatorErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	locator := mocks.NewMockLocator(ctrl)
	backendErr := errors.New("index unreadable")

	locator.EXPECT().FindCandidates(gomock.Any(), domain.LibraryName("libz.so.1")).
		Return(nil, backendErr).AnyTimes()
	locator.EXPECT().FindCandidates(gomock.Any(), gomock.Any()).
		Return([]domain.CandidateEdge{{Package: "x"}}, nil).AnyTimes()

	included, result, err := newEngine(t).Resolve(
		context.Background(),
		missing("liba.so", "libb.so", "libz.so.1"),
		domain.NewIncludedPackageSet(),
		locator,
		selection.TakeAll{},
	)
	require.ErrorIs(t, err, domain.ErrLocatorFailed)
	require.ErrorIs(t, err, backendErr)
	assert.Nil(t, included)
	assert.Nil(t, result)
}

// blockingLocator fails one library and blocks every other lookup until its
// context is cancelled.
type blockingLocator struct {
	fail domain.LibraryName
}

func (l blockingLocator) FindCandidates(ctx context.Context, lib domain.LibraryName) ([]domain.CandidateEdge, error) {
	if lib == l.fail {
		return nil, errors.New("boom")
	}
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestResolve_LocatorErrorCancelsInFlightLookups(t *testing.T) {
	done := make(chan error, 1)
	go func() {
		_, _, err := newEngine(t).Resolve(
			context.Background(),
			missing("a.so", "b.so", "c.so", "d.so"),
			domain.NewIncludedPackageSet(),
			blockingLocator{fail: "c.so"},
			selection.TakeAll{},
			resolver.WithConcurrency(4),
		)
		done <- err
	}()

	select {
	case err := <-done:
		require.ErrorIs(t, err, domain.ErrLocatorFailed)
	case <-time.After(5 * time.Second):
		t.Fatal("resolution did not abort after locator failure")
	}
}

// countingLocator records the peak number of concurrent lookups.
type countingLocator struct {
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (l *countingLocator) FindCandidates(_ context.Context, lib domain.LibraryName) ([]domain.CandidateEdge, error) {
	n := l.inFlight.Add(1)
	defer l.inFlight.Add(-1)
	for {
		p := l.peak.Load()
		if n <= p || l.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(time.Millisecond)
	return []domain.CandidateEdge{{Package: domain.Package("pkg-" + lib)}}, nil
}

func TestResolve_ConcurrencyIsBounded(t *testing.T) {
	locator := &countingLocator{}

	included, _, err := newEngine(t).Resolve(
		context.Background(),
		missing("a", "b", "c", "d", "e", "f", "g", "h"),
		domain.NewIncludedPackageSet(),
		locator,
		selection.TakeAll{},
		resolver.WithConcurrency(2),
	)
	require.NoError(t, err)

	assert.Equal(t, 8, included.Len())
	assert.LessOrEqual(t, locator.peak.Load(), int32(2))
}

func TestResolve_InteractiveDedup(t *testing.T) {
	t.Run("choice already made by an unambiguous library is not asked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		chooser := mocks.NewMockChooser(ctrl)

		included, result, err := newEngine(t).Resolve(
			context.Background(),
			missing("libA.so", "libB.so"),
			domain.NewIncludedPackageSet(),
			newFakeLocator(map[string][]string{
				"libA.so": {"P1", "P2"},
				"libB.so": {"P1"},
			}),
			selection.NewInteractive(chooser),
		)
		require.NoError(t, err)

		assert.Equal(t, []domain.Package{"P1"}, included.Packages())
		assert.ElementsMatch(t, []domain.LibraryName{"libA.so", "libB.so"}, result.Libraries("P1"))
	})

	t.Run("one prompt covers later libraries with the same providers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		chooser := mocks.NewMockChooser(ctrl)
		chooser.EXPECT().
			Choose(gomock.Any(), domain.LibraryName("libssl.so.3"), gomock.Any()).
			Return(1, nil).Times(1)

		included, result, err := newEngine(t).Resolve(
			context.Background(),
			missing("libssl.so.3", "libtls.so.3"),
			domain.NewIncludedPackageSet(),
			newFakeLocator(map[string][]string{
				"libssl.so.3": {"openssl_3", "openssl_3_x"},
				"libtls.so.3": {"openssl_3", "openssl_3_x"},
			}),
			selection.NewInteractive(chooser),
		)
		require.NoError(t, err)

		assert.Equal(t, []domain.Package{"openssl_3_x"}, included.Packages())
		assert.Equal(t, []domain.LibraryName{"libssl.so.3", "libtls.so.3"}, result.Libraries("openssl_3_x"))
	})

	t.Run("cancellation aborts the run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		chooser := mocks.NewMockChooser(ctrl)
		chooser.EXPECT().Choose(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(-1, domain.ErrSelectionCancelled)

		included, _, err := newEngine(t).Resolve(
			context.Background(),
			missing("libGL.so.1", "libz.so.1"),
			domain.NewIncludedPackageSet(),
			newFakeLocator(map[string][]string{
				"libGL.so.1": {"libGL", "mesa"},
				"libz.so.1":  {"zlib"},
			}),
			selection.NewInteractive(chooser),
		)
		require.ErrorIs(t, err, domain.ErrSelectionCancelled)
		assert.Contains(t, err.Error(), "libGL.so.1")
		assert.Nil(t, included)
	})
}

func TestResolve_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := newEngine(t).Resolve(
		ctx,
		missing("libz.so.1"),
		domain.NewIncludedPackageSet(),
		newFakeLocator(map[string][]string{"libz.so.1": {"zlib"}}),
		selection.TakeAll{},
	)
	require.ErrorIs(t, err, context.Canceled)
}
