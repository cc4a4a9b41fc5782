// Package app implements the application layer for autobahn.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/autobahn/internal/core/domain"
	"go.trai.ch/autobahn/internal/core/ports"
	"go.trai.ch/autobahn/internal/engine/resolver"
	"go.trai.ch/autobahn/internal/engine/selection"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	tracer       ports.Tracer
	scanners     ports.ScannerFactory
	locators     ports.LocatorFactory
	chooser      ports.Chooser
	emitter      ports.Emitter
	writer       ports.ScriptWriter
	engine       *resolver.Engine
	stdout       io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	tracer ports.Tracer,
	scanners ports.ScannerFactory,
	locators ports.LocatorFactory,
	chooser ports.Chooser,
	emitter ports.Emitter,
	writer ports.ScriptWriter,
	engine *resolver.Engine,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		tracer:       tracer,
		scanners:     scanners,
		locators:     locators,
		chooser:      chooser,
		emitter:      emitter,
		writer:       writer,
		engine:       engine,
		stdout:       os.Stdout,
	}
}

// WithStdout redirects command output, which defaults to os.Stdout.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// ConfigureLogging switches the logger to JSON output or debug level when it supports it.
func (a *App) ConfigureLogging(jsonOutput, verbose bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(jsonOutput)
	}
	if l, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		l.SetVerbose(verbose)
	}
}

// GenerateOptions configures the Generate method.
type GenerateOptions struct {
	Binary     string
	ConfigPath string
	Libraries  []string
	Packages   []string
	Strategy   string
	Output     string
	List       bool
	DryRun     bool
}

// Generate resolves the missing libraries of a binary and writes a launcher
// that runs it inside an environment providing them.
//
//nolint:cyclop // orchestration function
func (a *App) Generate(ctx context.Context, opts GenerateOptions) (err error) {
	// 1. Canonicalize the binary and load its configuration
	binary, err := canonicalBinary(opts.Binary)
	if err != nil {
		return err
	}

	cfg, err := a.loadConfig(filepath.Dir(binary), opts.ConfigPath, func(cfg *domain.Config) {
		cfg.Libraries = append(cfg.Libraries, opts.Libraries...)
		cfg.Packages = append(cfg.Packages, opts.Packages...)
		if opts.Strategy != "" {
			cfg.Strategy = opts.Strategy
		}
		if opts.Output != "" {
			cfg.Output = opts.Output
		}
	})
	if err != nil {
		return err
	}

	strategy, err := selection.New(cfg.Strategy, a.chooser)
	if err != nil {
		return err
	}

	ctx, span := a.tracer.Start(ctx, "generate")
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()
	span.SetAttribute("binary", binary)
	span.SetAttribute("strategy", cfg.Strategy)

	// 2. Scan and normalize
	scanned, err := a.scanners(cfg).Scan(ctx, binary)
	if err != nil {
		return err
	}
	missing := domain.NewMissingLibrarySet(cfg.Libraries, scanned)
	a.logger.Info("resolving libraries", "binary", binary, "missing", missing.Len())

	// 3. Resolve
	preSelected := domain.NewIncludedPackageSet(domain.PackagesFromStrings(cfg.Packages)...)
	included, result, err := a.engine.Resolve(ctx, missing, preSelected, a.locators(cfg), strategy,
		resolver.WithConcurrency(cfg.Concurrency))
	if err != nil {
		return err
	}

	// 4. Emit
	expr, err := a.emitter.Emit(binary, included.Packages())
	if err != nil {
		return err
	}

	if opts.List {
		a.printPackages(included, result)
	}

	if opts.DryRun {
		_, _ = fmt.Fprintln(a.stdout, expr)
		return nil
	}

	// 5. Write the launcher
	target := cfg.Output
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(binary), target)
	}
	if err := a.writer.Write(target, a.emitter.Command(expr)); err != nil {
		return err
	}

	a.logger.Info("launcher written", "path", target, "packages", included.Len())
	return nil
}

// LocateOptions configures the Locate method.
type LocateOptions struct {
	Libraries  []string
	ConfigPath string
}

// Locate prints the candidate providers of each library.
func (a *App) Locate(ctx context.Context, opts LocateOptions) error {
	libs := domain.NewMissingLibrarySet(opts.Libraries, nil)
	if libs.Len() == 0 {
		return domain.ErrNoLibrarySpecified
	}

	cwd, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to get working directory")
	}

	cfg, err := a.loadConfig(cwd, opts.ConfigPath, nil)
	if err != nil {
		return err
	}

	locator := a.locators(cfg)
	for _, lib := range libs.Names() {
		edges, err := locator.FindCandidates(ctx, lib)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintln(a.stdout, lib)
		if len(edges) == 0 {
			_, _ = fmt.Fprintln(a.stdout, "  (no provider)")
			continue
		}
		for _, e := range edges {
			_, _ = fmt.Fprintf(a.stdout, "  %s %s\n", e.Package, e.ProvidedPath)
		}
	}

	return nil
}

// MissingOptions configures the Missing method.
type MissingOptions struct {
	Binary     string
	ConfigPath string
	Libraries  []string
}

// Missing prints the normalized set of libraries the binary fails to load.
func (a *App) Missing(ctx context.Context, opts MissingOptions) error {
	binary, err := canonicalBinary(opts.Binary)
	if err != nil {
		return err
	}

	cfg, err := a.loadConfig(filepath.Dir(binary), opts.ConfigPath, func(cfg *domain.Config) {
		cfg.Libraries = append(cfg.Libraries, opts.Libraries...)
	})
	if err != nil {
		return err
	}

	scanned, err := a.scanners(cfg).Scan(ctx, binary)
	if err != nil {
		return err
	}

	for _, lib := range domain.NewMissingLibrarySet(cfg.Libraries, scanned).Names() {
		_, _ = fmt.Fprintln(a.stdout, lib)
	}
	return nil
}

func (a *App) loadConfig(dir, explicitPath string, apply func(*domain.Config)) (domain.Config, error) {
	cfg, err := a.configLoader.Load(dir, explicitPath)
	if err != nil {
		return domain.Config{}, err
	}
	if apply == nil {
		return cfg, nil
	}

	apply(&cfg)
	if err := a.configLoader.Validate(cfg); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

func (a *App) printPackages(included *domain.IncludedPackageSet, result domain.ResolutionResult) {
	for _, pkg := range included.Packages() {
		libs := result.Libraries(pkg)
		if len(libs) == 0 {
			_, _ = fmt.Fprintln(a.stdout, pkg)
			continue
		}

		names := make([]string, len(libs))
		for i, lib := range libs {
			names[i] = lib.String()
		}
		_, _ = fmt.Fprintf(a.stdout, "%s: %s\n", pkg, strings.Join(names, ", "))
	}
}

func canonicalBinary(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", domain.ErrNoBinarySpecified
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Join(domain.ErrBinaryNotFound, zerr.With(err, "binary", path))
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errors.Join(domain.ErrBinaryNotFound, zerr.With(err, "binary", path))
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", errors.Join(domain.ErrBinaryNotFound, zerr.With(err, "binary", path))
	}
	if info.IsDir() {
		return "", zerr.With(zerr.Wrap(domain.ErrBinaryNotFound, "path is a directory"), "binary", path)
	}

	return resolved, nil
}
