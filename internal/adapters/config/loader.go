// Package config provides the configuration loader for autobahn.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"go.trai.ch/autobahn/internal/core/domain"
	"go.trai.ch/autobahn/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using YAML files.
type Loader struct {
	Logger   ports.Logger
	userDir  string
	validate *validator.Validate
}

// NewLoader creates a Loader reading the user file from the XDG config directory.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger:   logger,
		userDir:  filepath.Join(xdg.ConfigHome, domain.AppName),
		validate: validator.New(),
	}
}

// WithUserDir overrides the directory holding the user configuration.
func (l *Loader) WithUserDir(dir string) *Loader {
	l.userDir = dir
	return l
}

// Load implements ports.ConfigLoader. Files are layered on top of the defaults:
// the user file first, then the project file. Lists append, scalars replace.
func (l *Loader) Load(dir, explicitPath string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if l.userDir != "" {
		if err := l.layer(&cfg, filepath.Join(l.userDir, domain.UserConfigFileName), false); err != nil {
			return domain.Config{}, err
		}
	}

	projectPath, required := explicitPath, true
	if projectPath == "" {
		projectPath, required = filepath.Join(dir, domain.ProjectConfigFileName), false
	}
	if err := l.layer(&cfg, projectPath, required); err != nil {
		return domain.Config{}, err
	}

	if err := l.Validate(cfg); err != nil {
		return domain.Config{}, err
	}

	return cfg, nil
}

// Validate implements ports.ConfigLoader.
func (l *Loader) Validate(cfg domain.Config) error {
	err := l.validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.Join(domain.ErrConfigInvalid, err)
	}

	for _, fe := range fieldErrs {
		if fe.StructField() == "Strategy" && fe.Tag() == "oneof" {
			return zerr.With(zerr.Wrap(domain.ErrUnknownStrategy, "unsupported strategy"), "strategy", cfg.Strategy)
		}
	}

	first := fieldErrs[0]
	return zerr.With(
		zerr.With(
			zerr.Wrap(domain.ErrConfigInvalid, first.Field()+" failed the "+first.Tag()+" check"),
			"field", first.Namespace(),
		),
		"value", fmt.Sprint(first.Value()),
	)
}

func (l *Loader) layer(cfg *domain.Config, path string, required bool) error {
	file, found, err := readFile(path)
	if err != nil {
		return err
	}
	if !found {
		if required {
			return zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, "config file does not exist"), "path", path)
		}
		return nil
	}

	merge(cfg, file)
	l.Logger.Debug("config loaded", "path", path)
	return nil
}

func readFile(path string) (File, bool, error) {
	// #nosec G304 -- path comes from the user or the binary directory
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return File{}, false, nil
	}
	if err != nil {
		return File{}, false, errors.Join(domain.ErrConfigReadFailed, zerr.With(err, "path", path))
	}

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return File{}, false, errors.Join(domain.ErrConfigParseFailed, zerr.With(err, "path", path))
	}

	return file, true, nil
}

func merge(cfg *domain.Config, file File) {
	if file.Strategy != "" {
		cfg.Strategy = file.Strategy
	}
	if file.Output != "" {
		cfg.Output = file.Output
	}
	if file.Concurrency != nil {
		cfg.Concurrency = *file.Concurrency
	}
	if file.Scanner.Command != "" {
		cfg.ScannerCommand = file.Scanner.Command
	}
	if file.Locator.Command != "" {
		cfg.LocatorCommand = file.Locator.Command
	}

	cfg.Libraries = append(cfg.Libraries, file.Libraries...)
	cfg.Packages = append(cfg.Packages, file.Packages...)

	if len(file.Overrides) > 0 {
		if cfg.Overrides == nil {
			cfg.Overrides = make(map[string]string, len(file.Overrides))
		}
		maps.Copy(cfg.Overrides, file.Overrides)
	}
}
