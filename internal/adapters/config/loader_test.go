package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/autobahn/internal/adapters/config"
	"go.trai.ch/autobahn/internal/core/domain"
	"go.trai.ch/autobahn/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T, userDir string) *config.Loader {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug("config loaded", gomock.Any()).AnyTimes()

	return config.NewLoader(log).WithUserDir(userDir)
}

func TestLoader_Load_Defaults(t *testing.T) {
	cfg, err := newLoader(t, t.TempDir()).Load(t.TempDir(), "")
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_Load_Project(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, domain.ProjectConfigFileName, `
strategy: all
libraries: [libGL.so.1]
packages: [zlib]
output: launch
concurrency: 4
overrides:
  libssl.so.3: openssl_3_x.out
locator:
  command: /opt/bin/nix-locate
scanner:
  command: /opt/bin/ldd
`)

	cfg, err := newLoader(t, t.TempDir()).Load(dir, "")
	require.NoError(t, err)

	assert.Equal(t, domain.Config{
		Strategy:       domain.StrategyAll,
		Libraries:      []string{"libGL.so.1"},
		Packages:       []string{"zlib"},
		Output:         "launch",
		Concurrency:    4,
		Overrides:      map[string]string{"libssl.so.3": "openssl_3_x.out"},
		ScannerCommand: "/opt/bin/ldd",
		LocatorCommand: "/opt/bin/nix-locate",
	}, cfg)
}

func TestLoader_Load_Layering(t *testing.T) {
	userDir := t.TempDir()
	createFile(t, userDir, domain.UserConfigFileName, `
strategy: all
libraries: [libGL.so.1]
concurrency: 8
overrides:
  libssl.so.3: openssl.out
  libz.so.1: zlib
`)

	dir := t.TempDir()
	createFile(t, dir, domain.ProjectConfigFileName, `
strategy: interactive
libraries: [libEGL.so.1]
concurrency: 0
overrides:
  libssl.so.3: openssl_3_x.out
`)

	cfg, err := newLoader(t, userDir).Load(dir, "")
	require.NoError(t, err)

	assert.Equal(t, domain.StrategyInteractive, cfg.Strategy, "project scalars win")
	assert.Equal(t, []string{"libGL.so.1", "libEGL.so.1"}, cfg.Libraries, "lists append")
	assert.Equal(t, 0, cfg.Concurrency, "an explicit zero still replaces")
	assert.Equal(t, map[string]string{
		"libssl.so.3": "openssl_3_x.out",
		"libz.so.1":   "zlib",
	}, cfg.Overrides)
	assert.Equal(t, domain.DefaultLauncherName, cfg.Output)
}

func TestLoader_Load_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, domain.ProjectConfigFileName, "packages: [ignored]\n")
	explicit := createFile(t, t.TempDir(), "custom.yaml", "packages: [chosen]\n")

	cfg, err := newLoader(t, t.TempDir()).Load(dir, explicit)
	require.NoError(t, err)
	assert.Equal(t, []string{"chosen"}, cfg.Packages)
}

func TestLoader_Load_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, domain.ProjectConfigFileName, "")

	cfg, err := newLoader(t, t.TempDir()).Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectedErr error
	}{
		{name: "invalid yaml", content: "libraries: [ INVALID", expectedErr: domain.ErrConfigParseFailed},
		{name: "unknown key", content: "librarys: [libz.so.1]\n", expectedErr: domain.ErrConfigParseFailed},
		{name: "wrong type", content: "concurrency: many\n", expectedErr: domain.ErrConfigParseFailed},
		{name: "unknown strategy", content: "strategy: best\n", expectedErr: domain.ErrUnknownStrategy},
		{name: "negative concurrency", content: "concurrency: -1\n", expectedErr: domain.ErrConfigInvalid},
		{name: "empty library", content: "libraries: ['']\n", expectedErr: domain.ErrConfigInvalid},
		{name: "empty override target", content: "overrides:\n  libz.so.1: ''\n", expectedErr: domain.ErrConfigInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			createFile(t, dir, domain.ProjectConfigFileName, tt.content)

			_, err := newLoader(t, t.TempDir()).Load(dir, "")
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestLoader_Load_MissingExplicitPath(t *testing.T) {
	_, err := newLoader(t, t.TempDir()).Load(t.TempDir(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestLoader_Load_UnreadableFile(t *testing.T) {
	dir := t.TempDir()
	// A directory in place of the file cannot be read.
	require.NoError(t, os.Mkdir(filepath.Join(dir, domain.ProjectConfigFileName), domain.DirPerm))

	_, err := newLoader(t, t.TempDir()).Load(dir, "")
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestLoader_Validate(t *testing.T) {
	loader := newLoader(t, t.TempDir())

	valid := domain.DefaultConfig()
	require.NoError(t, loader.Validate(valid))

	bad := domain.DefaultConfig()
	bad.Concurrency = -2
	err := loader.Validate(bad)
	require.ErrorIs(t, err, domain.ErrConfigInvalid)
	assert.Contains(t, err.Error(), "Concurrency")

	unknown := domain.DefaultConfig()
	unknown.Strategy = "random"
	err = loader.Validate(unknown)
	require.ErrorIs(t, err, domain.ErrUnknownStrategy)
	assert.NotErrorIs(t, err, domain.ErrConfigInvalid)

	both := domain.DefaultConfig()
	both.Strategy = "random"
	both.Concurrency = -1
	require.ErrorIs(t, loader.Validate(both), domain.ErrUnknownStrategy)
}
