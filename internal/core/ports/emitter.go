package ports

import "go.trai.ch/autobahn/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=emitter.go -destination=mocks/mock_emitter.go -package=mocks

// Emitter renders the environment expression for a binary and its packages.
type Emitter interface {
	// Emit returns a build expression for an environment containing pkgs that runs
	// the binary at the canonical path binaryPath.
	Emit(binaryPath string, pkgs []domain.Package) (string, error)

	// Command returns the shell command that builds expr and enters the environment.
	Command(expr string) string
}

// ScriptWriter writes executable launcher scripts.
type ScriptWriter interface {
	// Write replaces target with an executable script whose body is command.
	// The target is either fully written or left untouched.
	Write(target, command string) error
}
