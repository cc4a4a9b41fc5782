// Package fhs renders buildFHSUserEnv expressions and writes the launcher
// script that builds and enters them.
package fhs

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/autobahn/internal/core/domain"
	"go.trai.ch/zerr"
)

// EnvName is the name of the FHS environment and of its entry point under bin/.
const EnvName = "fhs"

// attrPath matches a dotted nixpkgs attribute path such as "openssl_3_x.out".
var attrPath = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_'-]*(\.[A-Za-z_][A-Za-z0-9_'-]*)*$`)

// Emitter implements ports.Emitter for buildFHSUserEnv.
type Emitter struct {
	buildCommand string
}

// NewEmitter creates an Emitter whose launcher command uses nix-build.
func NewEmitter() *Emitter {
	return &Emitter{buildCommand: domain.DefaultBuildCommand}
}

// Emit implements ports.Emitter. Packages keep their given order.
func (e *Emitter) Emit(binaryPath string, pkgs []domain.Package) (string, error) {
	if !filepath.IsAbs(binaryPath) {
		return "", zerr.With(zerr.Wrap(domain.ErrEmissionFailed, "binary path must be absolute"),
			"binary", binaryPath)
	}
	for _, p := range pkgs {
		if !attrPath.MatchString(p.String()) {
			return "", zerr.With(zerr.Wrap(domain.ErrEmissionFailed, "not a package attribute path"),
				"package", p.String())
		}
	}

	names := make([]string, len(pkgs))
	for i, p := range pkgs {
		names[i] = p.String()
	}

	var b strings.Builder
	b.WriteString("with import <nixpkgs> {};\n")
	b.WriteString("  buildFHSUserEnv {\n")
	fmt.Fprintf(&b, "    name = %q;\n", EnvName)
	b.WriteString("    targetPkgs = p: with p; [\n")
	for _, name := range names {
		b.WriteString("      " + name + "\n")
	}
	b.WriteString("    ];\n")
	fmt.Fprintf(&b, "    runScript = \"%s\";\n", escapeNixString(binaryPath))
	b.WriteString("  }")

	return b.String(), nil
}

// Command implements ports.Emitter. It builds expr, then runs the environment
// entry point with the launcher's arguments.
func (e *Emitter) Command(expr string) string {
	return fmt.Sprintf(`exec "$(%s %s)/bin/%s" "$@"`, e.buildCommand, shellQuote(expr), EnvName)
}

// escapeNixString escapes s for use inside a double-quoted Nix string.
func escapeNixString(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`, `${`, `\${`).Replace(s)
}

// shellQuote wraps s in single quotes for POSIX shells.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
