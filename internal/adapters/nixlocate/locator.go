// Package nixlocate implements ports.Locator on top of the nix-index database
// through the nix-locate command.
package nixlocate

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/autobahn/internal/core/domain"
	"go.trai.ch/zerr"
	"zombiezen.com/go/nix"
)

// Locator queries nix-locate for the top-level packages shipping a file.
type Locator struct {
	command  string
	storeDir nix.StoreDirectory
}

// New creates a Locator running command. An empty command means nix-locate.
func New(command string) *Locator {
	if command == "" {
		command = domain.DefaultLocatorCommand
	}
	return &Locator{command: command, storeDir: nix.DefaultStoreDirectory}
}

// FindCandidates implements ports.Locator.
func (l *Locator) FindCandidates(ctx context.Context, lib domain.LibraryName) ([]domain.CandidateEdge, error) {
	var stdout, stderr bytes.Buffer

	//nolint:gosec // The locator command comes from trusted configuration
	cmd := exec.CommandContext(ctx, l.command,
		"--top-level",
		"--type=r",
		"--type=s",
		"--type=x",
		"--whole-name",
		lib.String(),
	)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		exited := errors.As(err, &exitErr)

		zErr := error(zerr.Wrap(err, "index query failed"))
		zErr = zerr.With(zErr, "command", l.command)
		zErr = zerr.With(zErr, "library", lib.String())

		if exited {
			zErr = zerr.With(zErr, "exit_code", exitErr.ExitCode())
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			zErr = zerr.With(zErr, "stderr", msg)
		}
		return nil, errors.Join(domain.ErrLocatorFailed, zErr)
	}

	return l.parse(lib, stdout.String())
}

// parse reads lines of the form "<attr> <size> <type> <store path>".
func (l *Locator) parse(lib domain.LibraryName, out string) ([]domain.CandidateEdge, error) {
	var edges []domain.CandidateEdge

	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		edge, err := l.parseLine(lib, line)
		if err != nil {
			return nil, errors.Join(domain.ErrLocatorFailed,
				zerr.With(zerr.With(err, "line", line), "library", lib.String()))
		}
		edges = append(edges, edge)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Join(domain.ErrLocatorFailed,
			zerr.With(zerr.Wrap(err, "failed to read index output"), "library", lib.String()))
	}

	return edges, nil
}

func (l *Locator) parseLine(lib domain.LibraryName, line string) (domain.CandidateEdge, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return domain.CandidateEdge{}, zerr.New("malformed index entry")
	}

	_, sub, err := l.storeDir.ParsePath(strings.Join(fields[3:], " "))
	if err != nil {
		return domain.CandidateEdge{}, zerr.Wrap(err, "malformed store path")
	}

	return domain.CandidateEdge{
		Library:      lib,
		Package:      domain.Package(fields[0]),
		ProvidedPath: "/" + strings.TrimPrefix(sub, "/"),
	}, nil
}
