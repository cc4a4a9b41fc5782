// Package ldd implements ports.Scanner by running ldd against a binary.
package ldd

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/autobahn/internal/core/domain"
	"go.trai.ch/zerr"
)

// notFoundMarker is what ldd prints after a dependency it cannot resolve.
const notFoundMarker = " => not found"

// Scanner runs an ldd compatible executable and reports unresolved libraries.
type Scanner struct {
	command string
}

// New creates a Scanner running command. An empty command means ldd.
func New(command string) *Scanner {
	if command == "" {
		command = domain.DefaultScannerCommand
	}
	return &Scanner{command: command}
}

// Scan implements ports.Scanner.
func (s *Scanner) Scan(ctx context.Context, binaryPath string) ([]string, error) {
	var stdout, stderr bytes.Buffer

	//nolint:gosec // The scanner command comes from trusted configuration
	cmd := exec.CommandContext(ctx, s.command, binaryPath)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		exited := errors.As(err, &exitErr)

		zErr := error(zerr.Wrap(err, "scanner exited abnormally"))
		zErr = zerr.With(zErr, "command", s.command)
		zErr = zerr.With(zErr, "binary", binaryPath)

		if exited {
			zErr = zerr.With(zErr, "exit_code", exitErr.ExitCode())
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			zErr = zerr.With(zErr, "stderr", msg)
		}
		return nil, errors.Join(domain.ErrScanFailed, zErr)
	}

	names, err := parseMissing(stdout.String())
	if err != nil {
		return nil, errors.Join(domain.ErrScanFailed, zerr.With(err, "binary", binaryPath))
	}
	return names, nil
}

// parseMissing extracts the library names of every "name => not found" line.
func parseMissing(out string) ([]string, error) {
	var names []string

	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		line := sc.Text()
		name, _, found := strings.Cut(line, notFoundMarker)
		if !found {
			continue
		}
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to read scanner output")
	}

	return names, nil
}
