package fhs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/autobahn/internal/core/domain"
	"go.trai.ch/zerr"
)

// ScriptWriter implements ports.ScriptWriter with an atomic rename.
type ScriptWriter struct{}

// NewScriptWriter creates a ScriptWriter.
func NewScriptWriter() *ScriptWriter {
	return &ScriptWriter{}
}

// Write implements ports.ScriptWriter. The script lands next to a temporary
// sibling first, so target is never observed half written.
func (w *ScriptWriter) Write(target, command string) error {
	if err := atomicWriteFile(target, []byte(Script(command))); err != nil {
		return errors.Join(domain.ErrScriptWriteFailed, zerr.With(err, "path", target))
	}
	return nil
}

// Script returns the launcher body for command. The header carries a
// fingerprint of the command so regenerated launchers can be compared at a glance.
func Script(command string) string {
	return fmt.Sprintf("#!/usr/bin/env bash\n# %s environment %016x\n\n%s\n",
		domain.AppName, xxhash.Sum64String(command), command)
}

func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temporary file")
	}
	tmpName := tmpFile.Name()

	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return zerr.Wrap(err, "failed to write temporary file")
	}
	if err := tmpFile.Chmod(domain.ScriptPerm); err != nil {
		_ = tmpFile.Close()
		return zerr.Wrap(err, "failed to mark script executable")
	}
	if err := tmpFile.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temporary file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.Wrap(err, "failed to move script into place")
	}

	committed = true
	return nil
}
