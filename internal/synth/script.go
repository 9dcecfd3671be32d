package synth

import (
	"context"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/Aman-CERP/uecheck/internal/errors"
	"github.com/Aman-CERP/uecheck/internal/hostenv"
)

// Script is a launcher script for a packaging command.
type Script struct {
	Path     string `json:"path"`
	Contents string `json:"-"`
	// Executable is set for POSIX scripts so they can be run directly.
	Executable bool `json:"-"`
}

func batchEscape(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}

// ScriptPath returns the deterministic script location: beside the
// project descriptor, named after the project and platform.
func ScriptPath(req Request, host hostenv.Host) string {
	name := fmt.Sprintf("Package_%s_%s%s", req.ProjectName(), req.Platform, host.ScriptSuffix)
	return filepath.Join(filepath.Dir(req.ProjectFile), name)
}

// NewScript renders the launcher for cmd. The script prints a banner, runs
// the command, reports its exit status and waits for the operator.
func NewScript(cmd Command, req Request, host hostenv.Host) Script {
	line := cmd.Render(host)
	name := req.ProjectName()

	var lines []string
	if host.Windows() {
		// cmd.exe expands %VAR% inside batch files, quoted or not.
		line = batchEscape(line)
		name = batchEscape(name)
		lines = []string{
			"@echo off",
			fmt.Sprintf("echo Packaging %s for %s (SHIPPING BUILD)...", name, req.Platform),
			"echo.",
			line,
			"set UAT_EXIT=%ERRORLEVEL%",
			"echo.",
			"if %UAT_EXIT% EQU 0 (",
			"    echo Packaging completed successfully!",
			") else (",
			"    echo ERROR: Packaging failed with exit code %UAT_EXIT%",
			"    echo Check the log files for more details.",
			")",
			"pause",
			"exit /b %UAT_EXIT%",
		}
	} else {
		lines = []string{
			"#!/bin/sh",
			fmt.Sprintf("echo \"Packaging %s for %s (SHIPPING BUILD)...\"", name, req.Platform),
			"echo",
			line,
			"status=$?",
			"echo",
			`if [ "$status" -eq 0 ]; then`,
			`    echo "Packaging completed successfully!"`,
			"else",
			`    echo "ERROR: Packaging failed with exit code $status"`,
			`    echo "Check the log files for more details."`,
			"fi",
			`printf "Press Enter to continue..."`,
			"read -r _",
			`exit "$status"`,
		}
	}

	return Script{
		Path:       ScriptPath(req, host),
		Contents:   strings.Join(lines, "\n") + "\n",
		Executable: !host.Windows(),
	}
}

// Digest returns the hex BLAKE3 digest of the script contents.
func (s Script) Digest() string {
	sum := blake3.Sum256([]byte(s.Contents))
	return hex.EncodeToString(sum[:])
}

// WriteResult describes a completed script write.
type WriteResult struct {
	Path string `json:"path"`
	// Replaced is true when a previous script was deleted first.
	Replaced bool `json:"replaced"`
	// Unchanged is true when the deleted script had identical contents.
	Unchanged bool   `json:"unchanged"`
	Digest    string `json:"digest"`
}

// WriteScript deletes any existing file at s.Path and writes s fresh.
// Delete and write are retried separately per cfg. Failures are returned
// as script-write warnings; a failure after the delete leaves no script.
func WriteScript(ctx context.Context, s Script, cfg errors.RetryConfig) (WriteResult, error) {
	res := WriteResult{Path: s.Path, Digest: s.Digest()}

	if info, err := os.Lstat(s.Path); err == nil {
		if info.IsDir() {
			return WriteResult{}, errors.ScriptWriteError(s.Path, fmt.Errorf("%s is a directory", s.Path))
		}
		res.Replaced = true
		if old, err := os.ReadFile(s.Path); err == nil {
			sum := blake3.Sum256(old)
			res.Unchanged = hex.EncodeToString(sum[:]) == res.Digest
		}

		err := errors.Retry(ctx, cfg, func() error {
			if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
				return err
			}
			return nil
		})
		if err != nil {
			return WriteResult{}, errors.ScriptWriteError(s.Path, err)
		}
	}

	perm := fs.FileMode(0o644)
	if s.Executable {
		perm = 0o755
	}
	err := errors.Retry(ctx, cfg, func() error {
		return os.WriteFile(s.Path, []byte(s.Contents), perm)
	})
	if err != nil {
		return WriteResult{}, errors.ScriptWriteError(s.Path, err)
	}
	return res, nil
}
